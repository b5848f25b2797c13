package report

import "net"

// localIP finds the locally assigned outbound address by connecting a UDP
// socket toward a public address. Nothing is ever sent, and no reachability
// is required; the connect only forces the stack to pick a source address.
func localIP() (string, bool) {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "", false
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return "", false
	}
	return addr.IP.String(), true
}
