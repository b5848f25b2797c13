package report

import (
	"context"
	"os"

	"sysreport/internal/probe"
)

// SystemSection reports OS identity, uptime, and local networking facts.
type SystemSection struct {
	runner  probe.Runner
	ticker  Ticker
	getenv  func(string) (string, bool)
	localIP func() (string, bool)
}

func NewSystemSection(r probe.Runner, t Ticker) *SystemSection {
	return &SystemSection{
		runner:  r,
		ticker:  t,
		getenv:  os.LookupEnv,
		localIP: localIP,
	}
}

func (s *SystemSection) Name() string { return "os_network" }

var osFields = []fieldRule{
	{key: "Caption", label: "OS Caption"},
	{key: "Version", label: "OS Version"},
	{key: "BuildNumber", label: "OS Build"},
}

func (s *SystemSection) Build(ctx context.Context) []string {
	lines := []string{"", "=== OS and Network Information ==="}

	lines = append(lines, "Processor Architecture: "+s.envOr("PROCESSOR_ARCHITECTURE"))

	if res := s.runner.Run(ctx, "wmic", "os", "get", "Caption,Version,BuildNumber", "/format:list"); res.OK {
		lines = append(lines, scanFields(res.Text, osFields)...)
	}

	if ms, err := s.ticker.TickCount(); err == nil {
		lines = append(lines, "System Uptime: "+formatUptime(ms))
	} else {
		lines = append(lines, "System Uptime: Unknown")
	}

	lines = append(lines, "Hostname: "+s.envOr("COMPUTERNAME"))

	if ip, ok := s.localIP(); ok {
		lines = append(lines, "Local IP Address: "+ip)
	} else {
		lines = append(lines, "Local IP Address: Not available")
	}
	return lines
}

func (s *SystemSection) envOr(key string) string {
	if v, ok := s.getenv(key); ok && v != "" {
		return v
	}
	return "Unknown"
}
