package report

import "fmt"

// Ticker reports milliseconds elapsed since the system last booted.
type Ticker interface {
	TickCount() (uint64, error)
}

// formatUptime renders a boot-relative tick count as whole days, remainder
// hours, remainder minutes. Seconds are truncated, never rounded up.
func formatUptime(ms uint64) string {
	secs := ms / 1000
	days := secs / 86400
	hours := (secs % 86400) / 3600
	minutes := (secs % 3600) / 60
	return fmt.Sprintf("%d days, %d hours, %d minutes", days, hours, minutes)
}
