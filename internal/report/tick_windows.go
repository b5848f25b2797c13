//go:build windows

package report

import (
	"time"

	"golang.org/x/sys/windows"
)

// sysTicker reads the kernel's boot-relative millisecond counter
// (GetTickCount64 underneath).
type sysTicker struct{}

func (sysTicker) TickCount() (uint64, error) {
	return uint64(windows.DurationSinceBoot() / time.Millisecond), nil
}
