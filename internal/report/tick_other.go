//go:build !windows

package report

import "errors"

// sysTicker exists so the package compiles everywhere; the CLI's platform
// gate keeps it from being consulted off Windows.
type sysTicker struct{}

func (sysTicker) TickCount() (uint64, error) {
	return 0, errors.New("tick count not available on this platform")
}
