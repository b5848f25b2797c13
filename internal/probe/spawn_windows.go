//go:build windows

package probe

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// hiddenWindowAttr keeps child console programs from flashing a window.
func hiddenWindowAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
}
