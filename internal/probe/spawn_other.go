//go:build !windows

package probe

import "syscall"

func hiddenWindowAttr() *syscall.SysProcAttr { return nil }
