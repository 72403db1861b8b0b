//go:build unix

package editor

import "syscall"

// detachedProcAttr puts the editor in its own session so it survives
// the terminal that launched vcode.
func detachedProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
