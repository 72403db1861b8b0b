//go:build windows

package editor

import "syscall"

// detachedProcAttr detaches the editor from the launching console.
func detachedProcAttr() *syscall.SysProcAttr {
	const createNewProcessGroup = 0x00000200
	const detachedProcess = 0x00000008
	return &syscall.SysProcAttr{CreationFlags: createNewProcessGroup | detachedProcess}
}
