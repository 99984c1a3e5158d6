//go:build windows

package platform

import (
	"os"

	"golang.org/x/sys/windows"
)

var (
	kernel32          = windows.NewLazySystemDLL("kernel32.dll")
	procAttachConsole = kernel32.NewProc("AttachConsole")
)

// ATTACH_PARENT_PROCESS, (DWORD)-1
const attachParentProcess = uintptr(^uint32(0))

// AttachConsole connects a GUI-subsystem binary to the console of the process
// that launched it so writes to os.Stderr become visible. It reports whether a
// console was attached; when the app is started from Explorer there is none.
func AttachConsole() bool {
	if err := procAttachConsole.Find(); err != nil {
		return false
	}
	r, _, _ := procAttachConsole.Call(attachParentProcess)
	if r == 0 {
		return false
	}

	name, err := windows.UTF16PtrFromString("CONOUT$")
	if err != nil {
		return false
	}
	h, err := windows.CreateFile(name,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		0,
		0)
	if err != nil {
		return false
	}

	_ = windows.SetStdHandle(windows.STD_ERROR_HANDLE, h)
	os.Stderr = os.NewFile(uintptr(h), "CONOUT$")
	return true
}
