// Package platform holds OS-specific process setup for the desktop shell.
package platform

import "os"

// StderrTarget returns the stream startup errors should be written to after
// AttachConsole has had its chance to rebind it.
func StderrTarget() *os.File {
	return os.Stderr
}
