//go:build !windows

package platform

// AttachConsole is a no-op where GUI binaries keep the parent's stderr
func AttachConsole() bool {
	return false
}
