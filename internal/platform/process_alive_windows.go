//go:build windows

package platform

import "os"

// processAlive reports whether a process with the given pid exists.
// Signal 0 is not supported on Windows; FindProcess opens a handle and
// fails when no such process exists.
func processAlive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	_ = process.Release()
	return true
}
