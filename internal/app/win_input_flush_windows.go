//go:build windows

package app

import "golang.org/x/sys/windows"

// discardPendingInput drops keystrokes still queued in the console so they
// don't reach the shell once the viewer exits.
func discardPendingInput() {
	handle, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		debugf("stdin handle: %v", err)
		return
	}
	if err := windows.FlushConsoleInputBuffer(handle); err != nil {
		debugf("flush console input: %v", err)
	}
}
