package app

import (
	"fmt"
	"os"
	"sync"
	"time"
)

const defaultDebugFile = "chatmd-debug.log"

var (
	debugEnabled = os.Getenv("CHATMD_DEBUG") == "1"
	debugMu      sync.Mutex
)

// Debugf appends a timestamped line to the debug log when CHATMD_DEBUG=1.
// CHATMD_DEBUG_FILE overrides the log path.
func Debugf(format string, args ...interface{}) {
	debugf(format, args...)
}

func debugf(format string, args ...interface{}) {
	if !debugEnabled {
		return
	}
	debugMu.Lock()
	defer debugMu.Unlock()

	path := os.Getenv("CHATMD_DEBUG_FILE")
	if path == "" {
		path = defaultDebugFile
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	timestamp := time.Now().Format(time.RFC3339Nano)
	_, _ = fmt.Fprintf(f, "%s "+format+"\n", append([]interface{}{timestamp}, args...)...)
	_ = f.Close()
}
