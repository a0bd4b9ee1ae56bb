// Package logging provides the bot's append-only per-process log file
// (§6): one file, line-buffered, flushed after every line so a crash
// never loses the last written turn's record.
package logging

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/MyForking/halite3-bot-1/internal/application/common"
)

// FileLogger writes structured lines to an underlying append-only file.
type FileLogger struct {
	w io.Writer
}

// NewFileLogger wraps an already-opened, append-mode file handle.
func NewFileLogger(w io.Writer) *FileLogger {
	return &FileLogger{w: w}
}

// Log writes one line: "TIMESTAMP LEVEL message key=val key=val ...",
// with metadata keys sorted for reproducible output.
func (l *FileLogger) Log(level, message string, metadata map[string]interface{}) {
	fmt.Fprintf(l.w, "%s %s %s", time.Now().UTC().Format(time.RFC3339Nano), level, message)

	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(l.w, " %s=%v", k, metadata[k])
	}
	fmt.Fprintln(l.w)

	if f, ok := l.w.(interface{ Sync() error }); ok {
		_ = f.Sync()
	}
}

var _ common.ContainerLogger = (*FileLogger)(nil)
