package protocol

import (
	"bufio"
	"fmt"
	"io"

	"github.com/MyForking/halite3-bot-1/internal/domain/solver"
)

// Writer emits the bot's name line and per-turn command lines.
type Writer struct {
	w *bufio.Writer
}

// NewWriter wraps w, line-buffering output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteReady prints the post-init "ready" line and flushes it
// immediately so the engine sees it before the first turn is requested.
func (w *Writer) WriteReady(name string) error {
	if _, err := fmt.Fprintln(w.w, name); err != nil {
		return err
	}
	return w.w.Flush()
}

// WriteCommands serializes one turn's resolved commands as a single
// space-separated line and flushes it (§6's exact token grammar).
func (w *Writer) WriteCommands(commands []solver.Command) error {
	for i, c := range commands {
		if i > 0 {
			if _, err := fmt.Fprint(w.w, " "); err != nil {
				return err
			}
		}
		switch c.Kind {
		case solver.CommandMove:
			if _, err := fmt.Fprintf(w.w, "m %d %s", c.ShipID, c.Direction); err != nil {
				return err
			}
		case solver.CommandSpawn:
			if _, err := fmt.Fprint(w.w, "g"); err != nil {
				return err
			}
		case solver.CommandConvert:
			if _, err := fmt.Fprintf(w.w, "c %d", c.ShipID); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintln(w.w); err != nil {
		return err
	}
	return w.w.Flush()
}
