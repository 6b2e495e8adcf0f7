package runtime

import (
	"fmt"
	"io"
	"os"
)

// TeeWriter duplicates everything written to it into a log file while
// echoing it to a terminal stream. Terminal write failures are ignored (a
// closed stdout must not take down logging); file write failures surface.
// Quiet mode writes to the file only.
type TeeWriter struct {
	file  *os.File
	term  io.Writer
	quiet bool
}

// NewTeeWriter opens (or creates) logpath in append mode. term is the
// terminal stream to echo to, usually os.Stdout or os.Stderr.
func NewTeeWriter(logpath string, term io.Writer, quiet bool) (*TeeWriter, error) {
	f, err := os.OpenFile(logpath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file %q: %w", logpath, err)
	}
	return &TeeWriter{file: f, term: term, quiet: quiet}, nil
}

func (w *TeeWriter) Write(p []byte) (int, error) {
	if !w.quiet && w.term != nil {
		_, _ = w.term.Write(p)
	}
	return w.file.Write(p)
}

// Flush forces buffered file contents to disk.
func (w *TeeWriter) Flush() error {
	return w.file.Sync()
}

func (w *TeeWriter) Close() error {
	return w.file.Close()
}
