// Package logging builds the hclog loggers shared by the CLI and the UI.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"
)

// New returns the root "segbar" logger. verbose lowers the level to debug.
func New(out io.Writer, verbose bool) hclog.Logger {
	if out == nil {
		out = os.Stderr
	}
	level := hclog.Info
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "segbar",
		Level:  level,
		Output: out,
	})
}

// Discard returns a logger that drops everything.
func Discard() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "segbar",
		Level:  hclog.Off,
		Output: io.Discard,
	})
}

// Tee returns a logger that writes to both the parent's configured output
// and sink. It keeps the parent's name and level.
func Tee(parent hclog.Logger, out io.Writer, sink io.Writer) hclog.Logger {
	if parent == nil {
		parent = Discard()
	}
	if out == nil {
		out = os.Stderr
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   parent.Name(),
		Level:  parent.GetLevel(),
		Output: io.MultiWriter(out, sink),
	})
}

// LineBuffer is an io.Writer that keeps the last Limit complete lines.
// The UI log pane reads it.
type LineBuffer struct {
	mu      sync.Mutex
	lines   []string
	partial string
	Limit   int
}

// NewLineBuffer returns a buffer holding at most limit lines.
func NewLineBuffer(limit int) *LineBuffer {
	return &LineBuffer{Limit: limit}
}

func (b *LineBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	text := b.partial + string(p)
	parts := strings.Split(text, "\n")
	b.partial = parts[len(parts)-1]
	for _, line := range parts[:len(parts)-1] {
		b.appendLocked(strings.TrimRight(line, "\r"))
	}
	return len(p), nil
}

// Append adds a single line.
func (b *LineBuffer) Append(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.appendLocked(line)
}

func (b *LineBuffer) appendLocked(line string) {
	b.lines = append(b.lines, line)
	if b.Limit > 0 && len(b.lines) > b.Limit {
		offset := len(b.lines) - b.Limit
		b.lines = append([]string(nil), b.lines[offset:]...)
	}
}

// Lines returns a copy of the buffered lines, oldest first.
func (b *LineBuffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.lines...)
}
