// Package clipboard copies text to the system clipboard of the terminal the
// tool runs in, using OSC 52 escape sequences.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// ErrNilWriter is returned when a Writer is built without an output.
var ErrNilWriter = errors.New("output must not be nil")

// Mode selects how the escape sequence is wrapped for terminal multiplexers.
type Mode int

const (
	// ModeDefault writes a plain OSC 52 sequence.
	ModeDefault Mode = iota
	// ModeTmux wraps the sequence in a tmux passthrough.
	ModeTmux
	// ModeScreen wraps the sequence in a GNU screen passthrough.
	ModeScreen
)

// Writer writes clipboard sequences to a terminal.
type Writer struct {
	out  io.Writer
	mode Mode
}

// New creates a Writer. A nil out is rejected.
func New(out io.Writer, mode Mode) (*Writer, error) {
	if out == nil {
		return nil, ErrNilWriter
	}

	return &Writer{out: out, mode: mode}, nil
}

// DetectMode picks the multiplexer mode from the environment.
func DetectMode() Mode {
	switch {
	case os.Getenv("TMUX") != "":
		return ModeTmux
	case os.Getenv("STY") != "":
		return ModeScreen
	default:
		return ModeDefault
	}
}

// Write copies text to the clipboard.
func (w *Writer) Write(ctx context.Context, text string) error {
	err := ctx.Err()
	if err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}

	seq := osc52.New(text)

	switch w.mode {
	case ModeTmux:
		seq = seq.Tmux()
	case ModeScreen:
		seq = seq.Screen()
	case ModeDefault:
	}

	_, err = seq.WriteTo(w.out)
	if err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}

	return nil
}
