package persist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// FixedChooser always picks Path, falling back to the request's default path.
// With neither set it cancels.
type FixedChooser struct {
	Path string
}

// Choose implements Chooser.
func (c FixedChooser) Choose(ctx context.Context, defaultPath string) (string, error) {
	err := ctx.Err()
	if err != nil {
		return "", fmt.Errorf("choose path: %w", err)
	}

	switch {
	case c.Path != "":
		return c.Path, nil
	case defaultPath != "":
		return defaultPath, nil
	default:
		return "", ErrCanceled
	}
}

// PromptChooser asks for the path on a terminal. A blank answer accepts the
// default path; a blank answer without a default, or end of input, cancels.
// One goroutine reads In line by line for the chooser's lifetime, so an
// answer typed after a prompt gave up goes to the next prompt instead of
// being lost.
type PromptChooser struct {
	in    io.Reader
	out   io.Writer
	once  sync.Once
	lines chan promptLine
}

type promptLine struct {
	text string
	err  error
}

// NewPromptChooser creates a PromptChooser reading answers from in and
// writing prompts to out.
func NewPromptChooser(in io.Reader, out io.Writer) *PromptChooser {
	return &PromptChooser{
		in:    in,
		out:   out,
		once:  sync.Once{},
		lines: make(chan promptLine),
	}
}

func (c *PromptChooser) readLines() {
	defer close(c.lines)

	reader := bufio.NewReader(c.in)

	for {
		text, err := reader.ReadString('\n')
		c.lines <- promptLine{text: text, err: err}

		if err != nil {
			return
		}
	}
}

// Choose implements Chooser. It gives up when ctx is done.
func (c *PromptChooser) Choose(ctx context.Context, defaultPath string) (string, error) {
	prompt := "Save to: "
	if defaultPath != "" {
		prompt = fmt.Sprintf("Save to [%s]: ", defaultPath)
	}

	_, err := fmt.Fprint(c.out, prompt)
	if err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	c.once.Do(func() { go c.readLines() })

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("choose path: %w", ctx.Err())
	case ans, ok := <-c.lines:
		if !ok {
			return "", ErrCanceled
		}

		line := strings.TrimSpace(ans.text)

		if ans.err != nil && line == "" {
			return "", ErrCanceled
		}

		if line != "" {
			return line, nil
		}

		if defaultPath != "" {
			return defaultPath, nil
		}

		return "", ErrCanceled
	}
}
