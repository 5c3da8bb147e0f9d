package clipboard_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"testing"

	"github.com/0xalexb/confgen/clipboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Write(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		mode       clipboard.Mode
		wantPrefix string
	}{
		{name: "plain", mode: clipboard.ModeDefault, wantPrefix: "\x1b]52;"},
		{name: "tmux", mode: clipboard.ModeTmux, wantPrefix: "\x1bPtmux;"},
		{name: "screen", mode: clipboard.ModeScreen, wantPrefix: "\x1bP"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			writer, err := clipboard.New(&buf, testCase.mode)
			require.NoError(t, err)

			require.NoError(t, writer.Write(context.Background(), "log:\n  level: info\n"))

			assert.Contains(t, buf.String(), testCase.wantPrefix)
			assert.Contains(t, buf.String(), base64.StdEncoding.EncodeToString([]byte("log:\n  level: info\n")))
		})
	}
}

func TestWriter_CanceledContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	writer, err := clipboard.New(&buf, clipboard.ModeDefault)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, writer.Write(ctx, "x"), context.Canceled)
	assert.Empty(t, buf.String())
}

func TestNew_NilOutput(t *testing.T) {
	t.Parallel()

	_, err := clipboard.New(nil, clipboard.ModeDefault)

	require.ErrorIs(t, err, clipboard.ErrNilWriter)
}
