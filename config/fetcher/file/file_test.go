package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDraft(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	return path
}

func TestFetcher_Fetch_Success(t *testing.T) {
	t.Parallel()

	content := []byte(`
log:
  level: debug
connection:
  url: redis://127.0.0.1:6379
`)

	path := writeDraft(t, "draft.yaml", content)

	fetcher, err := NewFetcher(path)()
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Equal(t, content, data)
	assert.Equal(t, path, fetcher.Path())
}

func TestFetcher_FileNotFound(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher("/nonexistent/path/draft.yaml")()

	require.Error(t, err)
	assert.Nil(t, fetcher)
	assert.Contains(t, err.Error(), "stat draft")
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestFetcher_EmptyFile(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher(writeDraft(t, "empty.yaml", nil))()
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFetcher_DirectoryPath(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher(t.TempDir())()

	assert.Nil(t, fetcher)
	require.ErrorIs(t, err, ErrPathIsDirectory)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestFetcher_SizeLimit(t *testing.T) {
	t.Parallel()

	atLimit := make([]byte, MaxDraftSize)
	for i := range atLimit {
		atLimit[i] = byte('a' + (i % 26))
	}

	fetcher, err := NewFetcher(writeDraft(t, "limit.yaml", atLimit))()
	require.NoError(t, err)

	data, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Len(t, data, MaxDraftSize)

	fetcher, err = NewFetcher(writeDraft(t, "over.yaml", append(atLimit, 'z')))()

	assert.Nil(t, fetcher)
	require.ErrorIs(t, err, ErrDraftTooLarge)
}

func TestFetcher_CleansPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "draft.yaml"), []byte("log: {}"), 0o600))

	fetcher, err := NewFetcher(dir + "/./sub/../draft.yaml")()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "draft.yaml"), fetcher.Path())
}

func TestFetcher_FileModifiedAfterConstruction_ReturnsCachedData(t *testing.T) {
	t.Parallel()

	original := []byte(`connection: {url: "redis://a"}`)
	modified := []byte(`connection: {url: "redis://b"}`)

	path := writeDraft(t, "draft.yaml", original)

	fetcher, err := NewFetcher(path)()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, modified, 0o600))

	data, err := fetcher.Fetch()
	require.NoError(t, err)

	assert.Equal(t, original, data, "an edit on disk must not leak into a loaded draft")
}

func TestFetcher_Fetch_ReturnsCopy(t *testing.T) {
	t.Parallel()

	content := []byte(`log: {level: info}`)

	fetcher, err := NewFetcher(writeDraft(t, "draft.yaml", content))()
	require.NoError(t, err)

	first, err := fetcher.Fetch()
	require.NoError(t, err)

	first[0] = 'X'

	second, err := fetcher.Fetch()
	require.NoError(t, err)

	assert.Equal(t, content, second)
}
