package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// MaxDraftSize caps the size of a draft file. Drafts are hand-edited and
// small; anything larger is almost certainly the wrong file.
const MaxDraftSize = 1 << 20

var (
	// ErrPathIsDirectory is returned when the draft path points to a directory.
	ErrPathIsDirectory = errors.New("path is a directory, not a file")
	// ErrDraftTooLarge is returned when the draft file exceeds MaxDraftSize.
	ErrDraftTooLarge = errors.New("draft file too large")
)

// Fetcher implements config.DataFetcher for a draft file on disk.
// The file is read once at construction and the contents are cached.
type Fetcher struct {
	filepath string
	data     []byte
}

// NewFetcher returns a constructor for a Fetcher reading the draft at fpath.
// The constructor shape lets fx decide when the file is read.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat draft %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("draft %q: %w", cleanPath, ErrPathIsDirectory)
		}

		if stat.Size() > MaxDraftSize {
			return nil, fmt.Errorf("draft %q is %d bytes: %w", cleanPath, stat.Size(), ErrDraftTooLarge)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- user-selected draft path
		if err != nil {
			return nil, fmt.Errorf("reading draft %q: %w", cleanPath, err)
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

// Path returns the cleaned path the draft was read from.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch returns a copy of the cached draft bytes.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
