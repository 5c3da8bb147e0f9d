package persist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// FilePerm is the permission of written files.
const FilePerm os.FileMode = 0o644

// ErrCanceled is returned by a Chooser when the operator dismissed the save step.
var ErrCanceled = errors.New("save canceled")

// ErrPathIsDirectory is returned when the chosen path points to a directory.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// ErrNilChooser is returned when a Saver is built without a Chooser.
var ErrNilChooser = errors.New("chooser must not be nil")

// Request is a save request.
type Request struct {
	Content     string `json:"content"`
	DefaultPath string `json:"defaultPath,omitempty"`
}

// Result is the outcome of a save. Exactly one of Canceled, FilePath or Error is set.
type Result struct {
	Canceled bool   `json:"canceled,omitempty"`
	FilePath string `json:"filePath,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Err converts a failed result back into an error.
func (r Result) Err() error {
	switch {
	case r.Canceled:
		return ErrCanceled
	case r.Error != "":
		return errors.New(r.Error) //nolint:err113 // message comes from the boundary
	default:
		return nil
	}
}

// Chooser picks the destination of a save, like a host save dialog.
// It returns ErrCanceled when the operator declines.
type Chooser interface {
	Choose(ctx context.Context, defaultPath string) (string, error)
}

// Saver writes content to a path picked by a Chooser.
type Saver struct {
	chooser Chooser
}

// NewSaver creates a Saver backed by chooser.
func NewSaver(chooser Chooser) (*Saver, error) {
	if chooser == nil {
		return nil, ErrNilChooser
	}

	return &Saver{chooser: chooser}, nil
}

// Save asks the Chooser for a path and writes req.Content to it byte for byte.
// Failures are reported in the Result, never returned.
func (s *Saver) Save(ctx context.Context, req Request) Result {
	path, err := s.chooser.Choose(ctx, req.DefaultPath)
	if err != nil {
		if errors.Is(err, ErrCanceled) {
			slog.Info("save canceled")

			return Result{Canceled: true}
		}

		slog.Error("failed to choose save path", "error", err)

		return Result{Error: err.Error()}
	}

	written, err := WriteFile(path, []byte(req.Content))
	if err != nil {
		slog.Error("failed to save file", "path", path, "error", err)

		return Result{Error: err.Error()}
	}

	slog.Info("file saved", "path", written, "bytes", len(req.Content))

	return Result{FilePath: written}
}

// WriteFile replaces the file at fpath with data. The data goes to a
// temporary file next to the destination first and is renamed into place, so
// a failed write never leaves a truncated file behind. A symlinked
// destination is followed and its target replaced, leaving the link intact.
// An existing file keeps its permissions; new files get FilePerm.
func WriteFile(fpath string, data []byte) (string, error) {
	cleanPath := filepath.Clean(fpath)
	target := cleanPath
	perm := FilePerm

	resolved, err := filepath.EvalSymlinks(cleanPath)
	if err == nil {
		target = resolved
	}

	stat, err := os.Stat(target)
	if err == nil {
		if stat.IsDir() {
			return "", fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		perm = stat.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*")
	if err != nil {
		return "", fmt.Errorf("creating temp file for %q: %w", cleanPath, err)
	}

	tmpName := tmp.Name()

	defer func() {
		_ = os.Remove(tmpName)
	}()

	_, err = tmp.Write(data)
	if err != nil {
		_ = tmp.Close()

		return "", fmt.Errorf("writing file %q: %w", cleanPath, err)
	}

	err = tmp.Chmod(perm)
	if err != nil {
		_ = tmp.Close()

		return "", fmt.Errorf("setting permissions on %q: %w", cleanPath, err)
	}

	err = tmp.Close()
	if err != nil {
		return "", fmt.Errorf("closing file %q: %w", cleanPath, err)
	}

	err = os.Rename(tmpName, target)
	if err != nil {
		return "", fmt.Errorf("renaming into %q: %w", cleanPath, err)
	}

	return cleanPath, nil
}
