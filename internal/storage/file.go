package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// File stores each key as one file under a directory. Writes go to a
// temporary file in the same directory and are renamed into place, so a
// failed or interrupted write never replaces the previous value.
type File struct {
	dir   string
	quota int
}

// NewFile creates the directory if needed and returns a file backend rooted at it
func NewFile(dir string, quota int) (*File, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &BackendError{Op: "init", Key: dir, Message: "failed to create directory", Cause: err}
	}
	return &File{dir: dir, quota: quota}, nil
}

// Dir returns the root directory
func (f *File) Dir() string {
	return f.dir
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, url.PathEscape(key)+".json")
}

// Get implements Backend
func (f *File) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, &BackendError{Op: "get", Key: key, Message: "failed to read slot", Cause: err}
	}
	return data, true, nil
}

// Set implements Backend
func (f *File) Set(_ context.Context, key string, value []byte) error {
	if err := checkQuota(f.quota, value); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.dir, ".slot-*")
	if err != nil {
		return &BackendError{Op: "set", Key: key, Message: "failed to create temp file", Cause: err}
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) //nolint:errcheck // already renamed on success

	if _, err := tmp.Write(value); err != nil {
		tmp.Close() //nolint:errcheck
		return &BackendError{Op: "set", Key: key, Message: "failed to write temp file", Cause: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close() //nolint:errcheck
		return &BackendError{Op: "set", Key: key, Message: "failed to sync temp file", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		return &BackendError{Op: "set", Key: key, Message: "failed to close temp file", Cause: err}
	}
	if err := os.Rename(tmpPath, f.path(key)); err != nil {
		return &BackendError{Op: "set", Key: key, Message: "failed to replace slot", Cause: err}
	}
	return nil
}
