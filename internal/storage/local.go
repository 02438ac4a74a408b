package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Local stores files below a directory on disk.
type Local struct {
	dir string
}

// NewLocal prepares dir (and any extra sibling folders) and returns a Local store writing into dir.
func NewLocal(dir string, extra ...string) (*Local, error) {
	for _, d := range append([]string{dir}, extra...) {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", d, err)
		}
	}
	return &Local{dir: dir}, nil
}

// Save writes data to dir/name.
func (l *Local) Save(_ context.Context, name string, data []byte) error {
	path, err := l.path(name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Delete removes dir/name; a missing file is not an error.
func (l *Local) Delete(_ context.Context, name string) error {
	path, err := l.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

func (l *Local) path(name string) (string, error) {
	if name == "" || filepath.Base(name) != name {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	return filepath.Join(l.dir, name), nil
}
