package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileSink writes exports under a root directory on the local filesystem.
type FileSink struct {
	root string
}

// NewFileSink creates the root directory if needed.
func NewFileSink(root string) (*FileSink, error) {
	if root == "" {
		return nil, fmt.Errorf("filesystem sink requires a directory")
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}
	return &FileSink{root: root}, nil
}

func (s *FileSink) Put(_ context.Context, name string, r io.Reader) (string, error) {
	dest := filepath.Join(s.root, name)

	// Write to a temp file first so a partial export is never visible
	// under its final name.
	tmp, err := os.CreateTemp(s.root, name+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("writing export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("closing export: %w", err)
	}
	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("moving export into place: %w", err)
	}
	return dest, nil
}
