package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alexanderramin/later/internal/domain"
)

// JSONDocumentRepo implements DocumentRepo with a single JSON file.
type JSONDocumentRepo struct {
	path string
}

// NewJSONDocumentRepo creates a JSONDocumentRepo for the file at path. The
// file and its directory are created on first save.
func NewJSONDocumentRepo(path string) *JSONDocumentRepo {
	return &JSONDocumentRepo{path: path}
}

func (r *JSONDocumentRepo) Location() string { return r.path }

func (r *JSONDocumentRepo) Load(ctx context.Context) (domain.Lists, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoDocument
	}
	lists, err := decodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", r.path, err)
	}
	return lists, nil
}

// Save replaces the file using the temp-file, fsync, rename pattern so a
// failed write never leaves a truncated document behind.
func (r *JSONDocumentRepo) Save(ctx context.Context, lists domain.Lists) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := encodeDocument(lists)
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".later-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing document: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
