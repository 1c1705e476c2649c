package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	crerr "github.com/cockroachdb/errors"
)

// File is a document on the local filesystem.
type File struct {
	path string
	perm fs.FileMode
}

func NewFile(path string) *File {
	return &File{path: path, perm: 0o644}
}

func (f *File) Name() string {
	return f.path
}

func (f *File) ReadAll(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, MarkIO(err, "read %s", f.path)
	}

	body, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, crerr.Mark(MarkIO(err, "read %s", f.path), ErrNotExist)
	}
	if err != nil {
		return nil, MarkIO(err, "read %s", f.path)
	}
	return body, nil
}

// ReplaceAll writes body to a sibling temp file and renames it over the document,
// so readers see either the old or the new content.
func (f *File) ReplaceAll(ctx context.Context, body []byte) error {
	if err := ctx.Err(); err != nil {
		return MarkIO(err, "write %s", f.path)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return MarkIO(err, "create dir %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return MarkIO(err, "create temp for %s", f.path)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(body); err != nil {
		_ = tmp.Close()
		cleanup()
		return MarkIO(err, "write %s", tmpName)
	}
	if err := tmp.Chmod(f.perm); err != nil {
		_ = tmp.Close()
		cleanup()
		return MarkIO(err, "chmod %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return MarkIO(err, "close %s", tmpName)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		cleanup()
		return MarkIO(err, "replace %s", f.path)
	}
	return nil
}
