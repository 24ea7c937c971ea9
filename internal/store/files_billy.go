package store

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

const (
	filePerm = 0o644
	dirPerm  = 0o755
)

// billyFiles implements [LocalFiles] on top of a go-billy filesystem rooted
// at the local localization directory.
type billyFiles struct {
	fs billy.Filesystem
}

// NewLocalFiles returns [LocalFiles] rooted at dir on the OS filesystem,
// creating dir if needed.
func NewLocalFiles(dir string) (LocalFiles, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("empty local directory")
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("create local directory %q: %w", dir, err)
	}

	return &billyFiles{fs: osfs.New(dir)}, nil
}

// NewLocalFilesOn wraps an existing billy filesystem, e.g. memfs in tests.
func NewLocalFilesOn(fs billy.Filesystem) LocalFiles {
	return &billyFiles{fs: fs}
}

func (b *billyFiles) Exists(name string) (bool, error) {
	name, err := CleanPath(name)
	if err != nil {
		return false, err
	}

	_, err = b.fs.Stat(name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat %q: %w", name, err)
	}
}

func (b *billyFiles) ReadFile(name string) ([]byte, error) {
	name, err := CleanPath(name)
	if err != nil {
		return nil, err
	}

	data, err := util.ReadFile(b.fs, name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, name)
		}
		return nil, fmt.Errorf("read %q: %w", name, err)
	}
	return data, nil
}

// WriteFile writes data to a temporary sibling and renames it over name.
func (b *billyFiles) WriteFile(name string, data []byte) error {
	name, err := CleanPath(name)
	if err != nil {
		return err
	}

	dir := path.Dir(name)
	if dir != "." {
		if err = b.fs.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("mkdir %q: %w", dir, err)
		}
	}

	tmp, err := util.TempFile(b.fs, dir, "."+path.Base(name)+".tmp-")
	if err != nil {
		return fmt.Errorf("create temp file for %q: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = b.fs.Remove(tmpName)
		return fmt.Errorf("write temp file for %q: %w", name, err)
	}
	if err = tmp.Close(); err != nil {
		_ = b.fs.Remove(tmpName)
		return fmt.Errorf("close temp file for %q: %w", name, err)
	}

	if err = b.fs.Rename(tmpName, name); err != nil {
		_ = b.fs.Remove(tmpName)
		return fmt.Errorf("rename temp file to %q: %w", name, err)
	}

	return nil
}

func (b *billyFiles) Remove(name string) error {
	name, err := CleanPath(name)
	if err != nil {
		return err
	}

	if err = b.fs.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %q: %w", name, err)
	}
	return nil
}

// CleanPath normalises a slash-separated local name and rejects absolute
// paths and anything escaping the local directory with [ErrUnsafePath].
func CleanPath(name string) (string, error) {
	p := path.Clean(filepath.ToSlash(strings.TrimSpace(name)))
	if p == "." || p == "" || path.IsAbs(p) || p == ".." || strings.HasPrefix(p, "../") {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, name)
	}
	return p, nil
}
