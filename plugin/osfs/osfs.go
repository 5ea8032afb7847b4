package osfs

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dosco/resload/plugin"
	"github.com/pkg/errors"
)

type FS struct {
	bp string
}

func NewFS() *FS                    { return &FS{} }
func NewFSWithBase(path string) *FS { return &FS{bp: path} }

func (f *FS) CreateDir(path string) error {
	return os.MkdirAll(filepath.Join(f.bp, path), os.ModePerm)
}

func (f *FS) Create(path string) (io.WriteCloser, error) {
	file, err := os.Create(filepath.Join(f.bp, path))
	if err != nil {
		return nil, err
	}
	return file, nil
}

func (f *FS) Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Join(f.bp, path))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &plugin.NotFoundError{Path: path, Err: err}
	}
	if err != nil {
		return nil, err
	}
	return file, nil
}
