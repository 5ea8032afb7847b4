package afero

import (
	"io"
	"io/fs"
	"os"

	"github.com/dosco/resload/plugin"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

type AferoFS struct {
	fs afero.Fs
}

func NewFS(fs afero.Fs) *AferoFS { return &AferoFS{fs: fs} }

func NewFSWithBase(fs afero.Fs, basePath string) *AferoFS {
	return &AferoFS{fs: afero.NewBasePathFs(fs, basePath)}
}

func (f *AferoFS) CreateDir(path string) error {
	return f.fs.MkdirAll(path, os.ModePerm)
}

func (f *AferoFS) Create(path string) (io.WriteCloser, error) {
	return f.fs.Create(path)
}

func (f *AferoFS) Open(path string) (io.ReadCloser, error) {
	file, err := f.fs.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &plugin.NotFoundError{Path: path, Err: err}
	}
	if err != nil {
		return nil, err
	}
	return file, nil
}
