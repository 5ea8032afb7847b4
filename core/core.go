package core

import (
	"fmt"
	"io"
	"path"

	"github.com/dosco/resload/plugin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DefaultPayload is written to resources created by the loader
const DefaultPayload = "Hello world!\n"

// ErrEmptyName is returned when Load is called without a resource name
var ErrEmptyName = errors.New("resource name is empty")

// Op is the step of a load that failed
type Op string

const (
	OpRead   Op = "read"
	OpCreate Op = "create"
	OpWrite  Op = "write"
)

// LoadError is the fatal error returned by Load
type LoadError struct {
	Name string
	Op   Op
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Name, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Loader reads resources from a storage medium, creating them with a
// default payload when they are missing.
type Loader struct {
	fs      plugin.FS
	log     *zap.SugaredLogger
	payload string
	resName string
	mkdirs  bool
	strict  bool
}

// Option configures a Loader
type Option func(*Loader)

// OptionSetLogger sets the logger failures are reported on
func OptionSetLogger(log *zap.SugaredLogger) Option {
	return func(l *Loader) { l.log = log }
}

// OptionSetPayload sets the content written to new resources
func OptionSetPayload(payload string) Option {
	return func(l *Loader) { l.payload = payload }
}

// OptionCreateDirs creates missing parent directories of new resources
func OptionCreateDirs(v bool) Option {
	return func(l *Loader) { l.mkdirs = v }
}

// OptionStrictNotFound limits creation to read failures caused by a
// missing resource
func OptionStrictNotFound(v bool) Option {
	return func(l *Loader) { l.strict = v }
}

// OptionSetResource sets the name used by LoadDefault
func OptionSetResource(name string) Option {
	return func(l *Loader) { l.resName = name }
}

// NewLoader creates a loader on top of fs
func NewLoader(fs plugin.FS, options ...Option) *Loader {
	l := &Loader{
		fs:      fs,
		log:     zap.NewNop().Sugar(),
		payload: DefaultPayload,
		resName: "hello.txt",
	}
	for _, op := range options {
		op(l)
	}
	return l
}

// NewLoaderFromConfig creates a loader using the values in conf
func NewLoaderFromConfig(conf *Config, fs plugin.FS, options ...Option) *Loader {
	opts := []Option{
		OptionSetPayload(conf.DefaultPayload),
		OptionSetResource(conf.Resource),
		OptionCreateDirs(conf.CreateDirs),
		OptionStrictNotFound(conf.StrictNotFound),
	}
	return NewLoader(fs, append(opts, options...)...)
}

// LoadDefault loads the resource name the loader was configured with
func (l *Loader) LoadDefault() (string, error) {
	return l.Load(l.resName)
}

// Load returns the content of the named resource. A resource that cannot
// be read is created with the default payload and read back.
func (l *Loader) Load(name string) (string, error) {
	if name == "" {
		return "", &LoadError{Name: name, Op: OpRead, Err: ErrEmptyName}
	}

	msg, err := l.read(name)
	if err == nil {
		return msg, nil
	}
	l.log.Warnf("Failed to read file: %s", err)

	if l.strict && !errors.Is(err, plugin.ErrNotFound) {
		return "", &LoadError{Name: name, Op: OpRead, Err: err}
	}

	ferr := l.create(name)

	// the resource is read again even when create failed, but a failed
	// create or write is always fatal
	msg, err = l.read(name)

	if ferr != nil {
		return "", ferr
	}
	if err != nil {
		return "", &LoadError{Name: name, Op: OpRead, Err: err}
	}
	return msg, nil
}

func (l *Loader) read(name string) (string, error) {
	f, err := l.fs.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck

	b, err := io.ReadAll(f)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", name)
	}
	return string(b), nil
}

func (l *Loader) create(name string) *LoadError {
	if l.mkdirs {
		if dir := path.Dir(name); dir != "." && dir != "/" {
			if err := l.fs.CreateDir(dir); err != nil {
				l.log.Errorf("Failed to create file: %s", err)
				return &LoadError{Name: name, Op: OpCreate, Err: err}
			}
		}
	}

	f, err := l.fs.Create(name)
	if err != nil {
		l.log.Errorf("Failed to create file: %s", err)
		return &LoadError{Name: name, Op: OpCreate, Err: err}
	}

	_, err = io.WriteString(f, l.payload)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		l.log.Errorf("Failed to write data: %s", err)
		return &LoadError{Name: name, Op: OpWrite, Err: err}
	}

	l.log.Infof("created %s", name)
	return nil
}
