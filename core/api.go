// Package core provides the resource loader.
//
// Example usage:
/*
	package main

	import (
		"fmt"
		"log"

		"github.com/dosco/resload/core"
		"github.com/dosco/resload/plugin/osfs"
	)

	func main() {
		rl := core.NewLoader(osfs.NewFSWithBase("./data"))

		msg, err := rl.Load("hello.txt")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(msg)
	}
*/
package core

import (
	"path/filepath"

	"github.com/dosco/resload/plugin"
	aferofs "github.com/dosco/resload/plugin/afero"
	"github.com/dosco/resload/plugin/osfs"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// NewFS returns the storage medium selected in the config
func NewFS(conf *Config) plugin.FS {
	bp := conf.BasePath
	if bp == "" {
		bp = "."
	}

	var fs afero.Fs

	switch {
	case conf.Storage == "mem":
		fs = afero.NewMemMapFs()
	case conf.ReadOnly:
		fs = afero.NewOsFs()
	default:
		return osfs.NewFSWithBase(bp)
	}

	if conf.ReadOnly {
		fs = afero.NewReadOnlyFs(fs)
	}

	// afero base paths must be absolute to match cleaned names
	if abs, err := filepath.Abs(bp); err == nil {
		bp = abs
	}
	return aferofs.NewFSWithBase(fs, bp)
}

// New creates a loader with the storage medium and options from conf
func New(conf *Config, log *zap.SugaredLogger) *Loader {
	return NewLoaderFromConfig(conf, NewFS(conf), OptionSetLogger(log))
}
