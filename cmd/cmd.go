package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dosco/resload/core"
	"github.com/dosco/resload/internal/util"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	// These variables are set using -ldflags
	version string
	commit  string
	date    string
)

var (
	log   *zap.SugaredLogger
	conf  *core.Config
	cpath string
	cname string
	sets  []string
	cfs   afero.Fs = afero.NewOsFs()

	// stdout is kept for resource content
	logOut io.Writer = os.Stderr
)

func Cmd() {
	log = newLogger(false, "info")

	if err := rootCmd().Execute(); err != nil {
		log.Fatalf("%s", err)
	}
}

func rootCmd() *cobra.Command {
	cobra.EnableCommandSorting = false
	c := &cobra.Command{
		Use:           "resload",
		Short:         BuildDetails(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c.PersistentFlags().StringVar(&cpath,
		"path", "./config", "path to config files")

	c.PersistentFlags().StringVar(&cname,
		"config", "", "config file name (default from GO_ENV)")

	c.PersistentFlags().StringSliceVar(&sets,
		"set", nil, "override a config value, eg. RL_CREATE_DIRS=true")

	c.AddCommand(loadCmd())
	c.AddCommand(confCmd())
	c.AddCommand(versionCmd())
	return c
}

// setup reads in the config and rebuilds the logger from it. A missing
// config file is not an error, the defaults are used instead.
func setup() error {
	cp, err := filepath.Abs(cpath)
	if err != nil {
		return err
	}

	cn := cname
	if cn == "" {
		cn = core.GetConfigName()
	}

	var nf viper.ConfigFileNotFoundError
	conf, err = core.ReadInConfigFS(filepath.Join(cp, cn), cfs)

	switch {
	case errors.As(err, &nf):
		conf = core.NewConfig()
	case err != nil:
		return err
	}

	if err := applySets(conf, sets); err != nil {
		return err
	}

	log = newLogger(conf.LogFormat == "json", conf.LogLevel)
	return nil
}

func newLogger(json bool, level string) *zap.SugaredLogger {
	return util.NewLoggerWithOut(logOut, json, level).Sugar()
}

func applySets(c *core.Config, kvs []string) error {
	if len(kvs) == 0 {
		return nil
	}
	for _, kv := range kvs {
		v := strings.SplitN(kv, "=", 2)
		if len(v) != 2 {
			return errors.New("invalid --set value, expected KEY=VALUE: " + kv)
		}
		if !util.SetKeyValue(c.Viper(), v[0], v[1]) {
			return errors.New("unknown config key: " + v[0])
		}
	}
	return c.Reload()
}
