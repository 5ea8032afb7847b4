package core

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Config struct holds the loader config values
type Config struct {
	// Resource is the name loaded when no name is given
	Resource string `mapstructure:"resource" yaml:"resource" validate:"required"`

	// DefaultPayload is written to a resource that does not exist yet
	DefaultPayload string `mapstructure:"default_payload" yaml:"default_payload"`

	// BasePath is the directory resource names are resolved against
	BasePath string `mapstructure:"base_path" yaml:"base_path"`

	// Storage can be os or mem. Resources in mem storage only live as long
	// as the process.
	Storage string `mapstructure:"storage" yaml:"storage" validate:"oneof=os mem"`

	// ReadOnly blocks creating resources. Missing resources become
	// fatal errors.
	ReadOnly bool `mapstructure:"read_only" yaml:"read_only"`

	// CreateDirs creates missing parent directories of a new resource
	CreateDirs bool `mapstructure:"create_dirs" yaml:"create_dirs"`

	// StrictNotFound only creates a resource when the read failed because
	// it does not exist. Any other read error is returned as is.
	StrictNotFound bool `mapstructure:"strict_not_found" yaml:"strict_not_found"`

	// LogLevel can be debug, info, warn, error
	LogLevel string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`

	// LogFormat can be json or simple
	LogFormat string `mapstructure:"log_format" yaml:"log_format" validate:"oneof=json simple"`

	// ConfigPath is the directory the config file was read from
	ConfigPath string `mapstructure:"config_path" yaml:"-"`

	vi *viper.Viper
}

// NewConfig returns a config with all the default values set
func NewConfig() *Config {
	vi := newViper("", "")
	c := &Config{vi: vi}

	// defaults always decode
	_ = vi.Unmarshal(c)
	return c
}

// ReadInConfig function reads in the config file for the environment specified in the GO_ENV
// environment variable.
func ReadInConfig(configFile string) (*Config, error) {
	return ReadInConfigFS(configFile, afero.NewOsFs())
}

// ReadInConfigFS is the same as ReadInConfig but it also takes a filesystem as an argument
func ReadInConfigFS(configFile string, fs afero.Fs) (*Config, error) {
	cpath := path.Dir(configFile)
	cfile := stripExt(path.Base(configFile))

	vi := newViper(cpath, cfile)
	vi.SetFs(fs)

	if err := vi.ReadInConfig(); err != nil {
		return nil, err
	}

	inherits := vi.GetString("inherits")

	if inherits != "" {
		vi = newViper(cpath, stripExt(inherits))
		vi.SetFs(fs)

		if err := vi.ReadInConfig(); err != nil {
			return nil, err
		}

		if vi.IsSet("inherits") {
			return nil, fmt.Errorf("inherited config (%s) cannot itself inherit (%s)",
				inherits,
				vi.GetString("inherits"))
		}

		vi.SetConfigName(cfile)

		if err := vi.MergeInConfig(); err != nil {
			return nil, err
		}
	}

	c := &Config{vi: vi}
	c.ConfigPath = cpath

	if err := vi.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("failed to decode config, %v", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Viper returns the underlying viper instance, used to override
// individual values after the config was read
func (c *Config) Viper() *viper.Viper {
	return c.vi
}

// Reload decodes the config again from its viper instance
func (c *Config) Reload() error {
	if c.vi == nil {
		return nil
	}
	cpath := c.ConfigPath
	if err := c.vi.Unmarshal(c); err != nil {
		return fmt.Errorf("failed to decode config, %v", err)
	}
	c.ConfigPath = cpath
	return c.Validate()
}

// Validate checks the config values
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func newViper(configPath, configFile string) *viper.Viper {
	vi := viper.New()

	vi.SetEnvPrefix("RL")
	vi.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vi.AutomaticEnv()

	if configPath != "" {
		vi.AddConfigPath(configPath)
	}
	if configFile != "" {
		vi.SetConfigName(configFile)
	}
	vi.AddConfigPath("./config")

	vi.SetDefault("resource", "hello.txt")
	vi.SetDefault("default_payload", DefaultPayload)
	vi.SetDefault("base_path", ".")
	vi.SetDefault("storage", "os")
	vi.SetDefault("read_only", false)
	vi.SetDefault("create_dirs", false)
	vi.SetDefault("strict_not_found", false)

	vi.SetDefault("log_level", "info")
	vi.SetDefault("log_format", "simple")

	return vi
}

// GetConfigName returns the config file name for the GO_ENV environment
func GetConfigName() string {
	if len(os.Getenv("GO_ENV")) == 0 {
		return "dev"
	}

	ge := strings.ToLower(os.Getenv("GO_ENV"))

	switch {
	case strings.HasPrefix(ge, "pro"):
		return "prod"

	case strings.HasPrefix(ge, "sta"):
		return "stage"

	case strings.HasPrefix(ge, "tes"):
		return "test"

	case strings.HasPrefix(ge, "dev"):
		return "dev"
	}

	return ge
}

func stripExt(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}
