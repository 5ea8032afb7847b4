package core_test

import (
	"testing"

	"github.com/dosco/resload/core"
	aferofs "github.com/dosco/resload/plugin/afero"
	"github.com/dosco/resload/plugin/osfs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("defaults", configDefaults)
	t.Run("readInConfigWithEnvVars", readInConfigWithEnvVars)
	t.Run("inheritsOnlyOnce", inheritsOnlyOnce)
	t.Run("invalidValues", invalidValues)
	t.Run("selectStorage", selectStorage)
}

func configDefaults(t *testing.T) {
	c := core.NewConfig()

	assert.Equal(t, "hello.txt", c.Resource)
	assert.Equal(t, "Hello world!\n", c.DefaultPayload)
	assert.Equal(t, "os", c.Storage)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "simple", c.LogFormat)
	assert.False(t, c.StrictNotFound)
	assert.False(t, c.CreateDirs)
	assert.NoError(t, c.Validate())
}

// nolint: errcheck
func readInConfigWithEnvVars(t *testing.T) {
	devConfig := "resource: dev.txt\nlog_level: debug\n"
	prodConfig := "inherits: dev\nresource: \"prod.txt\"\nstrict_not_found: true\n"

	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/dev.yml", []byte(devConfig), 0o666)
	afero.WriteFile(fs, "/prod.yml", []byte(prodConfig), 0o666)

	c, err := core.ReadInConfigFS("/dev.yml", fs)
	require.NoError(t, err)
	assert.Equal(t, "dev.txt", c.Resource)
	assert.Equal(t, "/", c.ConfigPath)

	c, err = core.ReadInConfigFS("/prod.yml", fs)
	require.NoError(t, err)
	assert.Equal(t, "prod.txt", c.Resource)
	assert.Equal(t, "debug", c.LogLevel)
	assert.True(t, c.StrictNotFound)

	t.Setenv("RL_RESOURCE", "env.txt")

	c, err = core.ReadInConfigFS("/prod.yml", fs)
	require.NoError(t, err)
	assert.Equal(t, "env.txt", c.Resource)
}

// nolint: errcheck
func inheritsOnlyOnce(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/base.yml", []byte("inherits: root\n"), 0o666)
	afero.WriteFile(fs, "/child.yml", []byte("inherits: base\n"), 0o666)

	_, err := core.ReadInConfigFS("/child.yml", fs)
	assert.ErrorContains(t, err, "cannot itself inherit")
}

// nolint: errcheck
func invalidValues(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/dev.yml", []byte("storage: s3\n"), 0o666)

	_, err := core.ReadInConfigFS("/dev.yml", fs)
	assert.ErrorContains(t, err, "invalid config")

	_, err = core.ReadInConfigFS("/missing.yml", fs)
	assert.Error(t, err)
}

func selectStorage(t *testing.T) {
	c := core.NewConfig()
	c.BasePath = t.TempDir()

	assert.IsType(t, &osfs.FS{}, core.NewFS(c))

	c.ReadOnly = true
	assert.IsType(t, &aferofs.AferoFS{}, core.NewFS(c))

	_, err := core.NewLoaderFromConfig(c, core.NewFS(c)).Load("hello.txt")
	assert.Error(t, err)

	c.ReadOnly = false
	c.Storage = "mem"
	msg, err := core.NewLoaderFromConfig(c, core.NewFS(c)).Load("hello.txt")
	require.NoError(t, err)
	assert.Equal(t, core.DefaultPayload, msg)
}
