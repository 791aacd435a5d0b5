package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	InitConfig()

	assert.Equal(t, 64, viper.GetInt(KeyMaxAttempts))
	assert.Equal(t, "", viper.GetString(KeyPeriodCeiling))
	assert.False(t, viper.GetBool(KeyTablePrint))
	assert.False(t, viper.GetBool(KeyProgress))
	assert.Equal(t, 4, viper.GetInt(KeyParallel))
}

func TestInitConfig_WritesDefaultFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	InitConfig()

	_, err = os.Stat(filepath.Join(dir, "qf_config.yaml"))
	assert.NoError(t, err)
}
