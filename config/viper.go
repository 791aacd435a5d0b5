package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config keys understood by the CLI; flags override these, and these
// override the built-in defaults.
const (
	KeyMaxAttempts   = "maxAttempts"
	KeyPeriodCeiling = "periodCeiling"
	KeyTablePrint    = "tablePrint"
	KeyProgress      = "progress"
	KeyParallel      = "parallel"
)

func InitConfig() {
	viper.SetConfigName("qf_config") // name of config file (without extension)
	viper.SetConfigType("yaml")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" && homeDir != "" {
		xdgConfigHome = filepath.Join(homeDir, ".config")
	}

	configPaths := []string{
		"/etc/qfactor",
		"/usr/local/etc/qfactor",
	}

	if xdgConfigHome != "" {
		configPaths = append(configPaths, filepath.Join(xdgConfigHome, "qfactor"))
	}

	if homeDir != "" {
		configPaths = append(configPaths,
			filepath.Join(homeDir, ".qfactor"),
			homeDir,
		)
	}

	configPaths = append(configPaths, ".")

	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	viper.SetDefault(KeyMaxAttempts, 64)
	viper.SetDefault(KeyPeriodCeiling, "") // empty means n itself
	viper.SetDefault(KeyTablePrint, false)
	viper.SetDefault(KeyProgress, false)
	viper.SetDefault(KeyParallel, 4)

	err = viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file found, writing default qf_config.yaml to the working directory")
		err := viper.SafeWriteConfigAs("./qf_config.yaml")
		if err != nil {
			return
		}
	}

	err = viper.ReadInConfig()
	if err != nil {
		return
	}
}
