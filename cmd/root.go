// Package cmd wires the catalog CLI: configuration, the composed store
// chain, and the interactive command loop.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/catalogkit/layered-catalog-go/internal/config"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "catalog",
	Short:   "An interactive in-memory catalog manager",
	Long:    `An interactive, line-oriented catalog manager: an in-memory base store wrapped by audit-logging and sorted-view decorators behind a single store contract.`,
	Version: version,
	RunE:    runShell,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/catalog/config.yaml)")
	rootCmd.Flags().Bool("sorted", true,
		"return listings sorted by title, then year")
	rootCmd.Flags().String("audit-log", "",
		"append audit entries to this JSON-lines file")
	rootCmd.Flags().Bool("trace", false,
		"export operation spans to stdout")
	rootCmd.Flags().Bool("debug", false,
		"enable debug logging")

	// Bind flags to viper
	_ = viper.BindPFlag("sorted", rootCmd.Flags().Lookup("sorted"))
	_ = viper.BindPFlag("audit.path", rootCmd.Flags().Lookup("audit-log"))
	_ = viper.BindPFlag("tracing.enabled", rootCmd.Flags().Lookup("trace"))
	_ = viper.BindPFlag("debug", rootCmd.Flags().Lookup("debug"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("sorted", defaults.Sorted)
	viper.SetDefault("debug", defaults.Debug)
	viper.SetDefault("audit.enabled", defaults.Audit.Enabled)
	viper.SetDefault("audit.path", defaults.Audit.Path)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .catalog/config.yaml (current directory)
		// 2. ~/.config/catalog/config.yaml (user config)
		if _, err := os.Stat(".catalog/config.yaml"); err == nil {
			viper.SetConfigFile(".catalog/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "catalog"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .catalog/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".catalog/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
