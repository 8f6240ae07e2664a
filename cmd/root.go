// Package cmd implements the command-line interface for rmgpulse.
// It provides the root command and subcommands for harvesting and
// serving RMG industry news.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rmgpulse/rmgpulse/cmd/harvest"
	"github.com/rmgpulse/rmgpulse/cmd/httpd"
	cmdsources "github.com/rmgpulse/rmgpulse/cmd/sources"
)

const version = "1.0.0"

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "rmgpulse",
		Short: "An RMG industry news aggregator",
		Long:  `Scrapes, normalizes, and serves Ready-Made Garment industry news.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command.
func Execute() error {
	// Load .env early so environment variables are available to viper.
	_ = godotenv.Load()

	if err := initConfig(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is ./config.yaml)",
	)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("rmgpulse version %s\n", version)
		},
	})

	rootCmd.AddCommand(harvest.Command())
	rootCmd.AddCommand(httpd.Command())
	rootCmd.AddCommand(cmdsources.Command())
}

// initConfig reads the config file and environment variables into viper.
// The config file is optional; defaults and environment variables cover
// every setting.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: config file not found: %v (using defaults and environment variables)\n", err)
	}

	return nil
}
