package main

import (
	"github.com/spf13/cobra"

	"github.com/dshills/snipstorm/internal/config"
)

var configPath string

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "snipstorm",
		Short:         "Inspect snippet trigger matching and expansion",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to engine config file")
	cmd.AddCommand(matchCmd())
	cmd.AddCommand(expandCmd())
	return cmd
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(configPath)
}
