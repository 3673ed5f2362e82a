package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roleboard/roleboard/internal/config"
)

func init() { //nolint: gochecknoinits
	configCmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration directory")

	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:   "config",
	Short: "Print the effective configuration as TOML",
	RunE: func(_ *cobra.Command, _ []string) error {
		c, err := config.ReadConfig(configPath)
		if err != nil {
			return err
		}

		out, err := config.DumpConfig(c)
		if err != nil {
			return err
		}

		fmt.Print(out)

		return nil
	},
}
