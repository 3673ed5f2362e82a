package app

import (
	"github.com/spf13/cobra"

	"github.com/roleboard/roleboard/internal/config"
	"github.com/roleboard/roleboard/internal/daemon"
	"github.com/roleboard/roleboard/internal/logger"
)

func init() { //nolint: gochecknoinits
	seedCmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration directory")
	seedCmd.Flags().BoolVar(&seedDemo, "demo", false, "Also seed demo roles and users")

	rootCmd.AddCommand(seedCmd)
}

var (
	seedDemo bool

	seedCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "seed",
		Short: "Migrate the schema and seed the permission reference set",
		PreRun: func(_ *cobra.Command, _ []string) {
			if cfg, err = config.ReadConfig(configPath); err != nil {
				panic(err)
			}

			if err = logger.Init(cfg.Log); err != nil {
				panic(err)
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			db := daemon.OpenDB(&cfg)

			if err := daemon.Migrate(db); err != nil {
				return err
			}

			if err := daemon.SeedPermissions(db); err != nil {
				return err
			}

			if seedDemo {
				return daemon.SeedDemo(db)
			}

			return nil
		},
	}
)
