package main

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-ParkingService/internal/app"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

// env зависимости, общие для всех команд
type env struct {
	cfg       *config.Config
	log       *logger.Logger
	db        *sql.DB
	container *app.Container
}

func (e *env) close() {
	if e.db != nil {
		_ = e.db.Close()
	}
	if e.log != nil {
		_ = e.log.Close()
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	e := &env{}

	rootCmd := &cobra.Command{
		Use:           "parkingctl",
		Short:         "Administer the parking service: schema, slots, pricing and balances",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			e.cfg = cfg

			e.log, err = logger.New(cfg.Logs.File, cfg.Logs.Level)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			e.db, err = app.OpenDatabase(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}

			e.container, err = app.New(cfg, e.db, nil, nil, e.log)
			return err
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			e.close()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "path to config.toml")

	rootCmd.AddCommand(
		newMigrateCmd(e),
		newSlotsCmd(e),
		newPricingCmd(e),
		newAccountCmd(e),
	)

	return rootCmd
}
