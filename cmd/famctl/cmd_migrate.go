package main

import (
	"time"

	"familiaconnect/internal/config"
	"familiaconnect/internal/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate up|down",
	Short:     "Apply or roll back database migrations",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(database.Up), string(database.Down)},
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := database.ParseDirection(args[0])
		if err != nil {
			return err
		}

		cfg, err := config.LoadForTools()
		if err != nil {
			return err
		}

		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		db, err := database.Connect(cfg.DSN(), database.RetryPolicy{Attempts: 3, Delay: time.Second}, logger)
		if err != nil {
			return err
		}
		defer db.Close()

		return database.Migrate(db, migrationsURL, dir, logger)
	},
}
