package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"sanakirja/internal/infrastructure/database"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending PostgreSQL migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := appFrom(cmd)
			if err != nil {
				return err
			}
			if rt.cfg.DatabaseURL == "" {
				return errors.New("migrate: database_url is required")
			}
			return database.RunMigrations(rt.cfg.DatabaseURL, rt.cfg.MigrationsPath, rt.logger)
		},
	}
}
