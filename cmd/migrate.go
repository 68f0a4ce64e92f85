package cmd

import (
	"fmt"

	"github.com/AshkanSharifii/blog/internal/core/services/storage"
	"github.com/AshkanSharifii/blog/internal/utils/env"
	"github.com/AshkanSharifii/blog/internal/utils/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var MigrateCommand = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Long: `This command opens the database, applies any migrations that have
not run yet and exits. The serve command does the same on startup, so this
is only needed for standalone migration runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := env.CanGet("DATABASE_PATH")
		if dbPath == "" {
			dbPath = viper.GetString("database.path")
		}

		store, err := storage.Open(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open database - %w", err)
		}
		defer store.Close()

		logger.Log().Info("Migrations applied")
		return nil
	},
}
