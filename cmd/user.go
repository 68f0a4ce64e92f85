package cmd

import (
	"errors"
	"fmt"

	"github.com/AshkanSharifii/blog/internal/core/domain"
	"github.com/AshkanSharifii/blog/internal/core/services"
	"github.com/AshkanSharifii/blog/internal/core/services/storage"
	"github.com/AshkanSharifii/blog/internal/utils/env"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var UserCommand = &cobra.Command{
	Use:   "create-user [username] [password]",
	Short: "Create an API user",
	Long:  `This command creates a user that can log in against the API.`,
	Args:  cobra.ExactArgs(2),
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

		userService := services.NewUserService(store)
		user, err := userService.Create(cmd.Context(), args[0], args[1])
		if err != nil {
			if errors.Is(err, domain.ErrUserExists) {
				return fmt.Errorf("user %s already exists", args[0])
			}
			return err
		}

		cmd.Println("Created user:", user.Username)
		return nil
	},
}
