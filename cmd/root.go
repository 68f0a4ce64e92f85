package cmd

import (
	"os"

	"github.com/AshkanSharifii/blog/internal/utils/env"
	"github.com/AshkanSharifii/blog/internal/utils/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var envPath string
var loggerFormat string

var RootCmd = &cobra.Command{
	Use:   "postinod",
	Short: "Postino blog daemon",
	Long: `The Postino daemon serves the blog API: posts, tags, images,
statistics, an RSS feed and a websocket event stream.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Usage()
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if loggerFormat == "structured" {
			logger.Log(logger.WithStructuredLogging())
		} else {
			logger.Log(logger.WithDefaultLogging())
		}
		if err := env.AttemptReadLocalEnvironment(envPath); err != nil {
			logger.Log().Fatal("Error reading environment file",
				zap.String("path", envPath),
				zap.Error(err),
			)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVarP(&loggerFormat, "log-format", "", "cli", "Log format (structured, cli)")
	RootCmd.PersistentFlags().StringVarP(&envPath, "env-file", "e", "./.env", "Path to environment file (.env)")

	RootCmd.AddCommand(ServeCommand)
	RootCmd.AddCommand(MigrateCommand)
	RootCmd.AddCommand(UserCommand)
	RootCmd.AddCommand(VersionCmd)
}

func initConfig() {
	viper.SetDefault("database.path", "./data/blog.db")
	viper.SetDefault("media.bucket", "blog-images")

	viper.SetConfigType("yaml")
	viper.SetConfigName(".postino")
	viper.AddConfigPath(".")

	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(home)
	}

	viper.AutomaticEnv()
	viper.ReadInConfig()
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
