package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/AshkanSharifii/blog/cmd/server/web"
	"github.com/AshkanSharifii/blog/internal/core/services"
	"github.com/AshkanSharifii/blog/internal/core/services/media"
	"github.com/AshkanSharifii/blog/internal/core/services/storage"
	"github.com/AshkanSharifii/blog/internal/handler"
	"github.com/AshkanSharifii/blog/internal/signals"
	"github.com/AshkanSharifii/blog/internal/utils/env"
	"github.com/AshkanSharifii/blog/internal/utils/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var jwksUrl string
var host string
var port int
var shutdownWait int
var tokenTTLMinutes int

var ServeCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the blog daemon",
	Long: `This command locks the terminal by starting the daemon, which
opens the database and object storage, seeds the default user and serves
the API, feed, metrics and the websocket event stream.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		logger.Log().Info("Starting Postino Daemon")

		// PORT from the environment loses against an explicit flag.
		if !cmd.Flags().Changed("port") {
			port = env.CanGetInt("PORT", port)
		}

		dbPath := env.CanGet("DATABASE_PATH")
		if dbPath == "" {
			dbPath = viper.GetString("database.path")
		}

		store, err := storage.Open(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open database - %w", err)
		}
		logger.Log().Info("Database ready", zap.String("path", dbPath))

		bucket := env.CanGet("MINIO_BUCKET")
		if bucket == "" {
			bucket = viper.GetString("media.bucket")
		}

		mediaService, err := media.NewMediaService(ctx, media.Config{
			Endpoint:  env.MustGet("MINIO_ENDPOINT"),
			AccessKey: env.MustGet("MINIO_ACCESS_KEY"),
			SecretKey: env.MustGet("MINIO_SECRET_KEY"),
			Bucket:    bucket,
			UseSSL:    env.CanGetBool("MINIO_USE_SSL"),
			BaseURL:   env.CanGet("IMAGE_BASE_URL"),
		})
		if err != nil {
			return fmt.Errorf("failed to connect to object storage - %w", err)
		}
		logger.Log().Info("Object storage ready", zap.String("bucket", bucket))

		tokenTTL := time.Duration(tokenTTLMinutes) * time.Minute
		authorizer, err := services.NewAuthorizer([]byte(env.MustGet("SECRET_KEY")), jwksUrl, tokenTTL)
		if err != nil {
			store.Close()
			return err
		}

		userService := services.NewUserService(store)
		if err := userService.EnsureDefaultUser(ctx, env.CanGet("DEFAULT_USER_USERNAME"), env.CanGet("DEFAULT_USER_PASSWORD")); err != nil {
			store.Close()
			return fmt.Errorf("failed to seed default user - %w", err)
		}

		broadcaster := services.NewEventBroadcaster()
		go broadcaster.Run()

		postService := services.NewPostService(store, mediaService, broadcaster)
		tagService := services.NewTagService(store)
		feedService := services.NewFeedService(store, services.FeedConfig{
			Title:       env.CanGet("FEED_TITLE"),
			Link:        env.CanGet("FEED_LINK"),
			Description: env.CanGet("FEED_DESCRIPTION"),
		})

		disablePrometheus, ok := ctx.Value("disablePrometheus").(bool)

		//only disable prometheus if context value is set and true
		runtimeMonitor, err := services.NewRuntimeMonitor(!ok || !disablePrometheus)
		if err != nil {
			store.Close()
			return err
		}
		defer runtimeMonitor.ShutdownPromMetrics()

		logger.Log().Info("Starting Runtime Monitor")
		runtimeMonitor.StartMonitoring(ctx)

		authHandler := handler.NewAuthHandler(authorizer, userService)
		postHandler := handler.NewPostHandler(postService, mediaService)
		tagHandler := handler.NewTagHandler(tagService)
		imageHandler := handler.NewImageHandler(mediaService, postService)
		statsHandler := handler.NewStatsHandler(postService)
		feedHandler := handler.NewFeedHandler(feedService)
		healthHandler := handler.NewHealthHandler(map[string]handler.HealthCheck{
			"database": func(ctx context.Context) error { return store.Ping(ctx) },
		})
		websocketHandler := handler.NewWebsocketHandler(authorizer, broadcaster)

		signalHandler := signals.NewSignalHandler(nil, shutdownWait)
		daemonHandler := handler.NewDaemonHandler(signalHandler)

		s := web.NewServer(jwksUrl, authHandler, postHandler, tagHandler, imageHandler, statsHandler, feedHandler, healthHandler, websocketHandler, daemonHandler, authorizer)

		a := s.Initialize()

		signalHandler.SetApp(a)
		signalHandler.AddCloser(broadcaster.Close)
		signalHandler.AddCloser(func() {
			if err := store.Close(); err != nil {
				logger.Log().Warn("Error closing database", zap.Error(err))
			}
		})

		err = s.Serve(a, host, port)

		logger.Log().Info("Shutting down")

		return err
	},
}

func init() {
	ServeCommand.Flags().StringVarP(&host, "host", "", "0.0.0.0", "Bind address")

	ServeCommand.Flags().IntVarP(&port, "port", "p", 8000, "Port")

	ServeCommand.Flags().IntVarP(&shutdownWait, "shutdown-wait", "", 10, "Wait interval how long open requests are allowed to finish on shutdown")

	ServeCommand.Flags().StringVarP(&jwksUrl, "jwks-server", "", "", "JWKS Server to authenticate requests against")

	ServeCommand.Flags().IntVarP(&tokenTTLMinutes, "token-ttl", "", 60, "Access token lifetime in minutes")
}
