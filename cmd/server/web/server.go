package web

import (
	"errors"
	"fmt"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AshkanSharifii/blog/cmd/server/web/middlewares"
	constants "github.com/AshkanSharifii/blog/internal"
	"github.com/AshkanSharifii/blog/internal/core/ports"
	"github.com/AshkanSharifii/blog/internal/utils/logger"

	_ "github.com/AshkanSharifii/blog/docs"
	"go.uber.org/zap"
)

type Server struct {
	corsMiddleware                fiber.Handler
	injectUserMiddleware          fiber.Handler
	headerMiddleware              fiber.Handler
	tokenAuthenticationMiddleware fiber.Handler
	jwtMiddleware                 fiber.Handler
	authHandler                   ports.AuthHandlerInterface
	postHandler                   ports.PostHandlerInterface
	tagHandler                    ports.TagHandlerInterface
	imageHandler                  ports.ImageHandlerInterface
	statsHandler                  ports.StatsHandlerInterface
	feedHandler                   ports.FeedHandlerInterface
	healthHandler                 ports.HealthHandlerInterface
	websocketHandler              ports.WebsocketHandlerInterface
	daemonHandler                 ports.DaemonHandlerInterface
}

func NewServer(
	jwksUrl string,
	authHandler ports.AuthHandlerInterface,
	postHandler ports.PostHandlerInterface,
	tagHandler ports.TagHandlerInterface,
	imageHandler ports.ImageHandlerInterface,
	statsHandler ports.StatsHandlerInterface,
	feedHandler ports.FeedHandlerInterface,
	healthHandler ports.HealthHandlerInterface,
	websocketHandler ports.WebsocketHandlerInterface,
	daemonHandler ports.DaemonHandlerInterface,
	authorizerService ports.AuthorizerServiceInterface,
) *Server {
	server := &Server{
		corsMiddleware: cors.New(cors.Config{
			AllowOrigins: "*",
			AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		}),
		injectUserMiddleware:          middlewares.NewUserInjector(),
		headerMiddleware:              middlewares.NewHeaderMiddleware(),
		tokenAuthenticationMiddleware: middlewares.TokenAuthentication(authorizerService),
		authHandler:                   authHandler,
		postHandler:                   postHandler,
		tagHandler:                    tagHandler,
		imageHandler:                  imageHandler,
		statsHandler:                  statsHandler,
		feedHandler:                   feedHandler,
		healthHandler:                 healthHandler,
		websocketHandler:              websocketHandler,
		daemonHandler:                 daemonHandler,
	}

	if jwksUrl != "" {
		server.jwtMiddleware = jwtware.New(jwtware.Config{
			KeySetURLs: []string{jwksUrl},
		})
	} else {
		server.jwtMiddleware = jwtware.New(jwtware.Config{
			SigningKey: authorizerService.SigningKey(),
		})
	}

	return server
}

func (s *Server) Initialize() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
				return ctx.Status(code).JSON(e)
			} else {
				var e fiber.Error
				e.Code = 500
				e.Message = err.Error()
				return ctx.Status(code).JSON(e)
			}
		},
		BodyLimit:             32 * 1024 * 1024,
		DisableStartupMessage: true,
	})

	s.SetAPI(app)

	return app
}

func (s *Server) SetAPI(app *fiber.App) *fiber.App {
	app.Use(s.headerMiddleware)
	wsRoutes := app.Group("/ws/v1")
	v1 := app.Use(s.corsMiddleware).Group("/api/v1")

	wsRoutes.Use(s.tokenAuthenticationMiddleware)

	//Authentication Group
	v1.Post("/auth/login", s.authHandler.Login).Name("auth.login")

	//Public read side
	v1.Get("/posts", s.postHandler.ListPosts).Name("posts.list")
	v1.Get("/posts/tags", s.tagHandler.ListTags).Name("tags.list")
	v1.Get("/posts/tags/with-counts", s.tagHandler.ListTagsWithCounts).Name("tags.counts")
	v1.Get("/posts/:id", s.postHandler.GetPost).Name("posts.get")

	//Everything below needs a bearer token
	apiRoutes := v1.Group("", s.jwtMiddleware, s.injectUserMiddleware)

	apiRoutes.Get("/posts/:id/images", s.postHandler.PostImages).Name("posts.images")

	//Posts Group
	apiRoutes.Post("/posts", s.postHandler.CreatePost).Name("posts.create")
	apiRoutes.Put("/posts/:id", s.postHandler.UpdatePost).Name("posts.update")
	apiRoutes.Delete("/posts/:id", s.postHandler.DeletePost).Name("posts.delete")
	apiRoutes.Patch("/posts/:id/archive", s.postHandler.ArchivePost).Name("posts.archive")
	apiRoutes.Patch("/posts/:id/unarchive", s.postHandler.UnarchivePost).Name("posts.unarchive")
	apiRoutes.Patch("/posts/:id/activate", s.postHandler.ActivatePost).Name("posts.activate")
	apiRoutes.Patch("/posts/:id/deactivate", s.postHandler.DeactivatePost).Name("posts.deactivate")
	apiRoutes.Post("/posts/:id/images", s.postHandler.AddPostImages).Name("posts.images.add")
	apiRoutes.Put("/posts/:id/images/:filename", s.postHandler.ReplacePostImage).Name("posts.images.replace")
	apiRoutes.Delete("/posts/:id/images/:filename", s.postHandler.DeletePostImage).Name("posts.images.delete")
	apiRoutes.Put("/posts/:id/cover-image", s.postHandler.SetCoverImage).Name("posts.cover.set")
	apiRoutes.Delete("/posts/:id/cover-image", s.postHandler.DeleteCoverImage).Name("posts.cover.delete")

	//Images Group
	apiRoutes.Get("/images/list", s.imageHandler.ListImages).Name("images.list")
	apiRoutes.Get("/images/orphaned", s.imageHandler.OrphanedImages).Name("images.orphaned")
	apiRoutes.Post("/images/upload", s.imageHandler.Upload).Name("images.upload")
	apiRoutes.Post("/images/upload-multiple", s.imageHandler.UploadMultiple).Name("images.upload.batch")
	apiRoutes.Delete("/images/:filename", s.imageHandler.DeleteImage).Name("images.delete")

	//Stats Group
	apiRoutes.Get("/stats", s.statsHandler.Stats).Name("stats.get")

	//Websocket Group
	apiRoutes.Get("/token", s.websocketHandler.CreateToken).Name("token.create")
	wsRoutes.Get("/events", websocket.New(s.websocketHandler.HandleEvents)).Name("ws.events")

	//Daemon Group
	apiRoutes.Post("/daemon/stop", s.daemonHandler.Shutdown).Name("daemon.stop")

	app.Get("/health", s.healthHandler.Health).Name("health")
	app.Get("/feed", s.feedHandler.Feed).Name("feed")
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler())).Name("metrics")

	app.Get("/info", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"name":    "postinod",
			"version": constants.Version,
		})
	})

	//Catch-all 404 page
	app.Use(func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(404)
	})

	return app
}

func (s *Server) Serve(app *fiber.App, host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	if err := app.Listen(addr); err != nil {
		logger.Log().Error("web server error", zap.Error(err))
		return err
	}
	return nil
}
