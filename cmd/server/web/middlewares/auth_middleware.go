package middlewares

import (
	"github.com/AshkanSharifii/blog/internal/core/ports"
	"github.com/AshkanSharifii/blog/internal/utils/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// TokenAuthentication accepts either a single-use query token or a bearer
// header. Websocket upgrades can only carry the former.
func TokenAuthentication(authorizerService ports.AuthorizerServiceInterface) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		token := ctx.Query("token")
		if token != "" {
			_, authQueryError := authorizerService.CheckQuery(token)
			if authQueryError != nil {
				logger.Log().Error("Token Authentication failed",
					zap.String(logger.LogKeyContext, logger.LogContextHttp),
					zap.String("type", "query"),
					zap.Error(authQueryError),
				)
				return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
			}
			return ctx.Next()
		}
		// Fall back to the Token Authentication credentials from the header
		if _, authHeaderError := authorizerService.CheckHeader(ctx); authHeaderError != nil {
			logger.Log().Error("Token Authentication failed",
				zap.String(logger.LogKeyContext, logger.LogContextHttp),
				zap.String("type", "header"),
				zap.Error(authHeaderError),
			)
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}
		return ctx.Next()
	}
}

func NewUserInjector() fiber.Handler {
	return func(ctx *fiber.Ctx) error {

		user, ok := ctx.Locals("user").(*jwt.Token)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing jwt token")
		}

		username, ok := user.Claims.(jwt.MapClaims)["sub"]
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid username in jwt sub field")
		}
		ctx.Context().SetUserValue("username", username)
		return ctx.Next()
	}
}
