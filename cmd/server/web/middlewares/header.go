package middlewares

import (
	constants "github.com/AshkanSharifii/blog/internal"
	"github.com/gofiber/fiber/v2"
)

func NewHeaderMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ctx.Response().Header.Set("Postino-Version", constants.Version)
		return ctx.Next()
	}
}
