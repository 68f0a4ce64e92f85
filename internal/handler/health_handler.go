package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck pings one dependency.
type HealthCheck func(ctx context.Context) error

type HealthHandler struct {
	checks map[string]HealthCheck
}

func NewHealthHandler(checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{
		checks,
	}
}

// @Summary Health check
// @Description Returns ok once every dependency answers.
// @ID getHealth
// @Tags health
// @Accept */*
// @Produce json
// @Success 200 {object} string
// @Success 503 {object} string
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	for name, check := range h.checks {
		if err := check(c.Context()); err != nil {
			c.SendStatus(fiber.StatusServiceUnavailable)
			return c.SendString(name + " unavailable: " + err.Error())
		}
	}

	return c.SendString("ok")
}
