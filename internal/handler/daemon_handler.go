package handler

import (
	"github.com/AshkanSharifii/blog/internal/signals"
	"github.com/gofiber/fiber/v2"
)

type DaemonHandler struct {
	shutdown *signals.SignalHandler
}

func NewDaemonHandler(shutdown *signals.SignalHandler) *DaemonHandler {
	return &DaemonHandler{
		shutdown: shutdown,
	}
}

// @Summary Stop the daemon
// @ID stopDaemon
// @Tags daemon
// @Accept */*
// @Success 202
// @Router /api/v1/daemon/stop [POST]
// @Security ApiKeyAuth
func (ah DaemonHandler) Shutdown(c *fiber.Ctx) error {
	go ah.shutdown.Stop()
	c.Status(fiber.StatusAccepted)
	return nil
}
