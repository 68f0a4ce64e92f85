package handler

import (
	"github.com/AshkanSharifii/blog/internal/api"
	"github.com/AshkanSharifii/blog/internal/core/ports"
	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	postService ports.PostServiceInterface
}

func NewStatsHandler(
	postService ports.PostServiceInterface,
) *StatsHandler {
	return &StatsHandler{
		postService,
	}
}

// @Summary Post statistics
// @Description Totals plus per-tag and per-month breakdowns.
// @ID getStats
// @Tags stats
// @Produce json
// @Success 200 {object} api.StatsResponse
// @Router /api/v1/stats [get]
// @Security ApiKeyAuth
func (s StatsHandler) Stats(c *fiber.Ctx) error {
	stats, err := s.postService.Stats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(api.ErrorResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}

	return c.JSON(api.StatsResponse{
		TotalPosts:    stats.TotalPosts,
		ActivePosts:   stats.ActivePosts,
		ArchivedPosts: stats.ArchivedPosts,
		PostsByTag:    stats.PostsByTag,
		PostsByMonth:  stats.PostsByMonth,
	})
}
