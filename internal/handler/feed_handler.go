package handler

import (
	"github.com/AshkanSharifii/blog/internal/api"
	"github.com/AshkanSharifii/blog/internal/core/ports"
	"github.com/gofiber/fiber/v2"
)

type FeedHandler struct {
	feedService ports.FeedServiceInterface
}

func NewFeedHandler(
	feedService ports.FeedServiceInterface,
) *FeedHandler {
	return &FeedHandler{
		feedService,
	}
}

// @Summary RSS feed
// @Description RSS 2.0 feed of the published posts.
// @ID getFeed
// @Tags feed
// @Produce xml
// @Success 200 {object} string
// @Router /feed [get]
func (f FeedHandler) Feed(c *fiber.Ctx) error {
	feed, err := f.feedService.Render(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(api.ErrorResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "application/rss+xml; charset=utf-8")
	return c.SendString(feed)
}
