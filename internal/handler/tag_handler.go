package handler

import (
	"github.com/AshkanSharifii/blog/internal/api"
	"github.com/AshkanSharifii/blog/internal/core/domain"
	"github.com/AshkanSharifii/blog/internal/core/ports"
	"github.com/gofiber/fiber/v2"
)

type TagHandler struct {
	tagService ports.TagServiceInterface
}

func NewTagHandler(
	tagService ports.TagServiceInterface,
) *TagHandler {
	return &TagHandler{
		tagService,
	}
}

// @Summary List tag names
// @ID listTags
// @Tags tags
// @Produce json
// @Param skip query int false "Offset into the result set"
// @Param limit query int false "Maximum number of tags"
// @Success 200 {object} []string
// @Router /api/v1/posts/tags [get]
func (t TagHandler) ListTags(c *fiber.Ctx) error {
	tags, err := t.tagService.List(c.Context(), t.filter(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(api.ErrorResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}

	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return c.JSON(names)
}

// @Summary List tags with post counts
// @ID listTagsWithCounts
// @Tags tags
// @Produce json
// @Param skip query int false "Offset into the result set"
// @Param limit query int false "Maximum number of tags"
// @Param min_posts query int false "Only tags with at least this many posts"
// @Param sort_by query string false "name or post_count"
// @Param sort_desc query bool false "Sort descending"
// @Success 200 {object} api.TagListResponse
// @Router /api/v1/posts/tags/with-counts [get]
func (t TagHandler) ListTagsWithCounts(c *fiber.Ctx) error {
	tags, err := t.tagService.List(c.Context(), t.filter(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(api.ErrorResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}

	responseData := make([]api.TagResponse, 0, len(tags))
	for _, tag := range tags {
		responseData = append(responseData, api.TagResponse{
			ID:        tag.ID,
			Name:      tag.Name,
			PostCount: tag.PostCount,
		})
	}
	return c.JSON(api.TagListResponse{Tags: responseData, Count: len(responseData)})
}

func (t TagHandler) filter(c *fiber.Ctx) domain.TagFilter {
	return domain.TagFilter{
		Skip:     c.QueryInt("skip", 0),
		Limit:    c.QueryInt("limit", 100),
		MinPosts: int64(c.QueryInt("min_posts", 0)),
		SortBy:   domain.TagSortField(c.Query("sort_by", string(domain.TagSortName))),
		SortDesc: c.QueryBool("sort_desc", false),
	}
}
