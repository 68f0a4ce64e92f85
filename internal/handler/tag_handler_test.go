package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/AshkanSharifii/blog/internal/api"
	"github.com/AshkanSharifii/blog/internal/core/domain"
	mock_ports "github.com/AshkanSharifii/blog/test/mock"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/mock/gomock"
)

// TagTestContext holds all mocked services for tag handler testing
type TagTestContext struct {
	App        *fiber.App
	Ctrl       *gomock.Controller
	TagService *mock_ports.MockTagServiceInterface
	Handler    *TagHandler
}

// setupTagTestApp creates a Fiber app with mocked dependencies for testing
func setupTagTestApp(t *testing.T) *TagTestContext {
	ctrl := gomock.NewController(t)

	tagService := mock_ports.NewMockTagServiceInterface(ctrl)
	handler := NewTagHandler(tagService)

	app := fiber.New()
	app.Get("/api/v1/posts/tags", handler.ListTags)
	app.Get("/api/v1/posts/tags/counts", handler.ListTagsWithCounts)

	return &TagTestContext{
		App:        app,
		Ctrl:       ctrl,
		TagService: tagService,
		Handler:    handler,
	}
}

func TestTagHandler_ListTags(t *testing.T) {
	tc := setupTagTestApp(t)
	defer tc.Ctrl.Finish()

	tc.TagService.EXPECT().List(gomock.Any(), gomock.Any()).Return([]domain.TagCount{
		{ID: 1, Name: "go", PostCount: 3},
		{ID: 2, Name: "fiber", PostCount: 1},
	}, nil)

	req := httptest.NewRequest("GET", "/api/v1/posts/tags", nil)
	resp, err := tc.App.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result []string
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(result) != 2 {
		t.Errorf("Expected 2 tags, got %d", len(result))
	}
	if result[0] != "go" {
		t.Errorf("Expected first tag 'go', got '%s'", result[0])
	}
}

func TestTagHandler_ListTagsWithCounts(t *testing.T) {
	tc := setupTagTestApp(t)
	defer tc.Ctrl.Finish()

	tc.TagService.EXPECT().
		List(gomock.Any(), domain.TagFilter{
			Limit:    100,
			MinPosts: 2,
			SortBy:   domain.TagSortPostCount,
			SortDesc: true,
		}).
		Return([]domain.TagCount{{ID: 1, Name: "go", PostCount: 3}}, nil)

	req := httptest.NewRequest("GET", "/api/v1/posts/tags/counts?min_posts=2&sort_by=post_count&sort_desc=true", nil)
	resp, err := tc.App.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result api.TagListResponse
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if result.Count != 1 {
		t.Errorf("Expected 1 tag, got %d", result.Count)
	}
	if result.Tags[0].PostCount != 3 {
		t.Errorf("Expected post count 3, got %d", result.Tags[0].PostCount)
	}
}
