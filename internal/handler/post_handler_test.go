package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AshkanSharifii/blog/internal/api"
	"github.com/AshkanSharifii/blog/internal/core/domain"
	mock_ports "github.com/AshkanSharifii/blog/test/mock"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/mock/gomock"
)

// PostTestContext holds all mocked services for post handler testing
type PostTestContext struct {
	App          *fiber.App
	Ctrl         *gomock.Controller
	PostService  *mock_ports.MockPostServiceInterface
	MediaService *mock_ports.MockMediaServiceInterface
	Handler      *PostHandler
}

// setupPostTestApp creates a Fiber app with mocked dependencies for testing
func setupPostTestApp(t *testing.T) *PostTestContext {
	ctrl := gomock.NewController(t)

	postService := mock_ports.NewMockPostServiceInterface(ctrl)
	mediaService := mock_ports.NewMockMediaServiceInterface(ctrl)

	handler := NewPostHandler(postService, mediaService)

	app := fiber.New()
	app.Get("/api/v1/posts", handler.ListPosts)
	app.Get("/api/v1/posts/:id", handler.GetPost)
	app.Post("/api/v1/posts", handler.CreatePost)
	app.Put("/api/v1/posts/:id", handler.UpdatePost)
	app.Delete("/api/v1/posts/:id", handler.DeletePost)
	app.Patch("/api/v1/posts/:id/archive", handler.ArchivePost)
	app.Patch("/api/v1/posts/:id/unarchive", handler.UnarchivePost)
	app.Get("/api/v1/posts/:id/images", handler.PostImages)
	app.Put("/api/v1/posts/:id/images/:filename", handler.ReplacePostImage)
	app.Delete("/api/v1/posts/:id/images/:filename", handler.DeletePostImage)
	app.Put("/api/v1/posts/:id/cover-image", handler.SetCoverImage)
	app.Delete("/api/v1/posts/:id/cover-image", handler.DeleteCoverImage)

	return &PostTestContext{
		App:          app,
		Ctrl:         ctrl,
		PostService:  postService,
		MediaService: mediaService,
		Handler:      handler,
	}
}

func testPost(id int64) *domain.Post {
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Post{
		ID:        id,
		Title:     "Hello",
		Content:   "Some markdown",
		Tags:      []string{"go", "fiber"},
		IsActive:  true,
		CreatedAt: createdAt,
	}
}

func TestPostHandler_ListPosts(t *testing.T) {
	tc := setupPostTestApp(t)
	defer tc.Ctrl.Finish()

	tc.PostService.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*domain.Post{testPost(1), testPost(2)}, nil)

	req := httptest.NewRequest("GET", "/api/v1/posts", nil)
	resp, err := tc.App.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result api.PostListResponse
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if result.Count != 2 {
		t.Errorf("Expected 2 posts, got %d", result.Count)
	}
	if result.Posts[0].Title != "Hello" {
		t.Errorf("Expected title 'Hello', got '%s'", result.Posts[0].Title)
	}
	if result.Posts[0].Status != "published" {
		t.Errorf("Expected status 'published', got '%s'", result.Posts[0].Status)
	}
}

func TestPostHandler_ListPosts_PassesFilter(t *testing.T) {
	tc := setupPostTestApp(t)
	defer tc.Ctrl.Finish()

	tc.PostService.EXPECT().
		List(gomock.Any(), domain.PostFilter{
			Skip:         5,
			Limit:        10,
			Tag:          "go",
			ShowArchived: true,
			SortBy:       domain.PostSortTitle,
			SortDesc:     false,
		}).
		Return([]*domain.Post{}, nil)

	req := httptest.NewRequest("GET", "/api/v1/posts?skip=5&limit=10&tag=go&show_archived=true&sort_by=title&sort_desc=false", nil)
	resp, err := tc.App.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}

func TestPostHandler_GetPost(t *testing.T) {
	tc := setupPostTestApp(t)
	defer tc.Ctrl.Finish()

	post := testPost(42)
	post.CoverImage = "abc.jpg"
	tc.PostService.EXPECT().Get(gomock.Any(), int64(42)).Return(post, nil)
	tc.MediaService.EXPECT().PublicURL(domain.ImageKindCover, "abc.jpg").Return("http://cdn/cover/abc.jpg")

	req := httptest.NewRequest("GET", "/api/v1/posts/42", nil)
	resp, err := tc.App.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result api.PostResponse
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if result.ID != 42 {
		t.Errorf("Expected id 42, got %d", result.ID)
	}
	if result.ImageURL != "http://cdn/cover/abc.jpg" {
		t.Errorf("Expected cover url, got '%s'", result.ImageURL)
	}
}

func TestPostHandler_GetPost_NotFound(t *testing.T) {
	tc := setupPostTestApp(t)
	defer tc.Ctrl.Finish()

	tc.PostService.EXPECT().Get(gomock.Any(), int64(99)).Return(nil, domain.ErrPostNotFound)

	req := httptest.NewRequest("GET", "/api/v1/posts/99", nil)
	resp, err := tc.App.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 404 {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}

func TestPostHandler_GetPost_InvalidID(t *testing.T) {
	tc := setupPostTestApp(t)
	defer tc.Ctrl.Finish()

	req := httptest.NewRequest("GET", "/api/v1/posts/notanumber", nil)
	resp, err := tc.App.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}

func TestPostHandler_CreatePost(t *testing.T) {
	tc := setupPostTestApp(t)
	defer tc.Ctrl.Finish()

	tc.PostService.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Nil(), gomock.Nil(), gomock.Nil()).
		DoAndReturn(func(_ any, draft domain.PostDraft, _ *domain.Upload, _ []domain.Upload, _ []domain.ImagePosition) (*domain.Post, error) {
			if draft.Title != "Hello" {
				t.Errorf("Expected draft title 'Hello', got '%s'", draft.Title)
			}
			if len(draft.Tags) != 2 {
				t.Errorf("Expected 2 tags, got %d", len(draft.Tags))
			}
			return testPost(1), nil
		})

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.WriteField("title", "Hello")
	writer.WriteField("content", "Some markdown")
	writer.WriteField("tags", "go, fiber")
	writer.Close()

	req := httptest.NewRequest("POST", "/api/v1/posts", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := tc.App.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 201 {
		t.Errorf("Expected status 201, got %d", resp.StatusCode)
	}
}

func TestPostHandler_CreatePost_Archived(t *testing.T) {
	tc := setupPostTestApp(t)
	defer tc.Ctrl.Finish()

	tc.PostService.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Nil(), gomock.Nil(), gomock.Nil()).
		DoAndReturn(func(_ any, draft domain.PostDraft, _ *domain.Upload, _ []domain.Upload, _ []domain.ImagePosition) (*domain.Post, error) {
			if !draft.IsArchived {
				t.Error("Expected draft to be archived")
			}
			post := testPost(1)
			post.IsArchived = true
			return post, nil
		})

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.WriteField("title", "Hello")
	writer.WriteField("content", "Some markdown")
	writer.WriteField("is_archived", "true")
	writer.Close()

	req := httptest.NewRequest("POST", "/api/v1/posts", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := tc.App.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 201 {
		t.Errorf("Expected status 201, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result api.PostResponse
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if result.Status != "archived" {
		t.Errorf("Expected status 'archived', got '%s'", result.Status)
	}
}

func TestPostHandler_CreatePost_EmptyTitle(t *testing.T) {
	tc := setupPostTestApp(t)
	defer tc.Ctrl.Finish()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.WriteField("title", "   ")
	writer.WriteField("content", "Some markdown")
	writer.Close()

	req := httptest.NewRequest("POST", "/api/v1/posts", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := tc.App.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}

func TestPostHandler_DeletePost(t *testing.T) {
	tc := setupPostTestApp(t)
	defer tc.Ctrl.Finish()

	tc.PostService.EXPECT().Delete(gomock.Any(), int64(7), false).Return(nil)

	req := httptest.NewRequest("DELETE", "/api/v1/posts/7?delete_images=false", nil)
	resp, err := tc.App.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 204 {
		t.Errorf("Expected status 204, got %d", resp.StatusCode)
	}
}

func TestPostHandler_ArchivePost(t *testing.T) {
	tc := setupPostTestApp(t)
	defer tc.Ctrl.Finish()

	post := testPost(3)
	post.IsArchived = true
	tc.PostService.EXPECT().SetArchived(gomock.Any(), int64(3), true).Return(post, nil)

	req := httptest.NewRequest("PATCH", "/api/v1/posts/3/archive", nil)
	resp, err := tc.App.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result api.PostResponse
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if result.Status != "archived" {
		t.Errorf("Expected status 'archived', got '%s'", result.Status)
	}
}

func TestPostHandler_PostImages(t *testing.T) {
	tc := setupPostTestApp(t)
	defer tc.Ctrl.Finish()

	tc.PostService.EXPECT().Images(gomock.Any(), int64(5)).Return(&domain.PostImages{
		PostID:        5,
		CoverImage:    "http://cdn/cover/a.jpg",
		ContentImages: []string{"http://cdn/content/b.png"},
		TotalImages:   2,
	}, nil)

	req := httptest.NewRequest("GET", "/api/v1/posts/5/images", nil)
	resp, err := tc.App.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result api.PostImagesResponse
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if result.TotalImages != 2 {
		t.Errorf("Expected 2 images, got %d", result.TotalImages)
	}
}

func TestPostHandler_DeletePostImage_NotReferenced(t *testing.T) {
	tc := setupPostTestApp(t)
	defer tc.Ctrl.Finish()

	tc.PostService.EXPECT().
		RemoveImage(gomock.Any(), int64(5), "ghost.png", domain.ImageKindContent, true).
		Return(domain.ErrImageNotInContent)

	req := httptest.NewRequest("DELETE", "/api/v1/posts/5/images/ghost.png", nil)
	resp, err := tc.App.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 404 {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}

func replaceImageRequest(t *testing.T, target, field, filename string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	part.Write([]byte("fake image bytes"))
	writer.Close()

	req := httptest.NewRequest("PUT", target, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestPostHandler_ReplacePostImage(t *testing.T) {
	tc := setupPostTestApp(t)
	defer tc.Ctrl.Finish()

	tc.PostService.EXPECT().
		ReplaceImage(gomock.Any(), int64(5), "old.png", gomock.Any(), domain.ImageKindContent, true).
		Return("content/updated.png", nil)
	tc.MediaService.EXPECT().PublicURL(domain.ImageKindContent, "old.png").Return("http://cdn/content/old.png")
	tc.MediaService.EXPECT().PublicURL(domain.ImageKindContent, "content/updated.png").Return("http://cdn/content/updated.png")

	req := replaceImageRequest(t, "/api/v1/posts/5/images/old.png", "new_image", "updated.png")
	resp, err := tc.App.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result api.ReplaceImageResponse
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if result.NewURL != "http://cdn/content/updated.png" {
		t.Errorf("Expected new url, got '%s'", result.NewURL)
	}
	if !result.ContentUpdated {
		t.Error("Expected content_updated to be true")
	}
}

func TestPostHandler_ReplacePostImage_NotReferenced(t *testing.T) {
	tc := setupPostTestApp(t)
	defer tc.Ctrl.Finish()

	tc.PostService.EXPECT().
		ReplaceImage(gomock.Any(), int64(5), "ghost.png", gomock.Any(), domain.ImageKindContent, true).
		Return("", domain.ErrImageNotInContent)

	req := replaceImageRequest(t, "/api/v1/posts/5/images/ghost.png", "new_image", "updated.png")
	resp, err := tc.App.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 404 {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}

func TestPostHandler_SetCoverImage(t *testing.T) {
	tc := setupPostTestApp(t)
	defer tc.Ctrl.Finish()

	post := testPost(5)
	post.CoverImage = "fresh.jpg"
	tc.PostService.EXPECT().
		SetCover(gomock.Any(), int64(5), gomock.Any()).
		Return(post, nil)
	tc.MediaService.EXPECT().PublicURL(domain.ImageKindCover, "fresh.jpg").Return("http://cdn/cover/fresh.jpg")

	req := replaceImageRequest(t, "/api/v1/posts/5/cover-image", "cover_image", "fresh.jpg")
	resp, err := tc.App.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result api.PostResponse
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if result.ImageURL != "http://cdn/cover/fresh.jpg" {
		t.Errorf("Expected cover url, got '%s'", result.ImageURL)
	}
}

func TestPostHandler_SetCoverImage_NoFile(t *testing.T) {
	tc := setupPostTestApp(t)
	defer tc.Ctrl.Finish()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.Close()

	req := httptest.NewRequest("PUT", "/api/v1/posts/5/cover-image", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := tc.App.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}

func TestPostHandler_DeleteCoverImage(t *testing.T) {
	tc := setupPostTestApp(t)
	defer tc.Ctrl.Finish()

	tc.PostService.EXPECT().RemoveCover(gomock.Any(), int64(5)).Return(testPost(5), nil)

	req := httptest.NewRequest("DELETE", "/api/v1/posts/5/cover-image", nil)
	resp, err := tc.App.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result api.PostResponse
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if result.ImageURL != "" {
		t.Errorf("Expected empty cover url, got '%s'", result.ImageURL)
	}
}
