package handler

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/AshkanSharifii/blog/internal/api"
	"github.com/AshkanSharifii/blog/internal/core/domain"
	"github.com/AshkanSharifii/blog/internal/core/ports"
	"github.com/AshkanSharifii/blog/internal/utils"
	"github.com/gofiber/fiber/v2"
)

type PostHandler struct {
	postService  ports.PostServiceInterface
	mediaService ports.MediaServiceInterface
}

func NewPostHandler(
	postService ports.PostServiceInterface,
	mediaService ports.MediaServiceInterface,
) *PostHandler {
	return &PostHandler{
		postService,
		mediaService,
	}
}

// @Summary List posts
// @Description List posts with pagination, tag filter and sorting.
// @ID listPosts
// @Tags posts
// @Accept json
// @Produce json
// @Param skip query int false "Offset into the result set"
// @Param limit query int false "Maximum number of posts"
// @Param tag query string false "Only posts carrying this tag"
// @Param show_archived query bool false "Include archived posts"
// @Param show_inactive query bool false "Include inactive posts"
// @Param sort_by query string false "created_at, updated_at or title"
// @Param sort_desc query bool false "Sort descending"
// @Success 200 {object} api.PostListResponse
// @Router /api/v1/posts [get]
func (p PostHandler) ListPosts(c *fiber.Ctx) error {
	filter := domain.PostFilter{
		Skip:         c.QueryInt("skip", 0),
		Limit:        c.QueryInt("limit", 100),
		Tag:          c.Query("tag"),
		ShowArchived: c.QueryBool("show_archived", false),
		ShowInactive: c.QueryBool("show_inactive", false),
		SortBy:       domain.PostSortField(c.Query("sort_by", string(domain.PostSortCreatedAt))),
		SortDesc:     c.QueryBool("sort_desc", true),
	}

	posts, err := p.postService.List(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(api.ErrorResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}

	responseData := make([]api.PostResponse, 0, len(posts))
	for _, post := range posts {
		responseData = append(responseData, p.toResponse(post))
	}

	return c.JSON(api.PostListResponse{Posts: responseData, Count: len(responseData)})
}

// @Summary Get one post
// @ID getPost
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} api.PostResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /api/v1/posts/{id} [get]
func (p PostHandler) GetPost(c *fiber.Ctx) error {
	id, ok := postID(c)
	if !ok {
		return nil
	}

	post, err := p.postService.Get(c.Context(), id)
	if err != nil {
		return postError(c, err)
	}

	return c.JSON(p.toResponse(post))
}

// @Summary Create a post
// @Description Create a post from a multipart form. Tags are comma separated,
// @Description image is the cover upload and content_images are woven into
// @Description the markdown at the offsets given in image_positions.
// @ID createPost
// @Tags posts
// @Accept mpfd
// @Produce json
// @Param title formData string true "Post title"
// @Param content formData string true "Markdown content"
// @Param tags formData string false "Comma separated tag names"
// @Param is_active formData bool false "Publish immediately"
// @Param is_archived formData bool false "Create in the archive"
// @Param image formData file false "Cover image"
// @Param content_images formData file false "Content images"
// @Param image_positions formData string false "JSON array of {index, image_index}"
// @Success 201 {object} api.PostResponse
// @Failure 400 {object} api.ErrorResponse
// @Router /api/v1/posts [post]
// @Security ApiKeyAuth
func (p PostHandler) CreatePost(c *fiber.Ctx) error {
	draft := domain.PostDraft{
		Title:      strings.TrimSpace(c.FormValue("title")),
		Content:    c.FormValue("content"),
		Tags:       splitTags(c.FormValue("tags")),
		IsActive:   formBool(c, "is_active", true),
		IsArchived: formBool(c, "is_archived", false),
	}

	if draft.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
			Status: "error",
			Error:  "title must not be empty",
		})
	}

	cover, contentUploads, positions, cleanup, err := p.parseUploads(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}
	defer cleanup()

	post, err := p.postService.Create(c.Context(), draft, cover, contentUploads, positions)
	if err != nil {
		return postError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(p.toResponse(post))
}

// @Summary Update a post
// @Description Replace a post from a multipart form. keep_cover_image keeps
// @Description the current cover when no new one is uploaded and
// @Description delete_unused_images removes content images the new markdown
// @Description no longer references.
// @ID updatePost
// @Tags posts
// @Accept mpfd
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} api.PostResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /api/v1/posts/{id} [put]
// @Security ApiKeyAuth
func (p PostHandler) UpdatePost(c *fiber.Ctx) error {
	id, ok := postID(c)
	if !ok {
		return nil
	}

	draft := domain.PostDraft{
		Title:      strings.TrimSpace(c.FormValue("title")),
		Content:    c.FormValue("content"),
		Tags:       splitTags(c.FormValue("tags")),
		IsActive:   formBool(c, "is_active", true),
		IsArchived: formBool(c, "is_archived", false),
	}

	if draft.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
			Status: "error",
			Error:  "title must not be empty",
		})
	}

	keepCover := formBool(c, "keep_cover_image", true)
	deleteUnused := formBool(c, "delete_unused_images", false)

	cover, contentUploads, positions, cleanup, err := p.parseUploads(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}
	defer cleanup()

	post, err := p.postService.Update(c.Context(), id, draft, cover, contentUploads, positions, keepCover, deleteUnused)
	if err != nil {
		return postError(c, err)
	}

	return c.JSON(p.toResponse(post))
}

// @Summary Archive a post
// @ID archivePost
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} api.PostResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /api/v1/posts/{id}/archive [patch]
// @Security ApiKeyAuth
func (p PostHandler) ArchivePost(c *fiber.Ctx) error {
	return p.setArchived(c, true)
}

// @Summary Unarchive a post
// @ID unarchivePost
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} api.PostResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /api/v1/posts/{id}/unarchive [patch]
// @Security ApiKeyAuth
func (p PostHandler) UnarchivePost(c *fiber.Ctx) error {
	return p.setArchived(c, false)
}

// @Summary Activate a post
// @ID activatePost
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} api.PostResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /api/v1/posts/{id}/activate [patch]
// @Security ApiKeyAuth
func (p PostHandler) ActivatePost(c *fiber.Ctx) error {
	return p.setActive(c, true)
}

// @Summary Deactivate a post
// @ID deactivatePost
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} api.PostResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /api/v1/posts/{id}/deactivate [patch]
// @Security ApiKeyAuth
func (p PostHandler) DeactivatePost(c *fiber.Ctx) error {
	return p.setActive(c, false)
}

// @Summary Delete a post
// @ID deletePost
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Param delete_images query bool false "Also delete the post's images"
// @Success 204
// @Failure 404 {object} api.ErrorResponse
// @Router /api/v1/posts/{id} [delete]
// @Security ApiKeyAuth
func (p PostHandler) DeletePost(c *fiber.Ctx) error {
	id, ok := postID(c)
	if !ok {
		return nil
	}

	deleteImages := c.QueryBool("delete_images", true)
	if err := p.postService.Delete(c.Context(), id, deleteImages); err != nil {
		return postError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// @Summary List a post's images
// @ID postImages
// @Tags posts, images
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} api.PostImagesResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /api/v1/posts/{id}/images [get]
// @Security ApiKeyAuth
func (p PostHandler) PostImages(c *fiber.Ctx) error {
	id, ok := postID(c)
	if !ok {
		return nil
	}

	images, err := p.postService.Images(c.Context(), id)
	if err != nil {
		return postError(c, err)
	}

	return c.JSON(api.PostImagesResponse{
		PostID:        images.PostID,
		CoverImage:    images.CoverImage,
		ContentImages: images.ContentImages,
		TotalImages:   images.TotalImages,
	})
}

// @Summary Add images to a post
// @Description Upload additional images. kind is cover or content; content
// @Description images are inserted into the markdown unless auto_insert=false.
// @ID addPostImages
// @Tags posts, images
// @Accept mpfd
// @Produce json
// @Param id path int true "Post ID"
// @Param kind query string false "cover or content"
// @Param auto_insert query bool false "Insert content images into the markdown"
// @Success 201 {object} api.AddImagesResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /api/v1/posts/{id}/images [post]
// @Security ApiKeyAuth
func (p PostHandler) AddPostImages(c *fiber.Ctx) error {
	id, ok := postID(c)
	if !ok {
		return nil
	}

	kind, err := imageKind(c.Query("kind", string(domain.ImageKindContent)))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}
	autoInsert := c.QueryBool("auto_insert", true)

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
			Status: "error",
			Error:  "invalid multipart form: " + err.Error(),
		})
	}

	files := form.File["files"]
	if len(files) == 0 {
		files = form.File["images"]
	}
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
			Status: "error",
			Error:  "no files uploaded",
		})
	}

	uploads, cleanup, err := openUploads(files)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}
	defer cleanup()

	positions, err := parsePositions(c.FormValue("image_positions"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}

	filenames, err := p.postService.AddImages(c.Context(), id, kind, uploads, autoInsert, positions)
	if err != nil {
		return postError(c, err)
	}

	urls := make([]string, 0, len(filenames))
	for _, filename := range filenames {
		urls = append(urls, p.mediaService.PublicURL(kind, filename))
	}

	return c.Status(fiber.StatusCreated).JSON(api.AddImagesResponse{
		PostID:    id,
		Kind:      string(kind),
		Filenames: filenames,
		URLs:      urls,
	})
}

// @Summary Delete one image of a post
// @ID deletePostImage
// @Tags posts, images
// @Produce json
// @Param id path int true "Post ID"
// @Param filename path string true "Image filename"
// @Param kind query string false "cover or content"
// @Param update_content query bool false "Strip the markdown reference"
// @Success 204
// @Failure 404 {object} api.ErrorResponse
// @Router /api/v1/posts/{id}/images/{filename} [delete]
// @Security ApiKeyAuth
func (p PostHandler) DeletePostImage(c *fiber.Ctx) error {
	id, ok := postID(c)
	if !ok {
		return nil
	}

	filename := c.Params("filename")
	kind, err := imageKind(c.Query("kind", string(domain.ImageKindContent)))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}
	updateContent := c.QueryBool("update_content", true)

	if err := p.postService.RemoveImage(c.Context(), id, filename, kind, updateContent); err != nil {
		return postError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// @Summary Replace one image of a post
// @Description Upload a new image in place of an existing one. Content
// @Description markdown references are rewritten unless update_content=false.
// @ID replacePostImage
// @Tags posts, images
// @Accept mpfd
// @Produce json
// @Param id path int true "Post ID"
// @Param filename path string true "Filename of the image to replace"
// @Param kind query string false "cover or content"
// @Param update_content query bool false "Rewrite the markdown reference"
// @Param new_image formData file true "Replacement image"
// @Success 200 {object} api.ReplaceImageResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /api/v1/posts/{id}/images/{filename} [put]
// @Security ApiKeyAuth
func (p PostHandler) ReplacePostImage(c *fiber.Ctx) error {
	id, ok := postID(c)
	if !ok {
		return nil
	}

	oldFilename := c.Params("filename")
	kind, err := imageKind(c.Query("kind", string(domain.ImageKindContent)))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}
	updateContent := c.QueryBool("update_content", true)

	fh, err := c.FormFile("new_image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
			Status: "error",
			Error:  "no replacement image uploaded",
		})
	}

	upload, closeFn, err := openUpload(fh)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}
	defer closeFn()

	newFilename, err := p.postService.ReplaceImage(c.Context(), id, oldFilename, upload, kind, updateContent)
	if err != nil {
		return postError(c, err)
	}

	return c.JSON(api.ReplaceImageResponse{
		PostID:         id,
		OldFilename:    oldFilename,
		NewFilename:    newFilename,
		OldURL:         p.mediaService.PublicURL(kind, oldFilename),
		NewURL:         p.mediaService.PublicURL(kind, newFilename),
		Kind:           string(kind),
		ContentUpdated: updateContent && kind == domain.ImageKindContent,
	})
}

// @Summary Set the cover image
// @ID setCoverImage
// @Tags posts, images
// @Accept mpfd
// @Produce json
// @Param id path int true "Post ID"
// @Param cover_image formData file true "New cover image"
// @Success 200 {object} api.PostResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /api/v1/posts/{id}/cover-image [put]
// @Security ApiKeyAuth
func (p PostHandler) SetCoverImage(c *fiber.Ctx) error {
	id, ok := postID(c)
	if !ok {
		return nil
	}

	fh, err := c.FormFile("cover_image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
			Status: "error",
			Error:  "no cover image uploaded",
		})
	}

	upload, closeFn, err := openUpload(fh)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}
	defer closeFn()

	post, err := p.postService.SetCover(c.Context(), id, upload)
	if err != nil {
		return postError(c, err)
	}

	return c.JSON(p.toResponse(post))
}

// @Summary Remove the cover image
// @ID deleteCoverImage
// @Tags posts, images
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} api.PostResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /api/v1/posts/{id}/cover-image [delete]
// @Security ApiKeyAuth
func (p PostHandler) DeleteCoverImage(c *fiber.Ctx) error {
	id, ok := postID(c)
	if !ok {
		return nil
	}

	post, err := p.postService.RemoveCover(c.Context(), id)
	if err != nil {
		return postError(c, err)
	}

	return c.JSON(p.toResponse(post))
}

func (p PostHandler) setArchived(c *fiber.Ctx, archived bool) error {
	id, ok := postID(c)
	if !ok {
		return nil
	}

	post, err := p.postService.SetArchived(c.Context(), id, archived)
	if err != nil {
		return postError(c, err)
	}

	return c.JSON(p.toResponse(post))
}

func (p PostHandler) setActive(c *fiber.Ctx, active bool) error {
	id, ok := postID(c)
	if !ok {
		return nil
	}

	post, err := p.postService.SetActive(c.Context(), id, active)
	if err != nil {
		return postError(c, err)
	}

	return c.JSON(p.toResponse(post))
}

func (p PostHandler) toResponse(post *domain.Post) api.PostResponse {
	resp := api.PostResponse{
		ID:         post.ID,
		Title:      post.Title,
		Content:    post.Content,
		Tags:       post.Tags,
		Status:     string(post.Status()),
		IsActive:   post.IsActive,
		IsArchived: post.IsArchived,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if post.CoverImage != "" {
		resp.ImageURL = p.mediaService.PublicURL(domain.ImageKindCover, post.CoverImage)
	}
	if !post.CreatedAt.IsZero() {
		resp.CreatedAt = post.CreatedAt.UTC().Format(time.RFC3339)
	}
	if post.UpdatedAt != nil {
		resp.UpdatedAt = post.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

// parseUploads pulls the cover, content images and positions out of the
// multipart form. The returned cleanup closes all opened files.
func (p PostHandler) parseUploads(c *fiber.Ctx) (*domain.Upload, []domain.Upload, []domain.ImagePosition, func(), error) {
	noop := func() {}

	var cover *domain.Upload
	var closers []func()

	cleanup := func() {
		for _, closeFn := range closers {
			closeFn()
		}
	}

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		upload, closeFn, err := openUpload(fh)
		if err != nil {
			return nil, nil, nil, noop, err
		}
		closers = append(closers, closeFn)
		cover = &upload
	}

	var contentUploads []domain.Upload
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["content_images"] {
			upload, closeFn, err := openUpload(fh)
			if err != nil {
				cleanup()
				return nil, nil, nil, noop, err
			}
			closers = append(closers, closeFn)
			contentUploads = append(contentUploads, upload)
		}
	}

	positions, err := parsePositions(c.FormValue("image_positions"))
	if err != nil {
		cleanup()
		return nil, nil, nil, noop, err
	}

	return cover, contentUploads, positions, cleanup, nil
}

func openUpload(fh *multipart.FileHeader) (domain.Upload, func(), error) {
	if !utils.IsImageFile(fh.Filename, fh.Header.Get("Content-Type")) {
		return domain.Upload{}, nil, domain.ErrNotAnImage
	}

	file, err := fh.Open()
	if err != nil {
		return domain.Upload{}, nil, err
	}

	return domain.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Reader:      file,
	}, func() { file.Close() }, nil
}

func openUploads(files []*multipart.FileHeader) ([]domain.Upload, func(), error) {
	var closers []func()
	cleanup := func() {
		for _, closeFn := range closers {
			closeFn()
		}
	}

	uploads := make([]domain.Upload, 0, len(files))
	for _, fh := range files {
		upload, closeFn, err := openUpload(fh)
		if err != nil {
			cleanup()
			return nil, func() {}, err
		}
		closers = append(closers, closeFn)
		uploads = append(uploads, upload)
	}
	return uploads, cleanup, nil
}

func parsePositions(raw string) ([]domain.ImagePosition, error) {
	if raw == "" {
		return nil, nil
	}
	var positions []domain.ImagePosition
	if err := json.Unmarshal([]byte(raw), &positions); err != nil {
		return nil, errors.New("invalid image_positions: " + err.Error())
	}
	return positions, nil
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	seen := map[string]bool{}
	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if tag == "" || seen[strings.ToLower(tag)] {
			continue
		}
		seen[strings.ToLower(tag)] = true
		tags = append(tags, tag)
	}
	return tags
}

func formBool(c *fiber.Ctx, key string, fallback bool) bool {
	raw := c.FormValue(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}

func imageKind(raw string) (domain.ImageKind, error) {
	switch domain.ImageKind(raw) {
	case domain.ImageKindCover:
		return domain.ImageKindCover, nil
	case domain.ImageKindContent:
		return domain.ImageKindContent, nil
	default:
		return "", errors.New("kind must be cover or content")
	}
}

// postID parses the id path parameter. On failure the 400 response is
// already written and ok is false.
func postID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
			Status: "error",
			Error:  "invalid post id",
		})
		return 0, false
	}
	return id, true
}

func postError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrPostNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrImageNotInContent):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrNotAnImage):
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(api.ErrorResponse{
		Status: "error",
		Error:  err.Error(),
	})
}
