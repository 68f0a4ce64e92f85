package handler

import (
	"time"

	"github.com/AshkanSharifii/blog/internal/api"
	"github.com/AshkanSharifii/blog/internal/core/domain"
	"github.com/AshkanSharifii/blog/internal/core/ports"
	"github.com/gofiber/fiber/v2"
)

type ImageHandler struct {
	mediaService ports.MediaServiceInterface
	postService  ports.PostServiceInterface
}

func NewImageHandler(
	mediaService ports.MediaServiceInterface,
	postService ports.PostServiceInterface,
) *ImageHandler {
	return &ImageHandler{
		mediaService,
		postService,
	}
}

// @Summary Upload an image
// @Description Store a single image without attaching it to a post.
// @ID uploadImage
// @Tags images
// @Accept mpfd
// @Produce json
// @Param kind query string false "cover or content"
// @Param file formData file true "Image file"
// @Success 201 {object} api.UploadResponse
// @Failure 400 {object} api.ErrorResponse
// @Router /api/v1/images/upload [post]
// @Security ApiKeyAuth
func (i ImageHandler) Upload(c *fiber.Ctx) error {
	kind, err := imageKind(c.Query("kind", "content"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
			Status: "error",
			Error:  "no file uploaded",
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

	filename, err := i.mediaService.Save(c.Context(), kind, upload)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(api.ErrorResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(api.UploadResponse{
		Filename: filename,
		URL:      i.mediaService.PublicURL(kind, filename),
	})
}

// @Summary Upload multiple images
// @ID uploadImages
// @Tags images
// @Accept mpfd
// @Produce json
// @Param kind query string false "cover or content"
// @Param files formData file true "Image files"
// @Success 201 {object} api.UploadListResponse
// @Failure 400 {object} api.ErrorResponse
// @Router /api/v1/images/upload-multiple [post]
// @Security ApiKeyAuth
func (i ImageHandler) UploadMultiple(c *fiber.Ctx) error {
	kind, err := imageKind(c.Query("kind", "content"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
			Status: "error",
			Error:  "invalid multipart form: " + err.Error(),
		})
	}

	files := form.File["files"]
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

	filenames, err := i.mediaService.SaveMultiple(c.Context(), kind, uploads)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(api.ErrorResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}

	responseData := make([]api.UploadResponse, 0, len(filenames))
	for _, filename := range filenames {
		responseData = append(responseData, api.UploadResponse{
			Filename: filename,
			URL:      i.mediaService.PublicURL(kind, filename),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(api.UploadListResponse{
		Files: responseData,
		Count: len(responseData),
	})
}

// @Summary Delete an image
// @ID deleteImage
// @Tags images
// @Produce json
// @Param filename path string true "Image filename"
// @Param kind query string false "cover or content"
// @Success 204
// @Failure 404 {object} api.ErrorResponse
// @Router /api/v1/images/{filename} [delete]
// @Security ApiKeyAuth
func (i ImageHandler) DeleteImage(c *fiber.Ctx) error {
	kind, err := imageKind(c.Query("kind", "content"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}

	filename := c.Params("filename")
	if err := i.mediaService.Remove(c.Context(), kind, filename); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(api.ErrorResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// @Summary List stored images
// @ID listImages
// @Tags images
// @Produce json
// @Param kind query string false "cover or content"
// @Success 200 {object} api.ImageListResponse
// @Router /api/v1/images/list [get]
// @Security ApiKeyAuth
func (i ImageHandler) ListImages(c *fiber.Ctx) error {
	kind, err := imageKind(c.Query("kind", "content"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}

	objects, err := i.mediaService.List(c.Context(), kind)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(api.ErrorResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}

	images := make([]string, 0, len(objects))
	for _, object := range objects {
		images = append(images, i.mediaService.PublicURL(kind, object.Name))
	}

	return c.JSON(api.ImageListResponse{
		Kind:   string(kind),
		Images: images,
		Count:  len(images),
	})
}

// @Summary Find orphaned images
// @Description List stored images no post references anymore, candidates
// @Description for cleanup.
// @ID orphanedImages
// @Tags images
// @Produce json
// @Success 200 {object} api.OrphanedImagesResponse
// @Router /api/v1/images/orphaned [get]
// @Security ApiKeyAuth
func (i ImageHandler) OrphanedImages(c *fiber.Ctx) error {
	orphaned, err := i.postService.OrphanedImages(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(api.ErrorResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}

	return c.JSON(api.OrphanedImagesResponse{
		CoverImages:   toOrphanResponses(orphaned.CoverImages),
		ContentImages: toOrphanResponses(orphaned.ContentImages),
		Total:         orphaned.Total,
	})
}

func toOrphanResponses(orphans []domain.OrphanedImage) []api.OrphanedImageResponse {
	responseData := make([]api.OrphanedImageResponse, 0, len(orphans))
	for _, orphan := range orphans {
		responseData = append(responseData, api.OrphanedImageResponse{
			Filename:     orphan.Filename,
			Path:         orphan.Path,
			URL:          orphan.URL,
			Size:         orphan.Size,
			LastModified: orphan.LastModified.UTC().Format(time.RFC3339),
		})
	}
	return responseData
}
