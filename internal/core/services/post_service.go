package services

import (
	"context"
	"sort"
	"time"

	"github.com/AshkanSharifii/blog/internal/core/domain"
	"github.com/AshkanSharifii/blog/internal/core/ports"
	"github.com/AshkanSharifii/blog/internal/utils"
	"github.com/AshkanSharifii/blog/internal/utils/logger"
	"go.uber.org/zap"
)

type PostService struct {
	store       ports.PostStoreInterface
	media       ports.MediaServiceInterface
	broadcaster ports.EventBroadcasterInterface
}

func NewPostService(store ports.PostStoreInterface, media ports.MediaServiceInterface, broadcaster ports.EventBroadcasterInterface) *PostService {
	return &PostService{
		store:       store,
		media:       media,
		broadcaster: broadcaster,
	}
}

func (p *PostService) List(ctx context.Context, filter domain.PostFilter) ([]*domain.Post, error) {
	return p.store.List(ctx, filter)
}

func (p *PostService) Get(ctx context.Context, id int64) (*domain.Post, error) {
	return p.store.Get(ctx, id)
}

// Create stores the uploads, weaves content images into the markdown and
// inserts the post.
func (p *PostService) Create(ctx context.Context, draft domain.PostDraft, cover *domain.Upload, content []domain.Upload, positions []domain.ImagePosition) (*domain.Post, error) {
	if cover != nil {
		filename, err := p.media.Save(ctx, domain.ImageKindCover, *cover)
		if err != nil {
			return nil, err
		}
		draft.CoverImage = filename
	}

	if len(content) > 0 {
		filenames, err := p.media.SaveMultiple(ctx, domain.ImageKindContent, content)
		if err != nil {
			return nil, err
		}
		draft.Content = p.insertContentImages(draft.Content, filenames, positions)
	}

	post, err := p.store.Create(ctx, draft)
	if err != nil {
		return nil, err
	}

	p.publish(domain.EventPostCreated, post)
	return post, nil
}

// Update rewrites the post. keepCover keeps the current cover when no new
// upload arrives; deleteUnused removes content images the new markdown no
// longer references.
func (p *PostService) Update(ctx context.Context, id int64, draft domain.PostDraft, cover *domain.Upload, content []domain.Upload, positions []domain.ImagePosition, keepCover bool, deleteUnused bool) (*domain.Post, error) {
	existing, err := p.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	setCover := false
	if cover != nil {
		if existing.CoverImage != "" {
			p.removeQuietly(ctx, domain.ImageKindCover, existing.CoverImage)
		}
		filename, err := p.media.Save(ctx, domain.ImageKindCover, *cover)
		if err != nil {
			return nil, err
		}
		draft.CoverImage = filename
		setCover = true
	} else if !keepCover {
		if existing.CoverImage != "" {
			p.removeQuietly(ctx, domain.ImageKindCover, existing.CoverImage)
		}
		draft.CoverImage = ""
		setCover = true
	}

	if len(content) > 0 {
		filenames, err := p.media.SaveMultiple(ctx, domain.ImageKindContent, content)
		if err != nil {
			return nil, err
		}
		draft.Content = p.insertContentImages(draft.Content, filenames, positions)
	}

	updated, err := p.store.Update(ctx, id, draft, setCover)
	if err != nil {
		return nil, err
	}

	if deleteUnused {
		unused := utils.FindUnusedImages(existing.Content, updated.Content)
		if len(unused) > 0 {
			_ = p.media.RemoveMany(ctx, domain.ImageKindContent, unused)
		}
	}

	p.publish(domain.EventPostUpdated, updated)
	return updated, nil
}

func (p *PostService) SetArchived(ctx context.Context, id int64, archived bool) (*domain.Post, error) {
	post, err := p.store.SetArchived(ctx, id, archived)
	if err != nil {
		return nil, err
	}
	if archived {
		p.publish(domain.EventPostArchived, post)
	} else {
		p.publish(domain.EventPostUnarchived, post)
	}
	return post, nil
}

func (p *PostService) SetActive(ctx context.Context, id int64, active bool) (*domain.Post, error) {
	post, err := p.store.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}
	p.publish(domain.EventPostUpdated, post)
	return post, nil
}

// Delete removes the post and, when asked, its images.
func (p *PostService) Delete(ctx context.Context, id int64, deleteImages bool) error {
	post, err := p.store.Get(ctx, id)
	if err != nil {
		return err
	}

	if deleteImages {
		if post.CoverImage != "" {
			p.removeQuietly(ctx, domain.ImageKindCover, post.CoverImage)
		}
		contentImages := utils.FindImagesInContent(post.Content)
		if len(contentImages) > 0 {
			_ = p.media.RemoveMany(ctx, domain.ImageKindContent, contentImages)
		}
	}

	if err := p.store.Delete(ctx, id); err != nil {
		return err
	}

	p.publish(domain.EventPostDeleted, post)
	return nil
}

// Images lists the cover and content image URLs of one post.
func (p *PostService) Images(ctx context.Context, id int64) (*domain.PostImages, error) {
	post, err := p.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	contentImages := []string{}
	for _, filename := range utils.FindImagesInContent(post.Content) {
		contentImages = append(contentImages, p.media.PublicURL(domain.ImageKindContent, filename))
	}

	images := &domain.PostImages{
		PostID:        id,
		ContentImages: contentImages,
		TotalImages:   len(contentImages),
	}
	if post.CoverImage != "" {
		images.CoverImage = p.media.PublicURL(domain.ImageKindCover, post.CoverImage)
		images.TotalImages++
	}
	return images, nil
}

// AddImages attaches uploads to an existing post. A cover upload replaces
// the current cover; content uploads are optionally inserted into the
// markdown.
func (p *PostService) AddImages(ctx context.Context, id int64, kind domain.ImageKind, uploads []domain.Upload, autoInsert bool, positions []domain.ImagePosition) ([]string, error) {
	post, err := p.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	filenames, err := p.media.SaveMultiple(ctx, kind, uploads)
	if err != nil {
		return nil, err
	}

	switch {
	case kind == domain.ImageKindCover && len(filenames) > 0:
		if post.CoverImage != "" {
			p.removeQuietly(ctx, domain.ImageKindCover, post.CoverImage)
		}
		if _, err := p.store.SetCoverImage(ctx, id, filenames[0]); err != nil {
			return nil, err
		}
	case kind == domain.ImageKindContent && autoInsert:
		content := p.insertContentImages(post.Content, filenames, positions)
		if _, err := p.store.SetContent(ctx, id, content); err != nil {
			return nil, err
		}
	}

	return filenames, nil
}

// RemoveImage deletes one image from storage and optionally strips its
// markdown reference.
func (p *PostService) RemoveImage(ctx context.Context, id int64, filename string, kind domain.ImageKind, updateContent bool) error {
	post, err := p.store.Get(ctx, id)
	if err != nil {
		return err
	}

	if extracted := utils.ExtractFilenameFromPath(filename); extracted != "" {
		filename = extracted
	}

	isCover := kind == domain.ImageKindCover && post.CoverImage == filename

	if kind == domain.ImageKindContent && !isCover {
		referenced := false
		for _, img := range utils.FindImagesInContent(post.Content) {
			if img == filename {
				referenced = true
				break
			}
		}
		if !referenced {
			return domain.ErrImageNotInContent
		}
	}

	if err := p.media.Remove(ctx, kind, filename); err != nil {
		return err
	}

	if isCover {
		if _, err := p.store.SetCoverImage(ctx, id, ""); err != nil {
			return err
		}
	} else if updateContent && kind == domain.ImageKindContent {
		content := utils.RemoveImageFromContent(post.Content, p.media.PublicURL(domain.ImageKindContent, filename))
		if _, err := p.store.SetContent(ctx, id, content); err != nil {
			return err
		}
	}

	return nil
}

// ReplaceImage swaps one image for a new upload. The old file is removed
// from storage and, for content images, the markdown reference is
// rewritten to the new file.
func (p *PostService) ReplaceImage(ctx context.Context, id int64, oldFilename string, upload domain.Upload, kind domain.ImageKind, updateContent bool) (string, error) {
	post, err := p.store.Get(ctx, id)
	if err != nil {
		return "", err
	}

	if extracted := utils.ExtractFilenameFromPath(oldFilename); extracted != "" {
		oldFilename = extracted
	}

	isCover := kind == domain.ImageKindCover && post.CoverImage == oldFilename

	if kind == domain.ImageKindContent && !isCover {
		referenced := false
		for _, img := range utils.FindImagesInContent(post.Content) {
			if img == oldFilename {
				referenced = true
				break
			}
		}
		if !referenced {
			return "", domain.ErrImageNotInContent
		}
	}

	newFilename, err := p.media.Save(ctx, kind, upload)
	if err != nil {
		return "", err
	}

	p.removeQuietly(ctx, kind, oldFilename)

	if isCover {
		if _, err := p.store.SetCoverImage(ctx, id, newFilename); err != nil {
			return "", err
		}
	} else if updateContent && kind == domain.ImageKindContent {
		newURL := p.media.PublicURL(domain.ImageKindContent, newFilename)
		content := utils.ReplaceImageInContent(post.Content, p.media.PublicURL(domain.ImageKindContent, oldFilename), newURL)
		content = utils.ReplaceImageInContent(content, oldFilename, newURL)
		if _, err := p.store.SetContent(ctx, id, content); err != nil {
			return "", err
		}
	}

	return newFilename, nil
}

// SetCover replaces just the cover image.
func (p *PostService) SetCover(ctx context.Context, id int64, upload domain.Upload) (*domain.Post, error) {
	post, err := p.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	filename, err := p.media.Save(ctx, domain.ImageKindCover, upload)
	if err != nil {
		return nil, err
	}

	if post.CoverImage != "" {
		p.removeQuietly(ctx, domain.ImageKindCover, post.CoverImage)
	}

	return p.store.SetCoverImage(ctx, id, filename)
}

// RemoveCover deletes the cover image and clears the reference.
func (p *PostService) RemoveCover(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := p.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if post.CoverImage != "" {
		p.removeQuietly(ctx, domain.ImageKindCover, post.CoverImage)
	}

	return p.store.SetCoverImage(ctx, id, "")
}

// OrphanedImages lists stored objects no post references, archived and
// inactive posts included.
func (p *PostService) OrphanedImages(ctx context.Context) (*domain.OrphanedImages, error) {
	refs, err := p.store.ImageRefs(ctx)
	if err != nil {
		return nil, err
	}

	usedCovers := map[string]bool{}
	usedContent := map[string]bool{}
	for _, ref := range refs {
		if ref.CoverImage != "" {
			if filename := utils.ExtractFilenameFromPath(ref.CoverImage); filename != "" {
				usedCovers[filename] = true
			}
		}
		for _, img := range utils.FindImagesInContent(ref.Content) {
			if filename := utils.ExtractFilenameFromPath(img); filename != "" {
				usedContent[filename] = true
			}
		}
	}

	orphaned := &domain.OrphanedImages{
		CoverImages:   []domain.OrphanedImage{},
		ContentImages: []domain.OrphanedImage{},
	}

	coverOrphans, err := p.orphansOfKind(ctx, domain.ImageKindCover, usedCovers)
	if err != nil {
		return nil, err
	}
	contentOrphans, err := p.orphansOfKind(ctx, domain.ImageKindContent, usedContent)
	if err != nil {
		return nil, err
	}

	orphaned.CoverImages = coverOrphans
	orphaned.ContentImages = contentOrphans
	orphaned.Total = len(coverOrphans) + len(contentOrphans)
	return orphaned, nil
}

func (p *PostService) orphansOfKind(ctx context.Context, kind domain.ImageKind, used map[string]bool) ([]domain.OrphanedImage, error) {
	objects, err := p.media.List(ctx, kind)
	if err != nil {
		return nil, err
	}

	orphans := []domain.OrphanedImage{}
	for _, object := range objects {
		filename := utils.ExtractFilenameFromPath(object.Name)
		if filename == "" || used[filename] {
			continue
		}
		orphans = append(orphans, domain.OrphanedImage{
			Filename:     filename,
			Path:         object.Name,
			URL:          p.media.PublicURL(kind, filename),
			Size:         object.Size,
			LastModified: object.LastModified,
		})
	}
	return orphans, nil
}

func (p *PostService) Stats(ctx context.Context) (*domain.PostStats, error) {
	return p.store.Stats(ctx)
}

// insertContentImages places image references at the requested cursor
// offsets, highest offset first so earlier offsets stay valid. Images
// without a position are appended.
func (p *PostService) insertContentImages(content string, filenames []string, positions []domain.ImagePosition) string {
	if len(filenames) == 0 {
		return content
	}

	placed := map[int]bool{}
	if len(positions) > 0 {
		sorted := make([]domain.ImagePosition, len(positions))
		copy(sorted, positions)
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Index > sorted[j].Index
		})

		for _, pos := range sorted {
			if pos.ImageIndex < 0 || pos.ImageIndex >= len(filenames) || placed[pos.ImageIndex] {
				continue
			}
			url := p.media.PublicURL(domain.ImageKindContent, filenames[pos.ImageIndex])
			content = utils.InsertImageIntoContent(content, url, pos.Index)
			placed[pos.ImageIndex] = true
		}
	}

	for i, filename := range filenames {
		if placed[i] {
			continue
		}
		content = utils.AppendImageToContent(content, p.media.PublicURL(domain.ImageKindContent, filename))
	}
	return content
}

func (p *PostService) removeQuietly(ctx context.Context, kind domain.ImageKind, filename string) {
	if err := p.media.Remove(ctx, kind, filename); err != nil {
		logger.Log().Warn("Error deleting old image",
			zap.String(logger.LogKeyContext, logger.LogContextMedia),
			zap.String("filename", filename),
			zap.Error(err),
		)
	}
}

func (p *PostService) publish(eventType domain.EventType, post *domain.Post) {
	if p.broadcaster == nil {
		return
	}
	p.broadcaster.Publish(domain.Event{
		Type:      eventType,
		PostID:    post.ID,
		Title:     post.Title,
		Timestamp: time.Now().UTC(),
	})
}
