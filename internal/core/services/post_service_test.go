package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/AshkanSharifii/blog/internal/core/domain"
	"github.com/AshkanSharifii/blog/internal/core/services"
	mock_ports "github.com/AshkanSharifii/blog/test/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type postServiceTestContext struct {
	store       *mock_ports.MockPostStoreInterface
	media       *mock_ports.MockMediaServiceInterface
	broadcaster *mock_ports.MockEventBroadcasterInterface
	service     *services.PostService
}

func setupPostServiceTest(t *testing.T) *postServiceTestContext {
	ctrl := gomock.NewController(t)
	store := mock_ports.NewMockPostStoreInterface(ctrl)
	media := mock_ports.NewMockMediaServiceInterface(ctrl)
	broadcaster := mock_ports.NewMockEventBroadcasterInterface(ctrl)
	return &postServiceTestContext{
		store:       store,
		media:       media,
		broadcaster: broadcaster,
		service:     services.NewPostService(store, media, broadcaster),
	}
}

func TestCreateSavesCoverBeforeInsert(t *testing.T) {
	tc := setupPostServiceTest(t)
	ctx := context.Background()

	cover := &domain.Upload{Filename: "cover.png", ContentType: "image/png"}
	draft := domain.PostDraft{Title: "First", Content: "hello"}

	tc.media.EXPECT().Save(ctx, domain.ImageKindCover, *cover).Return("abc123.png", nil)
	tc.store.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, draft domain.PostDraft) (*domain.Post, error) {
			assert.Equal(t, "abc123.png", draft.CoverImage)
			return &domain.Post{ID: 1, Title: draft.Title, Content: draft.Content, CoverImage: draft.CoverImage, IsActive: true}, nil
		})
	tc.broadcaster.EXPECT().Publish(gomock.Any()).Do(func(event domain.Event) {
		assert.Equal(t, domain.EventPostCreated, event.Type)
		assert.Equal(t, int64(1), event.PostID)
	})

	post, err := tc.service.Create(ctx, draft, cover, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "abc123.png", post.CoverImage)
}

func TestCreateInsertsContentImagesAtPositions(t *testing.T) {
	tc := setupPostServiceTest(t)
	ctx := context.Background()

	uploads := []domain.Upload{
		{Filename: "a.png", ContentType: "image/png"},
		{Filename: "b.png", ContentType: "image/png"},
	}
	positions := []domain.ImagePosition{
		{Index: 0, ImageIndex: 0},
		{Index: 5, ImageIndex: 1},
	}

	tc.media.EXPECT().SaveMultiple(ctx, domain.ImageKindContent, uploads).Return([]string{"a1.png", "b1.png"}, nil)
	tc.media.EXPECT().PublicURL(domain.ImageKindContent, "a1.png").Return("http://cdn/content/a1.png")
	tc.media.EXPECT().PublicURL(domain.ImageKindContent, "b1.png").Return("http://cdn/content/b1.png")
	tc.store.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, draft domain.PostDraft) (*domain.Post, error) {
			// Insertion runs highest offset first, so both land where asked.
			assert.True(t, strings.HasPrefix(draft.Content, "\n\n![Image](http://cdn/content/a1.png)"))
			assert.Contains(t, draft.Content, "![Image](http://cdn/content/b1.png)")
			return &domain.Post{ID: 2, Content: draft.Content, IsActive: true}, nil
		})
	tc.broadcaster.EXPECT().Publish(gomock.Any())

	_, err := tc.service.Create(ctx, domain.PostDraft{Title: "p", Content: "12345 rest"}, nil, uploads, positions)

	require.NoError(t, err)
}

func TestUpdateReplacesCover(t *testing.T) {
	tc := setupPostServiceTest(t)
	ctx := context.Background()

	cover := &domain.Upload{Filename: "new.png", ContentType: "image/png"}
	existing := &domain.Post{ID: 3, Title: "old", CoverImage: "old.png", IsActive: true}

	tc.store.EXPECT().Get(ctx, int64(3)).Return(existing, nil)
	tc.media.EXPECT().Remove(ctx, domain.ImageKindCover, "old.png").Return(nil)
	tc.media.EXPECT().Save(ctx, domain.ImageKindCover, *cover).Return("new123.png", nil)
	tc.store.EXPECT().Update(ctx, int64(3), gomock.Any(), true).DoAndReturn(
		func(ctx context.Context, id int64, draft domain.PostDraft, setCover bool) (*domain.Post, error) {
			assert.Equal(t, "new123.png", draft.CoverImage)
			return &domain.Post{ID: 3, Title: draft.Title, CoverImage: draft.CoverImage, IsActive: true}, nil
		})
	tc.broadcaster.EXPECT().Publish(gomock.Any()).Do(func(event domain.Event) {
		assert.Equal(t, domain.EventPostUpdated, event.Type)
	})

	post, err := tc.service.Update(ctx, 3, domain.PostDraft{Title: "new"}, cover, nil, nil, true, false)

	require.NoError(t, err)
	assert.Equal(t, "new123.png", post.CoverImage)
}

func TestUpdateClearsCoverWhenNotKept(t *testing.T) {
	tc := setupPostServiceTest(t)
	ctx := context.Background()

	existing := &domain.Post{ID: 4, CoverImage: "old.png", IsActive: true}

	tc.store.EXPECT().Get(ctx, int64(4)).Return(existing, nil)
	tc.media.EXPECT().Remove(ctx, domain.ImageKindCover, "old.png").Return(nil)
	tc.store.EXPECT().Update(ctx, int64(4), gomock.Any(), true).DoAndReturn(
		func(ctx context.Context, id int64, draft domain.PostDraft, setCover bool) (*domain.Post, error) {
			assert.Equal(t, "", draft.CoverImage)
			return &domain.Post{ID: 4, IsActive: true}, nil
		})
	tc.broadcaster.EXPECT().Publish(gomock.Any())

	_, err := tc.service.Update(ctx, 4, domain.PostDraft{Title: "t"}, nil, nil, nil, false, false)

	require.NoError(t, err)
}

func TestUpdateDeletesUnusedContentImages(t *testing.T) {
	tc := setupPostServiceTest(t)
	ctx := context.Background()

	existing := &domain.Post{ID: 5, Content: "![a](a.png)\n![b](b.png)", IsActive: true}
	updated := &domain.Post{ID: 5, Content: "![b](b.png)", IsActive: true}

	tc.store.EXPECT().Get(ctx, int64(5)).Return(existing, nil)
	tc.store.EXPECT().Update(ctx, int64(5), gomock.Any(), false).Return(updated, nil)
	tc.media.EXPECT().RemoveMany(ctx, domain.ImageKindContent, []string{"a.png"}).Return(nil)
	tc.broadcaster.EXPECT().Publish(gomock.Any())

	_, err := tc.service.Update(ctx, 5, domain.PostDraft{Title: "t", Content: "![b](b.png)"}, nil, nil, nil, true, true)

	require.NoError(t, err)
}

func TestDeleteRemovesImages(t *testing.T) {
	tc := setupPostServiceTest(t)
	ctx := context.Background()

	post := &domain.Post{ID: 6, Title: "bye", CoverImage: "c.png", Content: "![x](x.png)", IsActive: true}

	tc.store.EXPECT().Get(ctx, int64(6)).Return(post, nil)
	tc.media.EXPECT().Remove(ctx, domain.ImageKindCover, "c.png").Return(nil)
	tc.media.EXPECT().RemoveMany(ctx, domain.ImageKindContent, []string{"x.png"}).Return(nil)
	tc.store.EXPECT().Delete(ctx, int64(6)).Return(nil)
	tc.broadcaster.EXPECT().Publish(gomock.Any()).Do(func(event domain.Event) {
		assert.Equal(t, domain.EventPostDeleted, event.Type)
	})

	err := tc.service.Delete(ctx, 6, true)

	require.NoError(t, err)
}

func TestSetArchivedPublishesArchivedEvent(t *testing.T) {
	tc := setupPostServiceTest(t)
	ctx := context.Background()

	archived := &domain.Post{ID: 7, IsArchived: true}

	tc.store.EXPECT().SetArchived(ctx, int64(7), true).Return(archived, nil)
	tc.broadcaster.EXPECT().Publish(gomock.Any()).Do(func(event domain.Event) {
		assert.Equal(t, domain.EventPostArchived, event.Type)
	})

	post, err := tc.service.SetArchived(ctx, 7, true)

	require.NoError(t, err)
	assert.True(t, post.IsArchived)
}

func TestAddImagesCoverReplacesExisting(t *testing.T) {
	tc := setupPostServiceTest(t)
	ctx := context.Background()

	post := &domain.Post{ID: 8, CoverImage: "old.png", IsActive: true}
	uploads := []domain.Upload{{Filename: "new.png", ContentType: "image/png"}}

	tc.store.EXPECT().Get(ctx, int64(8)).Return(post, nil)
	tc.media.EXPECT().SaveMultiple(ctx, domain.ImageKindCover, uploads).Return([]string{"new123.png"}, nil)
	tc.media.EXPECT().Remove(ctx, domain.ImageKindCover, "old.png").Return(nil)
	tc.store.EXPECT().SetCoverImage(ctx, int64(8), "new123.png").Return(post, nil)

	filenames, err := tc.service.AddImages(ctx, 8, domain.ImageKindCover, uploads, false, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"new123.png"}, filenames)
}

func TestRemoveImageNotReferenced(t *testing.T) {
	tc := setupPostServiceTest(t)
	ctx := context.Background()

	post := &domain.Post{ID: 9, Content: "no images", IsActive: true}

	tc.store.EXPECT().Get(ctx, int64(9)).Return(post, nil)

	err := tc.service.RemoveImage(ctx, 9, "ghost.png", domain.ImageKindContent, false)

	assert.ErrorIs(t, err, domain.ErrImageNotInContent)
}

func TestRemoveImageCoverClearsReference(t *testing.T) {
	tc := setupPostServiceTest(t)
	ctx := context.Background()

	post := &domain.Post{ID: 10, CoverImage: "c.png", IsActive: true}

	tc.store.EXPECT().Get(ctx, int64(10)).Return(post, nil)
	tc.media.EXPECT().Remove(ctx, domain.ImageKindCover, "c.png").Return(nil)
	tc.store.EXPECT().SetCoverImage(ctx, int64(10), "").Return(post, nil)

	err := tc.service.RemoveImage(ctx, 10, "c.png", domain.ImageKindCover, false)

	require.NoError(t, err)
}

func TestReplaceImageRewritesContent(t *testing.T) {
	tc := setupPostServiceTest(t)
	ctx := context.Background()

	post := &domain.Post{
		ID:      9,
		Title:   "Pics",
		Content: "intro\n\n![Image](http://cdn/content/old.png)\n\nrest",
	}
	upload := domain.Upload{Filename: "fresh.png", ContentType: "image/png"}

	tc.store.EXPECT().Get(ctx, int64(9)).Return(post, nil)
	tc.media.EXPECT().Save(ctx, domain.ImageKindContent, upload).Return("fresh-1.png", nil)
	tc.media.EXPECT().Remove(ctx, domain.ImageKindContent, "old.png").Return(nil)
	tc.media.EXPECT().PublicURL(domain.ImageKindContent, "fresh-1.png").Return("http://cdn/content/fresh-1.png")
	tc.media.EXPECT().PublicURL(domain.ImageKindContent, "old.png").Return("http://cdn/content/old.png")
	tc.store.EXPECT().SetContent(ctx, int64(9), gomock.Any()).DoAndReturn(
		func(ctx context.Context, id int64, content string) (*domain.Post, error) {
			assert.Contains(t, content, "http://cdn/content/fresh-1.png")
			assert.NotContains(t, content, "old.png")
			return post, nil
		})

	newFilename, err := tc.service.ReplaceImage(ctx, 9, "old.png", upload, domain.ImageKindContent, true)

	require.NoError(t, err)
	assert.Equal(t, "fresh-1.png", newFilename)
}

func TestReplaceImageNotReferenced(t *testing.T) {
	tc := setupPostServiceTest(t)
	ctx := context.Background()

	post := &domain.Post{ID: 9, Title: "Pics", Content: "no images here"}
	tc.store.EXPECT().Get(ctx, int64(9)).Return(post, nil)

	_, err := tc.service.ReplaceImage(ctx, 9, "ghost.png", domain.Upload{Filename: "x.png"}, domain.ImageKindContent, true)

	assert.ErrorIs(t, err, domain.ErrImageNotInContent)
}

func TestSetCoverReplacesExisting(t *testing.T) {
	tc := setupPostServiceTest(t)
	ctx := context.Background()

	post := &domain.Post{ID: 4, Title: "Covered", CoverImage: "stale.jpg"}
	upload := domain.Upload{Filename: "new.jpg", ContentType: "image/jpeg"}

	tc.store.EXPECT().Get(ctx, int64(4)).Return(post, nil)
	tc.media.EXPECT().Save(ctx, domain.ImageKindCover, upload).Return("new-1.jpg", nil)
	tc.media.EXPECT().Remove(ctx, domain.ImageKindCover, "stale.jpg").Return(nil)
	tc.store.EXPECT().SetCoverImage(ctx, int64(4), "new-1.jpg").
		Return(&domain.Post{ID: 4, Title: "Covered", CoverImage: "new-1.jpg"}, nil)

	updated, err := tc.service.SetCover(ctx, 4, upload)

	require.NoError(t, err)
	assert.Equal(t, "new-1.jpg", updated.CoverImage)
}

func TestRemoveCoverClearsReference(t *testing.T) {
	tc := setupPostServiceTest(t)
	ctx := context.Background()

	post := &domain.Post{ID: 4, Title: "Covered", CoverImage: "stale.jpg"}

	tc.store.EXPECT().Get(ctx, int64(4)).Return(post, nil)
	tc.media.EXPECT().Remove(ctx, domain.ImageKindCover, "stale.jpg").Return(nil)
	tc.store.EXPECT().SetCoverImage(ctx, int64(4), "").
		Return(&domain.Post{ID: 4, Title: "Covered"}, nil)

	updated, err := tc.service.RemoveCover(ctx, 4)

	require.NoError(t, err)
	assert.Empty(t, updated.CoverImage)
}

func TestOrphanedImagesSkipsReferenced(t *testing.T) {
	tc := setupPostServiceTest(t)
	ctx := context.Background()

	refs := []domain.ImageRef{
		{CoverImage: "kept-cover.jpg", Content: "![Image](http://cdn/content/kept.png)"},
		{Content: "plain text"},
	}
	tc.store.EXPECT().ImageRefs(ctx).Return(refs, nil)
	tc.media.EXPECT().List(ctx, domain.ImageKindCover).Return([]domain.MediaObject{
		{Name: "cover/kept-cover.jpg", Size: 10},
		{Name: "cover/lost-cover.jpg", Size: 20},
	}, nil)
	tc.media.EXPECT().List(ctx, domain.ImageKindContent).Return([]domain.MediaObject{
		{Name: "content/kept.png", Size: 30},
		{Name: "content/lost.png", Size: 40},
	}, nil)
	tc.media.EXPECT().PublicURL(domain.ImageKindCover, "lost-cover.jpg").Return("http://cdn/cover/lost-cover.jpg")
	tc.media.EXPECT().PublicURL(domain.ImageKindContent, "lost.png").Return("http://cdn/content/lost.png")

	orphaned, err := tc.service.OrphanedImages(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, orphaned.Total)
	require.Len(t, orphaned.CoverImages, 1)
	assert.Equal(t, "lost-cover.jpg", orphaned.CoverImages[0].Filename)
	assert.Equal(t, "cover/lost-cover.jpg", orphaned.CoverImages[0].Path)
	require.Len(t, orphaned.ContentImages, 1)
	assert.Equal(t, "lost.png", orphaned.ContentImages[0].Filename)
}
