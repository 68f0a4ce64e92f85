package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/AshkanSharifii/blog/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "blog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpen_MigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blog.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Close())
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("  ")
	require.Error(t, err)
}

func TestCreateAndGetPost(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	post, err := store.Create(ctx, domain.PostDraft{
		Title:      "First post",
		Content:    "hello world",
		Tags:       []string{"go", "blog", "go"},
		IsActive:   true,
		CoverImage: "abc123.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, "First post", post.Title)
	assert.Equal(t, "abc123.jpg", post.CoverImage)
	assert.ElementsMatch(t, []string{"go", "blog"}, post.Tags)
	assert.False(t, post.CreatedAt.IsZero())
	assert.Nil(t, post.UpdatedAt)
	assert.Equal(t, domain.PostStatusPublished, post.Status())

	got, err := store.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)
}

func TestGetPost_NotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestUpdatePost(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	post, err := store.Create(ctx, domain.PostDraft{Title: "a", Content: "b", IsActive: true, Tags: []string{"old"}})
	require.NoError(t, err)

	updated, err := store.Update(ctx, post.ID, domain.PostDraft{
		Title:    "a2",
		Content:  "b2",
		Tags:     []string{"new"},
		IsActive: true,
	}, false)
	require.NoError(t, err)

	assert.Equal(t, "a2", updated.Title)
	assert.Equal(t, []string{"new"}, updated.Tags)
	require.NotNil(t, updated.UpdatedAt)
}

func TestUpdatePost_SetCoverClearsEmpty(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	post, err := store.Create(ctx, domain.PostDraft{Title: "a", Content: "b", IsActive: true, CoverImage: "c.jpg"})
	require.NoError(t, err)

	updated, err := store.Update(ctx, post.ID, domain.PostDraft{Title: "a", Content: "b", IsActive: true}, true)
	require.NoError(t, err)
	assert.Empty(t, updated.CoverImage)

	// cover untouched when setCover is false
	updated, err = store.Update(ctx, post.ID, domain.PostDraft{Title: "a", Content: "b", IsActive: true, CoverImage: "ignored.jpg"}, false)
	require.NoError(t, err)
	assert.Empty(t, updated.CoverImage)
}

func TestListPosts_Filters(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.Create(ctx, domain.PostDraft{Title: "visible", Content: "x", IsActive: true, Tags: []string{"go"}})
	require.NoError(t, err)
	_, err = store.Create(ctx, domain.PostDraft{Title: "inactive", Content: "x", IsActive: false})
	require.NoError(t, err)
	_, err = store.Create(ctx, domain.PostDraft{Title: "archived", Content: "x", IsActive: true, IsArchived: true})
	require.NoError(t, err)

	posts, err := store.List(ctx, domain.PostFilter{})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "visible", posts[0].Title)

	posts, err = store.List(ctx, domain.PostFilter{ShowArchived: true, ShowInactive: true})
	require.NoError(t, err)
	assert.Len(t, posts, 3)

	posts, err = store.List(ctx, domain.PostFilter{Tag: "go"})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "visible", posts[0].Title)

	posts, err = store.List(ctx, domain.PostFilter{Tag: "missing"})
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestListPosts_SortAndPagination(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, title := range []string{"b", "c", "a"} {
		_, err := store.Create(ctx, domain.PostDraft{Title: title, Content: "x", IsActive: true})
		require.NoError(t, err)
	}

	posts, err := store.List(ctx, domain.PostFilter{SortBy: domain.PostSortTitle})
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "a", posts[0].Title)
	assert.Equal(t, "c", posts[2].Title)

	posts, err = store.List(ctx, domain.PostFilter{SortBy: domain.PostSortTitle, Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "b", posts[0].Title)
}

func TestPostLifecycle(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	post, err := store.Create(ctx, domain.PostDraft{Title: "a", Content: "b", IsActive: true})
	require.NoError(t, err)

	post, err = store.SetArchived(ctx, post.ID, true)
	require.NoError(t, err)
	assert.Equal(t, domain.PostStatusArchived, post.Status())

	post, err = store.SetArchived(ctx, post.ID, false)
	require.NoError(t, err)
	post, err = store.SetActive(ctx, post.ID, false)
	require.NoError(t, err)
	assert.Equal(t, domain.PostStatusInactive, post.Status())
}

func TestDeletePost(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	post, err := store.Create(ctx, domain.PostDraft{Title: "a", Content: "b", IsActive: true, Tags: []string{"t"}})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, post.ID))
	assert.ErrorIs(t, store.Delete(ctx, post.ID), domain.ErrPostNotFound)

	// tag survives, link is gone
	tags, err := store.ListTags(ctx, domain.TagFilter{})
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Zero(t, tags[0].PostCount)
}

func TestListTags(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.Create(ctx, domain.PostDraft{Title: "1", Content: "x", IsActive: true, Tags: []string{"go", "db"}})
	require.NoError(t, err)
	_, err = store.Create(ctx, domain.PostDraft{Title: "2", Content: "x", IsActive: true, Tags: []string{"go"}})
	require.NoError(t, err)

	tags, err := store.ListTags(ctx, domain.TagFilter{SortBy: domain.TagSortPostCount, SortDesc: true})
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "go", tags[0].Name)
	assert.EqualValues(t, 2, tags[0].PostCount)

	tags, err = store.ListTags(ctx, domain.TagFilter{MinPosts: 2})
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "go", tags[0].Name)
}

func TestStats(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.Create(ctx, domain.PostDraft{Title: "1", Content: "x", IsActive: true, Tags: []string{"go"}})
	require.NoError(t, err)
	_, err = store.Create(ctx, domain.PostDraft{Title: "2", Content: "x", IsActive: true, IsArchived: true})
	require.NoError(t, err)

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalPosts)
	assert.EqualValues(t, 1, stats.ActivePosts)
	assert.EqualValues(t, 1, stats.ArchivedPosts)
	assert.EqualValues(t, 1, stats.PostsByTag["go"])
	assert.Len(t, stats.PostsByMonth, 1)
}

func TestUsers(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	user, err := store.CreateUser(ctx, "admin@example.com", "hash")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Username)

	_, err = store.CreateUser(ctx, "admin@example.com", "hash")
	assert.ErrorIs(t, err, domain.ErrUserExists)

	_, err = store.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
