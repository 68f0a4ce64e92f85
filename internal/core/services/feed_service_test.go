package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/AshkanSharifii/blog/internal/core/domain"
	"github.com/AshkanSharifii/blog/internal/core/services"
	mock_ports "github.com/AshkanSharifii/blog/test/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFeedRender(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_ports.NewMockPostStoreInterface(ctrl)

	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store.EXPECT().List(gomock.Any(), domain.PostFilter{
		Limit:    50,
		SortBy:   domain.PostSortCreatedAt,
		SortDesc: true,
	}).Return([]*domain.Post{
		{ID: 1, Title: "Tags & Trees", Content: "body text", CreatedAt: createdAt, IsActive: true},
	}, nil)

	feed := services.NewFeedService(store, services.FeedConfig{
		Title:       "My Blog",
		Link:        "https://blog.example.com",
		Description: "posts",
	})

	xml, err := feed.Render(context.Background())

	require.NoError(t, err)
	assert.Contains(t, xml, "<title>My Blog</title>")
	assert.Contains(t, xml, "Tags &amp; Trees")
	assert.Contains(t, xml, "<link>https://blog.example.com/posts/1</link>")
	assert.Contains(t, xml, "<guid isPermaLink=\"false\">post-1</guid>")
	assert.Contains(t, xml, createdAt.Format(time.RFC1123Z))
}

func TestFeedRenderTruncatesLongContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_ports.NewMockPostStoreInterface(ctrl)

	long := ""
	for i := 0; i < 600; i++ {
		long += "x"
	}
	store.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*domain.Post{
		{ID: 2, Title: "Long", Content: long, IsActive: true},
	}, nil)

	feed := services.NewFeedService(store, services.FeedConfig{Title: "t", Link: "http://l", Description: "d"})

	xml, err := feed.Render(context.Background())

	require.NoError(t, err)
	assert.NotContains(t, xml, long)
	assert.Contains(t, xml, "...")
}
