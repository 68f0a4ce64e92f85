package services

import (
	"context"

	"github.com/AshkanSharifii/blog/internal/core/domain"
	"github.com/AshkanSharifii/blog/internal/core/ports"
)

type TagService struct {
	store ports.TagStoreInterface
}

func NewTagService(store ports.TagStoreInterface) *TagService {
	return &TagService{store: store}
}

func (t *TagService) List(ctx context.Context, filter domain.TagFilter) ([]domain.TagCount, error) {
	return t.store.ListTags(ctx, filter)
}
