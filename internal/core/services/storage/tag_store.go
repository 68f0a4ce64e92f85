package storage

import (
	"context"
	"fmt"

	"github.com/AshkanSharifii/blog/internal/core/domain"
)

// ListTags returns tags with their post counts, filtered and sorted.
func (s *Store) ListTags(ctx context.Context, filter domain.TagFilter) ([]domain.TagCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query := `SELECT t.id, t.name, COUNT(pt.post_id) AS post_count
	FROM tags t
	LEFT JOIN post_tag pt ON pt.tag_id = t.id
	GROUP BY t.id
	HAVING COUNT(pt.post_id) >= ?`

	switch {
	case filter.SortBy == domain.TagSortPostCount && filter.SortDesc:
		query += " ORDER BY post_count DESC, t.name ASC"
	case filter.SortBy == domain.TagSortPostCount:
		query += " ORDER BY post_count ASC, t.name ASC"
	case filter.SortDesc:
		query += " ORDER BY t.name DESC"
	default:
		query += " ORDER BY t.name ASC"
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += " LIMIT ? OFFSET ?"

	rows, err := s.sqlDB.QueryContext(ctx, query, filter.MinPosts, limit, filter.Skip)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	tags := []domain.TagCount{}
	for rows.Next() {
		var tag domain.TagCount
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.PostCount); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}
	return tags, nil
}
