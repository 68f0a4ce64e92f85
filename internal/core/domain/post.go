package domain

import "time"

type PostStatus string

const (
	PostStatusPublished PostStatus = "published"
	PostStatusInactive  PostStatus = "inactive"
	PostStatusArchived  PostStatus = "archived"
)

type Post struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	CoverImage string     `json:"image_url,omitempty"`
	Tags       []string   `json:"tags"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
	IsActive   bool       `json:"is_active"`
	IsArchived bool       `json:"is_archived"`
}

// Status is derived, archived wins over inactive.
func (p *Post) Status() PostStatus {
	if p.IsArchived {
		return PostStatusArchived
	}
	if !p.IsActive {
		return PostStatusInactive
	}
	return PostStatusPublished
}

type PostSortField string

const (
	PostSortCreatedAt PostSortField = "created_at"
	PostSortUpdatedAt PostSortField = "updated_at"
	PostSortTitle     PostSortField = "title"
)

type PostFilter struct {
	Skip         int
	Limit        int
	Tag          string
	ShowArchived bool
	ShowInactive bool
	SortBy       PostSortField
	SortDesc     bool
}

type PostDraft struct {
	Title      string
	Content    string
	Tags       []string
	IsActive   bool
	IsArchived bool
	CoverImage string
}

type PostStats struct {
	TotalPosts    int64            `json:"total_posts"`
	ActivePosts   int64            `json:"active_posts"`
	ArchivedPosts int64            `json:"archived_posts"`
	PostsByTag    map[string]int64 `json:"posts_by_tag"`
	PostsByMonth  map[string]int64 `json:"posts_by_month"`
}
