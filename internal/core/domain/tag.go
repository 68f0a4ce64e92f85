package domain

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type TagCount struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	PostCount int64  `json:"post_count"`
}

type TagSortField string

const (
	TagSortName      TagSortField = "name"
	TagSortPostCount TagSortField = "post_count"
)

type TagFilter struct {
	Skip     int
	Limit    int
	SortBy   TagSortField
	SortDesc bool
	MinPosts int64
}
