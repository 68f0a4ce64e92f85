package domain

import (
	"io"
	"time"
)

type ImageKind string

const (
	ImageKindCover   ImageKind = "cover"
	ImageKindContent ImageKind = "content"
)

// Upload carries one multipart file on its way into object storage.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// ImagePosition is a cursor offset where a content image gets inserted.
type ImagePosition struct {
	Index      int `json:"index"`
	ImageIndex int `json:"image_index"`
}

type MediaObject struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	ETag         string    `json:"etag"`
	LastModified time.Time `json:"last_modified"`
}

// ImageRef carries the image references of one post for the orphan scan.
type ImageRef struct {
	CoverImage string
	Content    string
}

// OrphanedImage is a stored object no post references anymore.
type OrphanedImage struct {
	Filename     string    `json:"filename"`
	Path         string    `json:"path"`
	URL          string    `json:"url"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

type OrphanedImages struct {
	CoverImages   []OrphanedImage `json:"orphaned_cover_images"`
	ContentImages []OrphanedImage `json:"orphaned_content_images"`
	Total         int             `json:"total_orphaned"`
}

type PostImages struct {
	PostID        int64    `json:"post_id"`
	CoverImage    string   `json:"cover_image,omitempty"`
	ContentImages []string `json:"content_images"`
	TotalImages   int      `json:"total_images"`
}
