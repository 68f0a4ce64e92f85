package api

type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
} // @name ErrorResponse

type StatusResponse struct {
	Status string `json:"status"`
} // @name StatusResponse

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
} // @name LoginRequest

type AccessTokenResponse struct {
	AccessToken string `json:"access_token" validate:"required"`
	TokenType   string `json:"token_type" validate:"required"`
	ExpiresAt   int64  `json:"expires_at"`
} // @name AccessTokenResponse

type PostResponse struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	ImageURL   string   `json:"image_url,omitempty"`
	Tags       []string `json:"tags"`
	Status     string   `json:"status"`
	IsActive   bool     `json:"is_active"`
	IsArchived bool     `json:"is_archived"`
	CreatedAt  string   `json:"created_at,omitempty"`
	UpdatedAt  string   `json:"updated_at,omitempty"`
} // @name PostResponse

type PostListResponse struct {
	Posts []PostResponse `json:"posts"`
	Count int            `json:"count"`
} // @name PostListResponse

type PostImagesResponse struct {
	PostID        int64    `json:"post_id"`
	CoverImage    string   `json:"cover_image,omitempty"`
	ContentImages []string `json:"content_images"`
	TotalImages   int      `json:"total_images"`
} // @name PostImagesResponse

type AddImagesResponse struct {
	PostID    int64    `json:"post_id"`
	Kind      string   `json:"kind"`
	Filenames []string `json:"filenames"`
	URLs      []string `json:"urls"`
} // @name AddImagesResponse

type ReplaceImageResponse struct {
	PostID         int64  `json:"post_id"`
	OldFilename    string `json:"old_filename"`
	NewFilename    string `json:"new_filename"`
	OldURL         string `json:"old_url"`
	NewURL         string `json:"new_url"`
	Kind           string `json:"kind"`
	ContentUpdated bool   `json:"content_updated"`
} // @name ReplaceImageResponse

type OrphanedImageResponse struct {
	Filename     string `json:"filename"`
	Path         string `json:"path"`
	URL          string `json:"url"`
	Size         int64  `json:"size"`
	LastModified string `json:"last_modified"`
} // @name OrphanedImageResponse

type OrphanedImagesResponse struct {
	CoverImages   []OrphanedImageResponse `json:"orphaned_cover_images"`
	ContentImages []OrphanedImageResponse `json:"orphaned_content_images"`
	Total         int                     `json:"total_orphaned"`
} // @name OrphanedImagesResponse

type TagResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	PostCount int64  `json:"post_count"`
} // @name TagResponse

type TagListResponse struct {
	Tags  []TagResponse `json:"tags"`
	Count int           `json:"count"`
} // @name TagListResponse

type StatsResponse struct {
	TotalPosts    int64            `json:"total_posts"`
	ActivePosts   int64            `json:"active_posts"`
	ArchivedPosts int64            `json:"archived_posts"`
	PostsByTag    map[string]int64 `json:"posts_by_tag"`
	PostsByMonth  map[string]int64 `json:"posts_by_month"`
} // @name StatsResponse

type UploadResponse struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
} // @name UploadResponse

type UploadListResponse struct {
	Files []UploadResponse `json:"files"`
	Count int              `json:"count"`
} // @name UploadListResponse

type ImageListResponse struct {
	Kind   string   `json:"kind"`
	Images []string `json:"images"`
	Count  int      `json:"count"`
} // @name ImageListResponse

type InfoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
} // @name InfoResponse
