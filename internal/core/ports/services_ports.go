package ports

import (
	"context"
	"time"

	"github.com/AshkanSharifii/blog/internal/core/domain"
	"github.com/gofiber/fiber/v2"
)

type AuthorizerServiceInterface interface {
	IssueAccessToken(username string) (string, time.Time, error)
	CheckHeader(c *fiber.Ctx) (*time.Time, error)
	CheckQuery(token string) (*time.Time, error)
	GenerateQueryToken() string
	SigningKey() []byte
}

type UserServiceInterface interface {
	Authenticate(ctx context.Context, username string, password string) (*domain.User, error)
	Create(ctx context.Context, username string, password string) (*domain.User, error)
	EnsureDefaultUser(ctx context.Context, username string, password string) error
}

type PostServiceInterface interface {
	List(ctx context.Context, filter domain.PostFilter) ([]*domain.Post, error)
	Get(ctx context.Context, id int64) (*domain.Post, error)
	Create(ctx context.Context, draft domain.PostDraft, cover *domain.Upload, content []domain.Upload, positions []domain.ImagePosition) (*domain.Post, error)
	Update(ctx context.Context, id int64, draft domain.PostDraft, cover *domain.Upload, content []domain.Upload, positions []domain.ImagePosition, keepCover bool, deleteUnused bool) (*domain.Post, error)
	SetArchived(ctx context.Context, id int64, archived bool) (*domain.Post, error)
	SetActive(ctx context.Context, id int64, active bool) (*domain.Post, error)
	Delete(ctx context.Context, id int64, deleteImages bool) error
	Images(ctx context.Context, id int64) (*domain.PostImages, error)
	AddImages(ctx context.Context, id int64, kind domain.ImageKind, uploads []domain.Upload, autoInsert bool, positions []domain.ImagePosition) ([]string, error)
	RemoveImage(ctx context.Context, id int64, filename string, kind domain.ImageKind, updateContent bool) error
	ReplaceImage(ctx context.Context, id int64, oldFilename string, upload domain.Upload, kind domain.ImageKind, updateContent bool) (string, error)
	SetCover(ctx context.Context, id int64, upload domain.Upload) (*domain.Post, error)
	RemoveCover(ctx context.Context, id int64) (*domain.Post, error)
	OrphanedImages(ctx context.Context) (*domain.OrphanedImages, error)
	Stats(ctx context.Context) (*domain.PostStats, error)
}

type TagServiceInterface interface {
	List(ctx context.Context, filter domain.TagFilter) ([]domain.TagCount, error)
}

type MediaServiceInterface interface {
	Save(ctx context.Context, kind domain.ImageKind, upload domain.Upload) (string, error)
	SaveMultiple(ctx context.Context, kind domain.ImageKind, uploads []domain.Upload) ([]string, error)
	Remove(ctx context.Context, kind domain.ImageKind, filename string) error
	RemoveMany(ctx context.Context, kind domain.ImageKind, filenames []string) error
	List(ctx context.Context, kind domain.ImageKind) ([]domain.MediaObject, error)
	PublicURL(kind domain.ImageKind, filename string) string
	PresignedGet(ctx context.Context, kind domain.ImageKind, filename string, expiry time.Duration) (string, error)
}

type EventBroadcasterInterface interface {
	Run()
	Close()
	Publish(event domain.Event)
	Subscribe() chan []byte
	Unsubscribe(ch chan []byte)
}

type FeedServiceInterface interface {
	Render(ctx context.Context) (string, error)
}

type RuntimeMonitorInterface interface {
	StartMonitoring(ctx context.Context)
	RefreshMetrics() error
	ShutdownPromMetrics()
}

type PostStoreInterface interface {
	List(ctx context.Context, filter domain.PostFilter) ([]*domain.Post, error)
	Get(ctx context.Context, id int64) (*domain.Post, error)
	Create(ctx context.Context, draft domain.PostDraft) (*domain.Post, error)
	Update(ctx context.Context, id int64, draft domain.PostDraft, setCover bool) (*domain.Post, error)
	SetArchived(ctx context.Context, id int64, archived bool) (*domain.Post, error)
	SetActive(ctx context.Context, id int64, active bool) (*domain.Post, error)
	SetCoverImage(ctx context.Context, id int64, filename string) (*domain.Post, error)
	SetContent(ctx context.Context, id int64, content string) (*domain.Post, error)
	Delete(ctx context.Context, id int64) error
	ImageRefs(ctx context.Context) ([]domain.ImageRef, error)
	Stats(ctx context.Context) (*domain.PostStats, error)
}

type TagStoreInterface interface {
	ListTags(ctx context.Context, filter domain.TagFilter) ([]domain.TagCount, error)
}

type UserStoreInterface interface {
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, username string, passwordHash string) (*domain.User, error)
}
