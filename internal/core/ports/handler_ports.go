package ports

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type PostHandlerInterface interface {
	ListPosts(c *fiber.Ctx) error
	GetPost(c *fiber.Ctx) error
	CreatePost(c *fiber.Ctx) error
	UpdatePost(c *fiber.Ctx) error
	ArchivePost(c *fiber.Ctx) error
	UnarchivePost(c *fiber.Ctx) error
	ActivatePost(c *fiber.Ctx) error
	DeactivatePost(c *fiber.Ctx) error
	DeletePost(c *fiber.Ctx) error
	PostImages(c *fiber.Ctx) error
	AddPostImages(c *fiber.Ctx) error
	DeletePostImage(c *fiber.Ctx) error
	ReplacePostImage(c *fiber.Ctx) error
	SetCoverImage(c *fiber.Ctx) error
	DeleteCoverImage(c *fiber.Ctx) error
}

type TagHandlerInterface interface {
	ListTags(c *fiber.Ctx) error
	ListTagsWithCounts(c *fiber.Ctx) error
}

type ImageHandlerInterface interface {
	Upload(c *fiber.Ctx) error
	UploadMultiple(c *fiber.Ctx) error
	DeleteImage(c *fiber.Ctx) error
	ListImages(c *fiber.Ctx) error
	OrphanedImages(c *fiber.Ctx) error
}

type AuthHandlerInterface interface {
	Login(c *fiber.Ctx) error
}

type StatsHandlerInterface interface {
	Stats(c *fiber.Ctx) error
}

type FeedHandlerInterface interface {
	Feed(c *fiber.Ctx) error
}

type HealthHandlerInterface interface {
	Health(c *fiber.Ctx) error
}

type WebsocketHandlerInterface interface {
	CreateToken(c *fiber.Ctx) error
	HandleEvents(c *websocket.Conn)
}

type DaemonHandlerInterface interface {
	Shutdown(c *fiber.Ctx) error
}
