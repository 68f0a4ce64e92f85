package handler

import (
	"github.com/AshkanSharifii/blog/internal/core/ports"
	"github.com/AshkanSharifii/blog/internal/core/services"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type WebsocketHandler struct {
	authorizerService ports.AuthorizerServiceInterface
	broadcaster       ports.EventBroadcasterInterface
}

type TokenHttpResponse struct {
	Token string `json:"token" validate:"required"`
} // @name WebsocketToken

func NewWebsocketHandler(
	authorizerService ports.AuthorizerServiceInterface,
	broadcaster ports.EventBroadcasterInterface,
) *WebsocketHandler {
	return &WebsocketHandler{
		authorizerService,
		broadcaster,
	}
}

// @Summary Create a websocket token
// @Description Single-use token for the event stream, passed as the token
// @Description query parameter.
// @ID createToken
// @Tags websocket
// @Accept json
// @Produce json
// @Success 200 {object} TokenHttpResponse
// @Router /api/v1/token [get]
// @Security ApiKeyAuth
func (wh WebsocketHandler) CreateToken(c *fiber.Ctx) error {
	token := wh.authorizerService.GenerateQueryToken()

	c.JSON(TokenHttpResponse{Token: token})
	return nil
}

// HandleEvents streams post events to the peer until it disconnects.
func (wh WebsocketHandler) HandleEvents(c *websocket.Conn) {
	client := &services.WebsocketClient{
		Hub:  wh.broadcaster,
		Conn: c,
	}
	client.Pump()
}
