package handler

import (
	"errors"

	"github.com/AshkanSharifii/blog/internal/api"
	"github.com/AshkanSharifii/blog/internal/core/domain"
	"github.com/AshkanSharifii/blog/internal/core/ports"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authorizerService ports.AuthorizerServiceInterface
	userService       ports.UserServiceInterface
}

func NewAuthHandler(
	authorizerService ports.AuthorizerServiceInterface,
	userService ports.UserServiceInterface,
) *AuthHandler {
	return &AuthHandler{
		authorizerService,
		userService,
	}
}

// @Summary Log in
// @Description Exchange username and password for a bearer token.
// @ID login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body api.LoginRequest true "Credentials"
// @Success 200 {object} api.AccessTokenResponse
// @Failure 401 {object} api.ErrorResponse
// @Router /api/v1/auth/login [post]
func (a AuthHandler) Login(c *fiber.Ctx) error {
	var req api.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
			Status: "error",
			Error:  "invalid request body: " + err.Error(),
		})
	}

	user, err := a.userService.Authenticate(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(api.ErrorResponse{
				Status: "error",
				Error:  "invalid username or password",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(api.ErrorResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}

	token, expiresAt, err := a.authorizerService.IssueAccessToken(user.Username)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(api.ErrorResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}

	return c.JSON(api.AccessTokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt.Unix(),
	})
}
