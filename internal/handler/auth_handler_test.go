package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AshkanSharifii/blog/internal/api"
	"github.com/AshkanSharifii/blog/internal/core/domain"
	mock_ports "github.com/AshkanSharifii/blog/test/mock"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/mock/gomock"
)

// AuthTestContext holds all mocked services for auth handler testing
type AuthTestContext struct {
	App         *fiber.App
	Ctrl        *gomock.Controller
	Authorizer  *mock_ports.MockAuthorizerServiceInterface
	UserService *mock_ports.MockUserServiceInterface
	Handler     *AuthHandler
}

// setupAuthTestApp creates a Fiber app with mocked dependencies for testing
func setupAuthTestApp(t *testing.T) *AuthTestContext {
	ctrl := gomock.NewController(t)

	authorizer := mock_ports.NewMockAuthorizerServiceInterface(ctrl)
	userService := mock_ports.NewMockUserServiceInterface(ctrl)

	handler := NewAuthHandler(authorizer, userService)

	app := fiber.New()
	app.Post("/api/v1/auth/login", handler.Login)

	return &AuthTestContext{
		App:         app,
		Ctrl:        ctrl,
		Authorizer:  authorizer,
		UserService: userService,
		Handler:     handler,
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	tc := setupAuthTestApp(t)
	defer tc.Ctrl.Finish()

	expiresAt := time.Now().Add(time.Hour)
	tc.UserService.EXPECT().Authenticate(gomock.Any(), "admin", "secret").Return(&domain.User{ID: 1, Username: "admin"}, nil)
	tc.Authorizer.EXPECT().IssueAccessToken("admin").Return("jwt-token", expiresAt, nil)

	body, _ := json.Marshal(api.LoginRequest{Username: "admin", Password: "secret"})
	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := tc.App.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	respBody, _ := io.ReadAll(resp.Body)
	var result api.AccessTokenResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if result.AccessToken != "jwt-token" {
		t.Errorf("Expected token 'jwt-token', got '%s'", result.AccessToken)
	}
	if result.TokenType != "bearer" {
		t.Errorf("Expected token type 'bearer', got '%s'", result.TokenType)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	tc := setupAuthTestApp(t)
	defer tc.Ctrl.Finish()

	tc.UserService.EXPECT().Authenticate(gomock.Any(), "admin", "wrong").Return(nil, domain.ErrInvalidCredentials)

	body, _ := json.Marshal(api.LoginRequest{Username: "admin", Password: "wrong"})
	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := tc.App.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 401 {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}
}

func TestAuthHandler_Login_BadBody(t *testing.T) {
	tc := setupAuthTestApp(t)
	defer tc.Ctrl.Finish()

	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := tc.App.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}
