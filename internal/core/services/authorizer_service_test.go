package services_test

import (
	"testing"
	"time"

	"github.com/AshkanSharifii/blog/internal/core/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func TestIssueAccessToken(t *testing.T) {
	auth, err := services.NewAuthorizer([]byte("test-secret"), "", time.Hour)
	require.NoError(t, err)

	signed, expiresAt, err := auth.IssueAccessToken("admin")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin", claims["sub"])
}

func TestCheckHeader(t *testing.T) {
	auth, err := services.NewAuthorizer([]byte("test-secret"), "", time.Hour)
	require.NoError(t, err)

	signed, _, err := auth.IssueAccessToken("admin")
	require.NoError(t, err)

	app := fiber.New()
	c := app.AcquireCtx(&fasthttp.RequestCtx{})
	defer app.ReleaseCtx(c)

	c.Request().Header.Set("Authorization", "Bearer "+signed)
	expiry, err := auth.CheckHeader(c)
	require.NoError(t, err)
	assert.True(t, expiry.After(time.Now()))

	c.Request().Header.Set("Authorization", "Bearer not-a-token")
	_, err = auth.CheckHeader(c)
	assert.Error(t, err)

	c.Request().Header.Del("Authorization")
	_, err = auth.CheckHeader(c)
	assert.Error(t, err)
}

func TestQueryTokenIsSingleUse(t *testing.T) {
	auth, err := services.NewAuthorizer([]byte("test-secret"), "", time.Hour)
	require.NoError(t, err)

	token := auth.GenerateQueryToken()
	require.NotEmpty(t, token)

	_, err = auth.CheckQuery(token)
	require.NoError(t, err)

	_, err = auth.CheckQuery(token)
	assert.Error(t, err)

	_, err = auth.CheckQuery("never-issued")
	assert.Error(t, err)
}
