package services

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/AshkanSharifii/blog/internal/core/ports"
	"github.com/AshkanSharifii/blog/internal/utils"
	"github.com/AshkanSharifii/blog/internal/utils/logger"
	"github.com/MicahParks/keyfunc"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

type AuthorizerService struct {
	signingKey []byte
	jwksUrl    string
	jwks       *keyfunc.JWKS
	tokenTTL   time.Duration
	mu         sync.Mutex
	tokens     map[string]time.Time
}

// NewAuthorizer builds the token service. Access tokens are signed with
// the HS256 signingKey; when jwksURL is set, incoming tokens are verified
// against the remote key set instead.
func NewAuthorizer(signingKey []byte, jwksURL string, tokenTTL time.Duration) (ports.AuthorizerServiceInterface, error) {

	auth := &AuthorizerService{
		signingKey: signingKey,
		jwksUrl:    jwksURL,
		tokenTTL:   tokenTTL,
		tokens:     make(map[string]time.Time),
	}

	if jwksURL != "" {
		var options = keyfunc.Options{
			RefreshInterval: time.Hour,
			RefreshErrorHandler: func(err error) {
				logger.Log().Error("There was an error with the jwt.KeyFunc", zap.Error(err))
			},
		}

		jwks, err := keyfunc.Get(jwksURL, options)
		if err != nil {
			return nil, err
		}
		auth.jwks = jwks
	}

	return auth, nil
}

func (auth *AuthorizerService) SigningKey() []byte {
	return auth.signingKey
}

// IssueAccessToken mints an HS256 token for the given username.
func (auth *AuthorizerService) IssueAccessToken(username string) (string, time.Time, error) {
	expiresAt := time.Now().Add(auth.tokenTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"iat": time.Now().Unix(),
		"exp": expiresAt.Unix(),
	})

	signed, err := token.SignedString(auth.signingKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (auth *AuthorizerService) keyfunc(token *jwt.Token) (interface{}, error) {
	if auth.jwks != nil {
		return auth.jwks.Keyfunc(token)
	}
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}
	return auth.signingKey, nil
}

func (auth *AuthorizerService) CheckHeader(c *fiber.Ctx) (*time.Time, error) {

	// Get a JWT to parse.
	reqToken := c.Request().Header.Peek("Authorization")
	splitToken := strings.Split(string(reqToken), "Bearer ")

	if len(splitToken) != 2 {
		return nil, errors.New("malformed or missing token")
	}

	jwtToken := splitToken[1]

	token, err := jwt.Parse(jwtToken, auth.keyfunc)

	if err != nil {
		return nil, errors.New("Failed to parse the JWT.\nError: " + err.Error())
	}

	if !token.Valid {
		return nil, errors.New("the token is not valid")
	}

	claims, _ := token.Claims.(jwt.MapClaims)
	if claims == nil {
		return nil, errors.New("couldn't parse claims")
	}

	var tm time.Time
	switch exp := claims["exp"].(type) {
	case float64:
		tm = time.Unix(int64(exp), 0)
	case json.Number:
		v, _ := exp.Int64()
		tm = time.Unix(v, 0)
	}

	return &tm, nil
}

// CheckQuery validates a single-use websocket token.
func (auth *AuthorizerService) CheckQuery(token string) (*time.Time, error) {
	auth.mu.Lock()
	defer auth.mu.Unlock()

	if validUntil, ok := auth.tokens[token]; ok {
		defer delete(auth.tokens, token)
		if validUntil.After(time.Now()) {
			return &validUntil, nil
		}
	}
	return nil, errors.New("no valid token found")
}

func (auth *AuthorizerService) GenerateQueryToken() string {

	token, _ := utils.GenerateRandomStringURLSafe(16)

	auth.mu.Lock()
	auth.tokens[token] = time.Now().Add(time.Minute * 5)
	auth.mu.Unlock()

	t := time.NewTimer(time.Minute * 5)
	go func() {
		<-t.C
		auth.mu.Lock()
		delete(auth.tokens, token)
		auth.mu.Unlock()
	}()

	return token
}
