package services

import (
	"context"
	"errors"

	"github.com/AshkanSharifii/blog/internal/core/domain"
	"github.com/AshkanSharifii/blog/internal/core/ports"
	"github.com/AshkanSharifii/blog/internal/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	store ports.UserStoreInterface
}

func NewUserService(store ports.UserStoreInterface) *UserService {
	return &UserService{store: store}
}

// Authenticate verifies username and password. A bad username and a bad
// password both yield domain.ErrInvalidCredentials.
func (u *UserService) Authenticate(ctx context.Context, username string, password string) (*domain.User, error) {
	user, err := u.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (u *UserService) Create(ctx context.Context, username string, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return u.store.CreateUser(ctx, username, string(hash))
}

// EnsureDefaultUser seeds the admin account on first start.
func (u *UserService) EnsureDefaultUser(ctx context.Context, username string, password string) error {
	if username == "" || password == "" {
		return nil
	}

	_, err := u.store.GetUserByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	if _, err := u.Create(ctx, username, password); err != nil {
		return err
	}

	logger.Log().Info("Created default user", zap.String("username", username))
	return nil
}
