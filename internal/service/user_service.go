package service

import (
	"context"
	"errors"
	"time"

	"app/internal/model"
	"app/internal/repository"
	"app/internal/util"
)

// UserService handles account registration and authentication.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
	GetUser(ctx context.Context, userID string) (*model.User, error)
	// Token issues a signed access token for the user.
	Token(u *model.User) (string, error)
}

type userService struct {
	repo      repository.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

// NewUserService creates a new UserService
func NewUserService(repo repository.UserRepository, jwtSecret string, tokenTTL time.Duration) UserService {
	return &userService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *userService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || !util.CheckPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *userService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

func (s *userService) Token(u *model.User) (string, error) {
	return util.GenerateJWT(u.ID, u.Email, u.IsStaff, s.jwtSecret, s.tokenTTL)
}
