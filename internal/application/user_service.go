package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-notes-api/internal/domain/entity"
	repo "github.com/oksasatya/go-notes-api/internal/domain/repository"
	"github.com/oksasatya/go-notes-api/pkg/helpers"
)

// TokenIssuer mints access tokens for a user id.
type TokenIssuer interface {
	Issue(userID string) (string, time.Time, error)
}

type UserService struct {
	Repo       repo.UserRepository
	Tokens     TokenIssuer
	Logger     *logrus.Logger
	BcryptCost int
}

func NewUserService(repo repo.UserRepository, tokens TokenIssuer, logger *logrus.Logger, bcryptCost int) *UserService {
	return &UserService{
		Repo:       repo,
		Tokens:     tokens,
		Logger:     logger,
		BcryptCost: bcryptCost,
	}
}

// Field order below is the order in which missing fields are reported.
type RegisterInput struct {
	FullName        string `json:"fullName" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	User        entity.SafeUser
	AccessToken string
	ExpiresAt   time.Time

	// account is kept for notification hooks and never serialized
	account *entity.User
}

// Account returns the stored user behind the result.
func (r *AuthResult) Account() *entity.User { return r.account }

// Register creates an account and returns it with a fresh access token.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	if len(in.Password) > helpers.MaxPasswordBytes {
		return nil, &ValidationError{Field: "password", Message: "Password must be at most 72 bytes"}
	}
	if in.Password != in.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	existing, err := s.Repo.GetByEmail(ctx, in.Email)
	switch {
	case err == nil && existing != nil:
		return nil, ErrConflict
	case err != nil && !errors.Is(err, repo.ErrNotFound):
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := helpers.HashPassword(in.Password, s.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &entity.User{FullName: in.FullName, Email: in.Email, Password: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.issue(u)
}

// Login checks the password against the stored bcrypt hash.
func (s *UserService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	u, err := s.Repo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup email: %w", err)
	}
	if !helpers.CompareHashAndPassword(u.Password, in.Password) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(u)
}

// GetUser re-reads the account behind a verified token.
func (s *UserService) GetUser(ctx context.Context, userID string) (entity.SafeUser, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return entity.SafeUser{}, ErrUserNotFound
		}
		return entity.SafeUser{}, fmt.Errorf("get user: %w", err)
	}
	return u.Safe(), nil
}

func (s *UserService) issue(u *entity.User) (*AuthResult, error) {
	token, exp, err := s.Tokens.Issue(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		}
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthResult{User: u.Safe(), AccessToken: token, ExpiresAt: exp, account: u}, nil
}
