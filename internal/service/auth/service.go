// Package auth implements registration, login and token verification. Every
// protected operation in the API goes through VerifyToken first.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jaydhumal23/backend-assignment/internal/apperror"
	"github.com/jaydhumal23/backend-assignment/internal/models"
	"github.com/jaydhumal23/backend-assignment/internal/policy"
	"github.com/jaydhumal23/backend-assignment/internal/repository"
	"github.com/jaydhumal23/backend-assignment/internal/utils"
)

// invalidCredentials is shared by the unknown-email and bad-password paths so
// a login failure never reveals which part was wrong.
const invalidCredentials = "Invalid credentials"

type userRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
}

type Service struct {
	repo userRepository
	auth *utils.AuthManager
}

func NewService(r userRepository, auth *utils.AuthManager) *Service {
	return &Service{repo: r, auth: auth}
}

// Register creates a user and mints a session token for it, so the client is
// logged in right away. The plaintext password is hashed immediately and
// never stored or logged.
func (s *Service) Register(ctx context.Context, input models.RegisterRequest) (string, *models.PublicUser, error) {
	if err := input.Validate(); err != nil {
		return "", nil, apperror.Validation(err.Error())
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return "", nil, apperror.Internal(err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", nil, apperror.Conflict("email already registered")
		}
		return "", nil, apperror.Internal(fmt.Errorf("create user: %w", err))
	}

	token, err := s.auth.GenerateToken(user)
	if err != nil {
		return "", nil, apperror.Internal(fmt.Errorf("generate token: %w", err))
	}

	pub := user.Public()
	return token, &pub, nil
}

func (s *Service) Login(ctx context.Context, input models.LoginRequest) (string, *models.PublicUser, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil || !utils.CheckPasswordHash(input.Password, user.PasswordHash) {
		return "", nil, apperror.Unauthorized(invalidCredentials)
	}

	token, err := s.auth.GenerateToken(user)
	if err != nil {
		return "", nil, apperror.Internal(fmt.Errorf("generate token: %w", err))
	}

	pub := user.Public()
	return token, &pub, nil
}

// Logout is a stateless no-op: tokens are self-contained and there is no
// revocation list, so logging out is the client discarding its token.
func (s *Service) Logout() {}

// VerifyToken is the sole gate in front of every protected operation. It
// returns the caller identity and role embedded in the token.
func (s *Service) VerifyToken(token string) (*models.Caller, error) {
	claims, err := s.auth.ParseToken(token)
	if err != nil {
		return nil, apperror.Unauthorized("invalid or expired token")
	}
	return &models.Caller{ID: claims.UserID, Role: claims.Role}, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, callerID uuid.UUID) (*models.PublicUser, error) {
	user, err := s.repo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, apperror.Internal(fmt.Errorf("get user: %w", err))
	}
	pub := user.Public()
	return &pub, nil
}

// ListUsers returns every public user projection. Admin only.
func (s *Service) ListUsers(ctx context.Context, caller models.Caller) ([]models.PublicUser, error) {
	if !policy.CanViewAll(caller.Role) {
		return nil, apperror.Forbidden("admin access required")
	}

	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("list users: %w", err))
	}

	public := make([]models.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}
	return public, nil
}
