package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/bizledger/bizledger-go/internal/crypto"
	"github.com/bizledger/bizledger-go/internal/model"
	"github.com/bizledger/bizledger-go/internal/repository"
)

var (
	ErrAllFieldsRequired  = errors.New("all fields are required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrUserExists         = errors.New("user with this email or username already exists")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDeactivated = errors.New("account is deactivated")
	ErrUserNotFound       = errors.New("user not found")
)

const minPasswordLength = 6

// UserStore is the credential-store surface the auth flows depend on.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, userID string) (*model.User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
}

// AuthService handles registration, login and identity lookups.
type AuthService struct {
	store     UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService. The secret and expiry are
// process-wide configuration injected once at startup.
func NewAuthService(store UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		store:     store,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register validates the request and creates a new active user account.
// It does not log the user in; no token is issued. The existence check is
// advisory — a concurrent duplicate slips past it and is caught by the
// store's unique constraint, which maps to the same ErrUserExists.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) error {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return ErrAllFieldsRequired
	}
	if len(req.Password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	exists, err := s.store.ExistsByEmailOrUsername(ctx, req.Email, req.Username)
	if err != nil {
		return err
	}
	if exists {
		return ErrUserExists
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		IsActive:     true,
	}

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return ErrUserExists
		}
		return err
	}

	return nil
}

// Login verifies credentials and returns a session token with a public-safe
// user projection. An unknown email and a wrong password both fail with
// ErrInvalidCredentials; a deactivated account fails distinguishably.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return model.LoginResponse{}, ErrMissingCredentials
	}

	user, err := s.store.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.LoginResponse{}, ErrInvalidCredentials
		}
		return model.LoginResponse{}, err
	}

	if !user.IsActive {
		return model.LoginResponse{}, ErrAccountDeactivated
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.LoginResponse{}, err
	}
	if !match {
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.UserID, user.Username, user.Email, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User: model.UserResponse{
			UserID:   user.UserID,
			Username: user.Username,
			Email:    user.Email,
		},
	}, nil
}

// GetUser returns the public-safe projection of a user by userid.
func (s *AuthService) GetUser(ctx context.Context, userID string) (model.UserResponse, error) {
	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}

	return model.UserResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}
