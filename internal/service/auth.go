package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/sociable-server/internal/apperror"
	"github.com/dtroode/sociable-server/internal/logger"
	"github.com/dtroode/sociable-server/internal/model"
)

// Auth implements registration, login and identity lookups.
type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Session is the result of a successful registration or login.
type Session struct {
	User  model.PublicUser
	Token string
}

// Register creates a user and issues a session token. Uniqueness is not
// pre-checked; a conflicting email or username surfaces from the store.
func (a *Auth) Register(ctx context.Context, email, username, password string) (Session, error) {
	a.logger.Debug("Auth service: registering user",
		"email", email,
		"username", username)

	hash, err := a.hasher.Hash(ctx, password)
	if err != nil {
		return Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
	})
	if errors.Is(err, model.ErrDuplicate) {
		a.logger.Info("Auth service: email or username already taken",
			"email", email,
			"username", username)
		return Session{}, apperror.NewConflict("Email or username already taken")
	}
	if err != nil {
		return Session{}, fmt.Errorf("failed to create user: %w", err)
	}

	tokenString, err := a.tokenManager.Generate(user.ID, user.Email)
	if err != nil {
		return Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"user_id", user.ID,
		"username", user.Username)

	return Session{User: user.Public(), Token: tokenString}, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password fail identically.
func (a *Auth) Login(ctx context.Context, email, password string) (Session, error) {
	a.logger.Debug("Auth service: logging user in",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return Session{}, apperror.NewInvalidCredentials()
	}
	if err != nil {
		return Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := a.hasher.Compare(ctx, password, user.PasswordHash); err != nil {
		return Session{}, apperror.NewInvalidCredentials()
	}

	tokenString, err := a.tokenManager.Generate(user.ID, user.Email)
	if err != nil {
		return Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID)

	return Session{User: user.Public(), Token: tokenString}, nil
}

// Me returns the public identity of the authenticated user.
func (a *Auth) Me(ctx context.Context, userID int64) (model.PublicUser, error) {
	user, err := a.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.PublicUser{}, apperror.NewNotFound("User not found")
	}
	if err != nil {
		return model.PublicUser{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user.Public(), nil
}
