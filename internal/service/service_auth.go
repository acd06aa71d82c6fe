// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-help-campaigns/internal/config"
	"github.com/MKhiriev/go-help-campaigns/internal/logger"
	"github.com/MKhiriev/go-help-campaigns/internal/store"
	"github.com/MKhiriev/go-help-campaigns/internal/utils"
	"github.com/MKhiriev/go-help-campaigns/models"
)

// passwordHasher is satisfied by *utils.PasswordHasher.
type passwordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification and the JWT
// token lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	userRepository store.UserRepository
	hasher         passwordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) (AuthService, error) {
	hasher, err := utils.NewPasswordHasher(cfg.PasswordHashCost)
	if err != nil {
		return nil, err
	}

	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}, nil
}

// SignUp creates a new account.
//
// The email is normalized to lower case and checked for uniqueness before the
// password is hashed. A concurrent signup with the same email is still caught
// by the unique constraint and reported as store.ErrEmailAlreadyExists.
func (a *authService) SignUp(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)
	user.Email = normalizeEmail(user.Email)

	_, err := a.userRepository.FindByEmail(ctx, user.Email)
	switch {
	case err == nil:
		log.Warn().Str("email", user.Email).Msg("signup with already registered email")
		return models.User{}, store.ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("email", user.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	user.PasswordHash, err = a.hasher.Hash(user.Password)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.Password = ""
	user.Status = models.UserStatusPendingActivation
	user.UserType = models.DefaultUserType

	created, err := a.userRepository.InsertOne(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// SignIn authenticates an existing account.
//
// An unknown email and a wrong password both yield ErrWrongCredentials so the
// response does not reveal which accounts exist.
func (a *authService) SignIn(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)
	email := normalizeEmail(user.Email)

	found, err := a.userRepository.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("email", email).Msg("signin with unknown email")
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(user.Password, found.PasswordHash) {
		log.Info().Int64("id", found.ID).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	if found.Status == models.UserStatusBlocked || found.Status == models.UserStatusDeleted {
		log.Info().Int64("id", found.ID).Str("status", string(found.Status)).Msg("signin to disabled account")
		return models.User{}, ErrAccountDisabled
	}

	return found, nil
}

// CreateToken issues a signed JWT carrying {id, name, email, level}.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	claims := models.TokenClaims{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Level: user.UserType,
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, claims, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string. Every failure wraps ErrInvalidToken.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, err
	}

	return token, nil
}

// ChangePassword replaces the password hash after checking the current one.
// A wrong current password yields ErrWrongCredentials.
func (a *authService) ChangePassword(ctx context.Context, userID int64, change models.PasswordChange) error {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if !a.hasher.Verify(change.CurrentPassword, user.PasswordHash) {
		log.Info().Int64("id", userID).Msg("wrong current password")
		return ErrWrongCredentials
	}

	hash, err := a.hasher.Hash(change.NewPassword)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err = a.userRepository.UpdatePassword(ctx, userID, hash); err != nil {
		log.Err(err).Int64("id", userID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}

func (a *authService) DeleteAccount(ctx context.Context, userID int64) error {
	if err := a.userRepository.DeleteOne(ctx, userID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", userID).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
