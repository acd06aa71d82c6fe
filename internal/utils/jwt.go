// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-help-campaigns/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken wraps every reason a token is rejected: bad signature,
	// unexpected algorithm, wrong issuer, expiry or malformed input.
	ErrInvalidToken = errors.New("invalid token")

	// ErrNoToken is returned when the Authorization header is empty.
	ErrNoToken = errors.New("no token provided")
)

const bearerPrefix = "bearer "

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token carrying the user
// claims {id, name, email, level} plus the registered claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// issuer and signKey must be non-empty and tokenDuration non-zero. A negative
// duration yields an already expired token.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-help-campaigns", claims, 720*time.Hour, "secret")
func GenerateJWTToken(issuer string, claims models.TokenClaims, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	expiresAt := now.Add(tokenDuration)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(claims.ID, 10),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		Claims:       claims,
		SignedString: tokenString,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - HS256 as the only accepted algorithm
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against tokenIssuer
//   - Expiration (exp) claim presence and check
//
// Every failure wraps [ErrInvalidToken].
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.ID <= 0 {
		return models.Token{}, fmt.Errorf("%w: missing user id", ErrInvalidToken)
	}

	return models.Token{
		Token:        token,
		Claims:       claims,
		SignedString: tokenString,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// GetTokenFromAuthHeader extracts the token from an Authorization header
// value. Both "Bearer <token>" and a bare "<token>" are accepted.
func GetTokenFromAuthHeader(authorizationHeader string) (string, error) {
	value := strings.TrimSpace(authorizationHeader)
	if value == "" {
		return "", ErrNoToken
	}

	if strings.EqualFold(value, strings.TrimSpace(bearerPrefix)) {
		return "", fmt.Errorf("%w: malformed authorization header", ErrInvalidToken)
	}

	if len(value) >= len(bearerPrefix) && strings.EqualFold(value[:len(bearerPrefix)], bearerPrefix) {
		value = strings.TrimSpace(value[len(bearerPrefix):])
	}

	if value == "" || strings.ContainsAny(value, " \t") {
		return "", fmt.Errorf("%w: malformed authorization header", ErrInvalidToken)
	}

	return value, nil
}
