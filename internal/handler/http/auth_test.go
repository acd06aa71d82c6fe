// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-help-campaigns/internal/app"
	"github.com/MKhiriev/go-help-campaigns/internal/metrics"
	"github.com/MKhiriev/go-help-campaigns/internal/service"
	"github.com/MKhiriev/go-help-campaigns/internal/store"
	"github.com/MKhiriev/go-help-campaigns/internal/validators"
	"github.com/MKhiriev/go-help-campaigns/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const signUpBody = `{
	"name": "Maria",
	"lastName": "Silva",
	"dateOfBirth": "1990-05-17",
	"zipCode": "01001-000",
	"city": "Sao Paulo",
	"state": "SP",
	"email": "maria@example.com",
	"password": "secret"
}`

// memoryAuth remembers signed up emails so a second signup conflicts.
type memoryAuth struct {
	mu     sync.Mutex
	emails map[string]string
}

func newMemoryAuth() *fakeAuthService {
	m := &memoryAuth{emails: map[string]string{}}
	return &fakeAuthService{
		signUpFn: func(ctx context.Context, user models.User) (models.User, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			if _, ok := m.emails[user.Email]; ok {
				return models.User{}, store.ErrEmailAlreadyExists
			}
			m.emails[user.Email] = user.Password
			return models.User{ID: int64(len(m.emails)), Email: user.Email}, nil
		},
		signInFn: func(ctx context.Context, user models.User) (models.User, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			if password, ok := m.emails[user.Email]; !ok || password != user.Password {
				return models.User{}, service.ErrWrongCredentials
			}
			return models.User{ID: 1, Email: user.Email}, nil
		},
	}
}

func authTestServices(auth service.AuthService) *service.Services {
	svcs := testServices()
	svcs.AuthService = service.NewAuthValidationService().Wrap(auth)
	return svcs
}

func TestSignUp(t *testing.T) {
	router := newTestRouter(authTestServices(newMemoryAuth()))

	first := do(router, http.MethodPost, "/signup", signUpBody, "")
	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Empty(t, first.Body.String())

	second := do(router, http.MethodPost, "/signup", signUpBody, "")
	assert.Equal(t, http.StatusConflict, second.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	assert.Equal(t, "409", resp.Code)
	assert.Equal(t, store.ErrEmailAlreadyExists.Error(), resp.Message)
}

func TestSignUp_ValidationErrors(t *testing.T) {
	called := false
	auth := &fakeAuthService{
		signUpFn: func(ctx context.Context, user models.User) (models.User, error) {
			called = true
			return models.User{}, nil
		},
	}
	router := newTestRouter(authTestServices(auth))

	rr := do(router, http.MethodPost, "/signup", `{"email":"not-an-email","password":"x"}`, "")

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.False(t, called, "service must not be called for invalid input")

	var body validators.ValidationErrors
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.NotEmpty(t, body.Errors)

	params := make([]string, 0, len(body.Errors))
	for _, fe := range body.Errors {
		assert.Equal(t, validators.LocationBody, fe.Location)
		assert.NotEmpty(t, fe.Msg)
		params = append(params, fe.Param)
	}
	assert.Contains(t, params, "email")
	assert.Contains(t, params, "password")
	assert.NotContains(t, rr.Body.String(), `"x"`, "passwords are never echoed")
}

func TestSignUp_BadJSON(t *testing.T) {
	router := newTestRouter(authTestServices(newMemoryAuth()))

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed", body: `{"email":`},
		{name: "empty", body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(router, http.MethodPost, "/signup", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestSignIn(t *testing.T) {
	router := newTestRouter(authTestServices(newMemoryAuth()))
	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/signup", signUpBody, "").Code)

	t.Run("success", func(t *testing.T) {
		rr := do(router, http.MethodPost, "/signin", `{"email":"maria@example.com","password":"secret"}`, "")
		require.Equal(t, http.StatusOK, rr.Code)

		var auth models.Authentication
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &auth))
		assert.Equal(t, "signed", auth.Token)
		assert.False(t, auth.ExpiresIn.IsZero())
	})

	t.Run("wrong password", func(t *testing.T) {
		rr := do(router, http.MethodPost, "/signin", `{"email":"maria@example.com","password":"wrong"}`, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.NotContains(t, rr.Body.String(), "token")
	})

	t.Run("unknown email", func(t *testing.T) {
		rr := do(router, http.MethodPost, "/signin", `{"email":"nobody@example.com","password":"secret"}`, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("invalid email", func(t *testing.T) {
		rr := do(router, http.MethodPost, "/signin", `{"email":"nobody","password":"secret"}`, "")
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})
}

func TestSignIn_TokenFailureIsInternal(t *testing.T) {
	auth := &fakeAuthService{
		createTokenFn: func(ctx context.Context, user models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}
	router := newTestRouter(authTestServices(auth))

	rr := do(router, http.MethodPost, "/signin", `{"email":"maria@example.com","password":"secret"}`, "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), app.MsgInternalServerError)
}

func TestAuthMetrics(t *testing.T) {
	m := metrics.New("test")
	router := newTestRouter(authTestServices(newMemoryAuth()), WithMetrics(m))

	do(router, http.MethodPost, "/signup", signUpBody, "")
	do(router, http.MethodPost, "/signup", signUpBody, "")
	do(router, http.MethodPost, "/signin", `{"email":"maria@example.com","password":"wrong"}`, "")

	scrape := do(router, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, scrape.Code)

	body := scrape.Body.String()
	assert.True(t, hasMetricLine(body, "auth_signups_total", `result="success"`))
	assert.True(t, hasMetricLine(body, "auth_signups_total", `result="conflict"`))
	assert.True(t, hasMetricLine(body, "auth_signins_total", `result="rejected"`))
}

func TestChangePassword(t *testing.T) {
	var gotUserID int64
	var gotChange models.PasswordChange
	auth := &fakeAuthService{
		changePasswordFn: func(ctx context.Context, userID int64, change models.PasswordChange) error {
			gotUserID, gotChange = userID, change
			return nil
		},
	}
	router := newTestRouter(authTestServices(auth))

	t.Run("success", func(t *testing.T) {
		rr := do(router, http.MethodPut, "/users/me/password", `{"currentPassword":"secret","newPassword":"better"}`, validTestToken)
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, int64(1), gotUserID)
		assert.Equal(t, "better", gotChange.NewPassword)
	})

	t.Run("without token", func(t *testing.T) {
		rr := do(router, http.MethodPut, "/users/me/password", `{"currentPassword":"secret","newPassword":"better"}`, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("too short", func(t *testing.T) {
		rr := do(router, http.MethodPut, "/users/me/password", `{"currentPassword":"secret","newPassword":"ab"}`, validTestToken)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	auth := &fakeAuthService{
		changePasswordFn: func(ctx context.Context, userID int64, change models.PasswordChange) error {
			return service.ErrWrongCredentials
		},
	}
	router := newTestRouter(authTestServices(auth))

	rr := do(router, http.MethodPut, "/users/me/password", `{"currentPassword":"nope","newPassword":"better"}`, validTestToken)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestDeleteAccount(t *testing.T) {
	var deleted int64
	auth := &fakeAuthService{
		deleteAccountFn: func(ctx context.Context, userID int64) error {
			deleted = userID
			return nil
		},
	}
	router := newTestRouter(authTestServices(auth))

	rr := do(router, http.MethodDelete, "/users/me", "", validTestToken)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, int64(1), deleted)
}

func TestAuthResult(t *testing.T) {
	verrs := &validators.ValidationErrors{}
	verrs.Add(validators.LocationBody, "email", "", "bad")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "success", err: nil, want: metrics.ResultSuccess},
		{name: "expected", err: store.ErrEmailAlreadyExists, want: metrics.ResultConflict},
		{name: "validation", err: verrs, want: metrics.ResultRejected},
		{name: "other", err: store.ErrExecutingQuery, want: metrics.ResultError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, authResult(tt.err, store.ErrEmailAlreadyExists, metrics.ResultConflict))
		})
	}
}

// hasMetricLine reports whether the exposition body has a sample of name
// whose labels include every given label pair.
func hasMetricLine(body, name string, labels ...string) bool {
	for _, line := range strings.Split(body, "\n") {
		if !strings.HasPrefix(line, name+"{") {
			continue
		}
		matched := true
		for _, l := range labels {
			if !strings.Contains(line, l) {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}
