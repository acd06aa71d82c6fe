// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-help-campaigns/models"
	"github.com/golang-jwt/jwt/v5"
)

var testClaims = models.TokenClaims{ID: 123, Name: "Ann", Email: "ann@example.com", Level: 4}

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"

	token, err := GenerateJWTToken(issuer, testClaims, time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.Claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, token.Claims.Issuer)
	}
	if token.Claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", token.Claims.Subject)
	}
	if d := time.Until(token.ExpiresAt); d < 59*time.Minute || d > time.Hour {
		t.Errorf("unexpected expiry in %v", d)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, testClaims, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	genToken, err := GenerateJWTToken("test-issuer", testClaims, 5*time.Minute, "secret-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "test-issuer")
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}

	got := parsed.Claims
	if got.ID != testClaims.ID || got.Name != testClaims.Name || got.Email != testClaims.Email || got.Level != testClaims.Level {
		t.Errorf("claims mismatch: got %+v", got)
	}
}

func TestValidateAndParseJWTToken_Rejections(t *testing.T) {
	valid, _ := GenerateJWTToken("iss", testClaims, time.Hour, "key")
	expired, _ := GenerateJWTToken("iss", testClaims, -time.Second, "key")

	// tampered: replace the payload segment with one carrying another id
	parts := strings.Split(valid.SignedString, ".")
	other, _ := GenerateJWTToken("iss", models.TokenClaims{ID: 999}, time.Hour, "key")
	parts[1] = strings.Split(other.SignedString, ".")[1]
	tampered := strings.Join(parts, ".")

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"id": 1, "iss": "iss", "exp": time.Now().Add(time.Hour).Unix()})
	noneSigned, _ := none.SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other-key", "iss"},
		{"wrong issuer", valid.SignedString, "key", "fake-issuer"},
		{"expired", expired.SignedString, "key", "iss"},
		{"tampered payload", tampered, "key", "iss"},
		{"alg none", noneSigned, "key", "iss"},
		{"malformed", "not.a.token", "key", "iss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase bearer", header: "bearer abc", want: "abc"},
		{name: "raw token", header: "abc.def.ghi", want: "abc.def.ghi"},
		{name: "surrounding spaces", header: "  Bearer abc  ", want: "abc"},
		{name: "empty", header: "", wantErr: ErrNoToken},
		{name: "bearer without token", header: "Bearer  ", wantErr: ErrInvalidToken},
		{name: "extra parts", header: "Bearer a b", wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
