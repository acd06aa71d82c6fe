// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-help-campaigns/models"
)

// Field name constants used to scope user validation.
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldName        = "name"
	FieldLastName    = "lastName"
	FieldDateOfBirth = "dateOfBirth"
	FieldZipCode     = "zipCode"
	FieldCity        = "city"
	FieldState       = "state"

	// FieldSignInPassword checks the password only for presence and minimum
	// length; the upper bound matters only when a hash is created.
	FieldSignInPassword = "password for sign in"

	FieldCurrentPassword = "currentPassword"
	FieldNewPassword     = "newPassword"
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// SignUpFields and SignInFields select the rules of the respective operation.
var (
	SignUpFields = []string{FieldEmail, FieldPassword, FieldName, FieldLastName, FieldDateOfBirth, FieldZipCode, FieldCity, FieldState}
	SignInFields = []string{FieldEmail, FieldSignInPassword}
)

var userRules = []Rule[models.User]{
	{
		Field:   FieldEmail,
		Value:   func(u models.User) any { return u.Email },
		Check:   func(u models.User) bool { return IsEmail(u.Email) },
		Message: "Invalid email format",
	},
	{
		Field:   FieldPassword,
		Value:   func(u models.User) any { return "" },
		Check:   func(u models.User) bool { return byteLenBetween(u.Password, 3, MaxPasswordBytes) },
		Message: "Password must be between 3 and 72 bytes long",
	},
	{
		Field:   FieldSignInPassword,
		Param:   FieldPassword,
		Value:   func(u models.User) any { return "" },
		Check:   func(u models.User) bool { return len(u.Password) >= 3 },
		Message: "Password must be at least 3 characters long",
	},
	{
		Field:   FieldName,
		Value:   func(u models.User) any { return u.Name },
		Check:   func(u models.User) bool { return minLen(u.Name, 3) },
		Message: "Name must be at least 3 characters long",
	},
	{
		Field:   FieldLastName,
		Value:   func(u models.User) any { return u.LastName },
		Check:   func(u models.User) bool { return minLen(u.LastName, 3) },
		Message: "Last name must be at least 3 characters long",
	},
	{
		Field:   FieldDateOfBirth,
		Value:   func(u models.User) any { return u.DateOfBirth },
		Check:   func(u models.User) bool { return isDate(u.DateOfBirth) },
		Message: "Date of birth must be a date in YYYY-MM-DD format",
	},
	{
		Field:   FieldZipCode,
		Value:   func(u models.User) any { return u.ZipCode },
		Check:   func(u models.User) bool { return u.ZipCode == "" || minLen(u.ZipCode, 8) },
		Message: "Zip code must be at least 8 characters long",
	},
	{
		Field:   FieldCity,
		Value:   func(u models.User) any { return u.City },
		Check:   func(u models.User) bool { return minLen(u.City, 3) },
		Message: "City must be at least 3 characters long",
	},
	{
		Field:   FieldState,
		Value:   func(u models.User) any { return u.State },
		Check:   func(u models.User) bool { return minLen(u.State, 2) },
		Message: "State must be at least 2 characters long",
	},
}

var passwordChangeRules = []Rule[models.PasswordChange]{
	{
		Field:   FieldCurrentPassword,
		Value:   func(models.PasswordChange) any { return "" },
		Check:   func(p models.PasswordChange) bool { return len(p.CurrentPassword) >= 3 },
		Message: "Current password must be at least 3 characters long",
	},
	{
		Field:   FieldNewPassword,
		Value:   func(models.PasswordChange) any { return "" },
		Check:   func(p models.PasswordChange) bool { return byteLenBetween(p.NewPassword, 3, MaxPasswordBytes) },
		Message: "New password must be between 3 and 72 bytes long",
	},
}

// UserValidator validates models.User (sign up and sign in, selected with
// SignUpFields / SignInFields) and models.PasswordChange. Without fields a
// User is validated with the sign up rules. Password values are never echoed
// back in FieldError.Value.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.PasswordChange:
		return evaluate(value, passwordChangeRules, fields...)
	case *models.PasswordChange:
		return evaluate(*value, passwordChangeRules, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = SignUpFields
	}
	return evaluate(user, userRules, fields...)
}
