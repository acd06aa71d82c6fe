// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UserStatus is the lifecycle state of an account.
type UserStatus string

const (
	// UserStatusPendingActivation is assigned on signup.
	UserStatusPendingActivation UserStatus = "PENDING_ACTIVATION"
	UserStatusActive            UserStatus = "ACTIVE"
	UserStatusBlocked           UserStatus = "BLOCKED"
	UserStatusDeleted           UserStatus = "DELETED"
)

// DefaultUserType is the user_type assigned to accounts created via signup.
const DefaultUserType = 4

// User represents a platform account. Password carries the plain-text value
// only while a signup or signin request travels to the service layer;
// PasswordHash is what gets persisted.
type User struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	ZipCode     string `json:"zipCode,omitempty"`
	City        string `json:"city"`
	State       string `json:"state"`
	Email       string `json:"email"`

	// Password is the plain-text password received from the client.
	// It is never persisted nor serialized back.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the users table.
	PasswordHash string `json:"-"`

	Status        UserStatus `json:"status,omitempty"`
	UserType      int        `json:"userType,omitempty"`
	Photo         string     `json:"photo,omitempty"`
	PhotoDocument string     `json:"photoDocument,omitempty"`
	CreatedAt     time.Time  `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PasswordChange is the body of a password change request.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
