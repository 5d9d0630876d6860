// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Quickdo

package models

import "time"

// DefaultCountry is assigned to accounts registered without a country.
const DefaultCountry = "cameroon"

// User represents a marketplace account: an owner, a client or an administrator.
// Credential hashes are never serialised.
type User struct {
	// UserID is the server-assigned identifier of the account.
	UserID int64 `json:"id"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Phone is the unique identity of the account, stored in E.164 format.
	Phone string `json:"phone"`

	// Email is optional but unique when present.
	Email *string `json:"email,omitempty"`

	Country string `json:"country"`
	City    string `json:"city"`
	Address string `json:"address"`
	Photo   string `json:"photo"`

	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash string `json:"-"`

	// CodeHash is the bcrypt hash of the activation code issued at registration.
	// It is cleared once the account is activated.
	CodeHash string `json:"-"`

	// Admin grants access to administrative routes.
	Admin bool `json:"admin"`

	// Active is false until the phone number is verified, and again after a lock.
	Active bool `json:"active"`

	// Visible is false for soft-deleted accounts.
	Visible bool `json:"visible"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Usable reports whether the account may log in and access protected routes.
func (u User) Usable() bool {
	return u.Active && u.Visible
}

// EmailAddress returns the email or an empty string.
func (u User) EmailAddress() string {
	if u.Email == nil {
		return ""
	}
	return *u.Email
}
