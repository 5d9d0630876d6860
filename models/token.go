// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Quickdo

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload embedded in every issued token.
//
// It is a point-in-time projection of the non-secret profile fields of a
// [User]. Role and activation flags are deliberately absent: they are
// re-resolved from the store on every protected request.
type Claims struct {
	UserID    int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	Country   string `json:"country"`
	City      string `json:"city"`
	Address   string `json:"address"`
	Photo     string `json:"photo"`

	// RegisteredClaims carries exp, iat and the optional issuer.
	jwt.RegisteredClaims
}

// ClaimsFromUser builds the token payload for user.
func ClaimsFromUser(user User) Claims {
	return Claims{
		UserID:    user.UserID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
		Email:     user.EmailAddress(),
		Country:   user.Country,
		City:      user.City,
		Address:   user.Address,
		Photo:     user.Photo,
	}
}

// Profile returns the claim set without registered claims, as sent to clients
// next to the token.
func (c Claims) Profile() Claims {
	c.RegisteredClaims = jwt.RegisteredClaims{}
	return c
}
