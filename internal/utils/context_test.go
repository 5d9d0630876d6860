// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Quickdo

package utils

import (
	"context"
	"testing"

	"github.com/quickdo/market-api/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestUserCtxKey(t *testing.T) {
	if UserCtxKey.String() != "user" {
		t.Errorf("expected 'user', got '%s'", UserCtxKey.String())
	}
}

func TestUserFromContext_Success(t *testing.T) {
	ctx := WithUser(context.Background(), models.User{UserID: 42, Admin: true})

	user, ok := UserFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if user.UserID != 42 || !user.Admin {
		t.Errorf("unexpected user %+v", user)
	}
}

func TestUserFromContext_Missing(t *testing.T) {
	user, ok := UserFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if user.UserID != 0 {
		t.Errorf("expected zero user, got %+v", user)
	}
}

func TestUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, int64(42))

	if _, ok := UserFromContext(ctx); ok {
		t.Fatal("expected ok=false for a value of another type")
	}
}
