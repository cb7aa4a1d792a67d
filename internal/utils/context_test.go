// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-medlux/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestIdentityCtxKey(t *testing.T) {
	if IdentityCtxKey.String() != "identity" {
		t.Errorf("expected 'identity', got '%s'", IdentityCtxKey.String())
	}
}

func TestGetIdentityFromContext_Success(t *testing.T) {
	want := models.Identity{UserID: "RANIERI", Nome: "Ranieri", Role: models.RoleAdmin}
	ctx := context.WithValue(context.Background(), IdentityCtxKey, want)

	got, ok := GetIdentityFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestGetIdentityFromContext_Missing(t *testing.T) {
	got, ok := GetIdentityFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if !got.IsZero() {
		t.Errorf("expected zero identity, got %+v", got)
	}
}

func TestGetIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, "RANIERI")

	if _, ok := GetIdentityFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetIdentityFromContext_ZeroIdentity(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, models.Identity{})

	if _, ok := GetIdentityFromContext(ctx); ok {
		t.Fatal("expected ok=false for anonymous identity, got true")
	}
}

func TestGetIdentityFromContext_DifferentKey(t *testing.T) {
	otherKey := contextKey("otherKey")
	ctx := context.WithValue(context.Background(), otherKey, models.Identity{UserID: "X"})

	if _, ok := GetIdentityFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}

func TestGetSessionTokenFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionTokenCtxKey, "tok")
	if got, ok := GetSessionTokenFromContext(ctx); !ok || got != "tok" {
		t.Fatalf("expected tok/true, got %q/%v", got, ok)
	}

	ctx = context.WithValue(context.Background(), SessionTokenCtxKey, "")
	if _, ok := GetSessionTokenFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty token")
	}
}
