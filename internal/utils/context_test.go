// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestClientNameCtxKey(t *testing.T) {
	if ClientNameCtxKey.String() != "clientName" {
		t.Errorf("expected 'clientName', got '%s'", ClientNameCtxKey.String())
	}
}

func TestGetClientNameFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), ClientNameCtxKey, "ops-cli")

	clientName, ok := GetClientNameFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if clientName != "ops-cli" {
		t.Errorf("expected clientName='ops-cli', got %s", clientName)
	}
}

func TestGetClientNameFromContext_Missing(t *testing.T) {
	ctx := context.Background()

	clientName, ok := GetClientNameFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for missing value, got true")
	}
	if clientName != "" {
		t.Errorf("expected empty clientName, got %s", clientName)
	}
}

func TestGetClientNameFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), ClientNameCtxKey, 42)

	_, ok := GetClientNameFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for value of wrong type, got true")
	}
}
