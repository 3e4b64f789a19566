// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-media-kit/internal/config"
	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService() AuthService {
	cfg := config.App{
		APISecret:     "test-secret",
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "media-receiver",
		TokenDuration: time.Hour,
	}
	return NewAuthService(cfg, logger.Nop())
}

// ─────────────────────────────────────────────
// IssueToken
// ─────────────────────────────────────────────

func TestAuthService_IssueToken_Success(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	token, err := svc.IssueToken(ctx, models.TokenRequest{Secret: "test-secret"})
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)

	subject, err := token.ClientName()
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestAuthService_IssueToken_EmptySecret(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.IssueToken(context.Background(), models.TokenRequest{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_IssueToken_WrongSecret(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.IssueToken(context.Background(), models.TokenRequest{Secret: "guess"})
	assert.ErrorIs(t, err, ErrWrongSecret)
}

// ─────────────────────────────────────────────
// ParseToken
// ─────────────────────────────────────────────

func TestAuthService_ParseToken_Roundtrip(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	issued, err := svc.IssueToken(ctx, models.TokenRequest{Secret: "test-secret"})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, issued.SignedString)
	require.NoError(t, err)

	subject, err := parsed.ClientName()
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.ParseToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongSignKey(t *testing.T) {
	other := NewAuthService(config.App{
		APISecret:     "test-secret",
		TokenSignKey:  "another-sign-key",
		TokenIssuer:   "media-receiver",
		TokenDuration: time.Hour,
	}, logger.Nop())

	issued, err := other.IssueToken(context.Background(), models.TokenRequest{Secret: "test-secret"})
	require.NoError(t, err)

	svc := newTestAuthService()
	_, err = svc.ParseToken(context.Background(), issued.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
