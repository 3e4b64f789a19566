package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/go-media-kit/internal/config"
	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/internal/utils"
	"github.com/MKhiriev/go-media-kit/models"
)

// adminSubject is the "sub" claim of every token issued through the shared
// API secret exchange.
const adminSubject = "admin"

// authService is the concrete implementation of AuthService.
// It exchanges the receiver's configured API secret for JWT bearer tokens
// and validates them on protected routes.
type authService struct {
	// apiSecret is the shared secret a caller must present to obtain a
	// token.
	apiSecret string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		apiSecret:     cfg.APISecret,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// IssueToken exchanges the shared API secret for a signed JWT.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and expires after tokenDuration.
//
// Returns:
//   - ErrInvalidDataProvided if the request carries no secret.
//   - ErrWrongSecret if the presented secret does not match.
//   - A wrapped ErrTokenCreationFailed if JWT generation fails.
func (a *authService) IssueToken(ctx context.Context, request models.TokenRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if request.Secret == "" {
		log.Error().Msg("empty secret provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	if subtle.ConstantTimeCompare([]byte(request.Secret), []byte(a.apiSecret)) != 1 {
		log.Error().Msg("wrong API secret")
		return models.Token{}, ErrWrongSecret
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, adminSubject, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
