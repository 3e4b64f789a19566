// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinels reported by the auth middleware while dissecting the
// "Authorization" header of admin requests; match with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader — the request carries no "Authorization"
	// header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader — the header cannot be split into a
	// scheme and a token part.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken — the "Bearer" scheme is present but the token value
	// is blank.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
