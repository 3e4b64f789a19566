package models

import "time"

// TokenRequest is the body of an admin token exchange: the caller proves
// knowledge of the receiver's configured API secret.
type TokenRequest struct {
	// Secret is the shared secret configured on the receiver.
	Secret string `json:"secret"`
}

// TokenResponse carries a freshly issued admin bearer token.
type TokenResponse struct {
	// Token is the compact JWS serialization ready for the
	// Authorization header.
	Token string `json:"token"`

	// ExpiresAt is the token's expiry instant.
	ExpiresAt time.Time `json:"expiresAt"`
}

// UploadResponse is the receiver's answer to a multipart upload request.
type UploadResponse struct {
	// Files lists the stored-file records created (or, for duplicate
	// content, reused) for every file part of the request.
	Files []StoredFile `json:"files"`

	// Length is the total number of entries in Files. Provided for
	// convenience so clients can validate the response without iterating.
	Length int `json:"length"`
}
