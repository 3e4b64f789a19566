// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-media-kit receiver handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded
	// as JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request body decodes but
	// fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgWrongSecret is returned when a token exchange request carries a
	// secret that does not match the receiver's configured API secret.
	MsgWrongSecret = "wrong API secret"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgMultipartExpected is returned when an upload request does not
	// carry a multipart/form-data body.
	MsgMultipartExpected = "multipart request expected"

	// MsgMalformedMultipartBody is returned when the multipart stream
	// breaks mid-request (truncated part, bad boundary).
	MsgMalformedMultipartBody = "malformed multipart body"

	// MsgNoFilePartsProvided is returned when a multipart upload contains
	// only plain form fields and no file parts.
	MsgNoFilePartsProvided = "no file parts in request"

	// MsgInvalidFilterParameters is returned when a listing request carries
	// query parameters that cannot be parsed (bad timestamp or limit).
	MsgInvalidFilterParameters = "invalid filter parameters"

	// MsgFileNotFound is returned when a read or delete operation targets
	// a stored file that does not exist.
	MsgFileNotFound = "file not found"
)
