// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, content digests,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClientNameCtxKey is the key used to store the authenticated client name in
// the context. Used together with GetClientNameFromContext for type-safe
// retrieval from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ClientNameCtxKey, "ops-cli")
var ClientNameCtxKey = contextKey("clientName")

// GetClientNameFromContext retrieves the authenticated client name from the
// context.
//
// Returns the client name and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	clientName, ok := utils.GetClientNameFromContext(ctx)
//	if !ok {
//	    // handle missing client in context
//	}
func GetClientNameFromContext(ctx context.Context) (string, bool) {
	clientName, ok := ctx.Value(ClientNameCtxKey).(string)
	return clientName, ok
}
