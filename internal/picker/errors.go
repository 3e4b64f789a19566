package picker

import (
	"errors"
	"fmt"
)

// ErrCancelled reports that the user dismissed a picker without selecting
// anything. Cancellation is not a fault: callers treat it as a no-op and the
// callback adapters swallow it silently.
var ErrCancelled = errors.New("picker cancelled by user")

// Capability error codes. The code is opaque data forwarded to callers as-is;
// these constants cover the faults the shipped implementations can report.
const (
	// CodeCameraUnavailable reports that no capture source can serve the
	// request.
	CodeCameraUnavailable = "camera_unavailable"

	// CodePermission reports that the capability was denied access to the
	// underlying storage.
	CodePermission = "permission"

	// CodeNotFound reports that nothing matched the pick criteria.
	CodeNotFound = "not_found"

	// CodeOthers labels failures that carry no capability-specific code.
	CodeOthers = "others"
)

// Error is a typed capability fault carrying a machine-readable code and a
// human-readable message. Both are forwarded to the caller unmodified.
type Error struct {
	Code    string
	Message string
}

// NewError constructs a capability [*Error] with the given code and message.
func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
