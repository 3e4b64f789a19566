package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongSecret         = errors.New("wrong API secret")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	ErrNoAssetsSelected = errors.New("no assets selected")
	ErrNoDestination    = errors.New("no destination URL provided")
)
