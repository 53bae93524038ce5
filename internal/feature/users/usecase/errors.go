// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

// ErrUserNotFound is returned when no combined row exists for the requested ID.
// Transports render it as an empty result, never as an error.
var ErrUserNotFound = errors.New("user not found")
