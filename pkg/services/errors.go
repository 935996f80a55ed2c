package services

import "errors"

var (
	// ErrNotFound is returned when an entity does not exist for the
	// requesting owner. Cross-owner access reports the same error.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotWaiting is returned when a resume attempt loses the WAITING→RUNNING race
	ErrNotWaiting = errors.New("run is not waiting")

	// ErrAlreadyRevoked is returned when revoking something already revoked
	ErrAlreadyRevoked = errors.New("already revoked")

	// ErrInvalidCredentials is returned on secret or token verification failure
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEnrollTokenInvalid is returned for unknown, expired, or consumed
	// enrollment tokens
	ErrEnrollTokenInvalid = errors.New("enrollment token is invalid or expired")
)
