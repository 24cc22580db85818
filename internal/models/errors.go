package models

import "errors"

// Sentinel errors returned by repositories. Handlers collapse these into the
// generic failure payloads; they exist so logs and tests can tell causes apart.
var (
	// ErrNotFound is returned when no garment matches the given identifier.
	ErrNotFound = errors.New("garment not found")

	// ErrInvalidID is returned when an identifier is not a well-formed UUID.
	ErrInvalidID = errors.New("invalid garment id")
)
