// Package common defines shared constants and sentinel errors used across
// client and server layers of splitchat. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Content store boundary errors.
	ErrContentStore      = errors.New("content store error")
	ErrMalformedDocument = errors.New("malformed document")

	// Message index errors.
	ErrIndex = errors.New("index error")

	// ErrJoinIntegrity means a pointer referenced a document that a
	// successful multi-fetch did not return. The read that hit it must fail;
	// it is not the same as an empty conversation.
	ErrJoinIntegrity = errors.New("pointer references missing document")

	// Auth errors (invalid, malformed or expired credential).
	ErrInvalidToken = errors.New("invalid token")
)
