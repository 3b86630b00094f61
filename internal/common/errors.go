// Package common defines shared sentinel errors used across the civicwatch
// client core. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrUnavailable means the durable substrate cannot be reached;
	// callers degrade to in-memory behavior.
	ErrUnavailable = errors.New("storage unavailable")

	// ErrMalformedPayload means stored or bundled content failed to parse.
	ErrMalformedPayload = errors.New("malformed payload")
)
