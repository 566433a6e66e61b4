package qr

import "errors"

var (
	// ErrCapacity is returned when a payload does not fit the symbol's
	// data-codeword budget at the requested error-correction level.
	ErrCapacity = errors.New("capacity exceeded")

	// ErrVersion is returned for version numbers outside 1..40.
	ErrVersion = errors.New("invalid version")
)
