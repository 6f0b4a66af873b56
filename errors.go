package cpacket

import "errors"

// Errors returned by packet construction.
var (
	// ErrAllocFailed is returned when the native allocator fails.
	ErrAllocFailed = errors.New("cpacket: native allocation failed")

	// ErrTooLarge is returned when a slice does not fit in the 16-bit
	// length field.
	ErrTooLarge = errors.New("cpacket: slice exceeds maximum packet length (65535)")
)
