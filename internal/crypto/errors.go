package crypto

import "errors"

var (
	// ErrInvalidKeySize means the configured encryption key is not exactly
	// 32 bytes. This is a startup configuration defect, never a per-request
	// condition.
	ErrInvalidKeySize = errors.New("encryption key must be exactly 32 bytes")

	// ErrMalformedEnvelope means the serialized envelope could not be split
	// into three well-formed hex fields of the expected sizes.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrCipherAuth means GCM tag verification failed: the envelope was
	// tampered with, corrupted, or sealed under a different key. No
	// plaintext is ever returned alongside it.
	ErrCipherAuth = errors.New("envelope authentication failed")
)
