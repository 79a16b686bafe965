package crypto

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// KeySize is the required symmetric key length (AES-256).
	KeySize = 32
	// NonceSize is the GCM nonce length. 96 bits, the recommended size.
	NonceSize = 12
	// TagSize is the GCM authentication tag length.
	TagSize = 16
)

// Envelope is one sealed payload: a fresh random nonce, the GCM
// authentication tag, and the ciphertext body.
type Envelope struct {
	Nonce      []byte
	Tag        []byte
	Ciphertext []byte
}

// String serializes the envelope as iv:tag:ciphertext, each field
// hex-encoded. This is the persisted wire format.
func (e Envelope) String() string {
	return strings.Join([]string{
		hex.EncodeToString(e.Nonce),
		hex.EncodeToString(e.Tag),
		hex.EncodeToString(e.Ciphertext),
	}, ":")
}

// ParseEnvelope parses the serialized iv:tag:ciphertext form. The structure
// is validated strictly before any cipher operation is attempted: exactly
// three hex fields with a 12-byte nonce and a 16-byte tag. Anything else is
// ErrMalformedEnvelope.
func ParseEnvelope(payload string) (Envelope, error) {
	parts := strings.Split(payload, ":")
	if len(parts) != 3 {
		return Envelope{}, fmt.Errorf("%w: expected 3 fields, got %d", ErrMalformedEnvelope, len(parts))
	}

	nonce, err := hex.DecodeString(parts[0])
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: nonce is not valid hex", ErrMalformedEnvelope)
	}
	if len(nonce) != NonceSize {
		return Envelope{}, fmt.Errorf("%w: nonce must be %d bytes, got %d", ErrMalformedEnvelope, NonceSize, len(nonce))
	}

	tag, err := hex.DecodeString(parts[1])
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: tag is not valid hex", ErrMalformedEnvelope)
	}
	if len(tag) != TagSize {
		return Envelope{}, fmt.Errorf("%w: tag must be %d bytes, got %d", ErrMalformedEnvelope, TagSize, len(tag))
	}

	ciphertext, err := hex.DecodeString(parts[2])
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: ciphertext is not valid hex", ErrMalformedEnvelope)
	}

	return Envelope{Nonce: nonce, Tag: tag, Ciphertext: ciphertext}, nil
}
