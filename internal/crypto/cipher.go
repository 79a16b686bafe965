package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

// EnvelopeCipher seals and opens record payloads with AES-256-GCM under a
// fixed process-wide key. The key is validated once at construction; the
// cipher is safe for concurrent use.
type EnvelopeCipher struct {
	aead cipher.AEAD
}

// NewEnvelopeCipher builds an EnvelopeCipher from a 32-byte key. A key of
// any other length is a configuration defect and fails construction.
func NewEnvelopeCipher(key []byte) (*EnvelopeCipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return &EnvelopeCipher{aead: aead}, nil
}

// Seal encrypts plaintext under a freshly generated random nonce. Two calls
// with identical plaintext produce different envelopes.
func (c *EnvelopeCipher) Seal(plaintext []byte) (Envelope, error) {
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return Envelope{}, fmt.Errorf("failed to generate nonce: %w", err)
	}

	// GCM appends the tag to the ciphertext; split it back out so the
	// envelope stores the three fields separately.
	sealed := c.aead.Seal(nil, nonce, plaintext, nil)
	split := len(sealed) - TagSize
	return Envelope{
		Nonce:      nonce,
		Tag:        sealed[split:],
		Ciphertext: sealed[:split],
	}, nil
}

// Open verifies and decrypts an envelope. Tag verification runs before any
// plaintext byte is produced; on failure the returned slice is always nil.
func (c *EnvelopeCipher) Open(env Envelope) ([]byte, error) {
	if len(env.Nonce) != NonceSize || len(env.Tag) != TagSize {
		return nil, fmt.Errorf("%w: bad nonce or tag length", ErrMalformedEnvelope)
	}

	sealed := make([]byte, 0, len(env.Ciphertext)+len(env.Tag))
	sealed = append(sealed, env.Ciphertext...)
	sealed = append(sealed, env.Tag...)

	plaintext, err := c.aead.Open(nil, env.Nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCipherAuth, err)
	}
	return plaintext, nil
}

// GenerateKey returns a new cryptographically random 32-byte key. Intended
// for provisioning and tests.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}
