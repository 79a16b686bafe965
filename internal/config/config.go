package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"time"
)

// Environment variable names consumed at startup.
const (
	EnvPort          = "PORT"
	EnvDatabaseURL   = "DATABASE_URL"
	EnvJWTSecret     = "JWT_SECRET"
	EnvTokenTTL      = "JWT_TTL"
	EnvEncryptionKey = "ENCRYPTION_KEY"
)

const (
	DefaultPort     = "4000"
	DefaultTokenTTL = 24 * time.Hour
)

// Config holds the process-wide configuration, constructed once at startup
// and immutable afterwards. The signing secret and encryption key are
// passed explicitly into the components that need them; nothing reads the
// environment after Load returns.
type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     []byte
	TokenTTL      time.Duration
	EncryptionKey []byte
}

// Load reads and validates configuration from the environment. A missing
// or malformed signing secret or encryption key is a fatal startup defect;
// callers are expected to abort, not to continue into request handling.
func Load() (*Config, error) {
	databaseURL := os.Getenv(EnvDatabaseURL)
	if databaseURL == "" {
		return nil, fmt.Errorf("%s environment variable is required", EnvDatabaseURL)
	}

	secret := os.Getenv(EnvJWTSecret)
	if secret == "" {
		return nil, fmt.Errorf("%s environment variable is required", EnvJWTSecret)
	}

	keyHex := os.Getenv(EnvEncryptionKey)
	if keyHex == "" {
		return nil, fmt.Errorf("%s environment variable is required", EnvEncryptionKey)
	}
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("%s must be hex-encoded: %w", EnvEncryptionKey, err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("%s must be 32 bytes (64 hex characters), got %d bytes", EnvEncryptionKey, len(key))
	}

	ttl := DefaultTokenTTL
	if raw := os.Getenv(EnvTokenTTL); raw != "" {
		ttl, err = time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("%s must be a duration such as 24h: %w", EnvTokenTTL, err)
		}
		if ttl <= 0 {
			return nil, fmt.Errorf("%s must be positive", EnvTokenTTL)
		}
	}

	port := os.Getenv(EnvPort)
	if port == "" {
		port = DefaultPort
	}

	return &Config{
		Port:          port,
		DatabaseURL:   databaseURL,
		JWTSecret:     []byte(secret),
		TokenTTL:      ttl,
		EncryptionKey: key,
	}, nil
}
