package contract

import (
	"context"
)

// IHasher hashes and verifies passwords and token material.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
	// HashString hashes long-lived token material (SHA-256, not bcrypt).
	HashString(s string) string
	CheckHash(s, hash string) bool
}

// IUUIDGenerator produces entity identifiers.
type IUUIDGenerator interface {
	NewUUID() string
}

// IRandomGenerator produces random token and OTP material.
type IRandomGenerator interface {
	GenerateRandomToken(n int) (string, error)
	// GenerateOTPCode returns a zero-padded numeric code of the given length.
	GenerateOTPCode(digits int) (string, error)
}

// IEmailService delivers transactional email.
type IEmailService interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// ICache is a cache for expensive read models, keyed by the caller.
type ICache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Invalidate(ctx context.Context, keys ...string) error
	InvalidatePrefix(ctx context.Context, prefix string) error
}
