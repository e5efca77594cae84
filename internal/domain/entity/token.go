package entity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a persisted credential (refresh token) issued to a user.
// Only the hash of the token material is stored.
type Token struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	TokenType TokenType `bson:"token_type" json:"token_type"`
	TokenHash string    `bson:"token_hash" json:"-"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	Revoke    bool      `bson:"revoke" json:"revoke"`
}

// TokenType discriminates the purpose of a stored token.
type TokenType string

const (
	TokenTypeRefresh TokenType = "refresh"
)

// Claims are the parsed contents of an access or refresh token.
// Only the user ID and role are embedded; everything else is read
// from the store when the request is authenticated.
type Claims struct {
	UserID string
	Role   UserRole
	jwt.RegisteredClaims
}
