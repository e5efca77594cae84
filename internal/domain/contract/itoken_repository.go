package contract

import (
	"context"
	"time"

	"counselconnect/internal/domain/entity"
)

type ITokenRepository interface {
	CreateToken(ctx context.Context, token *entity.Token) error
	GetTokenByUserID(ctx context.Context, userID string) (*entity.Token, error)
	// UpdateToken updates the token hash and expiry.
	UpdateToken(ctx context.Context, tokenID string, tokenHash string, expiry time.Time) error
	// RevokeToken marks a token as revoked by its ID.
	RevokeToken(ctx context.Context, id string) error
	RevokeAllTokensForUser(ctx context.Context, userID string, tokenType entity.TokenType) error
}
