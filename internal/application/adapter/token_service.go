package adapter

import "context"

// TokenClaims represents the validated claims of an access token.
type TokenClaims struct {
	UserID int
	Email  string
}

// TokenPair holds a freshly issued access/refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService defines the interface for issuing and validating auth tokens.
type TokenService interface {
	// GenerateTokenPair issues an access token and a refresh token for the user.
	GenerateTokenPair(ctx context.Context, userID int, email string) (*TokenPair, error)

	// ValidateAccessToken parses and validates an access token.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// RevokeRefreshToken invalidates a previously issued refresh token.
	RevokeRefreshToken(ctx context.Context, token string) error
}
