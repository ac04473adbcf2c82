package domain

import "time"

// RefreshSession is one issued refresh token. A user may hold several live
// sessions at once (multi-device); a session is usable only while
// ExpiresAt is in the future.
type RefreshSession struct {
	ID        int64
	UserID    int64
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// TokenPair is what a successful credential exchange returns.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AccessClaims is the identity embedded in an access token.
type AccessClaims struct {
	UserID int64
	UUID   string
	Email  string
	Role   string
}

// RefreshClaims is the minimal identity embedded in a refresh token.
type RefreshClaims struct {
	UserID int64
	UUID   string
}
