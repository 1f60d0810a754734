package dto

import "time"

// SignupRequest payload for account creation.
type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// VerifyRequest payload for token verification. The token may instead be
// supplied as a bearer Authorization header.
type VerifyRequest struct {
	Token string `json:"token"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// VerifyResponse reports the verification outcome. Username and Exp are
// present only when the token is valid.
type VerifyResponse struct {
	Valid    bool   `json:"valid"`
	Username string `json:"username,omitempty"`
	Exp      int64  `json:"exp,omitempty"`
}
