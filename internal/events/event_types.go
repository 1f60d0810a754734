package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAccountCreated EventType = "account_created"
	EventLoginSucceeded EventType = "login_succeeded"
	EventLoginFailed    EventType = "login_failed"
)

// Event represents an auth event emitted by the service layer. Payloads carry
// usernames only; plaintext passwords and hashes never enter an event.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Username  string      `json:"username"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// AccountCreatedPayload payload.
type AccountCreatedPayload struct {
	AccountID int64 `json:"account_id"`
}

// LoginSucceededPayload payload.
type LoginSucceededPayload struct {
	AccountID      int64     `json:"account_id"`
	TokenExpiresAt time.Time `json:"token_expires_at"`
}
