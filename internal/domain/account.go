package domain

import "time"

// Account is the stored identity for a registered user.
type Account struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// AccountView is the public projection of an account. It never carries
// the password hash.
type AccountView struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// View strips the account down to its public fields.
func (a *Account) View() AccountView {
	return AccountView{ID: a.ID, Username: a.Username, CreatedAt: a.CreatedAt}
}
