package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher produces and verifies salted bcrypt hashes. The hash string
// is self-describing: it encodes the algorithm version, cost and salt.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher builds a hasher with the configured cost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash transforms a plaintext password into a bcrypt hash string.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether the plaintext matches the stored hash. A malformed
// hash string yields false rather than an error, so callers always get a
// plain authorization decision. The underlying comparison is constant-time.
func (h *PasswordHasher) Verify(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
