// Package hash wraps the one-way password hashing primitive behind a small
// interface so services stay testable and the algorithm stays swappable.
package hash

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost matches the cost the original deployment was provisioned with.
const DefaultCost = 10

// PasswordHasher produces a salted one-way hash from a plaintext password.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a bcrypt-backed PasswordHasher. Costs outside
// bcrypt's valid range fall back to DefaultCost.
func NewBcryptHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
