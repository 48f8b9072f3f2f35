// Package password hashes review passwords with bcrypt.
package password

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost matches the cost used for every stored review hash.
const DefaultCost = 10

// Hasher implements application.PasswordHasher.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher. Out of range costs fall back to DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash は bcrypt の 72 バイト制限を避けるため SHA-256 + base64 (44 バイト) に変換してから bcrypt にかける。
func (h *Hasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(prehash(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
