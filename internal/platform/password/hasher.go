// Package password provides one-way password hashing built on bcrypt.
// The digest is self-contained (algorithm, cost and salt are embedded), so no
// external salt storage is needed.
package password

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes and verifies passwords with a fixed cost factor.
type Hasher struct {
	cost  int
	dummy string
}

// NewHasher creates a Hasher with the given bcrypt cost. Costs outside
// bcrypt's supported range are clamped to the default (10).
//
// A dummy digest of a random throwaway password is generated at the same
// cost, so a Verify against it takes the same time as against a real digest.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	throwaway := make([]byte, 16)
	// crypto/randのReadは失敗しない
	_, _ = rand.Read(throwaway)
	// GenerateFromPassword only fails for an out-of-range cost, which the
	// clamp above rules out.
	dummy, _ := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(throwaway)), cost)

	return &Hasher{cost: cost, dummy: string(dummy)}
}

// Hash returns the bcrypt digest of plain.
func (h *Hasher) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plain matches digest. A structurally invalid digest
// fails closed: the result is false, never an error or panic.
func (h *Hasher) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}

// DummyDigest returns a well-formed digest at this hasher's cost that matches
// no real password. It keeps the login path's timing uniform when the email
// is unknown.
func (h *Hasher) DummyDigest() string {
	return h.dummy
}
