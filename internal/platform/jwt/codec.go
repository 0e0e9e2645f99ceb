package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for every token failure: bad signature, wrong
// algorithm, malformed claims or expiry. Callers cannot tell the sub-causes
// apart from the error value; the wrapped detail is only for internal logs.
var ErrInvalidToken = errors.New("invalid token")

// Payload is the identity assertion carried inside a signed token.
type Payload struct {
	// UserID is the subject's unique identifier.
	UserID uuid.UUID

	// Email is the subject's email address at issuance time.
	Email string

	// ExpiresAt is the token expiry. When zero, Encode stamps the configured
	// default lifetime.
	ExpiresAt time.Time
}

// claims is the wire form of Payload. Field names match the canonical token
// format: {"id": ..., "email": ..., "exp": ..., "iat": ...}.
type claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Codec encodes and decodes signed identity tokens. The signing key and
// default lifetime are fixed at construction and never rotated.
type Codec struct {
	secret   []byte
	lifetime time.Duration
}

// NewCodec creates a Codec with the provided secret and default token lifetime.
func NewCodec(secret string, lifetime time.Duration) *Codec {
	return &Codec{
		secret:   []byte(secret),
		lifetime: lifetime,
	}
}

// Encode signs the payload with HS256. A zero ExpiresAt is replaced with
// now + the configured lifetime before signing.
func (c *Codec) Encode(p Payload) (string, error) {
	now := time.Now()
	exp := p.ExpiresAt
	if exp.IsZero() {
		exp = now.Add(c.lifetime)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: p.UserID.String(),
		Email:  p.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Decode verifies the signature and expiry and returns the embedded payload.
// The expected algorithm is pinned to HS256; the token header is not trusted.
// Required claims (id, email, exp) must all be present and well formed.
func (c *Codec) Decode(tokenStr string) (Payload, error) {
	var cl claims
	_, err := jwt.ParseWithClaims(tokenStr, &cl,
		func(t *jwt.Token) (interface{}, error) {
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	id, err := uuid.Parse(cl.UserID)
	if err != nil || cl.Email == "" {
		return Payload{}, fmt.Errorf("%w: missing or malformed claims", ErrInvalidToken)
	}

	return Payload{
		UserID:    id,
		Email:     cl.Email,
		ExpiresAt: cl.ExpiresAt.Time,
	}, nil
}

// Issue signs a token for the given user with the default lifetime.
// It is the issuance entry point used by the login flow.
func (c *Codec) Issue(userID uuid.UUID, email string) (string, error) {
	return c.Encode(Payload{UserID: userID, Email: email})
}
