package jwtmw

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TestNewCodec は各種設定でCodecが正しく生成されることを検証します。
func TestNewCodec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		secret   string
		lifetime time.Duration
	}{
		{"standard config", "my-secret-key", 30 * time.Minute},
		{"long lifetime", "secret", 24 * time.Hour * 30},
		{"short lifetime", "s", time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewCodec(tt.secret, tt.lifetime)

			if c == nil {
				t.Fatal("expected codec to be non-nil")
			}
			if string(c.secret) != tt.secret {
				t.Errorf("expected secret %q, got %q", tt.secret, string(c.secret))
			}
			if c.lifetime != tt.lifetime {
				t.Errorf("expected lifetime %v, got %v", tt.lifetime, c.lifetime)
			}
		})
	}
}

// TestCodec_RoundTrip はDecode(Encode(p))がpと等価なペイロードを返すことを検証します。
// exp未指定の場合はデフォルト有効期間が付与されます。
func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	c := NewCodec("test-secret", 30*time.Minute)
	userID := uuid.New()

	t.Run("expiry populated when absent", func(t *testing.T) {
		t.Parallel()

		before := time.Now().Truncate(time.Second)
		token, err := c.Encode(Payload{UserID: userID, Email: "user@example.com"})
		after := time.Now().Truncate(time.Second).Add(time.Second)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := c.Decode(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.UserID != userID {
			t.Errorf("expected user id %s, got %s", userID, got.UserID)
		}
		if got.Email != "user@example.com" {
			t.Errorf("expected email %q, got %q", "user@example.com", got.Email)
		}

		minExp := before.Add(30 * time.Minute).Unix()
		maxExp := after.Add(30 * time.Minute).Unix()
		if got.ExpiresAt.Unix() < minExp || got.ExpiresAt.Unix() > maxExp {
			t.Errorf("exp %d not in expected range [%d, %d]", got.ExpiresAt.Unix(), minExp, maxExp)
		}
	})

	t.Run("explicit expiry preserved", func(t *testing.T) {
		t.Parallel()

		exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
		token, err := c.Encode(Payload{UserID: userID, Email: "user@example.com", ExpiresAt: exp})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := c.Decode(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ExpiresAt.Unix() != exp.Unix() {
			t.Errorf("expected exp %d, got %d", exp.Unix(), got.ExpiresAt.Unix())
		}
	})
}

// TestCodec_Decode_Failures はあらゆる失敗が単一の不透明なErrInvalidTokenに
// 集約されることを検証します。
func TestCodec_Decode_Failures(t *testing.T) {
	t.Parallel()

	c := NewCodec("test-secret", 30*time.Minute)
	other := NewCodec("other-secret", 30*time.Minute)

	expired, err := c.Encode(Payload{
		UserID:    uuid.New(),
		Email:     "user@example.com",
		ExpiresAt: time.Now().Add(-time.Hour),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wrongKey, err := other.Encode(Payload{UserID: uuid.New(), Email: "user@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"malformed token", "not.a.valid.token"},
		{"random string", "randomstring"},
		{"empty token", ""},
		{"wrong secret", wrongKey},
		{"expired token", expired},
		{"malformed subject id", signToken(t, "test-secret", jwt.MapClaims{
			"id":    "not-a-uuid",
			"email": "user@example.com",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})},
		{"missing email", signToken(t, "test-secret", jwt.MapClaims{
			"id":  uuid.NewString(),
			"exp": time.Now().Add(time.Hour).Unix(),
		})},
		{"missing expiry", signToken(t, "test-secret", jwt.MapClaims{
			"id":    uuid.NewString(),
			"email": "user@example.com",
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := c.Decode(tt.token)
			if err == nil {
				t.Fatal("expected error but got nil")
			}
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got: %v", err)
			}
		})
	}
}

// TestCodec_Decode_AlgorithmPinned はヘッダーのアルゴリズム宣言を信用せず、
// HS256以外（none含む）のトークンが拒否されることを検証します。
func TestCodec_Decode_AlgorithmPinned(t *testing.T) {
	t.Parallel()

	c := NewCodec("test-secret", 30*time.Minute)

	claims := jwt.MapClaims{
		"id":    uuid.NewString(),
		"email": "user@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}

	t.Run("none algorithm", func(t *testing.T) {
		t.Parallel()

		token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
		tokenStr, _ := token.SignedString(jwt.UnsafeAllowNoneSignatureType)

		_, err := c.Decode(tokenStr)
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got: %v", err)
		}
	})

	t.Run("HS512 rejected", func(t *testing.T) {
		t.Parallel()

		token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
		tokenStr, _ := token.SignedString([]byte("test-secret"))

		_, err := c.Decode(tokenStr)
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got: %v", err)
		}
	})
}

// TestCodec_Issue はIssueがデフォルト有効期間付きのトークンを発行することを検証します。
func TestCodec_Issue(t *testing.T) {
	t.Parallel()

	c := NewCodec("test-secret", time.Hour)
	userID := uuid.New()

	token, err := c.Issue(userID, "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := c.Decode(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.UserID != userID {
		t.Errorf("expected user id %s, got %s", userID, got.UserID)
	}
	if got.ExpiresAt.IsZero() {
		t.Error("expected expiry to be populated")
	}
}

// signToken はテスト用に任意のクレームでHS256署名済みトークンを生成します。
func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}
