package password

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// TestNewHasher_CostClamping は範囲外のコストがデフォルトに矯正されることを検証します。
func TestNewHasher_CostClamping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cost     int
		expected int
	}{
		{"valid cost", 10, 10},
		{"minimum cost", bcrypt.MinCost, bcrypt.MinCost},
		{"too low", 0, bcrypt.DefaultCost},
		{"negative", -1, bcrypt.DefaultCost},
		{"too high", bcrypt.MaxCost + 1, bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHasher(tt.cost)
			if h.cost != tt.expected {
				t.Errorf("expected cost %d, got %d", tt.expected, h.cost)
			}
		})
	}
}

// TestHasher_HashAndVerify はハッシュと検証のラウンドトリップを検証します。
func TestHasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("pw123456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if digest == "pw123456" {
		t.Fatal("digest must not equal the plaintext")
	}
	if !strings.HasPrefix(digest, "$2") {
		t.Errorf("expected a bcrypt digest, got %q", digest)
	}

	if !h.Verify("pw123456", digest) {
		t.Error("expected matching password to verify")
	}
	if h.Verify("wrong-password", digest) {
		t.Error("expected non-matching password to fail")
	}
}

// TestHasher_HashProducesUniqueDigests は同じ平文でもソルトにより毎回異なる
// ダイジェストになることを検証します。
func TestHasher_HashProducesUniqueDigests(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	d1, err := h.Hash("pw123456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d2, err := h.Hash("pw123456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d1 == d2 {
		t.Error("expected different digests for the same password")
	}
	if !h.Verify("pw123456", d1) || !h.Verify("pw123456", d2) {
		t.Error("expected both digests to verify")
	}
}

// TestHasher_VerifyMalformedDigest は壊れたダイジェストに対して検証が
// 失敗側に倒れる（falseを返し、パニックしない）ことを検証します。
func TestHasher_VerifyMalformedDigest(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	tests := []struct {
		name   string
		digest string
	}{
		{"empty digest", ""},
		{"garbage", "not-a-bcrypt-digest"},
		{"truncated", "$2a$10$short"},
		{"wrong algorithm prefix", "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if h.Verify("pw123456", tt.digest) {
				t.Error("expected verification of malformed digest to fail")
			}
		})
	}
}

// TestHasher_DummyDigest はダミーダイジェストが整形式でありながら
// どのパスワードにも一致しないことを検証します。
func TestHasher_DummyDigest(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)
	dummy := h.DummyDigest()

	if _, err := bcrypt.Cost([]byte(dummy)); err != nil {
		t.Fatalf("expected dummy digest to be a well-formed bcrypt digest: %v", err)
	}
	if h.Verify("pw123456", dummy) {
		t.Error("expected dummy digest to match no password")
	}
}

// TestHasher_DummyDigestCostMatchesHasher はダミーダイジェストが実際のハッシュと
// 同じコストで生成されることを検証します。コストがずれると未登録メールの検証時間が
// 登録済みメールと異なってしまいます。
func TestHasher_DummyDigestCostMatchesHasher(t *testing.T) {
	t.Parallel()

	for _, cost := range []int{bcrypt.MinCost, bcrypt.MinCost + 1} {
		h := NewHasher(cost)

		dummyCost, err := bcrypt.Cost([]byte(h.DummyDigest()))
		if err != nil {
			t.Fatalf("cost %d: malformed dummy digest: %v", cost, err)
		}
		if dummyCost != cost {
			t.Errorf("expected dummy digest at cost %d, got %d", cost, dummyCost)
		}

		real, err := h.Hash("pw123456")
		if err != nil {
			t.Fatalf("cost %d: unexpected error: %v", cost, err)
		}
		realCost, err := bcrypt.Cost([]byte(real))
		if err != nil {
			t.Fatalf("cost %d: malformed digest: %v", cost, err)
		}
		if dummyCost != realCost {
			t.Errorf("dummy digest cost %d differs from real digest cost %d", dummyCost, realCost)
		}
	}
}
