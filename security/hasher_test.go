package security

import "testing"

func TestDigestDeterministic(t *testing.T) {
	h := NewHasher("secret")

	a := h.Digest("hunter22")
	b := h.Digest("hunter22")
	if a != b {
		t.Fatalf("equal inputs must yield equal digests: %q != %q", a, b)
	}

	if len(a) != 64 {
		t.Fatalf("digest length = %d, want 64 hex characters", len(a))
	}

	if a == "hunter22" {
		t.Fatalf("digest must differ from the plaintext")
	}
}

func TestDigestVariesByInputAndSecret(t *testing.T) {
	h := NewHasher("secret")

	if h.Digest("one") == h.Digest("two") {
		t.Fatalf("different inputs must not collide")
	}

	other := NewHasher("other-secret")
	if h.Digest("one") == other.Digest("one") {
		t.Fatalf("different secrets must yield different digests")
	}
}
