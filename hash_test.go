package sealgate

import (
	"regexp"
	"testing"
)

var hexHash = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestHashPhone_NormalizesToDigits(t *testing.T) {
	t.Parallel()
	base := HashPhone("41791234567")
	if !hexHash.MatchString(base) {
		t.Fatalf("hash %q is not 64 lowercase hex characters", base)
	}

	variants := []string{
		"+41 79 123 45 67",
		"+41-79-123-45-67",
		"0041791234567", // not equal: extra digits
	}
	if got := HashPhone(variants[0]); got != base {
		t.Errorf("spaced number hashed to %s, want %s", got, base)
	}
	if got := HashPhone(variants[1]); got != base {
		t.Errorf("dashed number hashed to %s, want %s", got, base)
	}
	if got := HashPhone(variants[2]); got == base {
		t.Error("number with extra digits hashed identically")
	}
}

func TestHashEmail_NormalizesCaseAndSpace(t *testing.T) {
	t.Parallel()
	base := HashEmail("test@example.com")
	if !hexHash.MatchString(base) {
		t.Fatalf("hash %q is not 64 lowercase hex characters", base)
	}

	if got := HashEmail("Test@Example.COM"); got != base {
		t.Errorf("mixed-case address hashed to %s, want %s", got, base)
	}
	if got := HashEmail("  test@example.com\n"); got != base {
		t.Errorf("padded address hashed to %s, want %s", got, base)
	}
	if got := HashEmail("other@example.com"); got == base {
		t.Error("different addresses hashed identically")
	}
}

func TestHash_Deterministic(t *testing.T) {
	t.Parallel()
	if HashPhone("41791234567") != HashPhone("41791234567") {
		t.Error("HashPhone is not deterministic")
	}
	if HashEmail("test@example.com") != HashEmail("test@example.com") {
		t.Error("HashEmail is not deterministic")
	}
}

func TestHash_PhoneAndEmailKeysDiffer(t *testing.T) {
	t.Parallel()
	// Same input through the two keyed hashes must not collide.
	if HashPhone("41791234567") == HashEmail("41791234567") {
		t.Error("phone and email hashes use the same key")
	}
}
