package security

import "testing"

func TestDoubleHash_Deterministic(t *testing.T) {
	a := DoubleHash("hashpwd")
	b := DoubleHash("hashpwd")
	if a != b {
		t.Errorf("DoubleHash not deterministic: %q != %q", a, b)
	}
	if len(a) != 64 {
		t.Errorf("digest length = %d, want 64 hex chars", len(a))
	}
}

func TestDoubleHash_DiffersFromInput(t *testing.T) {
	if DoubleHash("hashpwd") == "hashpwd" {
		t.Error("stored material must not equal wire material")
	}
}

func TestHashEqual(t *testing.T) {
	stored := DoubleHash("hashpwd")
	if !HashEqual("hashpwd", stored) {
		t.Error("HashEqual = false for matching hash")
	}
	if HashEqual("wrongpwd", stored) {
		t.Error("HashEqual = true for mismatched hash")
	}
	if HashEqual("hashpwd", "") {
		t.Error("HashEqual = true for empty stored hash")
	}
}

func TestHashEqual_TakesWireHashNotTransform(t *testing.T) {
	// HashEqual applies the storage transform itself; callers must pass the
	// wire hash as-is. Pre-transforming the input compares a triple hash
	// against a double hash and can never match.
	stored := DoubleHash("hashpwd")
	if HashEqual(DoubleHash("hashpwd"), stored) {
		t.Error("HashEqual = true for pre-transformed input")
	}
}
