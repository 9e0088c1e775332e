package utils

import (
	"strings"
	"testing"
)

func TestGenerateID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateID()
		if len(id) != 7 {
			t.Fatalf("len(%q) = %d, want 7", id, len(id))
		}
		for _, r := range id {
			if !strings.ContainsRune(idAlphabet, r) {
				t.Fatalf("id %q contains %q outside the alphabet", id, r)
			}
		}
		if seen[id] {
			t.Fatalf("duplicate id %q after %d draws", id, i)
		}
		seen[id] = true
	}
}

func TestGenerateRandomString(t *testing.T) {
	for _, length := range []int{7, 16, 32} {
		got := GenerateRandomString(length)
		if len(got) != length {
			t.Errorf("len(GenerateRandomString(%d)) = %d", length, len(got))
		}
	}

	if GenerateRandomString(16) == GenerateRandomString(16) {
		t.Error("two random strings collided")
	}
}
