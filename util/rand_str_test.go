package util

import (
	"strings"
	"testing"
)

func TestNewID(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		id, err := NewID()
		if err != nil {
			t.Fatalf("NewID: %v", err)
		}
		if len(id) != IDLength {
			t.Fatalf("id %q has length %d, want %d", id, len(id), IDLength)
		}
		for _, r := range id {
			if !strings.ContainsRune(idCharset, r) {
				t.Fatalf("id %q contains %q outside the charset", id, r)
			}
		}
		if seen[id] {
			t.Fatalf("id %q repeated within 100 draws", id)
		}
		seen[id] = true
	}
}

func TestRandStrLength(t *testing.T) {
	if got := RandStr(10); len(got) != 10 {
		t.Fatalf("RandStr(10) = %q, want length 10", got)
	}
}
