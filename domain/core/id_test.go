package core

import (
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 1000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}
}

// TestParseRunID tests run ID parsing
func TestParseRunID(t *testing.T) {
	tests := []struct {
		input    string
		hasError bool
	}{
		{"valid-id", false},
		{"", true},
		{"   ", true},
	}
	for _, tt := range tests {
		_, err := ParseRunID(tt.input)
		if tt.hasError && err == nil {
			t.Errorf("ParseRunID(%q): expected error", tt.input)
		}
		if !tt.hasError && err != nil {
			t.Errorf("ParseRunID(%q): unexpected error %v", tt.input, err)
		}
	}
}

// TestHashDeterministic tests that equal inputs hash identically
func TestHashDeterministic(t *testing.T) {
	a := NewHash([]byte("survey data"))
	b := NewHash([]byte("survey data"))
	c := NewHash([]byte("other data"))

	if !a.Equals(b) {
		t.Error("equal inputs must produce equal hashes")
	}
	if a.Equals(c) {
		t.Error("different inputs must produce different hashes")
	}
	if a.IsEmpty() {
		t.Error("hash of non-empty input must not be empty")
	}
}
