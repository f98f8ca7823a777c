package id

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewIDFormat(t *testing.T) {
	value, err := NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if value == "" {
		t.Fatal("expected non-empty id")
	}
	parsed, err := uuid.Parse(value)
	if err != nil {
		t.Fatalf("parse id: %v", err)
	}
	if parsed.Version() != 7 {
		t.Fatalf("expected version 7, got %d", parsed.Version())
	}
	if parsed.Variant() != uuid.RFC4122 {
		t.Fatalf("expected RFC 4122 variant, got %v", parsed.Variant())
	}
}

func TestNewIDUniqueAndOrdered(t *testing.T) {
	seen := make(map[string]struct{}, 100)
	previous := ""
	for i := 0; i < 100; i++ {
		value, err := NewID()
		if err != nil {
			t.Fatalf("new id: %v", err)
		}
		if _, ok := seen[value]; ok {
			t.Fatalf("duplicate id %q", value)
		}
		seen[value] = struct{}{}
		if previous != "" && value <= previous {
			t.Fatalf("id %q does not sort after %q", value, previous)
		}
		previous = value
	}
}
