package id

import "testing"

func TestUUIDGenerator_NewIDIsUnique(t *testing.T) {
	gen := NewUUIDGenerator()
	first := gen.NewID()
	second := gen.NewID()

	if first == second {
		t.Fatalf("expected distinct ids, got %q twice", first)
	}
	if _, ok := Normalize(first); !ok {
		t.Fatalf("generated id %q is not a uuid", first)
	}
}

func TestNormalize(t *testing.T) {
	got, ok := Normalize("  0F8FAD5B-D9CB-469F-A165-70867728950E ")
	if !ok {
		t.Fatalf("expected uuid to be accepted")
	}
	if got != "0f8fad5b-d9cb-469f-a165-70867728950e" {
		t.Fatalf("unexpected canonical id %q", got)
	}

	for _, raw := range []string{"", "abc", "<script>"} {
		if _, ok := Normalize(raw); ok {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}
