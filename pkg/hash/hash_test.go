package hash

import (
	"strings"
	"testing"
)

func TestSHA256Hex(t *testing.T) {
	// Known SHA256 of "hello"
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	got := SHA256Hex("hello")
	if got != want {
		t.Errorf("SHA256Hex(\"hello\") = %s, want %s", got, want)
	}
}

func TestSHA256Hex_Empty(t *testing.T) {
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	got := SHA256Hex("")
	if got != want {
		t.Errorf("SHA256Hex(\"\") = %s, want %s", got, want)
	}
}

func TestPrefix(t *testing.T) {
	full := SHA256Hex("203.0.113.7")

	tests := []struct {
		name string
		n    int
		want string
	}{
		{"12 chars", 12, full[:12]},
		{"24 chars", 24, full[:24]},
		{"full hash if too long", 100, full},
		{"full hash if zero", 0, full},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Prefix("203.0.113.7", tt.n)
			if got != tt.want {
				t.Errorf("Prefix(%d) = %s, want %s", tt.n, got, tt.want)
			}
		})
	}
}

func TestCacheKey(t *testing.T) {
	a := CacheKey("categories", "US")
	b := CacheKey("categories", "US")
	c := CacheKey("categories", "GB")

	if a != b {
		t.Errorf("CacheKey not deterministic: %s != %s", a, b)
	}
	if a == c {
		t.Error("different regions should produce different keys")
	}
	if !strings.HasPrefix(a, "categories:") {
		t.Errorf("key %s missing namespace", a)
	}
	if len(a) != len("categories:")+24 {
		t.Errorf("key length = %d, want %d", len(a), len("categories:")+24)
	}
}
