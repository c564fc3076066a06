package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SHA256Hex returns the hex-encoded SHA256 hash of the input string.
func SHA256Hex(input string) string {
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:])
}

// Prefix returns the first n hex characters of SHA256(input).
// Used where a short, irreversible identifier is enough (client IPs in logs).
func Prefix(input string, n int) string {
	full := SHA256Hex(input)
	if n > len(full) || n <= 0 {
		return full
	}
	return full[:n]
}

// CacheKey builds a deterministic cache key under namespace from parts.
func CacheKey(namespace string, parts ...string) string {
	return namespace + ":" + Prefix(strings.Join(parts, "|"), 24)
}
