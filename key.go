package isptranslator

import (
	"crypto/md5" // #nosec G401 - cache key derivation, not security
	"encoding/hex"
	"strings"
)

// NormalizeText trims surrounding whitespace so that inputs differing only
// in padding share a cache entry.
func NormalizeText(text string) string {
	return strings.TrimSpace(text)
}

// DeriveKey computes the cache key for a (text, locale) pair: the MD5 digest
// of the normalized text concatenated with the locale, as 32 lowercase hex
// characters. Identical pairs always produce identical keys; a digest
// collision silently returns the wrong cached value, an accepted risk of the
// 128-bit width.
func DeriveKey(text, locale string) string {
	sum := md5.Sum([]byte(NormalizeText(text) + locale)) // #nosec G401
	return hex.EncodeToString(sum[:])
}
