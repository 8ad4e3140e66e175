package digest

import (
	"encoding/hex"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a short hex fingerprint of b.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:10])
}

// ETag returns a strong entity tag for b.
func ETag(b []byte) string {
	return strconv.Quote(strconv.FormatUint(xxhash.Sum64(b), 16))
}
