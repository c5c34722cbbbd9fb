package arrident

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// DeriveKey returns the instance key scoping persisted preferences to one
// logical target environment, derived from the target's base URL and a
// human-meaningful identifier (conventionally the container name). The key is
// deterministic across processes and runs and encodes no secrets.
//
// salt lets independent test matrices that happen to reuse the same container
// name avoid colliding in the shared state file; it may be empty. The salt is
// case-folded before hashing so two salts differing only by letter case
// produce the same key.
//
// Panics if targetURL or targetIdentifier is empty; that is a defect in the
// caller, not a runtime condition.
func DeriveKey(targetURL, targetIdentifier, salt string) string {
	requireNonEmpty("target URL", targetURL)
	requireNonEmpty("target identifier", targetIdentifier)

	h := sha256.New()
	h.Write([]byte(targetURL)) // hash.Hash.Write never returns an error
	h.Write([]byte{0})         // separator so field boundaries cannot collide
	h.Write([]byte(targetIdentifier))
	h.Write([]byte{0})
	h.Write([]byte(strings.ToLower(salt)))

	return hex.EncodeToString(h.Sum(nil))[:16]
}
