// Package identity derives the opaque import token used for duplicate
// detection. The token is a one-way digest of the canonical key and an
// occurrence index; uniqueness of the persisted set is enforced by the
// store's unique-token constraint, not by this package.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// TokenLength is the length in characters of every generated token.
const TokenLength = sha256.Size * 2

// Token returns the import token for a canonical key and occurrence index.
// Equal inputs always yield equal tokens; changing any key component or the
// occurrence changes the token.
func Token(key string, occurrence int) string {
	sum := sha256.Sum256([]byte(key + "_" + strconv.Itoa(occurrence)))
	return hex.EncodeToString(sum[:])
}
