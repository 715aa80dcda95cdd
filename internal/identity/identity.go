// Package identity derives the stable tokens that namespace every derived
// asset. A token is a function of the source path string alone, never of the
// file contents, so a source file keeps its identity across rebuilds and
// machines as long as it keeps its path.
package identity

import (
	"crypto/sha1"
	"encoding/hex"
	"path/filepath"
)

// TokenLength is the number of hex characters kept from the path digest.
const TokenLength = 12

// Token returns the derived-asset namespace token for path. The path is
// made absolute first so relative invocations agree with absolute ones;
// if that fails the cleaned input is hashed as-is.
func Token(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	sum := sha1.Sum([]byte(abs))
	return hex.EncodeToString(sum[:])[:TokenLength]
}
