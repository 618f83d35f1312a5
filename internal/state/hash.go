package state

import (
	"fmt"
	"regexp"

	"github.com/ethereum/go-ethereum/common"
)

var hashPattern = regexp.MustCompile(`^0[xX][0-9a-fA-F]{1,64}$`)

// NormalizeHash returns the canonical 0x + 64 lower case hex form of a hash.
func NormalizeHash(hash string) (string, error) {
	if !hashPattern.MatchString(hash) {
		return "", fmt.Errorf("%w: %q", ErrInvalidHash, hash)
	}
	return common.HexToHash(hash).Hex(), nil
}

// MustNormalizeHash is NormalizeHash for values already known to be valid.
// Invalid input is returned unchanged.
func MustNormalizeHash(hash string) string {
	normalized, err := NormalizeHash(hash)
	if err != nil {
		return hash
	}
	return normalized
}
