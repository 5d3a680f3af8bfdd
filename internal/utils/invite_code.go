package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// inviteCodeAlphabet avoids visually ambiguous characters (0/O, 1/l/I) so
// codes survive being read aloud or retyped. Codes are workspace-scoped
// secrets, not identifiers; uniqueness across workspaces is not enforced.
const inviteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789"

// GenerateInviteCode produces a fixed-length invite code drawn from the
// unambiguous alphabet above, using crypto/rand.
func GenerateInviteCode(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invite code length must be positive")
	}
	max := big.NewInt(int64(len(inviteCodeAlphabet)))
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random index: %w", err)
		}
		code[i] = inviteCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}
