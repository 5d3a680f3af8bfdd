package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInviteCode_Length(t *testing.T) {
	for _, length := range []int{1, 6, 10, 32} {
		code, err := GenerateInviteCode(length)
		require.NoError(t, err)
		assert.Len(t, code, length)
	}
}

func TestGenerateInviteCode_AlphabetOnly(t *testing.T) {
	code, err := GenerateInviteCode(200)
	require.NoError(t, err)
	for _, r := range code {
		assert.True(t, strings.ContainsRune(inviteCodeAlphabet, r), "unexpected character %q", r)
	}
	// Ambiguous characters must never appear.
	for _, banned := range "0O1lIi" {
		assert.NotContains(t, code, string(banned))
	}
}

func TestGenerateInviteCode_InvalidLength(t *testing.T) {
	_, err := GenerateInviteCode(0)
	assert.Error(t, err)
	_, err = GenerateInviteCode(-3)
	assert.Error(t, err)
}
