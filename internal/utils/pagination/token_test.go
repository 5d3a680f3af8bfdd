package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken_RoundTrip(t *testing.T) {
	createdAt := time.Date(2025, 3, 14, 9, 26, 53, 589793238, time.UTC)
	id := "a1b2c3d4"

	token := EncodeToken(createdAt, id)
	gotTime, gotID, err := DecodeToken(token)

	require.NoError(t, err)
	assert.True(t, createdAt.Equal(gotTime))
	assert.Equal(t, id, gotID)
}

func TestDecodeToken_NotBase64(t *testing.T) {
	_, _, err := DecodeToken("!!not-base64!!")
	assert.Error(t, err)
}

func TestDecodeToken_MissingSeparator(t *testing.T) {
	_, _, err := DecodeToken("bm8tc2VwYXJhdG9yLWhlcmU=") // "no-separator-here"
	assert.Error(t, err)
}

func TestDecodeToken_BadTimestamp(t *testing.T) {
	_, _, err := DecodeToken("bm90LWEtdGltZXxpZDE=") // "not-a-time|id1"
	assert.Error(t, err)
}
