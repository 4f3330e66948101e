package apikey_test

import (
	"strings"
	"testing"

	"github.com/goodmem/goodmem/internal/apikey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Shape(t *testing.T) {
	m, err := apikey.New()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(m.Raw, "gm_"))
	// 16 bytes of base32 with no padding is 26 characters.
	assert.Len(t, m.Raw, len("gm_")+26)
	assert.Equal(t, strings.ToLower(m.Raw), m.Raw)
	assert.Equal(t, m.Raw[:8], m.Prefix)
	assert.Len(t, m.Hash, apikey.HashSize)
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	hashes := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		m, err := apikey.New()
		require.NoError(t, err)
		require.False(t, seen[m.Raw], "duplicate raw key")
		require.False(t, hashes[string(m.Hash)], "duplicate hash")
		seen[m.Raw] = true
		hashes[string(m.Hash)] = true
	}
}

func TestHashRaw_Deterministic(t *testing.T) {
	m, err := apikey.New()
	require.NoError(t, err)
	assert.Equal(t, m.Hash, apikey.HashRaw(m.Raw))
}

func TestVerify(t *testing.T) {
	m, err := apikey.New()
	require.NoError(t, err)

	h, err := apikey.Verify(m.Raw)
	require.NoError(t, err)
	assert.Equal(t, m.Hash, h)
}

func TestVerify_RejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "gm_", "sk_abcdef", "GM_abcdef", "abcdef"} {
		_, err := apikey.Verify(raw)
		assert.Error(t, err, "input %q", raw)
	}
}

func TestValidFormat(t *testing.T) {
	assert.True(t, apikey.ValidFormat("gm_x"))
	assert.False(t, apikey.ValidFormat("gm_"))
	assert.False(t, apikey.ValidFormat("token"))
}
