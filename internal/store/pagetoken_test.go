package store_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/goodmem/goodmem/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageTokenRoundTrip(t *testing.T) {
	owner := uuid.New()
	tok := store.PageToken{
		Offset:         6,
		PageSize:       3,
		OwnerFilter:    &owner,
		LabelSelectors: map[string]string{"env": "prod", "team": "ml"},
		NameFilter:     "S*",
		RequestorID:    uuid.New(),
		SortBy:         "name",
		SortOrder:      "asc",
	}

	s, err := store.EncodePageToken(tok)
	require.NoError(t, err)
	assert.NotContains(t, s, "=", "token must be unpadded")
	assert.NotContains(t, s, "+")
	assert.NotContains(t, s, "/")

	got, err := store.DecodePageToken(s)
	require.NoError(t, err)
	assert.Equal(t, tok, *got)
}

func TestPageToken_MinimalFields(t *testing.T) {
	tok := store.PageToken{Offset: 0, RequestorID: uuid.New()}
	s, err := store.EncodePageToken(tok)
	require.NoError(t, err)

	got, err := store.DecodePageToken(s)
	require.NoError(t, err)
	assert.Equal(t, tok, *got)
	assert.Nil(t, got.OwnerFilter)
}

func TestDecodePageToken_RejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "!!!not-base64!!!", "YQ"} {
		_, err := store.DecodePageToken(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestDecodePageToken_RejectsUnknownVersion(t *testing.T) {
	raw := append([]byte{0x7f}, []byte(`{"offset":1}`)...)
	s := base64.RawURLEncoding.EncodeToString(raw)
	_, err := store.DecodePageToken(s)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "version"))
}

func TestDecodePageToken_RejectsNegativeOffset(t *testing.T) {
	s, err := store.EncodePageToken(store.PageToken{Offset: 3})
	require.NoError(t, err)
	// Forge a negative offset with the valid version byte.
	forged := base64.RawURLEncoding.EncodeToString(append([]byte{0x01}, []byte(`{"offset":-1}`)...))
	_, err = store.DecodePageToken(forged)
	assert.Error(t, err)

	_, err = store.DecodePageToken(s)
	assert.NoError(t, err)
}

func TestNormalizePageSize(t *testing.T) {
	assert.Equal(t, 50, store.NormalizePageSize(0))
	assert.Equal(t, 50, store.NormalizePageSize(-10))
	assert.Equal(t, 1, store.NormalizePageSize(1))
	assert.Equal(t, 200, store.NormalizePageSize(200))
	assert.Equal(t, 200, store.NormalizePageSize(5000))
}
