package ident_test

import (
	"testing"
	"time"

	"github.com/goodmem/goodmem/internal/ident"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestBinaryTextualRoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := uuid.New()
		text, err := ident.TextualFromBinary(ident.ToBytes(id))
		require.NoError(t, err)
		require.Len(t, text, 36)

		back, err := ident.BinaryFromTextual(text)
		require.NoError(t, err)
		assert.Equal(t, ident.ToBytes(id), back)
	}
}

func TestFromBytes_RejectsWrongLength(t *testing.T) {
	_, err := ident.FromBytes([]byte{1, 2, 3})
	require.Error(t, err)

	_, err = ident.FromBytes(make([]byte, 17))
	require.Error(t, err)

	_, err = ident.FromBytes(nil)
	require.Error(t, err)
}

func TestBinaryFromTextual_RejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"not-a-uuid",
		"0000000-0000-0000-0000-0000000000000",             // wrong grouping
		"{6ba7b810-9dad-11d1-80b4-00c04fd430c8}",           // braced form
		"urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8",    // urn form
		"6ba7b810-9dad-11d1-80b4-00c04fd430c8-dead",        // trailing junk
		"6ba7b8109dad11d180b400c04fd430c8",                 // no dashes
		"zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz",             // bad hex
	}
	for _, tc := range cases {
		_, err := ident.BinaryFromTextual(tc)
		assert.Error(t, err, "input %q", tc)
	}
}

func TestTimeWireRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	ts := ident.WireFromTime(now)
	require.NotNil(t, ts)

	back, err := ident.TimeFromWire(ts)
	require.NoError(t, err)
	assert.True(t, now.Equal(back), "want %v got %v", now, back)
}

func TestWireFromTime_ZeroMapsToNil(t *testing.T) {
	assert.Nil(t, ident.WireFromTime(time.Time{}))
	assert.Nil(t, ident.WireFromTimePtr(nil))
}

func TestTimeFromWire_NilMapsToZero(t *testing.T) {
	got, err := ident.TimeFromWire(nil)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestTimeFromWire_RejectsNegativeFields(t *testing.T) {
	_, err := ident.TimeFromWire(&timestamppb.Timestamp{Seconds: -1})
	require.Error(t, err)

	_, err = ident.TimeFromWire(&timestamppb.Timestamp{Seconds: 1, Nanos: -1})
	require.Error(t, err)
}
