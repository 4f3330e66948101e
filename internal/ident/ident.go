// Package ident converts identifiers and timestamps between their wire
// forms and the Go types the rest of the server works with. Identifiers
// travel as 16 raw bytes on the gRPC surface and as the canonical
// 36-character UUID text at the REST edge; timestamps travel as
// protobuf {seconds, nanos} pairs.
package ident

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// FromBytes converts a 16-byte wire identifier to a uuid.UUID.
func FromBytes(b []byte) (uuid.UUID, error) {
	if len(b) != 16 {
		return uuid.Nil, fmt.Errorf("identifier must be 16 bytes, got %d", len(b))
	}
	return uuid.FromBytes(b)
}

// ToBytes converts a uuid.UUID to its 16-byte wire form.
func ToBytes(id uuid.UUID) []byte {
	b := make([]byte, 16)
	copy(b, id[:])
	return b
}

// TextualFromBinary renders a 16-byte identifier as the canonical
// 36-character string.
func TextualFromBinary(b []byte) (string, error) {
	id, err := FromBytes(b)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// BinaryFromTextual parses the canonical 36-character form back to 16
// bytes. Other UUID spellings (braced, urn-prefixed) are rejected.
func BinaryFromTextual(s string) ([]byte, error) {
	if len(s) != 36 {
		return nil, fmt.Errorf("identifier must be 36 characters, got %d", len(s))
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("malformed identifier %q: %w", s, err)
	}
	return ToBytes(id), nil
}

// WireFromTime converts an instant to its wire timestamp. The zero time
// maps to nil so absent timestamps stay absent on the wire.
func WireFromTime(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

// WireFromTimePtr is WireFromTime for nullable columns.
func WireFromTimePtr(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return WireFromTime(*t)
}

// TimeFromWire converts a wire timestamp back to an instant. Negative
// seconds or nanos are rejected; a nil timestamp maps to the zero time.
func TimeFromWire(ts *timestamppb.Timestamp) (time.Time, error) {
	if ts == nil {
		return time.Time{}, nil
	}
	if ts.GetSeconds() < 0 || ts.GetNanos() < 0 {
		return time.Time{}, fmt.Errorf("timestamp fields must be non-negative: seconds=%d nanos=%d", ts.GetSeconds(), ts.GetNanos())
	}
	if err := ts.CheckValid(); err != nil {
		return time.Time{}, err
	}
	return ts.AsTime(), nil
}
