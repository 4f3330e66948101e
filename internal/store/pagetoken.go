package store

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

const (
	// DefaultPageSize applies when a list request leaves max_results unset
	// or non-positive.
	DefaultPageSize = 50
	// MaxPageSize caps max_results.
	MaxPageSize = 200

	pageTokenVersion byte = 0x01
)

// NormalizePageSize clamps a requested page size into [1, MaxPageSize],
// substituting the default for unset or non-positive values.
func NormalizePageSize(requested int) int {
	if requested <= 0 {
		return DefaultPageSize
	}
	if requested > MaxPageSize {
		return MaxPageSize
	}
	return requested
}

// PageToken is the decoded form of an opaque list continuation token. It
// pins the query shape: a request carrying a token re-runs the embedded
// filters and page size and ignores whatever parameters accompany it.
// NameFilter holds the caller's original glob, not the translated LIKE
// pattern.
type PageToken struct {
	Offset         int               `json:"offset"`
	PageSize       int               `json:"size,omitempty"`
	OwnerFilter    *uuid.UUID        `json:"owner,omitempty"`
	LabelSelectors map[string]string `json:"labels,omitempty"`
	NameFilter     string            `json:"name,omitempty"`
	RequestorID    uuid.UUID         `json:"requestor"`
	SortBy         string            `json:"sortBy,omitempty"`
	SortOrder      string            `json:"sortOrder,omitempty"`
}

// EncodePageToken serializes a token: one version byte, the JSON body,
// URL-safe base64 without padding.
func EncodePageToken(t PageToken) (string, error) {
	body, err := json.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("encoding page token: %w", err)
	}
	raw := make([]byte, 0, len(body)+1)
	raw = append(raw, pageTokenVersion)
	raw = append(raw, body...)
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// DecodePageToken reverses EncodePageToken. Unknown versions and any
// malformed input are rejected.
func DecodePageToken(s string) (*PageToken, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("malformed page token")
	}
	if len(raw) < 2 {
		return nil, fmt.Errorf("malformed page token")
	}
	if raw[0] != pageTokenVersion {
		return nil, fmt.Errorf("unsupported page token version %d", raw[0])
	}
	var t PageToken
	if err := json.Unmarshal(raw[1:], &t); err != nil {
		return nil, fmt.Errorf("malformed page token")
	}
	if t.Offset < 0 {
		return nil, fmt.Errorf("malformed page token")
	}
	return &t, nil
}
