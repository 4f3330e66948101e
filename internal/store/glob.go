package store

import "strings"

// GlobToLike converts a user-facing glob pattern to a SQL LIKE pattern.
// `*` matches any sequence, `?` a single character. Literal `%` and `_`
// are backslash-escaped and a literal backslash is doubled so user input
// cannot widen the match. An empty pattern matches everything.
func GlobToLike(glob string) string {
	if glob == "" {
		return "%"
	}
	var b strings.Builder
	b.Grow(len(glob) + 4)
	for _, r := range glob {
		switch r {
		case '*':
			b.WriteByte('%')
		case '?':
			b.WriteByte('_')
		case '%':
			b.WriteString(`\%`)
		case '_':
			b.WriteString(`\_`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Space list sort fields. Anything outside the allow-list silently falls
// back to created_at so user input can never reach the ORDER BY clause
// verbatim.
const (
	SortByName      = "name"
	SortByCreatedAt = "created_at"
	SortByUpdatedAt = "updated_at"
)

var sortAliases = map[string]string{
	"created_time": SortByCreatedAt,
	"updated_time": SortByUpdatedAt,
}

// NormalizeSortBy maps a requested sort field to a safe column name.
func NormalizeSortBy(requested string) string {
	switch requested {
	case SortByName, SortByCreatedAt, SortByUpdatedAt:
		return requested
	}
	if col, ok := sortAliases[requested]; ok {
		return col
	}
	return SortByCreatedAt
}
