package store

// LabelUpdate is the three-way label mutation: replace the map wholesale,
// merge with the caller's values winning, or leave the labels untouched.
// The zero value means untouched.
type LabelUpdate struct {
	mode   labelMode
	labels map[string]string
}

type labelMode int

const (
	labelKeep labelMode = iota
	labelReplace
	labelMerge
)

// KeepLabels leaves existing labels alone.
func KeepLabels() LabelUpdate {
	return LabelUpdate{}
}

// ReplaceLabels sets the labels to exactly m.
func ReplaceLabels(m map[string]string) LabelUpdate {
	return LabelUpdate{mode: labelReplace, labels: m}
}

// MergeLabels unions m into the existing labels; values in m win.
func MergeLabels(m map[string]string) LabelUpdate {
	return LabelUpdate{mode: labelMerge, labels: m}
}

// IsZero reports whether the update leaves labels untouched.
func (u LabelUpdate) IsZero() bool {
	return u.mode == labelKeep
}

// Apply computes the resulting label map. The input map is never mutated;
// the result is always a fresh map (possibly empty, never nil).
func (u LabelUpdate) Apply(current map[string]string) map[string]string {
	switch u.mode {
	case labelReplace:
		out := make(map[string]string, len(u.labels))
		for k, v := range u.labels {
			out[k] = v
		}
		return out
	case labelMerge:
		out := make(map[string]string, len(current)+len(u.labels))
		for k, v := range current {
			out[k] = v
		}
		for k, v := range u.labels {
			out[k] = v
		}
		return out
	default:
		out := make(map[string]string, len(current))
		for k, v := range current {
			out[k] = v
		}
		return out
	}
}
