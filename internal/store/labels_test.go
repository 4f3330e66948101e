package store_test

import (
	"testing"

	"github.com/goodmem/goodmem/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestLabelUpdate_Merge(t *testing.T) {
	current := map[string]string{"a": "1", "b": "2"}
	got := store.MergeLabels(map[string]string{"b": "3", "c": "4"}).Apply(current)

	assert.Equal(t, map[string]string{"a": "1", "b": "3", "c": "4"}, got)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, current, "input must not be mutated")
}

func TestLabelUpdate_Replace(t *testing.T) {
	current := map[string]string{"a": "1", "b": "2"}
	got := store.ReplaceLabels(map[string]string{"a": "9"}).Apply(current)
	assert.Equal(t, map[string]string{"a": "9"}, got)
}

func TestLabelUpdate_ReplaceWithEmptyClears(t *testing.T) {
	got := store.ReplaceLabels(map[string]string{}).Apply(map[string]string{"a": "1"})
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestLabelUpdate_Keep(t *testing.T) {
	current := map[string]string{"a": "1"}
	upd := store.KeepLabels()
	assert.True(t, upd.IsZero())
	assert.Equal(t, current, upd.Apply(current))
}

func TestLabelUpdate_ZeroValueKeeps(t *testing.T) {
	var upd store.LabelUpdate
	assert.True(t, upd.IsZero())
	assert.Equal(t, map[string]string{"x": "y"}, upd.Apply(map[string]string{"x": "y"}))
}
