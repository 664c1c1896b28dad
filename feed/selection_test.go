package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleAddsThenRemoves(t *testing.T) {
	s := NewSelectionStore()

	assert.True(t, s.Toggle("p1"))
	assert.True(t, s.IsSelected("p1"))

	assert.False(t, s.Toggle("p1"))
	assert.False(t, s.IsSelected("p1"))
	assert.Equal(t, 0, s.Len())
}

func TestToggleTwiceRestoresOriginalMembership(t *testing.T) {
	s := NewSelectionStore()
	s.Toggle("p1")
	s.Toggle("p2")

	s.Toggle("p2")
	s.Toggle("p2")

	assert.ElementsMatch(t, []string{"p1", "p2"}, s.IDs())
}

func TestToggleIsIndependentPerID(t *testing.T) {
	s := NewSelectionStore()
	s.Toggle("p1")
	s.Toggle("p2")
	s.Toggle("p1")

	assert.False(t, s.IsSelected("p1"))
	assert.True(t, s.IsSelected("p2"))
	assert.Equal(t, 1, s.Len())
}

func TestClearEmptiesStore(t *testing.T) {
	s := NewSelectionStore()
	s.Toggle("p1")
	s.Toggle("p2")

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.IDs())
	assert.False(t, s.IsSelected("p1"))
}
