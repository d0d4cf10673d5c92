package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChoiceGroupStartsUnchecked(t *testing.T) {
	g := NewChoiceGroup(4)

	assert.Equal(t, -1, g.CheckedIndex())
	for i := 0; i < g.Size(); i++ {
		assert.False(t, g.IsChecked(i))
	}
}

func TestChoiceGroupSingleSelection(t *testing.T) {
	g := NewChoiceGroup(4)

	assert.True(t, g.Check(1))
	assert.True(t, g.Check(3))

	assert.Equal(t, 3, g.CheckedIndex())
	assert.False(t, g.IsChecked(1), "checking a box unchecks the previous one")
	assert.True(t, g.IsChecked(3))
}

func TestChoiceGroupRecheckKeepsSelection(t *testing.T) {
	g := NewChoiceGroup(4)
	g.Check(2)
	g.Check(2)

	assert.Equal(t, 2, g.CheckedIndex())
}

func TestChoiceGroupIgnoresOutOfRange(t *testing.T) {
	g := NewChoiceGroup(2)
	g.Check(0)

	assert.False(t, g.Check(2))
	assert.False(t, g.Check(-1))
	assert.Equal(t, 0, g.CheckedIndex())
}

func TestChoiceGroupReset(t *testing.T) {
	g := NewChoiceGroup(4)
	g.Check(3)

	g.Reset(2)

	assert.Equal(t, -1, g.CheckedIndex())
	assert.Equal(t, 2, g.Size())
	assert.False(t, g.Check(3))
}
