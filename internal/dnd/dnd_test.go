package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/code-arcade/internal/core"
)

type fakeSource struct {
	bounds  core.Rect
	decline bool
	starts  int
	stops   int
	stopped Target
	stopAt  core.Point
}

func (s *fakeSource) Bounds() core.Rect { return s.bounds }

func (s *fakeSource) DragStart(x, y int) *Payload {
	s.starts++
	if s.decline {
		return nil
	}
	return &Payload{Object: s, DragSize: core.Point{X: 4, Y: 2}}
}

func (s *fakeSource) DragStop(x, y int, p *Payload, target Target) {
	s.stops++
	s.stopped = target
	s.stopAt = core.Point{X: x, Y: y}
}

type fakeTarget struct {
	bounds core.Rect
	refuse bool
	drops  int
	got    any
}

func (t *fakeTarget) Bounds() core.Rect { return t.bounds }

func (t *fakeTarget) Drag(src Source, p *Payload, x, y int) bool { return !t.refuse }

func (t *fakeTarget) Drop(src Source, p *Payload, x, y int) {
	t.drops++
	t.got = p.Object
}

func setup() (*Manager, *fakeSource, *fakeTarget) {
	m := NewManager()
	src := &fakeSource{bounds: core.NewRect(0, 10, 10, 3)}
	tgt := &fakeTarget{bounds: core.NewRect(20, 0, 10, 3)}
	m.AddSource(src)
	m.AddTarget(tgt)
	return m, src, tgt
}

func TestPressOutsideSourceDoesNothing(t *testing.T) {
	m, src, _ := setup()

	assert.False(t, m.Press(50, 50))
	m.Move(60, 60)
	assert.False(t, m.Dragging())
	assert.Zero(t, src.starts)
}

func TestTapDoesNotStartDrag(t *testing.T) {
	m, src, _ := setup()

	require.True(t, m.Press(2, 11))
	m.Move(3, 12) // within the tap square
	assert.False(t, m.Dragging())

	assert.False(t, m.Release(3, 12))
	assert.Zero(t, src.starts)
	assert.Zero(t, src.stops)
}

func TestDropOnTarget(t *testing.T) {
	m, src, tgt := setup()

	m.Press(2, 11)
	m.Move(10, 6)
	require.True(t, m.Dragging())
	assert.Equal(t, 1, src.starts)

	m.Move(25, 1)
	hover, ok := m.HoverTarget()
	assert.Equal(t, tgt, hover)
	assert.True(t, ok)
	assert.True(t, m.HoverValid())

	actor, visible := m.DragActor()
	require.True(t, visible)
	assert.Equal(t, core.NewRect(23, 0, 4, 2), actor, "drag actor is centered on the pointer")

	require.True(t, m.Release(25, 1))
	assert.Equal(t, 1, tgt.drops)
	assert.Equal(t, src, tgt.got, "payload carries the dragged source")
	assert.Equal(t, 1, src.stops)
	assert.Equal(t, tgt, src.stopped)
	assert.True(t, m.LastDropValid())
	assert.False(t, m.Dragging())
	assert.Nil(t, m.Payload())
}

func TestDropOutsideTarget(t *testing.T) {
	m, src, tgt := setup()

	m.Press(2, 11)
	m.Move(40, 20)
	require.True(t, m.Dragging())

	m.Release(40, 20)
	assert.Zero(t, tgt.drops)
	assert.Equal(t, 1, src.stops)
	assert.Nil(t, src.stopped, "stop receives nil target when nothing accepted the drop")
	assert.False(t, m.LastDropValid())
}

func TestRefusingTargetGetsNoDrop(t *testing.T) {
	m, src, tgt := setup()
	tgt.refuse = true

	m.Press(2, 11)
	m.Move(25, 1)
	_, ok := m.HoverTarget()
	assert.False(t, ok)
	assert.False(t, m.HoverValid())

	m.Release(25, 1)
	assert.Zero(t, tgt.drops)
	assert.Nil(t, src.stopped)
}

func TestDeclinedDragStart(t *testing.T) {
	m, src, _ := setup()
	src.decline = true

	m.Press(2, 11)
	m.Move(20, 20)
	assert.False(t, m.Dragging())
	assert.Equal(t, 1, src.starts)

	m.Move(25, 25)
	assert.Equal(t, 1, src.starts, "a declined press is not retried on later motion")
}

func TestCancel(t *testing.T) {
	m, src, tgt := setup()

	assert.False(t, m.Cancel())

	m.Press(2, 11)
	m.Move(25, 1)
	require.True(t, m.Cancel())

	assert.Zero(t, tgt.drops)
	assert.Equal(t, 1, src.stops)
	assert.Nil(t, src.stopped)
	assert.Equal(t, core.Point{X: 25, Y: 1}, src.stopAt)
	assert.False(t, m.Dragging())
}

func TestBeginKeyboardDrag(t *testing.T) {
	m, src, tgt := setup()

	require.True(t, m.Begin(src, 5, 11))
	assert.True(t, m.Dragging())
	assert.False(t, m.Begin(src, 5, 11), "only one drag at a time")

	m.Move(21, 2)
	m.Release(21, 2)
	assert.Equal(t, 1, tgt.drops)
}

func TestRemoveSource(t *testing.T) {
	m, src, _ := setup()
	m.RemoveSource(src)

	assert.False(t, m.Press(2, 11))
}

func TestTopmostSourceWins(t *testing.T) {
	m := NewManager()
	bottom := &fakeSource{bounds: core.NewRect(0, 0, 10, 10)}
	top := &fakeSource{bounds: core.NewRect(0, 0, 5, 5)}
	m.AddSource(bottom)
	m.AddSource(top)

	m.Press(1, 1)
	m.Move(8, 8)
	assert.Equal(t, 1, top.starts)
	assert.Zero(t, bottom.starts)
}

func TestClear(t *testing.T) {
	m, src, _ := setup()
	m.Press(2, 11)
	m.Move(30, 30)
	m.Clear()

	assert.False(t, m.Dragging())
	assert.Zero(t, src.stops, "Clear abandons without callbacks")
	assert.False(t, m.Press(2, 11))
}
