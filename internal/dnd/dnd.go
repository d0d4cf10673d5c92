// Package dnd implements pointer-driven drag and drop between screen areas.
//
// A Manager tracks registered sources (things that can be dragged) and
// targets (places they can be dropped). The platform feeds it press, move
// and release events in screen cells; the manager decides when a press
// becomes a drag, which target is under the pointer, and whether the drop
// lands.
package dnd

import (
	"github.com/vovakirdan/code-arcade/internal/core"
)

// DefaultTapSquare is how far, in cells, the pointer must travel from the
// press before a drag begins.
const DefaultTapSquare = 1

// Payload is the data carried by an active drag.
type Payload struct {
	// Object is whatever the source wants to hand to the target,
	// typically the dragged widget itself.
	Object any
	// DragSize is the size of the drag actor drawn under the pointer.
	DragSize core.Point
}

// Source is something that can be dragged.
type Source interface {
	// Bounds is the area that starts a drag when pressed.
	Bounds() core.Rect
	// DragStart is called when a drag begins. Returning nil cancels it.
	DragStart(x, y int) *Payload
	// DragStop is called when the drag ends. target is nil unless the
	// payload was dropped on a target that accepted it.
	DragStop(x, y int, p *Payload, target Target)
}

// Target is somewhere a payload can be dropped.
type Target interface {
	// Bounds is the area that receives drops.
	Bounds() core.Rect
	// Drag reports whether the target would accept the payload at (x, y).
	Drag(src Source, p *Payload, x, y int) bool
	// Drop is called when an accepted payload is released over the target.
	Drop(src Source, p *Payload, x, y int)
}

// Manager coordinates drags between sources and targets. It is not safe
// for concurrent use; the game loop drives it from a single goroutine.
type Manager struct {
	// TapSquare is the drag threshold in cells (Chebyshev distance).
	TapSquare int

	sources []Source
	targets []Target

	pressed   Source
	pressX    int
	pressY    int
	active    Source
	payload   *Payload
	pointer   core.Point
	hover     Target
	hoverOK   bool
	lastValid bool
}

// NewManager creates a manager with the default tap square.
func NewManager() *Manager {
	return &Manager{TapSquare: DefaultTapSquare}
}

// AddSource registers a draggable source.
func (m *Manager) AddSource(s Source) {
	m.sources = append(m.sources, s)
}

// RemoveSource unregisters a source. An active drag from it is not affected.
func (m *Manager) RemoveSource(s Source) {
	for i, src := range m.sources {
		if src == s {
			m.sources = append(m.sources[:i], m.sources[i+1:]...)
			return
		}
	}
}

// AddTarget registers a drop target.
func (m *Manager) AddTarget(t Target) {
	m.targets = append(m.targets, t)
}

// Clear removes every source and target and abandons any drag without callbacks.
func (m *Manager) Clear() {
	m.sources = nil
	m.targets = nil
	m.reset()
}

// Press records a pointer press. Returns true if it landed on a source.
func (m *Manager) Press(x, y int) bool {
	if m.active != nil {
		return false
	}
	m.pressed = m.sourceAt(x, y)
	m.pressX, m.pressY = x, y
	return m.pressed != nil
}

// Move updates the pointer position, starting a drag once the pointer has
// left the tap square around a press on a source.
func (m *Manager) Move(x, y int) {
	m.pointer = core.Point{X: x, Y: y}

	if m.active == nil {
		if m.pressed == nil || !m.outsideTapSquare(x, y) {
			return
		}
		if !m.Begin(m.pressed, x, y) {
			m.pressed = nil
			return
		}
	}

	m.updateHover(x, y)
}

// Begin starts a drag from src immediately, without a press gesture.
// Used for keyboard driven drags. Returns false if the source declined.
func (m *Manager) Begin(src Source, x, y int) bool {
	if m.active != nil || src == nil {
		return false
	}

	p := src.DragStart(x, y)
	if p == nil {
		return false
	}

	m.active = src
	m.payload = p
	m.pressed = nil
	m.pointer = core.Point{X: x, Y: y}
	m.updateHover(x, y)
	return true
}

// Release ends the gesture at (x, y). If a drag is active the drop is
// resolved: an accepting target under the pointer receives Drop, then the
// source receives DragStop with that target or nil. Returns true if a
// drag ended.
func (m *Manager) Release(x, y int) bool {
	if m.active == nil {
		m.pressed = nil
		return false
	}

	m.updateHover(x, y)

	src, p := m.active, m.payload
	var target Target
	if m.hover != nil && m.hoverOK {
		target = m.hover
		target.Drop(src, p, x, y)
	}
	m.lastValid = target != nil
	m.reset()

	src.DragStop(x, y, p, target)
	return true
}

// Cancel abandons an active drag. The source receives DragStop with a nil
// target. Returns true if a drag was active.
func (m *Manager) Cancel() bool {
	if m.active == nil {
		m.pressed = nil
		return false
	}

	src, p, pos := m.active, m.payload, m.pointer
	m.lastValid = false
	m.reset()

	src.DragStop(pos.X, pos.Y, p, nil)
	return true
}

// Dragging reports whether a drag is in progress.
func (m *Manager) Dragging() bool {
	return m.active != nil
}

// Payload returns the payload of the active drag, or nil.
func (m *Manager) Payload() *Payload {
	return m.payload
}

// Pointer returns the last known pointer position.
func (m *Manager) Pointer() core.Point {
	return m.pointer
}

// DragActor returns the rectangle of the drag actor, centered on the pointer.
// The second result is false when no drag is active.
func (m *Manager) DragActor() (core.Rect, bool) {
	if m.active == nil || m.payload == nil {
		return core.Rect{}, false
	}
	return core.CenteredAt(m.pointer.X, m.pointer.Y, m.payload.DragSize.X, m.payload.DragSize.Y), true
}

// HoverTarget returns the target under the pointer during a drag and
// whether it accepts the payload.
func (m *Manager) HoverTarget() (Target, bool) {
	return m.hover, m.hoverOK
}

// HoverValid reports whether releasing now would land on a target.
func (m *Manager) HoverValid() bool {
	return m.active != nil && m.hoverOK
}

// LastDropValid reports whether the most recent drag ended on a target.
func (m *Manager) LastDropValid() bool {
	return m.lastValid
}

func (m *Manager) reset() {
	m.pressed = nil
	m.active = nil
	m.payload = nil
	m.hover = nil
	m.hoverOK = false
}

func (m *Manager) outsideTapSquare(x, y int) bool {
	return max(core.Abs(x-m.pressX), core.Abs(y-m.pressY)) > m.TapSquare
}

// sourceAt returns the topmost source under (x, y). Later registrations
// are on top.
func (m *Manager) sourceAt(x, y int) Source {
	for i := len(m.sources) - 1; i >= 0; i-- {
		if m.sources[i].Bounds().Contains(x, y) {
			return m.sources[i]
		}
	}
	return nil
}

func (m *Manager) targetAt(x, y int) Target {
	for i := len(m.targets) - 1; i >= 0; i-- {
		if m.targets[i].Bounds().Contains(x, y) {
			return m.targets[i]
		}
	}
	return nil
}

func (m *Manager) updateHover(x, y int) {
	m.hover = m.targetAt(x, y)
	m.hoverOK = m.hover != nil && m.hover.Drag(m.active, m.payload, x, y)
}
