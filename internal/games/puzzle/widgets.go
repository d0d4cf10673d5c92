package puzzle

import (
	"github.com/vovakirdan/code-arcade/internal/core"
	"github.com/vovakirdan/code-arcade/internal/dnd"
)

// snippet is the draggable code widget.
type snippet struct {
	g       *Game
	rect    core.Rect
	visible bool
	removed bool
}

func (s *snippet) Bounds() core.Rect {
	if !s.visible || s.removed {
		return core.Rect{}
	}
	return s.rect
}

// DragStart hands the snippet itself to the target and hides it and the
// feedback badge while the drag actor follows the pointer.
func (s *snippet) DragStart(x, y int) *dnd.Payload {
	if s.removed {
		return nil
	}

	actor := s.rect.Scale(s.g.cfg.DragScale)
	s.visible = false
	s.g.badge = badgeHidden
	logger.Debug("snippet picked up", "x", x, "y", y)

	return &dnd.Payload{
		Object:   s,
		DragSize: core.Point{X: actor.W, Y: actor.H},
	}
}

// DragStop puts the snippet back with the failure badge unless a target
// took it.
func (s *snippet) DragStop(x, y int, p *dnd.Payload, target dnd.Target) {
	s.g.attempts++
	success := target != nil
	if !success {
		s.visible = true
		s.g.failures++
		s.g.badge = badgeFailure
	}

	logger.Debug("snippet dropped", "x", x, "y", y, "success", success, "attempt", s.g.attempts)
	s.g.events = append(s.g.events, core.Event{
		Kind:    core.EventDrop,
		Item:    snippetItem,
		Choice:  s.g.attempts,
		Correct: success,
	})
}

// dropZone is the invisible target inside main().
type dropZone struct {
	g    *Game
	rect core.Rect
}

func (z *dropZone) Bounds() core.Rect {
	return z.rect
}

// Drag accepts any payload.
func (z *dropZone) Drag(src dnd.Source, p *dnd.Payload, x, y int) bool {
	return true
}

// Drop shows the success badge and takes the snippet off the screen for good.
func (z *dropZone) Drop(src dnd.Source, p *dnd.Payload, x, y int) {
	if s, ok := p.Object.(*snippet); ok {
		s.removed = true
		s.visible = false
		z.g.drag.RemoveSource(s)
	}
	z.g.badge = badgeSuccess
	z.g.solved = true
}
