// Package puzzle implements the drag-and-drop code snippet puzzle: drop the
// print statement into the body of main().
package puzzle

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/code-arcade/internal/config"
	"github.com/vovakirdan/code-arcade/internal/core"
	"github.com/vovakirdan/code-arcade/internal/dnd"
	"github.com/vovakirdan/code-arcade/internal/registry"
)

const snippetItem = "snippet"

// badge is the feedback image under the snippet.
type badge int

const (
	badgeHidden badge = iota
	badgeSuccess
	badgeFailure
)

// Game is the drag-and-drop puzzle screen.
type Game struct {
	cfg    config.PuzzleConfig
	preset bool

	drag    *dnd.Manager
	snippet *snippet
	zone    *dropZone
	keyDrag bool // Current drag was started from the keyboard

	screenW int
	screenH int
	frame   core.Rect
	badgeAt core.Rect

	badge    badge
	solved   bool
	attempts int
	failures int
	tick     uint64

	events   []core.Event
	paused   bool
	tooSmall bool
}

// Package-level settings applied on the next Reset, set from CLI flags.
var (
	configPath string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger used for config failures and drag tracing.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// New creates a puzzle that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a puzzle with a fixed config.
func NewWithConfig(cfg config.PuzzleConfig) *Game {
	cfg.Normalize()
	return &Game{cfg: cfg, preset: true}
}

func init() {
	registry.Register("puzzle", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "puzzle"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snippet Drop"
}

// Description implements registry.Describer.
func (g *Game) Description() string {
	return "Drag the missing line into the code"
}

// Reset puts the snippet back in its starting place.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if !g.preset {
		cfg, err := config.LoadPuzzle(configPath)
		if err != nil {
			logger.Warn("puzzle config not loaded, using defaults", "path", configPath, "err", err)
		}
		g.cfg = cfg
	}

	g.snippet = &snippet{g: g, visible: true}
	g.zone = &dropZone{g: g}

	g.drag = dnd.NewManager()
	g.drag.TapSquare = g.cfg.TapSquare
	g.drag.AddSource(g.snippet)
	g.drag.AddTarget(g.zone)
	g.keyDrag = false

	g.badge = badgeHidden
	g.solved = false
	g.attempts = 0
	g.failures = 0
	g.tick = 0
	g.events = nil
	g.paused = false

	g.Resize(rt.ScreenW, rt.ScreenH)
}

// Resize recomputes the frame, snippet, badge and drop zone positions.
func (g *Game) Resize(width, height int) {
	g.screenW, g.screenH = width, height
	g.relayout()
}

// Step advances the puzzle by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.events = nil

	if g.tooSmall {
		g.cancelDrag()
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		// The button release may happen while paused and would be lost.
		if g.paused {
			g.cancelDrag()
		}
	}
	if g.paused || g.solved {
		return g.result()
	}

	for _, p := range in.Pointers() {
		switch p.Kind {
		case core.PointerPress:
			// A mouse drag still active at a new press lost its release.
			if !g.keyDrag {
				g.cancelDrag()
			}
			g.drag.Press(p.X, p.Y)
		case core.PointerMotion:
			g.drag.Move(p.X, p.Y)
		case core.PointerRelease:
			g.drag.Release(p.X, p.Y)
			g.keyDrag = false
		}
	}

	g.handleKeys(in)
	return g.result()
}

// cancelDrag ends an active drag as a drop with no target.
func (g *Game) cancelDrag() {
	g.drag.Cancel()
	g.keyDrag = false
}

// handleKeys drives a drag from the keyboard: pick up, move, drop, cancel.
func (g *Game) handleKeys(in core.InputFrame) {
	if in.Has(core.ActionBack) && g.drag.Dragging() {
		g.cancelDrag()
		return
	}

	pick := in.Has(core.ActionSelect) || in.Has(core.ActionConfirm)

	if !g.drag.Dragging() {
		if pick && !g.snippet.removed {
			cx, cy := g.snippet.rect.Center()
			g.keyDrag = g.drag.Begin(g.snippet, cx, cy)
		}
		return
	}

	if !g.keyDrag {
		return
	}

	p := g.drag.Pointer()
	dx, dy := 0, 0
	switch {
	case in.Has(core.ActionUp):
		dy = -1
	case in.Has(core.ActionDown):
		dy = 1
	}
	switch {
	case in.Has(core.ActionLeft):
		dx = -keyStepX
	case in.Has(core.ActionRight):
		dx = keyStepX
	}
	if dx != 0 || dy != 0 {
		to := g.frame.ClampPoint(p.X+dx, p.Y+dy)
		g.drag.Move(to.X, to.Y)
		p = g.drag.Pointer()
	}

	if pick {
		g.drag.Release(p.X, p.Y)
		g.keyDrag = false
	}
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.solved {
		score = 1
	}
	return core.GameState{
		Score:    score,
		MaxScore: 1,
		GameOver: g.solved,
		Paused:   g.paused || g.tooSmall,
	}
}

// Solved reports whether the snippet landed in the drop zone.
func (g *Game) Solved() bool {
	return g.solved
}

// Failures returns the number of drops that missed the zone.
func (g *Game) Failures() int {
	return g.failures
}
