// Package quiz implements the multiple-choice quiz screen.
package quiz

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/code-arcade/internal/config"
	"github.com/vovakirdan/code-arcade/internal/core"
	qz "github.com/vovakirdan/code-arcade/internal/quiz"
	"github.com/vovakirdan/code-arcade/internal/registry"
)

// Focusable widgets after the checkboxes, which use indices 0..MaxOptions-1.
const (
	focusNone   = -1
	focusSubmit = qz.MaxOptions
	focusNext   = qz.MaxOptions + 1
)

// Game is the quiz screen: a question label, a checkbox group, a Submit
// button, a feedback label and a Next button.
type Game struct {
	cfg     config.QuizConfig
	bank    *qz.Bank
	preset  bool // cfg and bank were given to the constructor
	session *qz.Session
	choices qz.ChoiceGroup

	screenW int
	screenH int
	lay     layout
	focus   int

	delayTicks    int // Feedback delay converted to ticks
	feedbackTicks int // Ticks left before auto-advance
	tick          uint64

	events   []core.Event
	paused   bool
	tooSmall bool
}

// Package-level settings applied on the next Reset, set from CLI flags.
var (
	configPath string
	bankPath   string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetBankPath overrides the question bank file or directory.
func SetBankPath(path string) {
	bankPath = path
}

// SetLogger sets the logger used for config and bank load failures.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// New creates a quiz that loads its config and bank on Reset.
func New() *Game {
	return &Game{focus: focusNone}
}

// NewWithBank creates a quiz over a fixed bank and config.
func NewWithBank(cfg config.QuizConfig, b *qz.Bank) *Game {
	cfg.Normalize()
	return &Game{cfg: cfg, bank: b, preset: true, focus: focusNone}
}

func init() {
	registry.Register("quiz", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "quiz"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Code Quiz"
}

// Description implements registry.Describer.
func (g *Game) Description() string {
	return "Multiple-choice questions about code"
}

// Reset starts the quiz from the first question.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if !g.preset {
		g.cfg, g.bank = loadSettings()
	}

	var opts []qz.Option
	if g.cfg.ShuffleQuestions {
		opts = append(opts, qz.WithShuffle(rt.Seed))
	}

	session, err := qz.NewSession(g.bank, opts...)
	if err != nil {
		logger.Warn("quiz bank unusable, using built-in bank", "err", err)
		g.bank = qz.DefaultBank()
		session, _ = qz.NewSession(g.bank, opts...)
	}
	g.session = session

	g.delayTicks = rt.TicksFor(g.cfg.FeedbackDelayMs)
	g.tick = 0
	g.events = nil
	g.paused = false
	g.screenW, g.screenH = rt.ScreenW, rt.ScreenH
	g.loadQuestion()
}

// loadSettings reads the config file and the question bank it names.
// Failures are logged and fall back to defaults.
func loadSettings() (config.QuizConfig, *qz.Bank) {
	cfg, err := config.LoadQuiz(configPath)
	if err != nil {
		logger.Warn("quiz config not loaded, using defaults", "path", configPath, "err", err)
	}

	path := cfg.Bank
	if bankPath != "" {
		path = bankPath
	}
	if path == "" {
		return cfg, qz.DefaultBank()
	}

	if expanded, err := config.ExpandHome(path); err == nil {
		path = expanded
	}
	b, err := qz.LoadBank(path)
	if err != nil {
		logger.Error("question bank not loaded, using built-in bank", "path", path, "err", err)
		return cfg, qz.DefaultBank()
	}
	logger.Info("question bank loaded", "id", b.ID, "questions", b.Len(), "path", b.Source)
	return cfg, b
}

// Resize lays the widgets out for new screen dimensions.
func (g *Game) Resize(width, height int) {
	g.screenW, g.screenH = width, height
	g.relayout()
}

// loadQuestion shows the current question with every box unchecked, no
// feedback and Submit visible.
func (g *Game) loadQuestion() {
	g.choices.Reset(len(g.session.Current().Options))
	g.feedbackTicks = 0
	g.focus = 0
	if g.session.Phase() == qz.PhaseComplete {
		g.focus = focusNone
	}
	g.relayout()
}

// Step advances the quiz by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.events = nil

	if g.tooSmall {
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	phase := g.session.Phase()
	if phase == qz.PhaseComplete {
		return g.result()
	}

	if phase == qz.PhaseFeedback {
		g.feedbackTicks--
		if g.feedbackTicks <= 0 {
			g.advance()
			return g.result()
		}
	}

	for _, p := range in.Pointers() {
		if p.Kind == core.PointerPress {
			g.click(p.X, p.Y)
		}
	}

	g.handleKeys(in)
	return g.result()
}

func (g *Game) handleKeys(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.moveFocus(-1)
	case in.Has(core.ActionDown):
		g.moveFocus(1)
	}

	for a := core.ActionChoice1; a <= core.ActionChoice4; a++ {
		if !in.Has(a) {
			continue
		}
		if i, _ := a.ChoiceIndex(); g.session.Phase() == qz.PhaseAnswering && i < g.choices.Size() {
			g.choices.Check(i)
			g.focus = i
		}
	}

	if in.Has(core.ActionSelect) {
		g.activate(g.focus)
	}

	switch g.session.Phase() {
	case qz.PhaseAnswering:
		if in.Has(core.ActionConfirm) {
			g.submit()
		}
	case qz.PhaseFeedback:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionNext) {
			g.advance()
		}
	}
}

// click dispatches a pointer press to the widget under it.
func (g *Game) click(x, y int) {
	for _, w := range g.focusables() {
		if g.widgetRect(w).Contains(x, y) {
			g.focus = w
			g.activate(w)
			return
		}
	}
}

// activate presses a widget: checkboxes check, buttons fire.
func (g *Game) activate(w int) {
	switch {
	case w == focusSubmit:
		g.submit()
	case w == focusNext:
		g.advance()
	case w >= 0 && w < g.choices.Size():
		if g.session.Phase() == qz.PhaseAnswering {
			g.choices.Check(w)
		}
	}
}

// focusables lists the visible widgets in focus order.
func (g *Game) focusables() []int {
	switch g.session.Phase() {
	case qz.PhaseAnswering:
		ws := make([]int, 0, g.choices.Size()+1)
		for i := range g.choices.Size() {
			ws = append(ws, i)
		}
		return append(ws, focusSubmit)
	case qz.PhaseFeedback:
		return []int{focusNext}
	default:
		return nil
	}
}

func (g *Game) moveFocus(delta int) {
	ws := g.focusables()
	if len(ws) == 0 {
		return
	}
	idx := 0
	for i, w := range ws {
		if w == g.focus {
			idx = i
			break
		}
	}
	g.focus = ws[core.Clamp(idx+delta, 0, len(ws)-1)]
}

// submit grades the checked box. With nothing checked the feedback asks
// for a selection and the question stays open.
func (g *Game) submit() {
	res, err := g.session.Submit(g.choices.CheckedIndex())
	if err != nil {
		if !errors.Is(err, qz.ErrNoSelection) {
			logger.Debug("submit ignored", "err", err)
		}
		return
	}

	g.events = append(g.events, core.Event{
		Kind:    core.EventAnswer,
		Item:    res.QuestionID,
		Choice:  res.Choice,
		Correct: res.Correct,
	})
	g.feedbackTicks = g.delayTicks
	g.focus = focusNext
}

// advance moves to the next question, or to the final score.
func (g *Game) advance() {
	if g.session.Phase() != qz.PhaseFeedback {
		return
	}
	g.session.Next()
	g.loadQuestion()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{Paused: g.paused || g.tooSmall}
	if g.session != nil {
		st.Score = g.session.Score()
		st.MaxScore = g.session.Total()
		st.GameOver = g.session.Phase() == qz.PhaseComplete
	}
	return st
}

// Session exposes the running quiz session.
func (g *Game) Session() *qz.Session {
	return g.session
}

// Choices returns the checkbox group state.
func (g *Game) Choices() qz.ChoiceGroup {
	return g.choices
}
