package quiz

import (
	"fmt"

	"github.com/vovakirdan/code-arcade/internal/core"
	qz "github.com/vovakirdan/code-arcade/internal/quiz"
)

const (
	maxPanelW    = 60 // Question label wrap width
	minScreenW   = 32
	hudHeight    = 2
	feedbackRows = 2
	explainRows  = 2

	submitLabel = "[ Submit Answer ]"
	nextLabel   = "[ Next Question ]"
)

// layout holds the widget positions for the current question.
type layout struct {
	panel     core.Rect // Content column, full height
	prompt    []string
	promptY   int
	boxes     [qz.MaxOptions]core.Rect
	submit    core.Rect
	feedbackY int
	explainY  int
	next      core.Rect
}

// relayout positions the widgets for the current screen and question.
func (g *Game) relayout() {
	w := min(maxPanelW, g.screenW-4)
	x := (g.screenW - w) / 2
	lay := layout{panel: core.NewRect(x, 0, w, g.screenH)}

	y := hudHeight + 1
	if g.session != nil {
		lay.prompt = core.Wrap(g.session.Headline(), w)
	}
	lay.promptY = y
	y += len(lay.prompt) + 1

	for i := range lay.boxes {
		lay.boxes[i] = core.NewRect(x, y+i, w, 1)
	}
	y += qz.MaxOptions + 1

	lay.submit = buttonRect(lay.panel, y, submitLabel)
	y += 2

	lay.feedbackY = y
	y += feedbackRows
	lay.explainY = y
	y += explainRows + 1

	lay.next = buttonRect(lay.panel, y, nextLabel)

	g.lay = lay
	// One row under Next for the help line.
	g.tooSmall = g.screenW < minScreenW || lay.next.Bottom() >= g.screenH
}

func buttonRect(panel core.Rect, y int, label string) core.Rect {
	w := len([]rune(label))
	return core.NewRect(panel.X+(panel.W-w)/2, y, w, 1)
}

// widgetRect returns the hit area of a focusable widget.
func (g *Game) widgetRect(w int) core.Rect {
	switch {
	case w == focusSubmit:
		return g.lay.submit
	case w == focusNext:
		return g.lay.next
	case w >= 0 && w < qz.MaxOptions:
		return g.lay.boxes[w]
	default:
		return core.Rect{}
	}
}

// Render draws the quiz screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.session == nil {
		return
	}

	g.renderHUD(dst)

	for i, line := range g.lay.prompt {
		dst.DrawTextColored(g.lay.panel.X, g.lay.promptY+i, line, core.ColorBrightWhite)
	}

	phase := g.session.Phase()
	if phase != qz.PhaseComplete {
		g.renderChoices(dst)
	}
	if phase == qz.PhaseAnswering {
		g.renderButton(dst, focusSubmit, submitLabel)
	}

	g.renderFeedback(dst)

	if phase == qz.PhaseFeedback {
		g.renderButton(dst, focusNext, nextLabel)
	}

	if g.paused {
		dst.DrawTextCentered(g.screenH/2, " PAUSED ", core.ColorNotice)
	}

	dst.DrawTextCentered(g.screenH-1, g.helpLine(), core.ColorMuted)
}

func (g *Game) renderHUD(dst *core.Screen) {
	panel := g.lay.panel
	dst.DrawTextColored(panel.X, 0, g.Title(), core.ColorBrightCyan)

	info := fmt.Sprintf("Score: %d/%d", g.session.Score(), g.session.Total())
	if g.session.Phase() != qz.PhaseComplete {
		info = fmt.Sprintf("Question %d/%d  %s", g.session.Index()+1, g.session.Total(), info)
	}
	dst.DrawTextColored(panel.Right()-len([]rune(info)), 0, info, core.ColorWhite)

	for x := panel.X; x < panel.Right(); x++ {
		dst.SetCell(x, 1, core.Cell{Rune: '─', Color: core.ColorMuted})
	}
}

func (g *Game) renderChoices(dst *core.Screen) {
	q := g.session.Current()
	feedback := g.session.Phase() == qz.PhaseFeedback

	for i, opt := range q.Options {
		if i >= qz.MaxOptions {
			break
		}
		r := g.lay.boxes[i]

		mark := ' '
		if g.choices.IsChecked(i) {
			mark = 'x'
		}
		text := fmt.Sprintf("[%c] %d. %s", mark, i+1, opt)
		if n := len([]rune(text)); n > r.W {
			text = string([]rune(text)[:r.W])
		}

		color := core.ColorWhite
		switch {
		case feedback && i == q.Correct:
			color = core.ColorCorrect
		case feedback && g.choices.IsChecked(i):
			color = core.ColorWrong
		case g.focus == i:
			color = core.ColorFocus
		}
		dst.DrawTextColored(r.X, r.Y, text, color)
	}
}

func (g *Game) renderButton(dst *core.Screen, w int, label string) {
	color := core.ColorWhite
	if g.focus == w {
		color = core.ColorFocus
	}
	r := g.widgetRect(w)
	dst.DrawTextColored(r.X, r.Y, label, color)
}

func (g *Game) renderFeedback(dst *core.Screen) {
	text, tone := g.session.Feedback()
	if text != "" {
		drawLines(dst, g.lay.panel, g.lay.feedbackY, text, feedbackRows, toneColor(tone))
	}

	if !g.cfg.ShowExplanations || g.session.Phase() != qz.PhaseFeedback {
		return
	}
	if exp := g.session.Current().Explanation; exp != "" {
		drawLines(dst, g.lay.panel, g.lay.explainY, exp, explainRows, core.ColorMuted)
	}
}

// drawLines draws text wrapped to the panel and centered, up to maxRows rows.
func drawLines(dst *core.Screen, panel core.Rect, y int, text string, maxRows int, c core.Color) {
	lines := core.Wrap(text, panel.W)
	if len(lines) > maxRows {
		lines = lines[:maxRows]
	}
	for i, line := range lines {
		dst.DrawTextIn(panel, y+i, line, c)
	}
}

func toneColor(t qz.Tone) core.Color {
	switch t {
	case qz.ToneCorrect:
		return core.ColorCorrect
	case qz.ToneWrong:
		return core.ColorWrong
	case qz.ToneNotice:
		return core.ColorNotice
	default:
		return core.ColorWhite
	}
}

func (g *Game) helpLine() string {
	switch g.session.Phase() {
	case qz.PhaseAnswering:
		return "1-4/Space: choose  Enter: submit  P: pause  Q: quit"
	case qz.PhaseFeedback:
		return "Enter/N: next question  P: pause  Q: quit"
	default:
		return "R: play again  Q: quit"
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorNotice)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorMuted)
}
