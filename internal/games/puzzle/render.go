package puzzle

import (
	"fmt"

	"github.com/vovakirdan/code-arcade/internal/core"
)

const (
	keyStepX    = 2 // Cells per Left/Right press; terminal cells are tall
	snippetH    = 3
	badgeW      = 17
	badgeH      = 3
	minScreenW  = 24
	snippetGapY = 3 // Rows between the vertical center and the snippet

	classLine = "public class Main {"
	mainLine  = "public static void main(String[] args) {"

	successLabel = "✓ Well done!"
	failureLabel = "✗ Try again"
)

// relayout positions the frame, drop zone, snippet and badge. The drop zone
// sits above the vertical center inside main(); the snippet starts below.
func (g *Game) relayout() {
	w, h := g.screenW, g.screenH
	g.frame = core.NewRect(0, 1, w, h-2)
	cy := h / 2

	zw := min(g.cfg.DropZone.Width, w-4)
	zh := g.cfg.DropZone.Height
	g.zone.rect = core.CenteredAt(w/2, cy-g.cfg.DropZone.OffsetY, zw, zh)

	text := []rune(g.cfg.Snippet)
	sw := min(len(text)+4, w-4)
	g.snippet.rect = core.NewRect((w-sw)/2, cy+snippetGapY, sw, snippetH)

	g.badgeAt = core.NewRect((w-badgeW)/2, g.snippet.rect.Bottom()+1, badgeW, badgeH)

	g.tooSmall = w < minScreenW ||
		g.zone.rect.Y-2 <= g.frame.Y ||
		g.zone.rect.Bottom()+1 >= g.snippet.rect.Y ||
		g.badgeAt.Bottom() >= g.frame.Bottom()
}

// Render draws the puzzle screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	dst.DrawBoxColored(g.frame, core.ColorBlue)
	g.renderCode(dst)

	if g.cfg.ShowDropZone {
		dst.DrawDashedBox(g.zone.rect, core.ColorMagenta)
	}

	if g.snippet.visible && !g.snippet.removed {
		dst.DrawBoxColored(g.snippet.rect, core.ColorWhite)
		drawFitted(dst, g.snippet.rect, g.snippet.rect.Y+1, g.cfg.Snippet, core.ColorBrightWhite)
	}

	g.renderBadge(dst)

	if actor, ok := g.drag.DragActor(); ok {
		dst.DrawRect(actor, '▒', core.ColorYellow)
		drawFitted(dst, actor, actor.Y+actor.H/2, g.cfg.Snippet, core.ColorBrightYellow)
	}

	if g.paused {
		dst.DrawTextCentered(g.screenH/2, " PAUSED ", core.ColorNotice)
	}

	dst.DrawTextCentered(g.screenH-1, g.helpLine(), core.ColorMuted)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, g.Title(), core.ColorBrightCyan)

	info := fmt.Sprintf("Attempts: %d  Misses: %d", g.attempts, g.failures)
	if g.solved {
		info = "Solved!  " + info
	}
	dst.DrawTextColored(g.screenW-1-len([]rune(info)), 0, info, core.ColorWhite)
}

// renderCode draws the class and main() around the drop zone.
func (g *Game) renderCode(dst *core.Screen) {
	z := g.zone.rect
	x := max(g.frame.X+2, z.X-8)

	dst.DrawTextColored(x, z.Y-2, classLine, core.ColorCyan)
	dst.DrawTextColored(x+4, z.Y-1, mainLine, core.ColorCyan)
	dst.DrawTextColored(x+4, z.Bottom(), "}", core.ColorCyan)
	dst.DrawTextColored(x, z.Bottom()+1, "}", core.ColorCyan)
}

func (g *Game) renderBadge(dst *core.Screen) {
	var label string
	var color core.Color
	switch g.badge {
	case badgeSuccess:
		label, color = successLabel, core.ColorCorrect
	case badgeFailure:
		label, color = failureLabel, core.ColorWrong
	default:
		return
	}

	dst.DrawBoxColored(g.badgeAt, color)
	dst.DrawTextIn(g.badgeAt, g.badgeAt.Y+1, label, color)
}

// drawFitted centers text in r on row y, cut to the inner width.
func drawFitted(dst *core.Screen, r core.Rect, y int, text string, c core.Color) {
	inner := max(1, r.W-2)
	runes := []rune(text)
	if len(runes) > inner {
		runes = runes[:inner]
	}
	dst.DrawTextIn(r, y, string(runes), c)
}

func (g *Game) helpLine() string {
	switch {
	case g.solved:
		return "R: play again  Q: quit"
	case g.keyDrag:
		return "Arrows: move  Space/Enter: drop  Esc: cancel"
	default:
		return "Drag the snippet into main()  Space: pick up  P: pause  Q: quit"
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorNotice)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorMuted)
}
