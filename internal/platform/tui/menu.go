package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/code-arcade/internal/core"
	"github.com/vovakirdan/code-arcade/internal/registry"
	"github.com/vovakirdan/code-arcade/internal/storage"
)

const (
	menuTitle  = "C O D E   A R C A D E"
	menuTop    = 5 // first card row: blank, title, blank, subtitle, blank
	menuCardH  = 4 // border, title, detail, border
	menuCardW  = 44
	menuFooter = "↑/↓ or 1-9: Choose  Enter/Click: Play  Tab: Scores  Q: Quit"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuCardStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	menuActiveStyle = menuCardStyle.BorderForeground(lipgloss.Color("229"))
	menuNameStyle   = lipgloss.NewStyle().Bold(true)
)

// MenuItem is one game card in the picker.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	Best        string // "score/max", empty if never played
	Played      int
}

// MenuModel is the Bubble Tea model for the game picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel builds the picker from the registry. store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, len(games))
	for i, g := range games {
		items[i] = MenuItem{GameID: g.ID, Title: g.Title, Description: g.Description}
		items[i].Best, items[i].Played = playRecord(store, g.ID)
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// playRecord returns the best result as "score/max" and the number of
// finished games.
func playRecord(store *storage.Store, gameID string) (best string, played int) {
	if store == nil {
		return "", 0
	}
	if top, err := store.TopScores(gameID, 1); err == nil && len(top) > 0 {
		best = fmt.Sprintf("%d/%d", top[0].Score, top[0].MaxScore)
	}
	if stats, err := store.GetGameStats(gameID); err == nil {
		played = stats.GamesCount
	}
	return best, played
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if n, ok := digit(msg); ok {
		if n >= 1 && n <= len(m.items) {
			m.cursor = n - 1
			return m.choose()
		}
		return m, nil
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = min(m.cursor+1, len(m.items)-1)
	case MenuActionSelect:
		return m.choose()
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse highlights the card under the pointer and plays it on click.
func (m MenuModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	i := m.cardAt(msg.Y)
	if i < 0 {
		return m, nil
	}
	m.cursor = i
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return m.choose()
	}
	return m, nil
}

// cardAt returns the index of the card covering screen row y, or -1.
func (m MenuModel) cardAt(y int) int {
	if y < menuTop {
		return -1
	}
	i := (y - menuTop) / menuCardH
	if i >= len(m.items) {
		return -1
	}
	return i
}

func (m MenuModel) choose() (tea.Model, tea.Cmd) {
	if len(m.items) == 0 {
		return m, nil
	}
	item := m.items[m.cursor]
	m.selected = &item
	return m, tea.Quit
}

func digit(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '0' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		"",
		centerText(menuTitleStyle.Render(menuTitle), m.width),
		"",
		centerText("Pick an exercise", m.width),
		"",
	}

	cardW := min(menuCardW, max(m.width-4, 20))
	for i, item := range m.items {
		style := menuCardStyle
		if i == m.cursor {
			style = menuActiveStyle
		}
		card := style.Width(cardW).Render(m.cardText(i, item))
		for _, row := range strings.Split(card, "\n") {
			lines = append(lines, centerText(row, m.width))
		}
	}

	lines = append(lines, "", centerText(menuMutedStyle.Render(menuFooter), m.width))
	return strings.Join(lines, "\n")
}

func (m MenuModel) cardText(i int, item MenuItem) string {
	name := menuNameStyle.Render(fmt.Sprintf("%d. %s", i+1, item.Title))
	detail := item.Description
	if item.Best != "" {
		detail = fmt.Sprintf("best %s, played %d", item.Best, item.Played)
	}
	return name + "\n" + menuMutedStyle.Render(detail)
}

// Selected returns the chosen item, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the user left the menu.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the user asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText left-pads text to center it within width, measuring styled
// text without its escape codes.
func centerText(text string, width int) string {
	visible := lipgloss.Width(text)
	if visible >= width {
		return text
	}
	return strings.Repeat(" ", (width-visible)/2) + text
}

// MenuResult is what a finished menu program asks for next.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the picker as its own program.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		res.WantsScoreboard = true
	case m.Selected() != nil:
		res.GameID = m.Selected().GameID
	default:
		res.Quit = true
	}
	return res, nil
}
