package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/code-arcade/internal/registry"
	"github.com/vovakirdan/code-arcade/internal/storage"
)

const (
	boardChrome = 10  // rows used by headings, tabs, summary, borders and help
	boardRows   = 100 // results loaded per game
)

// boardView selects what the scoreboard table lists.
type boardView int

const (
	viewScores boardView = iota // best finished games
	viewItems                   // per-question accuracy, hardest first
)

func (v boardView) String() string {
	if v == viewItems {
		return "Questions"
	}
	return "Results"
}

// boardExit records how the user left the scoreboard.
type boardExit int

const (
	exitNone boardExit = iota
	exitBack
	exitQuit
)

var (
	boardHeadStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Toggle   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.Toggle, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.NextGame, k.PrevGame, k.Toggle}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns the default scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextGame: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("→/tab", "next game")),
		PrevGame: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev game")),
		Toggle:   key.NewBinding(key.WithKeys("s", "v"), key.WithHelp("s", "results/questions")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows stored results and question accuracy per game.
type ScoreboardModel struct {
	store  *storage.Store
	games  []registry.GameInfo
	game   int
	view   boardView
	width  int
	height int

	scores  []storage.ScoreEntry
	items   []storage.ItemStats
	summary *storage.GameStats

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap
	exit  boardExit
}

// NewScoreboardModel creates a scoreboard over store, which may be nil.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		games:  registry.List(),
		width:  width,
		height: height,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
	}
	m.help.Width = width
	m.table = newBoardTable(height)
	m.reload()
	return m
}

func newBoardTable(height int) table.Model {
	t := table.New(table.WithFocused(true), table.WithHeight(max(height-boardChrome, 3)))

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *ScoreboardModel) gameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.game].ID
}

// reload fetches the selected game's rows and summary.
func (m *ScoreboardModel) reload() {
	m.scores, m.items, m.summary = nil, nil, nil
	if id := m.gameID(); m.store != nil && id != "" {
		m.summary, _ = m.store.GetGameStats(id)
		switch m.view {
		case viewItems:
			m.items, _ = m.store.QuestionStats(id)
		default:
			m.scores, _ = m.store.TopScores(id, boardRows)
		}
	}
	m.fillTable()
}

// columns sizes the table to the screen; the first column takes the slack.
func (m *ScoreboardModel) columns() []table.Column {
	inner := m.width - 8
	if m.view == viewItems {
		return []table.Column{
			{Title: "Question", Width: clampWidth(inner-26, 12, 32)},
			{Title: "Tries", Width: 6},
			{Title: "Correct", Width: 8},
			{Title: "Acc.", Width: 6},
		}
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Result", Width: 8},
		{Title: "Percent", Width: 8},
		{Title: "Played", Width: clampWidth(inner-24, 12, 20)},
	}
}

func clampWidth(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func (m *ScoreboardModel) rows() []table.Row {
	if m.view == viewItems {
		rows := make([]table.Row, 0, len(m.items))
		for _, it := range m.items {
			rows = append(rows, table.Row{
				it.ItemID,
				fmt.Sprint(it.Attempts),
				fmt.Sprint(it.Correct),
				percent(it.Accuracy()),
			})
		}
		return rows
	}

	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		ratio := 0.0
		if s.MaxScore > 0 {
			ratio = float64(s.Score) / float64(s.MaxScore)
		}
		rows = append(rows, table.Row{
			fmt.Sprint(i + 1),
			fmt.Sprintf("%d/%d", s.Score, s.MaxScore),
			percent(ratio),
			s.CreatedAt.Local().Format("Jan 02 15:04"),
		})
	}
	return rows
}

func percent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

func (m *ScoreboardModel) fillTable() {
	// Rows must match the column count, so clear them before swapping columns.
	m.table.SetRows(nil)
	m.table.SetColumns(m.columns())
	m.table.SetRows(m.rows())
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(msg.Height-boardChrome, 3))
		m.fillTable()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.exit = exitQuit
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.exit = exitBack
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.view = 1 - m.view
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.NextGame):
			m.switchGame(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.switchGame(-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) switchGame(delta int) {
	if n := len(m.games); n > 0 {
		m.game = (m.game + delta + n) % n
		m.reload()
	}
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.exit != exitNone {
		return ""
	}

	parts := []string{
		"",
		centerText(boardHeadStyle.Render("S C O R E B O A R D"), m.width),
		"",
		centerText(m.gameTabs(), m.width),
		centerText(m.viewTabs(), m.width),
		centerText(m.summaryLine(), m.width),
		boardFrameStyle.Render(m.tableContent()),
		m.help.View(m.keys),
	}
	return strings.Join(parts, "\n")
}

func (m ScoreboardModel) gameTabs() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		style := boardTabStyle
		if i == m.game {
			style = boardActiveTab
		}
		tabs[i] = style.Render(g.Title)
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-2 && len(m.games) > 0 {
		line = boardActiveTab.Render("‹ " + m.games[m.game].Title + " ›")
	}
	return line
}

func (m ScoreboardModel) viewTabs() string {
	var tabs []string
	for _, v := range []boardView{viewScores, viewItems} {
		style := boardTabStyle
		if v == m.view {
			style = boardHeadStyle.Padding(0, 1)
		}
		tabs = append(tabs, style.Render(v.String()))
	}
	return strings.Join(tabs, "│")
}

func (m ScoreboardModel) summaryLine() string {
	s := m.summary
	if s == nil || s.GamesCount == 0 {
		return boardTabStyle.Render("no games finished")
	}
	return boardTabStyle.Render(fmt.Sprintf("played %d  best %d  average %.1f  last %s",
		s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Local().Format("Jan 02")))
}

func (m ScoreboardModel) tableContent() string {
	if len(m.table.Rows()) == 0 {
		return boardEmptyStyle.Render("Nothing recorded yet.\nPlay a game to fill the board!")
	}
	return m.table.View()
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.exit == exitBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.exit == exitQuit
}

// RunScoreboard runs the scoreboard as its own program. It reports whether
// the user went back to the menu rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
