package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/code-arcade/internal/config"
	"github.com/vovakirdan/code-arcade/internal/core"
	"github.com/vovakirdan/code-arcade/internal/registry"
	"github.com/vovakirdan/code-arcade/internal/storage"
)

// GameModel is the Bubble Tea model that runs one game: it feeds keys and
// mouse events to the fixed-tick simulation, records outcomes and renders.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	sessionID  string
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	showHelp   bool
	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a game model. store and logger may be nil.
func NewGameModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		sessionID:  uuid.NewString(),
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	// gameState is set on the first tick (value receiver)
	m.logger.Info("game started", "game", m.game.ID(), "session", m.sessionID)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		// Releases are kept under the help overlay so a drag can end.
		if p, ok := m.keyMapper.MapMouse(msg); ok && (!m.showHelp || p.Kind == core.PointerRelease) {
			m.inputFrame.AddPointer(p)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys

	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu (B or Esc) when game over or paused; otherwise the game
	// sees it, e.g. to cancel a drag.
	if action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if action == core.ActionRestart && !m.gameState.GameOver {
		return m, nil
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize re-lays the game out without losing progress.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.inputFrame.ClearActions()
		return m, tickCmd(m.config.TickRate)
	}

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed and session for the new game
		m.config.Seed = time.Now().UnixNano()
		m.sessionID = uuid.NewString()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		m.logger.Info("game restarted", "game", m.game.ID(), "session", m.sessionID)
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	m.recordEvents(result.Events)

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// recordEvents stores gameplay events. Failures are logged and play goes on.
func (m *GameModel) recordEvents(events []core.Event) {
	for _, ev := range events {
		m.logger.Debug("event", "game", m.game.ID(), "kind", ev.Kind, "item", ev.Item, "choice", ev.Choice, "correct", ev.Correct)
		if m.store == nil {
			continue
		}
		_, err := m.store.RecordAttempt(storage.Attempt{
			SessionID: m.sessionID,
			GameID:    m.game.ID(),
			ItemID:    ev.Item,
			Choice:    ev.Choice,
			Correct:   ev.Correct,
		})
		if err != nil {
			m.logger.Warn("could not record attempt", "game", m.game.ID(), "error", err)
		}
	}
}

// saveScore records the finished game. Failures are logged.
func (m *GameModel) saveScore() {
	st := m.gameState
	m.logger.Info("game over", "game", m.game.ID(), "score", st.Score, "max", st.MaxScore, "session", m.sessionID)
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), st.Score, st.MaxScore); err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := config.UserPath("screenshots")
	if dir == "" {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	if m.showHelp {
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Render(m.game.Title() + "\n\n" + m.help.FullHelpView(m.keyMapper.Keys.FullHelp()))
		return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, box)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// SessionID identifies the current play-through in the attempts table.
func (m GameModel) SessionID() string {
	return m.sessionID
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, logger, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Clicks and drags
	)

	_, err := p.Run()
	return err
}
