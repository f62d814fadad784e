package tui

import (
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-stalls/internal/config"
	"github.com/vovakirdan/tui-stalls/internal/core"
	"github.com/vovakirdan/tui-stalls/internal/journal"
	"github.com/vovakirdan/tui-stalls/internal/registry"
	"github.com/vovakirdan/tui-stalls/internal/storage"
)

// The key help takes a row below the game on terminals at least
// minHeightForHelp rows tall.
const minHeightForHelp = 25

// gameHeight is the number of rows left to the game.
func gameHeight(screenH int) int {
	if screenH >= minHeightForHelp {
		return screenH - 1
	}
	return max(1, screenH)
}

// Options carries the optional collaborators of a play session.
type Options struct {
	Logger  *log.Logger      // session events; nil discards
	Journal *journal.Journal // nil disables journaling
	Player  string           // recorded with saved scores
	// Columns orders the inventory column of the scoreboard.
	Columns []string
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	keymap     *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	scores     *ScoreboardModel // non-nil while the scoreboard is open
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		opts:       opts,
		logger:     logger,
		keymap:     NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	// gameState and the start events are picked up on the first tick
	return tickCmd(m.config.TickRate)
}

// gameConfig is the runtime config with the help bar taken off the screen.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = gameHeight(cfg.ScreenH)
	return cfg
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.scores == nil {
			m.keymap.MapMouseToFrame(msg, &m.inputFrame)
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
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keymap.Keys()

	if m.scores != nil {
		if key.Matches(msg, keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		sb, _ := m.scores.Update(msg)
		next := sb.(ScoreboardModel)
		if next.IsGoingBack() {
			m.scores = nil
		} else {
			m.scores = &next
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, keys.Scores):
		sb := NewEmbeddedScoreboard(m.store, m.game.ID(), m.opts.Columns, m.config.ScreenW, m.config.ScreenH)
		m.scores = &sb
		return m, nil
	}

	if m.keymap.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	// Back leaves a finished game
	if m.inputFrame.Has(core.ActionBack) && m.gameState.GameOver {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps its session
// and re-centers its layout on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width
	if m.scores != nil {
		sb, _ := m.scores.Update(msg)
		next := sb.(ScoreboardModel)
		m.scores = &next
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	for _, ev := range result.Events {
		m.handleEvent(ev)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// handleEvent logs and journals one game event. A finished game is
// recorded in the score store once.
func (m *Model) handleEvent(ev core.Event) {
	keyvals := []any{"game", m.game.ID(), "tick", ev.Tick}
	for _, k := range slices.Sorted(maps.Keys(ev.Fields)) {
		if k == "snapshot" {
			continue
		}
		keyvals = append(keyvals, k, ev.Fields[k])
	}

	msg := strings.ReplaceAll(string(ev.Kind), "_", " ")
	switch ev.Kind {
	case core.EventFailure:
		m.logger.Error(msg, keyvals...)
	case core.EventConfigFallback:
		m.logger.Warn(msg, keyvals...)
	case core.EventActionIgnored, core.EventWalkFinished:
		m.logger.Debug(msg, keyvals...)
	default:
		m.logger.Info(msg, keyvals...)
	}

	if err := m.opts.Journal.Record(ev); err != nil {
		m.logger.Warn("journal write failed", "err", err)
	}

	if ev.Kind == core.EventGameOver && !m.scoreSaved {
		m.saveRun(ev)
		m.scoreSaved = true
	}
}

// saveRun stores the finished game. Failures are logged and the game
// continues.
func (m *Model) saveRun(ev core.Event) {
	if m.store == nil {
		return
	}
	run := storage.Run{
		GameID: m.game.ID(),
		Player: m.opts.Player,
		Seed:   m.config.Seed,
		Score:  m.gameState.Score,
	}
	if score, ok := ev.Fields["score"].(int); ok {
		run.Score = score
	}
	if inv, ok := ev.Fields["inventory"].(map[string]int); ok {
		run.Inventory = inv
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("score not saved", "err", err)
		return
	}
	m.logger.Info("score saved", "score", run.Score, "player", run.Player)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir, err := config.ExpandHome(filepath.Join("~", config.AppDir, "screenshots"))
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen)
	if m.config.ScreenH >= minHeightForHelp {
		view += "\n" + helpStyle.Render(m.help.View(m.keymap.Keys()))
	}
	return view
}

// Run starts the Bubble Tea program for a local game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
