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
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// defaultDelay paces the loop until the game reports its own delay.
const defaultDelay = 20 * time.Millisecond

// resizer is implemented by games that can adapt to a new screen size
// without restarting.
type resizer interface {
	Resize(cfg core.RuntimeConfig)
}

// identified is implemented by games that tag each session with an ID.
type identified interface {
	SessionID() string
}

// Options configures a play session.
type Options struct {
	Runtime core.RuntimeConfig
	Player  *audio.Player // nil plays no sound
	Logger  *log.Logger   // nil discards events
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       *KeyMapper
	help       help.Model
	player     *audio.Player
	logger     *log.Logger
	delay      time.Duration
	paused     bool
	muted      bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime
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
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
		help:       help.New(),
		player:     opts.Player,
		logger:     logger,
		delay:      defaultDelay,
	}
}

// playHeight leaves the last row for the help footer.
func playHeight(h int) int {
	return core.Max(h-1, 1)
}

// gameConfig returns the runtime config as seen by the game.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = playHeight(cfg.ScreenH)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logStart("session started")
	return tickCmd(m.delay)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if key.Matches(msg, m.keys.Keys.Mute) {
		m.muted = !m.muted
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	case action == core.ActionPause:
		if !m.gameState.GameOver {
			m.paused = !m.paused
		}
	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case action != core.ActionNone && !m.paused:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse follows the pointer and serves on a left click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.paused {
		return m, nil
	}
	m.inputFrame.Point(msg.X)
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.Set(core.ActionLaunch)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.gameConfig())
	} else if !m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		m.inputFrame.Clear()
		return m, tickCmd(m.delay)
	}

	// Restart with a fresh seed
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		m.logStart("session restarted")
		return m, tickCmd(m.delay)
	}

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	m.report(prev, result)

	if result.NextDelay > 0 {
		m.delay = result.NextDelay
	}
	return m, tickCmd(m.delay)
}

// report plays sounds and logs the transitions of one step.
func (m Model) report(prev core.GameState, result core.StepResult) {
	st := result.State

	switch {
	case result.TurnLost:
		m.play(audio.SoundTurnLost)
		m.logger.Info("turn lost", "score", st.Score)
	case result.BrickDestroyed:
		m.play(audio.SoundBrick)
	case result.PaddleHit:
		m.play(audio.SoundPaddle)
	case result.Bounced:
		m.play(audio.SoundWall)
	}

	if prev.Serving && !st.Serving && !st.GameOver {
		m.logger.Debug("ball served")
	}
	if st.GameOver && !prev.GameOver {
		if st.Won {
			m.play(audio.SoundWin)
		}
		m.logger.Info("game over", "won", st.Won, "score", st.Score)
	}
}

func (m Model) logStart(msg string) {
	kv := []any{"game", m.game.ID(), "seed", m.config.Seed}
	if g, ok := m.game.(identified); ok {
		kv = append(kv, "session", g.SessionID())
	}
	m.logger.Info(msg, kv...)
}

func (m Model) play(s audio.Sound) {
	if m.muted {
		return
	}
	m.player.Play(s)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".breakout", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot dir", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.paused {
		drawPauseBox(m.screen)
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys)
}

// drawPauseBox overlays a centred pause notice.
func drawPauseBox(s *core.Screen) {
	const title, hint = "PAUSED", "Press P to resume"
	w := len(hint) + 4
	h := 5
	r := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)
	s.DrawRect(r, ' ')
	s.DrawBox(r)
	s.DrawTextColored(r.X+(w-len(title))/2, r.Y+1, title, core.ColorBrightWhite)
	s.DrawText(r.X+2, r.Y+3, hint)
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Pointer moves the paddle without a button held
	)

	_, err := p.Run()
	return err
}
