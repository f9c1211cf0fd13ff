package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Model is the Bubble Tea model driving a platformer session.
type Model struct {
	game     *game.Game
	screen   *core.Screen
	store    *storage.Store
	cfg      config.PlatformerConfig
	runtime  core.RuntimeConfig
	input    core.InputFrame
	lastTick time.Time
	quitting bool
	runSaved bool // Whether the current terminal state has been persisted
}

// NewModel creates a new Bubble Tea model for one platformer session.
func NewModel(cfg config.PlatformerConfig, store *storage.Store, rt core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	return Model{
		game:    game.New(cfg, rt),
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:   store,
		cfg:     cfg,
		runtime: rt,
		input:   core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps keyboard input to simulation actions.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.game.Stop()
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	switch msg.String() {
	case "left", "a":
		m.input.Set(core.ActionLeft)
	case "right", "d":
		m.input.Set(core.ActionRight)
	case " ", "up", "w":
		m.input.Set(core.ActionJump)
	case "enter":
		m.input.Set(core.ActionConfirm)
	case "r":
		if m.game.Status().Terminal() {
			m.input.Set(core.ActionRestart)
		}
	}

	return m, nil
}

// handleResize adjusts the render buffer. The simulation itself is
// unaffected: world coordinates do not depend on the terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by the real frame delta.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.runtime.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	if dt > maxFrameDt {
		dt = maxFrameDt
	}
	m.lastTick = now

	m.game.Update(dt, m.input)
	m.input.Clear()

	status := m.game.Status()
	if status.Terminal() && !m.runSaved {
		m.saveRun(status)
		m.runSaved = true
	}
	if !status.Terminal() {
		m.runSaved = false
	}

	return m, tickCmd(m.runtime.TickRate)
}

// saveRun persists a finished session. Best-effort, play continues
// regardless.
func (m Model) saveRun(status game.Status) {
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveRun(outcomeName(status), m.game.Tier(), m.game.Elapsed())
}

// outcomeName maps a terminal status to its stored outcome label.
func outcomeName(s game.Status) string {
	switch s {
	case game.StatusWon:
		return "won"
	case game.StatusLost:
		return "lost"
	default:
		return "timeout"
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	DrawWorld(m.screen, m.game.Snapshot())

	dir := filepath.Join(os.Getenv("HOME"), ".platformer", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("platformer_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawWorld(m.screen, m.game.Snapshot())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local session.
func Run(cfg config.PlatformerConfig, store *storage.Store, rt core.RuntimeConfig) error {
	model := NewModel(cfg, store, rt)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
