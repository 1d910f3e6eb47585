package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// difficulties lists the presets the menu cycles through.
var difficulties = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuItem represents a selectable rule-set variant.
type MenuItem struct {
	GameID string
	Title  string
}

// MenuModel is the Bubble Tea model for the variant and difficulty picker.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	difficulty int
	width      int
	height     int
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	quitting   bool
	selected   *MenuItem
}

// NewMenuModel creates a new menu model. The initial difficulty is the one
// given on the command line, if any.
func NewMenuModel(cfg core.RuntimeConfig, preset config.DifficultyPreset) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}

	diff := 1 // normal
	for i, d := range difficulties {
		if d == preset {
			diff = i
		}
	}

	return MenuModel{
		items:      items,
		difficulty: diff,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.difficulty = (m.difficulty + len(difficulties) - 1) % len(difficulties)

	case MenuActionRight:
		m.difficulty = (m.difficulty + 1) % len(difficulties)

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("B R E A K O U T"), "B R E A K O U T", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		rendered := line
		if i == m.cursor {
			line = "> " + item.Title
			rendered = selectedStyle.Render(line)
		}
		b.WriteString(centerText(rendered, line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	diff := fmt.Sprintf("Difficulty: < %s >", m.Difficulty())
	b.WriteString(centerText(diff, diff, m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Variant  |  Left/Right: Difficulty  |  Enter: Play  |  Q: Quit"
	b.WriteString(centerText(hintStyle.Render(controls), controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Difficulty returns the chosen preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return difficulties[m.difficulty]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads rendered so that plain, its visible text, is centred.
func centerText(rendered, plain string, width int) string {
	n := len([]rune(plain))
	if n >= width {
		return rendered
	}
	return strings.Repeat(" ", (width-n)/2) + rendered
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID     string
	Difficulty config.DifficultyPreset
	Config     core.RuntimeConfig
	Quit       bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, preset config.DifficultyPreset) (MenuResult, error) {
	model := NewMenuModel(cfg, preset)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config:     m.Config(),
		Difficulty: m.Difficulty(),
	}
	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}
	result.GameID = m.Selected().GameID

	return result, nil
}
