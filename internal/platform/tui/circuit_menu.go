package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-circuit/internal/core"
	"github.com/vovakirdan/tui-circuit/internal/games/circuit"
)

// CircuitSelection holds the user's selection from the campaign menu.
type CircuitSelection struct {
	Stage int // 0 = start from beginning, 1-10 = specific stage
}

// CircuitStageModel lets users pick where the campaign starts.
type CircuitStageModel struct {
	cursor        int
	stageCursor   int
	inStageSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     CircuitSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewCircuitStageModel creates a new campaign stage selection model.
func NewCircuitStageModel(width, height int) CircuitStageModel {
	return CircuitStageModel{
		cursor:    0,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m CircuitStageModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m CircuitStageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m CircuitStageModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inStageSelect {
		return m.handleStageSelectKey(action)
	}
	return m.handleTopKey(action)
}

func (m CircuitStageModel) handleTopKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 1 { // 2 options: Start Campaign, Select Stage
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0: // Start from the beginning
			m.choosing = false
			m.selection = CircuitSelection{Stage: 0}
			return m, tea.Quit
		case 1: // Select Stage
			m.inStageSelect = true
			m.stageCursor = 0
		}
	case MenuActionBack:
		// Backing out of the selector ends the program so the caller's
		// menu loop can resume
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m CircuitStageModel) handleStageSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	stageCount := circuit.LevelCount()

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.stageCursor > 0 {
			m.stageCursor--
		}
	case MenuActionDown:
		if m.stageCursor < stageCount-1 {
			m.stageCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = CircuitSelection{
			Stage: m.stageCursor + 1, // 1-indexed
		}
		return m, tea.Quit
	case MenuActionBack:
		m.inStageSelect = false
	}

	return m, nil
}

// View renders the stage selection.
func (m CircuitStageModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	if m.inStageSelect {
		return m.viewStageSelect()
	}
	return m.viewTop()
}

func (m CircuitStageModel) viewTop() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("CAMPAIGN", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("%d stages of tightening grids", circuit.LevelCount()), m.width))
	b.WriteString("\n\n")

	options := []string{
		"Start Campaign",
		"Select Stage...",
	}

	for i, opt := range options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, opt), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m CircuitStageModel) viewStageSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT STAGE", m.width))
	b.WriteString("\n\n")

	stageNames := circuit.LevelNames()
	for i, name := range stageNames {
		cursor := "  "
		if i == m.stageCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%2d. %s", cursor, i+1, name)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m CircuitStageModel) Selected() *CircuitSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsChoosing returns true if still in selection mode.
func (m CircuitStageModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m CircuitStageModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m CircuitStageModel) WantsBack() bool {
	return m.back
}

// RunCircuitStageSelector runs the campaign stage selection and returns the
// selection, or nil if the user backed out.
func RunCircuitStageSelector(cfg core.RuntimeConfig) (*CircuitSelection, core.RuntimeConfig, error) {
	model := NewCircuitStageModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(CircuitStageModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
