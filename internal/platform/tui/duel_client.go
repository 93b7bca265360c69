package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-circuit/internal/core"
	"github.com/vovakirdan/tui-circuit/internal/games/circuit"
	gridcore "github.com/vovakirdan/tui-circuit/internal/games/circuit/core"
	"github.com/vovakirdan/tui-circuit/internal/multiplayer"
)

// DuelModel is the client side of a network duel. The coordinator owns the
// authoritative state; this model forwards key presses as input messages and
// renders whatever snapshot arrived last.
type DuelModel struct {
	width  int
	height int

	keyMapper   *KeyMapper
	sessionID   multiplayer.SessionID
	matchID     multiplayer.MatchID
	side        core.PlayerID
	coordinator *multiplayer.Coordinator
	eventChan   <-chan multiplayer.SessionEvent

	screen   *core.Screen
	snapshot *circuit.DuelSnapshot

	ended     bool
	endReason multiplayer.MatchEndReason
	winner    core.PlayerID
	score1    int
	score2    int

	backToMenu bool
	quitting   bool
}

// NewDuelModel creates a duel client for a started match.
func NewDuelModel(
	sessionID multiplayer.SessionID,
	matchID multiplayer.MatchID,
	side core.PlayerID,
	coordinator *multiplayer.Coordinator,
	eventChan <-chan multiplayer.SessionEvent,
	width, height int,
) DuelModel {
	return DuelModel{
		width:       width,
		height:      height,
		keyMapper:   NewKeyMapper(),
		sessionID:   sessionID,
		matchID:     matchID,
		side:        side,
		coordinator: coordinator,
		eventChan:   eventChan,
		screen:      core.NewScreen(width, height),
	}
}

// Init starts listening for snapshots.
func (m DuelModel) Init() tea.Cmd {
	return m.waitForEvent()
}

// waitForEvent returns a command that waits for coordinator events.
func (m DuelModel) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		if m.eventChan == nil {
			return nil
		}
		evt, ok := <-m.eventChan
		if !ok {
			return nil
		}
		return evt
	}
}

// Update handles messages.
func (m DuelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case multiplayer.SnapshotEvent:
		if snap, ok := msg.Snapshot.(circuit.DuelSnapshot); ok {
			m.snapshot = &snap
		}
		return m, m.waitForEvent()

	case multiplayer.MatchEndedEvent:
		// Last event for this duel; stop pumping the channel
		m.ended = true
		m.endReason = msg.Reason
		m.winner = msg.Winner
		m.score1 = msg.Score1
		m.score2 = msg.Score2
		return m, nil
	}

	return m, nil
}

// handleKey forwards gameplay keys to the coordinator.
func (m DuelModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.leaveMatch()
		m.quitting = true
		return m, tea.Quit
	}

	if m.ended {
		switch msg.String() {
		case "enter", " ", "b", "esc":
			m.backToMenu = true
			return m, nil
		case "q":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.leaveMatch()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionConfirm:
		frame := core.NewInputFrame()
		frame.Set(action)
		var tickHint uint64
		if m.snapshot != nil {
			tickHint = m.snapshot.Tick
		}
		m.coordinator.Send(multiplayer.PlayerInputMsg{
			MatchID:  m.matchID,
			Player:   m.side,
			TickHint: tickHint,
			Input:    frame,
		})
	}
	// Esc is deliberately inert mid-duel; conceding takes an explicit Q

	return m, nil
}

// leaveMatch tells the coordinator this side is conceding.
func (m DuelModel) leaveMatch() {
	if m.ended {
		return
	}
	m.coordinator.Send(multiplayer.LeaveMatchMsg{
		SessionID: m.sessionID,
		MatchID:   m.matchID,
	})
}

// View renders the last snapshot.
func (m DuelModel) View() string {
	if m.quitting {
		return ""
	}

	if m.snapshot == nil {
		return "\n" + centerText("Synchronizing...", m.width)
	}

	m.renderSnapshot(m.screen)
	if m.ended {
		m.renderResult(m.screen)
	}

	return RenderScreen(m.screen)
}

// BackToMenu returns true if user wants to go back to menu.
func (m DuelModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if user wants to quit entirely.
func (m DuelModel) IsQuitting() bool {
	return m.quitting
}

// renderSnapshot draws the HUD and both boards.
func (m DuelModel) renderSnapshot(dst *core.Screen) {
	snap := m.snapshot
	dst.Clear()

	dst.DrawTextWithColor(0, 0, " Circuit Override | Network Duel", core.ColorCyan)
	dst.DrawHLineWithColor(0, 1, dst.Width(), '─', core.ColorGray)

	// Clock with the same urgency colors as the solo HUD
	tickRate := snap.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	secs := (snap.TimeLeftTicks + tickRate - 1) / tickRate
	timeColor := core.ColorWhite
	switch {
	case secs <= 10:
		timeColor = core.ColorBrightRed
	case secs <= 30:
		timeColor = core.ColorYellow
	}
	dst.DrawTextWithColor(1, 2, fmt.Sprintf("TIME %3ds", secs), timeColor)
	dst.DrawHLineWithColor(0, 3, dst.Width(), '─', core.ColorGray)

	if snap.GridSize <= 0 {
		return
	}

	mineIdx, theirIdx := 0, 1
	if m.side == core.Player2 {
		mineIdx, theirIdx = 1, 0
	}

	paneW := snap.GridSize*2 - 1
	boardTop := 5

	// Side by side when the terminal is wide enough, own board only otherwise
	if dst.Width() >= paneW*2+12 {
		gap := (dst.Width() - 2*paneW) / 3
		m.renderPane(dst, snap, mineIdx, gap, boardTop, true)
		m.renderPane(dst, snap, theirIdx, gap*2+paneW, boardTop, false)
	} else {
		x0 := (dst.Width() - paneW) / 2
		if x0 < 2 {
			x0 = 2
		}
		m.renderPane(dst, snap, mineIdx, x0, boardTop, true)
		them := snap.Players[theirIdx]
		summary := fmt.Sprintf("Opponent: TRACE %d/%d  MOVES %d", them.TrapsHit, snap.AlertThreshold, them.Rotations)
		dst.DrawTextCenteredWithColor(boardTop+snap.GridSize+3, summary, core.ColorGray)
	}

	hintY := boardTop + snap.GridSize + 1
	if snap.RevealLeft > 0 {
		dst.DrawTextCenteredWithColor(hintY, "TRAP NODES EXPOSED", core.ColorBrightYellow)
	} else {
		dst.DrawTextCenteredWithColor(hintY, "arrows/wasd: Move | Enter: Rotate | Q: Concede", core.ColorGray)
	}
}

// renderPane draws one player's board with label and trace meter.
func (m DuelModel) renderPane(dst *core.Screen, snap *circuit.DuelSnapshot, idx, x0, y0 int, mine bool) {
	view := snap.Players[idx]
	size := snap.GridSize

	label := "YOU"
	labelColor := core.ColorBrightGreen
	if !mine {
		label = "OPPONENT"
		labelColor = core.ColorWhite
	}
	switch {
	case view.Solved:
		label += "  CIRCUIT CLOSED"
		labelColor = core.ColorBrightGreen
	case view.LockedOut:
		label += "  TRACED OUT"
		labelColor = core.ColorBrightRed
	}
	dst.DrawTextWithColor(x0, y0-1, label, labelColor)

	traceColor := core.ColorGray
	if view.TrapsHit > 0 {
		traceColor = core.ColorBrightRed
	}
	dst.DrawTextWithColor(x0, y0, fmt.Sprintf("TRACE %d/%d  MOVES %d", view.TrapsHit, snap.AlertThreshold, view.Rotations), traceColor)

	boardY := y0 + 2

	reveal := snap.RevealLeft > 0
	hazards := make(map[gridcore.Pos]bool, len(snap.Hazards))
	for _, p := range snap.Hazards {
		hazards[p] = true
	}
	tripped := make(map[gridcore.Pos]bool, len(view.Tripped))
	for _, p := range view.Tripped {
		tripped[p] = true
	}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			p := gridcore.P(row, col)
			ch := view.Tiles[row*size+col].Rune()
			color := core.ColorWhite
			switch {
			case reveal && hazards[p]:
				ch = 'T'
				color = core.ColorBrightRed
			case tripped[p]:
				ch = 'X'
				color = core.ColorBrightRed
			case (row == 0 && col == 0) || (row == size-1 && col == size-1):
				color = core.ColorBrightGreen
			}
			dst.SetWithColor(x0+col*2, boardY+row, ch, color)
		}
	}

	// Cursor brackets: bright for own cursor, dim for the opponent's
	bracketColor := core.ColorBrightYellow
	if !mine {
		bracketColor = core.ColorGray
	}
	cx := x0 + view.CursorCol*2
	cy := boardY + view.CursorRow
	dst.SetWithColor(cx-1, cy, '[', bracketColor)
	dst.SetWithColor(cx+1, cy, ']', bracketColor)

	// Entry and exit markers flank the corner cells
	dst.SetWithColor(x0-2, boardY, '>', core.ColorBrightGreen)
	dst.SetWithColor(x0+(size-1)*2+2, boardY+size-1, '>', core.ColorBrightGreen)
}

// renderResult draws the end-of-duel overlay.
func (m DuelModel) renderResult(dst *core.Screen) {
	line1 := "DRAW"
	switch m.winner {
	case m.side:
		line1 = "YOU WIN"
	case 0:
	default:
		line1 = "YOU LOSE"
	}
	line2 := fmt.Sprintf("%s | %d - %d", m.endReason.Message(), m.score1, m.score2)

	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCenteredWithColor(box.Y+1, line1, core.ColorWhite)
	dst.DrawTextCenteredWithColor(box.Y+3, line2, core.ColorWhite)
	dst.DrawTextCenteredWithColor(box.Bottom()+1, "Enter: Menu  |  Q: Quit", core.ColorGray)
}
