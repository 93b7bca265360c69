package circuit

// GameStateType identifies the high-level state of a run for UI consumers.
type GameStateType string

const (
	// StatePlaying - normal play, cursor active.
	StatePlaying GameStateType = "playing"
	// StateRevealing - trap positions flashed at stage start, rotation locked.
	StateRevealing GameStateType = "revealing"
	// StateStageCleared - circuit closed, short celebration before the next stage.
	StateStageCleared GameStateType = "stage_cleared"
	// StateGameOver - trace lockdown or timer expiry ended the run.
	StateGameOver GameStateType = "game_over"
	// StateWin - final campaign stage cleared.
	StateWin GameStateType = "win"
	// StatePaused - run frozen by the player.
	StatePaused GameStateType = "paused"
	// StatePausedSmall - terminal window too small to fit the board.
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures run state for rendering, notifications and tests.
type Snapshot struct {
	Tick           uint64
	Mode           string
	Stage          int // 1-based stage number
	StageName      string
	Score          int
	GridSize       int
	CursorRow      int
	CursorCol      int
	TimeLeftTicks  int
	TrapsHit       int
	AlertThreshold int
	Rotations      int
	State          GameStateType
}

// Snapshot returns the current game state snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.clearLeft > 0:
		state = StateStageCleared
	case g.revealLeft > 0:
		state = StateRevealing
	}

	return Snapshot{
		Tick:           g.tick,
		Mode:           string(g.mode),
		Stage:          g.stageIndex + 1,
		StageName:      g.stageName,
		Score:          g.score,
		GridSize:       g.board.Size(),
		CursorRow:      g.cursor.Row,
		CursorCol:      g.cursor.Col,
		TimeLeftTicks:  g.timeLeft,
		TrapsHit:       g.trapsHit,
		AlertThreshold: g.alertThreshold,
		Rotations:      g.rotations,
		State:          state,
	}
}
