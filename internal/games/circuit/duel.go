package circuit

import (
	"math/rand"
	"sort"

	"github.com/vovakirdan/tui-circuit/internal/config"
	platformcore "github.com/vovakirdan/tui-circuit/internal/core"
	"github.com/vovakirdan/tui-circuit/internal/games/circuit/core"
	"github.com/vovakirdan/tui-circuit/internal/multiplayer"
)

// DuelGameID identifies the duel mode in lobbies, menus, and match history.
// The duel is not in the registry because it steps on multi-player input.
const DuelGameID = "circuit_duel"

// DuelGame is the online head-to-head mode: both players receive the same
// scrambled board and race to close the circuit first. Tripping the trace
// hands the match to the opponent; at timeout the cleaner run wins.
type DuelGame struct {
	cfg      config.CircuitConfig
	tick     uint64
	tickRate int

	timeLeft   int
	timeTotal  int
	revealLeft int

	sides [2]duelSide

	gameOver bool
	winner   platformcore.PlayerID
}

// duelSide holds one player's board and progress.
type duelSide struct {
	board     *core.Board
	cursor    core.Pos
	tripped   map[core.Pos]bool
	trapsHit  int
	rotations int
	score     int
	solved    bool
	lockedOut bool
}

// NewDuel creates a new duel game.
func NewDuel() *DuelGame {
	return &DuelGame{}
}

// Reset initializes both boards from the same seed so the race is fair.
func (d *DuelGame) Reset(cfg platformcore.RuntimeConfig) {
	ccfg, err := config.LoadCircuit(configPath)
	if err != nil {
		ccfg = config.DefaultCircuitConfig()
	}
	config.ApplyCircuitPreset(&ccfg, difficultyPreset)
	d.cfg = ccfg

	d.tickRate = cfg.TickRate
	if d.tickRate <= 0 {
		d.tickRate = 60
	}
	d.tick = 0
	d.gameOver = false
	d.winner = 0

	// Identical seeds produce identical boards: same layout, same traps,
	// same scramble.
	for i := range d.sides {
		rng := rand.New(rand.NewSource(cfg.Seed))
		board := core.Generate(ccfg.Gameplay.GridSize, ccfg.Gameplay.HazardCount, rng)
		d.sides[i] = duelSide{
			board:   board,
			cursor:  board.Entry(),
			tripped: make(map[core.Pos]bool),
		}
	}

	d.timeTotal = ccfg.Gameplay.TimeLimitSecs * d.tickRate
	d.timeLeft = d.timeTotal
	d.revealLeft = int(ccfg.Gameplay.RevealSecs * float64(d.tickRate))
}

// StepMulti advances the duel by one tick using both players' input.
func (d *DuelGame) StepMulti(input platformcore.MultiInputFrame) platformcore.StepResult {
	d.tick++

	if d.gameOver {
		return d.stepResult()
	}

	// Trap reveal window: cursors move, rotation stays locked, clock waits
	if d.revealLeft > 0 {
		d.revealLeft--
		d.moveCursors(input)
		return d.stepResult()
	}

	d.timeLeft--
	if d.timeLeft <= 0 {
		d.timeLeft = 0
		d.resolveTimeout()
		return d.stepResult()
	}

	d.moveCursors(input)

	for i, player := range [2]platformcore.PlayerID{platformcore.Player1, platformcore.Player2} {
		if input.Player(player).Has(platformcore.ActionConfirm) {
			d.confirm(i, player)
			if d.gameOver {
				break
			}
		}
	}

	return d.stepResult()
}

// moveCursors applies each player's directional input.
func (d *DuelGame) moveCursors(input platformcore.MultiInputFrame) {
	for i, player := range [2]platformcore.PlayerID{platformcore.Player1, platformcore.Player2} {
		side := &d.sides[i]
		frame := input.Player(player)
		switch {
		case frame.Has(platformcore.ActionUp):
			side.cursor = d.clampCursor(side.board, side.cursor.Step(core.North))
		case frame.Has(platformcore.ActionDown):
			side.cursor = d.clampCursor(side.board, side.cursor.Step(core.South))
		case frame.Has(platformcore.ActionLeft):
			side.cursor = d.clampCursor(side.board, side.cursor.Step(core.West))
		case frame.Has(platformcore.ActionRight):
			side.cursor = d.clampCursor(side.board, side.cursor.Step(core.East))
		}
	}
}

// clampCursor keeps a position on the board.
func (d *DuelGame) clampCursor(b *core.Board, p core.Pos) core.Pos {
	size := b.Size()
	p.Row = platformcore.Clamp(p.Row, 0, size-1)
	p.Col = platformcore.Clamp(p.Col, 0, size-1)
	return p
}

// confirm resolves one player's confirm: traps count toward their trace,
// other cells rotate. First closed circuit ends the match.
func (d *DuelGame) confirm(idx int, player platformcore.PlayerID) {
	side := &d.sides[idx]

	if side.board.IsHazard(side.cursor) {
		side.tripped[side.cursor] = true
		side.trapsHit++
		if side.trapsHit >= d.cfg.Gameplay.AlertThreshold {
			// Tracing out hands the match to the opponent
			side.lockedOut = true
			d.finish(player.Other())
		}
		return
	}

	if err := side.board.Rotate(side.cursor); err != nil {
		return
	}
	side.rotations++

	if side.board.Solved() {
		side.solved = true
		secsLeft := d.timeLeft / d.tickRate
		side.score = d.cfg.Scoring.ClearBonus + secsLeft*d.cfg.Scoring.TimeBonusPerSec
		d.finish(player)
	}
}

// resolveTimeout picks a winner when the clock runs out: fewer trap hits,
// then fewer rotations, otherwise a draw.
func (d *DuelGame) resolveTimeout() {
	d.gameOver = true
	s1, s2 := &d.sides[0], &d.sides[1]
	switch {
	case s1.trapsHit != s2.trapsHit:
		if s1.trapsHit < s2.trapsHit {
			d.winner = platformcore.Player1
		} else {
			d.winner = platformcore.Player2
		}
	case s1.rotations != s2.rotations:
		if s1.rotations < s2.rotations {
			d.winner = platformcore.Player1
		} else {
			d.winner = platformcore.Player2
		}
	default:
		d.winner = 0 // Draw
	}
}

// finish ends the match with the given winner.
func (d *DuelGame) finish(winner platformcore.PlayerID) {
	d.gameOver = true
	d.winner = winner
}

func (d *DuelGame) stepResult() platformcore.StepResult {
	return platformcore.StepResult{
		State: platformcore.GameState{
			Score:    d.sides[0].score,
			GameOver: d.gameOver,
		},
	}
}

// IsGameOver returns true if the duel has ended.
func (d *DuelGame) IsGameOver() bool {
	return d.gameOver
}

// Winner returns the winning player, or 0 for a draw or unfinished match.
func (d *DuelGame) Winner() platformcore.PlayerID {
	return d.winner
}

// Score1 returns Player 1's score.
func (d *DuelGame) Score1() int {
	return d.sides[0].score
}

// Score2 returns Player 2's score.
func (d *DuelGame) Score2() int {
	return d.sides[1].score
}

// DuelPlayerView is one player's visible progress inside a DuelSnapshot.
type DuelPlayerView struct {
	Tiles     []core.Tile
	CursorRow int
	CursorCol int
	Tripped   []core.Pos
	TrapsHit  int
	Rotations int
	Solved    bool
	LockedOut bool
}

// DuelSnapshot carries the duel state to both sessions each tick. Trap
// positions ride along only during the reveal window; afterwards clients
// see just the traps each player has already burned.
type DuelSnapshot struct {
	Tick           uint64
	TickRate       int // Clients need it to turn tick counts into seconds
	GridSize       int
	TimeLeftTicks  int
	TimeTotalTicks int
	RevealLeft     int
	AlertThreshold int
	Hazards        []core.Pos // Populated only while RevealLeft > 0
	Players        [2]DuelPlayerView
	GameOver       bool
	Winner         platformcore.PlayerID
}

// IsGameSnapshot marks DuelSnapshot as a game snapshot.
func (DuelSnapshot) IsGameSnapshot() {}

// Snapshot returns the current duel state for network transmission.
func (d *DuelGame) Snapshot() multiplayer.GameSnapshot {
	snap := DuelSnapshot{
		Tick:           d.tick,
		TickRate:       d.tickRate,
		TimeLeftTicks:  d.timeLeft,
		TimeTotalTicks: d.timeTotal,
		RevealLeft:     d.revealLeft,
		AlertThreshold: d.cfg.Gameplay.AlertThreshold,
		GameOver:       d.gameOver,
		Winner:         d.winner,
	}

	if d.sides[0].board != nil {
		snap.GridSize = d.sides[0].board.Size()
		if d.revealLeft > 0 {
			snap.Hazards = d.sides[0].board.View().Hazards
		}
	}

	for i := range d.sides {
		side := &d.sides[i]
		if side.board == nil {
			continue
		}
		view := side.board.View()
		tripped := make([]core.Pos, 0, len(side.tripped))
		for p := range side.tripped {
			tripped = append(tripped, p)
		}
		sortPositions(tripped)
		snap.Players[i] = DuelPlayerView{
			Tiles:     view.Tiles,
			CursorRow: side.cursor.Row,
			CursorCol: side.cursor.Col,
			Tripped:   tripped,
			TrapsHit:  side.trapsHit,
			Rotations: side.rotations,
			Solved:    side.solved,
			LockedOut: side.lockedOut,
		}
	}

	return snap
}

// sortPositions orders positions row-major for stable snapshots.
func sortPositions(ps []core.Pos) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Row != ps[j].Row {
			return ps[i].Row < ps[j].Row
		}
		return ps[i].Col < ps[j].Col
	})
}
