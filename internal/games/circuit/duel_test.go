package circuit

import (
	"math/rand"
	"testing"

	platformcore "github.com/vovakirdan/tui-circuit/internal/core"
	"github.com/vovakirdan/tui-circuit/internal/games/circuit/core"
	"github.com/vovakirdan/tui-circuit/internal/multiplayer"
)

var _ multiplayer.OnlineGame = (*DuelGame)(nil)

func multiInput(p platformcore.PlayerID, actions ...platformcore.Action) platformcore.MultiInputFrame {
	frame := platformcore.NewInputFrame()
	for _, a := range actions {
		frame.Set(a)
	}
	multi := platformcore.NewMultiInputFrame()
	multi.SetPlayer(p, frame)
	return multi
}

func TestDuelBoardsIdentical(t *testing.T) {
	d := NewDuel()
	d.Reset(testConfig(9000))

	v1 := d.sides[0].board.View()
	v2 := d.sides[1].board.View()

	if v1.Size != v2.Size {
		t.Fatalf("Board sizes differ: %d vs %d", v1.Size, v2.Size)
	}
	for i := range v1.Tiles {
		if v1.Tiles[i] != v2.Tiles[i] {
			t.Fatalf("Tile %d differs: %v vs %v", i, v1.Tiles[i], v2.Tiles[i])
		}
	}
	if len(v1.Hazards) != len(v2.Hazards) {
		t.Fatalf("Trap counts differ: %d vs %d", len(v1.Hazards), len(v2.Hazards))
	}
	for i := range v1.Hazards {
		if v1.Hazards[i] != v2.Hazards[i] {
			t.Errorf("Trap %d differs: %v vs %v", i, v1.Hazards[i], v2.Hazards[i])
		}
	}
}

func TestDuelDeterminism(t *testing.T) {
	d1 := NewDuel()
	d1.Reset(testConfig(77))
	d2 := NewDuel()
	d2.Reset(testConfig(77))

	for i := 0; i < 200; i++ {
		var in platformcore.MultiInputFrame
		switch {
		case i == 20:
			in = multiInput(platformcore.Player1, platformcore.ActionDown)
		case i == 40:
			in = multiInput(platformcore.Player2, platformcore.ActionRight)
		case i == 150:
			in = multiInput(platformcore.Player1, platformcore.ActionConfirm)
		default:
			in = platformcore.NewMultiInputFrame()
		}
		d1.StepMulti(in)
		d2.StepMulti(in)
	}

	s1 := d1.Snapshot().(DuelSnapshot)
	s2 := d2.Snapshot().(DuelSnapshot)

	if s1.Tick != s2.Tick || s1.TimeLeftTicks != s2.TimeLeftTicks {
		t.Errorf("Clock mismatch: tick %d/%d, time %d/%d", s1.Tick, s2.Tick, s1.TimeLeftTicks, s2.TimeLeftTicks)
	}
	for i := range s1.Players {
		p1, p2 := s1.Players[i], s2.Players[i]
		if p1.CursorRow != p2.CursorRow || p1.CursorCol != p2.CursorCol {
			t.Errorf("Player %d cursor mismatch: (%d,%d) vs (%d,%d)",
				i, p1.CursorRow, p1.CursorCol, p2.CursorRow, p2.CursorCol)
		}
		if p1.Rotations != p2.Rotations {
			t.Errorf("Player %d rotations mismatch: %d vs %d", i, p1.Rotations, p2.Rotations)
		}
		for j := range p1.Tiles {
			if p1.Tiles[j] != p2.Tiles[j] {
				t.Fatalf("Player %d tile %d mismatch", i, j)
			}
		}
	}
}

func TestDuelRevealFreezesClock(t *testing.T) {
	d := NewDuel()
	d.Reset(testConfig(81))

	if d.revealLeft <= 0 {
		t.Fatal("Duel should open with a trap reveal window")
	}
	startClock := d.timeLeft

	snap := d.Snapshot().(DuelSnapshot)
	if len(snap.Hazards) == 0 {
		t.Error("Snapshot should expose traps during the reveal")
	}

	d.StepMulti(platformcore.NewMultiInputFrame())
	if d.timeLeft != startClock {
		t.Errorf("Clock should wait out the reveal: %d -> %d", startClock, d.timeLeft)
	}

	d.revealLeft = 0
	snap = d.Snapshot().(DuelSnapshot)
	if len(snap.Hazards) != 0 {
		t.Error("Snapshot must hide trap positions after the reveal")
	}

	d.StepMulti(platformcore.NewMultiInputFrame())
	if d.timeLeft != startClock-1 {
		t.Errorf("Clock should drain after the reveal: %d -> %d", startClock, d.timeLeft)
	}
}

func TestDuelFirstSolveWins(t *testing.T) {
	d := NewDuel()
	d.Reset(testConfig(83))
	d.revealLeft = 0

	// Hand Player 2 a board that one rotation closes
	d.sides[1].board = core.Generate(1, 0, rand.New(rand.NewSource(1)))
	d.sides[1].cursor = d.sides[1].board.Entry()

	d.StepMulti(multiInput(platformcore.Player2, platformcore.ActionConfirm))

	if !d.IsGameOver() {
		t.Fatal("Closing the circuit should end the duel")
	}
	if d.Winner() != platformcore.Player2 {
		t.Errorf("Winner should be P2, got %v", d.Winner())
	}
	if !d.sides[1].solved {
		t.Error("Winning side should be marked solved")
	}
	if d.Score2() <= 0 {
		t.Errorf("Winner should bank clear points, got %d", d.Score2())
	}
	if d.Score1() != 0 {
		t.Errorf("Loser banks nothing, got %d", d.Score1())
	}
}

func TestDuelTrapDisqualifies(t *testing.T) {
	d := NewDuel()
	d.Reset(testConfig(85))
	d.revealLeft = 0

	hazards := d.sides[1].board.View().Hazards
	if len(hazards) == 0 {
		t.Fatal("Duel boards should carry traps")
	}
	d.sides[1].cursor = hazards[0]

	d.StepMulti(multiInput(platformcore.Player2, platformcore.ActionConfirm))

	if !d.IsGameOver() {
		t.Fatal("Tracing out should end the duel")
	}
	if d.Winner() != platformcore.Player1 {
		t.Errorf("Opponent should take the match, got %v", d.Winner())
	}
	if !d.sides[1].lockedOut {
		t.Error("Disqualified side should be locked out")
	}
	if d.sides[1].trapsHit != 1 {
		t.Errorf("Expected 1 trap hit, got %d", d.sides[1].trapsHit)
	}

	snap := d.Snapshot().(DuelSnapshot)
	if len(snap.Players[1].Tripped) != 1 {
		t.Errorf("Snapshot should list the burned trap, got %v", snap.Players[1].Tripped)
	}
}

func TestDuelTimeoutTieBreak(t *testing.T) {
	cases := []struct {
		name           string
		traps1, traps2 int
		rot1, rot2     int
		want           platformcore.PlayerID
	}{
		{"fewer traps wins", 0, 1, 9, 2, platformcore.Player1},
		{"traps beat rotations", 2, 1, 1, 8, platformcore.Player2},
		{"fewer rotations breaks trap tie", 1, 1, 3, 5, platformcore.Player1},
		{"dead even is a draw", 1, 1, 4, 4, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDuel()
			d.Reset(testConfig(87))
			d.revealLeft = 0
			d.timeLeft = 1
			d.sides[0].trapsHit = tc.traps1
			d.sides[1].trapsHit = tc.traps2
			d.sides[0].rotations = tc.rot1
			d.sides[1].rotations = tc.rot2

			d.StepMulti(platformcore.NewMultiInputFrame())

			if !d.IsGameOver() {
				t.Fatal("Timeout should end the duel")
			}
			if d.Winner() != tc.want {
				t.Errorf("Expected winner %v, got %v", tc.want, d.Winner())
			}
		})
	}
}

func TestDuelCursorsIndependent(t *testing.T) {
	d := NewDuel()
	d.Reset(testConfig(91))

	in := platformcore.NewMultiInputFrame()
	f1 := platformcore.NewInputFrame()
	f1.Set(platformcore.ActionDown)
	f2 := platformcore.NewInputFrame()
	f2.Set(platformcore.ActionRight)
	in.SetPlayer(platformcore.Player1, f1)
	in.SetPlayer(platformcore.Player2, f2)

	d.StepMulti(in)

	if d.sides[0].cursor != core.P(1, 0) {
		t.Errorf("P1 cursor should be at (1,0), got %v", d.sides[0].cursor)
	}
	if d.sides[1].cursor != core.P(0, 1) {
		t.Errorf("P2 cursor should be at (0,1), got %v", d.sides[1].cursor)
	}

	// Cursors clamp at the board edge
	for i := 0; i < 20; i++ {
		d.StepMulti(in)
	}
	size := d.sides[0].board.Size()
	if d.sides[0].cursor.Row != size-1 {
		t.Errorf("P1 cursor should clamp at row %d, got %d", size-1, d.sides[0].cursor.Row)
	}
	if d.sides[1].cursor.Col != size-1 {
		t.Errorf("P2 cursor should clamp at col %d, got %d", size-1, d.sides[1].cursor.Col)
	}
}
