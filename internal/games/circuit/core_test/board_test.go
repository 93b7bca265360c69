package core_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-circuit/internal/games/circuit/core"
)

func TestBoardRotateOutOfBounds(t *testing.T) {
	b := core.Generate(5, 3, rand.New(rand.NewSource(8)))
	before := b.View()

	bad := []core.Pos{
		core.P(-1, 0),
		core.P(0, -1),
		core.P(5, 0),
		core.P(0, 5),
		core.P(99, 99),
	}
	for _, p := range bad {
		err := b.Rotate(p)
		if !errors.Is(err, core.ErrOutOfBounds) {
			t.Errorf("Rotate(%v) error = %v, want ErrOutOfBounds", p, err)
		}
	}

	// Rejected rotations must leave the board untouched.
	after := b.View()
	for i := range before.Tiles {
		if before.Tiles[i] != after.Tiles[i] {
			t.Fatalf("rejected rotation changed tile %d: %s -> %s", i, before.Tiles[i], after.Tiles[i])
		}
	}
}

func TestBoardRotateInBounds(t *testing.T) {
	b := core.Generate(5, 3, rand.New(rand.NewSource(8)))
	p := core.P(2, 3)

	before, err := b.TileAt(p)
	if err != nil {
		t.Fatalf("TileAt(%v) failed: %v", p, err)
	}
	if err := b.Rotate(p); err != nil {
		t.Fatalf("Rotate(%v) failed: %v", p, err)
	}
	after, _ := b.TileAt(p)
	if after != before.RotateCW() {
		t.Errorf("tile after rotation = %s, want %s", after, before.RotateCW())
	}
}

func TestBoardRotateEndpoints(t *testing.T) {
	b := core.Generate(5, 3, rand.New(rand.NewSource(8)))

	// Endpoints rotate like any cell; their wildcard connectivity makes it
	// cosmetic, so solvedness must not change.
	solved := b.Solved()
	if err := b.Rotate(b.Entry()); err != nil {
		t.Fatalf("rotating the entry failed: %v", err)
	}
	if err := b.Rotate(b.Exit()); err != nil {
		t.Fatalf("rotating the exit failed: %v", err)
	}
	if b.Solved() != solved {
		t.Error("rotating wildcard endpoints changed solvedness")
	}
}

func TestBoardTileAtOutOfBounds(t *testing.T) {
	b := core.Generate(3, 1, rand.New(rand.NewSource(2)))
	if _, err := b.TileAt(core.P(3, 1)); !errors.Is(err, core.ErrOutOfBounds) {
		t.Errorf("TileAt out of bounds error = %v, want ErrOutOfBounds", err)
	}
}

func TestBoardViewIsACopy(t *testing.T) {
	b := core.Generate(4, 2, rand.New(rand.NewSource(6)))

	v := b.View()
	original := v.Tiles[5]
	v.Tiles[5] = v.Tiles[5].RotateCW()

	fresh := b.View()
	if fresh.Tiles[5] != original {
		t.Error("mutating a view must not affect the board")
	}
}

func TestBoardViewHazardsSorted(t *testing.T) {
	b := core.Generate(6, 5, rand.New(rand.NewSource(13)))
	v := b.View()

	if len(v.Hazards) != b.HazardCount() {
		t.Fatalf("view lists %d hazards, board has %d", len(v.Hazards), b.HazardCount())
	}
	for i := 1; i < len(v.Hazards); i++ {
		a, c := v.Hazards[i-1], v.Hazards[i]
		if a.Row > c.Row || (a.Row == c.Row && a.Col >= c.Col) {
			t.Errorf("hazards not in row-major order: %v before %v", a, c)
		}
	}
	for _, h := range v.Hazards {
		if !v.IsHazard(h.Row, h.Col) {
			t.Errorf("view denies hazard at %v", h)
		}
	}
}

func TestBoardSolvedFlipsAfterFix(t *testing.T) {
	// Rotate every cell through all four positions looking for a solving
	// state, proving Solved responds to Rotate through the Board API.
	b := core.Generate(2, 0, rand.New(rand.NewSource(21)))
	if b.Solved() {
		t.Fatal("board should start unsolved")
	}

	solvedOnce := false
	cells := []core.Pos{core.P(0, 1), core.P(1, 0)}
	for _, p := range cells {
		for turn := 0; turn < 4 && !solvedOnce; turn++ {
			if err := b.Rotate(p); err != nil {
				t.Fatalf("Rotate(%v) failed: %v", p, err)
			}
			if b.Solved() {
				solvedOnce = true
			}
		}
	}
	if !solvedOnce {
		t.Error("rotating the two interior cells through all positions should solve a 2x2 board")
	}
}
