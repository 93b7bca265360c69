package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(40, 12)

	if s.Width() != 40 {
		t.Errorf("Width() = %d, expected 40", s.Width())
	}
	if s.Height() != 12 {
		t.Errorf("Height() = %d, expected 12", s.Height())
	}

	// Fresh screens are spaces in the default color.
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("new screen cell at (%d, %d) = %+v, expected default space", x, y, cell)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, '┼')
	if s.Get(5, 5) != '┼' {
		t.Errorf("Get(5, 5) = %q, expected '┼'", s.Get(5, 5))
	}
	if c := s.GetCell(5, 5).Color; c != ColorDefault {
		t.Errorf("Set should use the default color, got %d", c)
	}

	// Out of bounds writes are silent.
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	// Out of bounds reads return a default space.
	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
	if cell := s.GetCell(0, 100); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("out of bounds GetCell = %+v, expected default space", cell)
	}
}

func TestScreenSetWithColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetWithColor(2, 3, 'T', ColorBrightRed)
	cell := s.GetCell(2, 3)
	if cell.Rune != 'T' {
		t.Errorf("GetCell rune = %q, expected 'T'", cell.Rune)
	}
	if cell.Color != ColorBrightRed {
		t.Errorf("GetCell color = %d, expected ColorBrightRed", cell.Color)
	}

	// Overwriting resets the color too.
	s.Set(2, 3, '─')
	if cell := s.GetCell(2, 3); cell.Color != ColorDefault {
		t.Errorf("Set should reset color to default, got %d", cell.Color)
	}

	s.SetWithColor(-5, 3, 'X', ColorCyan) // silent out of bounds
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(6, 6)

	s.SetWithColor(1, 1, 'E', ColorGreen)
	s.Clear()
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("after Clear, cell at (%d, %d) = %+v, expected default space", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "CIRCUIT")

	for i, ch := range "CIRCUIT" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text is clipped at the right boundary.
	s.DrawText(18, 0, "LONG")
	if s.Get(18, 0) != 'L' || s.Get(19, 0) != 'O' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextWithColor(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextWithColor(3, 2, "ALERT", ColorBrightYellow)

	for i, ch := range "ALERT" {
		cell := s.GetCell(3+i, 2)
		if cell.Rune != ch {
			t.Errorf("expected %q at (%d, 2), got %q", ch, 3+i, cell.Rune)
		}
		if cell.Color != ColorBrightYellow {
			t.Errorf("expected ColorBrightYellow at (%d, 2), got %d", 3+i, cell.Color)
		}
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Error("DrawTextCentered: text not at expected position")
	}

	s.DrawTextCenteredWithColor(3, "GO", ColorBrightGreen)
	if cell := s.GetCell(x, 3); cell.Rune != 'G' || cell.Color != ColorBrightGreen {
		t.Errorf("centered colored text: cell = %+v", cell)
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '░')

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '░' {
				t.Errorf("DrawRect: expected '░' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not touch cells outside the rect")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(1, 1, 5, 4)
	s.DrawBox(r)

	corners := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'}, {5, 1, '┐'}, {1, 4, '└'}, {5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.want {
			t.Errorf("corner at (%d, %d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
}

func TestScreenDrawLines(t *testing.T) {
	s := NewScreen(10, 10)

	s.DrawHLine(2, 2, 5, '─')
	for x := 2; x < 7; x++ {
		if s.Get(x, 2) != '─' {
			t.Errorf("DrawHLine: expected '─' at (%d, 2), got %q", x, s.Get(x, 2))
		}
	}

	s.DrawVLine(3, 3, 4, '│')
	for y := 3; y < 7; y++ {
		if s.Get(3, y) != '│' {
			t.Errorf("DrawVLine: expected '│' at (3, %d), got %q", y, s.Get(3, y))
		}
	}

	s.DrawHLineWithColor(0, 8, 10, '═', ColorGray)
	if cell := s.GetCell(4, 8); cell.Rune != '═' || cell.Color != ColorGray {
		t.Errorf("colored line: cell = %+v", cell)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawTextWithColor(0, 1, "BBBBB", ColorMagenta)
	s.DrawText(0, 2, "CCCCC")

	// Colors are styling metadata; String renders runes only.
	want := "AAAAA\nBBBBB\nCCCCC"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Entry")
	s.DrawText(0, 5, "Exit")

	// Shrinking preserves the top-left content.
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("after resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Entry") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}

	// Growing keeps old content in place.
	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Entry") {
		t.Errorf("content should survive enlarging, row 0 = %q", s.Row(0))
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len([]rune(row)) != 10 {
		t.Errorf("row length should be 10, got %d", len([]rune(row)))
	}

	if s.Row(-1) != strings.Repeat(" ", 10) {
		t.Errorf("out of bounds row should be spaces, got %q", s.Row(-1))
	}
}
