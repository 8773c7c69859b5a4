package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, want 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, '@', ColorCoral)
	if c := s.GetCell(5, 5); c.Rune != '@' || c.Color != ColorCoral {
		t.Errorf("GetCell(5, 5) = %+v, want coral @", c)
	}

	s.Set(3, 3, '#')
	if c := s.GetCell(3, 3); c.Rune != '#' || c.Color != ColorDefault {
		t.Errorf("Set should store an uncoloured rune, got %+v", c)
	}

	// Out of bounds writes are dropped.
	for _, p := range [][2]int{{-1, 0}, {10, 0}, {0, -1}, {0, 10}} {
		s.SetColor(p[0], p[1], 'X', ColorRed)
		if c := s.GetCell(p[0], p[1]); c != blankCell {
			t.Errorf("GetCell(%d, %d) = %+v, want blank", p[0], p[1], c)
		}
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillColor('~', ColorSky)

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("after Clear, want blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColor(2, 1, "Score: 42", ColorWhite)

	if got := strings.Split(s.String(), "\n")[1]; !strings.HasPrefix(got[2:], "Score: 42") {
		t.Errorf("row 1 = %q", got)
	}
	if c := s.GetCell(2, 1); c.Color != ColorWhite {
		t.Errorf("text colour = %v, want white", c.Color)
	}

	// Clipped at the right edge.
	s.DrawTextColor(18, 0, "Best", ColorGold)
	if s.GetCell(18, 0).Rune != 'B' || s.GetCell(19, 0).Rune != 'e' {
		t.Error("text should be clipped at the right boundary")
	}
}

func TestScreenFillArea(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillArea(2, 2, 3, 3, '▲', ColorBrown)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '▲' || c.Color != ColorBrown {
				t.Errorf("want brown spike at (%d, %d), got %+v", x, y, c)
			}
		}
	}
	if s.GetCell(1, 1) != blankCell || s.GetCell(5, 5) != blankCell {
		t.Error("FillArea should not touch cells outside the area")
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawHLine(-2, 3, 20, '▀', ColorGrass)

	for x := 0; x < 10; x++ {
		if c := s.GetCell(x, 3); c.Rune != '▀' || c.Color != ColorGrass {
			t.Fatalf("ground line missing at x=%d: %+v", x, c)
		}
	}
	if s.GetCell(0, 2) != blankCell {
		t.Error("DrawHLine should only draw its own row")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(1, 1, 5, 4)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.GetCell(pos[0], pos[1]).Rune; got != want {
			t.Errorf("corner %v = %q, want %q", pos, got, want)
		}
	}
	for x := 2; x < 5; x++ {
		if s.GetCell(x, 1).Rune != '─' || s.GetCell(x, 4).Rune != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.GetCell(1, y).Rune != '│' || s.GetCell(5, y).Rune != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawTextColor(0, 0, "  o  ", ColorDefault)
	s.DrawTextColor(0, 1, " @ ▲ ", ColorDefault)
	s.DrawTextColor(0, 2, "▀▀▀▀▀", ColorDefault)

	if got, want := s.String(), "  o  \n @ ▲ \n▀▀▀▀▀"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Hello", ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize, want 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.String(), "Hello") {
		t.Errorf("content should be preserved, got %q", s.String())
	}

	s.Resize(15, 8)
	rows := strings.Split(s.String(), "\n")
	if !strings.HasPrefix(rows[0], "Hello") {
		t.Errorf("content should be preserved after enlarging, row 0 = %q", rows[0])
	}
	if len(rows) != 8 || len(rows[7]) != 15 {
		t.Errorf("want 8 rows of 15, got %d rows, last %d wide", len(rows), len(rows[7]))
	}
}
