package core

import "testing"

// player is the runner standing on a 320px ground line.
var player = NewRect(100, 280, 40, 40)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"obstacle overlapping front", NewRect(130, 290, 25, 30), true},
		{"obstacle ahead", NewRect(200, 290, 25, 30), false},
		{"obstacle behind", NewRect(40, 290, 25, 30), false},
		{"obstacle touching right edge", NewRect(140, 290, 25, 30), false},
		{"obstacle touching left edge", NewRect(75, 290, 25, 30), false},
		{"coin touching head", NewRect(110, 260, 20, 20), false},
		{"coin overlapping head", NewRect(110, 261, 20, 20), true},
		{"coin inside player", NewRect(110, 290, 10, 10), true},
		{"tall obstacle under floating player", NewRect(120, 250, 25, 70), true},
		{"fractional overlap", NewRect(139.5, 280, 25, 40), true},
		{"fractional gap", NewRect(140.001, 280, 25, 40), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := player.Intersects(tc.b); got != tc.want {
				t.Errorf("Intersects() = %v, want %v", got, tc.want)
			}
			if got := tc.b.Intersects(player); got != tc.want {
				t.Errorf("reversed Intersects() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRectIntersectsSelf(t *testing.T) {
	if !player.Intersects(player) {
		t.Error("a rectangle with positive area should overlap itself")
	}

	empty := NewRect(3, 4, 0, 0)
	if empty.Intersects(empty) {
		t.Error("a zero-area rectangle should never collide with itself")
	}
}

func TestRectContains(t *testing.T) {
	canvas := NewRect(0, 0, 800, 400)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"centre", 400, 200, true},
		{"origin", 0, 0, true},
		{"right edge exclusive", 800, 200, false},
		{"bottom edge exclusive", 400, 400, false},
		{"scrolled off left", -0.5, 200, false},
		{"above the sky", 400, -3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := canvas.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	if player.Right() != 140 {
		t.Errorf("Right() = %v, want 140", player.Right())
	}
	if player.Bottom() != 320 {
		t.Errorf("Bottom() = %v, want 320", player.Bottom())
	}

	coin := NewRect(500, 150, 20, 20)
	cx, cy := coin.Center()
	if cx != 510 || cy != 160 {
		t.Errorf("Center() = (%v, %v), want (510, 160)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{10, 0, 10, 10},
		{120, 1, 80, 80}, // panel wider than the terminal
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tc.val, tc.lo, tc.hi, got, tc.want)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, want float64
	}{
		{0.4, 0, 1, 0.4},
		{-0.2, 0, 1, 0},
		{1.7, 0, 1, 1},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.want {
			t.Errorf("ClampF(%v, %v, %v) = %v, want %v", tc.val, tc.lo, tc.hi, got, tc.want)
		}
	}
}
