package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the per-frame device state the game samples.
type Input interface {
	IsKeyPressed(k ebiten.Key) bool
	IsKeyJustPressed(k ebiten.Key) bool
	PointerPressed() bool     // Left mouse button or any touch
	PointerJustPressed() bool // Left mouse button or a new touch this frame
}

// ebitenInput reads the real devices.
type ebitenInput struct {
	touches []ebiten.TouchID
}

// IsKeyPressed reports whether k is held down.
func (in *ebitenInput) IsKeyPressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

// IsKeyJustPressed reports whether k went down this frame.
func (in *ebitenInput) IsKeyJustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

// PointerPressed reports whether the left mouse button or any touch is down.
func (in *ebitenInput) PointerPressed() bool {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return true
	}
	in.touches = ebiten.AppendTouchIDs(in.touches[:0])
	return len(in.touches) > 0
}

// PointerJustPressed reports a left click or a new touch this frame.
func (in *ebitenInput) PointerJustPressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	in.touches = inpututil.AppendJustPressedTouchIDs(in.touches[:0])
	return len(in.touches) > 0
}
