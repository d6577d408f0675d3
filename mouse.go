package gameinput

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MouseKeyboard reads the mouse and keyboard of an ebiten game window.
//
// It keeps no state of its own: ebiten samples input once per tick and
// inpututil exposes the per-tick transition flags, so edge detection is
// fully delegated to the platform. Query it from Game.Update only.
type MouseKeyboard struct {
	// InteractKeys are keyboard keys that fire the interact trigger in
	// addition to the left mouse button. Empty means mouse only.
	InteractKeys []ebiten.Key
}

var _ Reader = MouseKeyboard{}

// InteractPressed reports a left-click or configured-key press edge.
func (m MouseKeyboard) InteractPressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	for _, k := range m.InteractKeys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// PointerPosition returns the cursor location within the game window,
// passed through untouched apart from widening to float64.
func (m MouseKeyboard) PointerPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}
