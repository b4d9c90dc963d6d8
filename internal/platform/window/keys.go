package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/crossroad/internal/core"
)

// keyBindings maps keyboard keys to game actions, in polling order.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionQuit},
	{ebiten.KeyQ, core.ActionQuit},
}

// actionFor returns the action bound to k.
func actionFor(k ebiten.Key) core.Action {
	for _, b := range keyBindings {
		if b.key == k {
			return b.action
		}
	}
	return core.ActionNone
}

// pollInput adds this frame's key presses to frame.
// Only fresh presses count, so a held key hops once.
// Returns true if a quit key was pressed.
func pollInput(frame *core.InputFrame) bool {
	quit := false
	for _, b := range keyBindings {
		if !inpututil.IsKeyJustPressed(b.key) {
			continue
		}
		if b.action == core.ActionQuit {
			quit = true
			continue
		}
		frame.Set(b.action)
	}
	return quit
}
