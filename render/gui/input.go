package gui

import (
	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lixenwraith/vi-snake/input"
)

// specialKeys translates window keys that produce no character into their terminal names
// so one KeyTable serves both frontends
var specialKeys = []struct {
	raylib int32
	key    tcell.Key
}{
	{rl.KeyUp, tcell.KeyUp},
	{rl.KeyDown, tcell.KeyDown},
	{rl.KeyLeft, tcell.KeyLeft},
	{rl.KeyRight, tcell.KeyRight},
	{rl.KeyEnter, tcell.KeyEnter},
	{rl.KeyEscape, tcell.KeyEscape},
}

// PollActions drains this frame's key presses in press order
func PollActions(kt *input.KeyTable) []input.Action {
	var actions []input.Action

	for _, k := range specialKeys {
		if rl.IsKeyPressed(k.raylib) {
			if a := kt.SpecialKeys[k.key]; a != input.ActionNone {
				actions = append(actions, a)
			}
		}
	}

	for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
		if a := kt.ResolveRune(ch); a != input.ActionNone {
			actions = append(actions, a)
		}
	}

	return actions
}
