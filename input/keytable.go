package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Named keys (arrows, Enter, Esc, Ctrl-*)
	SpecialKeys map[tcell.Key]Action

	// Printable characters
	Runes map[rune]Action
}

// DefaultKeyTable returns the default bindings: arrows, wasd and hjkl steer
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionUp,
			tcell.KeyDown:   ActionDown,
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyEnter:  ActionRestart,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},

		Runes: map[rune]Action{
			'w': ActionUp,
			's': ActionDown,
			'a': ActionLeft,
			'd': ActionRight,

			'k': ActionUp,
			'j': ActionDown,
			'h': ActionLeft,
			'l': ActionRight,

			'r': ActionRestart,
			'z': ActionCycleSize,
			'1': ActionSizeSmall,
			'2': ActionSizeMedium,
			'3': ActionSizeLarge,
			't': ActionToggleTheme,
			'p': ActionTogglePause,
			' ': ActionTogglePause,
			'm': ActionToggleMute,
			'q': ActionQuit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Resolve maps a key event to an action, ActionNone when unbound
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.ResolveRune(ev.Rune())
	}
	return kt.SpecialKeys[ev.Key()]
}

// ResolveRune maps a printable character, used by frontends without tcell key events
func (kt *KeyTable) ResolveRune(r rune) Action {
	return kt.Runes[r]
}
