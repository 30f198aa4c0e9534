package input

import "github.com/lixenwraith/vi-snake/game"

// Action is a frontend-independent command produced by a key
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionRestart
	ActionCycleSize
	ActionSizeSmall
	ActionSizeMedium
	ActionSizeLarge
	ActionToggleTheme
	ActionTogglePause
	ActionToggleMute
	ActionQuit
)

// actionRegistry maps canonical action names used in keymap files
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"up":    ActionUp,
	"down":  ActionDown,
	"left":  ActionLeft,
	"right": ActionRight,

	"restart":     ActionRestart,
	"cycle_size":  ActionCycleSize,
	"size_small":  ActionSizeSmall,
	"size_medium": ActionSizeMedium,
	"size_large":  ActionSizeLarge,

	"toggle_theme": ActionToggleTheme,
	"toggle_pause": ActionTogglePause,
	"toggle_mute":  ActionToggleMute,
	"quit":         ActionQuit,
}

var actionNames = func() map[Action]string {
	m := make(map[Action]string, len(actionRegistry))
	for name, a := range actionRegistry {
		m[a] = name
	}
	return m
}()

// ActionByName resolves a keymap action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Direction maps movement actions to game directions
func (a Action) Direction() (game.Direction, bool) {
	switch a {
	case ActionUp:
		return game.DirUp, true
	case ActionDown:
		return game.DirDown, true
	case ActionLeft:
		return game.DirLeft, true
	case ActionRight:
		return game.DirRight, true
	}
	return game.DirNone, false
}
