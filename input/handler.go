package input

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/grid"
)

// Controller is the subset of the game loop that input drives
type Controller interface {
	HandleDirection(dir game.Direction) bool
	Reset()
	SetCellSize(size grid.CellSize) error
	CycleSize() error
	TogglePause() bool
	ToggleTheme() bool
	Redraw()
}

// Muter toggles sound output
type Muter interface {
	ToggleMute() bool
}

// MuteView shows the mute state, renderers implement it
type MuteView interface {
	SetMuted(muted bool)
}

// InputHandler turns key events into loop commands
type InputHandler struct {
	keys  *KeyTable
	loop  Controller
	sound Muter
	view  MuteView
}

// NewInputHandler creates a handler; sound and view may be nil
func NewInputHandler(keys *KeyTable, loop Controller, sound Muter, view MuteView) *InputHandler {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &InputHandler{
		keys:  keys,
		loop:  loop,
		sound: sound,
		view:  view,
	}
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.Dispatch(h.keys.Resolve(ev))
	case *tcell.EventResize:
		h.loop.Redraw()
	}
	return true
}

// Dispatch runs one action and returns false on quit
func (h *InputHandler) Dispatch(a Action) bool {
	if dir, ok := a.Direction(); ok {
		h.loop.HandleDirection(dir)
		return true
	}

	switch a {
	case ActionQuit:
		return false
	case ActionRestart:
		h.loop.Reset()
	case ActionCycleSize:
		if err := h.loop.CycleSize(); err != nil {
			log.Printf("cycle size: %v", err)
		}
	case ActionSizeSmall:
		h.setSize(grid.Small)
	case ActionSizeMedium:
		h.setSize(grid.Medium)
	case ActionSizeLarge:
		h.setSize(grid.Large)
	case ActionToggleTheme:
		h.loop.ToggleTheme()
	case ActionTogglePause:
		h.loop.TogglePause()
	case ActionToggleMute:
		h.toggleMute()
	}
	return true
}

func (h *InputHandler) setSize(size grid.CellSize) {
	if err := h.loop.SetCellSize(size); err != nil {
		log.Printf("set size %s: %v", size, err)
	}
}

func (h *InputHandler) toggleMute() {
	if h.sound == nil {
		return
	}
	muted := h.sound.ToggleMute()
	if h.view != nil {
		h.view.SetMuted(muted)
	}
	h.loop.Redraw()
}
