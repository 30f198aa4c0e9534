package game

import "github.com/lixenwraith/vi-snake/core"

// Direction is a logical movement input
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Vector returns the unit step for d, false for DirNone and out of range values
func (d Direction) Vector() (core.Point, bool) {
	switch d {
	case DirUp:
		return core.Point{X: 0, Y: -1}, true
	case DirDown:
		return core.Point{X: 0, Y: 1}, true
	case DirLeft:
		return core.Point{X: -1, Y: 0}, true
	case DirRight:
		return core.Point{X: 1, Y: 0}, true
	}
	return core.Point{}, false
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "invalid"
}
