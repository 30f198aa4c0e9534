package render

import "github.com/lixenwraith/vi-snake/core"

// Terminal cells are roughly twice as tall as wide, one grid cell spans two columns
const (
	CellWidth = 2
	HUDHeight = 1
	border    = 1
)

// Layout positions the board inside the terminal
type Layout struct {
	X, Y          int // Top-left corner of the border
	Width, Height int // Border box, HUD excluded
	Columns, Rows int
}

// ComputeLayout centers a cols x rows board, false when the screen cannot hold it
func ComputeLayout(screenW, screenH, cols, rows int) (Layout, bool) {
	l := Layout{
		Width:   cols*CellWidth + 2*border,
		Height:  rows + 2*border,
		Columns: cols,
		Rows:    rows,
	}
	if l.Width > screenW || l.Height+HUDHeight > screenH {
		return l, false
	}
	l.X = (screenW - l.Width) / 2
	l.Y = (screenH - l.Height - HUDHeight) / 2
	return l, true
}

// CellOrigin returns the screen position of the left column of grid cell p
func (l Layout) CellOrigin(p core.Point) (int, int) {
	return l.X + border + p.X*CellWidth, l.Y + border + p.Y
}

// HUDRow is the screen row below the border
func (l Layout) HUDRow() int {
	return l.Y + l.Height
}

// CenterX returns the x that centers text of width w on the board
func (l Layout) CenterX(w int) int {
	return l.X + (l.Width-w)/2
}

// MinSize returns the terminal size needed for a cols x rows board
func MinSize(cols, rows int) (int, int) {
	return cols*CellWidth + 2*border, rows + 2*border + HUDHeight
}
