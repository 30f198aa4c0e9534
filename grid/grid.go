// Package grid converts a canvas size and a cell size into a bounded cell space
package grid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/parameter"
)

// ErrTooSmall is returned when the canvas cannot hold a single cell on an axis
var ErrTooSmall = errors.New("canvas too small for cell size")

// CellSize is the edge length of one grid cell in canvas units
type CellSize int

const (
	Small  CellSize = parameter.CellSizeSmall
	Medium CellSize = parameter.CellSizeMedium
	Large  CellSize = parameter.CellSizeLarge
)

// Sizes lists the selectable cell sizes in cycling order
var Sizes = []CellSize{Small, Medium, Large}

// ParseCellSize resolves a size name, empty selects Medium
func ParseCellSize(name string) (CellSize, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "small":
		return Small, nil
	case "medium", "":
		return Medium, nil
	case "large":
		return Large, nil
	}
	return 0, fmt.Errorf("unknown cell size %q", name)
}

// Valid reports whether s is one of the enumerated sizes
func (s CellSize) Valid() bool {
	switch s {
	case Small, Medium, Large:
		return true
	}
	return false
}

// Next returns the following size in Sizes, wrapping around
func (s CellSize) Next() CellSize {
	for i, size := range Sizes {
		if size == s {
			return Sizes[(i+1)%len(Sizes)]
		}
	}
	return Medium
}

func (s CellSize) String() string {
	switch s {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	}
	return fmt.Sprintf("CellSize(%d)", int(s))
}

// Grid is the bounded coordinate space [0,Columns) x [0,Rows)
type Grid struct {
	Columns, Rows int
	CellSize      CellSize

	// Canvas dimensions the grid was derived from
	Width, Height int
}

// New computes columns and rows by flooring the canvas dimensions over the cell size
func New(width, height int, size CellSize) (Grid, error) {
	if !size.Valid() {
		return Grid{}, fmt.Errorf("grid: invalid cell size %d", int(size))
	}

	g := Grid{
		Columns:  width / int(size),
		Rows:     height / int(size),
		CellSize: size,
		Width:    width,
		Height:   height,
	}
	if g.Columns < 1 || g.Rows < 1 {
		return Grid{}, fmt.Errorf("grid: %dx%d with %s cells: %w", width, height, size, ErrTooSmall)
	}
	return g, nil
}

// Contains reports whether p lies within the grid bounds
func (g Grid) Contains(p core.Point) bool {
	return p.X >= 0 && p.X < g.Columns && p.Y >= 0 && p.Y < g.Rows
}

// Cells returns the total cell count
func (g Grid) Cells() int {
	return g.Columns * g.Rows
}

func (g Grid) String() string {
	return fmt.Sprintf("%dx%d@%s", g.Columns, g.Rows, g.CellSize)
}
