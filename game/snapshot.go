package game

import (
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/grid"
)

// Snapshot is an immutable view of a run for renderers and listeners
// Body is a private copy; later ticks never alias it
type Snapshot struct {
	Body     []core.Point
	Target   core.Point
	Velocity core.Point
	Score    int
	Best     int
	Status   Status
	Cause    EndCause

	Columns, Rows int
	CellSize      grid.CellSize
	CanvasWidth   int
	CanvasHeight  int

	// Presentation flags owned by the loop
	Dark   bool
	Paused bool
	RunID  string
}

// Snapshot copies the run state, presentation fields are left zero for the loop to fill
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Body:         s.Body(),
		Target:       s.target,
		Velocity:     s.velocity,
		Score:        s.score,
		Status:       s.status,
		Cause:        s.cause,
		Columns:      s.grid.Columns,
		Rows:         s.grid.Rows,
		CellSize:     s.grid.CellSize,
		CanvasWidth:  s.grid.Width,
		CanvasHeight: s.grid.Height,
	}
}

// Head returns the first body cell, zero Point for an empty body
func (s Snapshot) Head() core.Point {
	if len(s.Body) == 0 {
		return core.Point{}
	}
	return s.Body[0]
}

// Ended reports whether the run is over
func (s Snapshot) Ended() bool {
	return s.Status == StatusEnded
}
