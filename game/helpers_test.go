package game

import (
	"testing"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/grid"
)

// scriptedSource replays fixed values modulo n
type scriptedSource struct {
	values []int
	calls  int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v % n
}

// newTestState builds a running state with an explicit body, target and velocity
func newTestState(t *testing.T, cols, rows int, body []core.Point, target, velocity core.Point) *State {
	t.Helper()
	if len(body) == 0 {
		t.Fatal("test state needs at least one body cell")
	}
	return &State{
		grid:     grid.Grid{Columns: cols, Rows: rows, CellSize: grid.Medium, Width: cols * 40, Height: rows * 40},
		placer:   NewSeededPlacer(42),
		body:     append([]core.Point(nil), body...),
		target:   target,
		velocity: velocity,
		status:   StatusRunning,
	}
}

func pts(xy ...int) []core.Point {
	out := make([]core.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, core.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}
