package game

import (
	"log"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/grid"
	"github.com/lixenwraith/vi-snake/parameter"
)

// Status is the run state, Ended is terminal until a new State replaces it
type Status uint8

const (
	StatusRunning Status = iota
	StatusEnded
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "Running"
	case StatusEnded:
		return "Ended"
	}
	return "Unknown"
}

// EndCause records which collision ended the run
type EndCause uint8

const (
	CauseNone EndCause = iota
	CauseWall
	CauseSelf
)

func (c EndCause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	}
	return "unknown"
}

// Outcome classifies what a single Tick did
type Outcome uint8

const (
	// OutcomeIdle means no velocity was set yet, nothing moved
	OutcomeIdle Outcome = iota
	// OutcomeMoved means the body advanced without growth
	OutcomeMoved
	// OutcomeConsumed means the head reached the target, score and length grew
	OutcomeConsumed
	// OutcomeEnded means this tick collided and ended the run
	OutcomeEnded
	// OutcomeSkipped means Tick was called on an already ended run
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeMoved:
		return "moved"
	case OutcomeConsumed:
		return "consumed"
	case OutcomeEnded:
		return "ended"
	case OutcomeSkipped:
		return "skipped"
	}
	return "unknown"
}

// StepResult reports one Tick
type StepResult struct {
	Outcome Outcome
	Cause   EndCause

	// Fallback is set when the replacement target had to overlap the body
	Fallback bool
}

// State is one run: body, pending velocity, target, score and status
// It is owned by a single goroutine and never shared
type State struct {
	grid   grid.Grid
	placer *Placer

	body     []core.Point // Head first
	velocity core.Point   // Pending until the next Tick reads it
	target   core.Point
	score    int
	status   Status
	cause    EndCause

	initialFallback bool
}

// NewState starts a run on g: single-cell body at the origin, no velocity, target placed
func NewState(g grid.Grid, placer *Placer) *State {
	s := &State{
		grid:   g,
		placer: placer,
		body:   make([]core.Point, 1, 16),
		status: StatusRunning,
	}
	s.body[0] = core.Point{X: parameter.OriginX, Y: parameter.OriginY}
	s.initialFallback = s.placeTarget()
	return s
}

// SetPendingVelocity queues dir for the next tick, last accepted input wins
// Rejects invalid directions, input after the run ended, and steps into the neck
func (s *State) SetPendingVelocity(dir Direction) bool {
	if s.status == StatusEnded {
		return false
	}

	v, ok := dir.Vector()
	if !ok {
		return false
	}

	if len(s.body) > 1 && s.body[0].Add(v) == s.body[1] {
		return false
	}

	s.velocity = v
	return true
}

// Tick advances the body one cell along the pending velocity
func (s *State) Tick() StepResult {
	if s.status == StatusEnded {
		return StepResult{Outcome: OutcomeSkipped, Cause: s.cause}
	}

	if s.velocity.IsZero() {
		return StepResult{Outcome: OutcomeIdle}
	}

	next := s.body[0].Add(s.velocity)

	if !s.grid.Contains(next) {
		return s.end(CauseWall, next)
	}

	// Index 0 is the cell being vacated this tick
	if core.IndexOf(s.body, next, 1) >= 0 {
		return s.end(CauseSelf, next)
	}

	s.body = append(s.body, core.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = next

	if next == s.target {
		s.score++
		log.Printf("[GAME] Target eaten at %v, score %d", next, s.score)
		return StepResult{Outcome: OutcomeConsumed, Fallback: s.placeTarget()}
	}

	s.body = s.body[:len(s.body)-1]
	return StepResult{Outcome: OutcomeMoved}
}

func (s *State) end(cause EndCause, at core.Point) StepResult {
	s.status = StatusEnded
	s.cause = cause
	log.Printf("[GAME] Game over, hit %s at %v, score %d", cause, at, s.score)
	return StepResult{Outcome: OutcomeEnded, Cause: cause}
}

// placeTarget reports whether placement fell back to an overlapping cell
func (s *State) placeTarget() bool {
	p := s.placer.Place(s.grid, s.body)
	s.target = p.Cell
	return p.Overlaps
}

// Grid returns the bounds this run was started on
func (s *State) Grid() grid.Grid {
	return s.grid
}

// Head returns the first body cell
func (s *State) Head() core.Point {
	return s.body[0]
}

// Body returns a copy of the body cells, head first
func (s *State) Body() []core.Point {
	out := make([]core.Point, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the body length
func (s *State) Len() int {
	return len(s.body)
}

func (s *State) Velocity() core.Point {
	return s.velocity
}

func (s *State) Target() core.Point {
	return s.target
}

func (s *State) Score() int {
	return s.score
}

func (s *State) Status() Status {
	return s.status
}

func (s *State) Cause() EndCause {
	return s.cause
}

// InitialFallback reports whether the target placed at construction overlaps the body
func (s *State) InitialFallback() bool {
	return s.initialFallback
}
