package game

import (
	"log"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/grid"
	"github.com/lixenwraith/vi-snake/parameter"
)

// IntSource yields uniform integers in [0,n)
// *rand.Rand satisfies it; tests inject scripted sources
type IntSource interface {
	Intn(n int) int
}

// Placement is the outcome of one target placement
type Placement struct {
	Cell     core.Point
	Attempts int

	// Overlaps is set when the attempt bound was exhausted and the last draw was kept
	Overlaps bool
}

// Placer chooses target cells by bounded rejection sampling
type Placer struct {
	src         IntSource
	maxAttempts int
}

// NewPlacer creates a placer over src, maxAttempts < 1 selects the default bound
func NewPlacer(src IntSource, maxAttempts int) *Placer {
	if maxAttempts < 1 {
		maxAttempts = parameter.TargetPlacementAttempts
	}
	return &Placer{
		src:         src,
		maxAttempts: maxAttempts,
	}
}

// NewSeededPlacer creates a placer with a PCG source, equal seeds reproduce placements
func NewSeededPlacer(seed uint64) *Placer {
	return NewPlacer(rand.New(rand.NewSource(seed)), parameter.TargetPlacementAttempts)
}

// MaxAttempts returns the rejection sampling bound
func (p *Placer) MaxAttempts() int {
	return p.maxAttempts
}

// Place draws random in-bounds cells until one misses body or the bound is hit
// On exhaustion the last candidate is returned even if it overlaps
func (p *Placer) Place(g grid.Grid, body []core.Point) Placement {
	var cell core.Point
	attempts := 0

	for attempts < p.maxAttempts {
		cell = core.Point{
			X: p.src.Intn(g.Columns),
			Y: p.src.Intn(g.Rows),
		}
		attempts++

		if core.IndexOf(body, cell, 0) < 0 {
			log.Printf("[GAME] Target placed at %v after %d attempts", cell, attempts)
			return Placement{Cell: cell, Attempts: attempts}
		}
	}

	log.Printf("[WARN] Target placement exhausted %d attempts on %s (body %d), keeping overlapping %v",
		attempts, g, len(body), cell)
	return Placement{Cell: cell, Attempts: attempts, Overlaps: true}
}
