package parameter

import "time"

// Loop timing
const (
	// StepInterval is the logic tick cadence, one grid step per tick
	StepInterval = 150 * time.Millisecond

	// FrameInterval is the render cadence for timer driven frontends (~60 FPS)
	FrameInterval = 16 * time.Millisecond
)

// Target placement
const (
	// TargetPlacementAttempts bounds rejection sampling, the last draw is accepted after this
	TargetPlacementAttempts = 100
)

// Spawn origin for the single-cell body after reset
const (
	OriginX = 10
	OriginY = 10
)

// Cell sizes in canvas units
const (
	CellSizeSmall  = 25
	CellSizeMedium = 40
	CellSizeLarge  = 50
)

// Default canvas in abstract units, sized so the origin fits every cell size
const (
	CanvasWidth  = 800
	CanvasHeight = 600
)
