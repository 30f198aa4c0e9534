package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/grid"
	"github.com/lixenwraith/vi-snake/parameter"
)

// Renderer draws one frame from a snapshot
type Renderer interface {
	Render(snap game.Snapshot)
}

// Listener observes run lifecycle, called on the loop goroutine
type Listener interface {
	OnReset(runID string, snap game.Snapshot)
	OnStep(result game.StepResult, snap game.Snapshot)
}

// LoopConfig holds the loop's fixed settings
type LoopConfig struct {
	CanvasWidth  int
	CanvasHeight int
	CellSize     grid.CellSize
	StepInterval time.Duration
	Dark         bool

	// Seed for target placement, 0 seeds from the wall clock
	Seed uint64

	// Placer overrides Seed when set
	Placer *game.Placer
}

// Loop drives one run at a time: logic ticks at StepInterval, renders every frame
// Not safe for concurrent use, all methods and frame callbacks run on one goroutine
type Loop struct {
	clock     FrameClock
	renderer  Renderer
	listeners []Listener

	cfg    LoopConfig
	grid   grid.Grid
	placer *game.Placer

	state *game.State
	runID string
	best  int

	dark      bool
	paused    bool
	scheduled bool

	lastTick time.Time
	haveLast bool
}

// NewLoop validates the canvas and prepares the loop, Start begins the first run
func NewLoop(clock FrameClock, renderer Renderer, cfg LoopConfig) (*Loop, error) {
	if cfg.StepInterval <= 0 {
		cfg.StepInterval = parameter.StepInterval
	}
	if cfg.CellSize == 0 {
		cfg.CellSize = grid.Medium
	}

	g, err := grid.New(cfg.CanvasWidth, cfg.CanvasHeight, cfg.CellSize)
	if err != nil {
		return nil, fmt.Errorf("loop grid: %w", err)
	}

	placer := cfg.Placer
	if placer == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		placer = game.NewSeededPlacer(seed)
	}

	return &Loop{
		clock:    clock,
		renderer: renderer,
		cfg:      cfg,
		grid:     g,
		placer:   placer,
		dark:     cfg.Dark,
	}, nil
}

// AddListener registers l for subsequent resets and steps
func (l *Loop) AddListener(ls Listener) {
	l.listeners = append(l.listeners, ls)
}

// Start begins the first run, or re-arms frames after Stop
func (l *Loop) Start() {
	if l.state == nil {
		l.Reset()
		return
	}
	if l.state.Status() == game.StatusRunning {
		l.arm()
	}
}

// Stop cancels the pending frame, Start or Reset resumes
func (l *Loop) Stop() {
	l.clock.Cancel()
	l.scheduled = false
}

// Reset replaces the run with a fresh one and arms frames if none is pending
func (l *Loop) Reset() {
	l.state = game.NewState(l.grid, l.placer)
	l.runID = uuid.NewString()
	l.haveLast = false
	l.paused = false

	log.Printf("[GAME] Run %s started on %s", l.runID, l.grid)

	snap := l.Snapshot()
	for _, ls := range l.listeners {
		ls.OnReset(l.runID, snap)
	}

	l.arm()
}

// SetCellSize recomputes the grid and resets the run
// On error the current grid and run are kept
func (l *Loop) SetCellSize(size grid.CellSize) error {
	g, err := grid.New(l.cfg.CanvasWidth, l.cfg.CanvasHeight, size)
	if err != nil {
		return fmt.Errorf("set cell size %s: %w", size, err)
	}

	l.cfg.CellSize = size
	l.grid = g
	log.Printf("[GRID] Grid size set to %s", g)

	l.Reset()
	return nil
}

// CycleSize switches to the next cell size
func (l *Loop) CycleSize() error {
	return l.SetCellSize(l.grid.CellSize.Next())
}

// HandleDirection forwards a direction to the run, ignored while paused
func (l *Loop) HandleDirection(dir game.Direction) bool {
	if l.state == nil || l.paused {
		return false
	}
	return l.state.SetPendingVelocity(dir)
}

// TogglePause freezes logic ticks while frames keep rendering
// Has no effect once the run ended
func (l *Loop) TogglePause() bool {
	if l.state == nil || l.state.Status() == game.StatusEnded {
		return l.paused
	}
	l.paused = !l.paused
	l.Redraw()
	return l.paused
}

// ToggleTheme flips between day and night palettes
func (l *Loop) ToggleTheme() bool {
	l.dark = !l.dark
	l.Redraw()
	return l.dark
}

// Redraw renders immediately when no frame is pending to pick up the change
func (l *Loop) Redraw() {
	if l.state == nil || l.scheduled {
		return
	}
	l.renderer.Render(l.Snapshot())
}

// frame is the FrameCallback body
func (l *Loop) frame(now time.Time) {
	l.scheduled = false

	switch {
	case !l.haveLast:
		l.lastTick = now
		l.haveLast = true
	case l.paused:
		// Hold the reference so resume does not burst
		l.lastTick = now
	case now.Sub(l.lastTick) >= l.cfg.StepInterval:
		l.lastTick = now
		l.step()
	}

	l.renderer.Render(l.Snapshot())

	if l.state.Status() == game.StatusEnded {
		return
	}
	l.arm()
}

func (l *Loop) step() {
	result := l.state.Tick()

	if score := l.state.Score(); score > l.best {
		l.best = score
	}

	snap := l.Snapshot()
	for _, ls := range l.listeners {
		ls.OnStep(result, snap)
	}

	if result.Outcome == game.OutcomeEnded {
		log.Printf("[GAME] Run %s ended by %s, score %d, best %d", l.runID, result.Cause, snap.Score, l.best)
	}
}

func (l *Loop) arm() {
	if l.scheduled {
		return
	}
	l.scheduled = true
	l.clock.ScheduleNext(l.frame)
}

// Snapshot returns the current run with presentation fields filled
func (l *Loop) Snapshot() game.Snapshot {
	if l.state == nil {
		return game.Snapshot{}
	}
	snap := l.state.Snapshot()
	snap.Best = l.best
	snap.Dark = l.dark
	snap.Paused = l.paused
	snap.RunID = l.runID
	return snap
}

// State exposes the current run for inspection
func (l *Loop) State() *game.State {
	return l.state
}

func (l *Loop) Grid() grid.Grid {
	return l.grid
}

func (l *Loop) RunID() string {
	return l.runID
}

func (l *Loop) Best() int {
	return l.best
}

func (l *Loop) Paused() bool {
	return l.paused
}

func (l *Loop) Dark() bool {
	return l.dark
}

// Scheduled reports whether a frame is armed
func (l *Loop) Scheduled() bool {
	return l.scheduled
}
