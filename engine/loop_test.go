package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/grid"
)

const (
	testFrame = 16 * time.Millisecond
	testStep  = 150 * time.Millisecond
)

// prefixSource yields values in order, then zero forever
type prefixSource struct {
	values []int
	i      int
}

func (s *prefixSource) Intn(n int) int {
	if s.i >= len(s.values) {
		return 0
	}
	v := s.values[s.i]
	s.i++
	return v % n
}

type recordingRenderer struct {
	frames []game.Snapshot
}

func (r *recordingRenderer) Render(snap game.Snapshot) {
	r.frames = append(r.frames, snap)
}

func (r *recordingRenderer) last() game.Snapshot {
	if len(r.frames) == 0 {
		return game.Snapshot{}
	}
	return r.frames[len(r.frames)-1]
}

type recordingListener struct {
	resets []string
	steps  []game.StepResult
}

func (l *recordingListener) OnReset(runID string, _ game.Snapshot) {
	l.resets = append(l.resets, runID)
}

func (l *recordingListener) OnStep(result game.StepResult, _ game.Snapshot) {
	l.steps = append(l.steps, result)
}

type loopFixture struct {
	clock    *ManualClock
	renderer *recordingRenderer
	listener *recordingListener
	loop     *Loop
}

// newLoopFixture builds an 800x600 medium loop (20x15 cells) with scripted placements
func newLoopFixture(t *testing.T, placements ...int) *loopFixture {
	t.Helper()

	clock := NewManualClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), testFrame)
	renderer := &recordingRenderer{}
	listener := &recordingListener{}

	loop, err := NewLoop(clock, renderer, LoopConfig{
		CanvasWidth:  800,
		CanvasHeight: 600,
		CellSize:     grid.Medium,
		StepInterval: testStep,
		Placer:       game.NewPlacer(&prefixSource{values: placements}, 0),
	})
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}
	loop.AddListener(listener)
	loop.Start()

	return &loopFixture{clock: clock, renderer: renderer, listener: listener, loop: loop}
}

// runToEnd fires frames until the loop stops scheduling
func (f *loopFixture) runToEnd(t *testing.T) int {
	t.Helper()
	fired := 0
	for f.clock.Pending() {
		f.clock.Fire()
		fired++
		if fired > 10000 {
			t.Fatal("loop never stopped scheduling")
		}
	}
	return fired
}

func TestLoopStartArmsSingleFrame(t *testing.T) {
	f := newLoopFixture(t)

	if !f.clock.Pending() || !f.loop.Scheduled() {
		t.Fatal("Start did not arm a frame")
	}
	if f.clock.Scheduled() != 1 {
		t.Errorf("Scheduled() = %d, want 1", f.clock.Scheduled())
	}
	if len(f.listener.resets) != 1 || f.listener.resets[0] != f.loop.RunID() {
		t.Errorf("resets = %v, want [%s]", f.listener.resets, f.loop.RunID())
	}
	if len(f.renderer.frames) != 0 {
		t.Errorf("rendered %d frames before the first callback", len(f.renderer.frames))
	}
}

func TestLoopTicksOnlyAfterStepInterval(t *testing.T) {
	f := newLoopFixture(t)
	start := core.Point{X: 10, Y: 10}

	// First frame only records the reference time
	f.clock.Fire()
	f.loop.HandleDirection(game.DirRight)

	// 9 more frames put us at 144ms past the reference
	f.clock.FireN(9)
	if head := f.loop.State().Head(); head != start {
		t.Fatalf("ticked early, head at %v after %d frames", head, len(f.renderer.frames))
	}
	if len(f.renderer.frames) != 10 {
		t.Errorf("rendered %d frames, want one per frame (10)", len(f.renderer.frames))
	}

	f.clock.Fire()
	if head := f.loop.State().Head(); head != (core.Point{X: 11, Y: 10}) {
		t.Errorf("head = %v after 160ms, want (11,10)", head)
	}
	if len(f.listener.steps) != 1 || f.listener.steps[0].Outcome != game.OutcomeMoved {
		t.Errorf("steps = %+v, want one moved step", f.listener.steps)
	}
	if got := f.renderer.last().Head(); got != (core.Point{X: 11, Y: 10}) {
		t.Errorf("rendered head = %v, want (11,10)", got)
	}
}

func TestLoopAdvanceTicksAtCadence(t *testing.T) {
	f := newLoopFixture(t)
	f.clock.Fire()
	f.loop.HandleDirection(game.DirLeft)

	f.clock.Advance(time.Second)

	// Frames every 16ms, ticks every 160ms (first frame past 150ms)
	if got := len(f.listener.steps); got != 6 {
		t.Errorf("steps in 1s = %d, want 6", got)
	}
	if got := len(f.renderer.frames); got != 1+62 {
		t.Errorf("frames = %d, want 63", got)
	}
}

func TestLoopIdleTicksDoNotMove(t *testing.T) {
	f := newLoopFixture(t)
	f.clock.Advance(2 * time.Second)

	if head := f.loop.State().Head(); head != (core.Point{X: 10, Y: 10}) {
		t.Errorf("head moved without input: %v", head)
	}
	for i, s := range f.listener.steps {
		if s.Outcome != game.OutcomeIdle {
			t.Fatalf("step %d = %v, want idle", i, s.Outcome)
		}
	}
}

func TestLoopGameOverRendersFinalFrameAndStops(t *testing.T) {
	f := newLoopFixture(t)
	f.clock.Fire()
	f.loop.HandleDirection(game.DirRight)

	f.runToEnd(t)

	final := f.renderer.last()
	if !final.Ended() || final.Cause != game.CauseWall {
		t.Fatalf("final frame = %v/%v, want ended by wall", final.Status, final.Cause)
	}
	if final.Head() != (core.Point{X: 19, Y: 10}) {
		t.Errorf("final head = %v, want (19,10)", final.Head())
	}
	if f.loop.Scheduled() || f.clock.Pending() {
		t.Error("loop rescheduled after game over")
	}

	// Nothing to fire, nothing renders
	rendered := len(f.renderer.frames)
	f.clock.Advance(time.Second)
	if len(f.renderer.frames) != rendered {
		t.Errorf("rendered %d extra frames after game over", len(f.renderer.frames)-rendered)
	}

	if f.loop.HandleDirection(game.DirUp) {
		t.Error("direction accepted after game over")
	}
}

func TestLoopResetRearmsAfterGameOver(t *testing.T) {
	f := newLoopFixture(t)
	f.clock.Fire()
	f.loop.HandleDirection(game.DirLeft)
	f.runToEnd(t)

	firstRun := f.loop.RunID()
	f.loop.Reset()

	if !f.clock.Pending() {
		t.Fatal("Reset did not re-arm the clock")
	}
	if f.loop.RunID() == firstRun {
		t.Error("Reset kept the previous run ID")
	}
	snap := f.loop.Snapshot()
	if snap.Ended() || snap.Score != 0 || len(snap.Body) != 1 || !snap.Velocity.IsZero() {
		t.Errorf("Reset snapshot = %+v, want fresh run", snap)
	}
	if len(f.listener.resets) != 2 {
		t.Errorf("OnReset calls = %d, want 2", len(f.listener.resets))
	}
}

func TestLoopResetWhileRunningDoesNotDoubleSchedule(t *testing.T) {
	f := newLoopFixture(t)
	f.clock.FireN(3)
	before := f.clock.Scheduled()

	f.loop.Reset()
	f.loop.Reset()

	if got := f.clock.Scheduled(); got != before {
		t.Errorf("Scheduled() = %d after resets, want %d", got, before)
	}
	if !f.clock.Pending() {
		t.Error("pending frame lost on reset")
	}
}

func TestLoopStopCancelsAndStartResumes(t *testing.T) {
	f := newLoopFixture(t)
	f.clock.Fire()

	f.loop.Stop()
	if f.clock.Pending() || f.loop.Scheduled() {
		t.Fatal("Stop left a frame armed")
	}

	f.loop.Start()
	if !f.clock.Pending() {
		t.Error("Start after Stop did not re-arm")
	}
	if len(f.listener.resets) != 1 {
		t.Errorf("Start after Stop reset the run (%d resets)", len(f.listener.resets))
	}
}

func TestLoopSetCellSizeResets(t *testing.T) {
	f := newLoopFixture(t)
	f.clock.Fire()
	f.loop.HandleDirection(game.DirUp)
	f.clock.Advance(time.Second)
	firstRun := f.loop.RunID()

	if err := f.loop.SetCellSize(grid.Large); err != nil {
		t.Fatalf("SetCellSize: %v", err)
	}

	snap := f.loop.Snapshot()
	if snap.Columns != 16 || snap.Rows != 12 || snap.CellSize != grid.Large {
		t.Errorf("grid after resize = %dx%d@%v, want 16x12@large", snap.Columns, snap.Rows, snap.CellSize)
	}
	if f.loop.RunID() == firstRun {
		t.Error("size change did not reset the run")
	}
	if snap.Head() != (core.Point{X: 10, Y: 10}) || !snap.Velocity.IsZero() {
		t.Errorf("run not reset: head %v velocity %v", snap.Head(), snap.Velocity)
	}
}

func TestLoopSetCellSizeRejectsUnknown(t *testing.T) {
	f := newLoopFixture(t)
	runID := f.loop.RunID()

	err := f.loop.SetCellSize(grid.CellSize(7))
	if err == nil {
		t.Fatal("SetCellSize accepted an unknown size")
	}
	if f.loop.Grid().CellSize != grid.Medium {
		t.Errorf("grid changed to %v on error", f.loop.Grid().CellSize)
	}
	if f.loop.RunID() != runID {
		t.Error("run reset on failed size change")
	}
}

func TestLoopCycleSize(t *testing.T) {
	f := newLoopFixture(t)

	if err := f.loop.CycleSize(); err != nil {
		t.Fatalf("CycleSize: %v", err)
	}
	if got := f.loop.Grid().CellSize; got != grid.Medium.Next() {
		t.Errorf("CellSize = %v, want %v", got, grid.Medium.Next())
	}
}

func TestLoopPauseHoldsTicks(t *testing.T) {
	f := newLoopFixture(t)
	f.clock.Fire()
	f.loop.HandleDirection(game.DirRight)

	if !f.loop.TogglePause() {
		t.Fatal("TogglePause did not pause")
	}
	if f.loop.HandleDirection(game.DirDown) {
		t.Error("direction accepted while paused")
	}

	rendered := len(f.renderer.frames)
	f.clock.FireN(30)

	if head := f.loop.State().Head(); head != (core.Point{X: 10, Y: 10}) {
		t.Errorf("head moved while paused: %v", head)
	}
	if len(f.renderer.frames) != rendered+30 {
		t.Errorf("rendered %d frames while paused, want 30", len(f.renderer.frames)-rendered)
	}
	if !f.renderer.last().Paused {
		t.Error("snapshot not flagged paused")
	}

	f.loop.TogglePause()

	// No burst on resume: a full step interval must elapse again
	f.clock.FireN(9)
	if head := f.loop.State().Head(); head != (core.Point{X: 10, Y: 10}) {
		t.Errorf("burst tick on resume, head at %v", head)
	}
	f.clock.Fire()
	if head := f.loop.State().Head(); head != (core.Point{X: 11, Y: 10}) {
		t.Errorf("head = %v after resume interval, want (11,10)", head)
	}
}

func TestLoopToggleThemeRedrawsWhenIdle(t *testing.T) {
	f := newLoopFixture(t)
	f.clock.Fire()
	f.loop.HandleDirection(game.DirUp)
	f.runToEnd(t)

	rendered := len(f.renderer.frames)
	wasDark := f.renderer.last().Dark

	if got := f.loop.ToggleTheme(); got == wasDark {
		t.Fatal("ToggleTheme did not flip")
	}
	if len(f.renderer.frames) != rendered+1 {
		t.Fatalf("ToggleTheme rendered %d frames, want 1", len(f.renderer.frames)-rendered)
	}
	if f.renderer.last().Dark == wasDark {
		t.Error("redraw did not carry the new theme")
	}
	if !f.renderer.last().Ended() {
		t.Error("redraw lost the game over state")
	}
}

func TestLoopToggleThemeWhileRunningWaitsForFrame(t *testing.T) {
	f := newLoopFixture(t)
	f.clock.Fire()
	rendered := len(f.renderer.frames)

	f.loop.ToggleTheme()
	if len(f.renderer.frames) != rendered {
		t.Error("rendered out of band while a frame was pending")
	}

	f.clock.Fire()
	if !f.renderer.last().Dark {
		t.Error("next frame did not pick up the theme")
	}
}

func TestLoopConsumeTracksBest(t *testing.T) {
	// First target at (12,10), later ones at (0,0)
	f := newLoopFixture(t, 12, 10)
	f.clock.Fire()
	f.loop.HandleDirection(game.DirRight)

	for len(f.listener.steps) < 2 {
		f.clock.Fire()
	}

	if got := f.listener.steps[1].Outcome; got != game.OutcomeConsumed {
		t.Fatalf("second step = %v, want consumed", got)
	}
	snap := f.loop.Snapshot()
	if snap.Score != 1 || snap.Best != 1 || len(snap.Body) != 2 {
		t.Errorf("after eating: score %d best %d len %d, want 1/1/2", snap.Score, snap.Best, len(snap.Body))
	}
	if snap.Target != (core.Point{}) {
		t.Errorf("new target = %v, want (0,0)", snap.Target)
	}

	f.loop.Reset()
	if snap := f.loop.Snapshot(); snap.Score != 0 || snap.Best != 1 {
		t.Errorf("after reset: score %d best %d, want 0/1", snap.Score, snap.Best)
	}
}

func TestNewLoopRejectsTinyCanvas(t *testing.T) {
	clock := NewManualClock(time.Now(), testFrame)
	_, err := NewLoop(clock, &recordingRenderer{}, LoopConfig{CanvasWidth: 10, CanvasHeight: 10})
	if !errors.Is(err, grid.ErrTooSmall) {
		t.Errorf("NewLoop error = %v, want ErrTooSmall", err)
	}
}
