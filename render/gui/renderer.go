package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/render"
)

const (
	segmentInset     = 2
	segmentRadius    = 8
	eyeRadius        = 6
	pupilRadius      = 3
	scoreCardWidth   = 100
	scoreCardHeight  = 44
	gameOverCardW    = 360
	gameOverCardH    = 180
	cardRoundness    = 0.18
	roundedSegments  = 8
	titleFontSize    = 36
	scoreFontSize    = 24
	hintFontSize     = 18
	scoreCardFontPts = 28
)

// Renderer draws the last snapshot on every window frame
// Render only records; Draw runs inside the raylib frame
type Renderer struct {
	snap  game.Snapshot
	have  bool
	muted bool
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render caches snap for the next Draw
func (r *Renderer) Render(snap game.Snapshot) {
	r.snap = snap
	r.have = true
}

func (r *Renderer) SetMuted(muted bool) {
	r.muted = muted
}

// Draw paints one window frame
func (r *Renderer) Draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	if !r.have {
		rl.ClearBackground(rl.Black)
		return
	}

	snap := r.snap
	pal := render.PaletteFor(snap.Dark)
	w, h := int32(snap.CanvasWidth), int32(snap.CanvasHeight)

	rl.DrawRectangleGradientV(0, 0, w, h, toRL(pal.Background), toRL(pal.BackgroundEnd))
	r.drawGrid(pal, snap)
	r.drawBody(pal, snap)
	r.drawTarget(pal, snap)
	r.drawScoreCard(pal, snap)

	if snap.Ended() {
		r.drawGameOver(pal, snap)
	} else if snap.Paused {
		r.drawCenteredText("PAUSED", h/2, titleFontSize, toRL(pal.ScoreText))
	}
}

func (r *Renderer) drawGrid(pal *render.Palette, snap game.Snapshot) {
	size := int32(snap.CellSize)
	col := toRLAlpha(pal.GridLine, pal.GridAlpha)
	w, h := int32(snap.CanvasWidth), int32(snap.CanvasHeight)

	for i := int32(0); i <= int32(snap.Columns); i++ {
		rl.DrawLine(i*size, 0, i*size, h, col)
	}
	for i := int32(0); i <= int32(snap.Rows); i++ {
		rl.DrawLine(0, i*size, w, i*size, col)
	}
}

func (r *Renderer) drawBody(pal *render.Palette, snap game.Snapshot) {
	size := float32(snap.CellSize)
	inner := size - 2*segmentInset
	roundness := float32(2*segmentRadius) / inner

	for i := len(snap.Body) - 1; i >= 0; i-- {
		p := snap.Body[i]
		x, y := float32(p.X)*size, float32(p.Y)*size
		opacity := 1 - float64(i)/float64(len(snap.Body))*0.5

		rect := rl.NewRectangle(x+segmentInset, y+segmentInset, inner, inner)
		rl.DrawRectangleRounded(rect, roundness, roundedSegments, toRLAlpha(pal.SegmentColor(i, len(snap.Body)), opacity))

		top := rl.NewRectangle(x+segmentInset, y+segmentInset, inner, inner/2)
		rl.DrawRectangleRounded(top, roundness, roundedSegments, toRLAlpha(pal.Highlight, 0.35*opacity))

		if i == 0 {
			r.drawEyes(pal, snap.Velocity, x+segmentInset, y+segmentInset, inner)
		}
	}
}

// drawEyes places the eyes toward the direction of travel
func (r *Renderer) drawEyes(pal *render.Palette, v core.Point, x, y, size float32) {
	var e1x, e1y, e2x, e2y float32
	switch {
	case v.X > 0:
		e1x, e1y, e2x, e2y = x+size-8, y+8, x+size-8, y+size-8
	case v.X < 0:
		e1x, e1y, e2x, e2y = x+10, y+8, x+10, y+size-8
	case v.Y > 0:
		e1x, e1y, e2x, e2y = x+8, y+size-8, x+size-8, y+size-8
	default:
		e1x, e1y, e2x, e2y = x+8, y+10, x+size-8, y+10
	}

	for _, e := range [][2]float32{{e1x, e1y}, {e2x, e2y}} {
		rl.DrawCircle(int32(e[0]), int32(e[1]), eyeRadius, toRL(pal.Eye))
		rl.DrawCircle(int32(e[0]), int32(e[1]), pupilRadius, toRL(pal.Pupil))
	}
}

func (r *Renderer) drawTarget(pal *render.Palette, snap game.Snapshot) {
	size := int32(snap.CellSize)
	cx := snap.Target.X*int(size) + int(size)/2
	cy := snap.Target.Y*int(size) + int(size)/2
	radius := float32(size)/2 - segmentInset

	rl.DrawCircleGradient(int32(cx), int32(cy), radius, toRL(pal.TargetCore), toRL(pal.Target))
}

func (r *Renderer) drawScoreCard(pal *render.Palette, snap game.Snapshot) {
	x := float32(snap.CanvasWidth - scoreCardWidth - 16)
	card := rl.NewRectangle(x, 16, scoreCardWidth, scoreCardHeight)
	rl.DrawRectangleRounded(card, 0.4, roundedSegments, toRLAlpha(pal.ScoreCard, pal.ScoreCardAlpha))

	text := fmt.Sprintf("%d", snap.Score)
	tw := rl.MeasureText(text, scoreCardFontPts)
	rl.DrawText(text, int32(x)+(scoreCardWidth-tw)/2, 16+(scoreCardHeight-scoreCardFontPts)/2, scoreCardFontPts, toRL(pal.ScoreText))

	status := fmt.Sprintf("best %d  %s", snap.Best, snap.CellSize)
	if r.muted {
		status += "  muted"
	}
	rl.DrawText(status, 16, 16, hintFontSize, toRL(pal.Hint))
}

func (r *Renderer) drawGameOver(pal *render.Palette, snap game.Snapshot) {
	w, h := int32(snap.CanvasWidth), int32(snap.CanvasHeight)
	rl.DrawRectangle(0, 0, w, h, toRLAlpha(pal.Overlay, pal.OverlayAlpha))

	x := float32(w-gameOverCardW) / 2
	y := float32(h-gameOverCardH) / 2
	border := rl.NewRectangle(x-1.5, y-1.5, gameOverCardW+3, gameOverCardH+3)
	rl.DrawRectangleRounded(border, cardRoundness, roundedSegments, toRLAlpha(pal.CardBorder, 0.6))
	card := rl.NewRectangle(x, y, gameOverCardW, gameOverCardH)
	rl.DrawRectangleRounded(card, cardRoundness, roundedSegments, toRLAlpha(pal.Card, 0.92))

	textY := int32(y) + 30
	r.drawCenteredText("GAME OVER", textY, titleFontSize, toRL(pal.Title))
	textY += 48
	r.drawCenteredText(fmt.Sprintf("Score: %d", snap.Score), textY, scoreFontSize, toRL(pal.CardText))
	textY += 34
	r.drawCenteredText("Press R to play again", textY, hintFontSize, toRL(pal.Hint))
}

func (r *Renderer) drawCenteredText(text string, y, size int32, col rl.Color) {
	tw := rl.MeasureText(text, size)
	rl.DrawText(text, (int32(r.snap.CanvasWidth)-tw)/2, y, size, col)
}
