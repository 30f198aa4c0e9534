package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/game"
)

const (
	cardWidth  = 30
	cardHeight = 6
)

// TerminalRenderer draws snapshots onto a tcell screen
// Called only from the loop goroutine
type TerminalRenderer struct {
	screen tcell.Screen
	muted  bool
}

// NewTerminalRenderer creates a renderer bound to an initialized screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// SetMuted updates the HUD sound indicator, shown on the next render
func (r *TerminalRenderer) SetMuted(muted bool) {
	r.muted = muted
}

// Render draws one full frame
func (r *TerminalRenderer) Render(snap game.Snapshot) {
	pal := PaletteFor(snap.Dark)
	base := tcell.StyleDefault.Background(pal.Background.Tcell()).Foreground(pal.CardText.Tcell())
	r.screen.Fill(' ', base)

	w, h := r.screen.Size()
	layout, ok := ComputeLayout(w, h, snap.Columns, snap.Rows)
	if !ok {
		r.drawResizeNotice(pal, base, w, h, snap)
		r.screen.Show()
		return
	}

	r.drawBorder(layout, pal, base)
	r.drawGrid(layout, pal, base)
	r.drawTarget(layout, pal, base, snap.Target)
	r.drawBody(layout, pal, base, snap)
	r.drawHUD(layout, pal, base, snap)

	if snap.Ended() {
		r.dimBoard(layout, pal)
		r.drawGameOver(layout, pal, snap)
	} else if snap.Paused {
		r.drawBanner(layout, pal, "PAUSED")
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawBorder(l Layout, pal *Palette, base tcell.Style) {
	style := base.Foreground(pal.CardBorder.Tcell())
	right, bottom := l.X+l.Width-1, l.Y+l.Height-1

	for x := l.X + 1; x < right; x++ {
		r.screen.SetContent(x, l.Y, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := l.Y + 1; y < bottom; y++ {
		r.screen.SetContent(l.X, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	r.screen.SetContent(l.X, l.Y, '╭', nil, style)
	r.screen.SetContent(right, l.Y, '╮', nil, style)
	r.screen.SetContent(l.X, bottom, '╰', nil, style)
	r.screen.SetContent(right, bottom, '╯', nil, style)
}

// drawGrid marks each cell with a faint dot in place of grid lines
func (r *TerminalRenderer) drawGrid(l Layout, pal *Palette, base tcell.Style) {
	style := base.Foreground(Blend(pal.Background, pal.GridLine, 0.5+pal.GridAlpha/2).Tcell())
	for y := 0; y < l.Rows; y++ {
		for x := 0; x < l.Columns; x++ {
			sx, sy := l.CellOrigin(core.Point{X: x, Y: y})
			r.screen.SetContent(sx, sy, '·', nil, style)
		}
	}
}

func (r *TerminalRenderer) drawTarget(l Layout, pal *Palette, base tcell.Style, target core.Point) {
	if target.X < 0 || target.X >= l.Columns || target.Y < 0 || target.Y >= l.Rows {
		return
	}
	style := base.Foreground(pal.Target.Tcell())
	sx, sy := l.CellOrigin(target)
	r.screen.SetContent(sx, sy, '◖', nil, style)
	r.screen.SetContent(sx+1, sy, '◗', nil, style)
}

// drawBody paints the tail first so the head wins when a fallback target overlaps
func (r *TerminalRenderer) drawBody(l Layout, pal *Palette, base tcell.Style, snap game.Snapshot) {
	for i := len(snap.Body) - 1; i >= 0; i-- {
		cell := snap.Body[i]
		if cell.X < 0 || cell.X >= l.Columns || cell.Y < 0 || cell.Y >= l.Rows {
			continue
		}
		sx, sy := l.CellOrigin(cell)
		style := base.Background(pal.SegmentColor(i, len(snap.Body)).Tcell())

		if i > 0 {
			r.screen.SetContent(sx, sy, ' ', nil, style)
			r.screen.SetContent(sx+1, sy, ' ', nil, style)
			continue
		}

		left, right := headEyes(snap.Velocity)
		eyes := style.Foreground(pal.Pupil.Tcell())
		r.screen.SetContent(sx, sy, left, nil, eyes)
		r.screen.SetContent(sx+1, sy, right, nil, eyes)
	}
}

// headEyes places the eyes toward the direction of travel
func headEyes(v core.Point) (rune, rune) {
	switch {
	case v.X > 0:
		return ' ', '•'
	case v.X < 0:
		return '•', ' '
	case v.Y > 0:
		return '.', '.'
	}
	return '•', '•'
}

func (r *TerminalRenderer) drawHUD(l Layout, pal *Palette, base tcell.Style, snap game.Snapshot) {
	y := l.HUDRow()
	score := base.Foreground(pal.ScoreText.Tcell()).Bold(true)
	dim := base.Foreground(pal.Hint.Tcell())

	left := fmt.Sprintf(" Score %d  Best %d", snap.Score, snap.Best)
	sound := "sound"
	if r.muted {
		sound = "muted"
	}
	right := fmt.Sprintf("%s · %s · %s ", snap.CellSize, PaletteFor(snap.Dark).Name, sound)

	r.drawText(l.X, y, l.Width, left, score)
	if rx := l.X + l.Width - len([]rune(right)); rx > l.X+len(left) {
		r.drawText(rx, y, l.Width, right, dim)
	}
}

// dimBoard composites the overlay color over every board cell
func (r *TerminalRenderer) dimBoard(l Layout, pal *Palette) {
	for y := l.Y; y < l.Y+l.Height; y++ {
		for x := l.X; x < l.X+l.Width; x++ {
			mainc, combc, style, _ := r.screen.GetContent(x, y)
			fg, bg, _ := style.Decompose()
			style = style.
				Foreground(Blend(fromTcell(fg, pal.CardText), pal.Overlay, pal.OverlayAlpha).Tcell()).
				Background(Blend(fromTcell(bg, pal.Background), pal.Overlay, pal.OverlayAlpha).Tcell())
			r.screen.SetContent(x, y, mainc, combc, style)
		}
	}
}

func (r *TerminalRenderer) drawGameOver(l Layout, pal *Palette, snap game.Snapshot) {
	w := min(cardWidth, l.Width)
	x := l.CenterX(w)
	y := l.Y + (l.Height-cardHeight)/2

	card := tcell.StyleDefault.Background(pal.Card.Tcell()).Foreground(pal.CardText.Tcell())
	edge := card.Foreground(pal.CardBorder.Tcell())

	for row := 0; row < cardHeight; row++ {
		for col := 0; col < w; col++ {
			ch := ' '
			switch {
			case row == 0 && col == 0:
				ch = '╭'
			case row == 0 && col == w-1:
				ch = '╮'
			case row == cardHeight-1 && col == 0:
				ch = '╰'
			case row == cardHeight-1 && col == w-1:
				ch = '╯'
			case row == 0 || row == cardHeight-1:
				ch = '─'
			case col == 0 || col == w-1:
				ch = '│'
			}
			r.screen.SetContent(x+col, y+row, ch, nil, edge)
		}
	}

	lines := []struct {
		text  string
		style tcell.Style
	}{
		{"GAME OVER", card.Foreground(pal.Title.Tcell()).Bold(true)},
		{fmt.Sprintf("Score: %d", snap.Score), card},
		{causeText(snap.Cause), card.Foreground(pal.Hint.Tcell())},
		{"Press R to play again", card.Foreground(pal.Hint.Tcell())},
	}
	for i, line := range lines {
		n := len([]rune(line.text))
		r.drawText(x+(w-n)/2, y+1+i, w-2, line.text, line.style)
	}
}

func causeText(c game.EndCause) string {
	switch c {
	case game.CauseWall:
		return "Hit the wall"
	case game.CauseSelf:
		return "Hit your tail"
	}
	return ""
}

func (r *TerminalRenderer) drawBanner(l Layout, pal *Palette, text string) {
	style := tcell.StyleDefault.Background(pal.ScoreCard.Tcell()).Foreground(pal.ScoreText.Tcell()).Bold(true)
	label := " " + text + " "
	n := len([]rune(label))
	r.drawText(l.CenterX(n), l.Y+l.Height/2, n, label, style)
}

func (r *TerminalRenderer) drawResizeNotice(pal *Palette, base tcell.Style, w, h int, snap game.Snapshot) {
	needW, needH := MinSize(snap.Columns, snap.Rows)
	lines := []string{
		"Terminal too small",
		fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, w, h),
		"resize or press 3 for large cells",
	}
	style := base.Foreground(pal.Title.Tcell())
	top := max(0, (h-len(lines))/2)
	for i, line := range lines {
		n := len([]rune(line))
		r.drawText(max(0, (w-n)/2), top+i, w, line, style)
		style = base.Foreground(pal.Hint.Tcell())
	}
}

// drawText writes at most limit runes starting at x
func (r *TerminalRenderer) drawText(x, y, limit int, text string, style tcell.Style) {
	i := 0
	for _, ch := range text {
		if i >= limit {
			return
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
		i++
	}
}

// fromTcell recovers RGB from a true color, fallback for default or palette colors
func fromTcell(c tcell.Color, fallback RGB) RGB {
	if !c.IsRGB() {
		return fallback
	}
	r, g, b := c.RGB()
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}
