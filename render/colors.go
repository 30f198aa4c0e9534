package render

// Palette is one theme; alpha values are for backends that composite
type Palette struct {
	Name string

	Background    RGB
	BackgroundEnd RGB // Gradient end for backends that draw one
	GridLine      RGB
	GridAlpha     float64

	Head       RGB
	HeadEnd    RGB
	Body       RGB
	BodyEnd    RGB
	Highlight  RGB
	Eye        RGB
	Pupil      RGB
	Target     RGB
	TargetCore RGB

	ScoreCard      RGB
	ScoreCardAlpha float64
	ScoreText      RGB

	Overlay      RGB
	OverlayAlpha float64
	Card         RGB
	CardEnd      RGB
	CardBorder   RGB
	Title        RGB
	CardText     RGB
	Hint         RGB
}

var (
	// NightPalette is the dark neon green theme
	NightPalette = Palette{
		Name:          "night",
		Background:    Hex(0x020617),
		BackgroundEnd: Hex(0x0b1120),
		GridLine:      RGB{15, 23, 42},
		GridAlpha:     0.7,

		Head:       Hex(0x22c55e),
		HeadEnd:    Hex(0xbbf7d0),
		Body:       RGB{34, 197, 94},
		BodyEnd:    RGB{190, 242, 100},
		Highlight:  RGB{190, 242, 100},
		Eye:        RGB{255, 255, 255},
		Pupil:      Hex(0x022c22),
		Target:     Hex(0x22c55e),
		TargetCore: Hex(0xbbf7d0),

		ScoreCard:      RGB{15, 23, 42},
		ScoreCardAlpha: 0.8,
		ScoreText:      Hex(0xbbf7d0),

		Overlay:      RGB{2, 6, 23},
		OverlayAlpha: 0.78,
		Card:         RGB{15, 23, 42},
		CardEnd:      RGB{5, 14, 46},
		CardBorder:   RGB{148, 163, 184},
		Title:        Hex(0x22c55e),
		CardText:     Hex(0xe5e7eb),
		Hint:         Hex(0x9ca3af),
	}

	// DayPalette is the light cyan theme
	DayPalette = Palette{
		Name:          "day",
		Background:    Hex(0xf0f9ff),
		BackgroundEnd: Hex(0xe0f2fe),
		GridLine:      RGB{186, 230, 253},
		GridAlpha:     0.3,

		Head:       Hex(0x06b6d4),
		HeadEnd:    Hex(0x0891b2),
		Body:       RGB{6, 182, 212},
		BodyEnd:    RGB{8, 145, 178},
		Highlight:  RGB{255, 255, 255},
		Eye:        RGB{255, 255, 255},
		Pupil:      Hex(0x0f172a),
		Target:     Hex(0xef4444),
		TargetCore: Hex(0xfca5a5),

		ScoreCard:      RGB{255, 255, 255},
		ScoreCardAlpha: 0.5,
		ScoreText:      Hex(0x0891b2),

		Overlay:      RGB{15, 23, 42},
		OverlayAlpha: 0.25,
		Card:         RGB{255, 255, 255},
		CardEnd:      RGB{226, 232, 240},
		CardBorder:   RGB{148, 163, 184},
		Title:        Hex(0x0891b2),
		CardText:     Hex(0x1f2933),
		Hint:         Hex(0x64748b),
	}
)

// PaletteFor selects the theme
func PaletteFor(dark bool) *Palette {
	if dark {
		return &NightPalette
	}
	return &DayPalette
}

// SegmentColor fades the body from Body toward BodyEnd along its length
// Index 0 is the head and uses Head
func (p *Palette) SegmentColor(index, length int) RGB {
	if index == 0 || length <= 1 {
		return p.Head
	}
	return Lerp(p.Body, p.BodyEnd, float64(index)/float64(length)*0.5)
}
