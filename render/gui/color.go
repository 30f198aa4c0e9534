package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lixenwraith/vi-snake/render"
)

func toRL(c render.RGB) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}

func toRLAlpha(c render.RGB, alpha float64) rl.Color {
	return rl.Fade(toRL(c), float32(alpha))
}
