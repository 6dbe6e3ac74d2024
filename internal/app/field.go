//go:build ebiten

package app

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// field is the drifting-dot backdrop that gives the frame counter
// something to measure.
type field struct {
	w, h  int
	dots  []dot
	pixel *ebiten.Image
}

type dot struct {
	x, y  float64
	speed float64
}

func newField(w, h int) *field {
	f := &field{w: w, h: h}
	f.pixel = ebiten.NewImage(1, 1)
	f.pixel.Fill(color.White)

	rng := rand.New(rand.NewSource(1))
	f.dots = make([]dot, 96)
	for i := range f.dots {
		f.dots[i] = dot{
			x:     rng.Float64() * float64(w),
			y:     rng.Float64() * float64(h),
			speed: 0.5 + rng.Float64()*2,
		}
	}
	return f
}

func (f *field) step() {
	for i := range f.dots {
		f.dots[i].x += f.dots[i].speed
		if f.dots[i].x >= float64(f.w) {
			f.dots[i].x -= float64(f.w)
		}
	}
}

func (f *field) draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	for _, d := range f.dots {
		// Faster dots read as closer, render them brighter.
		shade := 0.3 + 0.7*(d.speed-0.5)/2
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(d.x, d.y)
		op.ColorM.Scale(shade, shade, shade, 1)
		screen.DrawImage(f.pixel, op)
	}
}
