//go:build ebiten

package app

import (
	"time"

	"screendiags/internal/core"
	"screendiags/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// logical screen size of the demo scene before window scaling
const (
	ScreenW = 320
	ScreenH = 240
)

// Game adapts the overlay demo to the ebiten.Game interface. It is the
// host side of the integration: it bootstraps the overlay once, feeds the
// frame sampler every tick, and surfaces the pause toggle to the user.
type Game struct {
	scene   *ui.SceneGraph
	frames  *core.FrameRate
	overlay *core.Overlay
	field   *field

	last time.Time
}

// New bootstraps the overlay and the demo backdrop.
func New(cfg *Config) *Game {
	scene := ui.NewSceneGraph(cfg.Font)
	frames := core.NewFrameRate()
	return &Game{
		scene:   scene,
		frames:  frames,
		overlay: core.New(scene, frames),
		field:   newField(ScreenW, ScreenH),
	}
}

// Update handles per-tick logic: frame sampling, the visibility toggle and
// the overlay transition.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.overlay.SetPaused(!g.overlay.Paused())
	}

	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	}
	delta := now.Sub(g.last)
	g.last = now

	// The sampler keeps recording while the overlay is hidden.
	g.frames.Record(delta)

	g.field.step()
	g.overlay.Tick(delta)
	return nil
}

// Draw renders the backdrop and whatever elements the scene holds.
func (g *Game) Draw(screen *ebiten.Image) {
	g.field.draw(screen)
	g.scene.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenW, ScreenH
}
