package core

import (
	"strconv"
	"time"
)

// Placeholder is displayed while no metric value has been reported yet.
const Placeholder = "..."

// RefreshInterval is the minimum time between displayed-value updates.
const RefreshInterval = time.Second

// Overlay owns the visibility state machine for the on-screen read-out.
// One instance exists for the session; the host calls Tick once per update
// cycle, on a single goroutine.
type Overlay struct {
	scene  Scene
	source MetricSource
	timer  *RefreshTimer

	element Element
	paused  bool
}

// New bootstraps the overlay and spawns the initial element. The first
// displayed value is always the placeholder; sampling starts with the
// first refresh.
func New(scene Scene, source MetricSource) *Overlay {
	if scene == nil {
		panic("screendiags: overlay requires a scene")
	}
	if source == nil {
		panic("screendiags: overlay requires a metric source")
	}
	o := &Overlay{
		scene:  scene,
		source: source,
		timer:  NewRefreshTimer(RefreshInterval),
	}
	o.element = scene.Spawn(Placeholder)
	return o
}

// SetPaused hides (true) or shows (false) the overlay. The change takes
// effect on the next Tick. Any collaborator may flip this; the remaining
// overlay state belongs to Tick alone.
func (o *Overlay) SetPaused(paused bool) { o.paused = paused }

// Paused reports the externally requested visibility.
func (o *Overlay) Paused() bool { return o.paused }

// Visible reports whether an element currently exists in the scene.
func (o *Overlay) Visible() bool { return o.element != nil }

// Tick evaluates exactly one state transition for this host update.
// Calling it on an overlay that was never bootstrapped is a host
// integration bug and panics.
func (o *Overlay) Tick(delta time.Duration) {
	if o == nil || o.scene == nil {
		panic("screendiags: Tick on an overlay that was not bootstrapped")
	}
	switch {
	// Hidden and already despawned.
	case o.element == nil && o.paused:

	// Just enabled but not spawned yet.
	case o.element == nil:
		o.element = o.scene.Spawn(o.sampleText())

	// Just disabled but still on screen.
	case o.paused:
		o.scene.Despawn(o.element)
		o.element = nil

	// Visible, refresh interval not yet elapsed.
	case !o.timer.Advance(delta):

	// Visible and due for a refresh. A momentary gap in metric
	// availability leaves the previous value on screen.
	default:
		if v, ok := o.source.CurrentAverage(); ok {
			o.element.SetValue(FormatValue(v))
		}
		o.timer.Reset()
	}
}

func (o *Overlay) sampleText() string {
	if v, ok := o.source.CurrentAverage(); ok {
		return FormatValue(v)
	}
	return Placeholder
}

// FormatValue renders a metric value with zero decimal places.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}
