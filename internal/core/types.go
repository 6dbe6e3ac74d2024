package core

// MetricSource yields the latest rolling-average value for the overlay.
type MetricSource interface {
	// CurrentAverage returns the current average and true, or false while
	// there is not yet enough data to report. Absence is a normal
	// condition, not an error.
	CurrentAverage() (float64, bool)
}

// Element is a live display element whose value segment can be rewritten
// in place.
type Element interface {
	// SetValue replaces the value segment, leaving the label segment and
	// styling untouched.
	SetValue(value string)
}

// Scene spawns and destroys display elements on behalf of the overlay.
// The scene owns element lifetimes; the overlay only witnesses existence.
type Scene interface {
	// Spawn creates a text element whose value segment shows initialValue.
	Spawn(initialValue string) Element
	// Despawn destroys the element together with any children the host
	// attached to it. At most one Despawn per Spawn.
	Despawn(Element)
}
