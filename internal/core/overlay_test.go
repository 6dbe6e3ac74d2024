package core

import (
	"testing"
	"time"
)

type stubSource struct {
	value float64
	ok    bool
}

func (s *stubSource) CurrentAverage() (float64, bool) { return s.value, s.ok }

type recordedElement struct {
	value     string
	despawned bool
}

func (e *recordedElement) SetValue(value string) { e.value = value }

type recordingScene struct {
	spawned []*recordedElement
	live    int
}

func (s *recordingScene) Spawn(initialValue string) Element {
	e := &recordedElement{value: initialValue}
	s.spawned = append(s.spawned, e)
	s.live++
	return e
}

func (s *recordingScene) Despawn(e Element) {
	re := e.(*recordedElement)
	if re.despawned {
		panic("double despawn")
	}
	re.despawned = true
	s.live--
}

func (s *recordingScene) last() *recordedElement {
	return s.spawned[len(s.spawned)-1]
}

const tick = 100 * time.Millisecond

func TestBootstrapSpawnsPlaceholder(t *testing.T) {
	scene := &recordingScene{}
	src := &stubSource{value: 59.6, ok: true}

	o := New(scene, src)

	if scene.live != 1 {
		t.Fatalf("bootstrap spawned %d elements, want 1", scene.live)
	}
	if got := scene.last().value; got != Placeholder {
		t.Fatalf("bootstrap value %q, want placeholder %q even with data available", got, Placeholder)
	}
	if !o.Visible() || o.Paused() {
		t.Fatal("overlay must start visible and unpaused")
	}
}

func TestExistenceTracksPauseWithinOneTick(t *testing.T) {
	scene := &recordingScene{}
	o := New(scene, &stubSource{})

	toggles := []bool{true, false, false, true, true, false}
	for i, paused := range toggles {
		o.SetPaused(paused)
		o.Tick(tick)
		if o.Visible() == paused {
			t.Fatalf("after toggle %d (paused=%v): visible=%v", i, paused, o.Visible())
		}
		if want := map[bool]int{true: 0, false: 1}[paused]; scene.live != want {
			t.Fatalf("after toggle %d (paused=%v): %d live elements, want %d", i, paused, scene.live, want)
		}
	}
}

func TestVisibleTicksNeverRespawn(t *testing.T) {
	scene := &recordingScene{}
	o := New(scene, &stubSource{value: 60, ok: true})

	for i := 0; i < 50; i++ {
		o.Tick(tick)
	}

	if len(scene.spawned) != 1 {
		t.Fatalf("%d elements spawned over steady visible ticks, want 1", len(scene.spawned))
	}
	if scene.live != 1 {
		t.Fatalf("%d live elements, want 1", scene.live)
	}
}

func TestRefreshThrottle(t *testing.T) {
	scene := &recordingScene{}
	src := &stubSource{ok: true}
	o := New(scene, src)
	element := scene.last()

	changes := 0
	previous := element.value
	for i := 0; i < 25; i++ {
		// The underlying value moves every tick.
		src.value = 100 + float64(i)
		o.Tick(tick)
		if element.value != previous {
			changes++
			previous = element.value
		}
	}

	// 25 ticks of 100ms against a 1s interval: refreshes at ticks 10 and 20.
	if changes != 2 {
		t.Fatalf("displayed value changed %d times over 25 ticks, want 2", changes)
	}
}

func TestEnableSamplesAndFormats(t *testing.T) {
	scene := &recordingScene{}
	src := &stubSource{}
	o := New(scene, src)

	o.SetPaused(true)
	o.Tick(tick)

	src.value = 59.6
	src.ok = true
	o.SetPaused(false)
	o.Tick(tick)

	if got := scene.last().value; got != "60" {
		t.Fatalf("re-enable with 59.6 available displayed %q, want %q", got, "60")
	}
}

func TestRefreshGapKeepsLastValue(t *testing.T) {
	scene := &recordingScene{}
	src := &stubSource{value: 60, ok: true}
	o := New(scene, src)
	element := scene.last()

	for i := 0; i < 10; i++ {
		o.Tick(tick)
	}
	if element.value != "60" {
		t.Fatalf("after first refresh displayed %q, want %q", element.value, "60")
	}

	src.ok = false
	for i := 0; i < 10; i++ {
		o.Tick(tick)
	}
	if element.value != "60" {
		t.Fatalf("refresh without data displayed %q, want unchanged %q", element.value, "60")
	}
}

func TestRespawnIsFresh(t *testing.T) {
	scene := &recordingScene{}
	src := &stubSource{value: 60, ok: true}
	o := New(scene, src)

	for i := 0; i < 10; i++ {
		o.Tick(tick)
	}
	first := scene.last()
	if first.value != "60" {
		t.Fatalf("displayed %q before hiding, want %q", first.value, "60")
	}

	o.SetPaused(true)
	o.Tick(tick)
	if !first.despawned {
		t.Fatal("hiding must despawn the element")
	}

	src.ok = false
	o.SetPaused(false)
	o.Tick(tick)

	second := scene.last()
	if second == first {
		t.Fatal("re-enable must spawn a fresh element, not reuse the old one")
	}
	if second.value != Placeholder {
		t.Fatalf("fresh element displays %q, want placeholder %q", second.value, Placeholder)
	}
}

func TestTickWithoutBootstrapPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Tick on a nil overlay must panic")
		}
	}()
	var o *Overlay
	o.Tick(tick)
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{62.7, "63"},
		{59.6, "60"},
		{60.0, "60"},
		{0.2, "0"},
		{144.49, "144"},
	}
	for _, c := range cases {
		if got := FormatValue(c.in); got != c.want {
			t.Errorf("FormatValue(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
