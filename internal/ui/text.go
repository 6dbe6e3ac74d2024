//go:build ebiten

package ui

import (
	"image/color"

	"screendiags/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// Label is the static segment drawn in front of the metric value.
const Label = "FPS: "

// FontSize is the glyph size shared by both text segments.
const FontSize = 32

// FontColor is the fill color shared by both text segments.
var FontColor = color.RGBA{R: 255, A: 255}

// read-out anchor, in logical pixels from the top-left screen corner
const (
	textLeft     = 8
	textBaseline = FontSize + 4
)

// Drawable is anything the scene can paint onto the host screen. Children
// attached to a text element must implement it.
type Drawable interface {
	Draw(screen *ebiten.Image)
}

// Text is a two-segment on-screen element: a fixed label and a mutable
// value string, sharing one font face. It implements core.Element.
type Text struct {
	face  font.Face
	label string
	value string

	children []Drawable
}

// SetValue replaces the value segment only.
func (t *Text) SetValue(value string) { t.value = value }

// Attach parents a drawable to this element. Attached children are
// discarded together with the element on despawn.
func (t *Text) Attach(child Drawable) {
	t.children = append(t.children, child)
}

// Draw paints the label, the value and any attached children.
func (t *Text) Draw(screen *ebiten.Image) {
	text.Draw(screen, t.label, t.face, textLeft, textBaseline, FontColor)
	advance := font.MeasureString(t.face, t.label).Ceil()
	text.Draw(screen, t.value, t.face, textLeft+advance, textBaseline, FontColor)
	for _, child := range t.children {
		child.Draw(screen)
	}
}

// SceneGraph owns the live overlay elements and paints them each frame.
// It implements core.Scene.
type SceneGraph struct {
	face     font.Face
	elements []*Text
}

// NewSceneGraph constructs a scene drawing text with the face loaded from
// fontPath. An empty or unloadable path falls back to the embedded face.
func NewSceneGraph(fontPath string) *SceneGraph {
	return &SceneGraph{face: loadFace(fontPath, FontSize)}
}

// Spawn creates a text element showing initialValue after the fixed label.
func (s *SceneGraph) Spawn(initialValue string) core.Element {
	t := &Text{face: s.face, label: Label, value: initialValue}
	s.elements = append(s.elements, t)
	return t
}

// Despawn removes the element and everything attached to it from the
// scene.
func (s *SceneGraph) Despawn(e core.Element) {
	for i, t := range s.elements {
		if core.Element(t) == e {
			s.elements = append(s.elements[:i], s.elements[i+1:]...)
			t.children = nil
			return
		}
	}
}

// Draw paints every live element onto the screen.
func (s *SceneGraph) Draw(screen *ebiten.Image) {
	for _, t := range s.elements {
		t.Draw(screen)
	}
}
