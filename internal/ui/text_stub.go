//go:build !ebiten

package ui

import "screendiags/internal/core"

// SceneGraph is a no-op placeholder used when the ebiten build tag is
// absent.
type SceneGraph struct{}

// NewSceneGraph constructs a stub scene.
func NewSceneGraph(string) *SceneGraph { return &SceneGraph{} }

// Spawn returns an element that discards writes.
func (s *SceneGraph) Spawn(string) core.Element { return stubElement{} }

// Despawn is a no-op in headless builds.
func (s *SceneGraph) Despawn(core.Element) {}

// Draw is a no-op placeholder.
func (s *SceneGraph) Draw(any) {}

type stubElement struct{}

func (stubElement) SetValue(string) {}
