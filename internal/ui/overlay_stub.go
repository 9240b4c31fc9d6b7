//go:build !ebiten

package ui

import (
	"image"

	"sandfall/internal/core"
)

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(core.Sim, int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// SetBrush is a no-op in headless builds.
func (o *Overlay) SetBrush(image.Rectangle) {}

// ShowingChunks always reports false in headless builds.
func (o *Overlay) ShowingChunks() bool { return false }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
