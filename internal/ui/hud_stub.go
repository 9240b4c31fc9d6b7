//go:build !ebiten

package ui

import "sandfall/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Sim, int) *HUD { return nil }

// SetSwatches is a no-op in the headless build.
func (h *HUD) SetSwatches([]Swatch) {}

// Select is a no-op in the headless build.
func (h *HUD) Select(int) {}

// SetStatus is a no-op in the headless build.
func (h *HUD) SetStatus(...string) {}

// Update is a no-op in the headless build.
func (h *HUD) Update(int) int { return -1 }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
