package calc

import "github.com/thomazmoura/spotlight-dimmer/geometry"

// Calculate mutates state in place to reflect displays, the focused
// window's bounds (absent when there is no determinable focused
// window), the inventory index of the focused display, and cfg. It is
// pure, synchronous, and single-threaded: given the same inputs it
// produces byte-for-byte identical output, and it performs no heap
// allocation.
//
// focusedDisplay should be -1 when there is no focused display (no
// window is currently focused anywhere), matching the "undetermined"
// sentinel used throughout the focus pipeline.
func Calculate(state *AppState, focusedBounds *geometry.Rectangle, focusedDisplay int, cfg OverlayCalculationConfig) {
	for _, display := range state.Displays {
		hideAll(display)
	}

	for _, display := range state.Displays {
		if display.DisplayIndex != focusedDisplay || focusedBounds == nil {
			showFullScreen(display, cfg)
			continue
		}
		applyFocusedDisplay(display, *focusedBounds, cfg)
	}
}

func hideAll(display *DisplayOverlayState) {
	for i := range display.Overlays {
		display.Overlays[i].Visible = false
	}
}

func showFullScreen(display *DisplayOverlayState, cfg OverlayCalculationConfig) {
	o := display.Overlay(geometry.RegionFullScreen)
	o.Bounds = display.DisplayBounds
	o.Color = cfg.InactiveColor
	o.Opacity = cfg.InactiveOpacity
	o.Visible = true
}

func applyFocusedDisplay(display *DisplayOverlayState, windowBounds geometry.Rectangle, cfg OverlayCalculationConfig) {
	if cfg.Mode == ModeFullScreen {
		return
	}

	clamped := windowBounds.Clamp(display.DisplayBounds)
	bounds := display.DisplayBounds

	setSide(display.Overlay(geometry.RegionTop), geometry.Rectangle{
		X: bounds.Left(), Y: bounds.Top(),
		Width:  bounds.Right() - bounds.Left(),
		Height: clamped.Top() - bounds.Top(),
	}, cfg)

	setSide(display.Overlay(geometry.RegionBottom), geometry.Rectangle{
		X: bounds.Left(), Y: clamped.Bottom(),
		Width:  bounds.Right() - bounds.Left(),
		Height: bounds.Bottom() - clamped.Bottom(),
	}, cfg)

	setSide(display.Overlay(geometry.RegionLeft), geometry.Rectangle{
		X: bounds.Left(), Y: clamped.Top(),
		Width:  clamped.Left() - bounds.Left(),
		Height: clamped.Bottom() - clamped.Top(),
	}, cfg)

	setSide(display.Overlay(geometry.RegionRight), geometry.Rectangle{
		X: clamped.Right(), Y: clamped.Top(),
		Width:  bounds.Right() - clamped.Right(),
		Height: clamped.Bottom() - clamped.Top(),
	}, cfg)

	if cfg.Mode == ModePartialWithActive && !clamped.IsEmpty() {
		o := display.Overlay(geometry.RegionCenter)
		o.Bounds = clamped
		o.Color = cfg.ActiveColor
		o.Opacity = cfg.ActiveOpacity
		o.Visible = true
	}
}

// setSide writes a side overlay's geometry and shows it, unless the
// computed rectangle has zero width or height, in which case it is left
// hidden (both S5's "window fills display" case and any side collapsed
// by the window touching that edge).
func setSide(o *OverlayDefinition, bounds geometry.Rectangle, cfg OverlayCalculationConfig) {
	if bounds.IsEmpty() {
		return
	}
	o.Bounds = bounds
	o.Color = cfg.InactiveColor
	o.Opacity = cfg.InactiveOpacity
	o.Visible = true
}
