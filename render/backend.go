//go:build windows

// Package render implements the Overlay Renderer (§4.7): a pool of
// click-through, always-on-top, taskbar-excluded overlay windows — six
// per display — updated in atomic batches, behind a capability-set
// Backend interface so the configured rendering strategy is substitutable
// (§9 "Dynamic dispatch over renderer backends").
package render

import (
	"strings"

	"github.com/thomazmoura/spotlight-dimmer/calc"
	"github.com/thomazmoura/spotlight-dimmer/logging"
)

// Backend is the capability set every renderer implementation must
// satisfy. A selection factory maps the configured backend name to a
// concrete Backend; unknown names fall back to the default and are
// logged (§9).
type Backend interface {
	// CreateOverlays creates one window per region per display, initially
	// hidden at minimum size, and preallocates per-window rendering
	// resources sized for each display's extent. Failure is fatal at
	// startup (§7 WindowCreationFailed).
	CreateOverlays(displays []calc.DisplayInfo, cfg calc.OverlayCalculationConfig) error

	// UpdateOverlays diffs state against the backend's private
	// last-applied copy and applies every changed slot as one atomic
	// batch.
	UpdateOverlays(state *calc.AppState) error

	// UpdateBrushColors refreshes pre-allocated per-window rendering
	// resources to reflect new colors without flashing hidden windows.
	UpdateBrushColors(cfg calc.OverlayCalculationConfig) error

	// UpdateScreenCaptureExclusion requests capture exclusion (or
	// re-inclusion) for every window in the pool and returns how many
	// accepted the request. Advisory; zero is an acceptable result.
	UpdateScreenCaptureExclusion(exclude bool) int

	// HideAllOverlays hides every window without destroying resources.
	HideAllOverlays()

	// CleanupOverlays destroys every window and releases rendering
	// resources. Safe to call multiple times.
	CleanupOverlays()
}

// NewBackend selects a Backend by the §6 RendererBackend configuration
// string. Unknown names fall back to LayeredWindow and are logged.
func NewBackend(name string) Backend {
	switch strings.ToLower(name) {
	case "", "layeredwindow", "updatelayeredwindow":
		return NewLayeredWindowBackend()
	case "compositeoverlay":
		logging.Get().Overlay("CompositeOverlay backend selected but not implemented; using LayeredWindow")
		return NewLayeredWindowBackend()
	default:
		logging.Get().Overlay("unrecognized RendererBackend %q; using LayeredWindow", name)
		return NewLayeredWindowBackend()
	}
}
