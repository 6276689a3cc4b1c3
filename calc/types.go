// Package calc implements the overlay calculator (spec §4.3): a pure,
// synchronous, zero-allocation function that turns display topology, a
// focused window rectangle, and a configuration into a deterministic set
// of overlay rectangles held in a pre-allocated AppState.
package calc

import "github.com/thomazmoura/spotlight-dimmer/geometry"

// Mode selects how non-focused regions of the focused display are
// treated.
type Mode int

const (
	// ModeFullScreen dims every display except the one containing the
	// focused window, in full.
	ModeFullScreen Mode = iota
	// ModePartial additionally dims the regions of the focused display
	// around the focused window, leaving the window itself undimmed.
	ModePartial
	// ModePartialWithActive is ModePartial plus a tinted overlay over the
	// focused window's own rectangle.
	ModePartialWithActive
)

// ParseMode parses a mode string case-insensitively, defaulting to
// ModeFullScreen for anything unrecognized, matching §6's documented
// fallback behavior.
func ParseMode(s string) Mode {
	switch lower(s) {
	case "partial":
		return ModePartial
	case "partialwithactive":
		return ModePartialWithActive
	default:
		return ModeFullScreen
	}
}

// String renders the mode the way it appears in the configuration file.
func (m Mode) String() string {
	switch m {
	case ModePartial:
		return "Partial"
	case ModePartialWithActive:
		return "PartialWithActive"
	default:
		return "FullScreen"
	}
}

func lower(s string) string {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b[i] = c
	}
	return string(b)
}

// OverlayCalculationConfig is the calculator's contract (spec §3):
// richer user configuration is projected down to this struct before
// every call to Calculate.
type OverlayCalculationConfig struct {
	Mode           Mode
	InactiveColor  geometry.Color
	InactiveOpacity uint8
	ActiveColor    geometry.Color
	ActiveOpacity  uint8
}

// DisplayInfo is the subset of monitor-inventory data the calculator
// needs: a stable-within-snapshot index and the monitor's bounds.
type DisplayInfo struct {
	Index  int
	Bounds geometry.Rectangle
}

// OverlayDefinition is one mutable overlay slot. Region is fixed at
// construction; Bounds, Color, Opacity, and Visible are updated in
// place by every call to Calculate.
type OverlayDefinition struct {
	Region  geometry.OverlayRegion
	Bounds  geometry.Rectangle
	Color   geometry.Color
	Opacity uint8
	Visible bool
}

// DisplayOverlayState holds the six overlay slots — one per region — for
// a single display. Created once per display at startup and reused for
// the display's lifetime.
type DisplayOverlayState struct {
	DisplayIndex int
	DisplayBounds geometry.Rectangle
	Overlays     [6]OverlayDefinition
}

// NewDisplayOverlayState allocates one DisplayOverlayState for the given
// display, with every region slot present but hidden.
func NewDisplayOverlayState(display DisplayInfo) *DisplayOverlayState {
	s := &DisplayOverlayState{
		DisplayIndex:  display.Index,
		DisplayBounds: display.Bounds,
	}
	for i, region := range geometry.Regions {
		s.Overlays[i] = OverlayDefinition{Region: region}
	}
	return s
}

// Overlay returns the slot for the given region within this display.
func (s *DisplayOverlayState) Overlay(region geometry.OverlayRegion) *OverlayDefinition {
	return &s.Overlays[region]
}

// AppState is the calculator's entire working set: one DisplayOverlayState
// per display in inventory order. It is created and sized once at
// startup and only ever rebuilt (not resized incrementally) when the
// display-change monitor detects a topology change.
type AppState struct {
	Displays []*DisplayOverlayState
}

// NewAppState builds an AppState with one DisplayOverlayState per entry
// in displays, in the given order.
func NewAppState(displays []DisplayInfo) *AppState {
	state := &AppState{Displays: make([]*DisplayOverlayState, len(displays))}
	for i, d := range displays {
		state.Displays[i] = NewDisplayOverlayState(d)
	}
	return state
}
