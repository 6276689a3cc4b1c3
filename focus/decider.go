// Package focus turns raw OS focus observations into the decisions that
// drive the overlay calculator: the pure Decider state machine (§4.4) and,
// on Windows, the Tracker that feeds it from foreground/location hooks and
// a safety-poll timer (§4.5).
package focus

import "github.com/thomazmoura/spotlight-dimmer/geometry"

// Result is the Decider's verdict for one observation.
type Result int

const (
	// Ignored means the observation carried no actionable information
	// (invalid bounds, or no bounds at all).
	Ignored Result = iota
	// DisplayChanged means the focused display changed from the last
	// accepted observation.
	DisplayChanged
	// PositionChanged means the focused display is unchanged but the
	// focused window's bounds moved or resized.
	PositionChanged
	// NoChange means the observation exactly repeats the last accepted
	// state.
	NoChange
)

// Observation is one sample fed to the Decider: a display index and the
// focused window's bounds on it. Bounds is nil when no bounds could be
// determined at all (distinct from a present-but-zero-area rectangle).
type Observation struct {
	DisplayIndex int
	Bounds       *geometry.Rectangle
}

// Decider is the pure focus-change state machine described in §4.4.
// Create it with NewDecider, which starts last_display_index at -1 and
// last_bounds absent; the zero value starts last_display_index at 0.
type Decider struct {
	lastDisplayIndex int
	lastBounds       *geometry.Rectangle
	hasLastBounds    bool
}

// NewDecider returns a Decider in its initial state.
func NewDecider() *Decider {
	return &Decider{lastDisplayIndex: -1}
}

// Process evaluates one observation against the Decider's private state,
// in the rule order specified by §4.4, and returns the resulting Result.
func (d *Decider) Process(obs Observation) Result {
	if obs.Bounds != nil && obs.Bounds.IsEmpty() {
		if obs.DisplayIndex != d.lastDisplayIndex {
			d.lastDisplayIndex = obs.DisplayIndex
			d.hasLastBounds = false
			d.lastBounds = nil
		}
		return Ignored
	}

	if obs.Bounds == nil {
		return Ignored
	}

	displayChanged := obs.DisplayIndex != d.lastDisplayIndex
	boundsChanged := !d.hasLastBounds || *d.lastBounds != *obs.Bounds

	if displayChanged {
		d.lastDisplayIndex = obs.DisplayIndex
		bounds := *obs.Bounds
		d.lastBounds = &bounds
		d.hasLastBounds = true
		return DisplayChanged
	}
	if boundsChanged {
		bounds := *obs.Bounds
		d.lastBounds = &bounds
		d.hasLastBounds = true
		return PositionChanged
	}
	return NoChange
}
