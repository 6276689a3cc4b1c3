//go:build windows

package engine

import "errors"

// Sentinel errors for the three fatal startup conditions §6 names, plus
// the config-path resolution failure that precedes them in practice.
// cmd/spotlightdimmer maps each to a distinct process exit code.
var (
	ErrMonitorEnumerationEmpty = errors.New("monitor enumeration returned no displays")
	ErrWindowCreationFailed    = errors.New("overlay window creation failed")
	ErrHookRegistrationFailed  = errors.New("event hook registration failed")
	ErrConfigPathUnavailable   = errors.New("configuration path unavailable")
)
