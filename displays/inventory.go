//go:build windows

// Package displays implements the Monitor Inventory (§4.1) and the
// Display-Change Monitor (§4.6): enumerating connected monitors and
// reacting when the OS reports the display topology changed.
package displays

import (
	"fmt"

	"github.com/thomazmoura/spotlight-dimmer/calc"
	"github.com/thomazmoura/spotlight-dimmer/geometry"
	"github.com/thomazmoura/spotlight-dimmer/winapi"
)

// Inventory enumerates connected monitors and caches the result between
// snapshots. The index assigned to a monitor is stable only within one
// snapshot, per §4.1's guarantee.
type Inventory struct {
	cached []calc.DisplayInfo
}

// NewInventory returns an empty Inventory. Call Refresh once before the
// first Snapshot.
func NewInventory() *Inventory {
	return &Inventory{}
}

// Refresh re-enumerates connected monitors, replacing the cached
// snapshot. Returns an error if no monitors were found — fatal at
// startup per §7 MonitorEnumerationEmpty.
func (inv *Inventory) Refresh() error {
	handles := winapi.EnumDisplayMonitors()
	if len(handles) == 0 {
		return fmt.Errorf("monitor enumeration returned no displays")
	}

	displays := make([]calc.DisplayInfo, 0, len(handles))
	for i, h := range handles {
		info, ok := winapi.GetMonitorInfo(h)
		if !ok {
			continue
		}
		displays = append(displays, calc.DisplayInfo{
			Index:  i,
			Bounds: info.Monitor.Rectangle(),
		})
	}
	if len(displays) == 0 {
		return fmt.Errorf("monitor enumeration returned no displays")
	}

	inv.cached = displays
	return nil
}

// Snapshot returns the cached display list from the most recent Refresh.
// Never allocates: callers own the returned slice but must not mutate it
// across calls since the backing array is reused until the next Refresh.
func (inv *Inventory) Snapshot() []calc.DisplayInfo {
	return inv.cached
}

// IndexForWindow returns the index of the display containing the
// largest portion of bounds, or -1 if bounds overlaps no known display
// (§4.1 display_index_for_window).
func (inv *Inventory) IndexForWindow(bounds geometry.Rectangle) int {
	best := -1
	var bestArea int64
	windowRect := winapi.RectFromRectangle(bounds)

	for _, d := range inv.cached {
		displayRect := winapi.RectFromRectangle(d.Bounds)
		overlap, ok := winapi.IntersectRect(windowRect, displayRect)
		if !ok {
			continue
		}
		area := overlap.Rectangle().Area()
		if area > bestArea {
			bestArea = area
			best = d.Index
		}
	}
	return best
}
