package calc

import (
	"testing"

	"github.com/thomazmoura/spotlight-dimmer/geometry"
)

func testConfig(mode Mode) OverlayCalculationConfig {
	return OverlayCalculationConfig{
		Mode:            mode,
		InactiveColor:   geometry.Black,
		InactiveOpacity: 153,
		ActiveColor:     geometry.Black,
		ActiveOpacity:   102,
	}
}

func rect(x, y, w, h int32) geometry.Rectangle {
	return geometry.Rectangle{X: x, Y: y, Width: w, Height: h}
}

// S1: dual-monitor focus switch in FullScreen mode.
func TestCalculate_DualMonitorFocusSwitch(t *testing.T) {
	displays := []DisplayInfo{
		{Index: 0, Bounds: rect(0, 0, 1920, 1080)},
		{Index: 1, Bounds: rect(1920, 0, 1920, 1080)},
	}
	state := NewAppState(displays)
	cfg := testConfig(ModeFullScreen)

	bounds := rect(100, 100, 800, 600)
	Calculate(state, &bounds, 0, cfg)

	if state.Displays[0].Overlay(geometry.RegionFullScreen).Visible {
		t.Fatal("D0 should have no visible FullScreen overlay while focused")
	}
	d1 := state.Displays[1].Overlay(geometry.RegionFullScreen)
	if !d1.Visible || d1.Bounds != rect(1920, 0, 1920, 1080) {
		t.Fatalf("D1 expected visible FullScreen at (1920,0,1920,1080), got %+v", d1)
	}

	bounds = rect(2020, 100, 1000, 700)
	Calculate(state, &bounds, 1, cfg)

	if state.Displays[1].Overlay(geometry.RegionFullScreen).Visible {
		t.Fatal("D1 should have no visible FullScreen overlay while focused")
	}
	d0 := state.Displays[0].Overlay(geometry.RegionFullScreen)
	if !d0.Visible || d0.Bounds != rect(0, 0, 1920, 1080) {
		t.Fatalf("D0 expected visible FullScreen at (0,0,1920,1080), got %+v", d0)
	}
}

// S2: Partial mode around a centered window.
func TestCalculate_PartialCentered(t *testing.T) {
	displays := []DisplayInfo{{Index: 0, Bounds: rect(0, 0, 1920, 1080)}}
	state := NewAppState(displays)
	cfg := testConfig(ModePartial)

	window := rect(400, 200, 1120, 680)
	Calculate(state, &window, 0, cfg)

	d := state.Displays[0]
	want := map[geometry.OverlayRegion]geometry.Rectangle{
		geometry.RegionTop:    rect(0, 0, 1920, 200),
		geometry.RegionBottom: rect(0, 880, 1920, 200),
		geometry.RegionLeft:   rect(0, 200, 400, 680),
		geometry.RegionRight:  rect(1520, 200, 400, 680),
	}
	for region, expected := range want {
		o := d.Overlay(region)
		if !o.Visible || o.Bounds != expected {
			t.Errorf("region %v: expected visible %+v, got visible=%v bounds=%+v", region, expected, o.Visible, o.Bounds)
		}
	}
	if d.Overlay(geometry.RegionCenter).Visible {
		t.Error("Center should be hidden in Partial mode")
	}
	if d.Overlay(geometry.RegionFullScreen).Visible {
		t.Error("FullScreen should be hidden while focused")
	}
}

// S3: PartialWithActive on the same inputs as S2.
func TestCalculate_PartialWithActive(t *testing.T) {
	displays := []DisplayInfo{{Index: 0, Bounds: rect(0, 0, 1920, 1080)}}
	state := NewAppState(displays)
	cfg := testConfig(ModePartialWithActive)

	window := rect(400, 200, 1120, 680)
	Calculate(state, &window, 0, cfg)

	center := state.Displays[0].Overlay(geometry.RegionCenter)
	if !center.Visible || center.Bounds != window {
		t.Fatalf("expected visible Center at %+v, got visible=%v bounds=%+v", window, center.Visible, center.Bounds)
	}
	if center.Color != cfg.ActiveColor || center.Opacity != cfg.ActiveOpacity {
		t.Fatalf("Center should use active color/opacity, got %+v/%d", center.Color, center.Opacity)
	}
	for _, region := range []geometry.OverlayRegion{geometry.RegionTop, geometry.RegionBottom, geometry.RegionLeft, geometry.RegionRight} {
		if !state.Displays[0].Overlay(region).Visible {
			t.Errorf("region %v should remain visible", region)
		}
	}
}

// S5: window fills the display in Partial mode; all sides collapse.
func TestCalculate_WindowFillsDisplay(t *testing.T) {
	displays := []DisplayInfo{{Index: 0, Bounds: rect(0, 0, 1920, 1080)}}
	state := NewAppState(displays)
	cfg := testConfig(ModePartial)

	window := rect(0, 0, 1920, 1080)
	Calculate(state, &window, 0, cfg)

	for _, o := range state.Displays[0].Overlays {
		if o.Visible {
			t.Errorf("region %v should be hidden when window fills display, got %+v", o.Region, o)
		}
	}
}

// Property 1 & 4: at most one of FullScreen/non-FullScreen is visible per
// display, and non-focused displays show FullScreen with inactive
// color/opacity.
func TestCalculate_ExclusiveVisibility(t *testing.T) {
	displays := []DisplayInfo{
		{Index: 0, Bounds: rect(0, 0, 1920, 1080)},
		{Index: 1, Bounds: rect(1920, 0, 1920, 1080)},
		{Index: 2, Bounds: rect(3840, 0, 1280, 1024)},
	}
	for _, mode := range []Mode{ModeFullScreen, ModePartial, ModePartialWithActive} {
		state := NewAppState(displays)
		cfg := testConfig(mode)
		window := rect(2020, 100, 1000, 700)
		Calculate(state, &window, 1, cfg)

		for _, d := range state.Displays {
			fullVisible := d.Overlay(geometry.RegionFullScreen).Visible
			otherVisible := false
			for _, region := range []geometry.OverlayRegion{geometry.RegionTop, geometry.RegionBottom, geometry.RegionLeft, geometry.RegionRight, geometry.RegionCenter} {
				if d.Overlay(region).Visible {
					otherVisible = true
				}
			}
			if fullVisible && otherVisible {
				t.Fatalf("mode %v display %d: FullScreen and another region both visible", mode, d.DisplayIndex)
			}
			if d.DisplayIndex != 1 {
				full := d.Overlay(geometry.RegionFullScreen)
				if !full.Visible || full.Color != cfg.InactiveColor || full.Opacity != cfg.InactiveOpacity {
					t.Fatalf("mode %v non-focused display %d: expected inactive FullScreen, got %+v", mode, d.DisplayIndex, full)
				}
			}
		}
	}
}

// Property 2: every visible overlay is within its display's bounds and
// has positive width/height.
func TestCalculate_VisibleOverlaysWithinBounds(t *testing.T) {
	displays := []DisplayInfo{{Index: 0, Bounds: rect(0, 0, 1920, 1080)}}
	cases := []geometry.Rectangle{
		rect(400, 200, 1120, 680),
		rect(-100, -100, 300, 300),
		rect(0, 0, 1920, 1080),
		rect(1800, 1000, 500, 500),
	}
	for _, window := range cases {
		for _, mode := range []Mode{ModePartial, ModePartialWithActive} {
			state := NewAppState(displays)
			Calculate(state, &window, 0, testConfig(mode))
			for _, o := range state.Displays[0].Overlays {
				if !o.Visible {
					continue
				}
				if o.Bounds.IsEmpty() {
					t.Errorf("mode %v window %+v: visible overlay %v has empty bounds", mode, window, o.Region)
				}
				if !state.Displays[0].DisplayBounds.Contains(o.Bounds) {
					t.Errorf("mode %v window %+v: overlay %v bounds %+v escape display bounds %+v", mode, window, o.Region, o.Bounds, state.Displays[0].DisplayBounds)
				}
			}
		}
	}
}

// Property 3: the union of the four side overlays equals the display
// bounds minus the clamped window, checked by area accounting (no
// overlap between sides, and total area matches).
func TestCalculate_SideUnionMatchesComplement(t *testing.T) {
	displays := []DisplayInfo{{Index: 0, Bounds: rect(0, 0, 1920, 1080)}}
	window := rect(400, 200, 1120, 680)
	state := NewAppState(displays)
	Calculate(state, &window, 0, testConfig(ModePartial))

	clamped := window.Clamp(displays[0].Bounds)
	expectedArea := displays[0].Bounds.Area() - clamped.Area()

	var total int64
	for _, region := range []geometry.OverlayRegion{geometry.RegionTop, geometry.RegionBottom, geometry.RegionLeft, geometry.RegionRight} {
		o := state.Displays[0].Overlay(region)
		if o.Visible {
			total += o.Bounds.Area()
		}
	}
	if total != expectedArea {
		t.Fatalf("expected side overlay area %d, got %d", expectedArea, total)
	}
}

// Property 5: idempotence. Running Calculate twice with the same inputs
// leaves the AppState observationally identical.
func TestCalculate_Idempotent(t *testing.T) {
	displays := []DisplayInfo{
		{Index: 0, Bounds: rect(0, 0, 1920, 1080)},
		{Index: 1, Bounds: rect(1920, 0, 1920, 1080)},
	}
	state := NewAppState(displays)
	window := rect(400, 200, 1120, 680)
	cfg := testConfig(ModePartialWithActive)

	Calculate(state, &window, 0, cfg)
	first := snapshotOverlays(state)

	Calculate(state, &window, 0, cfg)
	second := snapshotOverlays(state)

	if first != second {
		t.Fatalf("expected identical state across repeated calls:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

type overlaySnapshot [2][6]OverlayDefinition

func snapshotOverlays(state *AppState) overlaySnapshot {
	var snap overlaySnapshot
	for i, d := range state.Displays {
		snap[i] = d.Overlays
	}
	return snap
}

// Property 6: zero heap allocation per call, regardless of call count.
func TestCalculate_ZeroAllocation(t *testing.T) {
	displays := []DisplayInfo{
		{Index: 0, Bounds: rect(0, 0, 1920, 1080)},
		{Index: 1, Bounds: rect(1920, 0, 1920, 1080)},
	}
	state := NewAppState(displays)
	window := rect(400, 200, 1120, 680)
	cfg := testConfig(ModePartialWithActive)

	allocs := testing.AllocsPerRun(1000, func() {
		Calculate(state, &window, 0, cfg)
	})
	if allocs != 0 {
		t.Fatalf("expected 0 allocations per Calculate call, got %v", allocs)
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"FullScreen":        ModeFullScreen,
		"fullscreen":        ModeFullScreen,
		"Partial":           ModePartial,
		"PARTIAL":           ModePartial,
		"PartialWithActive": ModePartialWithActive,
		"partialwithactive": ModePartialWithActive,
		"garbage":           ModeFullScreen,
		"":                  ModeFullScreen,
	}
	for input, want := range cases {
		if got := ParseMode(input); got != want {
			t.Errorf("ParseMode(%q) = %v, want %v", input, got, want)
		}
	}
}
