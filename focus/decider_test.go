package focus

import (
	"testing"

	"github.com/thomazmoura/spotlight-dimmer/geometry"
)

func rect(x, y, w, h int32) geometry.Rectangle {
	return geometry.Rectangle{X: x, Y: y, Width: w, Height: h}
}

func ptr(r geometry.Rectangle) *geometry.Rectangle {
	return &r
}

// S4: zero-sized focused window during minimize.
func TestDecider_ZeroSizedWindowDuringMinimize(t *testing.T) {
	d := NewDecider()

	zero := rect(100, 100, 0, 0)
	if got := d.Process(Observation{DisplayIndex: 0, Bounds: &zero}); got != Ignored {
		t.Fatalf("first observation: got %v, want Ignored", got)
	}

	valid := rect(100, 100, 800, 600)
	if got := d.Process(Observation{DisplayIndex: 0, Bounds: &valid}); got != PositionChanged {
		t.Fatalf("second observation: got %v, want PositionChanged", got)
	}
}

// Property 7: a zero-area observation never emits DisplayChanged or
// PositionChanged.
func TestDecider_ZeroAreaNeverChanges(t *testing.T) {
	d := NewDecider()
	cases := []geometry.Rectangle{
		rect(0, 0, 0, 0),
		rect(10, 10, 0, 50),
		rect(10, 10, 50, 0),
	}
	for _, display := range []int{0, 1, 2} {
		for _, b := range cases {
			if got := d.Process(Observation{DisplayIndex: display, Bounds: &b}); got == DisplayChanged || got == PositionChanged {
				t.Fatalf("display %d bounds %+v: got %v, want Ignored", display, b, got)
			}
		}
	}
}

// Property 8: a zero-area observation on a new display, followed by valid
// bounds on that same display, yields PositionChanged not DisplayChanged.
func TestDecider_DisplayChangeCapturedByZeroAreaObservation(t *testing.T) {
	d := NewDecider()
	initial := rect(0, 0, 640, 480)
	d.Process(Observation{DisplayIndex: 0, Bounds: &initial})

	zero := rect(0, 0, 0, 0)
	if got := d.Process(Observation{DisplayIndex: 1, Bounds: &zero}); got != Ignored {
		t.Fatalf("zero-area on new display: got %v, want Ignored", got)
	}

	valid := rect(50, 50, 300, 300)
	if got := d.Process(Observation{DisplayIndex: 1, Bounds: &valid}); got != PositionChanged {
		t.Fatalf("valid bounds after captured display change: got %v, want PositionChanged", got)
	}
}

// Property 9: repeating the same observation yields NoChange.
func TestDecider_RepeatedObservationIsNoChange(t *testing.T) {
	d := NewDecider()
	b := rect(10, 20, 300, 400)
	if got := d.Process(Observation{DisplayIndex: 0, Bounds: &b}); got != DisplayChanged {
		t.Fatalf("first observation: got %v, want DisplayChanged", got)
	}
	if got := d.Process(Observation{DisplayIndex: 0, Bounds: &b}); got != NoChange {
		t.Fatalf("repeated observation: got %v, want NoChange", got)
	}
}

func TestDecider_NoBoundsIsIgnoredWithoutStateChange(t *testing.T) {
	d := NewDecider()
	b := rect(10, 20, 300, 400)
	d.Process(Observation{DisplayIndex: 0, Bounds: &b})

	if got := d.Process(Observation{DisplayIndex: 5, Bounds: nil}); got != Ignored {
		t.Fatalf("nil bounds: got %v, want Ignored", got)
	}
	// State must be unchanged: a subsequent repeat of the last accepted
	// observation still yields NoChange, not DisplayChanged.
	if got := d.Process(Observation{DisplayIndex: 0, Bounds: &b}); got != NoChange {
		t.Fatalf("after ignored nil-bounds observation: got %v, want NoChange", got)
	}
}

func TestDecider_DisplayChangeWithValidBounds(t *testing.T) {
	d := NewDecider()
	b0 := rect(0, 0, 1920, 1080)
	if got := d.Process(Observation{DisplayIndex: 0, Bounds: &b0}); got != DisplayChanged {
		t.Fatalf("got %v, want DisplayChanged", got)
	}

	b1 := rect(2020, 100, 1000, 700)
	if got := d.Process(Observation{DisplayIndex: 1, Bounds: &b1}); got != DisplayChanged {
		t.Fatalf("got %v, want DisplayChanged", got)
	}
}

func TestDecider_PositionChangeWithinSameDisplay(t *testing.T) {
	d := NewDecider()
	b0 := rect(0, 0, 800, 600)
	d.Process(Observation{DisplayIndex: 0, Bounds: &b0})

	b1 := rect(100, 100, 800, 600)
	if got := d.Process(Observation{DisplayIndex: 0, Bounds: &b1}); got != PositionChanged {
		t.Fatalf("got %v, want PositionChanged", got)
	}
}
