//go:build windows

package render

import (
	"testing"

	"github.com/thomazmoura/spotlight-dimmer/geometry"
)

func TestColorref(t *testing.T) {
	c := geometry.Color{R: 0x10, G: 0x20, B: 0x30}
	got := colorref(c)
	want := uint32(0x30) <<16 | uint32(0x20)<<8 | uint32(0x10)
	if got != want {
		t.Errorf("colorref(%v) = %#x, want %#x", c, got, want)
	}
}

func TestNewBackend_DefaultsToLayeredWindow(t *testing.T) {
	for _, name := range []string{"", "LayeredWindow", "layeredwindow", "UpdateLayeredWindow", "bogus"} {
		b := NewBackend(name)
		if _, ok := b.(*LayeredWindowBackend); !ok {
			t.Errorf("NewBackend(%q) = %T, want *LayeredWindowBackend", name, b)
		}
	}
}

func TestNewBackend_CompositeOverlayFallsBackToLayeredWindow(t *testing.T) {
	b := NewBackend("CompositeOverlay")
	if _, ok := b.(*LayeredWindowBackend); !ok {
		t.Errorf("NewBackend(CompositeOverlay) = %T, want *LayeredWindowBackend", b)
	}
}
