//go:build windows

package render

import (
	"fmt"
	"sync"
	"syscall"

	"github.com/thomazmoura/spotlight-dimmer/calc"
	"github.com/thomazmoura/spotlight-dimmer/geometry"
	"github.com/thomazmoura/spotlight-dimmer/logging"
	"github.com/thomazmoura/spotlight-dimmer/winapi"
)

const layeredWindowClassName = "SpotlightDimmerOverlayLayered"

type slotKey struct {
	display int
	region  geometry.OverlayRegion
}

type overlayWindow struct {
	hwnd  winapi.HWND
	brush uintptr
	last  calc.OverlayDefinition
}

// LayeredWindowBackend is the default Overlay Renderer backend: one
// WS_EX_LAYERED window per region per display, filled with a solid brush
// in WM_PAINT, with overall alpha applied via
// SetLayeredWindowAttributes. Window-position/size/Z-order/visibility
// updates are batched through DeferWindowPos so a call to UpdateOverlays
// is atomic from the user's perspective (§4.7).
type LayeredWindowBackend struct {
	mu      sync.Mutex
	windows map[slotKey]*overlayWindow
	classRegistered bool
}

// windowsByHandle lets the shared window procedure find the
// overlayWindow for a paint message; callbacks cannot carry Go user data,
// so this is the "process-wide weak reference cell" pattern from §9.
var windowsByHandle = struct {
	sync.Mutex
	m map[winapi.HWND]*overlayWindow
}{m: make(map[winapi.HWND]*overlayWindow)}

// NewLayeredWindowBackend returns an empty backend. Call CreateOverlays
// before any other method.
func NewLayeredWindowBackend() *LayeredWindowBackend {
	return &LayeredWindowBackend{windows: make(map[slotKey]*overlayWindow)}
}

var _ Backend = (*LayeredWindowBackend)(nil)

func (b *LayeredWindowBackend) CreateOverlays(displays []calc.DisplayInfo, cfg calc.OverlayCalculationConfig) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.classRegistered {
		if err := winapi.RegisterClass(layeredWindowClassName, syscall.NewCallback(overlayWndProc)); err != nil {
			return fmt.Errorf("register overlay window class: %w", err)
		}
		b.classRegistered = true
	}

	for _, d := range displays {
		for _, region := range geometry.Regions {
			key := slotKey{display: d.Index, region: region}
			if _, exists := b.windows[key]; exists {
				continue
			}

			exStyle := uint32(winapi.WsExLayered | winapi.WsExTopmost | winapi.WsExToolWindow | winapi.WsExNoActivate | winapi.WsExTransparent)
			hwnd, err := winapi.CreateWindow(exStyle, layeredWindowClassName, layeredWindowClassName, winapi.WsPopup, 0, 0, 1, 1)
			if err != nil {
				return fmt.Errorf("create overlay window (display %d, region %v): %w", d.Index, region, err)
			}

			ow := &overlayWindow{hwnd: hwnd, brush: winapi.CreateSolidBrush(colorref(cfg.InactiveColor))}

			windowsByHandle.Lock()
			windowsByHandle.m[hwnd] = ow
			windowsByHandle.Unlock()

			b.windows[key] = ow
		}
	}
	return nil
}

func (b *LayeredWindowBackend) UpdateOverlays(state *calc.AppState) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	batch := winapi.BeginDeferWindowPos(len(b.windows))
	var firstErr error

	for _, display := range state.Displays {
		for _, overlay := range display.Overlays {
			key := slotKey{display: display.DisplayIndex, region: overlay.Region}
			ow, ok := b.windows[key]
			if !ok {
				continue
			}
			if ow.last == overlay {
				continue
			}

			flags := winapi.SwpNoActivate
			if overlay.Visible {
				flags |= winapi.SwpShowWindow
			} else {
				flags |= winapi.SwpHideWindow
			}

			width, height := overlay.Bounds.Width, overlay.Bounds.Height
			if width <= 0 {
				width = 1
			}
			if height <= 0 {
				height = 1
			}

			if !batch.Defer(ow.hwnd, winapi.HwndTopmost, overlay.Bounds.X, overlay.Bounds.Y, width, height, uint32(flags)) {
				if firstErr == nil {
					firstErr = fmt.Errorf("update overlay window (display %d, region %v) failed", display.DisplayIndex, overlay.Region)
				}
				logging.Get().Overlay("failed to queue update for display %d region %v", display.DisplayIndex, overlay.Region)
				continue
			}

			if ow.last.Color != overlay.Color {
				b.applyBrush(ow, overlay.Color)
			}
			if ow.last.Opacity != overlay.Opacity {
				winapi.SetLayeredWindowAttributes(ow.hwnd, overlay.Opacity)
			}
			if !ow.last.Visible && overlay.Visible {
				winapi.InvalidateRect(ow.hwnd)
			}
			ow.last = overlay
		}
	}

	batch.End()
	return firstErr
}

func (b *LayeredWindowBackend) UpdateBrushColors(cfg calc.OverlayCalculationConfig) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for key, ow := range b.windows {
		color := cfg.InactiveColor
		if key.region == geometry.RegionCenter {
			color = cfg.ActiveColor
		}
		b.applyBrush(ow, color)
	}
	return nil
}

func (b *LayeredWindowBackend) applyBrush(ow *overlayWindow, color geometry.Color) {
	winapi.DeleteObject(ow.brush)
	ow.brush = winapi.CreateSolidBrush(colorref(color))
	if ow.last.Visible {
		// Force a repaint so the new brush is visible immediately; hidden
		// windows pick it up on their next show without ever flashing.
		winapi.InvalidateRect(ow.hwnd)
	}
}

func (b *LayeredWindowBackend) UpdateScreenCaptureExclusion(exclude bool) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	affinity := uint32(winapi.WdaNone)
	if exclude {
		affinity = winapi.WdaExcludeFromCapture
	}

	accepted := 0
	for _, ow := range b.windows {
		if winapi.SetWindowDisplayAffinity(ow.hwnd, affinity) {
			accepted++
		}
	}
	return accepted
}

func (b *LayeredWindowBackend) HideAllOverlays() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ow := range b.windows {
		winapi.ShowWindow(ow.hwnd, winapi.SwHide)
		ow.last.Visible = false
	}
}

func (b *LayeredWindowBackend) CleanupOverlays() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for key, ow := range b.windows {
		windowsByHandle.Lock()
		delete(windowsByHandle.m, ow.hwnd)
		windowsByHandle.Unlock()

		winapi.DeleteObject(ow.brush)
		winapi.DestroyWindow(ow.hwnd)
		delete(b.windows, key)
	}
}

func colorref(c geometry.Color) uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16
}

// overlayWndProc paints each overlay window's client area with its
// current brush. It is shared by every LayeredWindowBackend window;
// per-window state is looked up through windowsByHandle since the OS
// callback cannot carry Go user data directly.
func overlayWndProc(hwnd uintptr, msg uint32, wParam, lParam uintptr) uintptr {
	switch msg {
	case winapi.WmPaint:
		windowsByHandle.Lock()
		ow := windowsByHandle.m[winapi.HWND(hwnd)]
		windowsByHandle.Unlock()
		if ow == nil {
			break
		}
		hdc, paintRect := winapi.BeginPaint(winapi.HWND(hwnd))
		winapi.FillRect(hdc, paintRect, ow.brush)
		winapi.EndPaint(winapi.HWND(hwnd))
		return 0
	case winapi.WmDestroy:
		return 0
	}
	return winapi.DefWindowProc(winapi.HWND(hwnd), msg, wParam, lParam)
}
