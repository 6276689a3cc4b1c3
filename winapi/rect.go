//go:build windows

package winapi

import "github.com/thomazmoura/spotlight-dimmer/geometry"

// RECT mirrors the Win32 RECT layout: left/top inclusive, right/bottom
// exclusive, matching geometry.Rectangle's own convention.
type RECT struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// Rectangle converts a RECT to a geometry.Rectangle.
func (r RECT) Rectangle() geometry.Rectangle {
	return geometry.Rectangle{
		X:      r.Left,
		Y:      r.Top,
		Width:  r.Right - r.Left,
		Height: r.Bottom - r.Top,
	}
}

// RectFromRectangle converts a geometry.Rectangle to the RECT layout a
// Win32 call expects.
func RectFromRectangle(r geometry.Rectangle) RECT {
	return RECT{Left: r.Left(), Top: r.Top(), Right: r.Right(), Bottom: r.Bottom()}
}

// POINT is a single Win32 coordinate pair.
type POINT struct {
	X int32
	Y int32
}

// MSG mirrors the Win32 MSG structure delivered by GetMessageW.
type MSG struct {
	HWnd    HWND
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      POINT
}

// MONITORINFO mirrors the Win32 MONITORINFO structure.
type MONITORINFO struct {
	CbSize    uint32
	Monitor   RECT
	WorkArea RECT
	Flags     uint32
}

// PAINTSTRUCT mirrors the Win32 PAINTSTRUCT structure populated by
// BeginPaint.
type PAINTSTRUCT struct {
	Hdc         uintptr
	FErase      int32
	RcPaint     RECT
	FRestore    int32
	FIncUpdate  int32
	RgbReserved [32]byte
}
