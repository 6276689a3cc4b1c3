//go:build windows

package winapi

import (
	"fmt"
	"syscall"
	"unsafe"
)

// WNDCLASSEXW mirrors the Win32 WNDCLASSEXW structure used for window
// class registration.
type WNDCLASSEXW struct {
	CbSize        uint32
	Style         uint32
	LpfnWndProc   uintptr
	CbClsExtra    int32
	CbWndExtra    int32
	HInstance     uintptr
	HIcon         uintptr
	HCursor       uintptr
	HbrBackground uintptr
	LpszMenuName  *uint16
	LpszClassName *uint16
	HIconSm       uintptr
}

// RegisterClass registers a window class named name whose window
// procedure is wndProc. Returns an error if registration fails (fatal at
// startup per §7 WindowCreationFailed).
func RegisterClass(name string, wndProc uintptr) error {
	className, err := syscall.UTF16PtrFromString(name)
	if err != nil {
		return fmt.Errorf("encode class name: %w", err)
	}

	wc := WNDCLASSEXW{
		Style:         CsHRedraw | CsVRedraw,
		LpfnWndProc:   wndProc,
		HInstance:     ModuleHandle(),
		LpszClassName: className,
	}
	wc.CbSize = uint32(unsafe.Sizeof(wc))

	r, _, callErr := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc)))
	if r == 0 {
		return fmt.Errorf("RegisterClassExW %q: %w", name, callErr)
	}
	return nil
}

// CreateWindow creates a window of class className with the given
// extended/ordinary styles and geometry. No parent, no menu: every window
// this engine creates is either a top-level overlay or a message-only
// tool window.
func CreateWindow(exStyle uint32, className, windowName string, style uint32, x, y, width, height int32) (HWND, error) {
	return createWindow(exStyle, className, windowName, style, x, y, width, height, 0)
}

// HwndMessage is the HWND_MESSAGE sentinel parent that makes a window
// message-only: it never appears on screen or in the taskbar, and it
// receives no broadcast messages, only messages posted directly to it.
const HwndMessage = ^uintptr(2) // (HWND)-3

// CreateMessageWindow creates a message-only window of class className,
// used by the focus tracker and display-change monitor to receive
// marshalled events without any visible window.
func CreateMessageWindow(className string) (HWND, error) {
	return createWindow(0, className, className, 0, 0, 0, 0, 0, HwndMessage)
}

func createWindow(exStyle uint32, className, windowName string, style uint32, x, y, width, height int32, parent uintptr) (HWND, error) {
	classPtr, err := syscall.UTF16PtrFromString(className)
	if err != nil {
		return 0, fmt.Errorf("encode class name: %w", err)
	}
	namePtr, err := syscall.UTF16PtrFromString(windowName)
	if err != nil {
		return 0, fmt.Errorf("encode window name: %w", err)
	}

	hwnd, _, callErr := procCreateWindowExW.Call(
		uintptr(exStyle),
		uintptr(unsafe.Pointer(classPtr)),
		uintptr(unsafe.Pointer(namePtr)),
		uintptr(style),
		uintptr(x), uintptr(y),
		uintptr(width), uintptr(height),
		parent, 0, ModuleHandle(), 0,
	)
	if hwnd == 0 {
		return 0, fmt.Errorf("CreateWindowExW %q: %w", className, callErr)
	}
	return HWND(hwnd), nil
}

// DestroyWindow destroys hwnd. Safe to call on a zero handle.
func DestroyWindow(hwnd HWND) {
	if hwnd == 0 {
		return
	}
	procDestroyWindow.Call(uintptr(hwnd))
}

// DefWindowProc is the default window procedure, called by a WndProc for
// any message it does not handle itself.
func DefWindowProc(hwnd HWND, msg uint32, wParam, lParam uintptr) uintptr {
	r, _, _ := procDefWindowProcW.Call(uintptr(hwnd), uintptr(msg), wParam, lParam)
	return r
}

// ShowWindow shows or hides hwnd per the given SW_* command.
func ShowWindow(hwnd HWND, cmd int32) {
	procShowWindow.Call(uintptr(hwnd), uintptr(cmd))
}

// SetWindowPos repositions/resizes/restacks hwnd in one call.
func SetWindowPos(hwnd HWND, insertAfter uintptr, x, y, width, height int32, flags uint32) error {
	r, _, callErr := procSetWindowPos.Call(
		uintptr(hwnd), insertAfter,
		uintptr(x), uintptr(y), uintptr(width), uintptr(height),
		uintptr(flags),
	)
	if r == 0 {
		return fmt.Errorf("SetWindowPos: %w", callErr)
	}
	return nil
}

// GetWindowRect returns hwnd's bounding rectangle in screen coordinates.
func GetWindowRect(hwnd HWND) (RECT, error) {
	var rect RECT
	r, _, callErr := procGetWindowRect.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&rect)))
	if r == 0 {
		return RECT{}, fmt.Errorf("GetWindowRect: %w", callErr)
	}
	return rect, nil
}

// SetLayeredWindowAttributes sets hwnd's alpha (0-255); hwnd must carry
// WS_EX_LAYERED.
func SetLayeredWindowAttributes(hwnd HWND, alpha byte) {
	procSetLayeredWindowAttributes.Call(uintptr(hwnd), 0, uintptr(alpha), LwaAlpha)
}

// SetWindowDisplayAffinity requests screen-capture exclusion for hwnd.
// Returns whether the OS accepted the request; §4.7's
// update_screen_capture_exclusion tallies this across the pool.
func SetWindowDisplayAffinity(hwnd HWND, affinity uint32) bool {
	r, _, _ := procSetWindowDisplayAffinity.Call(uintptr(hwnd), uintptr(affinity))
	return r != 0
}

// SetTimer arms a timer on hwnd, firing WM_TIMER with the given id every
// periodMs milliseconds.
func SetTimer(hwnd HWND, id uintptr, periodMs uint32) {
	procSetTimer.Call(uintptr(hwnd), id, uintptr(periodMs), 0)
}

// KillTimer disarms a timer previously armed with SetTimer.
func KillTimer(hwnd HWND, id uintptr) {
	procKillTimer.Call(uintptr(hwnd), id)
}

// CreateSolidBrush creates a GDI brush of the given COLORREF (0x00BBGGRR).
func CreateSolidBrush(colorref uint32) uintptr {
	r, _, _ := procCreateSolidBrush.Call(uintptr(colorref))
	return r
}

// DeleteObject releases a GDI object (brush, pen, font, ...).
func DeleteObject(obj uintptr) {
	if obj == 0 {
		return
	}
	procDeleteObject.Call(obj)
}

// BeginPaint validates hwnd's update region and returns a device context
// for painting it, along with the paint rectangle.
func BeginPaint(hwnd HWND) (hdc uintptr, paintRect RECT) {
	var ps PAINTSTRUCT
	hdc, _, _ = procBeginPaint.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&ps)))
	return hdc, ps.RcPaint
}

// EndPaint releases the device context obtained from BeginPaint.
func EndPaint(hwnd HWND) {
	var ps PAINTSTRUCT
	procEndPaint.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&ps)))
}

// FillRect fills rect on hdc with brush.
func FillRect(hdc uintptr, rect RECT, brush uintptr) {
	procFillRect.Call(hdc, uintptr(unsafe.Pointer(&rect)), brush)
}

// InvalidateRect marks hwnd's entire client area for repaint, causing a
// WM_PAINT to be queued.
func InvalidateRect(hwnd HWND) {
	procInvalidateRect.Call(uintptr(hwnd), 0, 1)
}

// DeferredBatch accumulates window-position updates to apply atomically
// via BeginDeferWindowPos/DeferWindowPos/EndDeferWindowPos, matching
// §4.7's "all updates for one call must be applied as an atomic batch"
// contract.
type DeferredBatch struct {
	handle uintptr
}

// BeginDeferWindowPos starts a batch sized to hold count window updates.
func BeginDeferWindowPos(count int) DeferredBatch {
	r, _, _ := procBeginDeferWindowPos.Call(uintptr(count))
	return DeferredBatch{handle: r}
}

// Defer queues one window's position/size/Z-order/visibility update into
// the batch. Safe to call even if a prior call in the same batch failed;
// the batch handle degrades to 0 and subsequent calls become no-ops,
// matching "per-window update failures are logged but must not abort the
// batch."
func (b *DeferredBatch) Defer(hwnd HWND, insertAfter uintptr, x, y, width, height int32, flags uint32) bool {
	if b.handle == 0 {
		return false
	}
	r, _, _ := procDeferWindowPos.Call(
		b.handle, uintptr(hwnd), insertAfter,
		uintptr(x), uintptr(y), uintptr(width), uintptr(height),
		uintptr(flags),
	)
	if r == 0 {
		return false
	}
	b.handle = r
	return true
}

// End commits every queued update atomically.
func (b *DeferredBatch) End() {
	if b.handle == 0 {
		return
	}
	procEndDeferWindowPos.Call(b.handle)
}
