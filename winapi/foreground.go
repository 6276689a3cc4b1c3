//go:build windows

package winapi

import (
	"syscall"
	"unsafe"
)

// GetForegroundWindow returns the handle of the current foreground
// top-level window, or 0 if there is none.
func GetForegroundWindow() HWND {
	r, _, _ := procGetForegroundWindow.Call()
	return HWND(r)
}

// GetWindowText returns hwnd's title text, truncated at 512 UTF-16 units.
func GetWindowText(hwnd HWND) string {
	buf := make([]uint16, 512)
	n, _, _ := procGetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return syscall.UTF16ToString(buf[:n])
}

// GetClassName returns hwnd's window class name.
func GetClassName(hwnd HWND) string {
	buf := make([]uint16, 256)
	n, _, _ := procGetClassNameW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return syscall.UTF16ToString(buf[:n])
}

// GetWindowProcessID returns the process id that owns hwnd.
func GetWindowProcessID(hwnd HWND) uint32 {
	var pid uint32
	procGetWindowThreadProcessId.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&pid)))
	return pid
}

// OpenProcessQueryLimited opens a handle to pid with just enough access
// to query its image name, used to recognize the UWP application frame
// host process (§4.2). Returns false if the process cannot be opened.
func OpenProcessQueryLimited(pid uint32) (uintptr, bool) {
	handle, _, _ := procOpenProcess.Call(ProcessQueryLimitedInformation, 0, uintptr(pid))
	return handle, handle != 0
}

// QueryFullProcessImageName returns the full path of the executable
// backing an open process handle.
func QueryFullProcessImageName(handle uintptr) (string, bool) {
	buf := make([]uint16, 260)
	size := uint32(len(buf))
	r, _, _ := procQueryFullProcessImageNameW.Call(handle, 0, uintptr(unsafe.Pointer(&buf[0])), uintptr(unsafe.Pointer(&size)))
	if r == 0 {
		return "", false
	}
	return syscall.UTF16ToString(buf[:size]), true
}

// CloseHandle releases a handle obtained from OpenProcessQueryLimited.
func CloseHandle(handle uintptr) {
	if handle == 0 {
		return
	}
	procCloseHandle.Call(handle)
}

// IsWindowVisible reports whether hwnd is currently visible.
func IsWindowVisible(hwnd HWND) bool {
	r, _, _ := procIsWindowVisible.Call(uintptr(hwnd))
	return r != 0
}

// EnumChildWindows invokes visit for every direct and indirect child of
// hwnd, stopping early if visit returns false.
func EnumChildWindows(hwnd HWND, visit func(child HWND) bool) {
	cb := syscall.NewCallback(func(child uintptr, lParam uintptr) uintptr {
		if visit(HWND(child)) {
			return 1
		}
		return 0
	})
	procEnumChildWindows.Call(uintptr(hwnd), cb, 0)
}

// DwmGetExtendedFrameBounds resolves hwnd's visible bounds via
// DWMWA_EXTENDED_FRAME_BOUNDS, which excludes the invisible resize-drag
// border DWM composites around top-level windows. Returns false when DWM
// is unavailable or the call fails; callers fall back to GetWindowRect
// per §7 DwmBoundsUnavailable.
func DwmGetExtendedFrameBounds(hwnd HWND) (RECT, bool) {
	var rect RECT
	ret, _, _ := procDwmGetWindowAttribute.Call(
		uintptr(hwnd),
		DwmwaExtendedFrameBounds,
		uintptr(unsafe.Pointer(&rect)),
		unsafe.Sizeof(rect),
	)
	return rect, ret == 0
}
