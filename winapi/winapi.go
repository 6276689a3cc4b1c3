//go:build windows

// Package winapi holds the raw Win32 bindings shared by displays,
// winspect, focus, and render: DLL/proc tables via
// golang.org/x/sys/windows.NewLazySystemDLL, the handful of structs the
// calls need, and the style/message constants those calls are built
// around. Every exported function here is a thin syscall wrapper; the
// domain logic using them lives in its own package.
package winapi

import "golang.org/x/sys/windows"

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")
	dwmapi   = windows.NewLazySystemDLL("dwmapi.dll")
	gdi32    = windows.NewLazySystemDLL("gdi32.dll")

	procGetModuleHandleW    = kernel32.NewProc("GetModuleHandleW")
	procGetCurrentThreadId  = kernel32.NewProc("GetCurrentThreadId")
	procOpenProcess             = kernel32.NewProc("OpenProcess")
	procQueryFullProcessImageNameW = kernel32.NewProc("QueryFullProcessImageNameW")
	procCloseHandle             = kernel32.NewProc("CloseHandle")

	procRegisterClassExW = user32.NewProc("RegisterClassExW")
	procCreateWindowExW  = user32.NewProc("CreateWindowExW")
	procDestroyWindow    = user32.NewProc("DestroyWindow")
	procDefWindowProcW   = user32.NewProc("DefWindowProcW")
	procShowWindow       = user32.NewProc("ShowWindow")
	procSetWindowPos     = user32.NewProc("SetWindowPos")
	procGetWindowRect    = user32.NewProc("GetWindowRect")

	procBeginDeferWindowPos = user32.NewProc("BeginDeferWindowPos")
	procDeferWindowPos      = user32.NewProc("DeferWindowPos")
	procEndDeferWindowPos   = user32.NewProc("EndDeferWindowPos")

	procSetLayeredWindowAttributes  = user32.NewProc("SetLayeredWindowAttributes")
	procSetWindowDisplayAffinity    = user32.NewProc("SetWindowDisplayAffinity")
	procBeginPaint                  = user32.NewProc("BeginPaint")
	procEndPaint                    = user32.NewProc("EndPaint")
	procFillRect                    = user32.NewProc("FillRect")
	procInvalidateRect              = user32.NewProc("InvalidateRect")

	procGetMessageW       = user32.NewProc("GetMessageW")
	procTranslateMessage  = user32.NewProc("TranslateMessage")
	procDispatchMessageW  = user32.NewProc("DispatchMessageW")
	procPostMessageW      = user32.NewProc("PostMessageW")
	procPostThreadMessageW = user32.NewProc("PostThreadMessageW")
	procPostQuitMessage   = user32.NewProc("PostQuitMessage")

	procSetTimer = user32.NewProc("SetTimer")
	procKillTimer = user32.NewProc("KillTimer")

	procGetForegroundWindow = user32.NewProc("GetForegroundWindow")
	procGetWindowTextW      = user32.NewProc("GetWindowTextW")
	procGetClassNameW       = user32.NewProc("GetClassNameW")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procEnumChildWindows    = user32.NewProc("EnumChildWindows")
	procIsWindowVisible     = user32.NewProc("IsWindowVisible")

	procEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfoW     = user32.NewProc("GetMonitorInfoW")
	procIntersectRect       = user32.NewProc("IntersectRect")

	procSetWinEventHook = user32.NewProc("SetWinEventHook")
	procUnhookWinEvent  = user32.NewProc("UnhookWinEvent")

	procDwmGetWindowAttribute = dwmapi.NewProc("DwmGetWindowAttribute")

	procCreateSolidBrush = gdi32.NewProc("CreateSolidBrush")
	procDeleteObject     = gdi32.NewProc("DeleteObject")
)

// HWND is a Win32 window handle.
type HWND = windows.HWND

// CurrentThreadID returns the OS thread id of the calling goroutine's
// current OS thread. Callers must have called runtime.LockOSThread
// first; the id is only meaningful for the lifetime of that lock.
func CurrentThreadID() uint32 {
	r, _, _ := procGetCurrentThreadId.Call()
	return uint32(r)
}

// ModuleHandle returns the current process's module handle, used as the
// HINSTANCE for window class registration.
func ModuleHandle() uintptr {
	r, _, _ := procGetModuleHandleW.Call(0)
	return r
}
