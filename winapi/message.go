//go:build windows

package winapi

import "unsafe"

// GetMessage blocks until a message is available for the calling
// thread's queue. Returns false when WM_QUIT was received.
func GetMessage(msg *MSG) bool {
	r, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(msg)), 0, 0, 0)
	return int32(r) > 0
}

// TranslateMessage and DispatchMessage forward msg through the standard
// Win32 message-loop pipeline.
func TranslateMessage(msg *MSG) {
	procTranslateMessage.Call(uintptr(unsafe.Pointer(msg)))
}

func DispatchMessage(msg *MSG) {
	procDispatchMessageW.Call(uintptr(unsafe.Pointer(msg)))
}

// PostMessage posts a message to hwnd's queue without blocking for a
// reply.
func PostMessage(hwnd HWND, msg uint32, wParam, lParam uintptr) bool {
	r, _, _ := procPostMessageW.Call(uintptr(hwnd), uintptr(msg), wParam, lParam)
	return r != 0
}

// PostThreadMessage posts a message directly to a thread's queue, used to
// unblock the engine thread's message pump from an external signal (§9
// "Shutdown message posting") without going through any window handle.
func PostThreadMessage(threadID uint32, msg uint32, wParam, lParam uintptr) bool {
	r, _, _ := procPostThreadMessageW.Call(uintptr(threadID), uintptr(msg), wParam, lParam)
	return r != 0
}

// PostQuitMessage posts WM_QUIT to the calling thread's queue.
func PostQuitMessage(exitCode int32) {
	procPostQuitMessage.Call(uintptr(exitCode))
}
