//go:build windows

package winapi

// WinEventProc matches the Win32 WinEventProc callback signature used by
// SetWinEventHook. Implementations ignore the return value (the real
// Win32 signature is void); Go's syscall.NewCallback still requires one.
type WinEventProc func(hook uintptr, event uint32, hwnd HWND, idObject, idChild int32, eventThread, eventTime uint32) uintptr

// SetWinEventHook registers proc to be called for every event in
// [eventMin, eventMax]. flags is typically WinEventOutOfContext |
// WinEventSkipOwnProcess. Returns the hook handle, or 0 on failure
// (fatal at startup per §7 HookRegistrationFailed).
func SetWinEventHook(eventMin, eventMax uint32, proc uintptr, flags uint32) uintptr {
	r, _, _ := procSetWinEventHook.Call(
		uintptr(eventMin), uintptr(eventMax),
		0, proc,
		0, 0,
		uintptr(flags),
	)
	return r
}

// UnhookWinEvent removes a hook registered with SetWinEventHook.
func UnhookWinEvent(hook uintptr) {
	if hook == 0 {
		return
	}
	procUnhookWinEvent.Call(hook)
}
