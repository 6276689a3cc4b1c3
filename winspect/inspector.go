//go:build windows

// Package winspect implements the Window Inspector (§4.2): resolving the
// foreground window, its visible bounds, and UWP host-frame content
// resolution.
package winspect

import (
	"path/filepath"
	"strings"

	"github.com/thomazmoura/spotlight-dimmer/geometry"
	"github.com/thomazmoura/spotlight-dimmer/logging"
	"github.com/thomazmoura/spotlight-dimmer/winapi"
)

// uwpHostProcessName is the owning-process executable name SpotlightDimmer
// must see through to find the window that actually owns the app's
// content (§4.2).
const uwpHostProcessName = "ApplicationFrameHost.exe"

// ForegroundWindow returns the current foreground top-level window
// handle, or 0 if there is none.
func ForegroundWindow() winapi.HWND {
	return winapi.GetForegroundWindow()
}

// VisibleBounds returns handle's visible bounds, preferring the
// DWM-extended frame (which excludes the invisible resize-drag border)
// and falling back to the raw window rectangle if DWM lookup fails
// (§7 DwmBoundsUnavailable). Returns false if both fail.
func VisibleBounds(handle winapi.HWND) (geometry.Rectangle, bool) {
	if rect, ok := winapi.DwmGetExtendedFrameBounds(handle); ok {
		return rect.Rectangle(), true
	}
	rect, err := winapi.GetWindowRect(handle)
	if err != nil {
		return geometry.Rectangle{}, false
	}
	return rect.Rectangle(), true
}

// ResolveUWPContent returns the child window that actually holds a UWP
// app's content when handle's owning process is the UWP application
// frame host, otherwise returns handle unchanged (§4.2).
func ResolveUWPContent(handle winapi.HWND) winapi.HWND {
	if !isUWPHostProcess(handle) {
		return handle
	}

	var best winapi.HWND
	var bestArea int64

	winapi.EnumChildWindows(handle, func(child winapi.HWND) bool {
		if !winapi.IsWindowVisible(child) {
			return true
		}
		rect, err := winapi.GetWindowRect(child)
		if err != nil {
			return true
		}
		area := rect.Rectangle().Area()
		if area > bestArea {
			bestArea = area
			best = child
		}
		return true
	})

	if best == 0 {
		logging.Get().Focus("UWP content resolution found no visible child for frame %v, using host frame", handle)
		return handle
	}
	return best
}

// isUWPHostProcess reports whether handle's owning process is the UWP
// application frame host (§4.2). Any failure to resolve the owning
// process's image name falls back to false, matching §7
// UwpResolutionFailed's silent fallback to the host frame.
func isUWPHostProcess(handle winapi.HWND) bool {
	pid := winapi.GetWindowProcessID(handle)
	if pid == 0 {
		return false
	}

	procHandle, ok := winapi.OpenProcessQueryLimited(pid)
	if !ok {
		return false
	}
	defer winapi.CloseHandle(procHandle)

	imagePath, ok := winapi.QueryFullProcessImageName(procHandle)
	if !ok {
		return false
	}

	return strings.EqualFold(filepath.Base(imagePath), uwpHostProcessName)
}
