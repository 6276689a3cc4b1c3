//go:build windows

package displays

import (
	"sync"
	"syscall"
	"time"

	"github.com/thomazmoura/spotlight-dimmer/logging"
	"github.com/thomazmoura/spotlight-dimmer/winapi"
)

const changeMonitorClassName = "SpotlightDimmerDisplayChangeMonitor"

const resettleDelay = 2000 * time.Millisecond

// ChangeMonitor is a hidden top-level tool window that reacts to WM_DISPLAYCHANGE
// broadcasts: it fires its callback immediately, then arms a one-shot
// timer to fire it again 2s later in case the OS delivered the broadcast
// before the topology fully settled (§4.6).
type ChangeMonitor struct {
	OnCheckDisplaysRequested func()

	hwnd HWND
	mu   sync.Mutex
}

type HWND = winapi.HWND

var activeMonitor struct {
	sync.Mutex
	m *ChangeMonitor
}

// NewChangeMonitor creates the hidden top-level window (a message-only
// window would not receive the broadcast) and registers its window
// procedure. Must be called from the engine thread.
func NewChangeMonitor() (*ChangeMonitor, error) {
	cm := &ChangeMonitor{}

	if err := winapi.RegisterClass(changeMonitorClassName, syscall.NewCallback(changeMonitorWndProc)); err != nil {
		return nil, err
	}

	hwnd, err := winapi.CreateWindow(winapi.WsExToolWindow, changeMonitorClassName, changeMonitorClassName, winapi.WsPopup, 0, 0, 0, 0)
	if err != nil {
		return nil, err
	}
	cm.hwnd = hwnd

	activeMonitor.Lock()
	activeMonitor.m = cm
	activeMonitor.Unlock()

	return cm, nil
}

// Stop destroys the message window and clears the global callback target
// so in-flight messages find a no-op (§5 cancellation contract).
func (cm *ChangeMonitor) Stop() {
	activeMonitor.Lock()
	activeMonitor.m = nil
	activeMonitor.Unlock()

	winapi.KillTimer(cm.hwnd, resettleTimerID)
	winapi.DestroyWindow(cm.hwnd)
}

const resettleTimerID = 1

func changeMonitorWndProc(hwnd uintptr, msg uint32, wParam, lParam uintptr) uintptr {
	switch msg {
	case winapi.WmDisplayChange:
		activeMonitor.Lock()
		cm := activeMonitor.m
		activeMonitor.Unlock()
		if cm == nil {
			break
		}
		cm.fire()
		winapi.SetTimer(HWND(hwnd), resettleTimerID, uint32(resettleDelay.Milliseconds()))
		return 0

	case winapi.WmTimer:
		if wParam != resettleTimerID {
			break
		}
		activeMonitor.Lock()
		cm := activeMonitor.m
		activeMonitor.Unlock()
		if cm == nil {
			break
		}
		winapi.KillTimer(HWND(hwnd), resettleTimerID)
		cm.fire()
		return 0
	}
	return winapi.DefWindowProc(HWND(hwnd), msg, wParam, lParam)
}

func (cm *ChangeMonitor) fire() {
	logging.Get().Display("display topology change detected, re-snapshotting inventory")
	if cm.OnCheckDisplaysRequested != nil {
		cm.OnCheckDisplaysRequested()
	}
}
