//go:build windows

package focus

import (
	"fmt"
	"sync"
	"syscall"

	"github.com/thomazmoura/spotlight-dimmer/displays"
	"github.com/thomazmoura/spotlight-dimmer/geometry"
	"github.com/thomazmoura/spotlight-dimmer/logging"
	"github.com/thomazmoura/spotlight-dimmer/winapi"
	"github.com/thomazmoura/spotlight-dimmer/winspect"
)

const trackerClassName = "SpotlightDimmerFocusTracker"

const (
	msgObservation  = winapi.WmApp + 1
	safetyPollMs    = 100
	safetyTimerID   = 1
)

// Tracker implements §4.5: it subscribes to the OS foreground and
// object-location hooks plus a 100ms safety poll, resolves each raw
// event to a (display index, bounds) observation, and drives a Decider
// on the engine thread.
type Tracker struct {
	OnFocusedDisplayChanged func(displayIndex int, bounds geometry.Rectangle)
	OnWindowPositionChanged func(displayIndex int, bounds geometry.Rectangle)

	inventory *displays.Inventory
	decider   *Decider

	hwnd              winapi.HWND
	foregroundHook    uintptr
	locationHook      uintptr
	lastPolledHandle  winapi.HWND
	mu                sync.Mutex
}

var activeTracker struct {
	sync.Mutex
	t *Tracker
}

// NewTracker creates the tracker's message-only window and registers its
// window procedure. Hooks are installed by Start. inv supplies the
// display-index lookup the tracker needs to turn a window handle into an
// observation.
func NewTracker(inv *displays.Inventory) (*Tracker, error) {
	t := &Tracker{inventory: inv, decider: NewDecider()}

	if err := winapi.RegisterClass(trackerClassName, syscall.NewCallback(trackerWndProc)); err != nil {
		return nil, err
	}
	hwnd, err := winapi.CreateMessageWindow(trackerClassName)
	if err != nil {
		return nil, err
	}
	t.hwnd = hwnd
	return t, nil
}

// Start installs the foreground and object-location event hooks and
// arms the safety-poll timer. Hook registration failure is fatal at
// startup per §7 HookRegistrationFailed.
func (t *Tracker) Start() error {
	activeTracker.Lock()
	activeTracker.t = t
	activeTracker.Unlock()

	foregroundProc := syscall.NewCallback(winEventCallback)
	t.foregroundHook = winapi.SetWinEventHook(
		winapi.EventSystemForeground, winapi.EventSystemForeground,
		foregroundProc, winapi.WinEventOutOfContext|winapi.WinEventSkipOwnProcess,
	)
	if t.foregroundHook == 0 {
		return fmt.Errorf("register foreground event hook")
	}

	t.locationHook = winapi.SetWinEventHook(
		winapi.EventObjectLocationChange, winapi.EventObjectLocationChange,
		foregroundProc, winapi.WinEventOutOfContext|winapi.WinEventSkipOwnProcess,
	)
	if t.locationHook == 0 {
		winapi.UnhookWinEvent(t.foregroundHook)
		return fmt.Errorf("register object-location event hook")
	}

	winapi.SetTimer(t.hwnd, safetyTimerID, safetyPollMs)

	// Prime the decider with the current foreground window so overlays
	// reflect it before the first hook event arrives.
	t.postObservation()

	return nil
}

// Stop unregisters both hooks, kills the safety timer, destroys the
// message window, and clears the global callback target so any in-flight
// callback finds a no-op (§5, §9 "Cycles").
func (t *Tracker) Stop() {
	activeTracker.Lock()
	activeTracker.t = nil
	activeTracker.Unlock()

	winapi.UnhookWinEvent(t.foregroundHook)
	winapi.UnhookWinEvent(t.locationHook)
	winapi.KillTimer(t.hwnd, safetyTimerID)
	winapi.DestroyWindow(t.hwnd)
}

// postObservation posts msgObservation to the tracker's own window,
// marshalling whatever thread called it onto the engine thread that owns
// the message window and the Decider.
func (t *Tracker) postObservation() {
	winapi.PostMessage(t.hwnd, msgObservation, 0, 0)
}

func trackerWndProc(hwnd uintptr, msg uint32, wParam, lParam uintptr) uintptr {
	switch msg {
	case msgObservation:
		activeTracker.Lock()
		t := activeTracker.t
		activeTracker.Unlock()
		if t != nil {
			t.handleObservation()
		}
		return 0
	case winapi.WmTimer:
		if wParam != safetyTimerID {
			break
		}
		activeTracker.Lock()
		t := activeTracker.t
		activeTracker.Unlock()
		if t != nil {
			t.pollSafety()
		}
		return 0
	}
	return winapi.DefWindowProc(winapi.HWND(hwnd), msg, wParam, lParam)
}

// winEventCallback is installed for both the foreground and
// object-location hooks; it must not invoke the Decider directly (it
// runs on an arbitrary OS thread) and instead posts a message (§4.5).
func winEventCallback(hook uintptr, event uint32, hwnd winapi.HWND, idObject, idChild int32, eventThread, eventTime uint32) uintptr {
	if event == winapi.EventObjectLocationChange {
		if idObject != winapi.ObjIDWindow || hwnd != winspect.ForegroundWindow() {
			return 0
		}
	}

	activeTracker.Lock()
	t := activeTracker.t
	activeTracker.Unlock()
	if t != nil {
		t.postObservation()
	}
	return 0
}

// pollSafety re-reads the foreground handle; if it differs from the last
// polled handle, it posts a synthetic observation to catch foreground
// transitions (notably into UWP apps) that don't fire the foreground hook.
func (t *Tracker) pollSafety() {
	current := winspect.ForegroundWindow()
	t.mu.Lock()
	changed := current != t.lastPolledHandle
	t.lastPolledHandle = current
	t.mu.Unlock()

	if changed {
		t.postObservation()
	}
}

// handleObservation resolves the current foreground window to an
// observation and feeds the Decider, emitting the corresponding outward
// event on DisplayChanged/PositionChanged. Runs on the engine thread.
func (t *Tracker) handleObservation() {
	handle := winspect.ForegroundWindow()
	if handle == 0 {
		return
	}
	handle = winspect.ResolveUWPContent(handle)

	bounds, ok := winspect.VisibleBounds(handle)
	obs := Observation{DisplayIndex: -1}
	if ok {
		obs.Bounds = &bounds
		obs.DisplayIndex = t.inventory.IndexForWindow(bounds)
	}

	switch t.decider.Process(obs) {
	case DisplayChanged:
		logging.Get().Focus("focused display changed to %d", obs.DisplayIndex)
		if t.OnFocusedDisplayChanged != nil {
			t.OnFocusedDisplayChanged(obs.DisplayIndex, bounds)
		}
	case PositionChanged:
		if t.OnWindowPositionChanged != nil {
			t.OnWindowPositionChanged(obs.DisplayIndex, bounds)
		}
	case Ignored, NoChange:
		// No visible update required.
	}
}
