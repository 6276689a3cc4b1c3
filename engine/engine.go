//go:build windows

// Package engine implements §2 item 10 and §4.9: the wiring/lifecycle
// layer that owns the AppState, the overlay window pool, the focus
// tracker, the display-change monitor, and the configuration manager,
// and connects their events to the calculator and renderer on a single
// engine thread.
package engine

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/thomazmoura/spotlight-dimmer/autostart"
	"github.com/thomazmoura/spotlight-dimmer/calc"
	"github.com/thomazmoura/spotlight-dimmer/config"
	"github.com/thomazmoura/spotlight-dimmer/displays"
	"github.com/thomazmoura/spotlight-dimmer/focus"
	"github.com/thomazmoura/spotlight-dimmer/geometry"
	"github.com/thomazmoura/spotlight-dimmer/logging"
	"github.com/thomazmoura/spotlight-dimmer/render"
	"github.com/thomazmoura/spotlight-dimmer/tray"
	"github.com/thomazmoura/spotlight-dimmer/winapi"
)

// Options configures a single engine run. AppVersion drives the
// configuration manager's schema-URL injection (§4.8); ConfigPath
// overrides the default per-user path, matching a `-config` flag.
type Options struct {
	AppVersion string
	ConfigPath string
}

// Engine is the process's single top-level owner of every OS handle:
// the overlay window pool, the focus tracker's hooks and message
// window, the display-change monitor's message window, and the
// configuration file watcher. All OS handles are released on Stop in
// reverse acquisition order (§3 "Ownership").
type Engine struct {
	inventory *displays.Inventory
	configMgr *config.Manager
	tracker   *focus.Tracker
	changeMon *displays.ChangeMonitor
	backend   render.Backend
	autostart autostart.Controller

	state *calc.AppState

	threadID uint32

	paused bool

	// lastFocusedDisplay/lastFocusedBounds cache the most recent focus
	// observation delivered by the tracker, so that a config reload,
	// display-topology change, or pause/resume transition can recompute
	// overlays for the window that actually holds focus instead of
	// treating the transition as "nothing is focused" (§4.9, §8 S6).
	lastFocusedDisplay int
	lastFocusedBounds  *geometry.Rectangle
}

// New constructs an Engine. Call Start to acquire OS resources and
// begin the message pump; Start blocks until Stop is called from
// another goroutine or thread.
func New() *Engine {
	return &Engine{
		inventory:          displays.NewInventory(),
		autostart:          autostart.New(),
		lastFocusedDisplay: -1,
	}
}

// Start runs the full startup sequence (§4.9: snapshot displays, build
// AppState and overlay pool, load configuration, subscribe focus
// tracker, display-change monitor, and configuration manager) and then
// blocks in the message pump until Stop is called. It locks the calling
// goroutine to its OS thread with runtime.LockOSThread, since every OS
// handle it creates is thread-affine.
//
// Returns a non-zero-mapped error on any of the three fatal startup
// conditions named in §6: empty monitor enumeration, overlay window
// creation failure, or hook registration failure.
func (e *Engine) Start(opts Options) error {
	runtime.LockOSThread()
	e.threadID = winapi.CurrentThreadID()

	if err := e.inventory.Refresh(); err != nil {
		return fmt.Errorf("%w: %v", ErrMonitorEnumerationEmpty, err)
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		path, err := config.GetDefaultConfigPath()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrConfigPathUnavailable, err)
		}
		configPath = path
	}

	e.configMgr = config.NewManager(configPath)
	if err := e.configMgr.Load(opts.AppVersion); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigPathUnavailable, err)
	}
	cfg := e.configMgr.Get()

	logging.Get().Init(logging.Settings{
		Level:         cfg.System.LogLevel,
		RetentionDays: cfg.System.LogRetentionDays,
	}, filepath.Dir(configPath))

	snapshot := e.inventory.Snapshot()
	e.state = calc.NewAppState(snapshot)

	e.backend = render.NewBackend(cfg.System.RendererBackend)
	if err := e.backend.CreateOverlays(snapshot, cfg.ToCalculationConfig()); err != nil {
		return fmt.Errorf("%w: %v", ErrWindowCreationFailed, err)
	}
	if cfg.Overlay.ExcludeFromScreenCapture {
		e.backend.UpdateScreenCaptureExclusion(true)
	}

	tracker, err := focus.NewTracker(e.inventory)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHookRegistrationFailed, err)
	}
	e.tracker = tracker
	e.tracker.OnFocusedDisplayChanged = e.onFocusObservation
	e.tracker.OnWindowPositionChanged = e.onFocusObservation
	if err := e.tracker.Start(); err != nil {
		return fmt.Errorf("%w: %v", ErrHookRegistrationFailed, err)
	}

	changeMon, err := displays.NewChangeMonitor()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHookRegistrationFailed, err)
	}
	e.changeMon = changeMon
	e.changeMon.OnCheckDisplaysRequested = e.onDisplaysChanged

	e.configMgr.OnConfigurationChanged = e.onConfigurationChanged
	if err := e.configMgr.Watch(); err != nil {
		logging.Get().Config("configuration file watch failed, hot reload disabled: %v", err)
	}

	e.recalculate(e.lastFocusedDisplay, e.lastFocusedBounds)

	e.pump()
	return nil
}

// Stop posts a quit message to the engine thread's message queue (§9
// "Shutdown message posting"), unblocking Start's pump and triggering
// an orderly shutdown. Safe to call from any goroutine or thread.
func (e *Engine) Stop() {
	winapi.PostThreadMessage(e.threadID, winapi.WmQuit, 0, 0)
}

// SetPaused implements the tray's pause/resume command (§4.9 "When
// paused ... hide all overlays and short-circuit update_overlays until
// resumed").
func (e *Engine) SetPaused(paused bool) {
	e.paused = paused
	if paused {
		e.backend.HideAllOverlays()
		return
	}
	e.recalculate(e.lastFocusedDisplay, e.lastFocusedBounds)
}

// ApplyProfile proxies to the configuration manager; the manager's own
// file watch delivers the resulting ConfigurationChanged back through
// onConfigurationChanged.
func (e *Engine) ApplyProfile(name string) error {
	return e.configMgr.ApplyProfile(name)
}

// AutostartEnabled reports whether the process is currently registered
// to launch at logon, proxying the opaque auto-start collaborator named
// in §6.
func (e *Engine) AutostartEnabled() (bool, error) {
	return e.autostart.IsEnabled()
}

// SetAutostart enables or disables launching the process at logon,
// proxying the opaque auto-start collaborator named in §6.
func (e *Engine) SetAutostart(enabled bool) error {
	if enabled {
		return e.autostart.Enable()
	}
	return e.autostart.Disable()
}

// TrayHandlers builds the tray.Handlers bound to this engine's exported
// operations, for wiring into tray.New. Only pause, profile selection,
// and quit are bound; OnToggleLogging and OnOpenConfigFile are left nil,
// so those two tray menu items do nothing.
func (e *Engine) TrayHandlers() tray.Handlers {
	return tray.Handlers{
		OnPauseStateChanged: e.SetPaused,
		OnProfileSelected: func(name string) {
			if err := e.ApplyProfile(name); err != nil {
				logging.Get().Config("apply profile %q failed: %v", name, err)
			}
		},
		OnQuitRequested: e.Stop,
	}
}

func (e *Engine) pump() {
	var msg winapi.MSG
	for winapi.GetMessage(&msg) {
		winapi.TranslateMessage(&msg)
		winapi.DispatchMessage(&msg)
	}
	e.shutdown()
}

// shutdown unsubscribes every hook and destroys every OS handle in
// reverse acquisition order (§3 "Ownership", §5 "Cancellation").
func (e *Engine) shutdown() {
	logging.Get().Engine("shutting down")
	e.configMgr.Stop()
	e.changeMon.Stop()
	e.tracker.Stop()
	e.backend.CleanupOverlays()
	logging.Get().Close()
}

func (e *Engine) onFocusObservation(displayIndex int, bounds geometry.Rectangle) {
	e.lastFocusedDisplay = displayIndex
	e.lastFocusedBounds = &bounds
	e.recalculate(displayIndex, &bounds)
}

func (e *Engine) recalculate(focusedDisplay int, focusedBounds *geometry.Rectangle) {
	if e.paused {
		return
	}
	cfg := e.configMgr.Get().ToCalculationConfig()
	calc.Calculate(e.state, focusedBounds, focusedDisplay, cfg)
	if err := e.backend.UpdateOverlays(e.state); err != nil {
		logging.Get().Overlay("update_overlays reported a partial failure: %v", err)
	}
}

// onDisplaysChanged handles §4.6: re-snapshot inventory, rebuild
// AppState, recreate the overlay pool, and recalculate once.
func (e *Engine) onDisplaysChanged() {
	if err := e.inventory.Refresh(); err != nil {
		logging.Get().Display("display refresh failed, keeping previous inventory: %v", err)
		return
	}
	snapshot := e.inventory.Snapshot()

	e.backend.CleanupOverlays()
	e.state = calc.NewAppState(snapshot)

	cfg := e.configMgr.Get()
	if err := e.backend.CreateOverlays(snapshot, cfg.ToCalculationConfig()); err != nil {
		logging.Get().Display("failed to recreate overlay pool after display change: %v", err)
		return
	}
	if cfg.Overlay.ExcludeFromScreenCapture {
		e.backend.UpdateScreenCaptureExclusion(true)
	}
	e.recalculate(e.lastFocusedDisplay, e.lastFocusedBounds)
}

func (e *Engine) onConfigurationChanged(cfg config.Config) {
	logging.Get().Config("configuration reloaded")
	if err := e.backend.UpdateBrushColors(cfg.ToCalculationConfig()); err != nil {
		logging.Get().Config("update_brush_colors failed: %v", err)
	}
	e.backend.UpdateScreenCaptureExclusion(cfg.Overlay.ExcludeFromScreenCapture)
	e.recalculate(e.lastFocusedDisplay, e.lastFocusedBounds)
}

