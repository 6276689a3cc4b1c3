//go:build windows

// Package tray is a thin github.com/getlantern/systray adapter: it owns
// no dimmer state of its own and exists only to dispatch the five §6
// ingoing tray events into the Handlers it is given. The full
// tray UI (icons, submenus, notifications) is out of scope (§1); this
// package builds only the dispatch surface.
package tray

import (
	"github.com/getlantern/systray"

	"github.com/thomazmoura/spotlight-dimmer/logging"
)

// Handlers is the set of engine callbacks the tray dispatches into. All
// fields are optional; a nil handler means that menu action is a no-op.
type Handlers struct {
	OnPauseStateChanged func(paused bool)
	OnProfileSelected   func(name string)
	OnToggleLogging     func(enabled bool)
	OnOpenConfigFile    func()
	OnQuitRequested     func()
}

// Tray wraps the systray menu items the adapter exposes, plus one menu
// item per profile name passed to SetProfiles.
type Tray struct {
	handlers Handlers

	mPause       *systray.MenuItem
	mLogging     *systray.MenuItem
	mOpenConfig  *systray.MenuItem
	mQuit        *systray.MenuItem
	profileItems map[string]*systray.MenuItem

	paused  bool
	logging bool
}

// New creates a Tray bound to handlers. Call Run to start the systray
// event loop; Run blocks until Quit is called.
func New(handlers Handlers) *Tray {
	return &Tray{handlers: handlers, profileItems: make(map[string]*systray.MenuItem)}
}

// Run starts the systray event loop. Blocks until the tray exits.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// SetProfiles rebuilds the profile menu items from the given profile
// names, checking the one named current. Nothing in this repository
// calls it, so by default the tray shows no profile items.
func (t *Tray) SetProfiles(names []string, current string) {
	for name, item := range t.profileItems {
		item.Hide()
		delete(t.profileItems, name)
	}
	for _, name := range names {
		item := systray.AddMenuItem(name, "Apply the "+name+" profile")
		if name == current {
			item.Check()
		}
		t.profileItems[name] = item
		go t.watchProfileClicks(name, item)
	}
}

func (t *Tray) onReady() {
	systray.SetTitle("Spotlight Dimmer")
	systray.SetTooltip("Spotlight Dimmer")

	t.mPause = systray.AddMenuItemCheckbox("Paused", "Pause dimming", false)
	t.mLogging = systray.AddMenuItemCheckbox("Logging enabled", "Toggle logging", true)
	t.logging = true
	systray.AddSeparator()
	t.mOpenConfig = systray.AddMenuItem("Open Config File", "Open the configuration file")
	systray.AddSeparator()
	t.mQuit = systray.AddMenuItem("Quit", "Exit Spotlight Dimmer")

	go t.handleMenuEvents()
	logging.Get().Engine("tray ready")
}

func (t *Tray) onExit() {
	logging.Get().Engine("tray closed")
}

func (t *Tray) handleMenuEvents() {
	for {
		select {
		case <-t.mPause.ClickedCh:
			t.paused = !t.paused
			if t.paused {
				t.mPause.Check()
			} else {
				t.mPause.Uncheck()
			}
			if t.handlers.OnPauseStateChanged != nil {
				t.handlers.OnPauseStateChanged(t.paused)
			}
		case <-t.mLogging.ClickedCh:
			t.logging = !t.logging
			if t.logging {
				t.mLogging.Check()
			} else {
				t.mLogging.Uncheck()
			}
			if t.handlers.OnToggleLogging != nil {
				t.handlers.OnToggleLogging(t.logging)
			}
		case <-t.mOpenConfig.ClickedCh:
			if t.handlers.OnOpenConfigFile != nil {
				t.handlers.OnOpenConfigFile()
			}
		case <-t.mQuit.ClickedCh:
			if t.handlers.OnQuitRequested != nil {
				t.handlers.OnQuitRequested()
			}
			systray.Quit()
			return
		}
	}
}

func (t *Tray) watchProfileClicks(name string, item *systray.MenuItem) {
	for range item.ClickedCh {
		if t.handlers.OnProfileSelected != nil {
			t.handlers.OnProfileSelected(name)
		}
	}
}
