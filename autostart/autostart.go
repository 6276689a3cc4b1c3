//go:build windows

// Package autostart implements the opaque "auto-start manager" collaborator
// named in §6: enable/disable/query whether the process launches at logon.
package autostart

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/windows/registry"

	"github.com/thomazmoura/spotlight-dimmer/logging"
)

// Controller is the collaborator contract the engine depends on. §6 names
// it as opaque (`enable() → bool`, `disable() → bool`, `is_enabled() →
// bool`); the Go signatures return errors instead of swallowing failures.
type Controller interface {
	Enable() error
	Disable() error
	IsEnabled() (bool, error)
}

const (
	registryPath = `Software\Microsoft\Windows\CurrentVersion\Run`
	valueName    = "SpotlightDimmer"
)

// RegistryController is the Windows implementation of Controller, backed
// by the per-user Run registry key.
type RegistryController struct {
	log *logging.Logger
}

// New returns a RegistryController.
func New() *RegistryController {
	return &RegistryController{log: logging.Get()}
}

var _ Controller = (*RegistryController)(nil)

// IsEnabled reports whether the Run key currently has our value set.
func (c *RegistryController) IsEnabled() (bool, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, registryPath, registry.QUERY_VALUE)
	if err != nil {
		return false, fmt.Errorf("open registry key: %w", err)
	}
	defer key.Close()

	_, _, err = key.GetStringValue(valueName)
	if err == registry.ErrNotExist {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read registry value: %w", err)
	}
	return true, nil
}

// Enable points the Run key at the current executable, run with
// -tray-only so a logon launch doesn't attempt to reopen any UI.
func (c *RegistryController) Enable() error {
	exePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	exePath, err = filepath.Abs(exePath)
	if err != nil {
		return fmt.Errorf("resolve absolute executable path: %w", err)
	}

	key, err := registry.OpenKey(registry.CURRENT_USER, registryPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("open registry key: %w", err)
	}
	defer key.Close()

	value := fmt.Sprintf(`"%s" -tray-only`, exePath)
	if err := key.SetStringValue(valueName, value); err != nil {
		return fmt.Errorf("set registry value: %w", err)
	}

	c.log.Config("autostart enabled: %s", value)
	return nil
}

// Disable removes the Run key entry, if present.
func (c *RegistryController) Disable() error {
	key, err := registry.OpenKey(registry.CURRENT_USER, registryPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("open registry key: %w", err)
	}
	defer key.Close()

	if err := key.DeleteValue(valueName); err != nil && err != registry.ErrNotExist {
		return fmt.Errorf("delete registry value: %w", err)
	}

	c.log.Config("autostart disabled")
	return nil
}
