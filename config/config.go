// Package config loads, validates, and hot-reloads the dimmer's JSON
// configuration file (§6), and projects it down to the pure
// calc.OverlayCalculationConfig the calculator actually consumes.
package config

import (
	"strings"

	"github.com/thomazmoura/spotlight-dimmer/calc"
	"github.com/thomazmoura/spotlight-dimmer/geometry"
)

// OverlayConfig is the user-facing overlay section of the configuration
// file; Config.ToCalculationConfig projects it to calc.OverlayCalculationConfig.
type OverlayConfig struct {
	Mode                     string `json:"Mode"`
	InactiveColor            string `json:"InactiveColor"`
	InactiveOpacity          int    `json:"InactiveOpacity"`
	ActiveColor              string `json:"ActiveColor"`
	ActiveOpacity            int    `json:"ActiveOpacity"`
	ExcludeFromScreenCapture bool   `json:"ExcludeFromScreenCapture"`
}

// SystemConfig is the non-overlay system section of the configuration
// file.
type SystemConfig struct {
	RendererBackend  string `json:"RendererBackend"`
	EnableLogging    bool   `json:"EnableLogging"`
	LogLevel         string `json:"LogLevel"`
	LogRetentionDays int    `json:"LogRetentionDays"`
}

// Profile is a named snapshot of the OverlayConfig fields (§3 "Profile").
// Name is serialized first so saved files read name-then-settings.
type Profile struct {
	Name string `json:"Name"`
	OverlayConfig
}

// Config mirrors the §6 configuration file layout field-for-field.
// Field declaration order is the serialized key order: SchemaURL first,
// matching the documented "$schema first" contract, with no need for a
// custom MarshalJSON.
type Config struct {
	SchemaURL      string     `json:"$schema"`
	ConfigVersion  string     `json:"ConfigVersion"`
	Overlay        OverlayConfig `json:"Overlay"`
	System         SystemConfig  `json:"System"`
	Profiles       []Profile  `json:"Profiles,omitempty"`
	CurrentProfile *string    `json:"CurrentProfile"`
}

// Defaults returns the configuration §6 documents as the out-of-box
// state, with schemaURL left empty for the caller to inject (Manager.Load
// does this once the running app version is known).
func Defaults() Config {
	return Config{
		Overlay: OverlayConfig{
			Mode:            "FullScreen",
			InactiveColor:   "#000000",
			InactiveOpacity: 153,
			ActiveColor:     "#000000",
			ActiveOpacity:   102,
		},
		System: SystemConfig{
			RendererBackend:  "LayeredWindow",
			EnableLogging:    true,
			LogLevel:         "Information",
			LogRetentionDays: 7,
		},
	}
}

// Normalize applies §6's documented fallback rules in place: invalid
// enum values fall back to defaults, out-of-range integers are clamped,
// and malformed hex colors degrade to black. Called after every
// unmarshal so an in-memory Config is always valid, never just
// "as parsed".
func (c *Config) Normalize() {
	switch strings.ToLower(c.Overlay.Mode) {
	case "fullscreen", "partial", "partialwithactive":
	default:
		c.Overlay.Mode = "FullScreen"
	}
	c.Overlay.InactiveOpacity = int(geometry.ClampOpacity(c.Overlay.InactiveOpacity))
	c.Overlay.ActiveOpacity = int(geometry.ClampOpacity(c.Overlay.ActiveOpacity))
	c.Overlay.InactiveColor = geometry.ParseHexColor(c.Overlay.InactiveColor).String()
	c.Overlay.ActiveColor = geometry.ParseHexColor(c.Overlay.ActiveColor).String()

	switch strings.ToLower(c.System.RendererBackend) {
	case "layeredwindow", "updatelayeredwindow", "compositeoverlay":
	default:
		c.System.RendererBackend = "LayeredWindow"
	}
	switch strings.ToLower(c.System.LogLevel) {
	case "trace", "debug", "information", "warning", "error", "critical":
	default:
		c.System.LogLevel = "Information"
	}
	if c.System.LogRetentionDays < 1 {
		c.System.LogRetentionDays = 1
	}
	if c.System.LogRetentionDays > 365 {
		c.System.LogRetentionDays = 365
	}

	for i := range c.Profiles {
		p := &c.Profiles[i]
		p.InactiveOpacity = int(geometry.ClampOpacity(p.InactiveOpacity))
		p.ActiveOpacity = int(geometry.ClampOpacity(p.ActiveOpacity))
		p.InactiveColor = geometry.ParseHexColor(p.InactiveColor).String()
		p.ActiveColor = geometry.ParseHexColor(p.ActiveColor).String()
	}
}

// ToCalculationConfig projects the configuration's Overlay section to the
// calculator's narrower contract (§3 "richer user configuration ... is
// projected to this struct").
func (c Config) ToCalculationConfig() calc.OverlayCalculationConfig {
	return calc.OverlayCalculationConfig{
		Mode:            calc.ParseMode(c.Overlay.Mode),
		InactiveColor:   geometry.ParseHexColor(c.Overlay.InactiveColor),
		InactiveOpacity: geometry.ClampOpacity(c.Overlay.InactiveOpacity),
		ActiveColor:     geometry.ParseHexColor(c.Overlay.ActiveColor),
		ActiveOpacity:   geometry.ClampOpacity(c.Overlay.ActiveOpacity),
	}
}

// Equal reports whether two configurations are identical field-for-field,
// used by the round-trip property test (§8 property 10).
func (c Config) Equal(other Config) bool {
	if c.SchemaURL != other.SchemaURL || c.ConfigVersion != other.ConfigVersion {
		return false
	}
	if c.Overlay != other.Overlay || c.System != other.System {
		return false
	}
	if len(c.Profiles) != len(other.Profiles) {
		return false
	}
	for i := range c.Profiles {
		if c.Profiles[i] != other.Profiles[i] {
			return false
		}
	}
	if (c.CurrentProfile == nil) != (other.CurrentProfile == nil) {
		return false
	}
	if c.CurrentProfile != nil && *c.CurrentProfile != *other.CurrentProfile {
		return false
	}
	return true
}

// ApplyProfile copies the named profile's OverlayConfig fields into the
// active Overlay block and records it as current. Returns false if no
// profile with that name exists, leaving the configuration unchanged.
func (c *Config) ApplyProfile(name string) bool {
	for _, p := range c.Profiles {
		if p.Name == name {
			c.Overlay = p.OverlayConfig
			c.CurrentProfile = &p.Name
			return true
		}
	}
	return false
}

// schemaURL builds the versioned schema URL injected into every saved
// configuration file. version is truncated at the first '+' so build
// metadata never leaks into the persisted schema reference.
func schemaURL(version string) string {
	if i := strings.IndexByte(version, '+'); i >= 0 {
		version = version[:i]
	}
	return "https://raw.githubusercontent.com/thomazmoura/spotlight-dimmer/main/schemas/config." + version + ".json"
}
