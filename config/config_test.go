package config

import (
	"encoding/json"
	"testing"
)

func TestConfig_RoundTrip(t *testing.T) {
	name := "Gaming"
	original := Defaults()
	original.ConfigVersion = "1.2.3"
	original.SchemaURL = schemaURL("1.2.3")
	original.Profiles = []Profile{{Name: name, OverlayConfig: OverlayConfig{
		Mode: "Partial", InactiveColor: "#101010", InactiveOpacity: 200,
		ActiveColor: "#202020", ActiveOpacity: 50,
	}}}
	original.CurrentProfile = &name

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var roundTripped Config
	if err := json.Unmarshal(data, &roundTripped); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !original.Equal(roundTripped) {
		t.Errorf("round trip mismatch:\n original  = %+v\n roundTrip = %+v", original, roundTripped)
	}
}

func TestConfig_SchemaURLIsFirstKey(t *testing.T) {
	cfg := Defaults()
	cfg.SchemaURL = schemaURL("1.0.0")
	cfg.ConfigVersion = "1.0.0"

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := raw["$schema"]; !ok {
		t.Fatalf("expected $schema key in %s", data)
	}

	// Field declaration order drives encoding/json's key order; verify it
	// directly rather than relying on map iteration order.
	firstKeyOffset := -1
	for i := 1; i < len(data); i++ {
		if data[i] == '"' {
			firstKeyOffset = i
			break
		}
	}
	if firstKeyOffset == -1 || string(data[firstKeyOffset:firstKeyOffset+9]) != `"$schema"` {
		t.Errorf("expected $schema to be the first serialized key, got: %s", data)
	}
}

func TestSchemaURL_TruncatesBuildMetadata(t *testing.T) {
	got := schemaURL("1.4.0+abcdef")
	want := schemaURL("1.4.0")
	if got != want {
		t.Errorf("schemaURL(%q) = %q, want %q (build metadata must not leak)", "1.4.0+abcdef", got, want)
	}
}

func TestNormalize_FallsBackOnInvalidEnumsAndClamps(t *testing.T) {
	cfg := Config{
		Overlay: OverlayConfig{
			Mode:            "bogus-mode",
			InactiveColor:   "not-a-color",
			InactiveOpacity: 9000,
			ActiveColor:     "#zzzzzz",
			ActiveOpacity:   -5,
		},
		System: SystemConfig{
			RendererBackend:  "nonsense",
			LogLevel:         "nonsense",
			LogRetentionDays: 9000,
		},
	}
	cfg.Normalize()

	if cfg.Overlay.Mode != "FullScreen" {
		t.Errorf("Mode = %q, want FullScreen", cfg.Overlay.Mode)
	}
	if cfg.Overlay.InactiveColor != "#000000" {
		t.Errorf("InactiveColor = %q, want #000000", cfg.Overlay.InactiveColor)
	}
	if cfg.Overlay.InactiveOpacity != 255 {
		t.Errorf("InactiveOpacity = %d, want 255", cfg.Overlay.InactiveOpacity)
	}
	if cfg.Overlay.ActiveOpacity != 0 {
		t.Errorf("ActiveOpacity = %d, want 0", cfg.Overlay.ActiveOpacity)
	}
	if cfg.System.RendererBackend != "LayeredWindow" {
		t.Errorf("RendererBackend = %q, want LayeredWindow", cfg.System.RendererBackend)
	}
	if cfg.System.LogLevel != "Information" {
		t.Errorf("LogLevel = %q, want Information", cfg.System.LogLevel)
	}
	if cfg.System.LogRetentionDays != 365 {
		t.Errorf("LogRetentionDays = %d, want 365", cfg.System.LogRetentionDays)
	}
}

func TestApplyProfile(t *testing.T) {
	cfg := Defaults()
	cfg.Profiles = []Profile{{Name: "Reading", OverlayConfig: OverlayConfig{
		Mode: "PartialWithActive", InactiveColor: "#111111", InactiveOpacity: 10,
		ActiveColor: "#222222", ActiveOpacity: 20,
	}}}

	if cfg.ApplyProfile("NoSuchProfile") {
		t.Fatal("expected ApplyProfile to report false for an unknown name")
	}

	if !cfg.ApplyProfile("Reading") {
		t.Fatal("expected ApplyProfile to find the Reading profile")
	}
	if cfg.Overlay.Mode != "PartialWithActive" {
		t.Errorf("Overlay.Mode = %q, want PartialWithActive", cfg.Overlay.Mode)
	}
	if cfg.CurrentProfile == nil || *cfg.CurrentProfile != "Reading" {
		t.Errorf("CurrentProfile = %v, want Reading", cfg.CurrentProfile)
	}
}

func TestToCalculationConfig(t *testing.T) {
	cfg := Defaults()
	cfg.Overlay.Mode = "Partial"
	calcCfg := cfg.ToCalculationConfig()

	if calcCfg.Mode.String() != "Partial" {
		t.Errorf("Mode = %v, want Partial", calcCfg.Mode)
	}
	if calcCfg.InactiveOpacity != 153 {
		t.Errorf("InactiveOpacity = %d, want 153", calcCfg.InactiveOpacity)
	}
	if calcCfg.ActiveOpacity != 102 {
		t.Errorf("ActiveOpacity = %d, want 102", calcCfg.ActiveOpacity)
	}
}
