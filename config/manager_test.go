package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	m := NewManager(path)

	if err := m.Load("1.0.0"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file to be created: %v", err)
	}
	if m.Get().ConfigVersion != "1.0.0" {
		t.Errorf("ConfigVersion = %q, want 1.0.0", m.Get().ConfigVersion)
	}
}

func TestManager_LoadIsIdempotentOnMatchingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	m := NewManager(path)
	if err := m.Load("2.0.0"); err != nil {
		t.Fatalf("first Load: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	written := info.ModTime()

	time.Sleep(10 * time.Millisecond)
	if err := m.Load("2.0.0"); err != nil {
		t.Fatalf("second Load: %v", err)
	}

	info2, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info2.ModTime().Equal(written) {
		t.Errorf("expected no write when ConfigVersion already matches app version")
	}
}

// TestManager_HotReloadDebounce exercises S6: two rapid writes within the
// 100ms dedupe window must collapse into exactly one ConfigurationChanged
// delivery.
func TestManager_HotReloadDebounce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	m := NewManager(path)
	if err := m.Load("1.0.0"); err != nil {
		t.Fatalf("Load: %v", err)
	}

	var mu sync.Mutex
	deliveries := 0
	var last Config
	m.OnConfigurationChanged = func(cfg Config) {
		mu.Lock()
		deliveries++
		last = cfg
		mu.Unlock()
	}

	if err := m.Watch(); err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer m.Stop()

	cfg := m.Get()
	cfg.Overlay.Mode = "FullScreen"
	cfg.Overlay.InactiveOpacity = 153
	if err := writeFile(path, cfg); err != nil {
		t.Fatalf("writeFile: %v", err)
	}

	time.Sleep(30 * time.Millisecond)

	cfg.Overlay.Mode = "PartialWithActive"
	cfg.Overlay.ActiveOpacity = 102
	if err := writeFile(path, cfg); err != nil {
		t.Fatalf("writeFile: %v", err)
	}

	time.Sleep(400 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if deliveries != 1 {
		t.Fatalf("ConfigurationChanged delivered %d times, want exactly 1", deliveries)
	}
	if last.Overlay.Mode != "PartialWithActive" {
		t.Errorf("delivered config Mode = %q, want PartialWithActive (should reflect the second write)", last.Overlay.Mode)
	}
}
