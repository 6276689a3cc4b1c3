package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/thomazmoura/spotlight-dimmer/logging"
)

const (
	dedupeWindow   = 100 * time.Millisecond
	quiesceDelay   = 50 * time.Millisecond
)

// Manager owns the configuration file, its in-memory current value, and
// the debounced file watcher that keeps the two in sync (§4.8). A single
// Manager is created per run by the engine; unlike the teacher's
// viper-backed singleton this one is not a package-level instance, since
// the engine's own lifetime already bounds it.
type Manager struct {
	OnConfigurationChanged func(Config)

	path string

	mu      sync.RWMutex
	current Config

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewManager creates a Manager bound to path. Call Load before Watch.
func NewManager(path string) *Manager {
	return &Manager{path: path}
}

// GetConfigDir returns the per-user configuration directory, matching
// the teacher's own os.UserConfigDir-based layout.
func GetConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "SpotlightDimmer"), nil
}

// GetDefaultConfigPath returns the default configuration file path
// documented in §6.
func GetDefaultConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the configuration file, creating it with defaults if
// absent, normalizing it, and injecting the schema URL for appVersion.
// If the file's ConfigVersion already matches appVersion, no write is
// performed (§8 property 11, schema-URL idempotence).
func (m *Manager) Load(appVersion string) error {
	cfg, err := readFile(m.path)
	if os.IsNotExist(err) {
		cfg = Defaults()
	} else if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	cfg.Normalize()

	needsWrite := cfg.ConfigVersion != appVersion
	cfg.ConfigVersion = appVersion
	cfg.SchemaURL = schemaURL(appVersion)

	if needsWrite {
		if err := writeFile(m.path, cfg); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
	}

	m.mu.Lock()
	m.current = cfg
	m.mu.Unlock()
	return nil
}

// Get returns the current configuration.
func (m *Manager) Get() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// ApplyProfile copies the named profile's OverlayConfig fields into the
// active Overlay block and persists the result; the manager's own file
// watch then delivers the resulting ConfigurationChanged, so applying a
// profile and reacting to an external file edit go through one path.
func (m *Manager) ApplyProfile(name string) error {
	m.mu.Lock()
	cfg := m.current
	ok := cfg.ApplyProfile(name)
	if ok {
		m.current = cfg
	}
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("no profile named %q", name)
	}
	if err := writeFile(m.path, cfg); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Watch starts the debounced file watcher (§4.8): fsnotify events within
// a 100ms window collapse into a single reload, delayed a further 50ms
// to let the writer finish flushing before the file is re-read.
func (m *Manager) Watch() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(m.path)); err != nil {
		w.Close()
		return fmt.Errorf("watch config directory: %w", err)
	}
	m.watcher = w
	m.done = make(chan struct{})

	go m.watchLoop()
	return nil
}

// Stop releases the file watcher. Safe to call even if Watch was never
// called.
func (m *Manager) Stop() {
	if m.watcher == nil {
		return
	}
	close(m.done)
	m.watcher.Close()
}

// watchLoop owns the debounce timer exclusively: every timer read/reset
// happens on this one goroutine, so the dedupe state needs no locking.
func (m *Manager) watchLoop() {
	timer := time.NewTimer(dedupeWindow)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-m.done:
			timer.Stop()
			return
		case event, ok := <-m.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(m.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if pending {
				continue
			}
			pending = true
			timer.Reset(dedupeWindow)
		case <-timer.C:
			pending = false
			time.Sleep(quiesceDelay)
			m.reload()
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			logging.Get().Config("file watcher error: %v", err)
		}
	}
}

// reload re-reads the configuration file after a debounced change,
// keeping the previous configuration on parse failure (§7
// ConfigParseFailed).
func (m *Manager) reload() {
	cfg, err := readFile(m.path)
	if err != nil {
		logging.Get().Config("reload failed, keeping previous configuration: %v", err)
		return
	}
	cfg.Normalize()

	m.mu.Lock()
	cfg.ConfigVersion = m.current.ConfigVersion
	cfg.SchemaURL = m.current.SchemaURL
	m.current = cfg
	m.mu.Unlock()

	if m.OnConfigurationChanged != nil {
		m.OnConfigurationChanged(cfg)
	}
}

func readFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func writeFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
