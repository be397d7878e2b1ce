// Package state persists the small amount of client-side state resound
// keeps between runs: the onboarding/hint flags and the last selected
// playback target. Backed by SQLite in the XDG data directory.
package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "resound"
	dbFileName   = "resound.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *string // pending selected-target save
}

// Open opens the state database at its XDG data path, creating it if
// needed.
func Open() (*Manager, error) {
	dbPath, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens the state database at an explicit path.
func OpenPath(path string) (*Manager, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Manager{db: db}, nil
}

func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	// Flush pending state
	if pending != nil {
		_ = setSetting(m.db, keySelectedTarget, *pending)
	}

	return m.db.Close()
}

// OnboardingCompleted reports whether the user has completed the
// swipe-discovery onboarding. Defaults to false.
func (m *Manager) OnboardingCompleted() bool {
	return getBoolSetting(m.db, keyOnboarding, false)
}

// SetOnboardingCompleted persists the onboarding flag.
func (m *Manager) SetOnboardingCompleted(done bool) error {
	return setBoolSetting(m.db, keyOnboarding, done)
}

// HintsEnabled reports whether discovery hints are enabled. Defaults to
// true.
func (m *Manager) HintsEnabled() bool {
	return getBoolSetting(m.db, keyHints, true)
}

// SetHintsEnabled persists the hints flag.
func (m *Manager) SetHintsEnabled(enabled bool) error {
	return setBoolSetting(m.db, keyHints, enabled)
}

// SelectedTarget returns the last selected target ID, or "".
func (m *Manager) SelectedTarget() string {
	v, _ := getSetting(m.db, keySelectedTarget)
	return v
}

// SaveSelectedTarget schedules a debounced save of the selected target
// ID. Rapid target switches collapse into one write.
func (m *Manager) SaveSelectedTarget(id string) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &id

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			_ = setSetting(m.db, keySelectedTarget, *pending)
		}
	})
}
