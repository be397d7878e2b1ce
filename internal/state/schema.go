package state

import "database/sql"

const (
	keyOnboarding     = "onboarding_completed"
	keyHints          = "hints_enabled"
	keySelectedTarget = "selected_target"
)

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	return err
}

func getSetting(db *sql.DB, key string) (string, error) {
	var value string
	err := db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

func setSetting(db *sql.DB, key, value string) error {
	_, err := db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

func getBoolSetting(db *sql.DB, key string, fallback bool) bool {
	v, err := getSetting(db, key)
	if err != nil || v == "" {
		return fallback
	}
	return v == "1"
}

func setBoolSetting(db *sql.DB, key string, value bool) error {
	v := "0"
	if value {
		v = "1"
	}
	return setSetting(db, key, v)
}
