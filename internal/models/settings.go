package models

// Settings is the process-wide user configuration consumed by the status
// classifier and the reminder engine. It is persisted as a singleton.
type Settings struct {
	// DueSoonDays is the non-negative day threshold for "Due Soon".
	DueSoonDays int `json:"dueSoonDays"`

	// AutoReminder gates the reminder engine entirely.
	AutoReminder bool `json:"autoReminder"`
}

// DefaultSettings returns the documented first-run defaults.
func DefaultSettings() Settings {
	return Settings{DueSoonDays: 1, AutoReminder: true}
}
