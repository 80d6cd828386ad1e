package entity

import "time"

// Preference keys persisted in the profile store.
const (
	PreferenceKeyTheme    = "theme"
	PreferenceKeyLanguage = "site-language"
)

// DefaultLanguage is used when no site-language preference exists.
const DefaultLanguage = "en"

// Preference is a named string value that survives page reloads within a profile.
type Preference struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// NewPreference creates a preference stamped with the current time.
func NewPreference(key, value string) *Preference {
	return &Preference{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
}
