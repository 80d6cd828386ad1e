package config

// Config represents the complete configuration for pagestate.
type Config struct {
	// Profile names the browsing context whose preferences are loaded.
	Profile     string            `mapstructure:"profile" yaml:"profile" toml:"profile" json:"profile" validate:"required,profile_name"`
	Database    DatabaseConfig    `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
	Logging     LoggingConfig     `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Preferences PreferencesConfig `mapstructure:"preferences" yaml:"preferences" toml:"preferences" json:"preferences"`
	DOM         DOMConfig         `mapstructure:"dom" yaml:"dom" toml:"dom" json:"dom"`
}

// DatabaseConfig locates the profile database.
type DatabaseConfig struct {
	// Path overrides the per-profile database file. Empty means $XDG_DATA_HOME/pagestate/profiles/<profile>.db.
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path,omitempty"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" validate:"oneof=console json"`
}

// PreferencesConfig holds the values used when a preference was never stored.
type PreferencesConfig struct {
	DefaultLanguage string `mapstructure:"default_language" yaml:"default_language" toml:"default_language" json:"default_language" validate:"required"`
}

// DOMConfig describes the page markup the controllers bind to.
type DOMConfig struct {
	RootSelector string `mapstructure:"root_selector" yaml:"root_selector" toml:"root_selector" json:"root_selector" validate:"required,css_selector"`

	ThemeToggleID  string `mapstructure:"theme_toggle_id" yaml:"theme_toggle_id" toml:"theme_toggle_id" json:"theme_toggle_id" validate:"required"`
	ThemeAttribute string `mapstructure:"theme_attribute" yaml:"theme_attribute" toml:"theme_attribute" json:"theme_attribute" validate:"required"`

	MenuToggleID    string `mapstructure:"menu_toggle_id" yaml:"menu_toggle_id" toml:"menu_toggle_id" json:"menu_toggle_id" validate:"required"`
	WrapperSelector string `mapstructure:"wrapper_selector" yaml:"wrapper_selector" toml:"wrapper_selector" json:"wrapper_selector" validate:"required,css_selector"`
	BlurClass       string `mapstructure:"blur_class" yaml:"blur_class" toml:"blur_class" json:"blur_class" validate:"required"`

	LanguageButtonSelector  string `mapstructure:"language_button_selector" yaml:"language_button_selector" toml:"language_button_selector" json:"language_button_selector" validate:"required,css_selector"`
	LanguageAttribute       string `mapstructure:"language_attribute" yaml:"language_attribute" toml:"language_attribute" json:"language_attribute" validate:"required"`
	LanguageMarkerAttribute string `mapstructure:"language_marker_attribute" yaml:"language_marker_attribute" toml:"language_marker_attribute" json:"language_marker_attribute" validate:"required"`
	ActiveClass             string `mapstructure:"active_class" yaml:"active_class" toml:"active_class" json:"active_class" validate:"required"`
	ItemSelector            string `mapstructure:"item_selector" yaml:"item_selector" toml:"item_selector" json:"item_selector" validate:"required,css_selector"`
	HeaderSelector          string `mapstructure:"header_selector" yaml:"header_selector" toml:"header_selector" json:"header_selector" validate:"required,css_selector"`
}
