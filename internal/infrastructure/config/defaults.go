package config

import (
	"github.com/bnema/pagestate/internal/application/usecase"
	"github.com/bnema/pagestate/internal/domain/entity"
)

const (
	defaultProfile      = "default"
	defaultLogLevel     = "warn"
	defaultLogFormat    = "console"
	defaultRootSelector = "body"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	contract := usecase.DefaultDOMContract()
	return &Config{
		Profile: defaultProfile,
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Preferences: PreferencesConfig{
			DefaultLanguage: entity.DefaultLanguage,
		},
		DOM: DOMConfig{
			RootSelector:            defaultRootSelector,
			ThemeToggleID:           contract.ThemeToggleID,
			ThemeAttribute:          contract.ThemeAttribute,
			MenuToggleID:            contract.MenuToggleID,
			WrapperSelector:         contract.WrapperSelector,
			BlurClass:               contract.BlurClass,
			LanguageButtonSelector:  contract.LanguageButtonSelector,
			LanguageAttribute:       contract.LanguageAttribute,
			LanguageMarkerAttribute: contract.LanguageMarkerAttribute,
			ActiveClass:             contract.ActiveClass,
			ItemSelector:            contract.ItemSelector,
			HeaderSelector:          contract.HeaderSelector,
		},
	}
}

// defaultValues flattens DefaultConfig into viper keys.
func defaultValues() map[string]any {
	d := DefaultConfig()
	return map[string]any{
		"profile":                       d.Profile,
		"database.path":                 d.Database.Path,
		"logging.level":                 d.Logging.Level,
		"logging.format":                d.Logging.Format,
		"preferences.default_language":  d.Preferences.DefaultLanguage,
		"dom.root_selector":             d.DOM.RootSelector,
		"dom.theme_toggle_id":           d.DOM.ThemeToggleID,
		"dom.theme_attribute":           d.DOM.ThemeAttribute,
		"dom.menu_toggle_id":            d.DOM.MenuToggleID,
		"dom.wrapper_selector":          d.DOM.WrapperSelector,
		"dom.blur_class":                d.DOM.BlurClass,
		"dom.language_button_selector":  d.DOM.LanguageButtonSelector,
		"dom.language_attribute":        d.DOM.LanguageAttribute,
		"dom.language_marker_attribute": d.DOM.LanguageMarkerAttribute,
		"dom.active_class":              d.DOM.ActiveClass,
		"dom.item_selector":             d.DOM.ItemSelector,
		"dom.header_selector":           d.DOM.HeaderSelector,
	}
}

// setDefaults registers every default with viper so env overrides and
// partial config files resolve against them.
func (m *Manager) setDefaults() {
	for key, value := range defaultValues() {
		m.viper.SetDefault(key, value)
	}
}

// Contract converts the DOM section into the controllers' contract.
func (c *Config) Contract() usecase.DOMContract {
	return usecase.DOMContract{
		ThemeToggleID:           c.DOM.ThemeToggleID,
		ThemeAttribute:          c.DOM.ThemeAttribute,
		MenuToggleID:            c.DOM.MenuToggleID,
		WrapperSelector:         c.DOM.WrapperSelector,
		BlurClass:               c.DOM.BlurClass,
		LanguageButtonSelector:  c.DOM.LanguageButtonSelector,
		LanguageAttribute:       c.DOM.LanguageAttribute,
		LanguageMarkerAttribute: c.DOM.LanguageMarkerAttribute,
		ActiveClass:             c.DOM.ActiveClass,
		ItemSelector:            c.DOM.ItemSelector,
		HeaderSelector:          c.DOM.HeaderSelector,
	}
}

// PageOptions builds the page load options from the configuration.
func (c *Config) PageOptions() usecase.PageOptions {
	return usecase.PageOptions{
		Contract:        c.Contract(),
		DefaultLanguage: c.Preferences.DefaultLanguage,
	}
}
