package usecase

// DOMContract names the elements and attributes the controllers look for.
type DOMContract struct {
	ThemeToggleID  string
	ThemeAttribute string

	MenuToggleID    string
	WrapperSelector string
	BlurClass       string

	LanguageButtonSelector  string
	LanguageAttribute       string
	LanguageMarkerAttribute string
	ActiveClass             string
	ItemSelector            string
	HeaderSelector          string
}

// DefaultDOMContract returns the contract used by the site templates.
func DefaultDOMContract() DOMContract {
	return DOMContract{
		ThemeToggleID:           "mode",
		ThemeAttribute:          "data-theme",
		MenuToggleID:            "menu-trigger",
		WrapperSelector:         ".wrapper",
		BlurClass:               "blurry",
		LanguageButtonSelector:  ".lang-btn",
		LanguageAttribute:       "data-lang",
		LanguageMarkerAttribute: "data-lang",
		ActiveClass:             "active",
		ItemSelector:            ".lang-item",
		HeaderSelector:          ".lang-header",
	}
}
