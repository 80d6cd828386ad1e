// Package langname resolves human-readable names for language codes.
package langname

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Name describes a language code for display.
type Name struct {
	Code string
	// English is the name in English, empty when the code is not a BCP 47 tag.
	English string
	// Native is the name in the language itself.
	Native string
	Known   bool
}

// String formats the name as "English (Native)" or falls back to the code.
func (n Name) String() string {
	switch {
	case !n.Known:
		return n.Code
	case n.Native == "" || strings.EqualFold(n.Native, n.English):
		return n.English
	default:
		return n.English + " (" + n.Native + ")"
	}
}

// Lookup returns display names for code. Unknown or malformed codes
// come back with Known=false and are still usable as-is.
func Lookup(code string) Name {
	name := Name{Code: code}
	if strings.TrimSpace(code) == "" {
		return name
	}

	tag, err := language.Parse(code)
	if err != nil {
		return name
	}

	english := display.English.Tags().Name(tag)
	if english == "" {
		return name
	}
	name.English = english
	name.Native = display.Self.Name(tag)
	name.Known = true
	return name
}

// Canonical returns the canonical BCP 47 form of code, or code unchanged
// when it does not parse.
func Canonical(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	return tag.String()
}
