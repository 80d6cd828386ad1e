package usecase

import (
	"context"

	"github.com/bnema/pagestate/internal/application/port"
	"github.com/bnema/pagestate/internal/domain/entity"
	"github.com/bnema/pagestate/internal/logging"
)

// ThemeController keeps the theme marker and the theme preference in sync.
type ThemeController struct {
	prefs    Preferences
	doc      port.Document
	attr     string
	toggleID string
	state    *entity.UIState
}

// NewThemeController creates a theme controller writing into state.
func NewThemeController(
	prefs Preferences,
	doc port.Document,
	contract DOMContract,
	state *entity.UIState,
) *ThemeController {
	return &ThemeController{
		prefs:    prefs,
		doc:      doc,
		attr:     contract.ThemeAttribute,
		toggleID: contract.ThemeToggleID,
		state:    state,
	}
}

// Attach initializes the theme and registers the toggle's click handler.
// Returns false, doing nothing, when the page has no theme toggle.
func (c *ThemeController) Attach(ctx context.Context) bool {
	toggle := c.doc.ElementByID(c.toggleID)
	if toggle == nil {
		logging.FromContext(ctx).Debug().Str("id", c.toggleID).Msg("no theme toggle, skipping theme")
		return false
	}

	c.Initialize(ctx)
	toggle.AddEventListener(port.EventClick, func() {
		c.Toggle(ctx)
	})
	return true
}

// Initialize applies the stored theme to the document marker.
// A missing preference means light.
func (c *ThemeController) Initialize(ctx context.Context) entity.Theme {
	value, ok := c.prefs.Get(ctx, entity.PreferenceKeyTheme)
	if !ok {
		value = string(entity.ThemeLight)
	}

	theme := entity.ParseTheme(value)
	c.apply(theme)

	logging.FromContext(ctx).Debug().Str("theme", string(theme)).Bool("stored", ok).Msg("theme initialized")
	return theme
}

// Toggle flips the theme based on the current marker, not the stored value.
func (c *ThemeController) Toggle(ctx context.Context) entity.Theme {
	next := c.Current().Opposite()

	c.prefs.Set(ctx, entity.PreferenceKeyTheme, string(next))
	c.apply(next)

	logging.FromContext(ctx).Debug().Str("theme", string(next)).Msg("theme toggled")
	return next
}

// Current reads the theme from the document marker.
func (c *ThemeController) Current() entity.Theme {
	value, _ := c.doc.Root().Attr(c.attr)
	return entity.ParseTheme(value)
}

func (c *ThemeController) apply(theme entity.Theme) {
	root := c.doc.Root()
	if theme.IsDark() {
		root.SetAttr(c.attr, string(entity.ThemeDark))
	} else {
		root.RemoveAttr(c.attr)
	}
	c.state.Theme = theme
}
