package usecase

import (
	"context"

	"github.com/bnema/pagestate/internal/application/port"
	"github.com/bnema/pagestate/internal/logging"
)

// MenuBlurController blurs the content wrapper while the menu control is checked.
type MenuBlurController struct {
	doc       port.Document
	controlID string
	wrapper   string
	class     string
}

// NewMenuBlurController creates a blur controller.
func NewMenuBlurController(doc port.Document, contract DOMContract) *MenuBlurController {
	return &MenuBlurController{
		doc:       doc,
		controlID: contract.MenuToggleID,
		wrapper:   contract.WrapperSelector,
		class:     contract.BlurClass,
	}
}

// Attach registers the change handler on the menu control.
// Returns false when the page has no menu control.
func (c *MenuBlurController) Attach(ctx context.Context) bool {
	control := c.doc.ElementByID(c.controlID)
	if control == nil {
		logging.FromContext(ctx).Debug().Str("id", c.controlID).Msg("no menu control, skipping blur")
		return false
	}

	control.AddEventListener(port.EventChange, func() {
		c.OnMenuToggleChanged(ctx, control.Checked())
	})
	return true
}

// OnMenuToggleChanged projects the control's checked state onto the wrapper.
func (c *MenuBlurController) OnMenuToggleChanged(ctx context.Context, checked bool) {
	area := c.doc.QuerySelector(c.wrapper)
	if area == nil {
		return
	}
	if checked {
		area.AddClass(c.class)
	} else {
		area.RemoveClass(c.class)
	}
	logging.FromContext(ctx).Debug().Bool("checked", checked).Msg("menu blur updated")
}

// Blurred reports whether the wrapper currently carries the blur class.
func (c *MenuBlurController) Blurred() bool {
	area := c.doc.QuerySelector(c.wrapper)
	return area != nil && area.HasClass(c.class)
}
