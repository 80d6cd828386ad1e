package dom

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/bnema/pagestate/internal/application/port"
)

func (d *Document) addListener(n *html.Node, event string, handler port.EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()

	byEvent := d.listeners[n]
	if byEvent == nil {
		byEvent = make(map[string][]port.EventHandler)
		d.listeners[n] = byEvent
	}
	byEvent[event] = append(byEvent[event], handler)
}

// Dispatch queues event on el and drains the queue on the calling goroutine.
// Handlers run to completion in dispatch order; an event dispatched while the
// queue is draining runs after the current handler returns. A panicking
// handler drops the rest of the queue and leaves the document usable.
func (d *Document) Dispatch(el port.Element, event string) {
	e, ok := el.(*element)
	if !ok || e == nil {
		return
	}

	d.mu.Lock()
	d.queue = append(d.queue, pendingEvent{node: e.node(), event: event})
	if d.draining {
		d.mu.Unlock()
		return
	}
	d.draining = true

	drained := false
	defer func() {
		if drained {
			return
		}
		// Handlers run unlocked, so the mutex is free here.
		d.mu.Lock()
		d.queue = nil
		d.draining = false
		d.mu.Unlock()
	}()

	for len(d.queue) > 0 {
		next := d.queue[0]
		d.queue = d.queue[1:]
		handlers := append([]port.EventHandler(nil), d.listeners[next.node][next.event]...)

		d.mu.Unlock()
		for _, h := range handlers {
			h()
		}
		d.mu.Lock()
	}

	d.draining = false
	drained = true
	d.mu.Unlock()
}

// Click simulates a user click on the first element matching selector.
// Checkboxes and radios flip their checked state and also fire change.
func (d *Document) Click(selector string) error {
	el := d.QuerySelector(selector)
	if el == nil {
		return fmt.Errorf("click %q: %w", selector, ErrElementNotFound)
	}
	d.ClickElement(el)
	return nil
}

// ClickElement simulates a user click on el.
func (d *Document) ClickElement(el port.Element) {
	e, ok := el.(*element)
	if !ok || e == nil {
		return
	}
	if e.isToggle() {
		e.setChecked(!e.Checked())
		d.Dispatch(e, port.EventClick)
		d.Dispatch(e, port.EventChange)
		return
	}
	d.Dispatch(e, port.EventClick)
}

// SetChecked sets the checked state of the element matching selector and fires
// change when the state actually changes.
func (d *Document) SetChecked(selector string, checked bool) error {
	el := d.QuerySelector(selector)
	if el == nil {
		return fmt.Errorf("check %q: %w", selector, ErrElementNotFound)
	}
	e := el.(*element)
	if e.Checked() == checked {
		return nil
	}
	e.setChecked(checked)
	d.Dispatch(e, port.EventChange)
	return nil
}
