// Package widget defines the capability surface a GUI widget must expose to
// be bindable, plus value codecs and a toolkit-free Stub implementation.
//
// The binding core depends only on the Widget interface, never on a concrete
// toolkit. Adapting a real toolkit widget means implementing five methods.
package widget

// Subscription identifies one change callback attached via OnChange, so it
// can later be removed without disturbing callbacks attached elsewhere.
// Implementations issue IDs from their own sequence; handles are only
// meaningful to the widget that issued them.
type Subscription struct {
	ID uint64
}

// Widget is the capability set the binding layer needs from an editable
// widget: a stable name, get/set of its current value, and change-event
// subscription dispatched by the hosting event loop.
type Widget interface {
	// Name returns the widget's identifier, matched against dataset keys.
	Name() string

	// Value returns the widget's current raw value.
	Value() any

	// SetValue replaces the widget's current value. Implementations fire
	// their change callbacks, mirroring toolkit signal semantics.
	SetValue(v any)

	// OnChange attaches a callback invoked after every value change and
	// returns a handle for removal.
	OnChange(cb func()) Subscription

	// RemoveSubscription detaches a previously attached callback. Unknown
	// handles are ignored.
	RemoveSubscription(sub Subscription)
}

// Names extracts the widget names from a collection, preserving order.
func Names(widgets []Widget) []string {
	names := make([]string, 0, len(widgets))
	for _, w := range widgets {
		names = append(names, w.Name())
	}

	return names
}

// ByName finds the first widget with the given name. Name uniqueness is
// assumed but not enforced; first match wins.
func ByName(widgets []Widget, name string) (Widget, bool) {
	for _, w := range widgets {
		if w.Name() == name {
			return w, true
		}
	}

	return nil, false
}
