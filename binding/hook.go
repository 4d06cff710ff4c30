package binding

import (
	"fmt"

	"widget-binder/dataset"
	"widget-binder/widget"
)

// Hook is one immutable binding from a dataset key-path to a widget,
// together with the codec translating between the stored and the
// widget-held form of the value.
type Hook struct {
	path  dataset.KeyPath
	w     widget.Widget
	codec widget.Codec

	// subs tracks only the subscriptions this hook attached, so detaching
	// never disturbs callbacks wired up elsewhere.
	subs []widget.Subscription
}

func newHook(path dataset.KeyPath, w widget.Widget, codec widget.Codec) *Hook {
	return &Hook{path: path, w: w, codec: codec}
}

// Path returns the key-path this hook binds.
func (h *Hook) Path() dataset.KeyPath { return h.path }

// Widget returns the bound widget.
func (h *Hook) Widget() widget.Widget { return h.w }

// Read returns the widget's current value encoded to storable form.
func (h *Hook) Read() any {
	return h.codec.Encode(h.w.Value())
}

// Write decodes a stored value and sets it on the widget.
func (h *Hook) Write(v any) {
	h.w.SetValue(h.codec.Decode(v))
}

// subscribe attaches a change callback to the widget and remembers the
// subscription for later removal.
func (h *Hook) subscribe(cb func()) widget.Subscription {
	sub := h.w.OnChange(cb)
	h.subs = append(h.subs, sub)

	return sub
}

// unsubscribe detaches one subscription previously attached by this hook.
// Unknown subscriptions are ignored, so double-unsubscribe is a no-op.
func (h *Hook) unsubscribe(sub widget.Subscription) {
	for i, s := range h.subs {
		if s == sub {
			h.w.RemoveSubscription(sub)
			h.subs = append(h.subs[:i], h.subs[i+1:]...)

			return
		}
	}
}

// unsubscribeAll detaches every subscription this hook attached.
func (h *Hook) unsubscribeAll() {
	for _, sub := range h.subs {
		h.w.RemoveSubscription(sub)
	}

	h.subs = nil
}

// String returns a readable description of the binding.
func (h *Hook) String() string {
	return fmt.Sprintf("Hook(%s -> %s)", h.path, h.w.Name())
}
