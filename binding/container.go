package binding

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/go-logr/logr"

	"widget-binder/dataset"
	"widget-binder/widget"
)

// Options configures container construction.
type Options struct {
	// Loader resolves keys that don't exactly match a widget name.
	Loader *Loader

	// Recursive descends into nested mappings, binding multi-segment
	// key-paths. Off, nested mappings are opaque leaf values.
	Recursive bool

	// Strict fails construction on any unresolved key instead of dropping
	// the key from the hook set.
	Strict bool

	// AllowMultipleHooks permits widgets already hooked by another
	// container.
	AllowMultipleHooks bool

	// Logger is the reporting side channel. The zero value discards.
	Logger logr.Logger
}

// CallbackHandle identifies one ConnectCallback registration so it can be
// disconnected selectively. The zero handle addresses all registrations.
type CallbackHandle uint64

// Container binds a dataset to a widget collection. The hook set is
// resolved once at construction and is a snapshot of the structure at that
// time: later changes to the dataset shape or the widget collection's
// membership are not picked up.
type Container struct {
	name    string
	data    dataset.Dataset
	widgets []widget.Widget
	hooks   []*Hook
	report  []Resolution
	logger  logr.Logger

	// loading suppresses connected callbacks while LoadData writes widgets,
	// since those writes fire the same change events user edits do.
	loading bool

	nextHandle   CallbackHandle
	connected    map[CallbackHandle]map[*Hook]widget.Subscription
	saveOnChange CallbackHandle
}

// New builds a container for a dataset and a widget collection. Every leaf
// key is resolved to a widget (exact name, loader override, fuzzy) and
// hooked; unresolved keys are dropped unless Strict is set. The dataset and
// widgets are referenced, not copied.
func New(name string, data dataset.Dataset, widgets []widget.Widget, opts Options) (*Container, error) {
	if data == nil {
		return nil, fmt.Errorf("container %q: dataset must be provided", name)
	}

	if opts.Loader != nil && opts.Loader.Logger.IsZero() {
		opts.Loader.Logger = opts.Logger
	}

	hooks, report, err := buildHooks(data, widgets, opts)
	if err != nil {
		return nil, fmt.Errorf("container %q: %w", name, err)
	}

	if !opts.AllowMultipleHooks {
		names := make([]string, 0, len(hooks))
		for _, h := range hooks {
			names = append(names, h.Widget().Name())
		}

		if err := hookedWidgets.claim(name, names); err != nil {
			return nil, fmt.Errorf("container %q: %w", name, err)
		}
	}

	return &Container{
		name:      name,
		data:      data,
		widgets:   widgets,
		hooks:     hooks,
		report:    report,
		logger:    opts.Logger,
		connected: map[CallbackHandle]map[*Hook]widget.Subscription{},
	}, nil
}

// Name returns the container's name.
func (c *Container) Name() string { return c.name }

// Hooks returns the resolved hook set.
func (c *Container) Hooks() []*Hook { return c.hooks }

// Report returns the resolution decisions recorded while building the hook
// set, including unresolved keys.
func (c *Container) Report() []Resolution { return c.report }

// Close disconnects every callback the container attached and releases its
// widget claims, so another container may hook the same widgets.
func (c *Container) Close() {
	c.DisconnectCallback(0)
	hookedWidgets.release(c.name)
}

// LoadData writes the dataset value at every hook's key-path into its
// widget. Fails with ErrKeyPathMissing when the dataset shape changed since
// construction; connected callbacks are not invoked for the widget writes.
func (c *Container) LoadData() error {
	c.loading = true
	defer func() { c.loading = false }()

	for _, h := range c.hooks {
		v, ok := c.data.Get(h.Path())
		if !ok {
			return fmt.Errorf("load %q: %w", h.Path(), ErrKeyPathMissing)
		}

		h.Write(v)
	}

	return nil
}

// SaveData reads every hooked widget's current value back into the dataset.
// Fails with ErrKeyPathMissing when a key-path no longer resolves.
func (c *Container) SaveData() error {
	for _, h := range c.hooks {
		if !c.data.Set(h.Path(), h.Read()) {
			return fmt.Errorf("save %q: %w", h.Path(), ErrKeyPathMissing)
		}
	}

	return nil
}

// GetData saves the widget values and returns a deep-copied snapshot of the
// updated dataset, detached from later widget edits.
func (c *Container) GetData() (dataset.Dataset, error) {
	if err := c.SaveData(); err != nil {
		return nil, err
	}

	return c.data.Clone(), nil
}

// ConnectCallback subscribes the callback to the change event of every
// hooked widget except those whose leaf key is listed in exclude. The
// returned handle disconnects exactly this registration.
func (c *Container) ConnectCallback(cb func(), exclude ...string) CallbackHandle {
	c.nextHandle++
	handle := c.nextHandle
	subs := map[*Hook]widget.Subscription{}

	for _, h := range c.hooks {
		if slices.Contains(exclude, h.Path().Leaf()) {
			continue
		}

		subs[h] = h.subscribe(func() {
			if c.loading {
				return
			}

			cb()
		})
	}

	c.connected[handle] = subs

	return handle
}

// DisconnectCallback removes the subscriptions attached under the given
// handle, or every container-attached subscription when the handle is zero.
// Hooks whose leaf key is listed in exclude keep their subscriptions.
// Disconnecting an unknown or already disconnected handle is a no-op.
func (c *Container) DisconnectCallback(handle CallbackHandle, exclude ...string) {
	for h, subs := range c.connected {
		if handle != 0 && h != handle {
			continue
		}

		c.disconnectSubs(h, subs, exclude)
	}
}

func (c *Container) disconnectSubs(
	handle CallbackHandle,
	subs map[*Hook]widget.Subscription,
	exclude []string,
) {
	for hook, sub := range subs {
		if slices.Contains(exclude, hook.Path().Leaf()) {
			continue
		}

		hook.unsubscribe(sub)
		delete(subs, hook)
	}

	if len(subs) == 0 {
		delete(c.connected, handle)
	}
}

// SetSaveOnChange wires SaveData as a connected callback, so any widget
// edit re-saves all widget values into the dataset. Toggling it twice in
// the same state is a no-op.
func (c *Container) SetSaveOnChange(on bool) {
	if on == (c.saveOnChange != 0) {
		return
	}

	if on {
		c.saveOnChange = c.ConnectCallback(func() {
			if err := c.SaveData(); err != nil {
				c.log().Error(err, "save on change failed", "container", c.name)
			}
		})

		return
	}

	c.DisconnectCallback(c.saveOnChange)
	c.saveOnChange = 0
}

// ValuesMatch reports whether every hooked widget's current value equals
// the dataset value at its key-path.
func (c *Container) ValuesMatch() bool {
	for _, h := range c.hooks {
		v, ok := c.data.Get(h.Path())
		if !ok || !reflect.DeepEqual(h.Read(), v) {
			return false
		}
	}

	return true
}

// WidgetValue returns the encoded value of a hooked widget by widget name.
// Fails with ErrHookNotFound when nothing is bound to that name.
func (c *Container) WidgetValue(name string) (any, error) {
	for _, h := range c.hooks {
		if h.Widget().Name() == name {
			return h.Read(), nil
		}
	}

	return nil, fmt.Errorf("widget %q: %w", name, ErrHookNotFound)
}

// String returns a readable description of the container.
func (c *Container) String() string {
	return fmt.Sprintf("Container %q with %d hooks", c.name, len(c.hooks))
}

func (c *Container) log() logr.Logger {
	if c.logger.IsZero() {
		return logr.Discard()
	}

	return c.logger
}
