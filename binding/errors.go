package binding

import "errors"

var (
	// ErrWidgetNotFound reports a dataset key that resolved to no widget:
	// no exact name match, no override entry, no fuzzy match above the
	// threshold. Surfaced only in strict mode; otherwise the key is dropped
	// from the hook set.
	ErrWidgetNotFound = errors.New("no widget found for key")

	// ErrUnresolvedOverride reports an explicit override naming a widget
	// absent from the supplied widget collection.
	ErrUnresolvedOverride = errors.New("override names a missing widget")

	// ErrKeyPathMissing reports a key-path that was valid at construction
	// but no longer resolves because the dataset shape changed.
	ErrKeyPathMissing = errors.New("key path missing from dataset")

	// ErrWidgetAlreadyHooked reports a widget already claimed by another
	// container built without AllowMultipleHooks.
	ErrWidgetAlreadyHooked = errors.New("widget already hooked")

	// ErrHookNotFound reports a widget name no hook is bound to.
	ErrHookNotFound = errors.New("no hook bound to widget")
)
