package binding

import (
	"fmt"

	"widget-binder/dataset"
	"widget-binder/widget"
)

// buildHooks resolves every leaf key-path of the dataset to a widget and
// wraps the pairs in hooks. Resolution order per key: exact widget-name
// match, then the loader (override, exact, fuzzy). Unresolved keys are
// dropped, or fail the build in strict mode. Every decision is recorded.
func buildHooks(
	data dataset.Dataset,
	widgets []widget.Widget,
	opts Options,
) ([]*Hook, []Resolution, error) {
	names := widget.Names(widgets)

	if opts.Loader != nil {
		if err := opts.Loader.Build(names); err != nil {
			return nil, nil, err
		}
	}

	var (
		hooks       []*Hook
		resolutions []Resolution
	)

	for _, path := range data.Leaves(opts.Recursive) {
		key := path.Leaf()

		name, via, score, err := resolveKey(key, names, opts.Loader)
		if err != nil {
			if opts.Strict {
				return nil, nil, fmt.Errorf("build %q: %w", path, err)
			}

			resolutions = append(resolutions, Resolution{Key: path, Via: MethodNone})

			continue
		}

		w, ok := widget.ByName(widgets, name)
		if !ok {
			// Resolution produced a name outside the collection; only
			// possible when the caller hands Resolve and ByName different
			// views, so treat it like an unresolved key.
			if opts.Strict {
				return nil, nil, fmt.Errorf("build %q: %w", path, ErrWidgetNotFound)
			}

			resolutions = append(resolutions, Resolution{Key: path, Via: MethodNone})

			continue
		}

		value, _ := data.Get(path)
		hooks = append(hooks, newHook(path, w, widget.CodecFor(value)))
		resolutions = append(resolutions, Resolution{Key: path, Widget: name, Via: via, Score: score})
	}

	return hooks, resolutions, nil
}

// resolveKey applies the fallback chain for one key. Exact matches win
// before the loader is consulted, so an override can never shadow a key
// that already names its widget.
func resolveKey(key string, names []string, loader *Loader) (string, Method, float64, error) {
	for _, name := range names {
		if name == key {
			return key, MethodExact, 1, nil
		}
	}

	if loader == nil {
		return "", MethodNone, 0, fmt.Errorf("key %q: %w", key, ErrWidgetNotFound)
	}

	return loader.Resolve(key, names)
}
