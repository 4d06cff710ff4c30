package binding

import (
	"fmt"
	"slices"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-logr/logr"

	"widget-binder/internal/match"
)

// Loader resolves dataset keys to widget names when exact name matching
// fails. It combines an explicit override map, exact matches, and fuzzy
// closest-match fallback, in that order.
//
// A Loader is built from EITHER an override map (key -> widget name) OR a
// list of keys still needing resolution. In list form resolution is
// fuzzy-only, driven by the Complement flag.
type Loader struct {
	// Overrides maps dataset keys to explicit target widget names.
	Overrides map[string]string

	// Keys lists dataset keys to resolve by fuzzy matching. Ignored when
	// Overrides is set.
	Keys []string

	// Complement enables fuzzy completion of missing entries at Build time.
	Complement bool

	// SuppressKeys lists keys whose build failures are tolerated instead of
	// failing the Build.
	SuppressKeys []string

	// Threshold is the minimum fuzzy similarity; 0 means the default.
	Threshold float64

	// Verbose surfaces every resolution decision through Logger, plus a
	// dump of the built map after Build.
	Verbose bool

	// Logger is the reporting side channel. The zero value discards.
	Logger logr.Logger

	built map[string]string
}

// NewLoader creates a loader from an explicit key-to-widget-name map.
func NewLoader(overrides map[string]string) *Loader {
	return &Loader{Overrides: overrides}
}

// NewKeyLoader creates a loader that fuzzy-resolves the given keys.
func NewKeyLoader(keys []string) *Loader {
	return &Loader{Keys: keys, Complement: true}
}

// Build validates the loader against the available widget names and
// produces the built key-to-widget-name map consulted by Resolve.
//
// In override form every target name must exist among the widgets; missing
// targets are fuzzy-replaced when Complement is set, tolerated for keys in
// SuppressKeys, and fail with ErrUnresolvedOverride otherwise. In list form
// exact key matches are kept and the rest are fuzzy-completed.
func (l *Loader) Build(widgetNames []string) error {
	var err error

	if l.Overrides != nil {
		err = l.buildFromOverrides(widgetNames)
	} else {
		err = l.buildFromKeys(widgetNames)
	}

	if err != nil {
		return err
	}

	if l.Verbose {
		l.logger().Info("loader build complete", "built", spew.Sdump(l.built))
	}

	return nil
}

// Built returns the resolved key-to-widget-name map. Nil before Build.
func (l *Loader) Built() map[string]string {
	return l.built
}

// Resolve maps a dataset key to a widget name: override entry first, then
// exact match, then fuzzy closest-match. The returned Method reports which
// strategy won; score is the fuzzy similarity (1 for the other methods).
// An override naming an unavailable widget fails with ErrUnresolvedOverride
// unless the key is suppressed. An unresolvable key fails with
// ErrWidgetNotFound.
func (l *Loader) Resolve(key string, widgetNames []string) (string, Method, float64, error) {
	if name, ok := l.lookupOverride(key); ok {
		if !slices.Contains(widgetNames, name) {
			if l.suppressed(key) {
				return l.resolveFallback(key, widgetNames)
			}

			return "", MethodNone, 0, fmt.Errorf("key %q -> %q: %w", key, name, ErrUnresolvedOverride)
		}

		l.report(key, name, MethodOverride, 1)

		return name, MethodOverride, 1, nil
	}

	return l.resolveFallback(key, widgetNames)
}

// resolveFallback handles the non-override strategies: exact, then fuzzy.
func (l *Loader) resolveFallback(key string, widgetNames []string) (string, Method, float64, error) {
	if slices.Contains(widgetNames, key) {
		l.report(key, key, MethodExact, 1)

		return key, MethodExact, 1, nil
	}

	if name, ok := match.Closest(key, widgetNames, l.Threshold); ok {
		score := match.Score(key, name)
		l.report(key, name, MethodFuzzy, score)

		return name, MethodFuzzy, score, nil
	}

	l.report(key, "", MethodNone, 0)

	return "", MethodNone, 0, fmt.Errorf("key %q: %w", key, ErrWidgetNotFound)
}

// lookupOverride consults the built map first, falling back to the raw
// override map so Resolve also works on an unbuilt loader. Key-list loaders
// carry no overrides; their built entries are exact or fuzzy results and
// resolveFallback reproduces them deterministically.
func (l *Loader) lookupOverride(key string) (string, bool) {
	if l.Overrides == nil {
		return "", false
	}

	if name, ok := l.built[key]; ok {
		return name, true
	}

	name, ok := l.Overrides[key]

	return name, ok
}

func (l *Loader) buildFromOverrides(widgetNames []string) error {
	built := make(map[string]string, len(l.Overrides))

	for key, name := range l.Overrides {
		if slices.Contains(widgetNames, name) {
			built[key] = name

			continue
		}

		// Target widget missing, try to repair the entry from the key
		if l.Complement {
			if closest, ok := match.Closest(key, widgetNames, l.Threshold); ok {
				built[key] = closest

				continue
			}
		}

		if l.suppressed(key) {
			continue
		}

		return fmt.Errorf("key %q -> %q: %w", key, name, ErrUnresolvedOverride)
	}

	l.built = built

	return nil
}

func (l *Loader) buildFromKeys(widgetNames []string) error {
	built := make(map[string]string, len(l.Keys))

	for _, key := range l.Keys {
		if slices.Contains(widgetNames, key) {
			built[key] = key

			continue
		}

		if l.Complement {
			if closest, ok := match.Closest(key, widgetNames, l.Threshold); ok {
				built[key] = closest

				continue
			}
		}

		if l.suppressed(key) {
			continue
		}

		return fmt.Errorf("key %q: %w", key, ErrWidgetNotFound)
	}

	l.built = built

	return nil
}

func (l *Loader) suppressed(key string) bool {
	return slices.Contains(l.SuppressKeys, key)
}

func (l *Loader) report(key, name string, via Method, score float64) {
	if !l.Verbose {
		return
	}

	l.logger().Info("resolved key", "key", key, "widget", name, "via", via.String(), "score", score)
}

func (l *Loader) logger() logr.Logger {
	if l.Logger.IsZero() {
		return logr.Discard()
	}

	return l.Logger
}
