package binding

import (
	"fmt"

	"widget-binder/dataset"
)

//go:generate go tool stringer -type=Method -linecomment

// Method identifies how a key was resolved to a widget.
type Method int

const (
	// MethodNone marks a key that resolved to no widget.
	MethodNone Method = iota // none
	// MethodExact marks a key equal to a widget name.
	MethodExact // exact
	// MethodOverride marks a key resolved through an explicit override.
	MethodOverride // override
	// MethodFuzzy marks a key resolved by closest-match.
	MethodFuzzy // fuzzy
)

// Resolution records one key-to-widget resolution decision made while
// building a hook set.
type Resolution struct {
	// Key is the dataset key-path that was resolved.
	Key dataset.KeyPath
	// Widget is the resolved widget name, empty for MethodNone.
	Widget string
	// Via is the strategy that produced the match.
	Via Method
	// Score is the similarity score for fuzzy matches, 1 otherwise.
	Score float64
}

// String returns a one-line human-readable form of the decision.
func (r Resolution) String() string {
	if r.Via == MethodNone {
		return fmt.Sprintf("%s: unresolved", r.Key)
	}

	if r.Via == MethodFuzzy {
		return fmt.Sprintf("%s -> %s (%s, score %.2f)", r.Key, r.Widget, r.Via, r.Score)
	}

	return fmt.Sprintf("%s -> %s (%s)", r.Key, r.Widget, r.Via)
}
