// Package dataset provides the nested key-value mapping a binding container
// mediates between disk-agnostic caller state and live widget values.
//
// Key functions:
//   - Dataset.Get / Dataset.Set: read and write a value at a KeyPath
//   - Dataset.Leaves: enumerate leaf key-paths, recursively or flat
//   - Dataset.Clone: deep-copy snapshot of the mapping
package dataset

import (
	"sort"

	"github.com/mohae/deepcopy"
)

// Dataset is a mapping from string keys to primitive values or nested
// Datasets. Values of type map[string]any are treated as nested mappings
// interchangeably with Dataset.
type Dataset map[string]any

// Get returns the value at the given key-path. The second return is false
// when any segment of the path is missing or a non-final segment is not a
// nested mapping.
func (d Dataset) Get(path KeyPath) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}

	current := d
	for _, key := range path[:len(path)-1] {
		nested, ok := asMapping(current[key])
		if !ok {
			return nil, false
		}

		current = nested
	}

	v, ok := current[path.Leaf()]

	return v, ok
}

// Set writes a value at the given key-path and reports whether the path
// still resolves. All intermediate mappings and the leaf key must already
// exist; Set never reshapes the dataset.
func (d Dataset) Set(path KeyPath, value any) bool {
	if len(path) == 0 {
		return false
	}

	current := d
	for _, key := range path[:len(path)-1] {
		nested, ok := asMapping(current[key])
		if !ok {
			return false
		}

		current = nested
	}

	if _, ok := current[path.Leaf()]; !ok {
		return false
	}

	current[path.Leaf()] = value

	return true
}

// Leaves enumerates the key-paths of all leaf values. With recursive set,
// nested mappings are descended into and only their leaves are returned;
// otherwise nested mappings count as opaque leaf values themselves.
// Paths are returned in sorted order for determinism.
func (d Dataset) Leaves(recursive bool) []KeyPath {
	var paths []KeyPath

	collectLeaves(d, nil, recursive, &paths)

	sort.Slice(paths, func(i, j int) bool {
		return paths[i].String() < paths[j].String()
	})

	return paths
}

// Clone returns a deep copy of the dataset. Used for snapshots handed back
// to callers so later widget edits cannot mutate them.
func (d Dataset) Clone() Dataset {
	copied := deepcopy.Copy(map[string]any(d))

	return Dataset(copied.(map[string]any))
}

func collectLeaves(d Dataset, prefix KeyPath, recursive bool, out *[]KeyPath) {
	for key, value := range d {
		if nested, ok := asMapping(value); ok && recursive {
			collectLeaves(nested, prefix.Child(key), recursive, out)

			continue
		}

		*out = append(*out, prefix.Child(key))
	}
}

// asMapping unwraps a value into a Dataset when it is a nested mapping.
func asMapping(v any) (Dataset, bool) {
	switch m := v.(type) {
	case Dataset:
		return m, true
	case map[string]any:
		return Dataset(m), true
	default:
		return nil, false
	}
}
