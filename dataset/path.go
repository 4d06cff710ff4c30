package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// KeyPath is a sequence of keys locating a value inside a nested dataset.
// A single-element path addresses a top-level key.
type KeyPath []string

// ParsePath parses a dotted path string into a KeyPath.
// Supports: "key", "section.key", "a.b.c".
func ParsePath(path string) (KeyPath, error) {
	if path == "" {
		return nil, errors.New("empty path")
	}

	parts := strings.Split(path, ".")
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("invalid path %q: empty segment", path)
		}
	}

	return KeyPath(parts), nil
}

// Leaf returns the final key of the path.
func (p KeyPath) Leaf() string {
	if len(p) == 0 {
		return ""
	}

	return p[len(p)-1]
}

// Child returns a new path extended by one key. The receiver is not modified.
func (p KeyPath) Child(key string) KeyPath {
	child := make(KeyPath, len(p), len(p)+1)
	copy(child, p)

	return append(child, key)
}

// Equal reports whether two paths address the same location.
func (p KeyPath) Equal(other KeyPath) bool {
	if len(p) != len(other) {
		return false
	}

	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}

	return true
}

// String returns the dotted form of the path.
func (p KeyPath) String() string {
	return strings.Join(p, ".")
}
