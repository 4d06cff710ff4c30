package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStubValue(t *testing.T) {
	s := NewStub("age", 18)

	assert.Equal(t, "age", s.Name())
	assert.Equal(t, 18, s.Value())

	s.SetValue(21)
	assert.Equal(t, 21, s.Value())
}

func TestStubChangeCallbacks(t *testing.T) {
	s := NewStub("age", 0)

	var fired []string
	first := s.OnChange(func() { fired = append(fired, "first") })
	s.OnChange(func() { fired = append(fired, "second") })

	s.SetValue(1)
	assert.Equal(t, []string{"first", "second"}, fired, "callbacks fire in attachment order")

	fired = nil
	s.RemoveSubscription(first)
	s.SetValue(2)
	assert.Equal(t, []string{"second"}, fired)
	assert.Equal(t, 1, s.Subscribers())

	// Removing twice is a no-op
	s.RemoveSubscription(first)
	assert.Equal(t, 1, s.Subscribers())
}

func TestByName(t *testing.T) {
	a := NewStub("a", nil)
	b1 := NewStub("b", "first")
	b2 := NewStub("b", "second")
	widgets := []Widget{a, b1, b2}

	assert.Equal(t, []string{"a", "b", "b"}, Names(widgets))

	w, ok := ByName(widgets, "b")
	assert.True(t, ok)
	assert.Same(t, b1, w, "first match wins on name collisions")

	_, ok = ByName(widgets, "missing")
	assert.False(t, ok)
}
