package widget

// Stub is a minimal in-memory Widget. It is the reference implementation for
// tests, demos, and headless dry-runs: a named value buffer whose SetValue
// fires attached callbacks synchronously, the way toolkit signals do.
type Stub struct {
	name   string
	value  any
	nextID uint64
	subs   map[Subscription]func()
	order  []Subscription
}

// NewStub creates a stub widget with a name and an initial value.
func NewStub(name string, value any) *Stub {
	return &Stub{
		name:  name,
		value: value,
		subs:  map[Subscription]func(){},
	}
}

// Name returns the widget identifier.
func (s *Stub) Name() string { return s.name }

// Value returns the current value.
func (s *Stub) Value() any { return s.value }

// SetValue stores the value and fires change callbacks in attachment order.
func (s *Stub) SetValue(v any) {
	s.value = v

	for _, sub := range s.order {
		if cb, ok := s.subs[sub]; ok {
			cb()
		}
	}
}

// OnChange attaches a change callback.
func (s *Stub) OnChange(cb func()) Subscription {
	s.nextID++
	sub := Subscription{ID: s.nextID}
	s.subs[sub] = cb
	s.order = append(s.order, sub)

	return sub
}

// RemoveSubscription detaches a callback; unknown handles are ignored.
func (s *Stub) RemoveSubscription(sub Subscription) {
	if _, ok := s.subs[sub]; !ok {
		return
	}

	delete(s.subs, sub)

	for i, o := range s.order {
		if o == sub {
			s.order = append(s.order[:i], s.order[i+1:]...)

			break
		}
	}
}

// Subscribers returns the number of currently attached callbacks.
func (s *Stub) Subscribers() int { return len(s.subs) }
