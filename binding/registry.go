package binding

import "fmt"

// hookRegistry tracks which container claimed which widget names, so two
// containers cannot silently fight over the same widget. All access happens
// on the GUI event thread, matching the library's threading model.
type hookRegistry struct {
	owners map[string][]string // container name -> claimed widget names
}

var hookedWidgets = &hookRegistry{owners: map[string][]string{}}

// claim registers widget names for a container. It fails with
// ErrWidgetAlreadyHooked when another container already claimed one of them.
func (r *hookRegistry) claim(owner string, names []string) error {
	for _, name := range names {
		for other, claimed := range r.owners {
			if other == owner {
				continue
			}

			for _, c := range claimed {
				if c == name {
					return wrapAlreadyHooked(name, other)
				}
			}
		}
	}

	r.owners[owner] = append(r.owners[owner], names...)

	return nil
}

// release drops every claim held by a container.
func (r *hookRegistry) release(owner string) {
	delete(r.owners, owner)
}

func wrapAlreadyHooked(name, owner string) error {
	return fmt.Errorf("widget %q claimed by container %q: %w", name, owner, ErrWidgetAlreadyHooked)
}
