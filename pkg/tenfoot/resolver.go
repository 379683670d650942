package tenfoot

// Focusable is an interactive element eligible to receive d-pad focus.
// The engine only ever reads these; it never mutates the element.
type Focusable interface {
	ID() string
	Enabled() bool
	Visible() bool

	// Focus gives the element programmatic focus. Called by the navigator
	// whenever the element becomes the current target.
	Focus()

	// Activate invokes the element's primary action (the OK press).
	Activate()
}

// focusOptOut lets an element that is otherwise enabled and visible mark
// itself as not reachable by d-pad navigation.
type focusOptOut interface {
	FocusDisabled() bool
}

// Container is a boundary whose interactive descendants are enumerated in
// document order (top-left to bottom-right for grid layouts).
type Container interface {
	Descendants() []Focusable
}

// Resolve returns the ordered focusable set within the container. An absent
// container or a container with no eligible descendants yields an empty set;
// there is no error path.
func Resolve(c Container) []Focusable {
	if c == nil {
		return nil
	}

	var out []Focusable
	for _, t := range c.Descendants() {
		if IsFocusable(t) {
			out = append(out, t)
		}
	}
	return out
}

// IsFocusable reports whether a single element would be included by Resolve:
// present, enabled, visible, and not explicitly opted out of focus.
func IsFocusable(t Focusable) bool {
	if t == nil {
		return false
	}
	if !t.Enabled() || !t.Visible() {
		return false
	}
	if opt, ok := t.(focusOptOut); ok && opt.FocusDisabled() {
		return false
	}
	return true
}
