package tenfoot

// Item is a ready-made Focusable for hosts that don't have their own element
// type: a labeled button with optional focus/activate hooks.
type Item struct {
	Name        string
	Disabled    bool
	Hidden      bool
	Unreachable bool // excluded from d-pad traversal even when visible

	OnFocus    func()
	OnActivate func()

	focused bool
}

func (it *Item) ID() string    { return it.Name }
func (it *Item) Enabled() bool { return !it.Disabled }
func (it *Item) Visible() bool { return !it.Hidden }
func (it *Item) Focused() bool { return it.focused }

func (it *Item) FocusDisabled() bool { return it.Unreachable }

func (it *Item) Focus() {
	it.focused = true
	if it.OnFocus != nil {
		it.OnFocus()
	}
}

func (it *Item) Blur() { it.focused = false }

func (it *Item) Activate() {
	if it.OnActivate != nil {
		it.OnActivate()
	}
}

// ItemContainer is a flat Container over a slice of Items.
type ItemContainer struct {
	Items []*Item
}

func (c *ItemContainer) Descendants() []Focusable {
	out := make([]Focusable, 0, len(c.Items))
	for _, it := range c.Items {
		out = append(out, it)
	}
	return out
}
