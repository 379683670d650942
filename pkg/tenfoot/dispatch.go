package tenfoot

import "github.com/orbitview/tenfoot/pkg/tenfoot/constants"

// ButtonHandler consumes a virtual-button transition. Returning true claims
// the event (the preventDefault of this world): no later handler sees it.
type ButtonHandler func(btn constants.VirtualButton, pressed bool) bool

type dispatchEntry struct {
	token   int
	handler ButtonHandler
}

// Dispatcher is the engine's single logical key listener. Components acquire
// a slot on enable and must release it on every exit path; attach and detach
// counts are tracked so the symmetry is checkable.
type Dispatcher struct {
	entries   []dispatchEntry
	nextToken int

	attaches int
	detaches int
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{nextToken: 1}
}

// Attach registers a handler and returns its token. Handlers run in attach
// order.
func (d *Dispatcher) Attach(h ButtonHandler) int {
	token := d.nextToken
	d.nextToken++
	d.entries = append(d.entries, dispatchEntry{token: token, handler: h})
	d.attaches++
	return token
}

// Detach removes the handler with the given token. Detaching an unknown
// token is a no-op and does not count.
func (d *Dispatcher) Detach(token int) {
	for i, e := range d.entries {
		if e.token == token {
			d.entries = append(d.entries[:i], d.entries[i+1:]...)
			d.detaches++
			return
		}
	}
}

// Dispatch offers the event to each handler in order until one claims it.
func (d *Dispatcher) Dispatch(btn constants.VirtualButton, pressed bool) bool {
	for _, e := range d.entries {
		if e.handler(btn, pressed) {
			return true
		}
	}
	return false
}

// Counts returns how many attaches and detaches have happened.
func (d *Dispatcher) Counts() (attached, detached int) {
	return d.attaches, d.detaches
}
