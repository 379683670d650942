package tenfoot

import (
	"sync"
	"time"
)

// fakeCamera records every actuator call.
type fakeCamera struct {
	mu         sync.Mutex
	begins     []Direction
	ends       []Direction
	zoomIn     []bool
	zoomSpeeds []float64
}

func (c *fakeCamera) BeginRotate(d Direction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.begins = append(c.begins, d)
}

func (c *fakeCamera) EndRotate(d Direction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ends = append(c.ends, d)
}

func (c *fakeCamera) ZoomStep(zoomIn bool, speed float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zoomIn = append(c.zoomIn, zoomIn)
	c.zoomSpeeds = append(c.zoomSpeeds, speed)
}

func (c *fakeCamera) zoomSteps() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.zoomSpeeds)
}

func (c *fakeCamera) rotations() (begins, ends []Direction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Direction(nil), c.begins...), append([]Direction(nil), c.ends...)
}

// fakeClock is a manually advanced wall clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

func makeItems(names ...string) []*Item {
	items := make([]*Item, 0, len(names))
	for _, name := range names {
		items = append(items, &Item{Name: name})
	}
	return items
}

func asFocusables(items []*Item) []Focusable {
	out := make([]Focusable, 0, len(items))
	for _, it := range items {
		out = append(out, it)
	}
	return out
}
