package tenfoot

import (
	"log/slog"
	"time"

	"github.com/orbitview/tenfoot/pkg/tenfoot/constants"
	"github.com/orbitview/tenfoot/pkg/tenfoot/internal"
)

// GridConfig switches the navigator from linear (previous/next) movement to
// 2-D movement over the same flat, row-major sequence.
type GridConfig struct {
	Columns int
}

type NavigatorOptions struct {
	InitialIndex int
	Grid         *GridConfig

	// OnEscape fires when Back is pressed while the menu is live. Optional.
	OnEscape func()

	RepeatDelay    time.Duration
	RepeatInterval time.Duration
}

func DefaultNavigatorOptions() NavigatorOptions {
	return NavigatorOptions{
		RepeatDelay:    constants.DefaultRepeatDelay,
		RepeatInterval: constants.DefaultRepeatInterval,
	}
}

// Navigator owns the current focus index over a resolved focusable set. All
// operations are no-ops while disabled or while the set is empty; movement
// clamps at the edges and grid edges never wrap.
type Navigator struct {
	opts    NavigatorOptions
	targets []Focusable
	index   int
	enabled bool

	dispatcher *Dispatcher
	token      int
	attached   bool

	menuVisible func() bool
	now         func() time.Time

	heldDirections struct {
		up, down, left, right bool
	}
	lastRepeatTime time.Time
	hasRepeated    bool

	log *slog.Logger
}

func NewNavigator(dispatcher *Dispatcher, menuVisible func() bool, opts NavigatorOptions) *Navigator {
	if opts.RepeatDelay <= 0 {
		opts.RepeatDelay = constants.DefaultRepeatDelay
	}
	if opts.RepeatInterval <= 0 {
		opts.RepeatInterval = constants.DefaultRepeatInterval
	}
	if menuVisible == nil {
		menuVisible = func() bool { return true }
	}
	return &Navigator{
		opts:        opts,
		dispatcher:  dispatcher,
		menuVisible: menuVisible,
		now:         time.Now,
		log:         internal.GetLogger(),
	}
}

// SetClock overrides the wall clock. Used by tests and the frame pump.
func (n *Navigator) SetClock(now func() time.Time) {
	if now != nil {
		n.now = now
	}
}

// CurrentIndex is 0 when the set is empty (defined but meaningless).
func (n *Navigator) CurrentIndex() int { return n.index }

func (n *Navigator) Enabled() bool { return n.enabled }

func (n *Navigator) Targets() []Focusable { return n.targets }

// SetTargets installs a freshly resolved set for a new menu session. The
// focus index resets to the configured initial index.
func (n *Navigator) SetTargets(targets []Focusable) {
	n.targets = targets
	n.index = clampIndex(n.opts.InitialIndex, len(targets))
	n.focusCurrent()
}

// RefreshTargets installs a re-resolved set for the same menu session, e.g.
// after a list mutation. The current index is clamped into range and the
// in-range target refocused.
func (n *Navigator) RefreshTargets(targets []Focusable) {
	n.targets = targets
	clamped := clampIndex(n.index, len(targets))
	if clamped != n.index {
		n.index = clamped
	}
	n.focusCurrent()
}

// Enable attaches the navigator's key handler and focuses the initial
// target. Repeated Enable calls attach exactly once.
func (n *Navigator) Enable() {
	if n.enabled {
		return
	}
	n.enabled = true
	if n.dispatcher != nil && !n.attached {
		n.token = n.dispatcher.Attach(n.handleButton)
		n.attached = true
	}
	n.focusCurrent()
}

// Disable detaches the key handler and clears held-direction state. Safe to
// call repeatedly; each enable transition detaches exactly once.
func (n *Navigator) Disable() {
	if !n.enabled {
		return
	}
	n.enabled = false
	n.clearHeld()
	if n.dispatcher != nil && n.attached {
		n.dispatcher.Detach(n.token)
		n.attached = false
	}
}

func (n *Navigator) FocusNext() {
	n.moveTo(n.index + 1)
}

func (n *Navigator) FocusPrevious() {
	n.moveTo(n.index - 1)
}

// FocusElement clamps i into range and focuses that target. Used for
// hover-driven focus and external resets.
func (n *Navigator) FocusElement(i int) {
	if !n.enabled || len(n.targets) == 0 {
		return
	}
	n.index = clampIndex(i, len(n.targets))
	n.focusCurrent()
}

// FocusUp and FocusDown are grid-only; without a GridConfig they are
// unavailable and do nothing.
func (n *Navigator) FocusUp() {
	if n.opts.Grid == nil {
		return
	}
	n.moveGrid(-1, 0)
}

func (n *Navigator) FocusDown() {
	if n.opts.Grid == nil {
		return
	}
	n.moveGrid(1, 0)
}

// FocusLeft and FocusRight alias previous/next in linear mode.
func (n *Navigator) FocusLeft() {
	if n.opts.Grid == nil {
		n.FocusPrevious()
		return
	}
	n.moveGrid(0, -1)
}

func (n *Navigator) FocusRight() {
	if n.opts.Grid == nil {
		n.FocusNext()
		return
	}
	n.moveGrid(0, 1)
}

// Activate invokes the focused target's primary action.
func (n *Navigator) Activate() {
	if !n.enabled || len(n.targets) == 0 {
		return
	}
	n.targets[n.index].Activate()
}

// Escape invokes the configured escape callback, if any.
func (n *Navigator) Escape() {
	if !n.enabled {
		return
	}
	if n.opts.OnEscape != nil {
		n.opts.OnEscape()
	}
}

// moveTo clamps the candidate index; if that moves the focus, the target at
// the new index receives programmatic focus.
func (n *Navigator) moveTo(candidate int) {
	if !n.enabled || len(n.targets) == 0 {
		return
	}
	clamped := clampIndex(candidate, len(n.targets))
	if clamped == n.index {
		return
	}
	n.index = clamped
	n.focusCurrent()
}

// moveGrid applies a row/column delta over the row-major sequence. A
// candidate that leaves the grid's bounds is rejected; edges do not wrap.
func (n *Navigator) moveGrid(rowDelta, colDelta int) {
	if !n.enabled || len(n.targets) == 0 {
		return
	}
	cols := n.opts.Grid.Columns
	if cols <= 0 {
		return
	}

	row := n.index/cols + rowDelta
	col := n.index%cols + colDelta
	if row < 0 || col < 0 || col >= cols {
		return
	}

	candidate := row*cols + col
	if candidate >= len(n.targets) {
		return
	}

	n.index = candidate
	n.focusCurrent()
}

// handleButton is the navigator's dispatcher slot. It claims directional,
// OK, and Back buttons while the menu is visible; everything else passes
// through untouched.
func (n *Navigator) handleButton(btn constants.VirtualButton, pressed bool) bool {
	if !n.enabled {
		return false
	}

	if !pressed {
		// Directional releases clear held-direction repeat state even while
		// the menu is hidden, otherwise a release landing mid hide/show cycle
		// leaves a phantom hold that resumes repeating when the menu returns.
		// With the menu visible the release is also claimed so the camera
		// layer never sees a stray arrow release.
		if btn.IsDirectional() {
			n.releaseDirection(btn)
			return n.menuVisible()
		}
		return false
	}

	if !n.menuVisible() {
		return false
	}

	switch btn {
	case constants.VirtualButtonUp:
		n.heldDirections.up = true
		n.markHeld()
		n.FocusUp()
	case constants.VirtualButtonDown:
		n.heldDirections.down = true
		n.markHeld()
		n.FocusDown()
	case constants.VirtualButtonLeft:
		n.heldDirections.left = true
		n.markHeld()
		n.FocusLeft()
	case constants.VirtualButtonRight:
		n.heldDirections.right = true
		n.markHeld()
		n.FocusRight()
	case constants.VirtualButtonOK:
		n.Activate()
	case constants.VirtualButtonBack:
		n.Escape()
	default:
		return false
	}
	return true
}

// StepRepeat re-fires the held direction's movement after the repeat delay,
// then at the repeat interval. Driven once per frame by the host pump.
func (n *Navigator) StepRepeat(now time.Time) {
	if !n.enabled || !n.menuVisible() {
		return
	}

	anyHeld := n.heldDirections.up || n.heldDirections.down || n.heldDirections.left || n.heldDirections.right
	if !anyHeld {
		return
	}

	wait := n.opts.RepeatDelay
	if n.hasRepeated {
		wait = n.opts.RepeatInterval
	}
	if now.Sub(n.lastRepeatTime) < wait {
		return
	}

	n.lastRepeatTime = now
	n.hasRepeated = true

	switch {
	case n.heldDirections.up:
		n.FocusUp()
	case n.heldDirections.down:
		n.FocusDown()
	case n.heldDirections.left:
		n.FocusLeft()
	case n.heldDirections.right:
		n.FocusRight()
	}
}

func (n *Navigator) markHeld() {
	n.lastRepeatTime = n.now()
	n.hasRepeated = false
}

func (n *Navigator) releaseDirection(btn constants.VirtualButton) {
	switch btn {
	case constants.VirtualButtonUp:
		n.heldDirections.up = false
	case constants.VirtualButtonDown:
		n.heldDirections.down = false
	case constants.VirtualButtonLeft:
		n.heldDirections.left = false
	case constants.VirtualButtonRight:
		n.heldDirections.right = false
	}
	n.hasRepeated = false
}

func (n *Navigator) clearHeld() {
	n.heldDirections.up = false
	n.heldDirections.down = false
	n.heldDirections.left = false
	n.heldDirections.right = false
	n.hasRepeated = false
}

func (n *Navigator) focusCurrent() {
	if !n.enabled || len(n.targets) == 0 {
		return
	}
	n.targets[n.index].Focus()
	n.log.Debug("Focus moved", "index", n.index, "target", n.targets[n.index].ID())
}

func clampIndex(i, length int) int {
	if length <= 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= length {
		return length - 1
	}
	return i
}
