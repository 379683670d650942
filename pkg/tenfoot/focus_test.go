package tenfoot

import (
	"testing"
	"time"

	"github.com/orbitview/tenfoot/pkg/tenfoot/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNavigator(t *testing.T, count int, grid *GridConfig) (*Navigator, []*Item, *Dispatcher) {
	t.Helper()

	names := []string{"btn1", "btn2", "btn3", "btn4", "btn5", "btn6", "btn7", "btn8"}
	require.LessOrEqual(t, count, len(names))
	items := makeItems(names[:count]...)

	dispatcher := NewDispatcher()
	nav := NewNavigator(dispatcher, func() bool { return true }, NavigatorOptions{Grid: grid})
	nav.SetTargets(asFocusables(items))
	nav.Enable()
	return nav, items, dispatcher
}

func TestFocusClampsAtEnds(t *testing.T) {
	nav, _, _ := newTestNavigator(t, 3, nil)

	nav.FocusPrevious()
	assert.Equal(t, 0, nav.CurrentIndex(), "FocusPrevious at index 0 must be a no-op")

	nav.FocusNext()
	nav.FocusNext()
	assert.Equal(t, 2, nav.CurrentIndex())

	nav.FocusNext()
	nav.FocusNext()
	assert.Equal(t, 2, nav.CurrentIndex(), "FocusNext at the last index must be a no-op")

	nav.FocusPrevious()
	assert.Equal(t, 1, nav.CurrentIndex())
}

func TestFocusElementClamps(t *testing.T) {
	nav, items, _ := newTestNavigator(t, 3, nil)

	nav.FocusElement(99)
	assert.Equal(t, 2, nav.CurrentIndex())
	assert.True(t, items[2].Focused())

	nav.FocusElement(-5)
	assert.Equal(t, 0, nav.CurrentIndex())
}

func TestGridBoundaryDoesNotWrap(t *testing.T) {
	// 3 columns, 2 rows, indices 0..5.
	nav, _, _ := newTestNavigator(t, 6, &GridConfig{Columns: 3})

	nav.FocusElement(2)
	nav.FocusRight()
	assert.Equal(t, 2, nav.CurrentIndex(), "right edge must not wrap")

	nav.FocusElement(3)
	nav.FocusLeft()
	assert.Equal(t, 3, nav.CurrentIndex(), "left edge must not wrap")

	nav.FocusElement(1)
	nav.FocusUp()
	assert.Equal(t, 1, nav.CurrentIndex(), "top edge must not wrap")

	nav.FocusElement(5)
	nav.FocusDown()
	assert.Equal(t, 5, nav.CurrentIndex(), "bottom edge must not wrap")
}

func TestGridTraversalRoundTrip(t *testing.T) {
	nav, _, _ := newTestNavigator(t, 4, &GridConfig{Columns: 2})

	nav.FocusRight()
	assert.Equal(t, 1, nav.CurrentIndex())
	nav.FocusDown()
	assert.Equal(t, 3, nav.CurrentIndex())
	nav.FocusLeft()
	assert.Equal(t, 2, nav.CurrentIndex())
	nav.FocusUp()
	assert.Equal(t, 0, nav.CurrentIndex())
}

func TestGridPartialLastRow(t *testing.T) {
	// 3 columns, 5 items: the last row has two cells.
	nav, _, _ := newTestNavigator(t, 5, &GridConfig{Columns: 3})

	nav.FocusElement(2)
	nav.FocusDown()
	assert.Equal(t, 2, nav.CurrentIndex(), "moving into a missing cell must be rejected")

	nav.FocusElement(1)
	nav.FocusDown()
	assert.Equal(t, 4, nav.CurrentIndex())
}

func TestLinearModeUpDownUnavailable(t *testing.T) {
	nav, _, _ := newTestNavigator(t, 3, nil)

	nav.FocusUp()
	assert.Equal(t, 0, nav.CurrentIndex())
	nav.FocusDown()
	assert.Equal(t, 0, nav.CurrentIndex())

	// Left/Right alias previous/next without a grid.
	nav.FocusRight()
	assert.Equal(t, 1, nav.CurrentIndex())
	nav.FocusLeft()
	assert.Equal(t, 0, nav.CurrentIndex())
}

func TestEmptySetAllOpsNoop(t *testing.T) {
	dispatcher := NewDispatcher()
	nav := NewNavigator(dispatcher, func() bool { return true }, NavigatorOptions{})
	nav.Enable()

	nav.FocusNext()
	nav.FocusPrevious()
	nav.FocusElement(3)
	nav.Activate()
	assert.Equal(t, 0, nav.CurrentIndex())
}

func TestInitialIndexFocusedOnEnable(t *testing.T) {
	items := makeItems("btn1", "btn2", "btn3")
	dispatcher := NewDispatcher()
	nav := NewNavigator(dispatcher, func() bool { return true }, NavigatorOptions{InitialIndex: 1})
	nav.SetTargets(asFocusables(items))

	assert.False(t, items[1].Focused(), "no focus side effects before enable")

	nav.Enable()
	assert.Equal(t, 1, nav.CurrentIndex())
	assert.True(t, items[1].Focused())
}

func TestSetTargetsResetsRefreshClamps(t *testing.T) {
	nav, _, _ := newTestNavigator(t, 3, nil)
	nav.FocusElement(2)

	// A new menu session resets to the initial index.
	nav.SetTargets(asFocusables(makeItems("a", "b", "c")))
	assert.Equal(t, 0, nav.CurrentIndex())

	// A same-session shrink clamps and refocuses.
	nav.FocusElement(2)
	shrunk := makeItems("a", "b")
	nav.RefreshTargets(asFocusables(shrunk))
	assert.Equal(t, 1, nav.CurrentIndex())
	assert.True(t, shrunk[1].Focused())
}

func TestActivationScenario(t *testing.T) {
	nav, items, dispatcher := newTestNavigator(t, 3, nil)

	activated := make(map[string]int)
	for _, it := range items {
		name := it.Name
		it.OnActivate = func() { activated[name]++ }
	}

	require.True(t, items[0].Focused(), "initial index 0 receives focus on enable")

	nav.FocusNext()
	assert.Equal(t, 1, nav.CurrentIndex())
	assert.True(t, items[1].Focused())

	handled := dispatcher.Dispatch(constants.VirtualButtonOK, true)
	assert.True(t, handled)
	assert.Equal(t, 1, activated["btn2"])
	assert.Equal(t, 1, nav.CurrentIndex(), "activation must not move focus")
}

func TestEscapeRouting(t *testing.T) {
	escapes := 0
	dispatcher := NewDispatcher()
	nav := NewNavigator(dispatcher, func() bool { return true }, NavigatorOptions{
		OnEscape: func() { escapes++ },
	})
	nav.SetTargets(asFocusables(makeItems("btn1")))
	nav.Enable()

	handled := dispatcher.Dispatch(constants.VirtualButtonBack, true)
	assert.True(t, handled, "Back must be claimed")
	assert.Equal(t, 1, escapes)
}

func TestEscapeWithoutCallbackDoesNotPanic(t *testing.T) {
	nav, _, dispatcher := newTestNavigator(t, 1, nil)

	assert.NotPanics(t, func() {
		dispatcher.Dispatch(constants.VirtualButtonBack, true)
	})
	assert.Equal(t, 0, nav.CurrentIndex())
}

func TestUnhandledButtonPassesThrough(t *testing.T) {
	_, _, dispatcher := newTestNavigator(t, 3, nil)

	handled := dispatcher.Dispatch(constants.VirtualButtonMenu, true)
	assert.False(t, handled)
}

func TestDisabledNavigatorIgnoresEverything(t *testing.T) {
	nav, items, dispatcher := newTestNavigator(t, 3, nil)
	nav.Disable()

	nav.FocusNext()
	nav.FocusElement(2)
	nav.Activate()
	assert.Equal(t, 0, nav.CurrentIndex())

	handled := dispatcher.Dispatch(constants.VirtualButtonRight, true)
	assert.False(t, handled)
	assert.False(t, items[1].Focused())
}

func TestNavigatorAttachDetachSymmetry(t *testing.T) {
	nav, _, dispatcher := newTestNavigator(t, 3, nil)

	// Redundant enables must not attach twice.
	nav.Enable()
	nav.Enable()
	attached, detached := dispatcher.Counts()
	assert.Equal(t, 1, attached)
	assert.Equal(t, 0, detached)

	nav.Disable()
	nav.Disable()
	attached, detached = dispatcher.Counts()
	assert.Equal(t, 1, attached)
	assert.Equal(t, 1, detached)

	nav.Enable()
	nav.Disable()
	attached, detached = dispatcher.Counts()
	assert.Equal(t, attached, detached)
}

func TestHeldDirectionRepeats(t *testing.T) {
	clock := newFakeClock()
	dispatcher := NewDispatcher()
	nav := NewNavigator(dispatcher, func() bool { return true }, NavigatorOptions{
		RepeatDelay:    150 * time.Millisecond,
		RepeatInterval: 50 * time.Millisecond,
	})
	nav.SetClock(clock.Now)
	nav.SetTargets(asFocusables(makeItems("a", "b", "c", "d", "e")))
	nav.Enable()

	dispatcher.Dispatch(constants.VirtualButtonRight, true)
	assert.Equal(t, 1, nav.CurrentIndex(), "immediate move on press")

	nav.StepRepeat(clock.Advance(100 * time.Millisecond))
	assert.Equal(t, 1, nav.CurrentIndex(), "no repeat before the delay elapses")

	nav.StepRepeat(clock.Advance(60 * time.Millisecond))
	assert.Equal(t, 2, nav.CurrentIndex(), "first repeat after the delay")

	nav.StepRepeat(clock.Advance(50 * time.Millisecond))
	assert.Equal(t, 3, nav.CurrentIndex(), "subsequent repeats at the interval")

	dispatcher.Dispatch(constants.VirtualButtonRight, false)
	nav.StepRepeat(clock.Advance(time.Second))
	assert.Equal(t, 3, nav.CurrentIndex(), "release stops repeating")
}
