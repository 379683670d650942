package constants

import "time"

// VirtualButton is the device-independent button vocabulary every input
// source (SDL keyboard, game controller, evdev remote) is mapped into.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonOK     // activate the focused item (Enter / Space / remote OK)
	VirtualButtonBack   // escape / back out of the current surface
	VirtualButtonSelect // camera mode toggle (navigation <-> zoom)
	VirtualButtonMenu
)

func (b VirtualButton) GetName() string {
	switch b {
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonOK:
		return "OK"
	case VirtualButtonBack:
		return "Back"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unassigned"
	}
}

func (b VirtualButton) IsDirectional() bool {
	switch b {
	case VirtualButtonUp, VirtualButtonDown, VirtualButtonLeft, VirtualButtonRight:
		return true
	}
	return false
}

const (
	// DefaultRepeatDelay is how long a directional button must be held before
	// focus movement starts repeating.
	DefaultRepeatDelay = 150 * time.Millisecond

	// DefaultRepeatInterval is the cadence of repeated focus movement while a
	// directional button stays held.
	DefaultRepeatInterval = 50 * time.Millisecond

	// DefaultFrameInterval is the fixed-tick fallback cadence for hosts
	// without a frame loop, matching the render loop's 16ms delay.
	DefaultFrameInterval = 16 * time.Millisecond

	// DefaultBaseZoomSpeed is the zoom step magnitude at 1x acceleration.
	DefaultBaseZoomSpeed = 0.1

	// DefaultMaxZoomAcceleration is the ceiling of the zoom speed ramp. The
	// ramp runs linearly from 1x to this value over the first held second.
	DefaultMaxZoomAcceleration = 5.0

	FrameDelayMS = 16
)
