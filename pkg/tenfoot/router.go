package tenfoot

import (
	"log/slog"

	"github.com/orbitview/tenfoot/pkg/tenfoot/constants"
	"github.com/orbitview/tenfoot/pkg/tenfoot/internal"
	"go.uber.org/atomic"
)

// InputMode is the camera-control interpretation of the arrow buttons.
type InputMode int32

const (
	ModeNavigation InputMode = iota
	ModeZoom
)

func (m InputMode) String() string {
	if m == ModeZoom {
		return "zoom"
	}
	return "navigation"
}

type RouterOptions struct {
	OnDirectionChange func(Direction)
	OnZoomModeToggle  func()
}

// ModeRouter decides what each button means for the camera. While a focus
// menu is visible it claims nothing; those buttons belong to the navigator.
// Otherwise Navigation mode maps arrows to held rotation and Zoom mode maps
// Up/Down to held zoom, swallowing Left/Right.
type ModeRouter struct {
	camera CameraActuator
	zoom   *ZoomAnimator
	opts   RouterOptions

	menuVisible func() bool
	enabled     *atomic.Bool
	mode        *atomic.Int32

	heldRotations [4]bool // indexed by Direction

	log *slog.Logger
}

func NewModeRouter(camera CameraActuator, zoom *ZoomAnimator, menuVisible func() bool, opts RouterOptions) *ModeRouter {
	if menuVisible == nil {
		menuVisible = func() bool { return false }
	}
	return &ModeRouter{
		camera:      camera,
		zoom:        zoom,
		opts:        opts,
		menuVisible: menuVisible,
		enabled:     atomic.NewBool(false),
		mode:        atomic.NewInt32(int32(ModeNavigation)),
		log:         internal.GetLogger(),
	}
}

func (r *ModeRouter) Mode() InputMode {
	return InputMode(r.mode.Load())
}

func (r *ModeRouter) Enabled() bool {
	return r.enabled.Load()
}

func (r *ModeRouter) Enable() {
	r.enabled.Store(true)
}

// Disable forces the mode back to Navigation and clears any live zoom
// session as part of disabling, not lazily on the next input.
func (r *ModeRouter) Disable() {
	if !r.enabled.CompareAndSwap(true, false) {
		return
	}
	r.exitZoom(false)
	r.releaseAllRotation()
}

// MenuOpened suspends camera control while the menu takes the keys: the zoom
// session is cancelled and the mode falls back to Navigation synchronously.
func (r *ModeRouter) MenuOpened() {
	r.exitZoom(false)
	r.releaseAllRotation()
}

// HandleButton is the router's dispatcher slot, placed after the navigator:
// with a visible menu the navigator has already claimed the arrows and OK.
func (r *ModeRouter) HandleButton(btn constants.VirtualButton, pressed bool) bool {
	if !r.enabled.Load() || r.menuVisible() {
		return false
	}

	switch btn {
	case constants.VirtualButtonSelect:
		if pressed {
			r.toggleMode()
		}
		return true
	case constants.VirtualButtonUp, constants.VirtualButtonDown,
		constants.VirtualButtonLeft, constants.VirtualButtonRight:
		if r.Mode() == ModeZoom {
			return r.handleZoomArrow(btn, pressed)
		}
		return r.handleRotationArrow(btn, pressed)
	}
	return false
}

// toggleMode is the single exit path out of Zoom mode, so leaving it always
// cancels the live session.
func (r *ModeRouter) toggleMode() {
	if r.Mode() == ModeZoom {
		r.exitZoom(true)
	} else {
		r.releaseAllRotation()
		r.mode.Store(int32(ModeZoom))
		r.log.Debug("Input mode changed", "mode", ModeZoom.String())
		if r.opts.OnZoomModeToggle != nil {
			r.opts.OnZoomModeToggle()
		}
	}
}

func (r *ModeRouter) exitZoom(notify bool) {
	wasZoom := r.Mode() == ModeZoom
	r.zoom.Stop()
	r.mode.Store(int32(ModeNavigation))
	if wasZoom {
		r.log.Debug("Input mode changed", "mode", ModeNavigation.String())
		if notify && r.opts.OnZoomModeToggle != nil {
			r.opts.OnZoomModeToggle()
		}
	}
}

func (r *ModeRouter) handleZoomArrow(btn constants.VirtualButton, pressed bool) bool {
	switch btn {
	case constants.VirtualButtonUp:
		if pressed {
			r.zoom.Start(true)
		} else if r.zoom.Direction() == ZoomIn {
			r.zoom.Stop()
		}
	case constants.VirtualButtonDown:
		if pressed {
			r.zoom.Start(false)
		} else if r.zoom.Direction() == ZoomOut {
			r.zoom.Stop()
		}
	case constants.VirtualButtonLeft, constants.VirtualButtonRight:
		// Swallowed: no accidental rotation while attention is on zoom.
	}
	return true
}

func (r *ModeRouter) handleRotationArrow(btn constants.VirtualButton, pressed bool) bool {
	d, ok := arrowDirection(btn)
	if !ok {
		return false
	}

	if pressed {
		if r.heldRotations[d] {
			// Native key repeat while held: the rotation is already running.
			return true
		}
		r.heldRotations[d] = true
		r.camera.BeginRotate(d)
		if r.opts.OnDirectionChange != nil {
			r.opts.OnDirectionChange(d)
		}
	} else {
		if !r.heldRotations[d] {
			// Release without a matching press (e.g. pressed before enable).
			return true
		}
		r.heldRotations[d] = false
		r.camera.EndRotate(d)
	}
	return true
}

func (r *ModeRouter) releaseAllRotation() {
	for d := North; d <= West; d++ {
		if r.heldRotations[d] {
			r.heldRotations[d] = false
			r.camera.EndRotate(d)
		}
	}
}

func arrowDirection(btn constants.VirtualButton) (Direction, bool) {
	switch btn {
	case constants.VirtualButtonUp:
		return North, true
	case constants.VirtualButtonDown:
		return South, true
	case constants.VirtualButtonLeft:
		return West, true
	case constants.VirtualButtonRight:
		return East, true
	}
	return North, false
}
