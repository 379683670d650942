package tenfoot

import (
	"errors"
	"log/slog"
	"time"

	"github.com/orbitview/tenfoot/pkg/tenfoot/constants"
	"github.com/orbitview/tenfoot/pkg/tenfoot/internal"
	"go.uber.org/atomic"
)

// ErrNilCamera is returned by NewEngine when no camera actuator is supplied.
// This is a programmer error: the engine cannot exist outside a camera
// context.
var ErrNilCamera = errors.New("tenfoot: camera actuator is required")

type Options struct {
	// Camera receives rotation and zoom commands. Required.
	Camera CameraActuator

	// Grid switches focus navigation to 2-D movement. Nil means linear.
	Grid *GridConfig

	// InitialFocusIndex is where focus lands when a menu session starts.
	InitialFocusIndex int

	BaseZoomSpeed       float64
	MaxZoomAcceleration float64

	RepeatDelay    time.Duration
	RepeatInterval time.Duration

	// Scheduler drives zoom ticks. Defaults to the engine's frame-loop
	// scheduler, stepped by StepFrame/Run; pass a TimerScheduler for hosts
	// without a frame loop.
	Scheduler Scheduler

	OnEscape          func()
	OnDirectionChange func(Direction)
	OnZoomModeToggle  func()
	OnZoomStart       func()
	OnZoomEnd         func()

	LogFilename string
}

func DefaultOptions(camera CameraActuator) Options {
	return Options{
		Camera:              camera,
		BaseZoomSpeed:       constants.DefaultBaseZoomSpeed,
		MaxZoomAcceleration: constants.DefaultMaxZoomAcceleration,
		RepeatDelay:         constants.DefaultRepeatDelay,
		RepeatInterval:      constants.DefaultRepeatInterval,
	}
}

// State is the read-only snapshot the presentation layer renders from:
// focus ring position, mode indicator, active zoom arrow, instruction text.
type State struct {
	FocusIndex    int
	Mode          InputMode
	ZoomDirection ZoomDirection
	IsZooming     bool
	Enabled       bool
	MenuVisible   bool
}

// Engine wires the focus navigator, mode router, and zoom animator behind a
// single dispatcher and a single menu-visibility signal, so the two key
// consumers can never disagree about whose turn it is.
type Engine struct {
	opts Options

	dispatcher *Dispatcher
	navigator  *Navigator
	router     *ModeRouter
	zoom       *ZoomAnimator
	loop       *LoopScheduler // non-nil when the engine owns the scheduler

	menuVisible *atomic.Bool
	enabled     bool
	routerToken int

	log *slog.Logger
}

func NewEngine(opts Options) (*Engine, error) {
	if opts.Camera == nil {
		return nil, ErrNilCamera
	}
	if opts.LogFilename != "" {
		internal.SetLogFilename(opts.LogFilename)
	}

	e := &Engine{
		opts:        opts,
		dispatcher:  NewDispatcher(),
		menuVisible: atomic.NewBool(false),
		log:         internal.GetLogger(),
	}

	var loop *LoopScheduler
	scheduler := opts.Scheduler
	if scheduler == nil {
		loop = NewLoopScheduler()
		scheduler = loop
	}
	e.loop = loop

	e.zoom = NewZoomAnimator(opts.Camera, ZoomOptions{
		BaseSpeed:       opts.BaseZoomSpeed,
		MaxAcceleration: opts.MaxZoomAcceleration,
		Scheduler:       scheduler,
		OnStart:         opts.OnZoomStart,
		OnEnd:           opts.OnZoomEnd,
	})

	e.navigator = NewNavigator(e.dispatcher, e.menuVisible.Load, NavigatorOptions{
		InitialIndex:   opts.InitialFocusIndex,
		Grid:           opts.Grid,
		OnEscape:       opts.OnEscape,
		RepeatDelay:    opts.RepeatDelay,
		RepeatInterval: opts.RepeatInterval,
	})

	e.router = NewModeRouter(opts.Camera, e.zoom, e.menuVisible.Load, RouterOptions{
		OnDirectionChange: opts.OnDirectionChange,
		OnZoomModeToggle:  opts.OnZoomModeToggle,
	})

	return e, nil
}

// MustEngine is NewEngine for callers that treat a missing camera as fatal.
func MustEngine(opts Options) *Engine {
	e, err := NewEngine(opts)
	if err != nil {
		panic(err)
	}
	return e
}

// Enable attaches the key handlers (navigator first, so a visible menu wins
// the arrows) and starts routing input.
func (e *Engine) Enable() {
	if e.enabled {
		return
	}
	e.enabled = true
	e.navigator.Enable()
	e.router.Enable()
	e.routerToken = e.dispatcher.Attach(e.router.HandleButton)
	e.log.Debug("Engine enabled")
}

// Disable detaches everything and cancels any live zoom session in the same
// operation; nothing is deferred to the next tick or input.
func (e *Engine) Disable() {
	if !e.enabled {
		return
	}
	e.enabled = false
	e.router.Disable()
	e.dispatcher.Detach(e.routerToken)
	e.navigator.Disable()
	e.log.Debug("Engine disabled")
}

// Close tears the engine down. Closing while enabled still releases the
// listeners.
func (e *Engine) Close() {
	e.Disable()
}

// SetMenuVisible flips the shared visibility signal. Opening the menu
// suspends camera control synchronously: the zoom session is cancelled and
// the mode resets before the next event is routed.
func (e *Engine) SetMenuVisible(visible bool) {
	was := e.menuVisible.Swap(visible)
	if was == visible {
		return
	}
	if visible {
		e.router.MenuOpened()
	}
}

func (e *Engine) MenuVisible() bool {
	return e.menuVisible.Load()
}

// SetFocusContainer resolves the container and starts a new menu session:
// focus resets to the initial index.
func (e *Engine) SetFocusContainer(c Container) {
	e.navigator.SetTargets(Resolve(c))
}

// RefreshFocusContainer re-resolves the container for the current session:
// the focus index is clamped, not reset.
func (e *Engine) RefreshFocusContainer(c Container) {
	e.navigator.RefreshTargets(Resolve(c))
}

// HandleButtonEvent feeds one virtual-button transition through the
// dispatcher. Returns true when some component claimed it.
func (e *Engine) HandleButtonEvent(btn constants.VirtualButton, pressed bool) bool {
	if !e.enabled {
		return false
	}
	return e.dispatcher.Dispatch(btn, pressed)
}

// StepFrame advances frame-synchronized work: held-direction focus repeat
// and, when the engine owns the scheduler, pending zoom ticks.
func (e *Engine) StepFrame(now time.Time) {
	if !e.enabled {
		return
	}
	e.navigator.StepRepeat(now)
	if e.loop != nil {
		e.loop.Step(now)
	}
}

// Navigator exposes the focus navigator for hover-driven FocusElement calls.
func (e *Engine) Navigator() *Navigator {
	return e.navigator
}

// Snapshot returns the observable state for the presentation layer.
func (e *Engine) Snapshot() State {
	dir := e.zoom.Direction()
	return State{
		FocusIndex:    e.navigator.CurrentIndex(),
		Mode:          e.router.Mode(),
		ZoomDirection: dir,
		IsZooming:     dir != ZoomNone,
		Enabled:       e.enabled,
		MenuVisible:   e.menuVisible.Load(),
	}
}
