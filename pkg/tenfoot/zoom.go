package tenfoot

import (
	"log/slog"
	"sync"
	"time"

	"github.com/orbitview/tenfoot/pkg/tenfoot/constants"
	"github.com/orbitview/tenfoot/pkg/tenfoot/internal"
	"go.uber.org/atomic"
)

// ZoomDirection is the observable state of the zoom session.
type ZoomDirection int

const (
	ZoomNone ZoomDirection = iota
	ZoomIn
	ZoomOut
)

func (d ZoomDirection) String() string {
	switch d {
	case ZoomIn:
		return "in"
	case ZoomOut:
		return "out"
	default:
		return "none"
	}
}

type ZoomOptions struct {
	// BaseSpeed is the ZoomStep magnitude at 1x acceleration.
	BaseSpeed float64

	// MaxAcceleration caps the speed ramp. The factor climbs linearly from
	// 1x to this over the first second of the session, then holds.
	MaxAcceleration float64

	Scheduler Scheduler

	OnStart func()
	OnEnd   func()
}

func DefaultZoomOptions() ZoomOptions {
	return ZoomOptions{
		BaseSpeed:       constants.DefaultBaseZoomSpeed,
		MaxAcceleration: constants.DefaultMaxZoomAcceleration,
	}
}

// ZoomAnimator runs one continuous, accelerating zoom session at a time:
// a self-rescheduling tick loop that steps the camera until explicitly
// stopped. A second Start while a session is live is rejected, so held-key
// repeats can never spawn parallel loops. The session fields are mutex
// guarded because the timer fallback ticks on its own goroutine.
type ZoomAnimator struct {
	camera CameraActuator
	opts   ZoomOptions

	active atomic.Bool

	mu        sync.Mutex
	direction ZoomDirection
	started   time.Time
	cancel    func()
	now       func() time.Time

	log *slog.Logger
}

func NewZoomAnimator(camera CameraActuator, opts ZoomOptions) *ZoomAnimator {
	if opts.BaseSpeed <= 0 {
		opts.BaseSpeed = constants.DefaultBaseZoomSpeed
	}
	if opts.MaxAcceleration < 1 {
		opts.MaxAcceleration = constants.DefaultMaxZoomAcceleration
	}
	if opts.Scheduler == nil {
		opts.Scheduler = &TimerScheduler{Interval: constants.DefaultFrameInterval}
	}
	return &ZoomAnimator{
		camera: camera,
		opts:   opts,
		now:    time.Now,
		log:    internal.GetLogger(),
	}
}

// SetClock overrides the wall clock. Used by tests.
func (a *ZoomAnimator) SetClock(now func() time.Time) {
	if now == nil {
		return
	}
	a.mu.Lock()
	a.now = now
	a.mu.Unlock()
}

// Start begins a session in the given direction. Returns false without side
// effects if a session is already live.
func (a *ZoomAnimator) Start(zoomIn bool) bool {
	if !a.active.CompareAndSwap(false, true) {
		return false
	}

	a.mu.Lock()
	if zoomIn {
		a.direction = ZoomIn
	} else {
		a.direction = ZoomOut
	}
	direction := a.direction
	a.started = a.now()
	a.cancel = a.opts.Scheduler.Schedule(a.tick)
	a.mu.Unlock()

	if a.opts.OnStart != nil {
		a.opts.OnStart()
	}
	a.log.Debug("Zoom session started", "direction", direction.String())
	return true
}

// Stop ends the session: cancels the pending tick, clears the direction, and
// notifies OnEnd exactly once per Start/Stop pair. Idempotent.
func (a *ZoomAnimator) Stop() {
	if !a.active.CompareAndSwap(true, false) {
		return
	}

	a.mu.Lock()
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.direction = ZoomNone
	a.mu.Unlock()

	if a.opts.OnEnd != nil {
		a.opts.OnEnd()
	}
	a.log.Debug("Zoom session stopped")
}

// Active reports whether a session is live.
func (a *ZoomAnimator) Active() bool {
	return a.active.Load()
}

// Direction returns the live session's direction, or ZoomNone.
func (a *ZoomAnimator) Direction() ZoomDirection {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.active.Load() {
		return ZoomNone
	}
	return a.direction
}

func (a *ZoomAnimator) tick(now time.Time) {
	a.mu.Lock()
	if !a.active.Load() {
		a.mu.Unlock()
		return
	}
	zoomIn := a.direction == ZoomIn
	speed := a.opts.BaseSpeed * accelerationFactor(now.Sub(a.started), a.opts.MaxAcceleration)
	a.cancel = a.opts.Scheduler.Schedule(a.tick)
	a.mu.Unlock()

	a.camera.ZoomStep(zoomIn, speed)
}

// accelerationFactor ramps linearly from 1x to maxAccel over the first
// second, then holds flat.
func accelerationFactor(elapsed time.Duration, maxAccel float64) float64 {
	factor := 1 + elapsed.Seconds()*(maxAccel-1)
	if factor > maxAccel {
		return maxAccel
	}
	if factor < 1 {
		return 1
	}
	return factor
}
