package tenfoot

import (
	"context"
	"time"

	"github.com/orbitview/tenfoot/pkg/tenfoot/constants"
	"github.com/orbitview/tenfoot/pkg/tenfoot/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// RunOptions configures the turnkey SDL event pump for hosts that don't own
// an event loop. Hosts with their own loop skip Run and call
// HandleButtonEvent plus StepFrame directly.
type RunOptions struct {
	// RemoteDevice is an evdev path for the physical remote. Empty means
	// SDL input only; "auto" scans for a remote-looking device.
	RemoteDevice string

	// MappingBytes overrides the input mapping (same JSON format the
	// TENFOOT_INPUT_MAPPING file uses).
	MappingBytes []byte
}

// Run pumps SDL (and optionally evdev remote) events into the engine until
// the context is cancelled or SDL quits. The engine is enabled on entry and
// disabled on every exit path.
func (e *Engine) Run(ctx context.Context, runOpts RunOptions) error {
	if len(runOpts.MappingBytes) > 0 {
		internal.SetInputMappingBytes(runOpts.MappingBytes)
	}
	mapping := internal.GetInputMapping()
	processor := internal.NewProcessor(mapping)

	closeControllers := internal.OpenControllers()
	defer closeControllers()

	var remoteEvents <-chan *internal.Event
	if runOpts.RemoteDevice != "" {
		path := runOpts.RemoteDevice
		if path == "auto" {
			found, err := internal.FindRemoteDevice()
			if err != nil {
				e.log.Warn("No remote device found, continuing with SDL input only", "error", err)
			} else {
				path = found
			}
		}
		if path != "" && path != "auto" {
			remote, err := internal.OpenRemote(path, mapping)
			if err != nil {
				e.log.Warn("Failed to open remote device, continuing with SDL input only",
					"path", path, "error", err)
			} else {
				defer remote.Close()
				remoteEvents = remote.Events()
			}
		}
	}

	e.Enable()
	defer e.Disable()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent,
				*sdl.JoyButtonEvent, *sdl.JoyAxisEvent, *sdl.JoyHatEvent:
				e.feed(processor.ProcessSDLEvent(event))
				for evt := processor.PendingEvent(); evt != nil; evt = processor.PendingEvent() {
					e.feed(evt)
				}
			}
		}

		for drained := false; !drained; {
			select {
			case evt, ok := <-remoteEvents:
				if !ok {
					remoteEvents = nil
					drained = true
					break
				}
				e.feed(evt)
			default:
				drained = true
			}
		}

		e.StepFrame(time.Now())
		sdl.Delay(constants.FrameDelayMS)
	}
}

func (e *Engine) feed(evt *internal.Event) {
	if evt == nil || evt.Button == constants.VirtualButtonUnassigned {
		return
	}
	e.HandleButtonEvent(evt.Button, evt.Pressed)
}
