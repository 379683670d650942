package internal

import (
	"fmt"
	"strings"

	"github.com/holoplot/go-evdev"
)

// RemoteSource reads key events from a Linux evdev device (IR receiver or
// HDMI-CEC adapter) and resolves them through the remote key map. On TV-class
// hardware this is how the actual remote control arrives; the SDL keyboard
// path covers desktop development.
type RemoteSource struct {
	dev     *evdev.InputDevice
	mapping *InputMapping
	events  chan *Event
	done    chan struct{}
}

// OpenRemote opens the evdev device at path and starts the read loop.
func OpenRemote(path string, mapping *InputMapping) (*RemoteSource, error) {
	if mapping == nil {
		mapping = GetInputMapping()
	}

	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open remote device %s: %w", path, err)
	}

	if name, err := dev.Name(); err == nil {
		GetInternalLogger().Debug("Opened remote input device", "path", path, "name", name)
	}

	r := &RemoteSource{
		dev:     dev,
		mapping: mapping,
		events:  make(chan *Event, 16),
		done:    make(chan struct{}),
	}
	go r.run()
	return r, nil
}

// FindRemoteDevice scans input devices for something that looks like a
// remote control. Returns the first match in enumeration order.
func FindRemoteDevice() (string, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return "", fmt.Errorf("failed to list input devices: %w", err)
	}

	for _, p := range paths {
		name := strings.ToLower(p.Name)
		if strings.Contains(name, "remote") || strings.Contains(name, "cec") || strings.Contains(name, "ir ") {
			return p.Path, nil
		}
	}
	return "", fmt.Errorf("no remote control input device found")
}

// Events returns the stream of resolved virtual-button events. The channel
// is closed when the source is closed or the device goes away.
func (r *RemoteSource) Events() <-chan *Event {
	return r.events
}

func (r *RemoteSource) run() {
	logger := GetInternalLogger()
	defer close(r.events)

	for {
		select {
		case <-r.done:
			return
		default:
		}

		ev, err := r.dev.ReadOne()
		if err != nil {
			logger.Debug("Remote device read ended", "error", err)
			return
		}

		if ev.Type != evdev.EV_KEY {
			continue
		}

		button, exists := r.mapping.RemoteKeyMap[ev.Code]
		if !exists {
			logger.Debug("Remote key not mapped", "code", ev.Code)
			continue
		}

		// Value 0 is release, 1 is press, 2 is the device's own key repeat.
		// Repeats are forwarded as presses; the engine's session guards make
		// them no-ops where repetition is unwanted.
		out := &Event{
			Button:  button,
			Pressed: ev.Value != 0,
			Source:  SourceRemote,
			RawCode: int(ev.Code),
		}

		select {
		case r.events <- out:
		case <-r.done:
			return
		}
	}
}

func (r *RemoteSource) Close() error {
	select {
	case <-r.done:
		return nil
	default:
		close(r.done)
	}
	return r.dev.Close()
}
