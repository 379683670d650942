package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// Processor translates raw SDL events into virtual-button Events. Hats and
// axes are stateful: moving from one direction to another synthesizes the
// release of the old direction before the press of the new one, so the
// engine downstream only ever sees clean press/release pairs.
type Processor struct {
	mapping    *InputMapping
	axisStates map[uint8]int8  // -1 (negative), 0 (centered), 1 (positive)
	hatStates  map[uint8]uint8 // current hat position
	eventQueue []*Event        // synthesized events waiting to be drained
}

func NewProcessor(mapping *InputMapping) *Processor {
	if mapping == nil {
		mapping = GetInputMapping()
	}
	return &Processor{
		mapping:    mapping,
		axisStates: make(map[uint8]int8),
		hatStates:  make(map[uint8]uint8),
	}
}

// OpenControllers opens every attached game controller and raw joystick so
// SDL delivers their events. Returns a close function for all of them.
func OpenControllers() func() {
	logger := GetInternalLogger()

	var gameControllers []*sdl.GameController
	var rawJoysticks []*sdl.Joystick

	numJoysticks := sdl.NumJoysticks()
	logger.Debug("Detecting controllers", "joystick_count", numJoysticks)

	for i := 0; i < numJoysticks; i++ {
		if sdl.IsGameController(i) {
			controller := sdl.GameControllerOpen(i)
			if controller != nil {
				logger.Debug("Opened game controller", "index", i, "name", controller.Name())
				gameControllers = append(gameControllers, controller)
			} else {
				logger.Error("Failed to open game controller", "index", i)
			}
		} else {
			joystick := sdl.JoystickOpen(i)
			if joystick != nil {
				logger.Debug("Opened raw joystick", "index", i, "name", joystick.Name())
				rawJoysticks = append(rawJoysticks, joystick)
			}
		}
	}

	return func() {
		for _, controller := range gameControllers {
			if controller != nil {
				controller.Close()
			}
		}
		for _, joystick := range rawJoysticks {
			if joystick != nil {
				joystick.Close()
			}
		}
	}
}

// PendingEvent pops the next synthesized event, if any. Callers drain these
// after each ProcessSDLEvent so a hat or axis direction change delivers its
// release/press pair back to back.
func (p *Processor) PendingEvent() *Event {
	if len(p.eventQueue) == 0 {
		return nil
	}
	evt := p.eventQueue[0]
	p.eventQueue = p.eventQueue[1:]
	return evt
}

func (p *Processor) ProcessSDLEvent(event sdl.Event) *Event {

	logger := GetInternalLogger()

	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		keyCode := e.Keysym.Sym
		if button, exists := p.mapping.KeyboardMap[keyCode]; exists {
			if e.Type == sdl.KEYDOWN {
				logger.Debug("Keyboard input mapped",
					"physical", sdl.GetKeyName(keyCode),
					"virtualButton", button.GetName())
			}
			return &Event{
				Button:  button,
				Pressed: e.Type == sdl.KEYDOWN,
				Source:  SourceKeyboard,
				RawCode: int(keyCode),
			}
		}
		logger.Debug("Keyboard input not mapped",
			"key_code", fmt.Sprintf("%s (%d)", sdl.GetKeyName(keyCode), keyCode))
	case *sdl.ControllerButtonEvent:
		if button, exists := p.mapping.ControllerButtonMap[sdl.GameControllerButton(e.Button)]; exists {
			return &Event{
				Button:  button,
				Pressed: e.Type == sdl.CONTROLLERBUTTONDOWN,
				Source:  SourceController,
				RawCode: int(e.Button),
			}
		}
		logger.Debug("Controller button not mapped", "button_code", e.Button)
	case *sdl.JoyHatEvent:
		return p.processHat(e)
	case *sdl.ControllerAxisEvent:
		return p.processAxis(e.Axis, e.Value, SourceController)
	case *sdl.JoyButtonEvent:
		if button, exists := p.mapping.JoystickButtonMap[e.Button]; exists {
			return &Event{
				Button:  button,
				Pressed: e.Type == sdl.JOYBUTTONDOWN,
				Source:  SourceJoystick,
				RawCode: int(e.Button),
			}
		}
		logger.Debug("Joy button not mapped", "button_code", e.Button)
	case *sdl.JoyAxisEvent:
		return p.processAxis(e.Axis, e.Value, SourceJoystick)
	}
	return nil
}

func (p *Processor) processHat(e *sdl.JoyHatEvent) *Event {
	logger := GetInternalLogger()

	previousValue := p.hatStates[e.Hat]
	p.hatStates[e.Hat] = e.Value

	// Direction-to-direction move: release the old direction now and queue
	// the press of the new one.
	if previousValue != sdl.HAT_CENTERED && previousValue != e.Value {
		if button, exists := p.mapping.JoystickHatMap[previousValue]; exists {
			if e.Value != sdl.HAT_CENTERED {
				if newButton, exists := p.mapping.JoystickHatMap[e.Value]; exists {
					p.eventQueue = append(p.eventQueue, &Event{
						Button:  newButton,
						Pressed: true,
						Source:  SourceHatSwitch,
						RawCode: int(e.Value),
					})
				}
			}
			return &Event{
				Button:  button,
				Pressed: false,
				Source:  SourceHatSwitch,
				RawCode: int(previousValue),
			}
		}
	}

	if e.Value != sdl.HAT_CENTERED {
		if button, exists := p.mapping.JoystickHatMap[e.Value]; exists {
			return &Event{
				Button:  button,
				Pressed: true,
				Source:  SourceHatSwitch,
				RawCode: int(e.Value),
			}
		}
		logger.Debug("Joy hat not mapped", "hat_value", e.Value)
	}

	if e.Value == sdl.HAT_CENTERED && previousValue != sdl.HAT_CENTERED {
		if button, exists := p.mapping.JoystickHatMap[previousValue]; exists {
			return &Event{
				Button:  button,
				Pressed: false,
				Source:  SourceHatSwitch,
				RawCode: int(previousValue),
			}
		}
	}

	return nil
}

func (p *Processor) processAxis(axis uint8, value int16, source Source) *Event {
	axisConfig, exists := p.mapping.JoystickAxisMap[axis]
	if !exists {
		return nil
	}

	previousState := p.axisStates[axis]
	var newState int8 = 0
	if value > axisConfig.Threshold {
		newState = 1
	} else if value < -axisConfig.Threshold {
		newState = -1
	}

	if newState == previousState {
		return nil
	}
	p.axisStates[axis] = newState

	// Crossing through center: the release of the previous direction wins;
	// a press of the new direction follows on the next poll.
	if previousState == 1 {
		if newState == -1 {
			p.eventQueue = append(p.eventQueue, &Event{
				Button:  axisConfig.NegativeButton,
				Pressed: true,
				Source:  source,
				RawCode: int(axis),
			})
		}
		return &Event{Button: axisConfig.PositiveButton, Pressed: false, Source: source, RawCode: int(axis)}
	}
	if previousState == -1 {
		if newState == 1 {
			p.eventQueue = append(p.eventQueue, &Event{
				Button:  axisConfig.PositiveButton,
				Pressed: true,
				Source:  source,
				RawCode: int(axis),
			})
		}
		return &Event{Button: axisConfig.NegativeButton, Pressed: false, Source: source, RawCode: int(axis)}
	}

	if newState == 1 {
		return &Event{Button: axisConfig.PositiveButton, Pressed: true, Source: source, RawCode: int(axis)}
	}
	return &Event{Button: axisConfig.NegativeButton, Pressed: true, Source: source, RawCode: int(axis)}
}
