package internal

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/holoplot/go-evdev"
	"github.com/orbitview/tenfoot/pkg/tenfoot/constants"
	"github.com/veandco/go-sdl2/sdl"
)

const MappingPathEnvVar = "TENFOOT_INPUT_MAPPING"

var inputMappingBytes []byte

// SetInputMappingBytes installs an embedded mapping that takes precedence
// over the MappingPathEnvVar file.
func SetInputMappingBytes(data []byte) {
	inputMappingBytes = data
}

type Source int

const (
	SourceKeyboard Source = iota
	SourceController
	SourceJoystick
	SourceHatSwitch
	SourceRemote
)

// Event is a single virtual-button transition, already resolved from
// whatever physical device produced it.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Source  Source
	RawCode int
}

type JoystickAxisMapping struct {
	PositiveButton constants.VirtualButton
	NegativeButton constants.VirtualButton
	Threshold      int16
}

type InputMapping struct {
	KeyboardMap map[sdl.Keycode]constants.VirtualButton

	ControllerButtonMap map[sdl.GameControllerButton]constants.VirtualButton

	JoystickAxisMap map[uint8]JoystickAxisMapping

	JoystickButtonMap map[uint8]constants.VirtualButton

	JoystickHatMap map[uint8]constants.VirtualButton

	// RemoteKeyMap translates evdev key codes from an IR/CEC remote device.
	RemoteKeyMap map[evdev.EvCode]constants.VirtualButton
}

// Mapping is the JSON-serializable form of InputMapping. Keys are raw device
// codes, values are VirtualButton iota values.
type Mapping struct {
	KeyboardMap map[int]int `json:"keyboard_map"`

	ControllerButtonMap map[int]int `json:"controller_button_map"`

	JoystickAxisMap map[int]struct {
		PositiveButton int   `json:"positive_button"`
		NegativeButton int   `json:"negative_button"`
		Threshold      int16 `json:"threshold"`
	} `json:"joystick_axis_map"`

	JoystickButtonMap map[int]int `json:"joystick_button_map"`

	JoystickHatMap map[int]int `json:"joystick_hat_map"`

	RemoteKeyMap map[int]int `json:"remote_key_map"`
}

func DefaultInputMapping() *InputMapping {
	return &InputMapping{
		KeyboardMap: map[sdl.Keycode]constants.VirtualButton{
			sdl.K_UP:        constants.VirtualButtonUp,
			sdl.K_DOWN:      constants.VirtualButtonDown,
			sdl.K_LEFT:      constants.VirtualButtonLeft,
			sdl.K_RIGHT:     constants.VirtualButtonRight,
			sdl.K_RETURN:    constants.VirtualButtonOK,
			sdl.K_SPACE:     constants.VirtualButtonOK,
			sdl.K_ESCAPE:    constants.VirtualButtonBack,
			sdl.K_BACKSPACE: constants.VirtualButtonBack,
			sdl.K_TAB:       constants.VirtualButtonSelect,
			sdl.K_m:         constants.VirtualButtonMenu,
		},
		ControllerButtonMap: map[sdl.GameControllerButton]constants.VirtualButton{
			sdl.CONTROLLER_BUTTON_DPAD_UP:    constants.VirtualButtonUp,
			sdl.CONTROLLER_BUTTON_DPAD_DOWN:  constants.VirtualButtonDown,
			sdl.CONTROLLER_BUTTON_DPAD_LEFT:  constants.VirtualButtonLeft,
			sdl.CONTROLLER_BUTTON_DPAD_RIGHT: constants.VirtualButtonRight,
			sdl.CONTROLLER_BUTTON_A:          constants.VirtualButtonOK,
			sdl.CONTROLLER_BUTTON_B:          constants.VirtualButtonBack,
			sdl.CONTROLLER_BUTTON_BACK:       constants.VirtualButtonSelect,
			sdl.CONTROLLER_BUTTON_START:      constants.VirtualButtonMenu,
		},
		RemoteKeyMap: map[evdev.EvCode]constants.VirtualButton{
			evdev.KEY_UP:     constants.VirtualButtonUp,
			evdev.KEY_DOWN:   constants.VirtualButtonDown,
			evdev.KEY_LEFT:   constants.VirtualButtonLeft,
			evdev.KEY_RIGHT:  constants.VirtualButtonRight,
			evdev.KEY_OK:     constants.VirtualButtonOK,
			evdev.KEY_ENTER:  constants.VirtualButtonOK,
			evdev.KEY_BACK:   constants.VirtualButtonBack,
			evdev.KEY_ESC:    constants.VirtualButtonBack,
			evdev.KEY_SELECT: constants.VirtualButtonSelect,
			evdev.KEY_MENU:   constants.VirtualButtonMenu,
		},
	}
}

// GetInputMapping returns the mapping from embedded bytes if set, from the
// environment variable if set, otherwise the default mapping.
func GetInputMapping() *InputMapping {
	logger := GetInternalLogger()

	if len(inputMappingBytes) > 0 {
		mapping, err := LoadInputMappingFromBytes(inputMappingBytes)
		if err == nil {
			logger.Info("Loaded custom input mapping from embedded bytes")
			return mapping
		}
		logger.Warn("Failed to load custom input mapping from bytes, trying file path", "error", err)
	}

	mappingPath := os.Getenv(MappingPathEnvVar)
	if mappingPath != "" {
		mapping, err := LoadInputMappingFromJSON(mappingPath)
		if err == nil {
			logger.Info("Loaded custom input mapping from environment variable", "path", mappingPath)
			return mapping
		}
		logger.Warn("Failed to load custom input mapping, using default", "path", mappingPath, "error", err)
	}
	return DefaultInputMapping()
}

func LoadInputMappingFromJSON(filePath string) (*InputMapping, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file: %w", err)
	}
	return LoadInputMappingFromBytes(data)
}

func LoadInputMappingFromBytes(data []byte) (*InputMapping, error) {
	var serializableMapping Mapping
	err := json.Unmarshal(data, &serializableMapping)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	mapping := &InputMapping{
		KeyboardMap:         make(map[sdl.Keycode]constants.VirtualButton),
		ControllerButtonMap: make(map[sdl.GameControllerButton]constants.VirtualButton),
		JoystickAxisMap:     make(map[uint8]JoystickAxisMapping),
		JoystickButtonMap:   make(map[uint8]constants.VirtualButton),
		JoystickHatMap:      make(map[uint8]constants.VirtualButton),
		RemoteKeyMap:        make(map[evdev.EvCode]constants.VirtualButton),
	}

	for keyCode, button := range serializableMapping.KeyboardMap {
		mapping.KeyboardMap[sdl.Keycode(keyCode)] = constants.VirtualButton(button)
	}

	for button, vb := range serializableMapping.ControllerButtonMap {
		mapping.ControllerButtonMap[sdl.GameControllerButton(button)] = constants.VirtualButton(vb)
	}

	for axis, axisMapping := range serializableMapping.JoystickAxisMap {
		mapping.JoystickAxisMap[uint8(axis)] = JoystickAxisMapping{
			PositiveButton: constants.VirtualButton(axisMapping.PositiveButton),
			NegativeButton: constants.VirtualButton(axisMapping.NegativeButton),
			Threshold:      axisMapping.Threshold,
		}
	}

	for button, vb := range serializableMapping.JoystickButtonMap {
		mapping.JoystickButtonMap[uint8(button)] = constants.VirtualButton(vb)
	}

	for hat, button := range serializableMapping.JoystickHatMap {
		mapping.JoystickHatMap[uint8(hat)] = constants.VirtualButton(button)
	}

	for code, button := range serializableMapping.RemoteKeyMap {
		mapping.RemoteKeyMap[evdev.EvCode(code)] = constants.VirtualButton(button)
	}

	return mapping, nil
}

// ToJSON converts the InputMapping to JSON bytes in the export format.
func (im *InputMapping) ToJSON() ([]byte, error) {
	serializableMapping := &Mapping{
		KeyboardMap:         make(map[int]int),
		ControllerButtonMap: make(map[int]int),
		JoystickAxisMap: make(map[int]struct {
			PositiveButton int   `json:"positive_button"`
			NegativeButton int   `json:"negative_button"`
			Threshold      int16 `json:"threshold"`
		}),
		JoystickButtonMap: make(map[int]int),
		JoystickHatMap:    make(map[int]int),
		RemoteKeyMap:      make(map[int]int),
	}

	for keyCode, button := range im.KeyboardMap {
		serializableMapping.KeyboardMap[int(keyCode)] = int(button)
	}

	for button, vb := range im.ControllerButtonMap {
		serializableMapping.ControllerButtonMap[int(button)] = int(vb)
	}

	for axis, axisMapping := range im.JoystickAxisMap {
		serializableMapping.JoystickAxisMap[int(axis)] = struct {
			PositiveButton int   `json:"positive_button"`
			NegativeButton int   `json:"negative_button"`
			Threshold      int16 `json:"threshold"`
		}{
			PositiveButton: int(axisMapping.PositiveButton),
			NegativeButton: int(axisMapping.NegativeButton),
			Threshold:      axisMapping.Threshold,
		}
	}

	for button, vb := range im.JoystickButtonMap {
		serializableMapping.JoystickButtonMap[int(button)] = int(vb)
	}

	for hat, button := range im.JoystickHatMap {
		serializableMapping.JoystickHatMap[int(hat)] = int(button)
	}

	for code, vb := range im.RemoteKeyMap {
		serializableMapping.RemoteKeyMap[int(code)] = int(vb)
	}

	return json.MarshalIndent(serializableMapping, "", "  ")
}

func (im *InputMapping) SaveToJSON(filePath string) error {
	data, err := im.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal mapping to JSON: %w", err)
	}

	err = os.WriteFile(filePath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	return nil
}
