package tenfoot

// Direction is a compass direction the camera rotates toward.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// CameraActuator is the engine's only outlet to the rendering side. Rotation
// is a held action: BeginRotate on key-down, EndRotate for the same direction
// on key-up. Zoom is delivered as discrete steps, one per animation tick,
// with the speed already accelerated.
//
// Implementations must not call back into the engine.
type CameraActuator interface {
	BeginRotate(d Direction)
	EndRotate(d Direction)
	ZoomStep(zoomIn bool, speed float64)
}
