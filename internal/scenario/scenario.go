package scenario

import "fmt"

// Kind is the closed set of supported physics situations. Classification
// always lands on one of these; free text that matches nothing falls back
// to Vertical.
type Kind int

const (
	Projectile Kind = iota
	Vertical
	Pendulum
	Optics
	Magnetic
)

func (k Kind) String() string {
	switch k {
	case Projectile:
		return "projectile"
	case Vertical:
		return "vertical"
	case Pendulum:
		return "pendulum"
	case Optics:
		return "optics"
	case Magnetic:
		return "magnetic"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Kinds lists every scenario in classification order.
func Kinds() []Kind {
	return []Kind{Projectile, Vertical, Pendulum, Optics, Magnetic}
}

// Defaults applied when a pattern is absent from the problem text.
const (
	DefaultVelocity = 20.0
	DefaultAngle    = 45.0
	DefaultHeight   = 0.0
	EarthGravity    = 9.8
)

// Parameter bounds enforced by slider-style mutation.
const (
	MinVelocity = 1.0
	MaxVelocity = 100.0
	MinAngle    = 0.0
	MaxAngle    = 90.0
	MinHeight   = 0.0
	MaxHeight   = 100.0
	MinGravity  = 0.5
	MaxGravity  = 25.0
)

// Parameters is the mutable numeric tuple governing a scenario. Values are
// SI: m/s, degrees, m, m/s². Mutators must keep Velocity and Gravity
// positive and Angle within [0, 90].
type Parameters struct {
	Velocity float64
	Angle    float64
	Height   float64
	Gravity  float64
}

// DefaultParameters returns the fallback tuple used when the problem text
// carries no recognizable numbers.
func DefaultParameters() Parameters {
	return Parameters{
		Velocity: DefaultVelocity,
		Angle:    DefaultAngle,
		Height:   DefaultHeight,
		Gravity:  EarthGravity,
	}
}

// Valid reports whether the invariant required by the kinematics and
// rendering layers holds.
func (p Parameters) Valid() bool {
	return p.Velocity > 0 && p.Gravity > 0 && p.Angle >= MinAngle && p.Angle <= MaxAngle
}

// Set assigns a named parameter, clamping to its slider range. Unknown
// names are rejected.
func (p *Parameters) Set(name string, value float64) error {
	switch name {
	case "velocity":
		p.Velocity = clamp(value, MinVelocity, MaxVelocity)
	case "angle":
		p.Angle = clamp(value, MinAngle, MaxAngle)
	case "height":
		p.Height = clamp(value, MinHeight, MaxHeight)
	case "gravity":
		p.Gravity = clamp(value, MinGravity, MaxGravity)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownParameter, name)
	}
	return nil
}

// Get returns a named parameter value.
func (p Parameters) Get(name string) (float64, error) {
	switch name {
	case "velocity":
		return p.Velocity, nil
	case "angle":
		return p.Angle, nil
	case "height":
		return p.Height, nil
	case "gravity":
		return p.Gravity, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownParameter, name)
}

// Names lists the tunable parameters in display order.
func Names() []string {
	return []string{"velocity", "angle", "height", "gravity"}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
