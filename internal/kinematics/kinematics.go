// Package kinematics maps (scenario, parameters, elapsed time) to physical
// state with closed-form expressions. Everything here is a pure function;
// play/pause bookkeeping lives with the caller and is threaded in as t.
package kinematics

import (
	"math"

	"github.com/Abhiabhilash8/PhysiLab/internal/scenario"
)

// FieldLines is the number of radial arcs drawn around the magnet poles.
const FieldLines = 12

// MagneticBaseRadius is the rest radius of the field-line arcs, in the
// renderer's logical units.
const MagneticBaseRadius = 80.0

// State is the instantaneous physical state of a scenario. Fields not
// meaningful for a given kind are zero; Radii is non-nil only for Magnetic.
type State struct {
	X, Y   float64 // position (m); Y grows upward
	VX, VY float64 // velocity components (m/s)
	Swing  float64 // pendulum angular displacement (rad)
	Radii  []float64
}

// At evaluates the closed-form state of kind k at elapsed time t. It always
// returns numeric state, even when the position is far off any canvas;
// suppressing out-of-bounds drawing is the renderer's job.
func At(k scenario.Kind, p scenario.Parameters, t float64) State {
	switch k {
	case scenario.Projectile:
		vx, vy := Components(p)
		return State{
			X:  vx * t,
			Y:  vy*t - 0.5*p.Gravity*t*t,
			VX: vx,
			VY: vy - p.Gravity*t,
		}
	case scenario.Vertical:
		return State{
			Y:  p.Velocity*t - 0.5*p.Gravity*t*t,
			VY: p.Velocity - p.Gravity*t,
		}
	case scenario.Pendulum:
		// Decorative small-angle oscillation, not driven by length or g.
		return State{Swing: 0.5 * math.Sin(2*t)}
	case scenario.Optics:
		// Static diagram.
		return State{}
	case scenario.Magnetic:
		radii := make([]float64, FieldLines)
		for i := range radii {
			radii[i] = MagneticBaseRadius + 10*math.Sin(t+float64(i))
		}
		return State{Radii: radii}
	}
	return State{}
}

// Components resolves the launch velocity into horizontal and vertical
// parts, converting the angle from degrees.
func Components(p scenario.Parameters) (vx, vy float64) {
	rad := p.Angle * math.Pi / 180
	return p.Velocity * math.Cos(rad), p.Velocity * math.Sin(rad)
}

// Derived holds the closed-form summary quantities shown in explanations
// and used to scale trajectory rendering.
type Derived struct {
	VX, VY     float64
	MaxHeight  float64
	FlightTime float64
	Range      float64
	TimeToPeak float64
}

// Derive computes the summary quantities for kind k. Only Projectile and
// Vertical yield numbers; the remaining kinds are qualitative.
func Derive(k scenario.Kind, p scenario.Parameters) Derived {
	switch k {
	case scenario.Projectile:
		vx, vy := Components(p)
		rad := p.Angle * math.Pi / 180
		return Derived{
			VX:         vx,
			VY:         vy,
			MaxHeight:  vy * vy / (2 * p.Gravity),
			FlightTime: 2 * vy / p.Gravity,
			Range:      p.Velocity * p.Velocity * math.Sin(2*rad) / p.Gravity,
			TimeToPeak: vy / p.Gravity,
		}
	case scenario.Vertical:
		return Derived{
			VY:         p.Velocity,
			MaxHeight:  p.Velocity * p.Velocity / (2 * p.Gravity),
			TimeToPeak: p.Velocity / p.Gravity,
			FlightTime: 2 * p.Velocity / p.Gravity,
		}
	}
	return Derived{}
}
