// Package explain builds the step-by-step narrative shown next to a
// simulation. An Explanation is generated once, when the problem is
// submitted, and documents the problem as originally parsed; it is not
// regenerated when sliders or what-if commands change the parameters.
package explain

import (
	"fmt"

	"github.com/Abhiabhilash8/PhysiLab/internal/kinematics"
	"github.com/Abhiabhilash8/PhysiLab/internal/scenario"
)

// Explanation is a frozen narrative: a title, ordered solution steps, and
// the canonical equation for the scenario.
type Explanation struct {
	Title    string
	Steps    []string
	Equation string
}

// Generate produces the narrative for kind k with the parameters as they
// were at parse time.
func Generate(k scenario.Kind, p scenario.Parameters) Explanation {
	switch k {
	case scenario.Projectile:
		return projectile(p)
	case scenario.Vertical:
		return vertical(p)
	case scenario.Pendulum:
		return Explanation{
			Title: "Pendulum Motion",
			Steps: []string{
				"The bob is displaced from equilibrium and released.",
				"Gravity provides a restoring force toward the lowest point.",
				"For small amplitudes the motion is simple harmonic.",
				"The period depends on length and gravity, not on mass.",
			},
			Equation: "T = 2π√(L/g)",
		}
	case scenario.Optics:
		return Explanation{
			Title: "Refraction Through a Lens",
			Steps: []string{
				"Light rays travel from the object toward the lens.",
				"Each ray bends at the surface as it changes medium.",
				"A converging lens bends parallel rays toward the focal point.",
				"The refracted rays meet to form the image.",
			},
			Equation: "n₁sinθ₁ = n₂sinθ₂",
		}
	case scenario.Magnetic:
		return Explanation{
			Title: "Magnetic Field",
			Steps: []string{
				"Field lines run from the north pole to the south pole.",
				"The field is strongest where the lines crowd together.",
				"A moving charge in the field feels a deflecting force.",
				"The force is perpendicular to both velocity and field.",
			},
			Equation: "F = qvB·sinθ",
		}
	}
	return Explanation{Title: "Motion", Equation: "y = v·t − ½g·t²"}
}

func projectile(p scenario.Parameters) Explanation {
	d := kinematics.Derive(scenario.Projectile, p)
	return Explanation{
		Title: "Projectile Motion",
		Steps: []string{
			fmt.Sprintf("Launch: v = %.1f m/s at %.1f° above the horizontal.", p.Velocity, p.Angle),
			fmt.Sprintf("Resolve components: vx = v·cosθ = %.2f m/s, vy = v·sinθ = %.2f m/s.", d.VX, d.VY),
			fmt.Sprintf("Maximum height: vy²/(2g) = %.2f m.", d.MaxHeight),
			fmt.Sprintf("Time of flight: 2·vy/g = %.2f s.", d.FlightTime),
			fmt.Sprintf("Horizontal range: v²·sin(2θ)/g = %.2f m.", d.Range),
		},
		Equation: "R = v²·sin(2θ)/g",
	}
}

func vertical(p scenario.Parameters) Explanation {
	d := kinematics.Derive(scenario.Vertical, p)
	return Explanation{
		Title: "Vertical Motion",
		Steps: []string{
			fmt.Sprintf("The object leaves the ground at v = %.1f m/s straight up.", p.Velocity),
			fmt.Sprintf("Gravity decelerates it at g = %.1f m/s².", p.Gravity),
			fmt.Sprintf("Maximum height: v²/(2g) = %.2f m.", d.MaxHeight),
			fmt.Sprintf("Time to the peak: v/g = %.2f s.", d.TimeToPeak),
		},
		Equation: "h = v·t − ½g·t²",
	}
}
