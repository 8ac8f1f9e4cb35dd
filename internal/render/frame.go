package render

import (
	"math"

	"github.com/Abhiabhilash8/PhysiLab/internal/kinematics"
	"github.com/Abhiabhilash8/PhysiLab/internal/scenario"
)

// Frame layout constants, in logical units of the 800×400 simulation view.
const (
	groundY   = 390.0
	originX   = 20.0
	marginTop = 30.0
	centerX   = SimWidth / 2
	centerY   = SimHeight / 2
)

// Frame draws one simulation frame for kind k at elapsed time t. It is a
// pure function of its inputs: identical (k, p, t) yield identical cells.
// A nil surface no-ops, mirroring a drawing context that is not ready yet.
func Frame(s *Surface, k scenario.Kind, p scenario.Parameters, t float64) {
	if s == nil {
		return
	}
	s.Clear()
	switch k {
	case scenario.Projectile:
		drawProjectile(s, p, t)
	case scenario.Vertical:
		drawVertical(s, p, t)
	case scenario.Pendulum:
		drawPendulum(s, p, t)
	case scenario.Optics:
		drawOptics(s)
	case scenario.Magnetic:
		drawMagnetic(s, p, t)
	}
}

// drawProjectile redraws the full analytic trajectory for the current
// velocity and angle every frame, then the t-dependent marker and a
// velocity arrow.
func drawProjectile(s *Surface, p scenario.Parameters, t float64) {
	s.Line(0, groundY, SimWidth, groundY)

	d := kinematics.Derive(scenario.Projectile, p)
	sx := (SimWidth - 2*originX) / math.Max(d.Range, 1)
	sy := (groundY - marginTop) / math.Max(d.MaxHeight, 1)

	// Trajectory curve, independent of t.
	steps := 100
	px, py := originX, groundY
	for i := 1; i <= steps; i++ {
		tt := d.FlightTime * float64(i) / float64(steps)
		st := kinematics.At(scenario.Projectile, p, tt)
		nx := originX + st.X*sx
		ny := groundY - st.Y*sy
		s.Line(px, py, nx, ny)
		px, py = nx, ny
	}

	st := kinematics.At(scenario.Projectile, p, t)
	mx := originX + st.X*sx
	my := groundY - st.Y*sy
	s.FillCircle(mx, my, 6)
	drawVelocityArrow(s, mx, my, st.VX, st.VY)
}

// drawVertical shows single-axis motion: a vertical track, the marker at
// y(t), and a vertical velocity arrow.
func drawVertical(s *Surface, p scenario.Parameters, t float64) {
	s.Line(0, groundY, SimWidth, groundY)
	s.Line(centerX, marginTop, centerX, groundY)

	d := kinematics.Derive(scenario.Vertical, p)
	sy := (groundY - marginTop) / math.Max(d.MaxHeight, 1)

	st := kinematics.At(scenario.Vertical, p, t)
	my := groundY - st.Y*sy
	s.FillCircle(centerX, my, 6)
	drawVelocityArrow(s, centerX, my, 0, st.VY)
}

// drawPendulum hangs a rod from a fixed pivot; the bob angle is the
// decorative oscillation from the kinematics engine.
func drawPendulum(s *Surface, p scenario.Parameters, t float64) {
	const pivotY = 60.0
	const rodLen = 240.0

	s.Line(centerX-60, pivotY, centerX+60, pivotY)
	st := kinematics.At(scenario.Pendulum, p, t)
	bx := centerX + rodLen*math.Sin(st.Swing)
	by := pivotY + rodLen*math.Cos(st.Swing)
	s.Line(centerX, pivotY, bx, by)
	s.FillCircle(centerX, pivotY, 3)
	s.FillCircle(bx, by, 12)
}

// drawOptics renders the static lens diagram: optical axis, lens line, and
// three illustrative rays bent toward a convergence point. Decorative, not
// a physical ray-trace.
func drawOptics(s *Surface) {
	const (
		lensX  = 400.0
		focusX = 640.0
	)

	s.Line(40, centerY, SimWidth-40, centerY)
	s.Line(lensX, 80, lensX, SimHeight-80)
	// Arrow tips marking the lens ends.
	s.Line(lensX-8, 92, lensX, 80)
	s.Line(lensX+8, 92, lensX, 80)
	s.Line(lensX-8, SimHeight-92, lensX, SimHeight-80)
	s.Line(lensX+8, SimHeight-92, lensX, SimHeight-80)

	for _, ry := range []float64{120, centerY, 280} {
		s.Line(60, ry, lensX, ry)
		s.Line(lensX, ry, focusX, centerY)
	}
	s.FillCircle(focusX, centerY, 4)
}

// drawMagnetic renders two fixed pole blocks and twelve radial arcs whose
// radius breathes with time.
func drawMagnetic(s *Surface, p scenario.Parameters, t float64) {
	const (
		poleW = 70.0
		poleH = 60.0
		gap   = 90.0
	)

	s.FillRect(centerX-gap-poleW, centerY-poleH/2, poleW, poleH)
	s.FillRect(centerX+gap, centerY-poleH/2, poleW, poleH)
	s.Text(centerX-gap-poleW/2, centerY, "N")
	s.Text(centerX+gap+poleW/2, centerY, "S")

	st := kinematics.At(scenario.Magnetic, p, t)
	for i, r := range st.Radii {
		a := 2 * math.Pi * float64(i) / float64(len(st.Radii))
		// Arc sweep stands in for opacity: lines "fade" by shortening.
		amp := (r - kinematics.MagneticBaseRadius) / 10
		sweep := 0.22 + 0.1*amp
		s.Arc(centerX, centerY, r, a-sweep, a+sweep)
	}
}

// drawVelocityArrow draws a velocity vector from (x, y) with a triangular
// arrowhead. vy is in physics convention (positive up); the screen angle
// comes from atan2(−vy, vx).
func drawVelocityArrow(s *Surface, x, y, vx, vy float64) {
	speed := math.Hypot(vx, vy)
	if speed < 1e-9 {
		return
	}
	dir := math.Atan2(-vy, vx)
	length := 24 + speed*1.6
	tipX := x + length*math.Cos(dir)
	tipY := y + length*math.Sin(dir)
	s.Line(x, y, tipX, tipY)

	const headLen = 10.0
	for _, da := range []float64{2.6, -2.6} {
		s.Line(tipX, tipY, tipX+headLen*math.Cos(dir+da), tipY+headLen*math.Sin(dir+da))
	}
}
