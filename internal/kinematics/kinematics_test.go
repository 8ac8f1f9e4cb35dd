package kinematics

import (
	"math"
	"testing"

	"github.com/Abhiabhilash8/PhysiLab/internal/scenario"
)

func approx(t *testing.T, got, want, tol float64, what string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (±%v)", what, got, want, tol)
	}
}

func TestProjectileDerived(t *testing.T) {
	p := scenario.Parameters{Velocity: 30, Angle: 45, Gravity: 9.8}
	d := Derive(scenario.Projectile, p)

	approx(t, d.MaxHeight, 22.96, 0.01, "max height")
	approx(t, d.Range, 91.84, 0.01, "range")
	approx(t, d.FlightTime, 4.33, 0.01, "flight time")
}

func TestProjectilePeakMatchesTrajectory(t *testing.T) {
	// The derived peak is the actual maximum of y(t); the renderer scales
	// the canvas by it, so the two must agree exactly.
	p := scenario.Parameters{Velocity: 30, Angle: 45, Gravity: 9.8}
	d := Derive(scenario.Projectile, p)

	st := At(scenario.Projectile, p, d.TimeToPeak)
	approx(t, st.Y, d.MaxHeight, 1e-9, "y at time to peak")
	approx(t, st.VY, 0, 1e-9, "vy at time to peak")
}

func TestVerticalDerived(t *testing.T) {
	p := scenario.Parameters{Velocity: 25, Gravity: 9.8}
	d := Derive(scenario.Vertical, p)

	approx(t, d.MaxHeight, 31.89, 0.01, "max height")
	approx(t, d.TimeToPeak, 2.55, 0.01, "time to peak")
}

func TestProjectileStateAtTime(t *testing.T) {
	p := scenario.Parameters{Velocity: 30, Angle: 45, Gravity: 9.8}
	vx, vy := Components(p)

	st := At(scenario.Projectile, p, 0)
	approx(t, st.X, 0, 1e-9, "x at t=0")
	approx(t, st.Y, 0, 1e-9, "y at t=0")
	approx(t, st.VX, vx, 1e-9, "vx at t=0")
	approx(t, st.VY, vy, 1e-9, "vy at t=0")

	st = At(scenario.Projectile, p, 2)
	approx(t, st.X, vx*2, 1e-9, "x at t=2")
	approx(t, st.Y, vy*2-0.5*9.8*4, 1e-9, "y at t=2")
	approx(t, st.VX, vx, 1e-9, "vx stays constant")
	approx(t, st.VY, vy-9.8*2, 1e-9, "vy at t=2")
}

func TestVerticalVelocityZeroAtPeak(t *testing.T) {
	p := scenario.Parameters{Velocity: 25, Gravity: 9.8}
	d := Derive(scenario.Vertical, p)

	st := At(scenario.Vertical, p, d.TimeToPeak)
	approx(t, st.VY, 0, 1e-9, "vy at peak")
	approx(t, st.Y, d.MaxHeight, 1e-9, "y at peak")
}

func TestStateBeyondFlightIsStillNumeric(t *testing.T) {
	// The engine keeps returning state after landing; clipping is the
	// renderer's job.
	p := scenario.Parameters{Velocity: 10, Angle: 45, Gravity: 9.8}
	st := At(scenario.Projectile, p, 100)
	if math.IsNaN(st.Y) || math.IsInf(st.Y, 0) {
		t.Fatalf("y at t=100 is not finite: %v", st.Y)
	}
	if st.Y >= 0 {
		t.Errorf("expected y below ground at t=100, got %v", st.Y)
	}
}

func TestPendulumDecorativeSwing(t *testing.T) {
	// The swing is a fixed oscillation, independent of the parameters.
	a := scenario.Parameters{Velocity: 20, Angle: 45, Gravity: 9.8}
	b := scenario.Parameters{Velocity: 90, Angle: 10, Gravity: 1.6}
	for _, tt := range []float64{0, 0.5, 1.3, 7.7} {
		sa := At(scenario.Pendulum, a, tt).Swing
		sb := At(scenario.Pendulum, b, tt).Swing
		approx(t, sa, 0.5*math.Sin(2*tt), 1e-12, "swing")
		approx(t, sa, sb, 1e-12, "swing is parameter independent")
	}
}

func TestOpticsStatic(t *testing.T) {
	p := scenario.DefaultParameters()
	a := At(scenario.Optics, p, 0)
	b := At(scenario.Optics, p, 5)
	if a.X != b.X || a.Y != b.Y || a.Swing != b.Swing {
		t.Error("optics state should be time independent")
	}
	if a.Radii != nil {
		t.Error("optics state should carry no field lines")
	}
}

func TestMagneticFieldLines(t *testing.T) {
	p := scenario.DefaultParameters()
	st := At(scenario.Magnetic, p, 1.5)
	if len(st.Radii) != FieldLines {
		t.Fatalf("expected %d field lines, got %d", FieldLines, len(st.Radii))
	}
	for i, r := range st.Radii {
		want := MagneticBaseRadius + 10*math.Sin(1.5+float64(i))
		approx(t, r, want, 1e-12, "radius")
	}
}
