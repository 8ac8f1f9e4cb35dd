package scenario

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Kind
	}{
		{"projectile keyword", "A projectile is fired across a field", Projectile},
		{"thrown keyword", "A ball is thrown from a cliff", Projectile},
		{"angle plus horizontal", "launched at an angle above the horizontal", Projectile},
		{"pendulum keyword", "A pendulum oscillates slowly", Pendulum},
		{"swing keyword", "The mass swings on a string", Pendulum},
		{"lens keyword", "Light passes through a convex lens", Optics},
		{"mirror keyword", "A ray hits the mirror", Optics},
		{"refract keyword", "The beam refracts at the boundary", Optics},
		{"magnet keyword", "A bar magnet on the table", Magnetic},
		{"field keyword", "The field lines curve around", Magnetic},
		{"default vertical", "A stone goes straight up at 25 m/s", Vertical},
		{"no keywords at all", "something happens", Vertical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyCascadeOrder(t *testing.T) {
	// First match wins: text touching several categories resolves to the
	// earliest branch.
	if got := Classify("a projectile hits a pendulum near a magnet"); got != Projectile {
		t.Errorf("expected Projectile, got %v", got)
	}
	if got := Classify("the pendulum swings past a mirror in a field"); got != Pendulum {
		t.Errorf("expected Pendulum, got %v", got)
	}
	if got := Classify("the lens sits inside a magnetic field"); got != Optics {
		t.Errorf("expected Optics, got %v", got)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	if got := Classify("A PROJECTILE IS LAUNCHED"); got != Projectile {
		t.Errorf("expected Projectile for upper-case text, got %v", got)
	}
	if got := Classify("The PENDULUM Swings"); got != Pendulum {
		t.Errorf("expected Pendulum for mixed-case text, got %v", got)
	}
}

func TestKindString(t *testing.T) {
	for _, k := range Kinds() {
		if k.String() == "" {
			t.Errorf("kind %d has empty name", int(k))
		}
	}
}
