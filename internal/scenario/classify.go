package scenario

import "strings"

// Classify maps free problem text onto a Kind with a case-insensitive
// keyword cascade. First match wins, so text touching several categories
// resolves to the earliest branch; anything unrecognized is Vertical.
func Classify(text string) Kind {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "projectile"),
		strings.Contains(t, "thrown"),
		strings.Contains(t, "angle") && strings.Contains(t, "horizontal"):
		return Projectile
	case strings.Contains(t, "pendulum"), strings.Contains(t, "swing"):
		return Pendulum
	case containsAny(t, "lens", "mirror", "refract", "reflect"):
		return Optics
	case containsAny(t, "magnet", "field", "magnetic"):
		return Magnetic
	default:
		return Vertical
	}
}

func containsAny(t string, keys ...string) bool {
	for _, k := range keys {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}
