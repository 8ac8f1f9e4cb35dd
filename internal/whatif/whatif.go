// Package whatif interprets free-text "what if" commands as parameter
// mutations. Commands are matched against an ordered rule list; the first
// matching rule fires and the rest are skipped, even when they would also
// match. Rules are deliberately non-compositional. A command matching no
// rule changes nothing and reports nothing: the channel is frictionless.
package whatif

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Abhiabhilash8/PhysiLab/internal/scenario"
)

// MoonGravity is the surface gravity applied by the moon rule, in m/s².
const MoonGravity = 1.6

var intRe = regexp.MustCompile(`\d+`)

// Apply runs the command against the rule list and mutates p in place.
// It reports whether any rule fired.
func Apply(command string, p *scenario.Parameters) bool {
	c := strings.ToLower(command)
	switch {
	case strings.Contains(c, "double") && strings.Contains(c, "velocity"):
		p.Velocity *= 2
	case strings.Contains(c, "moon"), strings.Contains(c, "1.6"):
		p.Gravity = MoonGravity
	case strings.Contains(c, "angle"):
		p.Angle = firstInt(c, scenario.DefaultAngle)
	default:
		return false
	}
	return true
}

// firstInt returns the first integer literal in the text, or fallback when
// none is present.
func firstInt(text string, fallback float64) float64 {
	m := intRe.FindString(text)
	if m == "" {
		return fallback
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return fallback
	}
	return float64(n)
}
