package scenario

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	velocityRe  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*m/s`)
	degreeRe    = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*degree`)
	angleWordRe = regexp.MustCompile(`angle\D*?(\d+(?:\.\d+)?)`)
	heightRe    = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:meters?\b|m\b)`)
)

// Extract pulls the parameter tuple out of free problem text. Each field is
// matched independently and silently falls back to its default, so Extract
// never fails. Gravity is always Earth's 9.8; problems on other bodies are
// reached through what-if commands or sliders.
func Extract(text string) Parameters {
	t := strings.ToLower(text)
	p := DefaultParameters()

	rest := t
	if m := velocityRe.FindStringSubmatchIndex(t); m != nil {
		p.Velocity = parseFloat(t[m[2]:m[3]], DefaultVelocity)
		// Blank out the velocity match so its "m" is not re-read as a height.
		rest = t[:m[0]] + strings.Repeat(" ", m[1]-m[0]) + t[m[1]:]
	}

	if m := degreeRe.FindStringSubmatch(t); m != nil {
		p.Angle = parseFloat(m[1], DefaultAngle)
	} else if m := angleWordRe.FindStringSubmatch(t); m != nil {
		p.Angle = parseFloat(m[1], DefaultAngle)
	}

	if m := heightRe.FindStringSubmatch(rest); m != nil {
		p.Height = parseFloat(m[1], DefaultHeight)
	}

	return p
}

// Parse classifies and extracts in one step.
func Parse(text string) (Kind, Parameters) {
	return Classify(text), Extract(text)
}

func parseFloat(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}
