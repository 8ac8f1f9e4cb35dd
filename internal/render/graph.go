package render

import (
	"github.com/Abhiabhilash8/PhysiLab/internal/kinematics"
	"github.com/Abhiabhilash8/PhysiLab/internal/scenario"
)

// Sampling domain for the position-vs-time curve.
const (
	graphDomain = 10.0 // seconds
	graphStep   = 0.1
	graphYMax   = 130.0 // metres, fixed axis range
)

// Graph axes layout, in logical units of the 400×300 graph view.
const (
	axisLeft   = 30.0
	axisBottom = 270.0
	axisTop    = 10.0
	axisRight  = 390.0
)

// Graph draws the analytic position-vs-time curve for kind k onto the
// 400×300 graph view. Projectile and Vertical sample the same closed-form
// y(t) the kinematics engine uses, over [0, 10] s at 0.1 s steps, scaled
// to fixed axis ranges. All other kinds draw the axes only; an empty plot
// is deliberate, not an error.
func Graph(s *Surface, k scenario.Kind, p scenario.Parameters) {
	if s == nil {
		return
	}
	s.Clear()
	s.Line(axisLeft, axisTop, axisLeft, axisBottom)
	s.Line(axisLeft, axisBottom, axisRight, axisBottom)

	if k != scenario.Projectile && k != scenario.Vertical {
		return
	}

	prevX, prevY := 0.0, 0.0
	havePrev := false
	for t := 0.0; t <= graphDomain; t += graphStep {
		y := kinematics.At(k, p, t).Y
		if y < 0 {
			havePrev = false
			continue
		}
		px := axisLeft + t/graphDomain*(axisRight-axisLeft)
		py := axisBottom - y/graphYMax*(axisBottom-axisTop)
		if havePrev {
			s.Line(prevX, prevY, px, py)
		} else {
			s.Dot(px, py)
		}
		prevX, prevY, havePrev = px, py, true
	}
}

// Series samples y(t) over the graph domain for terminal line charts.
// Negative heights are floored at ground level. Kinds without a
// position-time curve yield a flat zero series.
func Series(k scenario.Kind, p scenario.Parameters) []float64 {
	n := int(graphDomain/graphStep) + 1
	data := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) * graphStep
		y := 0.0
		if k == scenario.Projectile || k == scenario.Vertical {
			y = kinematics.At(k, p, t).Y
			if y < 0 {
				y = 0
			}
		}
		data = append(data, y)
	}
	return data
}
