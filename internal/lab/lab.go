// Package lab is the entry point the surrounding UI calls into: submit a
// problem, mutate parameters, run what-if commands. It wires the parsing,
// explanation, and mutation layers together around a Record.
package lab

import (
	"strings"

	"github.com/Abhiabhilash8/PhysiLab/internal/explain"
	"github.com/Abhiabhilash8/PhysiLab/internal/scenario"
	"github.com/Abhiabhilash8/PhysiLab/internal/whatif"
)

// Record is one submitted problem. Kind, ProblemText, and Explanation are
// fixed at creation; Params stays mutable for sliders and what-if
// commands. Submitting a new problem replaces the record wholesale.
type Record struct {
	Kind        scenario.Kind
	ProblemText string
	Explanation explain.Explanation
	Params      scenario.Parameters
}

// Submit parses problem text into a fresh Record. Empty or whitespace-only
// text is the one user-visible failure in the pipeline and is rejected
// here, before the parser; the parser itself never fails.
func Submit(text string) (*Record, error) {
	if strings.TrimSpace(text) == "" {
		return nil, scenario.ErrEmptyProblem
	}
	kind, params := scenario.Parse(text)
	return &Record{
		Kind:        kind,
		ProblemText: text,
		Explanation: explain.Generate(kind, params),
		Params:      params,
	}, nil
}

// SetParameter applies a direct numeric mutation from a bounded slider.
func (r *Record) SetParameter(name string, value float64) error {
	return r.Params.Set(name, value)
}

// ApplyWhatIf interprets a free-text command against the current
// parameters. Commands matching no rule are silent no-ops.
func (r *Record) ApplyWhatIf(command string) {
	whatif.Apply(command, &r.Params)
}
