package lab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abhiabhilash8/PhysiLab/internal/scenario"
)

func TestSubmit(t *testing.T) {
	r, err := Submit("A ball is thrown with a velocity of 30 m/s at an angle of 45 degrees.")
	require.NoError(t, err)

	assert.Equal(t, scenario.Projectile, r.Kind)
	assert.Equal(t, 30.0, r.Params.Velocity)
	assert.Equal(t, 45.0, r.Params.Angle)
	assert.Equal(t, "Projectile Motion", r.Explanation.Title)
	assert.NotEmpty(t, r.Explanation.Steps)
}

func TestSubmitEmpty(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		r, err := Submit(text)
		assert.Nil(t, r)
		assert.ErrorIs(t, err, scenario.ErrEmptyProblem)
	}
}

func TestSubmitKeepsRawText(t *testing.T) {
	text := "  A stone falls.  "
	r, err := Submit(text)
	require.NoError(t, err)
	assert.Equal(t, text, r.ProblemText)
}

func TestSetParameter(t *testing.T) {
	r, err := Submit("A pendulum swings.")
	require.NoError(t, err)

	require.NoError(t, r.SetParameter("velocity", 55))
	assert.Equal(t, 55.0, r.Params.Velocity)

	// Slider mutations clamp to the parameter's range.
	require.NoError(t, r.SetParameter("angle", 200))
	assert.Equal(t, float64(scenario.MaxAngle), r.Params.Angle)

	assert.ErrorIs(t, r.SetParameter("wavelength", 1), scenario.ErrUnknownParameter)
}

func TestExplanationFrozenAcrossMutation(t *testing.T) {
	r, err := Submit("A ball is thrown with a velocity of 30 m/s at an angle of 45 degrees.")
	require.NoError(t, err)
	before := r.Explanation

	require.NoError(t, r.SetParameter("velocity", 90))
	r.ApplyWhatIf("what if this happened on the moon")

	assert.Equal(t, before, r.Explanation)
	assert.Equal(t, 90.0, r.Params.Velocity)
	assert.Equal(t, 1.6, r.Params.Gravity)
}

func TestApplyWhatIfNoOp(t *testing.T) {
	r, err := Submit("A stone is thrown vertically upward with a speed of 25 m/s.")
	require.NoError(t, err)
	before := r.Params
	r.ApplyWhatIf("make it prettier")
	assert.Equal(t, before, r.Params)
}
