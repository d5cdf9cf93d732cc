package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philippoppel/findmytherapy-sub000/internal/model"
)

func TestScore(t *testing.T) {
	t.Run("sums a complete vector", func(t *testing.T) {
		total, err := Score(model.InstrumentDepression, []int{1, 2, 3, 0, 1, 2, 3, 0, 1})
		require.NoError(t, err)
		assert.Equal(t, 13, total)
	})

	t.Run("rejects a short vector", func(t *testing.T) {
		_, err := Score(model.InstrumentDepression, []int{1, 1})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrIncompleteAnswerVector)
	})

	t.Run("rejects a long vector", func(t *testing.T) {
		_, err := Score(model.InstrumentAnxiety, make([]int, 9))
		assert.ErrorIs(t, err, ErrIncompleteAnswerVector)
	})
}

// Boundary scores on both sides of every documented cut-off
func TestClassifyDepression(t *testing.T) {
	tests := []struct {
		score int
		want  model.Severity
	}{
		{0, model.SeverityMinimal},
		{4, model.SeverityMinimal},
		{5, model.SeverityMild},
		{9, model.SeverityMild},
		{10, model.SeverityModerate},
		{14, model.SeverityModerate},
		{15, model.SeverityModeratelySevere},
		{19, model.SeverityModeratelySevere},
		{20, model.SeveritySevere},
		{27, model.SeveritySevere},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(model.InstrumentDepression, tt.score),
			"depression score %d", tt.score)
	}
}

func TestClassifyAnxiety(t *testing.T) {
	tests := []struct {
		score int
		want  model.Severity
	}{
		{0, model.SeverityMinimal},
		{4, model.SeverityMinimal},
		{5, model.SeverityMild},
		{9, model.SeverityMild},
		{10, model.SeverityModerate},
		{14, model.SeverityModerate},
		{15, model.SeveritySevere},
		{21, model.SeveritySevere},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(model.InstrumentAnxiety, tt.score),
			"anxiety score %d", tt.score)
	}
}

func TestTransformWellBeing(t *testing.T) {
	// raw/25*100 is raw*4 on the 0-25 range
	for raw := 0; raw <= 25; raw++ {
		assert.Equal(t, raw*4, TransformWellBeing(raw))
	}
}

func TestClassifyWellBeing(t *testing.T) {
	tests := []struct {
		raw  int
		want model.Severity
	}{
		{0, model.WellBeingVeryPoor},
		{7, model.WellBeingVeryPoor},  // transformed 28
		{8, model.WellBeingPoor},      // transformed 32
		{12, model.WellBeingPoor},     // transformed 48
		{13, model.WellBeingModerate}, // transformed 52
		{18, model.WellBeingModerate}, // transformed 72
		{19, model.WellBeingGood},     // transformed 76
		{25, model.WellBeingGood},     // transformed 100
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(model.InstrumentWellBeing, tt.raw),
			"well-being raw score %d", tt.raw)
	}
}

// Every integer score in [0, maxScore] must resolve to exactly one band
func TestClassifyIsTotal(t *testing.T) {
	kinds := []struct {
		kind model.InstrumentKind
		max  int
	}{
		{model.InstrumentDepression, 27},
		{model.InstrumentAnxiety, 21},
		{model.InstrumentWellBeing, 25},
	}
	for _, k := range kinds {
		for score := 0; score <= k.max; score++ {
			assert.NotEmpty(t, Classify(k.kind, score), "%s score %d", k.kind, score)
		}
	}
}

func TestEvaluateRoundTrip(t *testing.T) {
	answers := []int{2, 2, 1, 1, 1, 1, 1, 1, 0}

	first, err := Evaluate(model.InstrumentDepression, answers)
	require.NoError(t, err)
	assert.Equal(t, 10, first.TotalScore)
	assert.Equal(t, model.SeverityModerate, first.Severity)

	// Deterministic and stable across repeated calls
	for i := 0; i < 5; i++ {
		again, err := Evaluate(model.InstrumentDepression, answers)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0, Sum(nil))
	assert.Equal(t, 3, Sum([]int{1, 2}))
}
