package submission

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philippoppel/findmytherapy-sub000/internal/model"
)

func sessionWith(dep, anx []int) *model.Session {
	return &model.Session{
		ID:    "s-1",
		Phase: model.PhaseComplete,
		Answers: map[model.InstrumentKind][]int{
			model.InstrumentDepression: dep,
			model.InstrumentAnxiety:    anx,
		},
	}
}

func TestNormalizeScreeningOnly(t *testing.T) {
	sub, err := Normalize(sessionWith([]int{0, 1}, []int{0, 1}))
	require.NoError(t, err)

	assert.Equal(t, model.AssessmentScreening, sub.AssessmentType)
	require.NotNil(t, sub.DepressionScreenerScore)
	require.NotNil(t, sub.AnxietyScreenerScore)
	assert.Equal(t, 1, *sub.DepressionScreenerScore)
	assert.Equal(t, 1, *sub.AnxietyScreenerScore)

	// No full scores, severities or vectors may leak into a screening payload
	assert.Nil(t, sub.DepressionScore)
	assert.Nil(t, sub.AnxietyScore)
	assert.Empty(t, sub.DepressionSeverity)
	assert.Empty(t, sub.AnxietySeverity)
	assert.Nil(t, sub.DepressionAnswers)
	assert.Nil(t, sub.AnxietyAnswers)

	assert.Equal(t, model.RiskLow, sub.RiskLevel)
	assert.Equal(t, model.ColorGreen, sub.RiskColor)
	assert.False(t, sub.RequiresEmergency)
	assert.False(t, sub.HasCrisisSignal)
	assert.Equal(t, 0, sub.CrisisItemValue)
}

// A screening payload must omit the full-instrument fields from its wire
// form entirely, not carry them as null or zero.
func TestScreeningPayloadOmitsFullFields(t *testing.T) {
	sub, err := Normalize(sessionWith([]int{0, 1}, []int{0, 1}))
	require.NoError(t, err)

	data, err := json.Marshal(sub)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))

	for _, forbidden := range []string{
		"depressionScore", "anxietyScore",
		"depressionSeverity", "anxietySeverity",
		"depressionAnswers", "anxietyAnswers",
	} {
		assert.NotContains(t, fields, forbidden)
	}
	assert.Contains(t, fields, "depressionScreenerScore")
	assert.Contains(t, fields, "anxietyScreenerScore")
	assert.Contains(t, fields, "riskLevel")
}

// Padding must fill un-administered depression items with zeros while
// leaving the expanded anxiety vector untouched, and score only the real
// answers.
func TestNormalizePadsScreenerOnlyInstrument(t *testing.T) {
	sub, err := Normalize(sessionWith([]int{1, 1}, []int{0, 1, 0, 0, 0, 0, 0}))
	require.NoError(t, err)

	assert.Equal(t, model.AssessmentFull, sub.AssessmentType)
	assert.Equal(t, []int{1, 1, 0, 0, 0, 0, 0, 0, 0}, sub.DepressionAnswers)
	assert.Equal(t, []int{0, 1, 0, 0, 0, 0, 0}, sub.AnxietyAnswers)

	require.NotNil(t, sub.DepressionScore)
	require.NotNil(t, sub.AnxietyScore)
	assert.Equal(t, 2, *sub.DepressionScore)
	assert.Equal(t, 1, *sub.AnxietyScore)
	assert.Equal(t, model.SeverityMinimal, sub.DepressionSeverity)
	assert.Equal(t, model.SeverityMinimal, sub.AnxietySeverity)

	// Screener-only fields belong to screening payloads
	assert.Nil(t, sub.DepressionScreenerScore)
	assert.Nil(t, sub.AnxietyScreenerScore)
}

func TestNormalizeExpandedDepressionPadsAnxiety(t *testing.T) {
	// Depression [2,2] + remainder of 1s, anxiety screener-only [0,1]
	sub, err := Normalize(sessionWith([]int{2, 2, 1, 1, 1, 1, 1, 1, 1}, []int{0, 1}))
	require.NoError(t, err)

	assert.Equal(t, model.AssessmentFull, sub.AssessmentType)
	assert.Equal(t, []int{0, 1, 0, 0, 0, 0, 0}, sub.AnxietyAnswers)
	require.NotNil(t, sub.AnxietyScore)
	assert.Equal(t, 1, *sub.AnxietyScore)
	assert.Equal(t, model.SeverityMinimal, sub.AnxietySeverity)

	require.NotNil(t, sub.DepressionScore)
	assert.Equal(t, 11, *sub.DepressionScore)
	assert.Equal(t, 1, sub.CrisisItemValue)
	assert.True(t, sub.HasCrisisSignal)
	assert.True(t, sub.RequiresEmergency)
	assert.Equal(t, model.RiskHigh, sub.RiskLevel)
}

func TestNormalizeCarriesPreferences(t *testing.T) {
	s := sessionWith([]int{0, 0}, []int{0, 0})
	s.Preferences = map[string][]string{"topics": {"sleep"}}

	sub, err := Normalize(s)
	require.NoError(t, err)
	assert.Equal(t, s.Preferences, sub.Preferences)
	assert.Equal(t, "s-1", sub.SessionID)
	assert.False(t, sub.SubmittedAt.IsZero())
}

func TestNormalizeDoesNotMutateSession(t *testing.T) {
	s := sessionWith([]int{1, 1}, []int{0, 1, 0, 0, 0, 0, 0})
	_, err := Normalize(s)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 1}, s.Answers[model.InstrumentDepression],
		"padding must not leak back into the session")
}

func TestNormalizeEmergencyByScore(t *testing.T) {
	// All-max depression without a crisis answer still classifies as an
	// emergency through the severe-score rule
	sub, err := Normalize(sessionWith([]int{3, 3, 3, 3, 3, 3, 3, 3, 0}, []int{0, 0}))
	require.NoError(t, err)

	require.NotNil(t, sub.DepressionScore)
	assert.Equal(t, 24, *sub.DepressionScore)
	assert.Equal(t, model.SeveritySevere, sub.DepressionSeverity)
	assert.True(t, sub.RequiresEmergency)
	assert.False(t, sub.HasCrisisSignal)
	assert.Equal(t, model.RiskHigh, sub.RiskLevel)
}
