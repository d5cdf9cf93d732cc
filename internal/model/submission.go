package model

import "time"

// Assessment types for a normalized submission
const (
	AssessmentScreening = "screening"
	AssessmentFull      = "full"
)

// Submission is the canonical fixed-shape result handed to the
// persistence/recommendation collaborator.
//
// For "screening" submissions only the 2-item screener sums are exposed; the
// full-instrument answers, scores and severities are absent from the payload
// entirely, so that a screening never implies an assessment that did not
// happen. For "full" submissions both answer vectors are padded to instrument
// length and both scores and severities are always present.
type Submission struct {
	SessionID      string `json:"sessionId" bson:"sessionId"`
	AssessmentType string `json:"assessmentType" bson:"assessmentType"`

	// Full assessments only
	DepressionAnswers  []int    `json:"depressionAnswers,omitempty" bson:"depressionAnswers,omitempty"`
	AnxietyAnswers     []int    `json:"anxietyAnswers,omitempty" bson:"anxietyAnswers,omitempty"`
	DepressionScore    *int     `json:"depressionScore,omitempty" bson:"depressionScore,omitempty"`
	AnxietyScore       *int     `json:"anxietyScore,omitempty" bson:"anxietyScore,omitempty"`
	DepressionSeverity Severity `json:"depressionSeverity,omitempty" bson:"depressionSeverity,omitempty"`
	AnxietySeverity    Severity `json:"anxietySeverity,omitempty" bson:"anxietySeverity,omitempty"`

	// Screening assessments only
	DepressionScreenerScore *int `json:"depressionScreenerScore,omitempty" bson:"depressionScreenerScore,omitempty"`
	AnxietyScreenerScore    *int `json:"anxietyScreenerScore,omitempty" bson:"anxietyScreenerScore,omitempty"`

	RiskLevel         RiskLevel  `json:"riskLevel" bson:"riskLevel"`
	RiskColor         AmpelColor `json:"riskColor" bson:"riskColor"`
	RequiresEmergency bool       `json:"requiresEmergency" bson:"requiresEmergency"`
	HasCrisisSignal   bool       `json:"hasCrisisSignal" bson:"hasCrisisSignal"`
	CrisisItemValue   int        `json:"crisisItemValue" bson:"crisisItemValue"`

	Preferences map[string][]string `json:"preferences,omitempty" bson:"preferences,omitempty"`
	SubmittedAt time.Time           `json:"submittedAt" bson:"submittedAt"`
}
