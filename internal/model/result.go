package model

// Severity is a named clinical cut-off band
type Severity string

// Depression (PHQ-9) and anxiety (GAD-7) severity bands
const (
	SeverityMinimal          Severity = "minimal"
	SeverityMild             Severity = "mild"
	SeverityModerate         Severity = "moderate"
	SeverityModeratelySevere Severity = "moderately_severe"
	SeveritySevere           Severity = "severe"
)

// Well-being (WHO-5) bands, classified on the transformed 0-100 score
const (
	WellBeingVeryPoor Severity = "very_poor"
	WellBeingPoor     Severity = "poor"
	WellBeingModerate Severity = "moderate"
	WellBeingGood     Severity = "good"
)

// RiskLevel is the combined ordinal risk classification
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// AmpelColor is the three-value presentation tier derived from the risk level
type AmpelColor string

const (
	ColorGreen  AmpelColor = "green"
	ColorYellow AmpelColor = "yellow"
	ColorRed    AmpelColor = "red"
)

// ScoreResult is the derived outcome of scoring one complete answer vector
type ScoreResult struct {
	Instrument InstrumentKind `json:"instrument"`
	TotalScore int            `json:"totalScore"`
	Severity   Severity       `json:"severity"`
}

// RiskResult combines both instruments' severities and the crisis item into a
// single classification
type RiskResult struct {
	Level             RiskLevel  `json:"level"`
	Color             AmpelColor `json:"color"`
	RequiresEmergency bool       `json:"requiresEmergency"`
	HasCrisisSignal   bool       `json:"hasCrisisSignal"`
}
