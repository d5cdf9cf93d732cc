// Package risk combines the two clinical instruments and the crisis item
// into a single ordinal classification.
package risk

import (
	"github.com/philippoppel/findmytherapy-sub000/internal/model"
	"github.com/philippoppel/findmytherapy-sub000/internal/scoring"
)

// emergencyScoreThreshold is the depression total at or above which an
// emergency classification applies even without a crisis item signal. It
// coincides with the lower bound of the "severe" band.
const emergencyScoreThreshold = 20

// Assess classifies a depression total, an anxiety total and the raw crisis
// item value (0 when not administered) into a risk result.
//
// Rules are evaluated in strict priority order and the first match wins. A
// crisis signal at a low total score must still classify as HIGH/emergency;
// no later rule may downgrade it.
func Assess(depressionTotal, anxietyTotal, crisisItemValue int) model.RiskResult {
	if crisisItemValue >= 1 || depressionTotal >= emergencyScoreThreshold {
		return model.RiskResult{
			Level:             model.RiskHigh,
			Color:             model.ColorRed,
			RequiresEmergency: true,
			HasCrisisSignal:   crisisItemValue >= 1,
		}
	}

	depSev := scoring.Classify(model.InstrumentDepression, depressionTotal)
	anxSev := scoring.Classify(model.InstrumentAnxiety, anxietyTotal)

	highIntensity := depSev == model.SeverityModeratelySevere ||
		depSev == model.SeveritySevere ||
		anxSev == model.SeveritySevere ||
		(depSev == model.SeverityModerate && anxSev == model.SeverityModerate)
	if highIntensity {
		return model.RiskResult{Level: model.RiskHigh, Color: model.ColorRed}
	}

	medium := depSev == model.SeverityModerate ||
		anxSev == model.SeverityModerate ||
		(depSev == model.SeverityMild && anxSev == model.SeverityMild)
	if medium {
		return model.RiskResult{Level: model.RiskMedium, Color: model.ColorYellow}
	}

	return model.RiskResult{Level: model.RiskLow, Color: model.ColorGreen}
}
