// Package catalog holds the compiled-in questionnaire definitions. The data
// is versioned, immutable, and available from process start; there is no
// runtime reconfiguration.
package catalog

import (
	"fmt"

	"github.com/philippoppel/findmytherapy-sub000/internal/model"
)

// frequencyScale is the shared 0-3 scale used by PHQ-9 and GAD-7
var frequencyScale = model.ResponseScale{
	Min: 0,
	Max: 3,
	Options: []model.ScaleOption{
		{Value: 0, Label: "Not at all"},
		{Value: 1, Label: "Several days"},
		{Value: 2, Label: "More than half the days"},
		{Value: 3, Label: "Nearly every day"},
	},
}

// wellBeingScale is the 6-point WHO-5 scale
var wellBeingScale = model.ResponseScale{
	Min: 0,
	Max: 5,
	Options: []model.ScaleOption{
		{Value: 0, Label: "At no time"},
		{Value: 1, Label: "Some of the time"},
		{Value: 2, Label: "Less than half of the time"},
		{Value: 3, Label: "More than half of the time"},
		{Value: 4, Label: "Most of the time"},
		{Value: 5, Label: "All of the time"},
	},
}

var depression = model.Instrument{
	Kind:         model.InstrumentDepression,
	Name:         "Patient Health Questionnaire (PHQ-9)",
	Version:      "v1",
	Scale:        frequencyScale,
	ScreenerSize: 2,
	CrisisIndex:  8,
	Items: []model.Item{
		{ID: "phq1", Position: 1, Screener: true,
			Text:     "Little interest or pleasure in doing things",
			HelpText: "Over the last two weeks, how often have you been bothered by this?"},
		{ID: "phq2", Position: 2, Screener: true,
			Text:     "Feeling down, depressed, or hopeless",
			HelpText: "Over the last two weeks, how often have you been bothered by this?"},
		{ID: "phq3", Position: 3,
			Text: "Trouble falling or staying asleep, or sleeping too much"},
		{ID: "phq4", Position: 4,
			Text: "Feeling tired or having little energy"},
		{ID: "phq5", Position: 5,
			Text: "Poor appetite or overeating"},
		{ID: "phq6", Position: 6,
			Text: "Feeling bad about yourself, or that you are a failure or have let yourself or your family down"},
		{ID: "phq7", Position: 7,
			Text: "Trouble concentrating on things, such as reading or watching television"},
		{ID: "phq8", Position: 8,
			Text:     "Moving or speaking so slowly that other people could have noticed, or the opposite: being so fidgety or restless that you have been moving around a lot more than usual",
			HelpText: "Either a noticeable slowing down or a noticeable restlessness counts."},
		{ID: "phq9", Position: 9, Crisis: true,
			Text:      "Thoughts that you would be better off dead, or of hurting yourself in some way",
			Rationale: "Any answer above \"Not at all\" triggers immediate crisis support information, independent of the rest of the questionnaire."},
	},
	Bands: []model.SeverityBand{
		{Band: model.SeverityMinimal, MinScore: 0, MaxScore: 4},
		{Band: model.SeverityMild, MinScore: 5, MaxScore: 9},
		{Band: model.SeverityModerate, MinScore: 10, MaxScore: 14},
		{Band: model.SeverityModeratelySevere, MinScore: 15, MaxScore: 19},
		{Band: model.SeveritySevere, MinScore: 20, MaxScore: 27},
	},
}

var anxiety = model.Instrument{
	Kind:         model.InstrumentAnxiety,
	Name:         "Generalized Anxiety Disorder Scale (GAD-7)",
	Version:      "v1",
	Scale:        frequencyScale,
	ScreenerSize: 2,
	CrisisIndex:  -1,
	Items: []model.Item{
		{ID: "gad1", Position: 1, Screener: true,
			Text:     "Feeling nervous, anxious, or on edge",
			HelpText: "Over the last two weeks, how often have you been bothered by this?"},
		{ID: "gad2", Position: 2, Screener: true,
			Text:     "Not being able to stop or control worrying",
			HelpText: "Over the last two weeks, how often have you been bothered by this?"},
		{ID: "gad3", Position: 3,
			Text: "Worrying too much about different things"},
		{ID: "gad4", Position: 4,
			Text: "Trouble relaxing"},
		{ID: "gad5", Position: 5,
			Text: "Being so restless that it is hard to sit still"},
		{ID: "gad6", Position: 6,
			Text: "Becoming easily annoyed or irritable"},
		{ID: "gad7", Position: 7,
			Text: "Feeling afraid, as if something awful might happen"},
	},
	Bands: []model.SeverityBand{
		{Band: model.SeverityMinimal, MinScore: 0, MaxScore: 4},
		{Band: model.SeverityMild, MinScore: 5, MaxScore: 9},
		{Band: model.SeverityModerate, MinScore: 10, MaxScore: 14},
		{Band: model.SeveritySevere, MinScore: 15, MaxScore: 21},
	},
}

// wellBeing is always administered in full; its bands are defined on the
// transformed 0-100 score, not the raw 0-25 total.
var wellBeing = model.Instrument{
	Kind:         model.InstrumentWellBeing,
	Name:         "WHO-5 Well-Being Index",
	Version:      "v1",
	Scale:        wellBeingScale,
	ScreenerSize: 0,
	CrisisIndex:  -1,
	Items: []model.Item{
		{ID: "who1", Position: 1,
			Text:     "I have felt cheerful and in good spirits",
			HelpText: "Think about the last two weeks."},
		{ID: "who2", Position: 2,
			Text: "I have felt calm and relaxed"},
		{ID: "who3", Position: 3,
			Text: "I have felt active and vigorous"},
		{ID: "who4", Position: 4,
			Text: "I woke up feeling fresh and rested"},
		{ID: "who5", Position: 5,
			Text: "My daily life has been filled with things that interest me"},
	},
	Bands: []model.SeverityBand{
		{Band: model.WellBeingVeryPoor, MinScore: 0, MaxScore: 28},
		{Band: model.WellBeingPoor, MinScore: 29, MaxScore: 50},
		{Band: model.WellBeingModerate, MinScore: 51, MaxScore: 75},
		{Band: model.WellBeingGood, MinScore: 76, MaxScore: 100},
	},
}

// Get returns the instrument definition for a known kind. Unknown kinds are a
// programmer error: the catalog is compiled in and closed.
func Get(kind model.InstrumentKind) model.Instrument {
	switch kind {
	case model.InstrumentDepression:
		return depression
	case model.InstrumentAnxiety:
		return anxiety
	case model.InstrumentWellBeing:
		return wellBeing
	default:
		panic(fmt.Sprintf("catalog: unknown instrument %q", kind))
	}
}

// Lookup resolves an instrument from an externally supplied kind string
func Lookup(kind string) (model.Instrument, bool) {
	switch model.InstrumentKind(kind) {
	case model.InstrumentDepression, model.InstrumentAnxiety, model.InstrumentWellBeing:
		return Get(model.InstrumentKind(kind)), true
	}
	return model.Instrument{}, false
}

// Kinds lists all available instruments
func Kinds() []model.InstrumentKind {
	return []model.InstrumentKind{
		model.InstrumentDepression,
		model.InstrumentAnxiety,
		model.InstrumentWellBeing,
	}
}

// ScreenerOf returns the screener prefix of an expandable instrument. For the
// well-being instrument, which has no screener split, it returns nil.
func ScreenerOf(kind model.InstrumentKind) []model.Item {
	ins := Get(kind)
	if !ins.HasScreener() {
		return nil
	}
	return ins.Items[:ins.ScreenerSize]
}

// RemainderOf returns the items beyond the screener, administered only when
// expansion is triggered
func RemainderOf(kind model.InstrumentKind) []model.Item {
	ins := Get(kind)
	if !ins.HasScreener() {
		return nil
	}
	return ins.Items[ins.ScreenerSize:]
}
