package model

// InstrumentKind identifies a questionnaire variant
type InstrumentKind string

const (
	InstrumentDepression InstrumentKind = "phq-9"
	InstrumentAnxiety    InstrumentKind = "gad-7"
	InstrumentWellBeing  InstrumentKind = "who-5"
)

// Item is one question within an instrument
type Item struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	HelpText  string `json:"helpText,omitempty"`
	Rationale string `json:"rationale,omitempty"`
	Position  int    `json:"position"`
	// Screener marks the triage prefix of an expandable instrument
	Screener bool `json:"screener,omitempty"`
	// Crisis marks the high-risk item that can force an emergency classification
	Crisis bool `json:"crisis,omitempty"`
}

// ScaleOption is one selectable value on a response scale
type ScaleOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// ResponseScale defines the valid answer range for all items of an instrument
type ResponseScale struct {
	Min     int           `json:"min"`
	Max     int           `json:"max"`
	Options []ScaleOption `json:"options"`
}

// Contains reports whether v is a valid answer on this scale
func (s ResponseScale) Contains(v int) bool {
	return v >= s.Min && v <= s.Max
}

// SeverityBand maps a contiguous score range to a named severity
type SeverityBand struct {
	Band     Severity `json:"band"`
	MinScore int      `json:"minScore"`
	MaxScore int      `json:"maxScore"`
}

// Instrument is a complete questionnaire definition. Instances are compiled-in
// and never mutated after process start.
type Instrument struct {
	Kind         InstrumentKind `json:"kind"`
	Name         string         `json:"name"`
	Version      string         `json:"version"`
	Items        []Item         `json:"items"`
	Scale        ResponseScale  `json:"scale"`
	Bands        []SeverityBand `json:"bands"`
	ScreenerSize int            `json:"screenerSize"` // 0 = always administered in full
	CrisisIndex  int            `json:"crisisIndex"`  // index into Items, -1 = none
}

// ItemCount returns the number of items when fully administered
func (i Instrument) ItemCount() int {
	return len(i.Items)
}

// MaxScore returns the highest possible raw total
func (i Instrument) MaxScore() int {
	return len(i.Items) * i.Scale.Max
}

// HasScreener reports whether the instrument splits into screener and remainder
func (i Instrument) HasScreener() bool {
	return i.ScreenerSize > 0
}

// RemainderSize returns the number of items beyond the screener
func (i Instrument) RemainderSize() int {
	if i.ScreenerSize == 0 {
		return 0
	}
	return len(i.Items) - i.ScreenerSize
}
