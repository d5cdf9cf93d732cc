package catalog

// PreferenceGroup is one multi-select group collected, unscored, in the
// preferences phase of an assessment.
type PreferenceGroup struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Options []string `json:"options"`
}

var preferenceGroups = []PreferenceGroup{
	{
		Key:   "topics",
		Title: "Which topics are on your mind right now?",
		Options: []string{
			"stress", "sleep", "mood", "anxiety", "relationships",
			"work", "self_esteem", "grief",
		},
	},
	{
		Key:   "support_format",
		Title: "What kind of support would you consider?",
		Options: []string{
			"online_course", "therapist", "counseling", "reading", "not_sure",
		},
	},
}

// PreferenceGroups returns the fixed preference groups presented after the
// questionnaires. Selections are free-form from the core's point of view and
// never scored.
func PreferenceGroups() []PreferenceGroup {
	return preferenceGroups
}
