package entity

// FocusArea is a training priority derived from the feature scores,
// used to steer pathway generation.
type FocusArea struct {
	Area           string `json:"area"`
	Priority       string `json:"priority"`
	Recommendation string `json:"recommendation"`
}

// BodyFeatures is the compact, storable summary of one scan used for
// progress tracking and for prompting the plan model.
type BodyFeatures struct {
	RawMeasurements map[string]float64 `json:"raw_measurements"`
	Ratios          map[string]float64 `json:"ratios"`
	Scores          map[string]int     `json:"scores"`
	Insights        []string           `json:"insights"`
	FocusAreas      []FocusArea        `json:"focus_areas"`
}
