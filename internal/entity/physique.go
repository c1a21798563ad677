package entity

// CategoryArea is a single named physique category with its score and
// a short evaluation shown to the user.
type CategoryArea struct {
	Name        string `json:"name"`
	Score       int    `json:"score"`
	Description string `json:"description"`
}

type PhysiqueScore struct {
	OverallScore    int            `json:"overall_score"`
	Scores          map[string]int `json:"scores"`
	BodyType        string         `json:"body_type"`
	BodyDescription string         `json:"body_description"`
	Frame           string         `json:"frame"`
	StrongAreas     []CategoryArea `json:"strong_areas"`
	GrowthAreas     []CategoryArea `json:"growth_areas"`
	KeyInsight      string         `json:"key_insight"`
}

// ScanResult is the physique score enriched with baseline context once
// the scan has been persisted.
type ScanResult struct {
	PhysiqueScore
	IsBaseline         bool   `json:"is_baseline"`
	Message            string `json:"message,omitempty"`
	DaysSinceBaseline  *int   `json:"days_since_baseline,omitempty"`
	OverallScoreChange *int   `json:"score_change,omitempty"`
}
