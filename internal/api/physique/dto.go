package physique

import (
	"PhysiqueGolang/internal/entity"
	"PhysiqueGolang/pkg/pose"
)

type AnalyzeRequest struct {
	FrontPose []pose.Landmark `json:"front_pose" validate:"required,min=33"`
	SidePose  []pose.Landmark `json:"side_pose" validate:"required,min=33"`
	Gender    string          `json:"gender" validate:"required,oneof=male female non-binary"`
	HeightCm  *float64        `json:"height_cm" validate:"omitempty,gt=0"`
}

type AnalyzeResponse struct {
	Scan           entity.ScanResult     `json:"scan"`
	DietPlan       entity.DietPlan       `json:"diet_plan"`
	WorkoutRoutine entity.WorkoutRoutine `json:"workout_routine"`
}

type ScanSummary struct {
	ScanID       string `json:"scan_id"`
	ScanDate     string `json:"scan_date"`
	IsBaseline   bool   `json:"is_baseline"`
	OverallScore int    `json:"overall_score"`
	BodyType     string `json:"body_type"`
	Frame        string `json:"frame"`
	KeyInsight   string `json:"key_insight"`
}

type HistoryResponse struct {
	UserID string        `json:"user_id"`
	Scans  []ScanSummary `json:"scans"`
}

type ProgressionEntry struct {
	ScanID            string `json:"scan_id"`
	DaysSinceBaseline int    `json:"days_since_baseline"`
	OverallScoreDelta int    `json:"overall_score_delta"`
	ShoulderDelta     int    `json:"shoulders_delta"`
	VTaperDelta       int    `json:"v_taper_delta"`
	ChestDelta        int    `json:"chest_delta"`
	CoreDelta         int    `json:"core_delta"`
	SymmetryDelta     int    `json:"symmetry_delta"`
	PostureDelta      int    `json:"posture_delta"`
	ArmsDelta         int    `json:"arms_delta"`
}

type ProgressionResponse struct {
	UserID  string             `json:"user_id"`
	Entries []ProgressionEntry `json:"entries"`
}
