package entity

import "time"

type Scan struct {
	ID              string    `db:"id"`
	UserID          string    `db:"user_id"`
	ScanDate        time.Time `db:"scan_date"`
	IsBaseline      bool      `db:"is_baseline"`
	FrontPoseData   []byte    `db:"front_pose_data"`
	SidePoseData    []byte    `db:"side_pose_data"`
	OverallScore    int       `db:"overall_score"`
	ScoresJSON      []byte    `db:"scores_json"`
	BodyType        string    `db:"body_type"`
	Frame           string    `db:"frame"`
	StrongAreasJSON []byte    `db:"strong_areas_json"`
	GrowthAreasJSON []byte    `db:"growth_areas_json"`
	KeyInsight      string    `db:"key_insight"`
}

// BaselineMetrics freezes the proportions from a user's first scan so
// later scans can be compared against them.
type BaselineMetrics struct {
	ID                 string    `db:"id"`
	UserID             string    `db:"user_id"`
	BaselineScanID     string    `db:"baseline_scan_id"`
	ShoulderHipRatio   float64   `db:"shoulder_hip_ratio"`
	WaistShoulderRatio float64   `db:"waist_shoulder_ratio"`
	ArmLegRatio        float64   `db:"arm_leg_ratio"`
	ShoulderWidth      float64   `db:"shoulder_width_normalized"`
	HipWidth           float64   `db:"hip_width_normalized"`
	CreatedAt          time.Time `db:"created_at"`
}

type Progression struct {
	ID                 string    `db:"id"`
	UserID             string    `db:"user_id"`
	ScanID             string    `db:"scan_id"`
	DaysSinceBaseline  int       `db:"days_since_baseline"`
	OverallScoreDelta  int       `db:"overall_score_delta"`
	ShoulderScoreDelta int       `db:"shoulder_score_delta"`
	ChestScoreDelta    int       `db:"chest_score_delta"`
	CoreScoreDelta     int       `db:"core_score_delta"`
	VTaperScoreDelta   int       `db:"v_taper_score_delta"`
	SymmetryScoreDelta int       `db:"symmetry_score_delta"`
	PostureScoreDelta  int       `db:"posture_score_delta"`
	ArmsScoreDelta     int       `db:"arms_score_delta"`
	CreatedAt          time.Time `db:"created_at"`
}
