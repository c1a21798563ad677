package analysis

import (
	"PhysiqueGolang/internal/entity"
	"PhysiqueGolang/pkg/pose"
)

// The analysis endpoints keep the camelCase contract the original
// mobile client was built against.

type AnalyzeBodyRequest struct {
	PoseData []pose.Landmark `json:"poseData" validate:"required,min=33"`
}

type DietPlanRequest struct {
	BodyFatEstimate float64 `json:"bodyFatEstimate" validate:"required,gt=0"`
}

type WorkoutRoutineRequest struct {
	WeakSpots []string `json:"weakSpots"`
}

type CompleteAnalysisResponse struct {
	Analysis       entity.BodyAnalysis   `json:"analysis"`
	DietPlan       entity.DietPlan       `json:"dietPlan"`
	WorkoutRoutine entity.WorkoutRoutine `json:"workoutRoutine"`
}
