package pathway

import (
	"PhysiqueGolang/internal/entity"
	"PhysiqueGolang/pkg/pose"
)

type GenerateRequest struct {
	FrontPose      []pose.Landmark `json:"front_pose" validate:"required,min=33"`
	SidePose       []pose.Landmark `json:"side_pose" validate:"required,min=33"`
	Gender         string          `json:"gender" validate:"required,oneof=male female non-binary"`
	HeightCm       *float64        `json:"height_cm" validate:"omitempty,gt=0"`
	Age            *int            `json:"age" validate:"omitempty,gt=0"`
	CommitmentDays int             `json:"commitment_days" validate:"required,min=7,max=365"`
}

type GenerateResponse struct {
	Pathway entity.Pathway `json:"pathway"`
	Source  string         `json:"source"`
}

type CompleteTaskRequest struct {
	PathwayID string `json:"pathway_id" validate:"required"`
	Day       int    `json:"day" validate:"required,min=1"`
	TaskID    string `json:"task_id" validate:"required"`
}

type CompleteTaskResponse struct {
	XPEarned       int    `json:"xp_earned"`
	StageCompleted bool   `json:"stage_completed"`
	TotalXP        int    `json:"total_xp"`
	Streak         int    `json:"streak"`
	League         string `json:"league"`
}
