package pathway

import "PhysiqueGolang/pkg/response"

var (
	ErrPathwayNotFound  = response.NewError(404, "pathway not found")
	ErrStageNotFound    = response.NewError(404, "no stage for the given day")
	ErrTaskNotFound     = response.NewError(404, "task not found")
	ErrTaskAlreadyDone  = response.NewError(409, "task already completed")
	ErrNoProgress       = response.NewError(404, "no progress recorded for user")
	ErrGeneratePathway  = response.NewError(500, "failed to generate pathway")
	ErrPersistPathway   = response.NewError(500, "failed to store pathway")
	ErrInvalidPoseData  = response.NewError(400, "invalid pose data")
	ErrInvalidGender    = response.NewError(400, "invalid gender")
)
