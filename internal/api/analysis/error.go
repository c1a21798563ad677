package analysis

import "PhysiqueGolang/pkg/response"

var (
	ErrNoBodyDetected  = response.NewError(422, "no body detected in pose data")
	ErrInvalidPoseData = response.NewError(400, "invalid pose data")
)
