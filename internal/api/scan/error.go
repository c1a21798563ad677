package scan

import "PhysiqueGolang/pkg/response"

var (
	ErrSessionNotStarted = response.NewError(400, "scan session has not been started")
	ErrSessionFinished   = response.NewError(409, "scan session has already finished")
	ErrCaptureNotReady   = response.NewError(409, "pose score too low for manual capture")
	ErrInvalidMessage    = response.NewError(400, "invalid scan message")
	ErrPoseEstimation    = response.NewError(502, "pose estimation service unavailable")
)
