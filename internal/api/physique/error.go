package physique

import "PhysiqueGolang/pkg/response"

var (
	ErrScanNotFound    = response.NewError(404, "scan not found")
	ErrNoScansForUser  = response.NewError(404, "no scans recorded for user")
	ErrNoBaseline      = response.NewError(404, "no baseline scan recorded")
	ErrInvalidGender   = response.NewError(400, "invalid gender")
	ErrIncompletePose  = response.NewError(400, "pose data is incomplete")
	ErrCreateScan      = response.NewError(500, "failed to save scan")
	ErrSaveBaseline    = response.NewError(500, "failed to save baseline metrics")
	ErrSaveProgression = response.NewError(500, "failed to save progression")
)
