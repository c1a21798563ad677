package pose

// Quality is a coarse per-frame detection grade used by the frame
// quality endpoint, independent of the target pose type.
type Quality struct {
	Grade      string  `json:"grade"`
	Visibility float64 `json:"visibility"`
	IsValid    bool    `json:"isValid"`
}

const stableMovementThreshold = 0.015

// GradeFrame classifies raw detection quality from mean landmark
// visibility alone.
func GradeFrame(frame Frame) Quality {
	if !frame.Complete() {
		return Quality{Grade: "none", Visibility: 0, IsValid: false}
	}

	vis := frame.MeanVisibility()

	grade := "poor"
	switch {
	case vis > 0.8:
		grade = "excellent"
	case vis > 0.6:
		grade = "good"
	}

	return Quality{Grade: grade, Visibility: vis, IsValid: vis > 0.5}
}

// Stable reports whether the body held still between two consecutive
// frames, judged by average torso landmark movement.
func Stable(prev, curr Frame) bool {
	return Movement(prev, curr) < stableMovementThreshold
}
