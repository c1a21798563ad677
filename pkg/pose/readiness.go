package pose

// Readiness is the per-frame usability verdict shown live to the user
// while they line up for a capture.
type Readiness struct {
	Score   int    `json:"score"`
	Message string `json:"message"`
}

const (
	visibilityFullBand    = 0.8
	visibilityPartialBand = 0.6

	shoulderLevelFullBand    = 0.02
	shoulderLevelPartialBand = 0.05

	uprightFullBand    = 0.10
	uprightPartialBand = 0.15
)

// ScoreReadiness judges a single frame against the target pose type and
// returns a [0,100] score with a corrective message. It is a pure
// function with no memory of prior frames; unscoreable input yields a
// zero score rather than an error.
func ScoreReadiness(frame Frame, poseType Type) Readiness {
	if !frame.Complete() {
		return Readiness{Score: 0, Message: "No body detected"}
	}

	var (
		score       int
		correctives []string
	)

	switch vis := frame.MeanVisibility(); {
	case vis >= visibilityFullBand:
		score += 40
	case vis >= visibilityPartialBand:
		score += 20
		correctives = append(correctives, "step back so your full body is visible")
	default:
		correctives = append(correctives, "show more of your body")
	}

	if poseType == TypeFront {
		offset := abs(frame[LeftShoulder].Y - frame[RightShoulder].Y)

		switch {
		case offset < shoulderLevelFullBand:
			score += 30
		case offset < shoulderLevelPartialBand:
			score += 15
			correctives = append(correctives, "face the camera directly")
		default:
			correctives = append(correctives, "turn to face the camera")
		}
	} else {
		// Side poses have no shoulder-level check; the framing points
		// are granted so a clean side pose can still reach full score.
		score += 30
	}

	hipX := (frame[LeftHip].X + frame[RightHip].X) / 2

	switch offset := abs(frame[Nose].X - hipX); {
	case offset < uprightFullBand:
		score += 30
	case offset < uprightPartialBand:
		score += 15
		correctives = append(correctives, "stand up straight")
	default:
		correctives = append(correctives, "stand upright")
	}

	if score > 100 {
		score = 100
	}

	return Readiness{Score: score, Message: readinessMessage(score, correctives)}
}

func readinessMessage(score int, correctives []string) string {
	switch {
	case score >= 90:
		return "Perfect, hold steady"
	case score >= 70 && len(correctives) > 0:
		return "Good, " + correctives[0]
	case len(correctives) > 0:
		return correctives[0]
	default:
		return "position yourself in the frame"
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
