package features

import (
	"math"

	"PhysiqueGolang/internal/entity"
	"PhysiqueGolang/pkg/pose"
)

// Extract condenses a completed scan into the compact feature summary
// stored for progress tracking and used to seed plan generation.
func Extract(front, side pose.Frame, gender entity.Gender) (entity.BodyFeatures, error) {
	if !front.Complete() {
		return fallbackFeatures(), pose.ErrNoDetection
	}

	shoulderWidth := pose.Distance(front[pose.LeftShoulder], front[pose.RightShoulder])
	hipWidth := pose.Distance(front[pose.LeftHip], front[pose.RightHip])

	torsoLength := (pose.Distance(front[pose.LeftShoulder], front[pose.LeftHip]) +
		pose.Distance(front[pose.RightShoulder], front[pose.RightHip])) / 2
	legLength := (pose.Distance(front[pose.LeftHip], front[pose.LeftAnkle]) +
		pose.Distance(front[pose.RightHip], front[pose.RightAnkle])) / 2

	ankleMid := pose.Midpoint(front[pose.LeftAnkle], front[pose.RightAnkle])
	bodyHeight := pose.Distance(front[pose.Nose], ankleMid)

	shoulderHipRatio := ratio(shoulderWidth, hipWidth)

	waistWidth := hipWidth * 0.85
	shoulderWaistRatio := ratio(shoulderWidth, waistWidth)
	torsoLegRatio := ratio(torsoLength, legLength)

	leftArm := pose.Distance(front[pose.LeftShoulder], front[pose.LeftWrist])
	rightArm := pose.Distance(front[pose.RightShoulder], front[pose.RightWrist])
	symmetry := 1 - math.Abs(leftArm-rightArm)/math.Max(math.Max(leftArm, rightArm), 0.001)

	idealShoulderHip := 1.6
	if gender != entity.GenderMale {
		idealShoulderHip = 1.4
	}

	vTaperScore := clamp(100 - math.Abs(shoulderHipRatio-idealShoulderHip)*50)
	symmetryScore := symmetry * 100
	postureScore := PostureScore(side)
	overall := vTaperScore*0.35 + symmetryScore*0.25 + postureScore*0.40

	scores := map[string]int{
		"vtaper":   int(math.Round(vTaperScore)),
		"symmetry": int(math.Round(symmetryScore)),
		"posture":  int(math.Round(postureScore)),
		"overall":  int(math.Round(overall)),
	}

	return entity.BodyFeatures{
		RawMeasurements: map[string]float64{
			"shoulder_width": round4(shoulderWidth),
			"hip_width":      round4(hipWidth),
			"torso_length":   round4(torsoLength),
			"leg_length":     round4(legLength),
			"body_height":    round4(bodyHeight),
		},
		Ratios: map[string]float64{
			"shoulder_hip_ratio":   round3(shoulderHipRatio),
			"shoulder_waist_ratio": round3(shoulderWaistRatio),
			"torso_leg_ratio":      round3(torsoLegRatio),
			"symmetry":             round3(symmetry),
		},
		Scores:     scores,
		Insights:   buildInsights(scores),
		FocusAreas: buildFocusAreas(scores, gender),
	}, nil
}

// PostureScore scores side-view alignment: ear, shoulder, and hip
// should sit roughly on a vertical line.
func PostureScore(side pose.Frame) float64 {
	if !side.Complete() {
		return 70
	}

	earShoulder := math.Abs(side[pose.LeftEar].X - side[pose.LeftShoulder].X)
	shoulderHip := math.Abs(side[pose.LeftShoulder].X - side[pose.LeftHip].X)

	return clamp(100 - (earShoulder+shoulderHip)*200)
}

func buildInsights(scores map[string]int) []string {
	insights := make([]string, 0, 3)

	switch vtaper := scores["vtaper"]; {
	case vtaper >= 80:
		insights = append(insights, "Excellent shoulder-to-hip ratio indicating good V-taper")
	case vtaper >= 60:
		insights = append(insights, "Good foundation for V-taper, can be improved with shoulder/lat work")
	default:
		insights = append(insights, "V-taper needs development - focus on shoulder width and waist reduction")
	}

	switch symmetry := scores["symmetry"]; {
	case symmetry >= 90:
		insights = append(insights, "Excellent left-right body symmetry")
	case symmetry >= 75:
		insights = append(insights, "Good symmetry with minor imbalances to address")
	default:
		insights = append(insights, "Noticeable asymmetry - incorporate unilateral exercises")
	}

	switch posture := scores["posture"]; {
	case posture >= 80:
		insights = append(insights, "Good posture alignment")
	case posture >= 60:
		insights = append(insights, "Some postural issues - focus on core and back strengthening")
	default:
		insights = append(insights, "Significant posture concerns - prioritize corrective exercises")
	}

	return insights
}

func buildFocusAreas(scores map[string]int, gender entity.Gender) []entity.FocusArea {
	var areas []entity.FocusArea

	if vtaper := scores["vtaper"]; vtaper < 70 {
		priority := "medium"
		if vtaper < 50 {
			priority = "high"
		}

		areas = append(areas,
			entity.FocusArea{Area: "shoulders", Priority: priority, Recommendation: "Lateral raises, overhead press, face pulls"},
			entity.FocusArea{Area: "lats", Priority: priority, Recommendation: "Pull-ups, lat pulldowns, rows"},
		)
	}

	if scores["symmetry"] < 85 {
		areas = append(areas, entity.FocusArea{Area: "symmetry", Priority: "medium", Recommendation: "Unilateral dumbbell exercises, single-leg work"})
	}

	if posture := scores["posture"]; posture < 70 {
		priority := "medium"
		if posture < 50 {
			priority = "high"
		}

		areas = append(areas, entity.FocusArea{Area: "posture", Priority: priority, Recommendation: "Core work, back extensions, stretching"})
	}

	if gender == entity.GenderMale {
		areas = append(areas,
			entity.FocusArea{Area: "chest", Priority: "medium", Recommendation: "Bench press variations, push-ups, flyes"},
			entity.FocusArea{Area: "arms", Priority: "low", Recommendation: "Compound movements + isolation work"},
		)
	} else {
		areas = append(areas,
			entity.FocusArea{Area: "glutes", Priority: "medium", Recommendation: "Hip thrusts, squats, lunges"},
			entity.FocusArea{Area: "core", Priority: "medium", Recommendation: "Planks, dead bugs, ab work"},
		)
	}

	return areas
}

func fallbackFeatures() entity.BodyFeatures {
	return entity.BodyFeatures{
		Scores:   map[string]int{"overall": 70, "vtaper": 70, "symmetry": 80, "posture": 70},
		Insights: []string{"Unable to fully analyze - using baseline assessment"},
		FocusAreas: []entity.FocusArea{
			{Area: "general fitness", Priority: "medium", Recommendation: "Full body training"},
		},
	}
}

func ratio(a, b float64) float64 {
	if b <= 0 {
		return 0
	}

	return a / b
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
