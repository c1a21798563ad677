package scoring

import (
	"math"

	"PhysiqueGolang/internal/entity"
	"PhysiqueGolang/pkg/pose"
)

// proxyScale converts a normalized landmark distance into rough
// centimeters. It is not calibrated against camera distance or focal
// length, so every downstream measurement is a proxy, not a metric
// value.
const proxyScale = 200

// AnalyzeBody derives proxy measurements and a strong/weak spot
// breakdown from a single front pose. This is the single-pose path the
// original mobile client used before the two-pose scoring flow.
func AnalyzeBody(frame pose.Frame) (entity.BodyAnalysis, error) {
	if !frame.Complete() {
		return entity.BodyAnalysis{}, ErrIncompleteFrame
	}

	shoulderWidth := pose.Distance(frame[pose.LeftShoulder], frame[pose.RightShoulder]) * proxyScale
	hipWidth := pose.Distance(frame[pose.LeftHip], frame[pose.RightHip]) * proxyScale
	armLength := pose.Distance(frame[pose.LeftShoulder], frame[pose.LeftWrist]) * proxyScale
	legLength := pose.Distance(frame[pose.LeftHip], frame[pose.LeftAnkle]) * proxyScale

	chestWidth := shoulderWidth * 0.85
	waistWidth := hipWidth * 0.75

	shoulderHipRatio := 1.0
	if hipWidth > 0 {
		shoulderHipRatio = shoulderWidth / hipWidth
	}

	armLegRatio := 1.0
	if legLength > 0 {
		armLegRatio = armLength / legLength
	}

	var strongSpots, weakSpots []string

	if shoulderWidth > 45 {
		strongSpots = append(strongSpots, "Broad shoulders - excellent upper body frame")
	} else {
		weakSpots = append(weakSpots, "Narrow shoulders - focus on shoulder width training")
	}

	if waistWidth < 35 {
		strongSpots = append(strongSpots, "Lean waist - good core definition")
	} else if waistWidth > 40 {
		weakSpots = append(weakSpots, "Wider waist - prioritize core strengthening and fat loss")
	}

	if shoulderHipRatio > 1.2 {
		strongSpots = append(strongSpots, "V-taper physique - excellent shoulder-to-hip ratio")
	} else if shoulderHipRatio < 1.0 {
		weakSpots = append(weakSpots, "Hip-dominant frame - focus on shoulder and back development")
	}

	switch {
	case armLegRatio > 0.45 && armLegRatio < 0.55:
		strongSpots = append(strongSpots, "Balanced arm-to-leg proportions")
	case armLegRatio < 0.4:
		weakSpots = append(weakSpots, "Shorter arms relative to legs - emphasize arm training")
	default:
		weakSpots = append(weakSpots, "Longer arms relative to legs - focus on leg development")
	}

	shoulderDiff := math.Abs(frame[pose.LeftShoulder].Y - frame[pose.RightShoulder].Y)
	hipDiff := math.Abs(frame[pose.LeftHip].Y - frame[pose.RightHip].Y)

	if shoulderDiff < 0.02 {
		strongSpots = append(strongSpots, "Excellent shoulder symmetry")
	} else {
		weakSpots = append(weakSpots, "Shoulder asymmetry detected - focus on unilateral training")
	}

	if hipDiff < 0.02 {
		strongSpots = append(strongSpots, "Good hip alignment")
	} else {
		weakSpots = append(weakSpots, "Hip imbalance - include corrective exercises")
	}

	bodyFat := BodyFatFromProportions(waistWidth, shoulderWidth)

	return entity.BodyAnalysis{
		Measurements: entity.Measurements{
			ShoulderWidth: round1(shoulderWidth),
			ChestWidth:    round1(chestWidth),
			WaistWidth:    round1(waistWidth),
			HipWidth:      round1(hipWidth),
			ArmLength:     round1(armLength),
			LegLength:     round1(legLength),
		},
		StrongSpots:        strongSpots,
		WeakSpots:          weakSpots,
		BodyFatEstimate:    round1(bodyFat),
		MuscleMassEstimate: round1(100 - bodyFat),
	}, nil
}

// BodyFatFromProportions is a monotonic function of the waist-to-
// shoulder ratio, clamped to realistic bounds. It is an estimate, not
// an independent measurement.
func BodyFatFromProportions(waistWidth, shoulderWidth float64) float64 {
	ratio := 1.0
	if shoulderWidth > 0 {
		ratio = waistWidth / shoulderWidth
	}

	bmiEstimate := 18 + (ratio-0.6)*15

	return math.Max(8, math.Min(25, bmiEstimate*0.8))
}

// BodyFatFromOverallScore is the bridge used when only a physique
// score is available, matching the bounds of the proportion estimate.
func BodyFatFromOverallScore(overall int) float64 {
	return math.Max(8, math.Min(25, 100-float64(overall)*0.2))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
