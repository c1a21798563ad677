package scoring

import (
	"fmt"
	"math"
	"sort"

	"PhysiqueGolang/internal/entity"
	"PhysiqueGolang/pkg/pose"
)

// UnsupportedGenderError marks the scoring paths that are not built
// yet. It must never be coerced into a numeric score.
type UnsupportedGenderError struct {
	Gender entity.Gender
}

func (e *UnsupportedGenderError) Error() string {
	return fmt.Sprintf("physique scoring for %q is not yet supported", e.Gender)
}

var ErrIncompleteFrame = fmt.Errorf("pose frame must contain %d landmarks", pose.NumLandmarks)

// categoryOrder fixes the iteration order for insight selection so the
// result is deterministic regardless of map ordering.
var categoryOrder = []string{"shoulders", "v_taper", "chest", "core", "symmetry", "posture", "arms"}

// ScorePhysique turns a front and side pose into category scores, an
// overall score, and human-readable classifications. Identical inputs
// always produce identical output.
func ScorePhysique(front, side pose.Frame, profile entity.UserProfile) (entity.PhysiqueScore, error) {
	if !front.Complete() || !side.Complete() {
		return entity.PhysiqueScore{}, ErrIncompleteFrame
	}

	switch profile.Gender {
	case entity.GenderMale:
		return scoreMale(front, side), nil
	case entity.GenderFemale, entity.GenderNonBinary:
		return entity.PhysiqueScore{}, &UnsupportedGenderError{Gender: profile.Gender}
	default:
		return entity.PhysiqueScore{}, fmt.Errorf("invalid gender: %q", profile.Gender)
	}
}

func scoreMale(front, side pose.Frame) entity.PhysiqueScore {
	scores := make(map[string]float64, len(categoryOrder))

	var strong, growth []entity.CategoryArea

	shoulderWidth := pose.Distance(front[pose.LeftShoulder], front[pose.RightShoulder])
	hipWidth := pose.Distance(front[pose.LeftHip], front[pose.RightHip])

	shoulderHipRatio := 1.0
	if hipWidth > 0 {
		shoulderHipRatio = shoulderWidth / hipWidth
	}

	switch {
	case shoulderHipRatio >= 1.45:
		scores["shoulders"] = math.Min(100, 85+(shoulderHipRatio-1.45)*50)
		strong = append(strong, area("Shoulders", scores["shoulders"], "Outstanding shoulder width - exceptional frame"))
	case shoulderHipRatio >= 1.35:
		scores["shoulders"] = 75 + (shoulderHipRatio-1.35)*100
		strong = append(strong, area("Shoulders", scores["shoulders"], "Excellent shoulder development"))
	case shoulderHipRatio >= 1.25:
		scores["shoulders"] = 65 + (shoulderHipRatio-1.25)*100
	case shoulderHipRatio >= 1.15:
		scores["shoulders"] = 55 + (shoulderHipRatio-1.15)*100
		growth = append(growth, area("Shoulders", scores["shoulders"], "Build shoulder width with lateral raises and overhead press"))
	default:
		scores["shoulders"] = math.Max(40, 40+shoulderHipRatio*10)
		growth = append(growth, area("Shoulders", scores["shoulders"], "Focus on shoulder width training - high priority"))
	}

	// Waist is estimated as a fixed fraction of hip width; there is no
	// direct waist landmark.
	waistWidth := hipWidth * 0.75

	vTaperRatio := 1.0
	if waistWidth > 0 {
		vTaperRatio = shoulderWidth / waistWidth
	}

	switch {
	case vTaperRatio >= 1.8:
		scores["v_taper"] = math.Min(100, 90+(vTaperRatio-1.8)*25)
		strong = append(strong, area("V-Taper", scores["v_taper"], "Elite V-taper physique - competition level"))
	case vTaperRatio >= 1.6:
		scores["v_taper"] = 75 + (vTaperRatio-1.6)*75
		strong = append(strong, area("V-Taper", scores["v_taper"], "Strong shoulder-to-waist ratio"))
	case vTaperRatio >= 1.4:
		scores["v_taper"] = 60 + (vTaperRatio-1.4)*75
	default:
		scores["v_taper"] = math.Max(45, vTaperRatio*35)
		if scores["v_taper"] < 65 {
			growth = append(growth, area("V-Taper", scores["v_taper"], "Build wider shoulders and tighter core"))
		}
	}

	waistShoulderRatio := 1.0
	if shoulderWidth > 0 {
		waistShoulderRatio = waistWidth / shoulderWidth
	}

	switch {
	case waistShoulderRatio <= 0.55:
		scores["core"] = math.Min(100, 95+(0.55-waistShoulderRatio)*100)
		strong = append(strong, area("Core", scores["core"], "Exceptional core definition and leanness"))
	case waistShoulderRatio <= 0.65:
		scores["core"] = 80 + (0.65-waistShoulderRatio)*150
		strong = append(strong, area("Core", scores["core"], "Well-defined midsection"))
	case waistShoulderRatio <= 0.75:
		scores["core"] = 65 + (0.75-waistShoulderRatio)*150
	default:
		scores["core"] = math.Max(45, 100-waistShoulderRatio*50)
		growth = append(growth, area("Core", scores["core"], "Focus on core training and body fat reduction"))
	}

	shoulderImbalance := math.Abs(front[pose.LeftShoulder].Y - front[pose.RightShoulder].Y)
	hipImbalance := math.Abs(front[pose.LeftHip].Y - front[pose.RightHip].Y)
	totalImbalance := (shoulderImbalance + hipImbalance) / 2

	switch {
	case totalImbalance < 0.015:
		scores["symmetry"] = 95 + (0.015-totalImbalance)*333
		strong = append(strong, area("Symmetry", scores["symmetry"], "Perfect left-right balance"))
	case totalImbalance < 0.03:
		scores["symmetry"] = 80 + (0.03-totalImbalance)*1000
	case totalImbalance < 0.05:
		scores["symmetry"] = 65 + (0.05-totalImbalance)*750
	default:
		scores["symmetry"] = math.Max(50, 100-totalImbalance*800)
		if scores["symmetry"] < 70 {
			growth = append(growth, area("Symmetry", scores["symmetry"], "Include unilateral exercises to balance development"))
		}
	}

	chestWidthEstimate := shoulderWidth * 0.85
	torsoHeight := pose.Distance(front[pose.Nose], front[pose.LeftHip])

	chestTorsoRatio := 1.0
	if torsoHeight > 0 {
		chestTorsoRatio = chestWidthEstimate / torsoHeight
	}

	switch {
	case chestTorsoRatio >= 0.45:
		scores["chest"] = math.Min(100, 85+(chestTorsoRatio-0.45)*200)
		strong = append(strong, area("Chest", scores["chest"], "Well-developed chest"))
	case chestTorsoRatio >= 0.35:
		scores["chest"] = 65 + (chestTorsoRatio-0.35)*200
	default:
		scores["chest"] = math.Max(50, chestTorsoRatio*180)
		if scores["chest"] < 65 {
			growth = append(growth, area("Chest", scores["chest"], "Build chest size with bench press variations"))
		}
	}

	headForward := math.Abs(side[pose.Nose].X - side[pose.LeftShoulder].X)
	verticalAlignment := math.Abs(side[pose.LeftShoulder].X - side[pose.LeftAnkle].X)
	postureDeviation := (headForward*2 + verticalAlignment) / 3

	switch {
	case postureDeviation < 0.08:
		scores["posture"] = 90 + (0.08-postureDeviation)*125
		strong = append(strong, area("Posture", scores["posture"], "Excellent upright posture"))
	case postureDeviation < 0.15:
		scores["posture"] = 70 + (0.15-postureDeviation)*285
	default:
		scores["posture"] = math.Max(50, 100-postureDeviation*300)
		if scores["posture"] < 70 {
			growth = append(growth, area("Posture", scores["posture"], "Work on posture - include back strengthening exercises"))
		}
	}

	armLength := pose.Distance(front[pose.LeftShoulder], front[pose.LeftWrist])
	legLength := pose.Distance(front[pose.LeftHip], front[pose.LeftAnkle])

	armLegRatio := 1.0
	if legLength > 0 {
		armLegRatio = armLength / legLength
	}

	// Ideal arm-to-leg ratio sits around 0.5.
	armScoreBase := 100 - math.Abs(armLegRatio-0.5)*200
	scores["arms"] = math.Max(60, math.Min(85, armScoreBase))

	if scores["arms"] < 75 {
		growth = append(growth, area("Arms", scores["arms"], "Increase arm size with curls and tricep work"))
	}

	overall := scores["shoulders"]*0.20 +
		scores["v_taper"]*0.18 +
		scores["chest"]*0.15 +
		scores["core"]*0.15 +
		scores["symmetry"]*0.12 +
		scores["posture"]*0.10 +
		scores["arms"]*0.10

	bodyType, bodyDescription := classifyBody(overall)

	rounded := make(map[string]int, len(scores)+1)
	for _, name := range categoryOrder {
		rounded[name] = clampScore(scores[name])
	}
	rounded["overall"] = clampScore(overall)

	sort.SliceStable(strong, func(i, j int) bool { return strong[i].Score > strong[j].Score })
	sort.SliceStable(growth, func(i, j int) bool { return growth[i].Score < growth[j].Score })

	return entity.PhysiqueScore{
		OverallScore:    rounded["overall"],
		Scores:          rounded,
		BodyType:        bodyType,
		BodyDescription: bodyDescription,
		Frame:           classifyFrame(shoulderHipRatio),
		StrongAreas:     topN(strong, 3),
		GrowthAreas:     topN(growth, 3),
		KeyInsight:      keyInsight(rounded),
	}
}

func classifyBody(overall float64) (string, string) {
	switch {
	case overall >= 85:
		return "Elite Physique", "Competition-level development"
	case overall >= 75:
		return "Athletic", "Strong, well-developed physique"
	case overall >= 65:
		return "Above Average", "Good muscle development"
	case overall >= 55:
		return "Average", "Solid foundation to build on"
	default:
		return "Beginner", "Great potential for improvement"
	}
}

func classifyFrame(shoulderHipRatio float64) string {
	switch {
	case shoulderHipRatio >= 1.4:
		return "Wide Frame"
	case shoulderHipRatio >= 1.25:
		return "Athletic Frame"
	case shoulderHipRatio >= 1.15:
		return "Medium Frame"
	default:
		return "Narrow Frame"
	}
}

func area(name string, score float64, description string) entity.CategoryArea {
	return entity.CategoryArea{Name: name, Score: clampScore(score), Description: description}
}

func clampScore(v float64) int {
	rounded := int(math.Round(v))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}

	return rounded
}

func topN(areas []entity.CategoryArea, n int) []entity.CategoryArea {
	if len(areas) > n {
		areas = areas[:n]
	}

	return areas
}
