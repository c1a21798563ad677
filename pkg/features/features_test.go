package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PhysiqueGolang/internal/entity"
	"PhysiqueGolang/pkg/pose"
)

func standingFrame() pose.Frame {
	frame := make(pose.Frame, pose.NumLandmarks)
	for i := range frame {
		frame[i] = pose.Landmark{X: 0.5, Y: 0.5, Visibility: 0.9}
	}

	frame[pose.Nose] = pose.Landmark{X: 0.5, Y: 0.2, Visibility: 0.9}
	frame[pose.LeftEar] = pose.Landmark{X: 0.48, Y: 0.18, Visibility: 0.9}
	frame[pose.RightEar] = pose.Landmark{X: 0.52, Y: 0.18, Visibility: 0.9}
	frame[pose.LeftShoulder] = pose.Landmark{X: 0.625, Y: 0.3, Visibility: 0.9}
	frame[pose.RightShoulder] = pose.Landmark{X: 0.375, Y: 0.3, Visibility: 0.9}
	frame[pose.LeftWrist] = pose.Landmark{X: 0.66, Y: 0.58, Visibility: 0.9}
	frame[pose.RightWrist] = pose.Landmark{X: 0.34, Y: 0.58, Visibility: 0.9}
	frame[pose.LeftHip] = pose.Landmark{X: 0.5875, Y: 0.55, Visibility: 0.9}
	frame[pose.RightHip] = pose.Landmark{X: 0.4125, Y: 0.55, Visibility: 0.9}
	frame[pose.LeftAnkle] = pose.Landmark{X: 0.58, Y: 0.95, Visibility: 0.9}
	frame[pose.RightAnkle] = pose.Landmark{X: 0.42, Y: 0.95, Visibility: 0.9}

	return frame
}

func TestExtract(t *testing.T) {
	front := standingFrame()
	side := standingFrame()

	features, err := Extract(front, side, entity.GenderMale)
	require.NoError(t, err)

	assert.Equal(t, 0.25, features.RawMeasurements["shoulder_width"])
	assert.Equal(t, 0.175, features.RawMeasurements["hip_width"])
	assert.Equal(t, 0.2528, features.RawMeasurements["torso_length"])
	assert.Equal(t, 0.4001, features.RawMeasurements["leg_length"])
	assert.Equal(t, 0.75, features.RawMeasurements["body_height"])

	assert.Equal(t, 1.429, features.Ratios["shoulder_hip_ratio"])
	assert.Equal(t, 1.681, features.Ratios["shoulder_waist_ratio"])
	assert.Equal(t, 0.632, features.Ratios["torso_leg_ratio"])
	assert.Equal(t, 1.0, features.Ratios["symmetry"])

	assert.Equal(t, 91, features.Scores["vtaper"])
	assert.Equal(t, 100, features.Scores["symmetry"])
	assert.Equal(t, 64, features.Scores["posture"])
	assert.Equal(t, 82, features.Scores["overall"])

	assert.Contains(t, features.Insights, "Excellent shoulder-to-hip ratio indicating good V-taper")
	assert.Contains(t, features.Insights, "Excellent left-right body symmetry")
	assert.Contains(t, features.Insights, "Some postural issues - focus on core and back strengthening")

	areas := make([]string, 0, len(features.FocusAreas))
	for _, area := range features.FocusAreas {
		areas = append(areas, area.Area)
	}
	assert.Equal(t, []string{"posture", "chest", "arms"}, areas)
}

func TestExtractIncompleteFront(t *testing.T) {
	features, err := Extract(standingFrame()[:10], standingFrame(), entity.GenderMale)

	assert.ErrorIs(t, err, pose.ErrNoDetection)
	assert.Equal(t, 70, features.Scores["overall"])
	assert.Equal(t, []string{"Unable to fully analyze - using baseline assessment"}, features.Insights)
	require.Len(t, features.FocusAreas, 1)
	assert.Equal(t, "general fitness", features.FocusAreas[0].Area)
}

func TestExtractFemaleFocusAreas(t *testing.T) {
	features, err := Extract(standingFrame(), standingFrame(), entity.GenderFemale)
	require.NoError(t, err)

	areas := make(map[string]bool, len(features.FocusAreas))
	for _, area := range features.FocusAreas {
		areas[area.Area] = true
	}
	assert.True(t, areas["glutes"])
	assert.True(t, areas["core"])
	assert.False(t, areas["chest"])
}

func TestPostureScoreIncompleteSide(t *testing.T) {
	assert.Equal(t, 70.0, PostureScore(nil))
}

func TestPathwayPrompt(t *testing.T) {
	features, err := Extract(standingFrame(), standingFrame(), entity.GenderMale)
	require.NoError(t, err)

	age := 30
	height := 182.0
	profile := entity.UserProfile{Gender: entity.GenderMale, Age: &age, HeightCm: &height}

	prompt := PathwayPrompt(features, profile, 30)

	assert.Contains(t, prompt, "- Gender: male")
	assert.Contains(t, prompt, "- Age: 30")
	assert.Contains(t, prompt, "- Height: 182cm")
	assert.Contains(t, prompt, "- Commitment: 30 days")
	assert.Contains(t, prompt, "- Overall Score: 82/100")
	assert.Contains(t, prompt, "- Shoulder-to-Hip Ratio: 1.429")
	assert.Contains(t, prompt, "POSTURE (medium priority)")
	assert.Contains(t, prompt, "Format as JSON array of daily stages.")

	defaults := PathwayPrompt(features, entity.UserProfile{Gender: entity.GenderMale}, 30)
	assert.Contains(t, defaults, "- Age: 25")
	assert.Contains(t, defaults, "- Height: 175cm")
}
