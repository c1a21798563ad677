package pose

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func standingFrame(visibility float64) Frame {
	frame := make(Frame, NumLandmarks)
	for i := range frame {
		frame[i] = Landmark{X: 0.5, Y: 0.5, Visibility: visibility}
	}

	frame[Nose] = Landmark{X: 0.5, Y: 0.2, Visibility: visibility}
	frame[LeftEar] = Landmark{X: 0.48, Y: 0.18, Visibility: visibility}
	frame[RightEar] = Landmark{X: 0.52, Y: 0.18, Visibility: visibility}
	frame[LeftShoulder] = Landmark{X: 0.625, Y: 0.3, Visibility: visibility}
	frame[RightShoulder] = Landmark{X: 0.375, Y: 0.3, Visibility: visibility}
	frame[LeftElbow] = Landmark{X: 0.65, Y: 0.45, Visibility: visibility}
	frame[RightElbow] = Landmark{X: 0.35, Y: 0.45, Visibility: visibility}
	frame[LeftWrist] = Landmark{X: 0.66, Y: 0.58, Visibility: visibility}
	frame[RightWrist] = Landmark{X: 0.34, Y: 0.58, Visibility: visibility}
	frame[LeftHip] = Landmark{X: 0.5875, Y: 0.55, Visibility: visibility}
	frame[RightHip] = Landmark{X: 0.4125, Y: 0.55, Visibility: visibility}
	frame[LeftKnee] = Landmark{X: 0.58, Y: 0.75, Visibility: visibility}
	frame[RightKnee] = Landmark{X: 0.42, Y: 0.75, Visibility: visibility}
	frame[LeftAnkle] = Landmark{X: 0.58, Y: 0.95, Visibility: visibility}
	frame[RightAnkle] = Landmark{X: 0.42, Y: 0.95, Visibility: visibility}

	return frame
}

func TestScoreReadinessPerfectFrame(t *testing.T) {
	result := ScoreReadiness(standingFrame(0.9), TypeFront)

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, "Perfect, hold steady", result.Message)
}

func TestScoreReadinessIncompleteFrame(t *testing.T) {
	result := ScoreReadiness(standingFrame(0.9)[:20], TypeFront)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, "No body detected", result.Message)
}

func TestScoreReadinessNilFrame(t *testing.T) {
	result := ScoreReadiness(nil, TypeFront)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, "No body detected", result.Message)
}

func TestScoreReadinessPartialVisibility(t *testing.T) {
	result := ScoreReadiness(standingFrame(0.7), TypeFront)

	assert.Equal(t, 80, result.Score)
	assert.Equal(t, "Good, step back so your full body is visible", result.Message)
}

func TestScoreReadinessLowVisibility(t *testing.T) {
	result := ScoreReadiness(standingFrame(0.5), TypeFront)

	assert.Equal(t, 60, result.Score)
	assert.Equal(t, "show more of your body", result.Message)
}

func TestScoreReadinessTiltedShoulders(t *testing.T) {
	frame := standingFrame(0.9)
	frame[RightShoulder].Y += 0.03

	result := ScoreReadiness(frame, TypeFront)

	assert.Equal(t, 85, result.Score)
	assert.Equal(t, "Good, face the camera directly", result.Message)
}

func TestScoreReadinessShouldersNotFacingCamera(t *testing.T) {
	frame := standingFrame(0.9)
	frame[RightShoulder].Y += 0.08

	result := ScoreReadiness(frame, TypeFront)

	assert.Equal(t, 70, result.Score)
	assert.Equal(t, "Good, turn to face the camera", result.Message)
}

func TestScoreReadinessSidePoseSkipsShoulderCheck(t *testing.T) {
	frame := standingFrame(0.9)
	frame[RightShoulder].Y += 0.08

	result := ScoreReadiness(frame, TypeSide)

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, "Perfect, hold steady", result.Message)
}

func TestScoreReadinessLeaning(t *testing.T) {
	frame := standingFrame(0.9)
	frame[Nose].X = 0.62

	result := ScoreReadiness(frame, TypeFront)

	assert.Equal(t, 85, result.Score)
	assert.Equal(t, "Good, stand up straight", result.Message)
}

func TestScoreReadinessSlouching(t *testing.T) {
	frame := standingFrame(0.9)
	frame[Nose].X = 0.7

	result := ScoreReadiness(frame, TypeFront)

	assert.Equal(t, 70, result.Score)
	assert.Equal(t, "Good, stand upright", result.Message)
}

func TestGradeFrame(t *testing.T) {
	excellent := GradeFrame(standingFrame(0.9))
	assert.Equal(t, "excellent", excellent.Grade)
	assert.True(t, excellent.IsValid)

	good := GradeFrame(standingFrame(0.7))
	assert.Equal(t, "good", good.Grade)
	assert.True(t, good.IsValid)

	poor := GradeFrame(standingFrame(0.4))
	assert.Equal(t, "poor", poor.Grade)
	assert.False(t, poor.IsValid)

	none := GradeFrame(nil)
	assert.Equal(t, "none", none.Grade)
	assert.False(t, none.IsValid)
}

func TestStable(t *testing.T) {
	prev := standingFrame(0.9)

	curr := prev.Clone()
	assert.True(t, Stable(prev, curr))

	curr[LeftShoulder].X += 0.08
	assert.False(t, Stable(prev, curr))

	assert.False(t, Stable(nil, curr))
}
