package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PhysiqueGolang/pkg/pose"
)

func testConfig() Config {
	return Config{
		FrameThreshold:     3,
		FrameRate:          30,
		AutoCaptureScore:   90,
		ManualCaptureScore: 70,
		CountdownSeconds:   2,
	}
}

func testFrame(x float64) pose.Frame {
	frame := make(pose.Frame, pose.NumLandmarks)
	for i := range frame {
		frame[i] = pose.Landmark{X: x, Y: 0.5, Visibility: 0.9}
	}

	return frame
}

func TestControllerArmsAfterThreshold(t *testing.T) {
	ctrl := NewController(testConfig())

	for i := 0; i < 2; i++ {
		update := ctrl.Observe(testFrame(0.5), pose.Readiness{Score: 95})
		assert.False(t, update.Armed)
		assert.Equal(t, i+1, update.FramesHeld)
	}

	update := ctrl.Observe(testFrame(0.5), pose.Readiness{Score: 95})
	assert.True(t, update.Armed)
	assert.Equal(t, 3, update.FramesHeld)
	assert.Equal(t, "Capturing in 2", update.Message)
	require.NotNil(t, ctrl.Captured())
}

func TestControllerLowScoreResetsStreak(t *testing.T) {
	ctrl := NewController(testConfig())

	ctrl.Observe(testFrame(0.5), pose.Readiness{Score: 95})
	ctrl.Observe(testFrame(0.5), pose.Readiness{Score: 95})

	update := ctrl.Observe(testFrame(0.5), pose.Readiness{Score: 89, Message: "Good, stand up straight"})
	assert.False(t, update.Armed)
	assert.Equal(t, 0, update.FramesHeld)
	assert.Equal(t, "Good, stand up straight", update.Message)

	// The streak starts over from zero.
	update = ctrl.Observe(testFrame(0.5), pose.Readiness{Score: 95})
	assert.Equal(t, 1, update.FramesHeld)
}

func TestControllerHoldMessage(t *testing.T) {
	cfg := testConfig()
	cfg.FrameThreshold = 60
	ctrl := NewController(cfg)

	update := ctrl.Observe(testFrame(0.5), pose.Readiness{Score: 95})
	assert.Equal(t, "Hold steady for 2s", update.Message)
}

func TestControllerIgnoresFramesWhileArmed(t *testing.T) {
	ctrl := NewController(testConfig())

	for i := 0; i < 3; i++ {
		ctrl.Observe(testFrame(0.5), pose.Readiness{Score: 95})
	}
	require.True(t, ctrl.Armed())

	committed := ctrl.Captured()

	// A terrible frame during the countdown must not disturb the
	// committed pose.
	update := ctrl.Observe(testFrame(0.9), pose.Readiness{Score: 10})
	assert.True(t, update.Armed)
	assert.Equal(t, committed[0].X, ctrl.Captured()[0].X)
}

func TestControllerTickCountdown(t *testing.T) {
	ctrl := NewController(testConfig())

	remaining, finalized := ctrl.Tick()
	assert.Equal(t, 0, remaining)
	assert.False(t, finalized)

	for i := 0; i < 3; i++ {
		ctrl.Observe(testFrame(0.5), pose.Readiness{Score: 95})
	}

	remaining, finalized = ctrl.Tick()
	assert.Equal(t, 1, remaining)
	assert.False(t, finalized)

	remaining, finalized = ctrl.Tick()
	assert.Equal(t, 0, remaining)
	assert.True(t, finalized)

	// Further ticks after finalizing are no-ops.
	_, finalized = ctrl.Tick()
	assert.False(t, finalized)
}

func TestControllerManualCapture(t *testing.T) {
	ctrl := NewController(testConfig())

	// Nothing observed yet, nothing to commit.
	_, ok := ctrl.ManualCapture()
	assert.False(t, ok)

	ctrl.Observe(testFrame(0.5), pose.Readiness{Score: 65})
	_, ok = ctrl.ManualCapture()
	assert.False(t, ok)

	ctrl.Observe(testFrame(0.5), pose.Readiness{Score: 75})
	frame, ok := ctrl.ManualCapture()
	require.True(t, ok)
	assert.True(t, frame.Complete())
	assert.True(t, ctrl.Armed())

	// A second manual capture on an armed controller is rejected.
	_, ok = ctrl.ManualCapture()
	assert.False(t, ok)
}

func TestControllerReset(t *testing.T) {
	ctrl := NewController(testConfig())

	for i := 0; i < 3; i++ {
		ctrl.Observe(testFrame(0.5), pose.Readiness{Score: 95})
	}
	require.True(t, ctrl.Armed())

	ctrl.Reset()
	assert.False(t, ctrl.Armed())
	assert.Nil(t, ctrl.Captured())
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("CAPTURE_FRAME_THRESHOLD", "45")
	t.Setenv("CAPTURE_AUTO_SCORE", "not-a-number")
	t.Setenv("CAPTURE_COUNTDOWN_SECONDS", "-1")

	cfg := ConfigFromEnv()
	assert.Equal(t, 45, cfg.FrameThreshold)
	assert.Equal(t, DefaultConfig().AutoCaptureScore, cfg.AutoCaptureScore)
	assert.Equal(t, DefaultConfig().CountdownSeconds, cfg.CountdownSeconds)
}
