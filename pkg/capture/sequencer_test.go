package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PhysiqueGolang/internal/entity"
	"PhysiqueGolang/pkg/pose"
)

func driveToArmed(t *testing.T, seq *Sequencer, x float64) {
	t.Helper()

	for i := 0; i < testConfig().FrameThreshold; i++ {
		seq.Observe(testFrame(x), pose.Readiness{Score: 95})
	}
}

func drainCountdown(t *testing.T, seq *Sequencer) *Completion {
	t.Helper()

	for i := 0; i < testConfig().CountdownSeconds; i++ {
		if _, completion := seq.Tick(); completion != nil {
			return completion
		}
	}

	return nil
}

func TestSequencerFullScan(t *testing.T) {
	profile := entity.UserProfile{Gender: entity.GenderMale}
	seq := NewSequencer(testConfig(), profile)

	assert.Equal(t, PhaseAwaitingFront, seq.Phase())
	assert.Equal(t, pose.TypeFront, seq.PoseType())

	driveToArmed(t, seq, 0.4)
	assert.Equal(t, PhaseCountdownFront, seq.Phase())

	completion := drainCountdown(t, seq)
	assert.Nil(t, completion)
	assert.Equal(t, PhaseAwaitingSide, seq.Phase())
	assert.Equal(t, pose.TypeSide, seq.PoseType())

	driveToArmed(t, seq, 0.6)
	assert.Equal(t, PhaseCountdownSide, seq.Phase())

	completion = drainCountdown(t, seq)
	require.NotNil(t, completion)
	assert.Equal(t, PhaseComplete, seq.Phase())

	assert.Equal(t, profile, completion.Profile)
	assert.Equal(t, 0.4, completion.Front[0].X)
	assert.Equal(t, 0.6, completion.Side[0].X)
}

func TestSequencerManualCaptureSkipsCountdown(t *testing.T) {
	seq := NewSequencer(testConfig(), entity.UserProfile{Gender: entity.GenderMale})

	seq.Observe(testFrame(0.4), pose.Readiness{Score: 75})
	completion, ok := seq.ManualCapture()
	require.True(t, ok)
	assert.Nil(t, completion)
	assert.Equal(t, PhaseAwaitingSide, seq.Phase())

	seq.Observe(testFrame(0.6), pose.Readiness{Score: 75})
	completion, ok = seq.ManualCapture()
	require.True(t, ok)
	require.NotNil(t, completion)
	assert.Equal(t, PhaseComplete, seq.Phase())
	assert.Equal(t, 0.4, completion.Front[0].X)
	assert.Equal(t, 0.6, completion.Side[0].X)
}

func TestSequencerManualCaptureBelowBar(t *testing.T) {
	seq := NewSequencer(testConfig(), entity.UserProfile{Gender: entity.GenderMale})

	seq.Observe(testFrame(0.4), pose.Readiness{Score: 60})
	completion, ok := seq.ManualCapture()
	assert.False(t, ok)
	assert.Nil(t, completion)
	assert.Equal(t, PhaseAwaitingFront, seq.Phase())
}

func TestSequencerCancel(t *testing.T) {
	seq := NewSequencer(testConfig(), entity.UserProfile{Gender: entity.GenderMale})

	driveToArmed(t, seq, 0.4)
	drainCountdown(t, seq)
	require.Equal(t, PhaseAwaitingSide, seq.Phase())

	seq.Cancel()
	assert.Equal(t, PhaseCancelled, seq.Phase())

	// A cancelled session is spent; nothing it is fed matters anymore.
	update := seq.Observe(testFrame(0.6), pose.Readiness{Score: 95})
	assert.Equal(t, Update{}, update)

	_, completion := seq.Tick()
	assert.Nil(t, completion)

	completion, ok := seq.ManualCapture()
	assert.False(t, ok)
	assert.Nil(t, completion)
}

func TestSequencerCancelAfterCompleteIsNoop(t *testing.T) {
	seq := NewSequencer(testConfig(), entity.UserProfile{Gender: entity.GenderMale})

	seq.Observe(testFrame(0.4), pose.Readiness{Score: 95})
	_, ok := seq.ManualCapture()
	require.True(t, ok)
	seq.Observe(testFrame(0.6), pose.Readiness{Score: 95})
	completion, ok := seq.ManualCapture()
	require.True(t, ok)
	require.NotNil(t, completion)

	seq.Cancel()
	assert.Equal(t, PhaseComplete, seq.Phase())
}
