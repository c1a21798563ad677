package scanService

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"

	"PhysiqueGolang/internal/api/physique"
	"PhysiqueGolang/internal/api/scan"
	"PhysiqueGolang/internal/entity"
	"PhysiqueGolang/pkg/capture"
	"PhysiqueGolang/pkg/pose"
)

type stubPhysiqueService struct {
	analyzed []physique.AnalyzeRequest
	response physique.AnalyzeResponse
	err      error
}

func (s *stubPhysiqueService) Analyze(_ context.Context, req physique.AnalyzeRequest) (physique.AnalyzeResponse, error) {
	s.analyzed = append(s.analyzed, req)
	return s.response, s.err
}

func (s *stubPhysiqueService) Latest(_ context.Context, _ string) (entity.ScanResult, error) {
	return entity.ScanResult{}, nil
}

func (s *stubPhysiqueService) History(_ context.Context, _ string, _ int) (physique.HistoryResponse, error) {
	return physique.HistoryResponse{}, nil
}

func (s *stubPhysiqueService) Progression(_ context.Context, _ string) (physique.ProgressionResponse, error) {
	return physique.ProgressionResponse{}, nil
}

type stubLandmarkSource struct {
	frame pose.Frame
	err   error
}

func (s *stubLandmarkSource) ProcessPoseFrame(_ []byte) (pose.Frame, error) { return s.frame, s.err }
func (s *stubLandmarkSource) IsConnected() bool                            { return true }
func (s *stubLandmarkSource) Reconnect() error                             { return nil }
func (s *stubLandmarkSource) CloseConnections()                            {}

func goodFrame() pose.Frame {
	frame := make(pose.Frame, pose.NumLandmarks)
	for i := range frame {
		frame[i] = pose.Landmark{X: 0.5, Y: 0.5, Visibility: 0.9}
	}

	frame[pose.Nose] = pose.Landmark{X: 0.5, Y: 0.2, Visibility: 0.9}
	frame[pose.LeftShoulder] = pose.Landmark{X: 0.625, Y: 0.3, Visibility: 0.9}
	frame[pose.RightShoulder] = pose.Landmark{X: 0.375, Y: 0.3, Visibility: 0.9}
	frame[pose.LeftHip] = pose.Landmark{X: 0.5875, Y: 0.55, Visibility: 0.9}
	frame[pose.RightHip] = pose.Landmark{X: 0.4125, Y: 0.55, Visibility: 0.9}

	return frame
}

func newTestService(ps *stubPhysiqueService, ls *stubLandmarkSource) IScanService {
	cfg := capture.Config{
		FrameThreshold:     2,
		FrameRate:          30,
		AutoCaptureScore:   90,
		ManualCaptureScore: 70,
		CountdownSeconds:   1,
	}

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	return NewScanService(log, cfg, ls, ps)
}

func TestScanServiceObserve(t *testing.T) {
	svc := newTestService(&stubPhysiqueService{}, &stubLandmarkSource{})
	session := svc.NewSession(entity.UserProfile{Gender: entity.GenderMale})

	msg := svc.Observe(session, goodFrame())

	assert.Equal(t, scan.EventUpdate, msg.Type)
	assert.Equal(t, 100, msg.Score)
	assert.Equal(t, 1, msg.FramesHeld)
	assert.False(t, msg.Armed)
	assert.Equal(t, string(capture.PhaseAwaitingFront), msg.Phase)
	assert.Equal(t, string(pose.TypeFront), msg.PoseType)
}

func TestScanServiceFullFlow(t *testing.T) {
	ps := &stubPhysiqueService{response: physique.AnalyzeResponse{}}
	svc := newTestService(ps, &stubLandmarkSource{})
	session := svc.NewSession(entity.UserProfile{Gender: entity.GenderMale})
	ctx := context.Background()

	// No countdown running yet, ticks are silent.
	msg, err := svc.Tick(ctx, session)
	require.NoError(t, err)
	assert.Nil(t, msg)

	// Hold the front pose until the controller arms.
	svc.Observe(session, goodFrame())
	update := svc.Observe(session, goodFrame())
	require.True(t, update.Armed)
	assert.Equal(t, string(capture.PhaseCountdownFront), update.Phase)

	// The front countdown expiring moves the session to the side phase.
	msg, err = svc.Tick(ctx, session)
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, scan.EventPhase, msg.Type)
	assert.Equal(t, string(capture.PhaseAwaitingSide), msg.Phase)
	assert.Equal(t, string(pose.TypeSide), msg.PoseType)
	assert.Equal(t, "Front pose captured. Turn to your side.", msg.Message)

	svc.Observe(session, goodFrame())
	update = svc.Observe(session, goodFrame())
	require.True(t, update.Armed)

	// The side countdown expiring runs the analysis.
	msg, err = svc.Tick(ctx, session)
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, scan.EventComplete, msg.Type)
	assert.NotNil(t, msg.Result)

	require.Len(t, ps.analyzed, 1)
	assert.Equal(t, "male", ps.analyzed[0].Gender)
	assert.Len(t, ps.analyzed[0].FrontPose, pose.NumLandmarks)
	assert.Len(t, ps.analyzed[0].SidePose, pose.NumLandmarks)
}

func TestScanServiceManualCapture(t *testing.T) {
	ps := &stubPhysiqueService{}
	svc := newTestService(ps, &stubLandmarkSource{})
	session := svc.NewSession(entity.UserProfile{Gender: entity.GenderMale})
	ctx := context.Background()

	// Nothing observed yet.
	_, err := svc.ManualCapture(ctx, session)
	assert.ErrorIs(t, err, scan.ErrCaptureNotReady)

	svc.Observe(session, goodFrame())
	msg, err := svc.ManualCapture(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, scan.EventPhase, msg.Type)

	svc.Observe(session, goodFrame())
	msg, err = svc.ManualCapture(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, scan.EventComplete, msg.Type)

	// The session is spent after completion.
	_, err = svc.ManualCapture(ctx, session)
	assert.ErrorIs(t, err, scan.ErrSessionFinished)
}

func TestScanServiceCancel(t *testing.T) {
	svc := newTestService(&stubPhysiqueService{}, &stubLandmarkSource{})
	session := svc.NewSession(entity.UserProfile{Gender: entity.GenderMale})

	svc.Cancel(session)

	_, err := svc.ManualCapture(context.Background(), session)
	assert.ErrorIs(t, err, scan.ErrSessionFinished)
}

func TestScanServiceObserveImage(t *testing.T) {
	svc := newTestService(&stubPhysiqueService{}, &stubLandmarkSource{frame: goodFrame()})
	session := svc.NewSession(entity.UserProfile{Gender: entity.GenderMale})

	msg, err := svc.ObserveImage(session, []byte{0xff, 0xd8})
	require.NoError(t, err)
	assert.Equal(t, scan.EventUpdate, msg.Type)
	assert.Equal(t, 100, msg.Score)
}

func TestScanServiceObserveImageEstimationFailure(t *testing.T) {
	svc := newTestService(&stubPhysiqueService{}, &stubLandmarkSource{err: errors.New("connection reset")})
	session := svc.NewSession(entity.UserProfile{Gender: entity.GenderMale})

	_, err := svc.ObserveImage(session, []byte{0xff, 0xd8})
	assert.ErrorIs(t, err, scan.ErrPoseEstimation)
}

func TestScanServiceFrameQuality(t *testing.T) {
	svc := newTestService(&stubPhysiqueService{}, &stubLandmarkSource{})

	result := svc.FrameQuality(goodFrame(), "front")
	assert.Equal(t, "excellent", result.Quality.Grade)
	assert.True(t, result.Quality.IsValid)
	assert.Equal(t, 100, result.Readiness.Score)

	empty := svc.FrameQuality(nil, "side")
	assert.Equal(t, "none", empty.Quality.Grade)
	assert.Equal(t, 0, empty.Readiness.Score)
}
