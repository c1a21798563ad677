package scanService

import (
	"PhysiqueGolang/internal/api/physique"
	"PhysiqueGolang/internal/api/scan"
	"PhysiqueGolang/internal/entity"
	"PhysiqueGolang/pkg/capture"
	"PhysiqueGolang/pkg/pose"
	"sync"

	"golang.org/x/net/context"
)

// Session is the per-connection scan state. All methods on the service
// that take a session are safe to call from the read loop and the tick
// goroutine concurrently.
type Session struct {
	mu        sync.Mutex
	sequencer *capture.Sequencer
	profile   entity.UserProfile
}

func (s *scanService) NewSession(profile entity.UserProfile) *Session {
	return &Session{
		sequencer: capture.NewSequencer(s.cfg, profile),
		profile:   profile,
	}
}

func (s *scanService) Observe(session *Session, poseData []pose.Landmark) scan.ServerMessage {
	session.mu.Lock()
	defer session.mu.Unlock()

	frame := pose.Frame(poseData)
	poseType := session.sequencer.PoseType()
	readiness := pose.ScoreReadiness(frame, poseType)
	update := session.sequencer.Observe(frame, readiness)

	return scan.ServerMessage{
		Type:       scan.EventUpdate,
		Score:      update.Score,
		Message:    update.Message,
		FramesHeld: update.FramesHeld,
		Armed:      update.Armed,
		Phase:      string(session.sequencer.Phase()),
		PoseType:   string(poseType),
	}
}

func (s *scanService) ObserveImage(session *Session, frame []byte) (scan.ServerMessage, error) {
	detected, err := s.landmarkSource.ProcessPoseFrame(frame)
	if err != nil {
		return scan.ServerMessage{}, scan.ErrPoseEstimation
	}

	return s.Observe(session, detected), nil
}

// Tick advances the active countdown by one second. It returns nil when
// no countdown is running. When the final countdown expires the scan is
// analyzed and the completion message carries the result.
func (s *scanService) Tick(ctx context.Context, session *Session) (*scan.ServerMessage, error) {
	session.mu.Lock()

	phase := session.sequencer.Phase()
	if phase != capture.PhaseCountdownFront && phase != capture.PhaseCountdownSide {
		session.mu.Unlock()
		return nil, nil
	}

	remaining, completion := session.sequencer.Tick()
	newPhase := session.sequencer.Phase()
	poseType := session.sequencer.PoseType()
	session.mu.Unlock()

	if completion != nil {
		return s.complete(ctx, completion)
	}

	if newPhase != phase {
		return &scan.ServerMessage{
			Type:     scan.EventPhase,
			Phase:    string(newPhase),
			PoseType: string(poseType),
			Message:  "Front pose captured. Turn to your side.",
		}, nil
	}

	return &scan.ServerMessage{
		Type:      scan.EventCountdown,
		Countdown: remaining,
		Phase:     string(newPhase),
		PoseType:  string(poseType),
	}, nil
}

func (s *scanService) ManualCapture(ctx context.Context, session *Session) (scan.ServerMessage, error) {
	session.mu.Lock()

	phase := session.sequencer.Phase()
	if phase == capture.PhaseComplete || phase == capture.PhaseCancelled {
		session.mu.Unlock()
		return scan.ServerMessage{}, scan.ErrSessionFinished
	}

	completion, ok := session.sequencer.ManualCapture()
	newPhase := session.sequencer.Phase()
	poseType := session.sequencer.PoseType()
	session.mu.Unlock()

	if !ok {
		return scan.ServerMessage{}, scan.ErrCaptureNotReady
	}

	if completion != nil {
		msg, err := s.complete(ctx, completion)
		if err != nil {
			return scan.ServerMessage{}, err
		}
		return *msg, nil
	}

	return scan.ServerMessage{
		Type:     scan.EventPhase,
		Phase:    string(newPhase),
		PoseType: string(poseType),
		Message:  "Front pose captured. Turn to your side.",
	}, nil
}

func (s *scanService) Cancel(session *Session) {
	session.mu.Lock()
	defer session.mu.Unlock()

	session.sequencer.Cancel()
}

func (s *scanService) FrameQuality(poseData []pose.Landmark, poseType string) scan.FrameQualityResponse {
	frame := pose.Frame(poseData)

	pt := pose.TypeFront
	if poseType == string(pose.TypeSide) {
		pt = pose.TypeSide
	}

	return scan.FrameQualityResponse{
		Quality:   pose.GradeFrame(frame),
		Readiness: pose.ScoreReadiness(frame, pt),
	}
}

func (s *scanService) complete(ctx context.Context, completion *capture.Completion) (*scan.ServerMessage, error) {
	req := physique.AnalyzeRequest{
		FrontPose: completion.Front,
		SidePose:  completion.Side,
		Gender:    string(completion.Profile.Gender),
		HeightCm:  completion.Profile.HeightCm,
	}

	result, err := s.physiqueService.Analyze(ctx, req)
	if err != nil {
		return nil, err
	}

	return &scan.ServerMessage{
		Type:   scan.EventComplete,
		Phase:  string(capture.PhaseComplete),
		Result: &result,
	}, nil
}
