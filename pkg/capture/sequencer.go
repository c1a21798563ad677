package capture

import (
	"PhysiqueGolang/internal/entity"
	"PhysiqueGolang/pkg/pose"
)

type Phase string

const (
	PhaseAwaitingFront  Phase = "awaiting_front"
	PhaseCountdownFront Phase = "countdown_front"
	PhaseAwaitingSide   Phase = "awaiting_side"
	PhaseCountdownSide  Phase = "countdown_side"
	PhaseComplete       Phase = "complete"
	PhaseCancelled      Phase = "cancelled"
)

// Completion carries both committed poses plus the profile supplied at
// session start. It is emitted exactly once per session.
type Completion struct {
	Front   pose.Frame
	Side    pose.Frame
	Profile entity.UserProfile
}

// Sequencer drives the two-phase scan: front pose first, then side.
// It owns the controller and the captured frames until completion, at
// which point the frames are handed off and the session is spent. A
// new scan needs a new sequencer.
type Sequencer struct {
	cfg        Config
	controller *Controller
	profile    entity.UserProfile

	phase Phase
	front pose.Frame
	side  pose.Frame
}

func NewSequencer(cfg Config, profile entity.UserProfile) *Sequencer {
	return &Sequencer{
		cfg:        cfg,
		controller: NewController(cfg),
		profile:    profile,
		phase:      PhaseAwaitingFront,
	}
}

func (s *Sequencer) Phase() Phase {
	return s.phase
}

// PoseType is the pose the readiness scorer should judge the incoming
// frames against in the current phase.
func (s *Sequencer) PoseType() pose.Type {
	switch s.phase {
	case PhaseAwaitingSide, PhaseCountdownSide:
		return pose.TypeSide
	default:
		return pose.TypeFront
	}
}

// Observe feeds one frame through the active controller. When the
// controller arms, the phase moves into its countdown.
func (s *Sequencer) Observe(frame pose.Frame, readiness pose.Readiness) Update {
	if s.terminal() {
		return Update{}
	}

	update := s.controller.Observe(frame, readiness)

	if update.Armed {
		switch s.phase {
		case PhaseAwaitingFront:
			s.phase = PhaseCountdownFront
		case PhaseAwaitingSide:
			s.phase = PhaseCountdownSide
		}
	}

	return update
}

// Tick advances the active countdown by one second. When the side
// countdown finalizes it returns the completion event; the front
// countdown finalizing advances the session to the side phase.
func (s *Sequencer) Tick() (int, *Completion) {
	if s.terminal() {
		return 0, nil
	}

	remaining, finalized := s.controller.Tick()
	if !finalized {
		return remaining, nil
	}

	return 0, s.advance()
}

// ManualCapture commits the latest frame if the instantaneous score
// allows it, skipping the countdown entirely.
func (s *Sequencer) ManualCapture() (*Completion, bool) {
	if s.terminal() {
		return nil, false
	}

	if _, ok := s.controller.ManualCapture(); !ok {
		return nil, false
	}

	return s.advance(), true
}

// Cancel aborts the session. No partial result is ever emitted.
func (s *Sequencer) Cancel() {
	if s.phase == PhaseComplete {
		return
	}

	s.phase = PhaseCancelled
	s.controller.Reset()
	s.front = nil
	s.side = nil
}

func (s *Sequencer) terminal() bool {
	return s.phase == PhaseComplete || s.phase == PhaseCancelled
}

func (s *Sequencer) advance() *Completion {
	switch s.phase {
	case PhaseAwaitingFront, PhaseCountdownFront:
		s.front = s.controller.Captured()
		s.controller.Reset()
		s.phase = PhaseAwaitingSide

		return nil
	case PhaseAwaitingSide, PhaseCountdownSide:
		s.side = s.controller.Captured()
		s.phase = PhaseComplete

		completion := &Completion{Front: s.front, Side: s.side, Profile: s.profile}
		s.front = nil
		s.side = nil

		return completion
	default:
		return nil
	}
}
