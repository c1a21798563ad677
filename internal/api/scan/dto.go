package scan

import (
	"PhysiqueGolang/internal/api/physique"
	"PhysiqueGolang/internal/entity"
	"PhysiqueGolang/pkg/pose"
)

// Client to server message types.
const (
	MessageStart   = "start"
	MessageFrame   = "frame"
	MessageCapture = "capture"
	MessageCancel  = "cancel"
)

// Server to client message types.
const (
	EventStarted   = "started"
	EventUpdate    = "update"
	EventCountdown = "countdown"
	EventPhase     = "phase"
	EventComplete  = "complete"
	EventCancelled = "cancelled"
	EventError     = "error"
)

type ClientMessage struct {
	Type      string              `json:"type"`
	Profile   *entity.UserProfile `json:"profile,omitempty"`
	Landmarks []pose.Landmark     `json:"landmarks,omitempty"`
}

type ServerMessage struct {
	Type       string                     `json:"type"`
	Score      int                        `json:"score,omitempty"`
	Message    string                     `json:"message,omitempty"`
	FramesHeld int                        `json:"frames_held,omitempty"`
	Armed      bool                       `json:"armed,omitempty"`
	Phase      string                     `json:"phase,omitempty"`
	PoseType   string                     `json:"pose_type,omitempty"`
	Countdown  int                        `json:"countdown,omitempty"`
	Result     *physique.AnalyzeResponse  `json:"result,omitempty"`
	Error      string                     `json:"error,omitempty"`
}

type FrameQualityRequest struct {
	PoseData []pose.Landmark `json:"pose_data" validate:"required,min=33"`
	PoseType string          `json:"pose_type" validate:"omitempty,oneof=front side"`
}

type FrameQualityResponse struct {
	Quality   pose.Quality   `json:"quality"`
	Readiness pose.Readiness `json:"readiness"`
}
