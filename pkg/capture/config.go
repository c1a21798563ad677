package capture

import (
	"os"
	"strconv"
)

// Config holds the capture thresholds. Every value can be overridden
// through the environment without touching the state machine itself.
type Config struct {
	// FrameThreshold is how many consecutive frames must score at or
	// above AutoCaptureScore before the pose is committed.
	FrameThreshold int
	// FrameRate is the assumed landmark source rate, used only to
	// phrase the hold-steady countdown in seconds.
	FrameRate int
	// AutoCaptureScore is the readiness bar for the automatic path.
	AutoCaptureScore int
	// ManualCaptureScore is the lower bar for a user-triggered capture.
	ManualCaptureScore int
	// CountdownSeconds is the display countdown after the frame is
	// already committed.
	CountdownSeconds int
}

func DefaultConfig() Config {
	return Config{
		FrameThreshold:     60,
		FrameRate:          30,
		AutoCaptureScore:   90,
		ManualCaptureScore: 70,
		CountdownSeconds:   3,
	}
}

func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	cfg.FrameThreshold = envInt("CAPTURE_FRAME_THRESHOLD", cfg.FrameThreshold)
	cfg.FrameRate = envInt("CAPTURE_FRAME_RATE", cfg.FrameRate)
	cfg.AutoCaptureScore = envInt("CAPTURE_AUTO_SCORE", cfg.AutoCaptureScore)
	cfg.ManualCaptureScore = envInt("CAPTURE_MANUAL_SCORE", cfg.ManualCaptureScore)
	cfg.CountdownSeconds = envInt("CAPTURE_COUNTDOWN_SECONDS", cfg.CountdownSeconds)

	return cfg
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}

	return value
}
