package capture

import (
	"fmt"
	"math"

	"PhysiqueGolang/pkg/pose"
)

// Controller turns the noisy per-frame readiness signal into a single
// capture decision. A pose is committed only after the score has held
// at or above the auto-capture bar for a full run of consecutive
// frames; the countdown that follows is feedback only, the frame is
// already fixed by then.
type Controller struct {
	cfg Config

	framesHeld         int
	armed              bool
	countdownRemaining int

	lastFrame pose.Frame
	lastScore int
	captured  pose.Frame
}

// Update is what the controller reports back after each observed frame.
type Update struct {
	Score      int    `json:"score"`
	Message    string `json:"message"`
	FramesHeld int    `json:"framesHeld"`
	Armed      bool   `json:"armed"`
}

func NewController(cfg Config) *Controller {
	return &Controller{cfg: cfg}
}

// Observe advances the controller with one frame and its readiness
// verdict. Once armed the controller ignores further frames: the
// committed pose is the frame seen at the instant the threshold was
// reached, so motion during the countdown cannot invalidate it.
func (c *Controller) Observe(frame pose.Frame, readiness pose.Readiness) Update {
	if c.armed {
		return Update{
			Score:      readiness.Score,
			Message:    c.countdownMessage(),
			FramesHeld: c.framesHeld,
			Armed:      true,
		}
	}

	c.lastFrame = frame.Clone()
	c.lastScore = readiness.Score

	if readiness.Score < c.cfg.AutoCaptureScore {
		c.framesHeld = 0
		c.countdownRemaining = 0

		return Update{Score: readiness.Score, Message: readiness.Message}
	}

	c.framesHeld++
	if c.framesHeld < c.cfg.FrameThreshold {
		return Update{
			Score:      readiness.Score,
			Message:    c.holdMessage(),
			FramesHeld: c.framesHeld,
		}
	}

	// The threshold frame itself is the committed pose.
	c.captured = frame.Clone()
	c.armed = true
	c.countdownRemaining = c.cfg.CountdownSeconds

	return Update{
		Score:      readiness.Score,
		Message:    c.countdownMessage(),
		FramesHeld: c.framesHeld,
		Armed:      true,
	}
}

// Tick advances the display countdown by one wall-clock second. It
// reports the seconds remaining and whether the capture just
// finalized. Ticks before arming are ignored.
func (c *Controller) Tick() (int, bool) {
	if !c.armed || c.countdownRemaining <= 0 {
		return 0, false
	}

	c.countdownRemaining--

	return c.countdownRemaining, c.countdownRemaining == 0
}

// ManualCapture commits the most recent frame immediately, bypassing
// the stability gate. It is only accepted while the latest score meets
// the manual bar.
func (c *Controller) ManualCapture() (pose.Frame, bool) {
	if c.armed {
		return nil, false
	}
	if c.lastScore < c.cfg.ManualCaptureScore || c.lastFrame == nil {
		return nil, false
	}

	c.captured = c.lastFrame.Clone()
	c.armed = true
	c.countdownRemaining = 0

	return c.captured, true
}

func (c *Controller) Captured() pose.Frame {
	return c.captured
}

func (c *Controller) Armed() bool {
	return c.armed
}

func (c *Controller) Reset() {
	c.framesHeld = 0
	c.armed = false
	c.countdownRemaining = 0
	c.lastFrame = nil
	c.lastScore = 0
	c.captured = nil
}

func (c *Controller) holdMessage() string {
	remaining := c.cfg.FrameThreshold - c.framesHeld
	seconds := int(math.Ceil(float64(remaining) / float64(c.cfg.FrameRate)))

	return fmt.Sprintf("Hold steady for %ds", seconds)
}

func (c *Controller) countdownMessage() string {
	if c.countdownRemaining <= 0 {
		return "Captured"
	}

	return fmt.Sprintf("Capturing in %d", c.countdownRemaining)
}
