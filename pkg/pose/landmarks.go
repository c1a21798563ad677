package pose

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrNoDetection is returned when a frame does not carry a full set of
// landmarks.
var ErrNoDetection = errors.New("no pose detected")

// MediaPipe pose landmark indices. The index meaning is fixed by the
// upstream model and never changes between frames.
const (
	Nose          = 0
	LeftEar       = 7
	RightEar      = 8
	LeftShoulder  = 11
	RightShoulder = 12
	LeftElbow     = 13
	RightElbow    = 14
	LeftWrist     = 15
	RightWrist    = 16
	LeftHip       = 23
	RightHip      = 24
	LeftKnee      = 25
	RightKnee     = 26
	LeftAnkle     = 27
	RightAnkle    = 28

	NumLandmarks = 33
)

type Type string

const (
	TypeFront Type = "front"
	TypeSide  Type = "side"
)

// Landmark is a single tracked keypoint in normalized image space.
// X and Y are in [0,1], Z is relative depth, Visibility is the model's
// confidence that the point is actually visible.
type Landmark struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Visibility float64 `json:"visibility"`
}

// Frame is one full-body detection. A frame with fewer than NumLandmarks
// points is treated as no detection.
type Frame []Landmark

func (f Frame) Complete() bool {
	return len(f) >= NumLandmarks
}

func (f Frame) MeanVisibility() float64 {
	if len(f) == 0 {
		return 0
	}

	vis := make([]float64, len(f))
	for i, lm := range f {
		vis[i] = lm.Visibility
	}

	return stat.Mean(vis, nil)
}

// Distance is the Euclidean distance between two landmarks in normalized
// image space.
func Distance(a, b Landmark) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return math.Hypot(dx, dy)
}

func Midpoint(a, b Landmark) Landmark {
	return Landmark{
		X:          (a.X + b.X) / 2,
		Y:          (a.Y + b.Y) / 2,
		Z:          (a.Z + b.Z) / 2,
		Visibility: math.Min(a.Visibility, b.Visibility),
	}
}

// Movement measures how far the tracked body moved between two frames,
// averaged over the torso landmarks. Used for stability checks.
func Movement(prev, curr Frame) float64 {
	if !prev.Complete() || !curr.Complete() {
		return math.Inf(1)
	}

	torso := []int{LeftShoulder, RightShoulder, LeftHip, RightHip}

	var total float64
	for _, idx := range torso {
		total += Distance(prev[idx], curr[idx])
	}

	return total / float64(len(torso))
}

func (f Frame) Clone() Frame {
	if f == nil {
		return nil
	}

	out := make(Frame, len(f))
	copy(out, f)

	return out
}
