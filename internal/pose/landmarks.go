// Package pose provides body landmark types and validation for the
// measurement pipeline.
package pose

import (
	"fmt"
	"math"
)

// Body landmark indices following the MediaPipe Pose convention.
// See: https://developers.google.com/mediapipe/solutions/vision/pose_landmarker
const (
	Nose           = 0
	LeftEyeInner   = 1
	LeftEye        = 2
	LeftEyeOuter   = 3
	RightEyeInner  = 4
	RightEye       = 5
	RightEyeOuter  = 6
	LeftEar        = 7
	RightEar       = 8
	MouthLeft      = 9
	MouthRight     = 10
	LeftShoulder   = 11
	RightShoulder  = 12
	LeftElbow      = 13
	RightElbow     = 14
	LeftWrist      = 15
	RightWrist     = 16
	LeftPinky      = 17
	RightPinky     = 18
	LeftIndex      = 19
	RightIndex     = 20
	LeftThumb      = 21
	RightThumb     = 22
	LeftHip        = 23
	RightHip       = 24
	LeftKnee       = 25
	RightKnee      = 26
	LeftAnkle      = 27
	RightAnkle     = 28
	LeftHeel       = 29
	RightHeel      = 30
	LeftFootIndex  = 31
	RightFootIndex = 32
	NumLandmarks   = 33
)

// MinConfidence is the visibility threshold below which a joint is unusable.
const MinConfidence = 0.5

// View identifies which camera angle a landmark set was captured from.
type View string

const (
	// ViewFront is the front-facing capture used for width measurements.
	ViewFront View = "front"
	// ViewSide is the profile capture used for depth measurements.
	ViewSide View = "side"
)

// Landmark is a single body joint in normalized image coordinates.
type Landmark struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Visibility float64 `json:"visibility"`
}

// Set holds the 33 landmarks detected in one image.
type Set struct {
	Points [NumLandmarks]Landmark `json:"points"`
	Source View                   `json:"source"`
}

// NewSet builds a Set from a wire-format landmark slice. The slice must hold
// exactly 33 entries in canonical topology order.
func NewSet(points []Landmark, source View) (*Set, error) {
	if len(points) != NumLandmarks {
		return nil, fmt.Errorf("landmark set has %d entries, expected %d", len(points), NumLandmarks)
	}
	s := &Set{Source: source}
	copy(s.Points[:], points)
	return s, nil
}

// Usable reports whether the landmark at index i meets the confidence
// threshold.
func (s *Set) Usable(i int) bool {
	if i < 0 || i >= NumLandmarks {
		return false
	}
	return s.Points[i].Visibility >= MinConfidence
}

// SubsetUsable reports whether every landmark in the given index subset is
// usable.
func (s *Set) SubsetUsable(indices ...int) bool {
	for _, i := range indices {
		if !s.Usable(i) {
			return false
		}
	}
	return true
}

// Confidence returns the mean visibility across all landmarks.
func (s *Set) Confidence() float64 {
	var sum float64
	for i := range s.Points {
		sum += s.Points[i].Visibility
	}
	return sum / NumLandmarks
}

// Distance calculates the Euclidean distance between two landmarks in the
// image plane.
func Distance(a, b Landmark) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Midpoint returns the point halfway between two landmarks. The visibility of
// the result is the lesser of the two inputs.
func Midpoint(a, b Landmark) Landmark {
	vis := a.Visibility
	if b.Visibility < vis {
		vis = b.Visibility
	}
	return Landmark{
		X:          (a.X + b.X) / 2,
		Y:          (a.Y + b.Y) / 2,
		Visibility: vis,
	}
}

// Lerp interpolates between two landmarks: t=0 yields a, t=1 yields b.
// The visibility of the result is the lesser of the two inputs.
func Lerp(a, b Landmark, t float64) Landmark {
	vis := a.Visibility
	if b.Visibility < vis {
		vis = b.Visibility
	}
	return Landmark{
		X:          a.X + (b.X-a.X)*t,
		Y:          a.Y + (b.Y-a.Y)*t,
		Visibility: vis,
	}
}
