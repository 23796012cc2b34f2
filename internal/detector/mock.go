package detector

import (
	"gocv.io/x/gocv"

	"github.com/ayushi/fitsense/internal/pose"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results per view.
type MockDetector struct {
	sets map[pose.View]*pose.Set
	err  error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{
		sets: make(map[pose.View]*pose.Set),
	}
}

// SetResult sets the landmark set returned for a view. A nil set simulates
// "no person detected".
func (m *MockDetector) SetResult(view pose.View, s *pose.Set) {
	m.sets[view] = s
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured landmark set or error.
func (m *MockDetector) Detect(img *gocv.Mat, view pose.View) (*pose.Set, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sets[view], nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// StandingFrontSet returns a preset landmark set for a person standing
// upright facing the camera. Head-to-ankle span is 0.80 of the image height,
// shoulder span 0.20 of the image width.
func StandingFrontSet() *pose.Set {
	s := &pose.Set{Source: pose.ViewFront}

	put := func(i int, x, y, vis float64) {
		s.Points[i] = pose.Landmark{X: x, Y: y, Visibility: vis}
	}

	// Head
	put(pose.Nose, 0.50, 0.10, 0.99)
	put(pose.LeftEyeInner, 0.52, 0.09, 0.98)
	put(pose.LeftEye, 0.53, 0.09, 0.98)
	put(pose.LeftEyeOuter, 0.54, 0.09, 0.97)
	put(pose.RightEyeInner, 0.48, 0.09, 0.98)
	put(pose.RightEye, 0.47, 0.09, 0.98)
	put(pose.RightEyeOuter, 0.46, 0.09, 0.97)
	put(pose.LeftEar, 0.55, 0.10, 0.95)
	put(pose.RightEar, 0.45, 0.10, 0.95)
	put(pose.MouthLeft, 0.52, 0.12, 0.96)
	put(pose.MouthRight, 0.48, 0.12, 0.96)

	// Torso
	put(pose.LeftShoulder, 0.60, 0.25, 0.98)
	put(pose.RightShoulder, 0.40, 0.25, 0.98)
	put(pose.LeftHip, 0.56, 0.52, 0.97)
	put(pose.RightHip, 0.44, 0.52, 0.97)

	// Arms
	put(pose.LeftElbow, 0.64, 0.38, 0.95)
	put(pose.RightElbow, 0.36, 0.38, 0.95)
	put(pose.LeftWrist, 0.66, 0.50, 0.92)
	put(pose.RightWrist, 0.34, 0.50, 0.92)
	put(pose.LeftPinky, 0.67, 0.53, 0.85)
	put(pose.RightPinky, 0.33, 0.53, 0.85)
	put(pose.LeftIndex, 0.67, 0.54, 0.85)
	put(pose.RightIndex, 0.33, 0.54, 0.85)
	put(pose.LeftThumb, 0.66, 0.53, 0.85)
	put(pose.RightThumb, 0.34, 0.53, 0.85)

	// Legs
	put(pose.LeftKnee, 0.55, 0.72, 0.96)
	put(pose.RightKnee, 0.45, 0.72, 0.96)
	put(pose.LeftAnkle, 0.55, 0.90, 0.94)
	put(pose.RightAnkle, 0.45, 0.90, 0.94)
	put(pose.LeftHeel, 0.55, 0.92, 0.90)
	put(pose.RightHeel, 0.45, 0.92, 0.90)
	put(pose.LeftFootIndex, 0.57, 0.93, 0.90)
	put(pose.RightFootIndex, 0.43, 0.93, 0.90)

	return s
}

// StandingSideSet returns a preset landmark set for the same person in
// profile. Left/right joint pairs separate along the camera axis, so their
// projected distance encodes body depth.
func StandingSideSet() *pose.Set {
	s := &pose.Set{Source: pose.ViewSide}

	put := func(i int, x, y, vis float64) {
		s.Points[i] = pose.Landmark{X: x, Y: y, Visibility: vis}
	}

	// Head, facing image left
	put(pose.Nose, 0.44, 0.10, 0.98)
	put(pose.LeftEyeInner, 0.46, 0.09, 0.90)
	put(pose.LeftEye, 0.46, 0.09, 0.90)
	put(pose.LeftEyeOuter, 0.47, 0.09, 0.88)
	put(pose.RightEyeInner, 0.46, 0.09, 0.60)
	put(pose.RightEye, 0.46, 0.09, 0.60)
	put(pose.RightEyeOuter, 0.47, 0.09, 0.58)
	put(pose.LeftEar, 0.50, 0.10, 0.92)
	put(pose.RightEar, 0.50, 0.10, 0.55)
	put(pose.MouthLeft, 0.45, 0.12, 0.85)
	put(pose.MouthRight, 0.45, 0.12, 0.60)

	// Torso: the pair separation is front-to-back body depth
	put(pose.LeftShoulder, 0.55, 0.25, 0.95)
	put(pose.RightShoulder, 0.45, 0.25, 0.80)
	put(pose.LeftHip, 0.55, 0.52, 0.94)
	put(pose.RightHip, 0.45, 0.52, 0.78)

	// Arms hang along the torso
	put(pose.LeftElbow, 0.52, 0.38, 0.85)
	put(pose.RightElbow, 0.50, 0.38, 0.60)
	put(pose.LeftWrist, 0.51, 0.50, 0.80)
	put(pose.RightWrist, 0.50, 0.50, 0.55)
	put(pose.LeftPinky, 0.51, 0.53, 0.60)
	put(pose.RightPinky, 0.50, 0.53, 0.50)
	put(pose.LeftIndex, 0.51, 0.54, 0.60)
	put(pose.RightIndex, 0.50, 0.54, 0.50)
	put(pose.LeftThumb, 0.51, 0.53, 0.60)
	put(pose.RightThumb, 0.50, 0.53, 0.50)

	// Legs
	put(pose.LeftKnee, 0.51, 0.72, 0.92)
	put(pose.RightKnee, 0.50, 0.72, 0.75)
	put(pose.LeftAnkle, 0.51, 0.90, 0.90)
	put(pose.RightAnkle, 0.49, 0.90, 0.72)
	put(pose.LeftHeel, 0.53, 0.92, 0.85)
	put(pose.RightHeel, 0.51, 0.92, 0.68)
	put(pose.LeftFootIndex, 0.46, 0.93, 0.85)
	put(pose.RightFootIndex, 0.44, 0.93, 0.68)

	return s
}
