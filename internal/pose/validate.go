package pose

import (
	"errors"
	"fmt"
)

// ErrPoseDetection is returned when a joint subset required for measurement
// is unusable.
var ErrPoseDetection = errors.New("pose detection failure")

// Required joint subsets. If any of these is entirely unusable in the front
// view, measurement cannot proceed. Other subsets only degrade the dependent
// measurement.
var (
	ShoulderJoints = []int{LeftShoulder, RightShoulder}
	HipJoints      = []int{LeftHip, RightHip}
	AnkleJoints    = []int{LeftAnkle, RightAnkle}
	HeadJoints     = []int{Nose}
)

// ValidateFront checks that a front-view landmark set can support the core
// measurements. Shoulders, hips and ankles must all be usable; anything else
// degrades the dependent measurement instead of failing the request (a
// missing head reference surfaces later as a calibration failure).
func ValidateFront(s *Set) error {
	if s == nil {
		return fmt.Errorf("%w: no front landmark set", ErrPoseDetection)
	}

	subsets := []struct {
		name    string
		indices []int
	}{
		{"shoulders", ShoulderJoints},
		{"hips", HipJoints},
		{"ankles", AnkleJoints},
	}

	for _, sub := range subsets {
		if !s.SubsetUsable(sub.indices...) {
			return fmt.Errorf("%w: %s not visible with sufficient confidence", ErrPoseDetection, sub.name)
		}
	}

	return nil
}

// ValidateSide checks a side-view landmark set. A missing or low-confidence
// side view is never fatal; callers treat a non-nil error as "no side view"
// and skip depth-based estimation.
func ValidateSide(s *Set) error {
	if s == nil {
		return fmt.Errorf("%w: no side landmark set", ErrPoseDetection)
	}
	if !s.SubsetUsable(ShoulderJoints...) || !s.SubsetUsable(HipJoints...) {
		return fmt.Errorf("%w: side torso not visible with sufficient confidence", ErrPoseDetection)
	}
	if !s.SubsetUsable(HeadJoints...) || !s.SubsetUsable(AnkleJoints...) {
		return fmt.Errorf("%w: side view cannot be calibrated", ErrPoseDetection)
	}
	return nil
}
