package measure

import (
	"fmt"

	"github.com/ayushi/fitsense/internal/pose"
)

// spanEpsilon is the smallest vertical landmark span considered a real
// standing pose, in normalized image coordinates.
const spanEpsilon = 1e-6

// Calibrate computes the image-space to real-world scale factor for one
// landmark set: calibration height divided by the vertical span between the
// head reference and the ankle midpoint. Each image is calibrated
// independently; front and side scale factors are never mixed.
func Calibrate(s *pose.Set, heightCm float64) (float64, error) {
	if heightCm <= 0 {
		return 0, fmt.Errorf("%w: calibration height must be positive, got %g", ErrCalibration, heightCm)
	}
	if s == nil {
		return 0, fmt.Errorf("%w: no landmark set", ErrCalibration)
	}
	if !s.Usable(pose.Nose) {
		return 0, fmt.Errorf("%w: head reference not visible", ErrCalibration)
	}
	if !s.SubsetUsable(pose.AnkleJoints...) {
		return 0, fmt.Errorf("%w: ankles not visible", ErrCalibration)
	}

	ankleMid := pose.Midpoint(s.Points[pose.LeftAnkle], s.Points[pose.RightAnkle])
	span := pose.Distance(s.Points[pose.Nose], ankleMid)
	if span <= spanEpsilon {
		return 0, fmt.Errorf("%w: degenerate vertical span %g", ErrCalibration, span)
	}

	return heightCm / span, nil
}
