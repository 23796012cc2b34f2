// Package detector provides body pose detection at the boundary between
// uploaded images and the measurement pipeline.
package detector

import (
	"gocv.io/x/gocv"

	"github.com/ayushi/fitsense/internal/pose"
)

// Detector defines the interface for pose estimation implementations.
type Detector interface {
	// Detect analyzes an image and returns the detected body landmarks.
	// Returns nil (and no error) when no person is found in the image.
	Detect(img *gocv.Mat, view pose.View) (*pose.Set, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds configuration options for pose detection.
type Config struct {
	// ModelComplexity selects the pose model variant (0=lite, 1=full, 2=heavy).
	ModelComplexity int

	// MinConfidence is the minimum detection confidence threshold (0.0-1.0).
	MinConfidence float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		ModelComplexity: 1,
		MinConfidence:   0.5,
	}
}
