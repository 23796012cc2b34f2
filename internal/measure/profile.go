// Package measure derives real-world body measurements from scaled landmark
// geometry.
package measure

import "errors"

// ErrValidation is returned for malformed or out-of-range request inputs.
var ErrValidation = errors.New("validation error")

// ErrCalibration is returned when a pixel-to-real-world scale factor cannot
// be derived from a landmark set.
var ErrCalibration = errors.New("calibration error")

// Gender selects the anthropometric parameter set used during estimation.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Unit is the measurement unit system of a profile.
type Unit string

const (
	// UnitMetric expresses all measurements in centimeters.
	UnitMetric Unit = "metric"
	// UnitImperial expresses all measurements in inches.
	UnitImperial Unit = "imperial"
)

// Profile holds one complete set of derived body measurements, all expressed
// in the same unit system. Chest is nil when no side view was available.
type Profile struct {
	ShoulderWidth float64  `json:"shoulder_width"`
	Chest         *float64 `json:"chest"`
	Waist         float64  `json:"waist"`
	Hip           float64  `json:"hip"`
	Height        float64  `json:"height"`
	Inseam        float64  `json:"inseam"`
	Units         Unit     `json:"units"`
}
