// Package engine orchestrates the measurement and size recommendation
// pipelines. The engine is a pure request/response transform: it keeps no
// per-request state, and its only long-lived collaborator is the read-only
// size-chart catalog.
package engine

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/ayushi/fitsense/internal/catalog"
	"github.com/ayushi/fitsense/internal/detector"
	"github.com/ayushi/fitsense/internal/fit"
	"github.com/ayushi/fitsense/internal/measure"
	"github.com/ayushi/fitsense/internal/pose"
)

// Config holds the engine's collaborators.
type Config struct {
	Detector detector.Detector
	Params   measure.Params
	Catalog  *catalog.Catalog
}

// Engine runs the measurement and recommendation pipelines.
type Engine struct {
	detector  detector.Detector
	estimator *measure.Estimator
	catalog   *catalog.Catalog
}

// New creates an Engine. A nil Params falls back to the default tuning and a
// nil Catalog to the built-in size charts; the Detector may be nil when all
// requests supply pre-computed landmarks.
func New(config Config) *Engine {
	params := config.Params
	if params.Version == "" {
		params = measure.DefaultParams()
	}
	cat := config.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	return &Engine{
		detector:  config.Detector,
		estimator: measure.NewEstimator(params),
		catalog:   cat,
	}
}

// DetectSet runs pose estimation over an encoded image and returns the
// landmark set for it. A detectable image with no person yields
// pose.ErrPoseDetection.
func (e *Engine) DetectSet(image []byte, view pose.View) (*pose.Set, error) {
	if e.detector == nil {
		return nil, fmt.Errorf("%w: no pose detector configured", measure.ErrValidation)
	}

	mat, err := gocv.IMDecode(image, gocv.IMReadColor)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot decode %s image: %v", measure.ErrValidation, view, err)
	}
	defer mat.Close()

	set, err := e.detector.Detect(&mat, view)
	if err != nil {
		return nil, fmt.Errorf("detect %s pose: %w", view, err)
	}
	if set == nil {
		return nil, fmt.Errorf("%w: no person detected in %s image", pose.ErrPoseDetection, view)
	}

	return set, nil
}

// Measure runs the measurement pipeline: validate the front set, calibrate,
// estimate, and express the profile in the requested units. The side set is
// optional; when absent or unusable, chest is nil and the request still
// succeeds.
func (e *Engine) Measure(front, side *pose.Set, heightCm float64, gender measure.Gender, units measure.Unit) (*measure.Profile, error) {
	if heightCm <= 0 {
		return nil, fmt.Errorf("%w: calibration height must be positive, got %g", measure.ErrValidation, heightCm)
	}

	if err := pose.ValidateFront(front); err != nil {
		return nil, err
	}

	profile, err := e.estimator.Estimate(front, side, heightCm, gender)
	if err != nil {
		return nil, err
	}

	converted := profile.Convert(units)
	return &converted, nil
}

// Recommend scores every size band of a category against the profile.
// Profiles in imperial units are normalized back to metric before chart
// lookup; the analysis text is phrased back in the profile's own units.
func (e *Engine) Recommend(profile measure.Profile, categoryKey string) (*fit.Response, error) {
	cat, err := e.catalog.Get(categoryKey)
	if err != nil {
		return nil, err
	}

	display := profile.Units
	if display == "" {
		display = measure.UnitMetric
	}

	resp := fit.Recommend(profile.Convert(measure.UnitMetric), cat, display)
	return &resp, nil
}

// Categories lists catalog categories for a gender. An empty gender lists
// everything.
func (e *Engine) Categories(gender measure.Gender) []catalog.Info {
	return e.catalog.List(catalog.Audience(gender))
}

// Chart returns the full size chart for a category.
func (e *Engine) Chart(categoryKey string) (*catalog.Category, error) {
	return e.catalog.Get(categoryKey)
}

// Close releases the detector, if any.
func (e *Engine) Close() error {
	if e.detector != nil {
		return e.detector.Close()
	}
	return nil
}
