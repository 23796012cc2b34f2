package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/ayushi/fitsense/internal/detector"
	"github.com/ayushi/fitsense/internal/measure"
	"github.com/ayushi/fitsense/internal/pose"
)

func newTestEngine() *Engine {
	return New(Config{Detector: detector.NewMockDetector()})
}

func TestMeasure(t *testing.T) {
	e := newTestEngine()

	p, err := e.Measure(detector.StandingFrontSet(), nil, 170, measure.GenderMale, measure.UnitMetric)
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	if p.Chest != nil {
		t.Errorf("Chest = %v without side view, want nil", *p.Chest)
	}
	if p.Units != measure.UnitMetric {
		t.Errorf("Units = %q, want metric", p.Units)
	}
	if p.ShoulderWidth <= 0 || p.Waist <= 0 {
		t.Errorf("non-positive measurements: shoulder %v, waist %v", p.ShoulderWidth, p.Waist)
	}
}

func TestMeasure_ImperialUnits(t *testing.T) {
	e := newTestEngine()

	metric, err := e.Measure(detector.StandingFrontSet(), nil, 170, measure.GenderMale, measure.UnitMetric)
	if err != nil {
		t.Fatalf("Measure(metric) error = %v", err)
	}
	imperial, err := e.Measure(detector.StandingFrontSet(), nil, 170, measure.GenderMale, measure.UnitImperial)
	if err != nil {
		t.Fatalf("Measure(imperial) error = %v", err)
	}

	if imperial.Units != measure.UnitImperial {
		t.Errorf("Units = %q, want imperial", imperial.Units)
	}
	want := metric.Waist * measure.CmToInch
	if diff := imperial.Waist - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("imperial waist = %v, want %v", imperial.Waist, want)
	}
}

func TestMeasure_InvalidHeight(t *testing.T) {
	e := newTestEngine()

	for _, h := range []float64{0, -170} {
		_, err := e.Measure(detector.StandingFrontSet(), nil, h, measure.GenderMale, measure.UnitMetric)
		if !errors.Is(err, measure.ErrValidation) {
			t.Errorf("Measure(height=%v) error = %v, want ErrValidation", h, err)
		}
	}
}

func TestMeasure_UnusableShoulders(t *testing.T) {
	e := newTestEngine()

	front := detector.StandingFrontSet()
	front.Points[pose.LeftShoulder].Visibility = 0.2
	front.Points[pose.RightShoulder].Visibility = 0.2

	_, err := e.Measure(front, nil, 170, measure.GenderMale, measure.UnitMetric)
	if !errors.Is(err, pose.ErrPoseDetection) {
		t.Errorf("Measure() error = %v, want ErrPoseDetection", err)
	}
}

func TestRecommend(t *testing.T) {
	e := newTestEngine()

	p := measure.Profile{
		ShoulderWidth: 45.75,
		Waist:         80,
		Hip:           98,
		Height:        175,
		Inseam:        79,
		Units:         measure.UnitMetric,
	}

	resp, err := e.Recommend(p, "MENS_SHIRT")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if resp.GarmentName != "Men's Shirt" {
		t.Errorf("GarmentName = %q, want %q", resp.GarmentName, "Men's Shirt")
	}
	if len(resp.Recommendations) == 0 {
		t.Fatal("no recommendations")
	}
}

func TestRecommend_ImperialProfileNormalized(t *testing.T) {
	e := newTestEngine()

	metric := measure.Profile{
		ShoulderWidth: 45.75,
		Waist:         80,
		Hip:           98,
		Height:        175,
		Inseam:        79,
		Units:         measure.UnitMetric,
	}
	imperial := metric.Convert(measure.UnitImperial)

	fromMetric, err := e.Recommend(metric, "MENS_SHIRT")
	if err != nil {
		t.Fatalf("Recommend(metric) error = %v", err)
	}
	fromImperial, err := e.Recommend(imperial, "MENS_SHIRT")
	if err != nil {
		t.Fatalf("Recommend(imperial) error = %v", err)
	}

	if fromMetric.Recommendations[0].Size != fromImperial.Recommendations[0].Size {
		t.Errorf("unit system changed the best match: %q vs %q",
			fromMetric.Recommendations[0].Size, fromImperial.Recommendations[0].Size)
	}
}

func TestRecommend_ImperialAnalysisText(t *testing.T) {
	e := newTestEngine()

	// Far outside every MENS_PANTS band, so each analysis carries a delta.
	metric := measure.Profile{
		Waist:  130,
		Hip:    140,
		Inseam: 95,
		Units:  measure.UnitMetric,
	}
	imperial := metric.Convert(measure.UnitImperial)

	resp, err := e.Recommend(imperial, "MENS_PANTS")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	analysis := resp.Recommendations[0].FitAnalysis
	if len(analysis) == 0 {
		t.Fatal("expected fit analysis entries")
	}
	for _, a := range analysis {
		if strings.Contains(a.Text, "cm") {
			t.Errorf("analysis %q phrased in cm for an imperial profile", a.Text)
		}
		if !strings.Contains(a.Text, "in tight") {
			t.Errorf("analysis %q not phrased in inches", a.Text)
		}
	}
}

func TestRecommend_UnknownCategory(t *testing.T) {
	e := newTestEngine()

	_, err := e.Recommend(measure.Profile{Units: measure.UnitMetric}, "MENS_HAT")
	if err == nil {
		t.Fatal("Recommend(MENS_HAT) error = nil, want ErrNotFound")
	}
}

func TestCategories_GenderFilter(t *testing.T) {
	e := newTestEngine()

	for _, info := range e.Categories(measure.GenderMale) {
		if info.Key == "DRESS" || info.Key == "WOMENS_TOP" || info.Key == "WOMENS_PANTS" {
			t.Errorf("male listing included %s", info.Key)
		}
	}

	var hasDress bool
	for _, info := range e.Categories(measure.GenderFemale) {
		if info.Key == "MENS_SHIRT" || info.Key == "MENS_PANTS" {
			t.Errorf("female listing included %s", info.Key)
		}
		if info.Key == "DRESS" {
			hasDress = true
		}
	}
	if !hasDress {
		t.Error("female listing missing DRESS")
	}
}
