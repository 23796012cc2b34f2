// Package fit scores measurement profiles against garment size bands and
// assembles ranked recommendations.
package fit

import (
	"fmt"
	"math"

	"github.com/ayushi/fitsense/internal/catalog"
	"github.com/ayushi/fitsense/internal/measure"
)

// Category labels for overall band fit.
const (
	PerfectFit = "Perfect Fit"
	GoodFit    = "Good Fit"
	LooseFit   = "Loose Fit"
	TightFit   = "Tight Fit"
	PoorFit    = "Poor Fit"
)

// Analysis explains the fit of a single measurement against a band.
type Analysis struct {
	Measurement string `json:"measurement"`
	Text        string `json:"analysis"`
}

// Recommendation is the scored result for one size band.
type Recommendation struct {
	Size         string                   `json:"size"`
	FitScore     float64                  `json:"fit_score"`
	FitCategory  string                   `json:"fit_category"`
	Measurements map[string]catalog.Range `json:"measurements"`
	FitAnalysis  []Analysis               `json:"fit_analysis"`
}

// ProfileValues extracts the scorable measurement values from a profile,
// keyed by catalog measurement name. Chest is omitted when nil.
func ProfileValues(p measure.Profile) map[string]float64 {
	values := map[string]float64{
		catalog.MeasurementShoulderWidth: p.ShoulderWidth,
		catalog.MeasurementWaist:         p.Waist,
		catalog.MeasurementHip:           p.Hip,
		catalog.MeasurementInseam:        p.Inseam,
	}
	if p.Chest != nil {
		values[catalog.MeasurementChest] = *p.Chest
	}
	return values
}

// ScoreBand scores one size band against measurement values in centimeters.
//
// Per-measurement deviations are normalized by the band's halfwidth and
// aggregated by root mean square: a single outlier cannot dominate the way a
// max would, and multi-measurement mismatch is penalized more than a mean
// would.
func ScoreBand(values map[string]float64, band catalog.SizeBand, display measure.Unit) Recommendation {
	var sumSq, sumSigned float64
	var count int
	var analysis []Analysis

	for _, name := range catalog.MeasurementOrder {
		r, ok := band.Ranges[name]
		if !ok {
			continue
		}
		actual, ok := values[name]
		if !ok {
			continue
		}

		d := (actual - r.Center()) / r.Halfwidth()
		sumSq += d * d
		sumSigned += d
		count++

		analysis = append(analysis, Analysis{
			Measurement: name,
			Text:        analyzeMeasurement(actual, r, display),
		})
	}

	rec := Recommendation{
		Size:         band.Label,
		Measurements: band.Ranges,
		FitAnalysis:  analysis,
		FitCategory:  PoorFit,
	}
	if count == 0 {
		return rec
	}

	rms := math.Sqrt(sumSq / float64(count))
	rec.FitScore = clamp(1-rms, 0, 1)
	rec.FitCategory = classify(rec.FitScore, sumSigned/float64(count))

	return rec
}

// classify maps a fit score to a category. In the middle band the sign of
// the mean deviation distinguishes a garment that runs large from one that
// runs small.
func classify(score, meanSigned float64) string {
	switch {
	case score >= 0.9:
		return PerfectFit
	case score >= 0.7:
		return GoodFit
	case score >= 0.5:
		if meanSigned < 0 {
			return LooseFit
		}
		return TightFit
	default:
		return PoorFit
	}
}

// analyzeMeasurement produces explanation text for one measurement against
// one band range. Inputs are in centimeters; deltas are phrased in the
// display unit.
func analyzeMeasurement(actual float64, r catalog.Range, display measure.Unit) string {
	if actual > r.Max {
		return fmt.Sprintf("May be %s tight", formatDelta(actual-r.Max, display))
	}
	if actual < r.Min {
		return fmt.Sprintf("May be %s loose", formatDelta(r.Min-actual, display))
	}

	d := math.Abs(actual-r.Center()) / r.Halfwidth()
	switch {
	case d < 1e-9:
		return "Perfect fit"
	case d <= 0.33:
		return "Excellent fit"
	case d <= 0.67:
		return "Great fit"
	case actual > r.Center():
		return "Good fit (snug)"
	default:
		return "Good fit (relaxed)"
	}
}

// formatDelta renders a centimeter delta in the display unit.
func formatDelta(cm float64, display measure.Unit) string {
	if display == measure.UnitImperial {
		return fmt.Sprintf("%.1fin", cm*measure.CmToInch)
	}
	return fmt.Sprintf("%.0fcm", cm)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
