package fit

import (
	"sort"

	"github.com/ayushi/fitsense/internal/catalog"
	"github.com/ayushi/fitsense/internal/measure"
)

// Response packages the ranked recommendations for one category. The first
// recommendation is the best match.
type Response struct {
	Category        string           `json:"garment_category"`
	GarmentName     string           `json:"garment_name"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Recommend scores every size band in the category against the profile and
// returns them sorted by fit score, best first. The profile must be in
// metric units; display names the unit system for the analysis text.
//
// Ties on fit score go to the smaller size. That is a policy choice, not a
// derived property: a slightly snug garment is less likely to be returned
// than a visibly oversized one.
func Recommend(p measure.Profile, cat *catalog.Category, display measure.Unit) Response {
	values := ProfileValues(p)

	recs := make([]Recommendation, 0, len(cat.Bands))
	for _, band := range cat.Bands {
		recs = append(recs, ScoreBand(values, band, display))
	}

	// Bands are declared smallest first; the stable sort keeps the smaller
	// size ahead on equal scores.
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].FitScore > recs[j].FitScore
	})

	return Response{
		Category:        cat.Key,
		GarmentName:     cat.Name,
		Recommendations: recs,
	}
}
