package catalog

import (
	"errors"
	"testing"
)

func TestGet(t *testing.T) {
	cat, err := Default().Get("MENS_SHIRT")
	if err != nil {
		t.Fatalf("Get(MENS_SHIRT) error = %v", err)
	}
	if cat.Name != "Men's Shirt" {
		t.Errorf("Name = %q, want %q", cat.Name, "Men's Shirt")
	}
	if cat.Audience != AudienceMale {
		t.Errorf("Audience = %q, want %q", cat.Audience, AudienceMale)
	}
	if len(cat.Bands) == 0 {
		t.Fatal("no size bands")
	}
}

func TestGet_NotFound(t *testing.T) {
	_, err := Default().Get("MENS_HAT")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(MENS_HAT) error = %v, want ErrNotFound", err)
	}
}

func TestList_AudienceFilter(t *testing.T) {
	tests := []struct {
		audience Audience
		want     map[string]bool
	}{
		{AudienceMale, map[string]bool{"MENS_SHIRT": true, "MENS_PANTS": true}},
		{AudienceFemale, map[string]bool{"WOMENS_TOP": true, "WOMENS_PANTS": true, "DRESS": true}},
	}

	for _, tt := range tests {
		t.Run(string(tt.audience), func(t *testing.T) {
			infos := Default().List(tt.audience)
			if len(infos) != len(tt.want) {
				t.Fatalf("List(%s) returned %d categories, want %d", tt.audience, len(infos), len(tt.want))
			}
			for _, info := range infos {
				if !tt.want[info.Key] {
					t.Errorf("List(%s) included unexpected category %s", tt.audience, info.Key)
				}
			}
		})
	}
}

func TestList_Unfiltered(t *testing.T) {
	infos := Default().List("")
	if len(infos) != 5 {
		t.Errorf("List(\"\") returned %d categories, want 5", len(infos))
	}
}

func TestBands_OrderedSmallestFirst(t *testing.T) {
	for _, info := range Default().List("") {
		cat, err := Default().Get(info.Key)
		if err != nil {
			t.Fatalf("Get(%s) error = %v", info.Key, err)
		}

		for _, m := range MeasurementOrder {
			var prev float64
			var prevLabel string
			for _, band := range cat.Bands {
				r, ok := band.Ranges[m]
				if !ok {
					continue
				}
				if prevLabel != "" && r.Center() < prev {
					t.Errorf("%s: %s center for %s is below %s", info.Key, m, band.Label, prevLabel)
				}
				prev = r.Center()
				prevLabel = band.Label
			}
		}
	}
}

func TestRange(t *testing.T) {
	r := Range{Min: 75, Max: 85}
	if r.Center() != 80 {
		t.Errorf("Center() = %v, want 80", r.Center())
	}
	if r.Halfwidth() != 5 {
		t.Errorf("Halfwidth() = %v, want 5", r.Halfwidth())
	}
}

func TestBands_RangesWellFormed(t *testing.T) {
	for _, info := range Default().List("") {
		cat, _ := Default().Get(info.Key)
		for _, band := range cat.Bands {
			if len(band.Ranges) == 0 || len(band.Ranges) > 3 {
				t.Errorf("%s/%s: %d ranges, want 1-3", info.Key, band.Label, len(band.Ranges))
			}
			for m, r := range band.Ranges {
				if r.Min >= r.Max {
					t.Errorf("%s/%s/%s: min %v >= max %v", info.Key, band.Label, m, r.Min, r.Max)
				}
			}
		}
	}
}
