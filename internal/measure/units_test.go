package measure

import (
	"math"
	"testing"
)

func TestParseUnit(t *testing.T) {
	tests := []struct {
		in      string
		want    Unit
		wantErr bool
	}{
		{"metric", UnitMetric, false},
		{"imperial", UnitImperial, false},
		{"", UnitMetric, false},
		{"furlongs", "", true},
	}

	for _, tt := range tests {
		got, err := ParseUnit(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseUnit(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseUnit(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseGender(t *testing.T) {
	if g, err := ParseGender("female"); err != nil || g != GenderFemale {
		t.Errorf("ParseGender(female) = %q, %v", g, err)
	}
	if g, err := ParseGender(""); err != nil || g != GenderMale {
		t.Errorf("ParseGender(\"\") = %q, %v, want default male", g, err)
	}
	if _, err := ParseGender("other"); err == nil {
		t.Error("ParseGender(other) error = nil, want error")
	}
}

func TestConvert(t *testing.T) {
	chest := 100.0
	p := Profile{
		ShoulderWidth: 45,
		Chest:         &chest,
		Waist:         80,
		Hip:           95,
		Height:        170,
		Inseam:        78,
		Units:         UnitMetric,
	}

	imp := p.Convert(UnitImperial)
	if imp.Units != UnitImperial {
		t.Errorf("Units = %q, want %q", imp.Units, UnitImperial)
	}
	if math.Abs(imp.Waist-80*CmToInch) > 1e-9 {
		t.Errorf("Waist = %v, want %v", imp.Waist, 80*CmToInch)
	}
	if imp.Chest == nil {
		t.Fatal("Chest = nil after conversion, want a value")
	}
	if math.Abs(*imp.Chest-100*CmToInch) > 1e-9 {
		t.Errorf("Chest = %v, want %v", *imp.Chest, 100*CmToInch)
	}

	// Converting a copy must not mutate the original.
	if p.Waist != 80 || *p.Chest != 100 {
		t.Error("Convert() mutated the source profile")
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	chest := 98.4
	p := Profile{
		ShoulderWidth: 44.2,
		Chest:         &chest,
		Waist:         81.7,
		Hip:           96.3,
		Height:        170,
		Inseam:        77.5,
		Units:         UnitMetric,
	}

	back := p.Convert(UnitImperial).Convert(UnitMetric)

	pairs := []struct {
		name string
		a, b float64
	}{
		{"shoulder_width", p.ShoulderWidth, back.ShoulderWidth},
		{"chest", *p.Chest, *back.Chest},
		{"waist", p.Waist, back.Waist},
		{"hip", p.Hip, back.Hip},
		{"height", p.Height, back.Height},
		{"inseam", p.Inseam, back.Inseam},
	}

	for _, pair := range pairs {
		if math.Abs(pair.a-pair.b) > 1e-6 {
			t.Errorf("%s: round trip %v -> %v", pair.name, pair.a, pair.b)
		}
	}
}

func TestConvert_SameUnitsNoOp(t *testing.T) {
	p := Profile{Waist: 80, Units: UnitMetric}
	if got := p.Convert(UnitMetric); got.Waist != 80 {
		t.Errorf("Convert(metric) on metric profile changed waist to %v", got.Waist)
	}
}
