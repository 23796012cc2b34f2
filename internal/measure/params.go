package measure

// DepthRatios maps a torso level to its default depth-to-width ratio, used
// when no side view supplies a measured depth.
type DepthRatios struct {
	Chest float64
	Waist float64
	Hip   float64
}

// Params is the versioned set of tunable estimation constants. Values are
// fixed configuration, never derived at runtime; bump Version when retuning.
type Params struct {
	Version string

	// ChestFraction and WaistFraction position the chest and waist levels
	// along the shoulder-to-hip segment (0 = shoulder, 1 = hip), per gender.
	ChestFraction map[Gender]float64
	WaistFraction map[Gender]float64

	// Depths holds per-gender default depth-to-width ratios.
	Depths map[Gender]DepthRatios

	// HeightTolerance is the allowed relative deviation between the computed
	// height and the calibration height before the self-consistency check
	// logs a diagnostic.
	HeightTolerance float64
}

// DefaultParams returns the current tuning, calibrated against standard
// anthropometric proportion tables.
func DefaultParams() Params {
	return Params{
		Version: "2026.1",
		ChestFraction: map[Gender]float64{
			GenderMale:   0.28,
			GenderFemale: 0.30,
		},
		WaistFraction: map[Gender]float64{
			GenderMale:   0.62,
			GenderFemale: 0.65,
		},
		Depths: map[Gender]DepthRatios{
			GenderMale:   {Chest: 0.75, Waist: 0.80, Hip: 0.85},
			GenderFemale: {Chest: 0.70, Waist: 0.75, Hip: 0.80},
		},
		HeightTolerance: 0.02,
	}
}

// chestFraction returns the chest level fraction for a gender, defaulting to
// male when the gender is unknown.
func (p Params) chestFraction(g Gender) float64 {
	if f, ok := p.ChestFraction[g]; ok {
		return f
	}
	return p.ChestFraction[GenderMale]
}

func (p Params) waistFraction(g Gender) float64 {
	if f, ok := p.WaistFraction[g]; ok {
		return f
	}
	return p.WaistFraction[GenderMale]
}

func (p Params) depths(g Gender) DepthRatios {
	if d, ok := p.Depths[g]; ok {
		return d
	}
	return p.Depths[GenderMale]
}
