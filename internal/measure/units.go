package measure

import "fmt"

// CmToInch is the centimeter to inch conversion factor.
const CmToInch = 0.393701

// ParseUnit validates a unit string from a request. An empty string defaults
// to metric.
func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case UnitMetric, "":
		return UnitMetric, nil
	case UnitImperial:
		return UnitImperial, nil
	default:
		return "", fmt.Errorf("%w: unknown units %q", ErrValidation, s)
	}
}

// ParseGender validates a gender string from a request. An empty string
// defaults to male, matching the upstream capture flow's default.
func ParseGender(s string) (Gender, error) {
	switch Gender(s) {
	case GenderMale, "":
		return GenderMale, nil
	case GenderFemale:
		return GenderFemale, nil
	default:
		return "", fmt.Errorf("%w: unknown gender %q", ErrValidation, s)
	}
}

// Convert returns a copy of the profile expressed in the requested unit
// system. Converting to the profile's current units is a no-op copy.
// Conversion is applied exactly once at the boundary; round trips are
// reversible within floating-point tolerance.
func (p Profile) Convert(to Unit) Profile {
	if p.Units == to {
		return p
	}

	factor := CmToInch
	if to == UnitMetric {
		factor = 1 / CmToInch
	}

	out := Profile{
		ShoulderWidth: p.ShoulderWidth * factor,
		Waist:         p.Waist * factor,
		Hip:           p.Hip * factor,
		Height:        p.Height * factor,
		Inseam:        p.Inseam * factor,
		Units:         to,
	}
	if p.Chest != nil {
		chest := *p.Chest * factor
		out.Chest = &chest
	}
	return out
}
