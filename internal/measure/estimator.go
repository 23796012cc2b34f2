package measure

import (
	"log"
	"math"

	"github.com/ayushi/fitsense/internal/pose"
)

// Estimator computes a measurement profile from validated landmark sets.
type Estimator struct {
	params Params
}

// NewEstimator creates an Estimator with the given tuning parameters.
func NewEstimator(params Params) *Estimator {
	return &Estimator{params: params}
}

// Estimate derives all six body measurements from a front landmark set, an
// optional side set and the calibration height. The result is always in
// metric units; chest is nil when side is nil. The front set must have been
// validated with pose.ValidateFront.
func (e *Estimator) Estimate(front, side *pose.Set, heightCm float64, gender Gender) (*Profile, error) {
	scaleFront, err := Calibrate(front, heightCm)
	if err != nil {
		return nil, err
	}

	lShoulder := front.Points[pose.LeftShoulder]
	rShoulder := front.Points[pose.RightShoulder]
	lHip := front.Points[pose.LeftHip]
	rHip := front.Points[pose.RightHip]

	hipMid := pose.Midpoint(lHip, rHip)
	ankleMid := pose.Midpoint(front.Points[pose.LeftAnkle], front.Points[pose.RightAnkle])

	shoulderWidth := pose.Distance(lShoulder, rShoulder) * scaleFront
	hipWidth := pose.Distance(lHip, rHip) * scaleFront

	waistFrac := e.params.waistFraction(gender)
	chestFrac := e.params.chestFraction(gender)

	// Waist and chest have no direct landmarks; interpolate each side of the
	// torso between shoulder and hip.
	waistWidth := pose.Distance(
		pose.Lerp(lShoulder, lHip, waistFrac),
		pose.Lerp(rShoulder, rHip, waistFrac),
	) * scaleFront
	chestWidth := pose.Distance(
		pose.Lerp(lShoulder, lHip, chestFrac),
		pose.Lerp(rShoulder, rHip, chestFrac),
	) * scaleFront

	depths := e.sideDepths(side, heightCm, gender)

	ratios := e.params.depths(gender)
	waistDepth := waistWidth * ratios.Waist
	hipDepth := hipWidth * ratios.Hip
	if depths != nil {
		waistDepth = depths.Waist
		hipDepth = depths.Hip
	}

	profile := &Profile{
		ShoulderWidth: shoulderWidth,
		Waist:         EllipseCircumference(waistWidth, waistDepth),
		Hip:           EllipseCircumference(hipWidth, hipDepth),
		Height:        pose.Distance(front.Points[pose.Nose], ankleMid) * scaleFront,
		Inseam:        pose.Distance(hipMid, ankleMid) * scaleFront,
		Units:         UnitMetric,
	}

	// Chest needs a measured depth; without a side view it stays nil.
	if depths != nil {
		chest := EllipseCircumference(chestWidth, depths.Chest)
		profile.Chest = &chest
	}

	// Self-consistency: the computed height should reproduce the calibration
	// height. A large deviation is a diagnostic signal, not a failure.
	if dev := math.Abs(profile.Height-heightCm) / heightCm; dev > e.params.HeightTolerance {
		log.Printf("measure: computed height %.1fcm deviates %.1f%% from calibration height %.1fcm",
			profile.Height, dev*100, heightCm)
	}

	return profile, nil
}

// levelDepths holds side-view depth samples at the three torso levels, in cm.
type levelDepths struct {
	Chest float64
	Waist float64
	Hip   float64
}

// sideDepths derives torso depth samples from a side view. In a profile pose
// the left/right members of a joint pair separate along the camera axis, so
// their projected distance approximates body depth at that level. Returns nil
// when the side view is missing or cannot be calibrated.
func (e *Estimator) sideDepths(side *pose.Set, heightCm float64, gender Gender) *levelDepths {
	if side == nil {
		return nil
	}
	if err := pose.ValidateSide(side); err != nil {
		log.Printf("measure: ignoring side view: %v", err)
		return nil
	}

	scaleSide, err := Calibrate(side, heightCm)
	if err != nil {
		log.Printf("measure: ignoring side view: %v", err)
		return nil
	}

	lShoulder := side.Points[pose.LeftShoulder]
	rShoulder := side.Points[pose.RightShoulder]
	lHip := side.Points[pose.LeftHip]
	rHip := side.Points[pose.RightHip]

	waistFrac := e.params.waistFraction(gender)
	chestFrac := e.params.chestFraction(gender)

	return &levelDepths{
		Chest: pose.Distance(
			pose.Lerp(lShoulder, lHip, chestFrac),
			pose.Lerp(rShoulder, rHip, chestFrac),
		) * scaleSide,
		Waist: pose.Distance(
			pose.Lerp(lShoulder, lHip, waistFrac),
			pose.Lerp(rShoulder, rHip, waistFrac),
		) * scaleSide,
		Hip: pose.Distance(lHip, rHip) * scaleSide,
	}
}

// EllipseCircumference approximates a body-part circumference from its full
// width and depth via the root-mean-square ellipse perimeter form.
func EllipseCircumference(width, depth float64) float64 {
	if width <= 0 || depth <= 0 {
		return 0
	}
	return math.Pi * math.Sqrt(2*(width*width+depth*depth)) / 2
}
