package progression

// Exercise identifies a lift in the training log. Main lifts and the two derived
// exercises have fixed identifiers; anything else is a free-form assistance exercise.
type Exercise string

const (
	Squat         Exercise = "Squat"
	BenchPress    Exercise = "Bench Press"
	Deadlift      Exercise = "Deadlift"
	OverheadPress Exercise = "Overhead Press"
	PowerClean    Exercise = "Power Clean"

	// LightSquat is the reduced-load squat used once the lifter is intermediate.
	LightSquat Exercise = "Light Squat"
	// ChinUps is the accessory pull, introduced after a configured number of weeks.
	ChinUps Exercise = "Chin Ups"
)

// assistance work is always 3x10
const (
	assistanceSets       = 3
	assistanceRepsPerSet = 10
	AssistanceTargetReps = assistanceSets * assistanceRepsPerSet
)

// MainLifts returns the five progression lifts in their canonical order.
func MainLifts() []Exercise {
	return []Exercise{Squat, BenchPress, Deadlift, OverheadPress, PowerClean}
}

func (e Exercise) String() string {
	return string(e)
}

func (e Exercise) IsMainLift() bool {
	switch e {
	case Squat, BenchPress, Deadlift, OverheadPress, PowerClean:
		return true
	default:
		return false
	}
}

// IsProgressed reports whether the exercise gets a numeric target and an OK/STALL status.
func (e Exercise) IsProgressed() bool {
	return e.IsMainLift() || e == LightSquat
}

// Scheme returns the sets x reps label shown next to an exercise, e.g. "3x5".
func (s Settings) Scheme(e Exercise) string {
	switch {
	case e == "":
		return ""
	case e.IsMainLift():
		ls, ok := s.Lifts[e]
		if !ok {
			return ""
		}
		return ls.Scheme()
	case e == LightSquat:
		return s.Scheme(Squat)
	default:
		return LiftSettings{Sets: assistanceSets, RepsPerSet: assistanceRepsPerSet}.Scheme()
	}
}
