package progression

import (
	"fmt"

	"go.uber.org/multierr"
)

type LiftSettings struct {
	StartingWeight float64 `toml:"starting_weight" json:"startingWeight"`
	Increment      float64 `toml:"increment" json:"increment"`
	Sets           int     `toml:"sets" json:"sets"`
	RepsPerSet     int     `toml:"reps_per_set" json:"repsPerSet"`
}

// TargetReps is the flat rep total across all sets, e.g. 15 for 3x5.
func (ls LiftSettings) TargetReps() int {
	return ls.Sets * ls.RepsPerSet
}

func (ls LiftSettings) Scheme() string {
	return fmt.Sprintf("%dx%d", ls.Sets, ls.RepsPerSet)
}

// Settings holds the tunable program parameters. Weights are in the unit the
// lifter uses (lbs by default), percentages are 0-100.
type Settings struct {
	Lifts map[Exercise]LiftSettings `toml:"lifts" json:"lifts"`

	StallThreshold        int     `toml:"stall_threshold" json:"stallThreshold"`
	DeloadPercent         float64 `toml:"deload_percent" json:"deloadPercent"`
	LightVariantPercent   float64 `toml:"light_variant_percent" json:"lightVariantPercent"`
	LightVariantIncrement float64 `toml:"light_variant_increment" json:"lightVariantIncrement"`
	AccessoryIntroWeek    int     `toml:"accessory_intro_week" json:"accessoryIntroWeek"`
	BarWeight             float64 `toml:"bar_weight" json:"barWeight"`

	// Assistance is the user maintained list of free-form exercises, in display order.
	Assistance []Exercise `toml:"assistance" json:"assistance"`
}

func DefaultSettings() Settings {
	return Settings{
		Lifts: map[Exercise]LiftSettings{
			Squat:         {StartingWeight: 135, Increment: 5, Sets: 3, RepsPerSet: 5},
			BenchPress:    {StartingWeight: 95, Increment: 5, Sets: 3, RepsPerSet: 5},
			Deadlift:      {StartingWeight: 155, Increment: 10, Sets: 1, RepsPerSet: 5},
			OverheadPress: {StartingWeight: 65, Increment: 5, Sets: 3, RepsPerSet: 5},
			PowerClean:    {StartingWeight: 95, Increment: 5, Sets: 5, RepsPerSet: 3},
		},
		StallThreshold:        3,
		DeloadPercent:         10,
		LightVariantPercent:   80,
		LightVariantIncrement: 5,
		AccessoryIntroWeek:    2,
		BarWeight:             45,
		Assistance: []Exercise{
			"Barbell Curls",
			"Back Extension",
			"Skull Crushers",
			"Tricep Pushdown",
			"Dips",
		},
	}
}

// Validate returns every configuration problem found, combined into one error.
// Each individual error is a *ConfigurationError.
func (s Settings) Validate() error {
	var err error
	for _, lift := range MainLifts() {
		ls, ok := s.Lifts[lift]
		if !ok {
			err = multierr.Append(err, &ConfigurationError{Exercise: lift, Field: "lift", Reason: "missing"})
			continue
		}
		if ls.StartingWeight <= 0 {
			err = multierr.Append(err, &ConfigurationError{Exercise: lift, Field: "starting_weight", Reason: "must be positive"})
		}
		if ls.Increment <= 0 {
			err = multierr.Append(err, &ConfigurationError{Exercise: lift, Field: "increment", Reason: "must be positive"})
		}
		if ls.Sets <= 0 || ls.Sets > MaxSets {
			err = multierr.Append(err, &ConfigurationError{Exercise: lift, Field: "sets", Reason: fmt.Sprintf("must be between 1 and %d", MaxSets)})
		}
		if ls.RepsPerSet <= 0 {
			err = multierr.Append(err, &ConfigurationError{Exercise: lift, Field: "reps_per_set", Reason: "must be positive"})
		}
	}

	if s.StallThreshold < 1 {
		err = multierr.Append(err, &ConfigurationError{Field: "stall_threshold", Reason: "must be at least 1"})
	}
	if s.AccessoryIntroWeek < 0 {
		err = multierr.Append(err, &ConfigurationError{Field: "accessory_intro_week", Reason: "must not be negative"})
	}
	if s.LightVariantPercent < 0 || s.LightVariantPercent > 100 {
		err = multierr.Append(err, &ConfigurationError{Field: "light_variant_percent", Reason: "must be between 0 and 100"})
	}
	if s.LightVariantIncrement <= 0 {
		err = multierr.Append(err, &ConfigurationError{Field: "light_variant_increment", Reason: "must be positive"})
	}
	if s.DeloadPercent < 0 || s.DeloadPercent >= 100 {
		err = multierr.Append(err, &ConfigurationError{Field: "deload_percent", Reason: "must be between 0 and 100"})
	}
	if s.BarWeight < 0 {
		err = multierr.Append(err, &ConfigurationError{Field: "bar_weight", Reason: "must not be negative"})
	}

	return err
}

// TargetReps returns the flat rep target for any exercise.
func (s Settings) TargetReps(e Exercise) (int, error) {
	switch {
	case e.IsMainLift():
		ls, err := s.lift(e)
		if err != nil {
			return 0, err
		}
		return ls.TargetReps(), nil
	case e == LightSquat:
		return s.TargetReps(Squat)
	default:
		return AssistanceTargetReps, nil
	}
}

func (s Settings) lift(e Exercise) (LiftSettings, error) {
	ls, ok := s.Lifts[e]
	if !ok {
		return LiftSettings{}, &ConfigurationError{Exercise: e, Field: "lift", Reason: "missing"}
	}
	if ls.StartingWeight <= 0 {
		return LiftSettings{}, &ConfigurationError{Exercise: e, Field: "starting_weight", Reason: "must be positive"}
	}
	if ls.Increment <= 0 {
		return LiftSettings{}, &ConfigurationError{Exercise: e, Field: "increment", Reason: "must be positive"}
	}
	return ls, nil
}
