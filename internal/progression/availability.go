package progression

import "fmt"

const sessionsPerWeek = 3

// ElapsedWeeks estimates the training week from the number of distinct session
// dates, assuming three sessions a week. It is never less than 1.
func ElapsedWeeks(log []Entry) int {
	dates := make(map[int64]struct{})
	for _, e := range log {
		if e.Date.IsZero() {
			continue
		}
		dates[day(e.Date).Unix()] = struct{}{}
	}
	weeks := (len(dates) + sessionsPerWeek - 1) / sessionsPerWeek
	return max(1, weeks)
}

// AvailableExercises resolves which exercises a new entry may use: the main
// lifts, the light squat while intermediate, chin ups once their intro week is
// reached, then the assistance list. It is re-evaluated on every call, a gate
// can close again when history changes.
func AvailableExercises(phase PhaseState, log []Entry, s Settings) []Exercise {
	available := MainLifts()
	if phase.Intermediate() {
		available = append(available, LightSquat)
	}
	if ElapsedWeeks(log) >= s.AccessoryIntroWeek {
		available = append(available, ChinUps)
	}

	seen := make(map[Exercise]bool, len(available)+len(s.Assistance))
	for _, e := range available {
		seen[e] = true
	}
	for _, e := range s.Assistance {
		if e == "" || seen[e] || e == LightSquat || e == ChinUps {
			continue
		}
		seen[e] = true
		available = append(available, e)
	}
	return available
}

// ValidateNewEntry checks an entry about to be appended. Availability is only
// enforced here, at entry time, never against historical rows.
func ValidateNewEntry(e Entry, available []Exercise) error {
	if e.Exercise == "" {
		return &MalformedEntryError{Index: e.Index, Reason: "no exercise selected"}
	}
	if err := e.Check(); err != nil {
		return err
	}
	for _, a := range available {
		if a == e.Exercise {
			return nil
		}
	}
	return &MalformedEntryError{
		Index:    e.Index,
		Exercise: e.Exercise,
		Reason:   fmt.Sprintf("exercise %q is not available right now", e.Exercise),
	}
}
