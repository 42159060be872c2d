package progression

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"
)

// MaxSets is the number of set slots a log entry has.
const MaxSets = 5

type WorkoutLabel string

const (
	WorkoutA WorkoutLabel = "A"
	WorkoutB WorkoutLabel = "B"
)

// Entry is one logged exercise of a session. Index is the position in the log and
// the only ordering the engine uses, dates are informational.
type Entry struct {
	Index        int          `json:"index"`
	Date         time.Time    `json:"date"`
	Workout      WorkoutLabel `json:"workout"`
	Exercise     Exercise     `json:"exercise"`
	ActualWeight *float64     `json:"actualWeight"`
	SetReps      []int        `json:"setReps"`
	Notes        string       `json:"notes,omitempty"`
}

// TotalReps sums the reps of all entered sets.
func (e Entry) TotalReps() int {
	total := 0
	for _, reps := range e.SetReps {
		total += reps
	}
	return total
}

// Check validates the shape of an entry, independent of any history.
func (e Entry) Check() error {
	malformed := func(format string, args ...any) error {
		return &MalformedEntryError{Index: e.Index, Exercise: e.Exercise, Reason: fmt.Sprintf(format, args...)}
	}

	switch e.Workout {
	case "", WorkoutA, WorkoutB:
	default:
		return malformed("unknown workout %q", e.Workout)
	}
	if e.ActualWeight != nil {
		w := *e.ActualWeight
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return malformed("weight is not a number")
		}
		if w < 0 {
			return malformed("negative weight %v", w)
		}
	}
	if len(e.SetReps) > MaxSets {
		return malformed("%d sets entered, at most %d allowed", len(e.SetReps), MaxSets)
	}
	for i, reps := range e.SetReps {
		if reps < 0 {
			return malformed("negative reps in set %d", i+1)
		}
	}
	return nil
}

type Status string

const (
	StatusBlank   Status = ""
	StatusOK      Status = "OK"
	StatusStall   Status = "STALL"
	StatusNone    Status = "NONE"
	StatusPending Status = "PENDING"
	StatusInvalid Status = "INVALID"
)

// Classify derives the status of an entry against its target reps.
// Progressed lifts without reps or without an actual weight are pending, not stalled.
func Classify(e Entry, targetReps int) Status {
	switch {
	case e.Exercise == "":
		return StatusBlank
	case !e.Exercise.IsProgressed():
		return StatusNone
	case len(e.SetReps) == 0 || e.ActualWeight == nil:
		return StatusPending
	case e.TotalReps() >= targetReps:
		return StatusOK
	default:
		return StatusStall
	}
}

// Target is what the lifter should attempt. Weight is nil for assistance work,
// which has no numeric target.
type Target struct {
	Weight *float64
	Reps   int
}

const noTargetWeight = "—"

func (t Target) String() string {
	if t.Weight == nil {
		return fmt.Sprintf("%s x %d", noTargetWeight, t.Reps)
	}
	return fmt.Sprintf("%s x %d", formatWeight(*t.Weight), t.Reps)
}

func (t Target) MarshalJSON() ([]byte, error) {
	var weight any = noTargetWeight
	if t.Weight != nil {
		weight = *t.Weight
	}
	return json.Marshal(struct {
		Weight any `json:"weight"`
		Reps   int `json:"reps"`
	}{weight, t.Reps})
}

func (t *Target) UnmarshalJSON(data []byte) error {
	var raw struct {
		Weight json.RawMessage `json:"weight"`
		Reps   int             `json:"reps"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.Reps = raw.Reps
	t.Weight = nil
	if len(raw.Weight) == 0 || string(raw.Weight) == "null" {
		return nil
	}

	var w float64
	if err := json.Unmarshal(raw.Weight, &w); err == nil {
		t.Weight = &w
		return nil
	}
	var marker string
	if err := json.Unmarshal(raw.Weight, &marker); err != nil || marker != noTargetWeight {
		return fmt.Errorf("target: want a weight or %q, got %s", noTargetWeight, raw.Weight)
	}
	return nil
}

// EntryState is the derived, never persisted, state of a log position.
type EntryState struct {
	Index     int      `json:"index"`
	Exercise  Exercise `json:"exercise"`
	Target    Target   `json:"target"`
	TotalReps int      `json:"totalReps"`
	Status    Status   `json:"status"`
	Error     string   `json:"error,omitempty"`
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// ordered returns the log sorted by Index. The input is not modified.
func ordered(log []Entry) []Entry {
	if sort.SliceIsSorted(log, func(i, j int) bool { return log[i].Index < log[j].Index }) {
		return log
	}
	sorted := make([]Entry, len(log))
	copy(sorted, log)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })
	return sorted
}

// day truncates a timestamp to its calendar date, keeping the wall clock date
// of the timestamp's own location.
func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
