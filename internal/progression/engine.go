package progression

import (
	"fmt"
	"time"
)

// Engine evaluates a training log against validated settings. It holds no log
// state, every call recomputes from the log it is given.
type Engine struct {
	settings Settings
}

// NewEngine refuses settings with configuration errors, all of them are returned.
func NewEngine(s Settings) (*Engine, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return &Engine{settings: s}, nil
}

func (e *Engine) Settings() Settings {
	return e.settings
}

// States derives target, total reps and status for every log position.
func (e *Engine) States(log []Entry) []EntryState {
	states, _ := replay(log, e.settings)
	return states
}

// NextTarget prices the next attempt of an exercise after the whole log.
func (e *Engine) NextTarget(log []Entry, exercise Exercise) (Target, error) {
	return ComputeTarget(exercise, log, e.settings)
}

func (e *Engine) StallCounts(log []Entry) map[Exercise]int {
	return stallCounts(e.States(log))
}

func (e *Engine) Phase(log []Entry) PhaseState {
	return DetectPhase(e.StallCounts(log), e.settings.StallThreshold)
}

func (e *Engine) AvailableExercises(log []Entry) []Exercise {
	return AvailableExercises(e.Phase(log), log, e.settings)
}

func (e *Engine) BestByPeriod(log []Entry, boundaries []time.Time) []PeriodBest {
	return bestByPeriod(log, e.States(log), boundaries)
}

func (e *Engine) PersonalRecords(log []Entry) map[Exercise]Best {
	return personalRecords(log, e.States(log))
}

// Warmup returns the warm-up sets for the next attempt of a progressed lift.
func (e *Engine) Warmup(log []Entry, exercise Exercise) ([]WarmupSet, error) {
	if !exercise.IsProgressed() {
		return nil, fmt.Errorf("no warm-up for assistance exercise %q", exercise)
	}
	target, err := e.NextTarget(log, exercise)
	if err != nil {
		return nil, err
	}
	if *target.Weight < e.settings.BarWeight {
		return nil, fmt.Errorf("no warm-up for %s at %s: %w", exercise, formatWeight(*target.Weight), ErrBelowBar)
	}
	return WarmupSets(*target.Weight, e.settings.BarWeight, e.settings.Scheme(exercise)), nil
}

// LiftSummary is the per main lift overview: what comes next and how it's going.
type LiftSummary struct {
	Exercise   Exercise `json:"exercise"`
	Scheme     string   `json:"scheme"`
	NextTarget Target   `json:"nextTarget"`
	Stalls     int      `json:"stalls"`
	Warning    Warning  `json:"warning"`
	Best       Best     `json:"best"`
	// DeloadTo is only suggested once a lift has stalled repeatedly.
	DeloadTo *float64 `json:"deloadTo,omitempty"`
}

// Summary is the part of a Snapshot whose size doesn't grow with the log.
type Summary struct {
	LogLength    int               `json:"logLength"`
	Phase        PhaseState        `json:"phase"`
	ElapsedWeeks int               `json:"elapsedWeeks"`
	Available    []Exercise        `json:"available"`
	Records      map[Exercise]Best `json:"records"`
	Lifts        []LiftSummary     `json:"lifts"`
}

// Snapshot is the complete derived state of a log.
type Snapshot struct {
	Summary
	Entries []EntryState `json:"entries"`
}

// Evaluate derives everything from a single pass over the log.
func (e *Engine) Evaluate(log []Entry) (*Snapshot, error) {
	states, h := replay(log, e.settings)
	phase := DetectPhase(stallCounts(states), e.settings.StallThreshold)
	records := personalRecords(log, states)

	lifts := make([]LiftSummary, 0, len(MainLifts()))
	for _, lift := range MainLifts() {
		next, err := h.target(lift, e.settings)
		if err != nil {
			return nil, fmt.Errorf("target for %s: %w", lift, err)
		}
		summary := LiftSummary{
			Exercise:   lift,
			Scheme:     e.settings.Scheme(lift),
			NextTarget: next,
			Stalls:     phase.StallCounts[lift],
			Warning:    phase.Warnings[lift],
			Best:       records[lift],
		}
		if summary.Warning == WarningWarning || summary.Warning == WarningTransition {
			deload := Round5(*next.Weight * (1 - e.settings.DeloadPercent/100))
			summary.DeloadTo = &deload
		}
		lifts = append(lifts, summary)
	}

	return &Snapshot{
		Summary: Summary{
			LogLength:    len(log),
			Phase:        phase,
			ElapsedWeeks: ElapsedWeeks(log),
			Available:    AvailableExercises(phase, log, e.settings),
			Records:      records,
			Lifts:        lifts,
		},
		Entries: states,
	}, nil
}
