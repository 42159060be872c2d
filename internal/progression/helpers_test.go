package progression_test

import (
	"time"

	"github.com/2beens/barbelltracker/internal/progression"
)

var testStart = time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC)

// logBuilder appends entries with consecutive indexes, one session date per call to session().
type logBuilder struct {
	entries []progression.Entry
	date    time.Time
}

func newLog() *logBuilder {
	return &logBuilder{date: testStart}
}

func (b *logBuilder) session() *logBuilder {
	if len(b.entries) > 0 {
		b.date = b.date.AddDate(0, 0, 2)
	}
	return b
}

func (b *logBuilder) add(exercise progression.Exercise, weight float64, reps ...int) *logBuilder {
	w := weight
	b.entries = append(b.entries, progression.Entry{
		Index:        len(b.entries),
		Date:         b.date,
		Workout:      progression.WorkoutA,
		Exercise:     exercise,
		ActualWeight: &w,
		SetReps:      reps,
	})
	return b
}

func (b *logBuilder) build() []progression.Entry {
	return b.entries
}

func ptr(f float64) *float64 {
	return &f
}
