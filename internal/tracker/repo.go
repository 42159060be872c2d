package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/barbelltracker/internal/progression"
	"github.com/2beens/barbelltracker/internal/telemetry/tracing"
	"github.com/2beens/barbelltracker/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrEntryNotFound = errors.New("log entry not found")
	// ErrIndexTaken means another entry was appended since the log was read.
	ErrIndexTaken = errors.New("log index already taken")
)

const entryColumns = `idx, date, workout, exercise, actual_weight, set_reps, notes`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add inserts the entry at its Index. The index must be free, the caller
// picks it from the log it validated against.
func (r *Repo) Add(ctx context.Context, entry progression.Entry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("idx", entry.Index),
		attribute.String("exercise", entry.Exercise.String()),
	)

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO training_log_entry (`+entryColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		entry.Index, nullableDate(entry.Date), string(entry.Workout), entry.Exercise.String(),
		entry.ActualWeight, setReps(entry.SetReps), entry.Notes,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrIndexTaken
		}
		if pkg.IsCheckViolationError(err) {
			return refused(entry, err)
		}
		return fmt.Errorf("insert entry %d: %w", entry.Index, err)
	}
	return nil
}

func (r *Repo) Update(ctx context.Context, entry progression.Entry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("idx", entry.Index))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE training_log_entry
			SET date = $2, workout = $3, exercise = $4, actual_weight = $5, set_reps = $6, notes = $7
			WHERE idx = $1;`,
		entry.Index, nullableDate(entry.Date), string(entry.Workout), entry.Exercise.String(),
		entry.ActualWeight, setReps(entry.SetReps), entry.Notes,
	)
	if err != nil {
		if pkg.IsCheckViolationError(err) {
			return refused(entry, err)
		}
		return fmt.Errorf("update entry %d: %w", entry.Index, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, idx int) (_ *progression.Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("idx", idx))

	row := r.db.QueryRow(ctx, `SELECT `+entryColumns+` FROM training_log_entry WHERE idx = $1;`, idx)
	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

// List returns the whole log in index order.
func (r *Repo) List(ctx context.Context) (_ []progression.Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT `+entryColumns+` FROM training_log_entry ORDER BY idx;`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	entries := make([]progression.Entry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}

	span.SetAttributes(attribute.Int("entries", len(entries)))
	return entries, nil
}

func scanEntry(row pgx.Row) (*progression.Entry, error) {
	var (
		entry    progression.Entry
		date     *time.Time
		workout  string
		exercise string
		reps     []int32
	)
	if err := row.Scan(&entry.Index, &date, &workout, &exercise, &entry.ActualWeight, &reps, &entry.Notes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan entry: %w", err)
	}

	if date != nil {
		entry.Date = *date
	}
	entry.Workout = progression.WorkoutLabel(workout)
	entry.Exercise = progression.Exercise(exercise)
	if len(reps) > 0 {
		entry.SetReps = make([]int, len(reps))
		for i, r := range reps {
			entry.SetReps[i] = int(r)
		}
	}
	return &entry, nil
}

// refused turns a row rejected by a table constraint into a malformed entry.
func refused(entry progression.Entry, err error) error {
	return &progression.MalformedEntryError{
		Index:    entry.Index,
		Exercise: entry.Exercise,
		Reason:   fmt.Sprintf("refused by storage: %s", err),
	}
}

func nullableDate(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

func setReps(reps []int) []int32 {
	out := make([]int32, len(reps))
	for i, r := range reps {
		out[i] = int32(r)
	}
	return out
}
