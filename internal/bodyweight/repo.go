package bodyweight

import (
	"context"
	"fmt"

	"github.com/2beens/barbelltracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, weighIn WeighIn) (_ *WeighIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodyweight.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO weigh_in (date, weight, notes) VALUES ($1, $2, $3) RETURNING id;`,
		weighIn.Date, weighIn.Weight, weighIn.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("insert weigh-in: %w", err)
	}
	defer rows.Close()

	id, err := pgx.CollectExactlyOneRow(rows, pgx.RowTo[int32])
	if err != nil {
		return nil, fmt.Errorf("read weigh-in id: %w", err)
	}
	weighIn.ID = int(id)
	return &weighIn, nil
}

// List returns all weigh-ins in the order they were recorded.
func (r *Repo) List(ctx context.Context) (_ []WeighIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodyweight.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT id, date, weight, COALESCE(notes, '') FROM weigh_in ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("query weigh-ins: %w", err)
	}
	defer rows.Close()

	var weighIns []WeighIn
	for rows.Next() {
		var w WeighIn
		var id int32
		if err := rows.Scan(&id, &w.Date, &w.Weight, &w.Notes); err != nil {
			return nil, fmt.Errorf("scan weigh-in: %w", err)
		}
		w.ID = int(id)
		weighIns = append(weighIns, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating weigh-ins: %w", err)
	}

	return weighIns, nil
}
