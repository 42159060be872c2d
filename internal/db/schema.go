package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Schema creates the tracker tables. Every statement is idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS public.training_log_entry
(
    idx           INTEGER PRIMARY KEY CHECK (idx >= 0),
    date          DATE,
    workout       VARCHAR(1) NOT NULL DEFAULT '' CHECK (workout IN ('', 'A', 'B')),
    exercise      VARCHAR NOT NULL DEFAULT '',
    actual_weight DOUBLE PRECISION CHECK (actual_weight >= 0),
    set_reps      INTEGER[] NOT NULL DEFAULT '{}' CHECK (cardinality(set_reps) <= 5),
    notes         TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS ix_training_log_entry_date ON public.training_log_entry (date);

CREATE TABLE IF NOT EXISTS public.weigh_in
(
    id     SERIAL PRIMARY KEY,
    date   DATE NOT NULL,
    weight DOUBLE PRECISION NOT NULL CHECK (weight > 0),
    notes  TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS ix_weigh_in_date ON public.weigh_in (date);
`

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// EnsureSchema runs the schema bootstrap against the given pool or connection.
func EnsureSchema(ctx context.Context, conn execer) error {
	if _, err := conn.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
