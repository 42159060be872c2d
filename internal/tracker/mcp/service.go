package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/barbelltracker/internal/progression"
	"github.com/2beens/barbelltracker/internal/tracker"
)

// trackerQueries is the read side of the tracker service.
type trackerQueries interface {
	NextTarget(ctx context.Context, exercise progression.Exercise) (progression.Target, error)
	Phase(ctx context.Context) (progression.PhaseState, error)
	Availability(ctx context.Context) (*tracker.Availability, error)
	Records(ctx context.Context) (map[progression.Exercise]progression.Best, error)
	Summary(ctx context.Context) ([]progression.LiftSummary, error)
	Progress(ctx context.Context, boundaries []time.Time) ([]progression.PeriodBest, error)
	Warmup(ctx context.Context, exercise progression.Exercise) ([]progression.WarmupSet, error)
}

// contextService is what the tool handlers need. Used by Handler for testability.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	trackerQueries
}

// ContextService combines the DB schema with the tracker queries.
type ContextService struct {
	schema SchemaRepo
	trackerQueries
}

func NewContextService(schemaRepo SchemaRepo, queries trackerQueries) *ContextService {
	return &ContextService{
		schema:         schemaRepo,
		trackerQueries: queries,
	}
}

// GetSchema returns the tracker tables with their columns as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetTrackerColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatTrackerSchema(cols), nil
}

func formatTrackerSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Tracker DB Schema\n\nNo tracker tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Tracker DB Schema\n\n")
	b.WriteString("Tables: training_log_entry, weigh_in (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}
