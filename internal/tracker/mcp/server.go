package mcp

import (
	"github.com/2beens/barbelltracker/internal/tracker"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with the tracker tools. The main backend mounts
// it at /mcp, cmd/tracker_mcp serves it over stdio.
func NewServer(pool *pgxpool.Pool, service *tracker.Service) *mcp.Server {
	return newServer(NewContextService(NewPoolSchemaRepo(pool), service))
}

func newServer(svc contextService) *mcp.Server {
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "barbell-tracker",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_tracker_context",
		Description: "Returns the DB schema of the training log tables (training_log_entry, weigh_in): table names, columns, types, nullable, default.",
	}, h.GetTrackerContextTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_next_target",
		Description: "Returns the weight and total reps to attempt on the next entry of an exercise. Arg: exercise (e.g. Squat, Bench Press, Light Squat). Assistance work has no weight target, only 30 reps.",
	}, h.GetNextTargetTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_program_phase",
		Description: "Returns the training phase (NOVICE or INTERMEDIATE), stall counts and warning level per main lift, and the overall warning.",
	}, h.GetProgramPhaseTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_available_exercises",
		Description: "Returns the exercises a new log entry may use right now, in display order, with the elapsed training weeks.",
	}, h.GetAvailableExercisesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_personal_records",
		Description: "Returns the heaviest successful weight per main lift, or \"no data\".",
	}, h.GetPersonalRecordsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_progress_summary",
		Description: "Returns per main lift: set scheme, next target, stalls, warning, best and a deload suggestion once stalled repeatedly. Optional until (list of YYYY-MM-DD) adds the best weight per lift up to each date.",
	}, h.GetProgressSummaryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_warmup",
		Description: "Returns the warm-up sets (empty bar, 40/60/80%) and the work set for the next target of a main lift or the light squat. Arg: exercise.",
	}, h.GetWarmupTool())

	return s
}
