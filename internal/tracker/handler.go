package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/barbelltracker/internal/bodyweight"
	"github.com/2beens/barbelltracker/internal/progression"
	"github.com/2beens/barbelltracker/internal/telemetry/tracing"
	"github.com/2beens/barbelltracker/pkg"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=tracker_test

const dateLayout = "2006-01-02"

var validate = validator.New()

type trackerService interface {
	Entries(ctx context.Context) ([]EntryView, error)
	AddEntry(ctx context.Context, entry progression.Entry) (*EntryView, error)
	CorrectEntry(ctx context.Context, idx int, c Correction) (*EntryView, error)
	NextTarget(ctx context.Context, exercise progression.Exercise) (progression.Target, error)
	Phase(ctx context.Context) (progression.PhaseState, error)
	Availability(ctx context.Context) (*Availability, error)
	Progress(ctx context.Context, boundaries []time.Time) ([]progression.PeriodBest, error)
	Records(ctx context.Context) (map[progression.Exercise]progression.Best, error)
	Summary(ctx context.Context) ([]progression.LiftSummary, error)
	Warmup(ctx context.Context, exercise progression.Exercise) ([]progression.WarmupSet, error)
}

type weighInsLister interface {
	List(ctx context.Context) ([]bodyweight.WeighIn, error)
}

type AddEntryRequest struct {
	Date         string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Workout      string   `json:"workout" validate:"omitempty,oneof=A B"`
	Exercise     string   `json:"exercise" validate:"required,max=64"`
	ActualWeight *float64 `json:"actualWeight" validate:"omitempty,gte=0,lte=2000"`
	SetReps      []int    `json:"setReps" validate:"max=5,dive,gte=0,lte=100"`
	Notes        string   `json:"notes" validate:"max=500"`
}

type CorrectEntryRequest struct {
	Date         *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	ActualWeight *float64 `json:"actualWeight" validate:"omitempty,gte=0,lte=2000"`
	SetReps      []int    `json:"setReps" validate:"omitempty,max=5,dive,gte=0,lte=100"`
	Notes        *string  `json:"notes" validate:"omitempty,max=500"`
}

// ProgressPeriod is one cutoff of the progress table. Bodyweight is the heaviest
// weigh-in up to the cutoff, left out when nothing was weighed yet.
type ProgressPeriod struct {
	progression.PeriodBest
	Bodyweight *float64 `json:"bodyweight,omitempty"`
}

type ProgressResponse struct {
	Periods []ProgressPeriod `json:"periods"`
}

type Handler struct {
	service  trackerService
	weighIns weighInsLister
}

// NewHandler creates the tracker handler. weighIns may be nil, progress is then
// served without the body weight column.
func NewHandler(service trackerService, weighIns weighInsLister) *Handler {
	return &Handler{
		service:  service,
		weighIns: weighIns,
	}
}

// SetupRoutes registers the tracker routes. Writes go through the given
// middleware (auth, rate limiting).
func (h *Handler) SetupRoutes(r *mux.Router, writeMiddleware ...mux.MiddlewareFunc) {
	write := func(handlerFunc http.HandlerFunc) http.Handler {
		var handler http.Handler = handlerFunc
		for i := len(writeMiddleware) - 1; i >= 0; i-- {
			handler = writeMiddleware[i](handler)
		}
		return handler
	}

	r.Handle("/tracker/entries", write(h.HandleAddEntry)).Methods("POST", "OPTIONS").Name("add-entry")
	r.Handle("/tracker/entries/{index}", write(h.HandleCorrectEntry)).Methods("PUT", "OPTIONS").Name("correct-entry")
	r.HandleFunc("/tracker/entries", h.HandleListEntries).Methods("GET", "OPTIONS").Name("list-entries")
	r.HandleFunc("/tracker/target/{exercise}", h.HandleNextTarget).Methods("GET", "OPTIONS").Name("next-target")
	r.HandleFunc("/tracker/phase", h.HandlePhase).Methods("GET", "OPTIONS").Name("phase")
	r.HandleFunc("/tracker/exercises", h.HandleExercises).Methods("GET", "OPTIONS").Name("exercises")
	r.HandleFunc("/tracker/progress", h.HandleProgress).Methods("GET", "OPTIONS").Name("progress")
	r.HandleFunc("/tracker/records", h.HandleRecords).Methods("GET", "OPTIONS").Name("records")
	r.HandleFunc("/tracker/summary", h.HandleSummary).Methods("GET", "OPTIONS").Name("summary")
	r.HandleFunc("/tracker/warmup/{exercise}", h.HandleWarmup).Methods("GET", "OPTIONS").Name("warmup")
}

func (h *Handler) HandleAddEntry(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.add")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AddEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("new entry, unmarshal json params: %s", err)
		http.Error(w, "add entry failed", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "invalid entry: "+err.Error(), http.StatusBadRequest)
		return
	}

	entry := progression.Entry{
		Workout:      progression.WorkoutLabel(req.Workout),
		Exercise:     progression.Exercise(req.Exercise),
		ActualWeight: req.ActualWeight,
		SetReps:      req.SetReps,
		Notes:        req.Notes,
	}
	if req.Date != "" {
		entry.Date, _ = time.Parse(dateLayout, req.Date)
	}

	view, err := h.service.AddEntry(ctx, entry)
	if err != nil {
		h.writeError(w, "add entry", err)
		return
	}

	h.writeJSON(w, view, http.StatusCreated)
}

func (h *Handler) HandleCorrectEntry(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.correct")
	defer span.End()

	idx, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil || idx < 0 {
		http.Error(w, "error, index NaN", http.StatusBadRequest)
		return
	}

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req CorrectEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("correct entry, unmarshal json params: %s", err)
		http.Error(w, "correct entry failed", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "invalid correction: "+err.Error(), http.StatusBadRequest)
		return
	}

	correction := Correction{
		ActualWeight: req.ActualWeight,
		SetReps:      req.SetReps,
		Notes:        req.Notes,
	}
	if req.Date != nil {
		date, _ := time.Parse(dateLayout, *req.Date)
		correction.Date = &date
	}

	view, err := h.service.CorrectEntry(ctx, idx, correction)
	if err != nil {
		h.writeError(w, "correct entry", err)
		return
	}

	h.writeJSON(w, view, http.StatusOK)
}

func (h *Handler) HandleListEntries(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.list")
	defer span.End()

	entries, err := h.service.Entries(ctx)
	if err != nil {
		h.writeError(w, "list entries", err)
		return
	}
	h.writeJSON(w, entries, http.StatusOK)
}

func (h *Handler) HandleNextTarget(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.target")
	defer span.End()

	exercise := progression.Exercise(mux.Vars(r)["exercise"])
	target, err := h.service.NextTarget(ctx, exercise)
	if err != nil {
		h.writeError(w, "next target", err)
		return
	}

	h.writeJSON(w, struct {
		Exercise progression.Exercise `json:"exercise"`
		Target   progression.Target   `json:"target"`
		Display  string               `json:"display"`
	}{exercise, target, target.String()}, http.StatusOK)
}

func (h *Handler) HandlePhase(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.phase")
	defer span.End()

	phase, err := h.service.Phase(ctx)
	if err != nil {
		h.writeError(w, "phase", err)
		return
	}
	h.writeJSON(w, phase, http.StatusOK)
}

func (h *Handler) HandleExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.exercises")
	defer span.End()

	availability, err := h.service.Availability(ctx)
	if err != nil {
		h.writeError(w, "available exercises", err)
		return
	}
	h.writeJSON(w, availability, http.StatusOK)
}

// HandleProgress expects one or more until=YYYY-MM-DD cutoffs, today when none given.
func (h *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.progress")
	defer span.End()

	var boundaries []time.Time
	for _, until := range r.URL.Query()["until"] {
		t, err := time.Parse(dateLayout, until)
		if err != nil {
			http.Error(w, "error, until must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		boundaries = append(boundaries, t)
	}
	if len(boundaries) == 0 {
		boundaries = append(boundaries, time.Now().UTC())
	}

	periods, err := h.service.Progress(ctx, boundaries)
	if err != nil {
		h.writeError(w, "progress", err)
		return
	}

	resp := ProgressResponse{Periods: make([]ProgressPeriod, len(periods))}
	for i, p := range periods {
		resp.Periods[i].PeriodBest = p
	}
	if h.weighIns != nil {
		weighIns, err := h.weighIns.List(ctx)
		if err != nil {
			log.Warnf("progress, list weigh-ins: %s", err)
		} else {
			for i, bw := range bodyweight.BestUntil(weighIns, boundaries) {
				if i < len(resp.Periods) {
					resp.Periods[i].Bodyweight = bw
				}
			}
		}
	}
	h.writeJSON(w, resp, http.StatusOK)
}

func (h *Handler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.records")
	defer span.End()

	records, err := h.service.Records(ctx)
	if err != nil {
		h.writeError(w, "records", err)
		return
	}
	h.writeJSON(w, records, http.StatusOK)
}

func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.summary")
	defer span.End()

	summary, err := h.service.Summary(ctx)
	if err != nil {
		h.writeError(w, "summary", err)
		return
	}
	h.writeJSON(w, summary, http.StatusOK)
}

func (h *Handler) HandleWarmup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.warmup")
	defer span.End()

	exercise := progression.Exercise(mux.Vars(r)["exercise"])
	if !exercise.IsProgressed() {
		http.Error(w, "error, warm-up only for main lifts and the light squat", http.StatusBadRequest)
		return
	}

	sets, err := h.service.Warmup(ctx, exercise)
	if err != nil {
		h.writeError(w, "warm-up", err)
		return
	}
	h.writeJSON(w, sets, http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any, status int) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		http.Error(w, "error, failed to encode response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, raw, status)
}

// writeError maps service errors to status codes, malformed input is the
// client's problem and is reported back verbatim.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	var malformed *progression.MalformedEntryError
	switch {
	case errors.As(err, &malformed):
		http.Error(w, malformed.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrEntryNotFound):
		http.Error(w, "error, entry not found", http.StatusNotFound)
	case errors.Is(err, ErrIndexTaken):
		http.Error(w, "error, log changed meanwhile, retry", http.StatusConflict)
	case errors.Is(err, progression.ErrBelowBar):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, "error, "+op+" failed", http.StatusInternalServerError)
	}
}
