package bodyweight

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/2beens/barbelltracker/internal/telemetry/metrics"
	"github.com/2beens/barbelltracker/internal/telemetry/tracing"
	"github.com/2beens/barbelltracker/pkg"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=bodyweight_test

var validate = validator.New()

type weighInsRepo interface {
	Add(ctx context.Context, weighIn WeighIn) (*WeighIn, error)
	List(ctx context.Context) ([]WeighIn, error)
}

type AddWeighInRequest struct {
	Date   string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Weight float64 `json:"weight" validate:"required,gt=0,lt=1000"`
	Notes  string  `json:"notes" validate:"max=500"`
}

type Handler struct {
	repo    weighInsRepo
	metrics *metrics.Manager
}

func NewHandler(repo weighInsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metricsManager,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router, writeMiddleware ...mux.MiddlewareFunc) {
	var add http.Handler = http.HandlerFunc(h.HandleAdd)
	for i := len(writeMiddleware) - 1; i >= 0; i-- {
		add = writeMiddleware[i](add)
	}

	r.Handle("/bodyweight", add).Methods("POST", "OPTIONS").Name("add-weigh-in")
	r.HandleFunc("/bodyweight", h.HandleList).Methods("GET", "OPTIONS").Name("list-weigh-ins")
	r.HandleFunc("/bodyweight/stats", h.HandleStats).Methods("GET", "OPTIONS").Name("weigh-in-stats")
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodyweight.add")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AddWeighInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("new weigh-in, unmarshal json params: %s", err)
		http.Error(w, "add weigh-in failed", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "invalid weigh-in: "+err.Error(), http.StatusBadRequest)
		return
	}

	weighIn := WeighIn{
		Date:   time.Now().UTC().Truncate(24 * time.Hour),
		Weight: req.Weight,
		Notes:  req.Notes,
	}
	if req.Date != "" {
		weighIn.Date, _ = time.Parse("2006-01-02", req.Date)
	}

	added, err := h.repo.Add(ctx, weighIn)
	if err != nil {
		log.Errorf("add weigh-in: %s", err)
		http.Error(w, "error, add weigh-in failed", http.StatusInternalServerError)
		return
	}
	if h.metrics != nil {
		h.metrics.CounterWeighIns.Inc()
	}

	raw, err := json.Marshal(added)
	if err != nil {
		log.Errorf("marshal weigh-in: %s", err)
		http.Error(w, "error, add weigh-in failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, raw, http.StatusCreated)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodyweight.list")
	defer span.End()

	weighIns, err := h.repo.List(ctx)
	if err != nil {
		log.Errorf("list weigh-ins: %s", err)
		http.Error(w, "error, list weigh-ins failed", http.StatusInternalServerError)
		return
	}
	if weighIns == nil {
		weighIns = []WeighIn{}
	}

	raw, err := json.Marshal(weighIns)
	if err != nil {
		log.Errorf("marshal weigh-ins: %s", err)
		http.Error(w, "error, list weigh-ins failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, raw)
}

func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodyweight.stats")
	defer span.End()

	weighIns, err := h.repo.List(ctx)
	if err != nil {
		log.Errorf("weigh-in stats: %s", err)
		http.Error(w, "error, weigh-in stats failed", http.StatusInternalServerError)
		return
	}

	raw, err := json.Marshal(ComputeStats(weighIns))
	if err != nil {
		log.Errorf("marshal weigh-in stats: %s", err)
		http.Error(w, "error, weigh-in stats failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, raw)
}
