package tracker

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/barbelltracker/internal/progression"
	"github.com/2beens/barbelltracker/internal/telemetry/metrics"
	"github.com/2beens/barbelltracker/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=tracker_test

type entriesRepo interface {
	Add(ctx context.Context, entry progression.Entry) error
	Update(ctx context.Context, entry progression.Entry) error
	Get(ctx context.Context, idx int) (*progression.Entry, error)
	List(ctx context.Context) ([]progression.Entry, error)
}

// EntryView is a log entry together with its derived state.
type EntryView struct {
	progression.Entry
	State progression.EntryState `json:"state"`
}

type Availability struct {
	Exercises    []progression.Exercise `json:"exercises"`
	ElapsedWeeks int                    `json:"elapsedWeeks"`
	Phase        progression.Phase      `json:"phase"`
}

// Correction changes a historical entry. Nil fields are left as they are.
type Correction struct {
	Date         *time.Time
	ActualWeight *float64
	SetReps      []int
	Notes        *string
}

type Service struct {
	repo     entriesRepo
	engine   *progression.Engine
	cache    *freecache.Cache
	cacheTTL time.Duration
	metrics  *metrics.Manager

	// now is swapped in tests
	now func() time.Time
}

func NewService(
	repo entriesRepo,
	engine *progression.Engine,
	cache *freecache.Cache,
	cacheTTL time.Duration,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:     repo,
		engine:   engine,
		cache:    cache,
		cacheTTL: cacheTTL,
		metrics:  metricsManager,
		now:      time.Now,
	}
}

func (s *Service) Settings() progression.Settings {
	return s.engine.Settings()
}

func (s *Service) Log(ctx context.Context) ([]progression.Entry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list log entries: %w", err)
	}
	return entries, nil
}

// Snapshot evaluates the whole log, or returns the memoized evaluation of an
// identical log. The cache key covers settings and every entry field.
func (s *Service) Snapshot(ctx context.Context) (_ *progression.Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.snapshot")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := s.Log(ctx)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("entries", len(entries)))

	return s.summaryOf(entries)
}

// summaryOf memoizes only the summary, its size is independent of the log
// length. Per-entry states are derived on demand.
func (s *Service) summaryOf(entries []progression.Entry) (*progression.Summary, error) {
	key, err := fingerprint(s.engine.Settings(), entries)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(key); err == nil {
			var summary progression.Summary
			uErr := json.Unmarshal(cached, &summary)
			if uErr == nil {
				s.cacheResult("hit")
				return &summary, nil
			}
			log.Warnf("corrupt cached snapshot, re-evaluating: %s", uErr)
		} else if !errors.Is(err, freecache.ErrNotFound) {
			log.Warnf("snapshot cache get: %s", err)
		}
		s.cacheResult("miss")
	}

	start := time.Now()
	snapshot, err := s.engine.Evaluate(entries)
	if err != nil {
		return nil, fmt.Errorf("evaluate log: %w", err)
	}
	summary := &snapshot.Summary
	if s.metrics != nil {
		s.metrics.HistogramEvaluation.Observe(time.Since(start).Seconds())
		for _, lift := range progression.MainLifts() {
			s.metrics.GaugeStallCount.WithLabelValues(lift.String()).Set(float64(summary.Phase.StallCounts[lift]))
		}
		if summary.Phase.Intermediate() {
			s.metrics.GaugeIntermediate.Set(1)
		} else {
			s.metrics.GaugeIntermediate.Set(0)
		}
	}

	if s.cache != nil {
		s.store(key, summary)
	}

	return summary, nil
}

func (s *Service) store(key []byte, summary *progression.Summary) {
	raw, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("marshal snapshot for cache: %s", err)
		return
	}
	err = s.cache.Set(key, raw, int(s.cacheTTL.Seconds()))
	switch {
	case err == nil:
	case errors.Is(err, freecache.ErrLargeEntry):
		log.Warnf("snapshot of %d bytes is too large for the cache, served uncached", len(raw))
		s.cacheResult("too_large")
	default:
		log.Errorf("snapshot cache set: %s", err)
	}
}

// states derives the per-entry states of a log, never cached.
func (s *Service) states(entries []progression.Entry) []progression.EntryState {
	start := time.Now()
	states := s.engine.States(entries)
	if s.metrics != nil {
		s.metrics.HistogramEvaluation.Observe(time.Since(start).Seconds())
	}
	return states
}

func (s *Service) cacheResult(result string) {
	if s.metrics != nil {
		s.metrics.CounterSnapshotCache.WithLabelValues(result).Inc()
	}
}

// Entries joins every log entry with its derived state.
func (s *Service) Entries(ctx context.Context) (_ []EntryView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.entries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := s.Log(ctx)
	if err != nil {
		return nil, err
	}
	return joinStates(entries, s.states(entries)), nil
}

// AddEntry appends an entry at the end of the log. The exercise must be
// available for the log as it is right now.
func (s *Service) AddEntry(ctx context.Context, entry progression.Entry) (_ *EntryView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", entry.Exercise.String()))

	entries, err := s.Log(ctx)
	if err != nil {
		return nil, err
	}
	before, err := s.summaryOf(entries)
	if err != nil {
		return nil, err
	}

	entry.Index = nextIndex(entries)
	if entry.Date.IsZero() {
		entry.Date = s.now().UTC()
	}
	if err := progression.ValidateNewEntry(entry, before.Available); err != nil {
		if s.metrics != nil {
			s.metrics.CounterEntriesRejected.Inc()
		}
		return nil, err
	}

	if err := s.repo.Add(ctx, entry); err != nil {
		return nil, fmt.Errorf("add entry: %w", err)
	}

	after := append(entries, entry)
	// warm the cache for the log as it is now
	if _, err := s.summaryOf(after); err != nil {
		return nil, err
	}
	view := &EntryView{Entry: entry, State: stateOf(s.states(after), entry.Index)}

	if s.metrics != nil {
		s.metrics.CounterEntriesAdded.WithLabelValues(exerciseLabel(entry.Exercise), string(view.State.Status)).Inc()
	}
	log.Debugf("entry #%d [%s] added: %s", entry.Index, entry.Exercise, view.State.Status)
	return view, nil
}

// CorrectEntry edits a historical entry. Availability is never re-checked,
// the exercise of an entry can't be changed.
func (s *Service) CorrectEntry(ctx context.Context, idx int, c Correction) (_ *EntryView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.correct")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("idx", idx))

	entry, err := s.repo.Get(ctx, idx)
	if err != nil {
		return nil, err
	}

	if c.Date != nil {
		entry.Date = *c.Date
	}
	if c.ActualWeight != nil {
		entry.ActualWeight = c.ActualWeight
	}
	if c.SetReps != nil {
		entry.SetReps = c.SetReps
	}
	if c.Notes != nil {
		entry.Notes = *c.Notes
	}
	if err := entry.Check(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, *entry); err != nil {
		return nil, err
	}

	entries, err := s.Log(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.summaryOf(entries); err != nil {
		return nil, err
	}
	return &EntryView{Entry: *entry, State: stateOf(s.states(entries), idx)}, nil
}

func (s *Service) NextTarget(ctx context.Context, exercise progression.Exercise) (_ progression.Target, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.target")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", exercise.String()))

	if exercise == "" {
		return progression.Target{}, errors.New("no exercise given")
	}
	if exercise.IsMainLift() {
		// main lift targets are part of the (cached) lift summary
		snapshot, err := s.Snapshot(ctx)
		if err != nil {
			return progression.Target{}, err
		}
		for _, lift := range snapshot.Lifts {
			if lift.Exercise == exercise {
				return lift.NextTarget, nil
			}
		}
	}

	entries, err := s.Log(ctx)
	if err != nil {
		return progression.Target{}, err
	}
	return s.engine.NextTarget(entries, exercise)
}

func (s *Service) Phase(ctx context.Context) (progression.PhaseState, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return progression.PhaseState{}, err
	}
	return snapshot.Phase, nil
}

func (s *Service) Availability(ctx context.Context) (*Availability, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &Availability{
		Exercises:    snapshot.Available,
		ElapsedWeeks: snapshot.ElapsedWeeks,
		Phase:        snapshot.Phase.Phase,
	}, nil
}

func (s *Service) Progress(ctx context.Context, boundaries []time.Time) (_ []progression.PeriodBest, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("periods", len(boundaries)))

	entries, err := s.Log(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.BestByPeriod(entries, boundaries), nil
}

func (s *Service) Records(ctx context.Context) (map[progression.Exercise]progression.Best, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.Records, nil
}

func (s *Service) Summary(ctx context.Context) ([]progression.LiftSummary, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.Lifts, nil
}

func (s *Service) Warmup(ctx context.Context, exercise progression.Exercise) (_ []progression.WarmupSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.warmup")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := s.Log(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Warmup(entries, exercise)
}

// fingerprint hashes the settings and the full log, so a change anywhere in
// either produces a different cache key.
func fingerprint(settings progression.Settings, entries []progression.Entry) ([]byte, error) {
	h := sha256.New()
	enc := json.NewEncoder(h)
	if err := enc.Encode(settings); err != nil {
		return nil, fmt.Errorf("fingerprint settings: %w", err)
	}
	if err := enc.Encode(entries); err != nil {
		return nil, fmt.Errorf("fingerprint log: %w", err)
	}
	return h.Sum(nil), nil
}

func nextIndex(entries []progression.Entry) int {
	next := 0
	for _, e := range entries {
		if e.Index >= next {
			next = e.Index + 1
		}
	}
	return next
}

func stateOf(states []progression.EntryState, idx int) progression.EntryState {
	for _, st := range states {
		if st.Index == idx {
			return st
		}
	}
	return progression.EntryState{Index: idx}
}

func joinStates(entries []progression.Entry, states []progression.EntryState) []EntryView {
	byIndex := make(map[int]progression.EntryState, len(states))
	for _, st := range states {
		byIndex[st.Index] = st
	}
	views := make([]EntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, EntryView{Entry: e, State: byIndex[e.Index]})
	}
	return views
}

// exerciseLabel keeps metric label cardinality bounded, free-form names collapse.
func exerciseLabel(e progression.Exercise) string {
	if e.IsProgressed() || e == progression.ChinUps {
		return e.String()
	}
	return "assistance"
}
