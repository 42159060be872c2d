// Package main fills an empty tracker database with a plausible training log,
// for demos and local development.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/2beens/barbelltracker/internal/bodyweight"
	"github.com/2beens/barbelltracker/internal/config"
	"github.com/2beens/barbelltracker/internal/db"
	"github.com/2beens/barbelltracker/internal/progression"
	"github.com/2beens/barbelltracker/internal/tracker"

	"github.com/brianvoe/gofakeit/v6"
	log "github.com/sirupsen/logrus"
)

var workouts = map[progression.WorkoutLabel][]progression.Exercise{
	progression.WorkoutA: {progression.Squat, progression.BenchPress, progression.Deadlift},
	progression.WorkoutB: {progression.Squat, progression.OverheadPress, progression.PowerClean},
}

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	weeks := flag.Int("weeks", 8, "number of training weeks to generate")
	failRate := flag.Float64("fail-rate", 0.15, "chance that a main lift session misses its target")
	seed := flag.Int64("seed", 0, "random seed, 0 for a random one")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}
	engine, err := progression.NewEngine(cfg.Program)
	if err != nil {
		log.Fatalf("progression engine: %s", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     os.Getenv("TRACKER_DB_USER"),
		DBPassword: os.Getenv("TRACKER_DB_PASS"),
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer dbPool.Close()

	if err := db.EnsureSchema(ctx, dbPool); err != nil {
		log.Fatalf("ensure schema: %s", err)
	}

	gofakeit.Seed(*seed)

	seeder := &seeder{
		service:  tracker.NewService(tracker.NewRepo(dbPool), engine, nil, 0, nil),
		weighIns: bodyweight.NewRepo(dbPool),
		failRate: *failRate,
	}

	start := time.Now().UTC().AddDate(0, 0, -7*(*weeks))
	added, err := seeder.run(ctx, start, *weeks)
	if err != nil {
		log.Fatalf("seed log: %s", err)
	}
	log.Infof("seeded %d log entries over %d weeks", added, *weeks)
}

type seeder struct {
	service  *tracker.Service
	weighIns *bodyweight.Repo
	failRate float64
}

func (s *seeder) run(ctx context.Context, start time.Time, weeks int) (int, error) {
	existing, err := s.service.Log(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, errors.New("log is not empty, refusing to seed")
	}

	added := 0
	bodyweightLbs := gofakeit.Float64Range(150, 190)
	label := progression.WorkoutA
	for week := 0; week < weeks; week++ {
		// mon, wed, fri
		for _, offset := range []int{0, 2, 4} {
			date := start.AddDate(0, 0, week*7+offset)

			n, err := s.session(ctx, date, label)
			if err != nil {
				return added, err
			}
			added += n

			if label == progression.WorkoutA {
				label = progression.WorkoutB
			} else {
				label = progression.WorkoutA
			}
		}

		bodyweightLbs += gofakeit.Float64Range(-0.5, 1.5)
		if _, err := s.weighIns.Add(ctx, bodyweight.WeighIn{
			Date:   start.AddDate(0, 0, week*7),
			Weight: float64(int(bodyweightLbs*10)) / 10,
		}); err != nil {
			return added, fmt.Errorf("add weigh-in: %w", err)
		}
	}
	return added, nil
}

func (s *seeder) session(ctx context.Context, date time.Time, label progression.WorkoutLabel) (int, error) {
	exercises := append([]progression.Exercise{}, workouts[label]...)

	availability, err := s.service.Availability(ctx)
	if err != nil {
		return 0, err
	}
	for _, e := range availability.Exercises {
		if e == progression.ChinUps && label == progression.WorkoutB {
			exercises = append(exercises, progression.ChinUps)
		}
	}

	for _, exercise := range exercises {
		target, err := s.service.NextTarget(ctx, exercise)
		if err != nil {
			return 0, fmt.Errorf("next target [%s]: %w", exercise, err)
		}

		entry := progression.Entry{
			Date:         date,
			Workout:      label,
			Exercise:     exercise,
			ActualWeight: target.Weight,
			SetReps:      s.sets(exercise, target.Reps),
		}
		if gofakeit.Number(0, 9) == 0 {
			entry.Notes = gofakeit.Sentence(6)
		}
		if _, err := s.service.AddEntry(ctx, entry); err != nil {
			return 0, err
		}
	}
	return len(exercises), nil
}

// sets splits the target reps over the lift's sets, occasionally coming up short.
func (s *seeder) sets(exercise progression.Exercise, targetReps int) []int {
	sets := 3
	if ls, ok := s.service.Settings().Lifts[exercise]; ok {
		sets = ls.Sets
	}

	reps := make([]int, sets)
	for i := range reps {
		reps[i] = targetReps / sets
	}
	if gofakeit.Float64Range(0, 1) < s.failRate {
		reps[sets-1] -= gofakeit.Number(1, reps[sets-1])
	}
	return reps
}
