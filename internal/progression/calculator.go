package progression

import "math"

// Round5 rounds a weight to the nearest multiple of 5, halves going up.
func Round5(weight float64) float64 {
	return math.Floor(weight/5+0.5) * 5
}

// history is the running aggregate of successful attempts needed to price the
// next entry: the heaviest OK weight per exercise.
type history struct {
	bestOK map[Exercise]float64
}

func newHistory() *history {
	return &history{bestOK: make(map[Exercise]float64)}
}

func (h *history) record(e Entry, status Status) {
	if status != StatusOK || e.ActualWeight == nil {
		return
	}
	if best, ok := h.bestOK[e.Exercise]; !ok || *e.ActualWeight > best {
		h.bestOK[e.Exercise] = *e.ActualWeight
	}
}

func (h *history) target(e Exercise, s Settings) (Target, error) {
	switch {
	case e == "":
		return Target{}, nil

	case e.IsMainLift():
		ls, err := s.lift(e)
		if err != nil {
			return Target{}, err
		}
		weight := ls.StartingWeight
		if best, ok := h.bestOK[e]; ok {
			weight = best + ls.Increment
		}
		return Target{Weight: &weight, Reps: ls.TargetReps()}, nil

	case e == LightSquat:
		reps, err := s.TargetReps(Squat)
		if err != nil {
			return Target{}, err
		}
		var weight float64
		if best, ok := h.bestOK[LightSquat]; ok {
			weight = best + s.LightVariantIncrement
		} else {
			// no squat success yet prices the light day at zero
			weight = Round5(s.LightVariantPercent / 100 * h.bestOK[Squat])
		}
		return Target{Weight: &weight, Reps: reps}, nil

	default:
		return Target{Reps: AssistanceTargetReps}, nil
	}
}

// replay walks the log in index order and derives the state of every position.
// The returned history covers the whole log, so it prices the entry after it.
func replay(log []Entry, s Settings) ([]EntryState, *history) {
	h := newHistory()
	states := make([]EntryState, 0, len(log))
	for _, e := range ordered(log) {
		st := EntryState{
			Index:    e.Index,
			Exercise: e.Exercise,
		}
		if e.Exercise == "" {
			states = append(states, st)
			continue
		}

		target, err := h.target(e.Exercise, s)
		if err != nil {
			st.Status = StatusInvalid
			st.Error = err.Error()
			states = append(states, st)
			continue
		}
		st.Target = target

		if err := e.Check(); err != nil {
			st.Status = StatusInvalid
			st.Error = err.Error()
			states = append(states, st)
			continue
		}

		st.TotalReps = e.TotalReps()
		st.Status = Classify(e, target.Reps)
		h.record(e, st.Status)
		states = append(states, st)
	}
	return states, h
}

// ComputeTarget prices the next attempt of an exercise from the log entries
// preceding it.
func ComputeTarget(e Exercise, prefix []Entry, s Settings) (Target, error) {
	_, h := replay(prefix, s)
	return h.target(e, s)
}
