//go:build integration

package test

import (
	"encoding/json"
	"net/http"

	"github.com/2beens/barbelltracker/internal/bodyweight"
	"github.com/2beens/barbelltracker/internal/progression"
	"github.com/2beens/barbelltracker/internal/tracker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type targetResponse struct {
	Exercise progression.Exercise `json:"exercise"`
	Target   progression.Target   `json:"target"`
	Display  string               `json:"display"`
}

func (s *IntegrationTestSuite) addEntry(req tracker.AddEntryRequest) tracker.EntryView {
	status, body := s.do(http.MethodPost, "/tracker/entries", req, true)
	require.Equal(s.T(), http.StatusCreated, status, string(body))

	var view tracker.EntryView
	require.NoError(s.T(), json.Unmarshal(body, &view))
	return view
}

func (s *IntegrationTestSuite) nextTarget(exercise string) targetResponse {
	status, body := s.do(http.MethodGet, "/tracker/target/"+exercise, nil, false)
	require.Equal(s.T(), http.StatusOK, status, string(body))

	var resp targetResponse
	require.NoError(s.T(), json.Unmarshal(body, &resp))
	return resp
}

func weight(w float64) *float64 {
	return &w
}

func (s *IntegrationTestSuite) TestTracker_SquatProgression() {
	t := s.T()

	first := s.addEntry(tracker.AddEntryRequest{
		Date:         "2024-03-04",
		Workout:      "A",
		Exercise:     "Squat",
		ActualWeight: weight(135),
		SetReps:      []int{5, 5, 5},
	})
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, progression.StatusOK, first.State.Status)

	assert.Equal(t, "140 x 15", s.nextTarget("Squat").Display)

	stalled := s.addEntry(tracker.AddEntryRequest{
		Date:         "2024-03-06",
		Workout:      "B",
		Exercise:     "Squat",
		ActualWeight: weight(140),
		SetReps:      []int{5, 5, 4},
	})
	assert.Equal(t, 1, stalled.Index)
	assert.Equal(t, progression.StatusStall, stalled.State.Status)
	assert.Equal(t, 14, stalled.State.TotalReps)

	// a stall repeats the weight
	assert.Equal(t, "140 x 15", s.nextTarget("Squat").Display)

	status, body := s.do(http.MethodGet, "/tracker/phase", nil, false)
	require.Equal(t, http.StatusOK, status)
	var phase progression.PhaseState
	require.NoError(t, json.Unmarshal(body, &phase))
	assert.Equal(t, progression.PhaseNovice, phase.Phase)
	assert.Equal(t, 1, phase.StallCounts[progression.Squat])

	// the last set was miscounted
	status, body = s.do(http.MethodPut, "/tracker/entries/1", tracker.CorrectEntryRequest{
		SetReps: []int{5, 5, 5},
	}, true)
	require.Equal(t, http.StatusOK, status, string(body))
	var corrected tracker.EntryView
	require.NoError(t, json.Unmarshal(body, &corrected))
	assert.Equal(t, progression.StatusOK, corrected.State.Status)

	assert.Equal(t, "145 x 15", s.nextTarget("Squat").Display)

	status, body = s.do(http.MethodGet, "/tracker/entries", nil, false)
	require.Equal(t, http.StatusOK, status)
	var entries []tracker.EntryView
	require.NoError(t, json.Unmarshal(body, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, progression.StatusOK, entries[1].State.Status)

	status, body = s.do(http.MethodGet, "/tracker/records", nil, false)
	require.Equal(t, http.StatusOK, status)
	var records map[progression.Exercise]progression.Best
	require.NoError(t, json.Unmarshal(body, &records))
	assert.Equal(t, "140", records[progression.Squat].String())
}

func (s *IntegrationTestSuite) TestTracker_Rejections() {
	t := s.T()

	status, _ := s.do(http.MethodPost, "/tracker/entries", tracker.AddEntryRequest{
		Exercise: "Squat",
		SetReps:  []int{5, 5, 5},
	}, false)
	assert.Equal(t, http.StatusUnauthorized, status)

	// chin ups open up after the intro week
	status, body := s.do(http.MethodPost, "/tracker/entries", tracker.AddEntryRequest{
		Exercise: "Chin Ups",
		SetReps:  []int{10, 10, 10},
	}, true)
	assert.Equal(t, http.StatusBadRequest, status, string(body))

	status, _ = s.do(http.MethodPut, "/tracker/entries/42", tracker.CorrectEntryRequest{
		SetReps: []int{5},
	}, true)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.do(http.MethodGet, "/tracker/warmup/Dips", nil, false)
	assert.Equal(t, http.StatusBadRequest, status)
}

func (s *IntegrationTestSuite) TestTracker_WarmupAndSummary() {
	t := s.T()

	s.addEntry(tracker.AddEntryRequest{
		Workout:      "A",
		Exercise:     "Deadlift",
		ActualWeight: weight(225),
		SetReps:      []int{5},
	})

	status, body := s.do(http.MethodGet, "/tracker/warmup/Deadlift", nil, false)
	require.Equal(t, http.StatusOK, status, string(body))
	var sets []progression.WarmupSet
	require.NoError(t, json.Unmarshal(body, &sets))
	assert.NotEmpty(t, sets)

	status, body = s.do(http.MethodGet, "/tracker/summary", nil, false)
	require.Equal(t, http.StatusOK, status)
	var summary []progression.LiftSummary
	require.NoError(t, json.Unmarshal(body, &summary))
	assert.Len(t, summary, len(progression.MainLifts()))
}

func (s *IntegrationTestSuite) TestBodyweight() {
	t := s.T()

	for _, w := range []float64{180.4, 181.2, 182} {
		status, body := s.do(http.MethodPost, "/bodyweight", bodyweight.AddWeighInRequest{
			Date:   "2024-03-04",
			Weight: w,
		}, true)
		require.Equal(t, http.StatusCreated, status, string(body))
	}

	status, body := s.do(http.MethodGet, "/bodyweight/stats", nil, false)
	require.Equal(t, http.StatusOK, status)
	var stats bodyweight.Stats
	require.NoError(t, json.Unmarshal(body, &stats))
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 180.4, stats.Starting)
	assert.Equal(t, 182.0, stats.Current)
	assert.Equal(t, 1.6, stats.Change)
}
