package bodyweight

import (
	"math"
	"time"
)

type WeighIn struct {
	ID     int       `json:"id"`
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
	Notes  string    `json:"notes,omitempty"`
}

// Stats summarizes the weigh-ins. Starting and Current follow the order the
// weigh-ins were recorded in, not the dates.
type Stats struct {
	Starting float64 `json:"starting"`
	Current  float64 `json:"current"`
	Change   float64 `json:"change"`
	Average  float64 `json:"average"`
	Count    int     `json:"count"`
}

func ComputeStats(weighIns []WeighIn) Stats {
	var stats Stats
	var sum float64
	for _, w := range weighIns {
		if w.Weight <= 0 {
			continue
		}
		if stats.Count == 0 {
			stats.Starting = w.Weight
		}
		stats.Current = w.Weight
		sum += w.Weight
		stats.Count++
	}
	if stats.Count == 0 {
		return stats
	}

	stats.Change = round1(stats.Current - stats.Starting)
	stats.Average = round1(sum / float64(stats.Count))
	return stats
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// BestUntil returns, for each cutoff, the heaviest weigh-in dated on or before
// that day. A cutoff with no weigh-in yet gets nil.
func BestUntil(weighIns []WeighIn, boundaries []time.Time) []*float64 {
	bests := make([]*float64, len(boundaries))
	for i, until := range boundaries {
		cutoff := day(until)
		for _, w := range weighIns {
			if w.Weight <= 0 || w.Date.IsZero() || day(w.Date).After(cutoff) {
				continue
			}
			if bests[i] == nil || w.Weight > *bests[i] {
				weight := w.Weight
				bests[i] = &weight
			}
		}
	}
	return bests
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
