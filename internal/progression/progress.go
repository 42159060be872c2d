package progression

import (
	"encoding/json"
	"fmt"
	"time"
)

const noData = "no data"

// Best is the heaviest successful weight of a lift, if there is one.
type Best struct {
	Weight float64
	Found  bool
}

func (b Best) String() string {
	if !b.Found {
		return noData
	}
	return formatWeight(b.Weight)
}

func (b Best) MarshalJSON() ([]byte, error) {
	if !b.Found {
		return json.Marshal(noData)
	}
	return json.Marshal(b.Weight)
}

// UnmarshalJSON accepts a weight or the "no data" marker, nothing else.
func (b *Best) UnmarshalJSON(data []byte) error {
	var w float64
	if err := json.Unmarshal(data, &w); err == nil {
		*b = Best{Weight: w, Found: true}
		return nil
	}
	var marker string
	if err := json.Unmarshal(data, &marker); err != nil || marker != noData {
		return fmt.Errorf("best: want a weight or %q, got %s", noData, data)
	}
	*b = Best{}
	return nil
}

func (b *Best) consider(weight float64) {
	if !b.Found || weight > b.Weight {
		b.Weight = weight
		b.Found = true
	}
}

type PeriodBest struct {
	Until time.Time         `json:"until"`
	Lifts map[Exercise]Best `json:"lifts"`
}

// bestByPeriod finds, for each cutoff date, the heaviest OK weight of every main
// lift logged on or before that date. Entries without a date are never in a period.
func bestByPeriod(log []Entry, states []EntryState, boundaries []time.Time) []PeriodBest {
	ok := successfulEntries(log, states)
	periods := make([]PeriodBest, 0, len(boundaries))
	for _, until := range boundaries {
		cutoff := day(until)
		period := PeriodBest{Until: until, Lifts: emptyBests()}
		for _, e := range ok {
			if e.Date.IsZero() || day(e.Date).After(cutoff) {
				continue
			}
			b := period.Lifts[e.Exercise]
			b.consider(*e.ActualWeight)
			period.Lifts[e.Exercise] = b
		}
		periods = append(periods, period)
	}
	return periods
}

func personalRecords(log []Entry, states []EntryState) map[Exercise]Best {
	records := emptyBests()
	for _, e := range successfulEntries(log, states) {
		b := records[e.Exercise]
		b.consider(*e.ActualWeight)
		records[e.Exercise] = b
	}
	return records
}

// successfulEntries pairs the ordered log with its states and keeps the OK main lifts.
func successfulEntries(log []Entry, states []EntryState) []Entry {
	var ok []Entry
	for i, e := range ordered(log) {
		if states[i].Status != StatusOK || !e.Exercise.IsMainLift() || e.ActualWeight == nil {
			continue
		}
		ok = append(ok, e)
	}
	return ok
}

func emptyBests() map[Exercise]Best {
	bests := make(map[Exercise]Best, len(MainLifts()))
	for _, lift := range MainLifts() {
		bests[lift] = Best{}
	}
	return bests
}
