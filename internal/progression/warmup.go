package progression

import "strconv"

// WarmupSet is one set of the ramp up to the work weight.
type WarmupSet struct {
	Label       string  `json:"label"`
	Weight      float64 `json:"weight"`
	Reps        string  `json:"reps"`
	RestSeconds int     `json:"restSeconds"`
}

var warmupRamp = []struct {
	percent float64
	reps    string
	rest    int
}{
	{0, "5", 0},
	{0, "5", 0},
	{40, "5", 60},
	{60, "3", 60},
	{80, "2", 120},
}

// WarmupSets builds the warm-up protocol for a work weight: two empty bar sets,
// then 40/60/80 percent rounded to 5 and never lighter than the bar.
func WarmupSets(workWeight, barWeight float64, scheme string) []WarmupSet {
	sets := make([]WarmupSet, 0, len(warmupRamp)+1)
	for i, step := range warmupRamp {
		weight := barWeight
		if step.percent > 0 {
			weight = max(barWeight, Round5(workWeight*step.percent/100))
		}
		sets = append(sets, WarmupSet{
			Label:       strconv.Itoa(i + 1),
			Weight:      weight,
			Reps:        step.reps,
			RestSeconds: step.rest,
		})
	}
	return append(sets, WarmupSet{
		Label:       "WORK",
		Weight:      workWeight,
		Reps:        scheme,
		RestSeconds: 240,
	})
}
