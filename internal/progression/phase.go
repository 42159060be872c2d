package progression

type Phase string

const (
	PhaseNovice       Phase = "NOVICE"
	PhaseIntermediate Phase = "INTERMEDIATE"
)

type Warning string

const (
	WarningOnTrack    Warning = "ON_TRACK"
	WarningMonitor    Warning = "MONITOR"
	WarningWarning    Warning = "WARNING"
	WarningTransition Warning = "TRANSITION"
)

// PhaseState is derived from stall counts alone, there is no transition history:
// removing stalls from the log moves the lifter back to NOVICE.
type PhaseState struct {
	StallCounts map[Exercise]int     `json:"stallCounts"`
	Warnings    map[Exercise]Warning `json:"warnings"`
	MaxStalls   int                  `json:"maxStalls"`
	Phase       Phase                `json:"phase"`
	Overall     Warning              `json:"overall"`
}

func (p PhaseState) Intermediate() bool {
	return p.Phase == PhaseIntermediate
}

// stallCounts counts STALL entries of the five main lifts, nothing else drives the phase.
func stallCounts(states []EntryState) map[Exercise]int {
	counts := make(map[Exercise]int, len(MainLifts()))
	for _, lift := range MainLifts() {
		counts[lift] = 0
	}
	for _, st := range states {
		if st.Status == StatusStall && st.Exercise.IsMainLift() {
			counts[st.Exercise]++
		}
	}
	return counts
}

func DetectPhase(counts map[Exercise]int, stallThreshold int) PhaseState {
	state := PhaseState{
		StallCounts: make(map[Exercise]int, len(counts)),
		Warnings:    make(map[Exercise]Warning, len(counts)),
		Phase:       PhaseNovice,
	}
	for lift, count := range counts {
		state.StallCounts[lift] = count
		state.Warnings[lift] = warningFor(count, stallThreshold)
		if count > state.MaxStalls {
			state.MaxStalls = count
		}
	}

	if state.MaxStalls >= stallThreshold {
		state.Phase = PhaseIntermediate
	}
	state.Overall = warningFor(state.MaxStalls, stallThreshold)

	return state
}

func warningFor(stalls, threshold int) Warning {
	switch {
	case stalls >= threshold:
		return WarningTransition
	case stalls >= 2:
		return WarningWarning
	case stalls >= 1:
		return WarningMonitor
	default:
		return WarningOnTrack
	}
}
