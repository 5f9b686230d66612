package rover

const defaultStepFactor = 4

// Options configures a Navigator.
type Options struct {
	// StepFactor bounds a traversal to StepFactor*(N+1) transitions.
	StepFactor int
}

// Navigator runs complete traversals.
type Navigator struct {
	opts *Options
}

// Summary is the final tally of a traversal.
type Summary struct {
	MovesTaken     int      `json:"moves_taken" bson:"moves_taken"`
	SamplesGrabbed int      `json:"samples_grabbed" bson:"samples_grabbed"`
	Transitions    int      `json:"transitions" bson:"transitions"`
	Final          Position `json:"final_position" bson:"final_position"`
	Capped         bool     `json:"capped" bson:"capped"` // transition cap reached before the policy halted
}

// Report is the observation log and summary of one traversal.
type Report struct {
	Records []Record `json:"records" bson:"records"`
	Summary Summary  `json:"summary" bson:"summary"`
}

// NewNavigator creates a Navigator; nil or nonpositive options fall back to defaults.
func NewNavigator(opts *Options) *Navigator {
	if opts == nil {
		opts = &Options{}
	}
	if opts.StepFactor <= 0 {
		opts.StepFactor = defaultStepFactor
	}
	return &Navigator{opts: opts}
}

// Limit returns the transition cap for a grid of n columns.
func (nav *Navigator) Limit(n int) int {
	return nav.opts.StepFactor * (n + 1)
}

// Run traverses p from the start cell until the policy halts or the cap is reached.
func (nav *Navigator) Run(p Percepts) *Report {
	limit := nav.Limit(p.Columns())
	state := ScanningNorth
	agent := NewAgentState()
	report := &Report{}

	for state != Halted {
		if report.Summary.Transitions == limit {
			report.Summary.Capped = true
			break
		}
		t := Step(state, agent, p)
		state, agent = t.Next, t.Agent
		report.Records = append(report.Records, t.Records...)
		report.Summary.Transitions++
	}

	report.Records = append(report.Records, Observe(p, agent.Position, East, NoMoves))
	report.Summary.MovesTaken = agent.MovesTaken
	report.Summary.SamplesGrabbed = agent.SamplesGrabbed
	report.Summary.Final = agent.Position
	return report
}
