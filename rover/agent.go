/*
Package rover drives a sensing rover across a two-row terrain grid.

The rover follows a fixed reflex policy expressed as a finite-state machine.
Step is the pure transition function: given the current state, the agent's
position and tallies, and read-only percepts, it returns the next state, the
updated agent and the observation records produced on the way. Navigator
threads Step from the start cell until the machine halts.
*/
package rover

// Position is a cell coordinate: column X in [1,N], row Y in {1,2}.
type Position struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

// Start is the cell every traversal begins at.
var Start = Position{X: 1, Y: 1}

// step returns the neighbouring position in d.
func (p Position) step(d Direction) Position {
	dx, dy := d.delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// AgentState is everything the rover remembers.
type AgentState struct {
	Position       Position `json:"position" bson:"position"`
	MovesTaken     int      `json:"moves_taken" bson:"moves_taken"`
	SamplesGrabbed int      `json:"samples_grabbed" bson:"samples_grabbed"`
}

// NewAgentState returns an agent at the start cell with zeroed tallies.
func NewAgentState() AgentState {
	return AgentState{Position: Start}
}

// Record is one probe+action observation.
type Record struct {
	Position  Position       `json:"position" bson:"position"`
	Looking   Direction      `json:"looking" bson:"looking"`
	Sample    int            `json:"sample" bson:"sample"`
	Perceived Classification `json:"perceived" bson:"perceived"`
	Action    Action         `json:"action" bson:"action"`
}

// Transition is the outcome of one Step.
type Transition struct {
	Next    State
	Agent   AgentState
	Records []Record
}

// Step applies one transition of the traversal policy.
// It never mutates p and is deterministic for equal inputs.
func Step(s State, a AgentState, p Percepts) Transition {
	w := &walker{p: p, agent: a, n: p.Columns()}

	// An agent off the grid, or off the top row in a top-row state, cannot act.
	var next State
	switch {
	case !w.onGrid():
		next = Halted
	case s == ScanningNorth:
		next = w.scanNorth()
	case s == SweepingEast && w.y() == 2:
		next = w.sweepEast()
	case s == Descending && w.y() == 2:
		next = w.descend()
	default:
		next = Halted
	}

	return Transition{Next: next, Agent: w.agent, Records: w.records}
}

// Observe builds the record for probing d from the agent's current cell.
func Observe(p Percepts, pos Position, d Direction, act Action) Record {
	sample, _ := p.Sample(pos.X, pos.Y)
	return Record{
		Position:  pos,
		Looking:   d,
		Sample:    sample.Value(),
		Perceived: classify(p, pos.step(d)),
		Action:    act,
	}
}

// classify reports what a probe sees at pos.
func classify(p Percepts, pos Position) Classification {
	v, ok := p.Vision(pos.X, pos.Y)
	switch {
	case !ok:
		return Null
	case v.IsClear():
		return Clear
	default:
		return Boulder
	}
}

// walker accumulates the effects of a single transition.
type walker struct {
	p       Percepts
	n       int
	agent   AgentState
	records []Record
}

func (w *walker) x() int { return w.agent.Position.X }
func (w *walker) y() int { return w.agent.Position.Y }

func (w *walker) onGrid() bool {
	_, ok := w.p.Sample(w.x(), w.y())
	return ok
}

// clear probes (x,y); absent cells are never clear.
func (w *walker) clear(x, y int) bool {
	v, ok := w.p.Vision(x, y)
	return ok && v.IsClear()
}

func (w *walker) emit(d Direction, act Action) {
	w.records = append(w.records, Observe(w.p, w.agent.Position, d, act))
}

// goTo records the move, then moves one cell in d.
func (w *walker) goTo(d Direction, act Action) {
	w.emit(d, act)
	w.agent.Position = w.agent.Position.step(d)
	w.agent.MovesTaken++
}

// grab records collecting the sample at the cell just entered from direction d.
func (w *walker) grab(d Direction) {
	w.emit(d, Grab)
	w.agent.SamplesGrabbed++
}

// scanNorth prefers climbing to the top row, then stepping east along the current row.
func (w *walker) scanNorth() State {
	if w.x() >= w.n {
		return Halted
	}

	if w.y() == 1 && w.clear(w.x(), 2) {
		w.goTo(North, GoNorth)
		w.grab(North)
		return SweepingEast
	}

	if w.clear(w.x()+1, w.y()) {
		w.emit(North, LookEast)
		w.goTo(East, GoEast)
		w.grab(East)
		if w.y() == 2 && w.clear(w.x(), 1) {
			w.emit(East, LookSouth)
			w.goTo(South, GoSouth)
			w.grab(South)
		}
		return ScanningNorth
	}

	return Halted
}

// sweepEast runs on the top row right after a north climb.
func (w *walker) sweepEast() State {
	if w.x() < w.n && w.clear(w.x()+1, w.y()) {
		w.goTo(East, GoEast)
		w.grab(East)
		return Descending
	}

	if w.x() >= w.n {
		return Halted
	}

	// The cell below is the one just climbed from, so the descent is not probed first.
	w.emit(East, LookSouth)
	w.goTo(South, GoSouth)
	if w.x() < w.n && w.clear(w.x()+1, w.y()) {
		w.goTo(East, GoEast)
		w.grab(East)
	}
	return ScanningNorth
}

// descend runs on the top row and tries south before east.
func (w *walker) descend() State {
	if w.clear(w.x(), 1) {
		w.goTo(South, GoSouth)
		w.grab(South)
		switch {
		case w.x() < w.n && w.clear(w.x()+1, w.y()):
			w.goTo(East, GoEast)
			w.grab(East)
		case w.x() < w.n:
			w.emit(East, LookNorth)
			w.goTo(North, GoNorth)
		}
		return ScanningNorth
	}

	if w.x() < w.n && w.clear(w.x()+1, w.y()) {
		w.emit(South, LookEast)
		w.goTo(East, GoEast)
		w.grab(East)
		return Descending
	}

	return Halted
}
