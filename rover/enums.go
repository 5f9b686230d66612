package rover

import "fmt"

// Direction is a probe or move direction.
type Direction int

const (
	North Direction = iota + 1
	East
	South
)

var directionNames = map[Direction]string{
	North: "NORTH",
	East:  "EAST",
	South: "SOUTH",
}

// delta returns the coordinate offset of one step in d.
func (d Direction) delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	}
	return 0, 0
}

func (d Direction) String() string {
	return enumString(directionNames, d)
}

func (d Direction) MarshalText() ([]byte, error) {
	return enumMarshal(directionNames, d)
}

func (d *Direction) UnmarshalText(b []byte) error {
	return enumUnmarshal(directionNames, d, b)
}

// Classification is what a probe perceives in a neighbouring cell.
type Classification int

const (
	Clear   Classification = iota + 1 // neighbour exists and is passable
	Boulder                           // neighbour exists and is blocked
	Null                              // neighbour is outside the grid
)

var classificationNames = map[Classification]string{
	Clear:   "CLEAR",
	Boulder: "BOULDER",
	Null:    "NULL",
}

func (c Classification) String() string {
	return enumString(classificationNames, c)
}

func (c Classification) MarshalText() ([]byte, error) {
	return enumMarshal(classificationNames, c)
}

func (c *Classification) UnmarshalText(b []byte) error {
	return enumUnmarshal(classificationNames, c, b)
}

// Action is what the rover does after a probe.
type Action int

const (
	GoNorth Action = iota + 1
	GoEast
	GoSouth
	Grab
	LookNorth
	LookEast
	LookSouth
	NoMoves
)

var actionNames = map[Action]string{
	GoNorth:   "GONORTH",
	GoEast:    "GOEAST",
	GoSouth:   "GOSOUTH",
	Grab:      "GRAB",
	LookNorth: "LOOKNORTH",
	LookEast:  "LOOKEAST",
	LookSouth: "LOOKSOUTH",
	NoMoves:   "NO MOVES POSSIBLE",
}

// IsMove reports whether the action changes the rover's position.
func (a Action) IsMove() bool {
	return a == GoNorth || a == GoEast || a == GoSouth
}

func (a Action) String() string {
	return enumString(actionNames, a)
}

func (a Action) MarshalText() ([]byte, error) {
	return enumMarshal(actionNames, a)
}

func (a *Action) UnmarshalText(b []byte) error {
	return enumUnmarshal(actionNames, a, b)
}

// State is a node of the traversal state machine.
type State int

const (
	ScanningNorth State = iota + 1
	SweepingEast
	Descending
	Halted
)

var stateNames = map[State]string{
	ScanningNorth: "SCANNING_NORTH",
	SweepingEast:  "SWEEPING_EAST",
	Descending:    "DESCENDING",
	Halted:        "HALTED",
}

func (s State) String() string {
	return enumString(stateNames, s)
}

func (s State) MarshalText() ([]byte, error) {
	return enumMarshal(stateNames, s)
}

func (s *State) UnmarshalText(b []byte) error {
	return enumUnmarshal(stateNames, s, b)
}

func enumString[E ~int](names map[E]string, e E) string {
	if name, ok := names[e]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(e))
}

func enumMarshal[E ~int](names map[E]string, e E) ([]byte, error) {
	name, ok := names[e]
	if !ok {
		return nil, fmt.Errorf("unknown value %d", int(e))
	}
	return []byte(name), nil
}

func enumUnmarshal[E ~int](names map[E]string, e *E, b []byte) error {
	for k, name := range names {
		if name == string(b) {
			*e = k
			return nil
		}
	}
	return fmt.Errorf("unknown name %q", b)
}
