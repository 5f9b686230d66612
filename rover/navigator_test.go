package rover

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func traceOf(t *testing.T, r *Report) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteTrace(&buf, r))
	return buf.String()
}

func TestNavigatorGoldenTraces(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		moves  int
		grabs  int
		golden string
	}{
		{
			name:  "two columns with a boulder on the top row",
			src:   twoByTwo,
			moves: 3,
			grabs: 2,
			golden: `Position: <1,1> Looking: NORTH Perceived: <5, CLEAR> Action: GONORTH
Position: <1,2> Looking: NORTH Perceived: <7, NULL> Action: GRAB
Position: <1,2> Looking: EAST Perceived: <7, BOULDER> Action: LOOKSOUTH
Position: <1,2> Looking: SOUTH Perceived: <7, CLEAR> Action: GOSOUTH
Position: <1,1> Looking: EAST Perceived: <5, CLEAR> Action: GOEAST
Position: <2,1> Looking: EAST Perceived: <3, NULL> Action: GRAB
Position: <2,1> Looking: EAST Perceived: <3, NULL> Action: NO MOVES POSSIBLE
Total Compounds Collected:2 Total Moves:3
`,
		},
		{
			name:  "open three columns",
			src:   allClear3,
			moves: 4,
			grabs: 4,
			golden: `Position: <1,1> Looking: NORTH Perceived: <1, CLEAR> Action: GONORTH
Position: <1,2> Looking: NORTH Perceived: <4, NULL> Action: GRAB
Position: <1,2> Looking: EAST Perceived: <4, CLEAR> Action: GOEAST
Position: <2,2> Looking: EAST Perceived: <5, CLEAR> Action: GRAB
Position: <2,2> Looking: SOUTH Perceived: <5, CLEAR> Action: GOSOUTH
Position: <2,1> Looking: SOUTH Perceived: <2, NULL> Action: GRAB
Position: <2,1> Looking: EAST Perceived: <2, CLEAR> Action: GOEAST
Position: <3,1> Looking: EAST Perceived: <3, NULL> Action: GRAB
Position: <3,1> Looking: EAST Perceived: <3, NULL> Action: NO MOVES POSSIBLE
Total Compounds Collected:4 Total Moves:4
`,
		},
		{
			name:  "north blocked at the start",
			src:   northWalled,
			moves: 4,
			grabs: 3,
			golden: `Position: <1,1> Looking: NORTH Perceived: <1, BOULDER> Action: LOOKEAST
Position: <1,1> Looking: EAST Perceived: <1, CLEAR> Action: GOEAST
Position: <2,1> Looking: EAST Perceived: <2, CLEAR> Action: GRAB
Position: <2,1> Looking: NORTH Perceived: <2, CLEAR> Action: GONORTH
Position: <2,2> Looking: NORTH Perceived: <5, NULL> Action: GRAB
Position: <2,2> Looking: EAST Perceived: <5, BOULDER> Action: LOOKSOUTH
Position: <2,2> Looking: SOUTH Perceived: <5, CLEAR> Action: GOSOUTH
Position: <2,1> Looking: EAST Perceived: <2, CLEAR> Action: GOEAST
Position: <3,1> Looking: EAST Perceived: <3, NULL> Action: GRAB
Position: <3,1> Looking: EAST Perceived: <3, NULL> Action: NO MOVES POSSIBLE
Total Compounds Collected:3 Total Moves:4
`,
		},
		{
			name:  "top row sweep over a blocked bottom row",
			src:   "1, clear, 1, blocked, 2, blocked, 3, clear, 4\n2, clear, 5, clear, 6, clear, 7, clear, 8\n",
			moves: 5,
			grabs: 5,
			golden: `Position: <1,1> Looking: NORTH Perceived: <1, CLEAR> Action: GONORTH
Position: <1,2> Looking: NORTH Perceived: <5, NULL> Action: GRAB
Position: <1,2> Looking: EAST Perceived: <5, CLEAR> Action: GOEAST
Position: <2,2> Looking: EAST Perceived: <6, CLEAR> Action: GRAB
Position: <2,2> Looking: SOUTH Perceived: <6, BOULDER> Action: LOOKEAST
Position: <2,2> Looking: EAST Perceived: <6, CLEAR> Action: GOEAST
Position: <3,2> Looking: EAST Perceived: <7, CLEAR> Action: GRAB
Position: <3,2> Looking: SOUTH Perceived: <7, BOULDER> Action: LOOKEAST
Position: <3,2> Looking: EAST Perceived: <7, CLEAR> Action: GOEAST
Position: <4,2> Looking: EAST Perceived: <8, NULL> Action: GRAB
Position: <4,2> Looking: SOUTH Perceived: <8, CLEAR> Action: GOSOUTH
Position: <4,1> Looking: SOUTH Perceived: <4, NULL> Action: GRAB
Position: <4,1> Looking: EAST Perceived: <4, NULL> Action: NO MOVES POSSIBLE
Total Compounds Collected:5 Total Moves:5
`,
		},
		{
			name:  "climb back after a blocked bottom-row step",
			src:   "1, clear, 1, clear, 2, blocked, 3\n2, clear, 4, clear, 5, clear, 6\n",
			moves: 5,
			grabs: 4,
			golden: `Position: <1,1> Looking: NORTH Perceived: <1, CLEAR> Action: GONORTH
Position: <1,2> Looking: NORTH Perceived: <4, NULL> Action: GRAB
Position: <1,2> Looking: EAST Perceived: <4, CLEAR> Action: GOEAST
Position: <2,2> Looking: EAST Perceived: <5, CLEAR> Action: GRAB
Position: <2,2> Looking: SOUTH Perceived: <5, CLEAR> Action: GOSOUTH
Position: <2,1> Looking: SOUTH Perceived: <2, NULL> Action: GRAB
Position: <2,1> Looking: EAST Perceived: <2, BOULDER> Action: LOOKNORTH
Position: <2,1> Looking: NORTH Perceived: <2, CLEAR> Action: GONORTH
Position: <2,2> Looking: NORTH Perceived: <5, NULL> Action: LOOKEAST
Position: <2,2> Looking: EAST Perceived: <5, CLEAR> Action: GOEAST
Position: <3,2> Looking: EAST Perceived: <6, NULL> Action: GRAB
Position: <3,2> Looking: EAST Perceived: <6, NULL> Action: NO MOVES POSSIBLE
Total Compounds Collected:4 Total Moves:5
`,
		},
	}

	nav := NewNavigator(nil)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := nav.Run(mustGrid(t, c.src))

			assert.Equal(t, c.golden, traceOf(t, r))
			assert.Equal(t, c.moves, r.Summary.MovesTaken)
			assert.Equal(t, c.grabs, r.Summary.SamplesGrabbed)
			assert.False(t, r.Summary.Capped)
		})
	}
}

func TestNavigatorSingleColumn(t *testing.T) {
	r := NewNavigator(nil).Run(mustGrid(t, "1, clear, 5\n2, clear, 7\n"))

	require.NotEmpty(t, r.Records)
	last := r.Records[len(r.Records)-1]
	assert.Equal(t, East, last.Looking)
	assert.Equal(t, Null, last.Perceived)
	assert.LessOrEqual(t, r.Summary.MovesTaken, 1)
	for _, rec := range r.Records {
		assert.NotEqual(t, GoEast, rec.Action)
	}
}

func TestNavigatorDeterminism(t *testing.T) {
	for _, src := range []string{twoByTwo, allClear3, northWalled} {
		g := mustGrid(t, src)
		a := NewNavigator(nil).Run(g)
		b := NewNavigator(nil).Run(g)

		assert.Equal(t, traceOf(t, a), traceOf(t, b))
		assert.Equal(t, a.Summary, b.Summary)
	}
}

func TestNavigatorGrabsFollowMoves(t *testing.T) {
	for _, src := range []string{twoByTwo, allClear3, northWalled, allClear2} {
		r := NewNavigator(nil).Run(mustGrid(t, src))

		moves, grabs := 0, 0
		for i, rec := range r.Records {
			if rec.Action.IsMove() {
				moves++
			}
			if rec.Action == Grab {
				grabs++
				require.Greater(t, i, 0)
				assert.True(t, r.Records[i-1].Action.IsMove(), "grab at record %d does not follow a move", i)
			}
		}
		assert.Equal(t, r.Summary.MovesTaken, moves)
		assert.Equal(t, r.Summary.SamplesGrabbed, grabs)
		assert.NotEqual(t, Grab, r.Records[0].Action, "start cell must not be grabbed")
	}
}

// The policy never returns to the last column's top cell once it reaches the
// last column on the bottom row.
func TestNavigatorLeavesLastTopCellUnvisited(t *testing.T) {
	r := NewNavigator(nil).Run(mustGrid(t, allClear3))

	for _, rec := range r.Records {
		assert.NotEqual(t, Position{3, 2}, rec.Position)
	}
	assert.Equal(t, Position{3, 1}, r.Summary.Final)
}

// With both cells of the next column blocked and the top cell open, the
// policy climbs and descends the same column forever; only the cap stops it.
func TestNavigatorCapStopsOscillation(t *testing.T) {
	g := mustGrid(t, "1, clear, 1, blocked, 2\n2, clear, 3, blocked, 4\n")
	nav := NewNavigator(&Options{StepFactor: 4})

	r := nav.Run(g)

	assert.True(t, r.Summary.Capped)
	assert.Equal(t, nav.Limit(2), r.Summary.Transitions)
	assert.Equal(t, 12, r.Summary.MovesTaken)
	assert.Equal(t, 6, r.Summary.SamplesGrabbed)
	assert.Len(t, r.Records, 25)
	assert.Equal(t, rec(1, 1, East, 1, Boulder, NoMoves), r.Records[24])
}

func TestNewNavigatorDefaults(t *testing.T) {
	assert.Equal(t, defaultStepFactor*3, NewNavigator(nil).Limit(2))
	assert.Equal(t, defaultStepFactor*3, NewNavigator(&Options{StepFactor: -1}).Limit(2))
	assert.Equal(t, 9, NewNavigator(&Options{StepFactor: 3}).Limit(2))
}
