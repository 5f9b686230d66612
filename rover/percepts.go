package rover

import "github.com/beka-birhanu/vinom-rover/rover/grid"

// Percepts defines the read-only lookups the rover relies on.
type Percepts interface {
	// Columns returns the number of cells per row.
	Columns() int

	// Sample returns the sample percept at (x,y); ok is false out of bounds.
	Sample(x, y int) (grid.SamplePercept, bool)

	// Vision returns the vision percept at (x,y); ok is false out of bounds.
	Vision(x, y int) (grid.VisionPercept, bool)
}

var _ Percepts = (*grid.Grid)(nil)
