package stream

import "github.com/beka-birhanu/vinom-rover/rover/grid"

// Decision is the reflex response to a single sample.
type Decision byte

const (
	NoOp Decision = 'N'
	Grab Decision = 'G'
)

func (d Decision) String() string {
	return string(d)
}

// Reflex grabs samples whose value is a multiple of 5.
func Reflex(s grid.SamplePercept) Decision {
	if s.Value()%5 == 0 {
		return Grab
	}
	return NoOp
}
