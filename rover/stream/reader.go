// Package stream reads sample percepts one at a time, with no grid context.
package stream

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/beka-birhanu/vinom-rover/rover/grid"
)

// Reader hands out one sample percept per non-blank line.
type Reader struct {
	scanner *bufio.Scanner
	done    bool
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Next returns the next sample. ok is false once the stream is exhausted,
// and every later call keeps returning false.
func (r *Reader) Next() (grid.SamplePercept, bool, error) {
	if r.done {
		return grid.SamplePercept{}, false, nil
	}

	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}
		s, err := grid.ParseSamplePercept(line)
		if err != nil {
			return grid.SamplePercept{}, false, err
		}
		return s, true, nil
	}

	r.done = true
	if err := r.scanner.Err(); err != nil {
		return grid.SamplePercept{}, false, fmt.Errorf("%w: %v", grid.ErrSourceUnavailable, err)
	}
	return grid.SamplePercept{}, false, nil
}
