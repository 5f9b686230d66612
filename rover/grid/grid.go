/*
Package grid holds the rover's terrain snapshot.

A Grid is two rows of N cells, each carrying a sample percept and a vision
percept. It is parsed once from a line-oriented source and never mutated.
Cells are addressed by column x in [1,N] and row y in {1,2}; lookups outside
that range report absence instead of failing.

Source format, one record per row:

	1, clear, 5, clear, 3
	2, clear, 7, blocked, 2

The leading field is the row index and must match the record's position.
The remaining fields are (vision, sample) pairs, one per column.
*/
package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	// Rows is the fixed number of rows in a grid.
	Rows = 2

	// MaxRecordBytes bounds a single record, about 1.5 million columns.
	MaxRecordBytes = 16 << 20
)

// recordLimit is MaxRecordBytes; tests shrink it.
var recordLimit = MaxRecordBytes

var (
	ErrMalformed         = errors.New("malformed grid source")
	ErrSourceUnavailable = errors.New("grid source unavailable")
)

// Grid is an immutable 2×N snapshot of sample and vision percepts.
type Grid struct {
	samples [Rows][]SamplePercept // samples[y-1][x-1]
	vision  [Rows][]VisionPercept // vision[y-1][x-1]
}

// Load parses exactly two records from r. Nothing is returned unless the whole source is valid.
func Load(r io.Reader) (*Grid, error) {
	g := &Grid{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), recordLimit)
	records := 0
	pendingBlank := false

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			pendingBlank = true
			continue
		}
		if pendingBlank {
			return nil, fmt.Errorf("%w: blank line before record %d", ErrMalformed, records+1)
		}

		records++
		if records > Rows {
			return nil, fmt.Errorf("%w: more than %d records", ErrMalformed, Rows)
		}
		samples, vision, err := parseRecord(line, records)
		if err != nil {
			return nil, err
		}
		g.samples[records-1] = samples
		g.vision[records-1] = vision
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: record %d exceeds %d bytes", ErrMalformed, records+1, recordLimit)
		}
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	if records != Rows {
		return nil, fmt.Errorf("%w: expected %d records, found %d", ErrMalformed, Rows, records)
	}
	if len(g.samples[0]) != len(g.samples[1]) {
		return nil, fmt.Errorf("%w: row 1 has %d columns, row 2 has %d", ErrMalformed, len(g.samples[0]), len(g.samples[1]))
	}

	return g, nil
}

// Open opens a percept source file. Failures wrap ErrSourceUnavailable.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return f, nil
}

// parseRecord parses one record that must declare the given row index.
func parseRecord(line string, row int) ([]SamplePercept, []VisionPercept, error) {
	fields := splitFields(line)
	if len(fields) == 0 {
		return nil, nil, fmt.Errorf("%w: record %d is empty", ErrMalformed, row)
	}

	declared, err := strconv.Atoi(fields[0])
	if err != nil || declared != row {
		return nil, nil, fmt.Errorf("%w: record %d declares row %q", ErrMalformed, row, fields[0])
	}

	pairs := fields[1:]
	if len(pairs) == 0 {
		return nil, nil, fmt.Errorf("%w: row %d has no cells", ErrMalformed, row)
	}
	if len(pairs)%2 != 0 {
		return nil, nil, fmt.Errorf("%w: row %d has an unpaired field", ErrMalformed, row)
	}

	samples := make([]SamplePercept, 0, len(pairs)/2)
	vision := make([]VisionPercept, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		v, err := ParseVisionPercept(pairs[i])
		if err != nil {
			return nil, nil, fmt.Errorf("row %d column %d: %w", row, i/2+1, err)
		}
		s, err := ParseSamplePercept(pairs[i+1])
		if err != nil {
			return nil, nil, fmt.Errorf("row %d column %d: %w", row, i/2+1, err)
		}
		vision = append(vision, v)
		samples = append(samples, s)
	}

	return samples, vision, nil
}

// splitFields splits on commas, trimming whitespace and dropping empty fields.
func splitFields(line string) []string {
	var fields []string
	for _, f := range strings.Split(line, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// Columns returns N, the number of cells per row.
func (g *Grid) Columns() int {
	return len(g.samples[0])
}

// InBound reports whether (x,y) addresses a cell.
func (g *Grid) InBound(x, y int) bool {
	return x >= 1 && x <= g.Columns() && y >= 1 && y <= Rows
}

// Sample returns the sample percept at (x,y); ok is false when (x,y) is out of bounds.
func (g *Grid) Sample(x, y int) (SamplePercept, bool) {
	if !g.InBound(x, y) {
		return SamplePercept{}, false
	}
	return g.samples[y-1][x-1], true
}

// Vision returns the vision percept at (x,y); ok is false when (x,y) is out of bounds.
func (g *Grid) Vision(x, y int) (VisionPercept, bool) {
	if !g.InBound(x, y) {
		return VisionPercept{}, false
	}
	return g.vision[y-1][x-1], true
}

// String renders the grid back in source format.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 1; y <= Rows; y++ {
		b.WriteString(strconv.Itoa(y))
		for x := 1; x <= g.Columns(); x++ {
			v, _ := g.Vision(x, y)
			s, _ := g.Sample(x, y)
			fmt.Fprintf(&b, ", %s, %d", v, s.Value())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
