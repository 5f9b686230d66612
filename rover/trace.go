package rover

import (
	"bufio"
	"fmt"
	"io"
)

// String renders the record as one trace line.
func (r Record) String() string {
	return fmt.Sprintf("Position: <%d,%d> Looking: %s Perceived: <%d, %s> Action: %s",
		r.Position.X, r.Position.Y, r.Looking, r.Sample, r.Perceived, r.Action)
}

// String renders the summary line.
func (s Summary) String() string {
	return fmt.Sprintf("Total Compounds Collected:%d Total Moves:%d", s.SamplesGrabbed, s.MovesTaken)
}

// WriteTrace writes one line per record followed by the summary line.
func WriteTrace(w io.Writer, r *Report) error {
	bw := bufio.NewWriter(w)
	for _, rec := range r.Records {
		if _, err := fmt.Fprintln(bw, rec); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(bw, r.Summary); err != nil {
		return err
	}
	return bw.Flush()
}
