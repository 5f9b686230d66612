package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// SamplePercept is the soil-sample magnitude read at a cell.
type SamplePercept struct {
	value int
}

// NewSamplePercept wraps a nonnegative sample magnitude.
func NewSamplePercept(v int) (SamplePercept, error) {
	if v < 0 {
		return SamplePercept{}, fmt.Errorf("%w: negative sample %d", ErrMalformed, v)
	}
	return SamplePercept{value: v}, nil
}

// ParseSamplePercept parses a decimal sample token.
func ParseSamplePercept(token string) (SamplePercept, error) {
	v, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return SamplePercept{}, fmt.Errorf("%w: sample token %q", ErrMalformed, token)
	}
	return NewSamplePercept(v)
}

// Value returns the sample magnitude.
func (s SamplePercept) Value() int {
	return s.value
}

// VisionPercept is the obstruction flag of a cell.
type VisionPercept struct {
	blocked bool
}

var (
	Clear   = VisionPercept{blocked: false}
	Blocked = VisionPercept{blocked: true}
)

// ParseVisionPercept parses a vision token, case-insensitively.
// "clear" and "c" are passable; "blocked", "boulder" and "b" are obstacles.
func ParseVisionPercept(token string) (VisionPercept, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "clear", "c":
		return Clear, nil
	case "blocked", "boulder", "b":
		return Blocked, nil
	default:
		return VisionPercept{}, fmt.Errorf("%w: vision token %q", ErrMalformed, token)
	}
}

// IsClear reports whether the cell is passable.
func (v VisionPercept) IsClear() bool {
	return !v.blocked
}

func (v VisionPercept) String() string {
	if v.blocked {
		return "blocked"
	}
	return "clear"
}
