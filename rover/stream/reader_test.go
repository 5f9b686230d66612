package stream

import (
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-rover/rover/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader(t *testing.T) {
	t.Run("Yields samples in order and then ends", func(t *testing.T) {
		r := NewReader(strings.NewReader("10\n 7 \n\n0\n"))

		var got []int
		for {
			s, ok, err := r.Next()
			require.NoError(t, err)
			if !ok {
				break
			}
			got = append(got, s.Value())
		}
		assert.Equal(t, []int{10, 7, 0}, got)

		_, ok, err := r.Next()
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Empty stream ends immediately", func(t *testing.T) {
		_, ok, err := NewReader(strings.NewReader("")).Next()
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Bad token is malformed", func(t *testing.T) {
		_, ok, err := NewReader(strings.NewReader("ten\n")).Next()
		assert.ErrorIs(t, err, grid.ErrMalformed)
		assert.False(t, ok)
	})
}

func TestReflex(t *testing.T) {
	cases := map[int]Decision{0: Grab, 5: Grab, 25: Grab, 1: NoOp, 7: NoOp, 13: NoOp}
	for v, want := range cases {
		s, err := grid.NewSamplePercept(v)
		require.NoError(t, err)
		assert.Equal(t, want, Reflex(s), "value %d", v)
	}
	assert.Equal(t, "G", Grab.String())
}
