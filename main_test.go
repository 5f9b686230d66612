package main

import (
	"testing"

	"github.com/beka-birhanu/vinom-rover/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	saved := cfg
	t.Cleanup(func() { cfg = saved })

	t.Run("Uses the configured level", func(t *testing.T) {
		cfg = config.Config{LogLevel: "debug"}
		l, err := newLogger("APP", config.ColorGreen)
		require.NoError(t, err)
		assert.NotNil(t, l)
	})

	t.Run("Reports a bad level instead of logging it", func(t *testing.T) {
		cfg = config.Config{LogLevel: "loud"}
		l, err := newLogger("APP", config.ColorGreen)
		assert.ErrorContains(t, err, "creating APP logger")
		assert.Nil(t, l)
	})
}
