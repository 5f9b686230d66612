package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-rover/config"
	"github.com/beka-birhanu/vinom-rover/infrastruture/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute(t *testing.T) {
	cfg := config.Config{JWTSecret: "secret", JWTIssuer: "rover"}

	t.Run("mints a token the API accepts", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.NoError(t, execute(cfg, []string{"--operator", "night-shift", "--ttl", "5m"}, &stdout, &stderr))

		claims, err := token.NewJwtService("secret", "rover").Decode(strings.TrimSpace(stdout.String()))
		require.NoError(t, err)
		assert.Equal(t, "night-shift", claims["operator"])
	})

	t.Run("requires a secret", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		err := execute(config.Config{JWTIssuer: "rover"}, nil, &stdout, &stderr)

		assert.ErrorIs(t, err, errNoSecret)
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "JWT_SECRET")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		assert.Error(t, execute(cfg, []string{"extra"}, &stdout, &stderr))
	})
}
