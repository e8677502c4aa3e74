package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	t.Setenv("DEBUG", "")
	t.Setenv("LOG_LEVEL", "")
	assert.Equal(t, zerolog.InfoLevel, Level())

	t.Setenv("DEBUG", "1")
	assert.Equal(t, zerolog.DebugLevel, Level())

	t.Setenv("LOG_LEVEL", "warn")
	assert.Equal(t, zerolog.WarnLevel, Level())

	t.Setenv("LOG_LEVEL", "loud")
	assert.Equal(t, zerolog.InfoLevel, Level())
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, zerolog.InfoLevel)
	l.Debug().Msg("hidden")
	l.Info().Str("k", "v").Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"k":"v"`)
	assert.Contains(t, buf.String(), `"message":"shown"`)
}

func TestSetDefault(t *testing.T) {
	saved := *Default()
	defer SetDefault(saved)

	var buf bytes.Buffer
	SetDefault(New(&buf, zerolog.DebugLevel))
	Default().Debug().Msg("replaced")
	assert.Contains(t, buf.String(), "replaced")

	SetDefault(Nop)
	Default().Error().Msg("dropped")
	assert.NotContains(t, buf.String(), "dropped")
}
