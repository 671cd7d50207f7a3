package logger

import (
	"bytes"
	"testing"

	"github.com/chronos-tachyon/huffstream/internal/config"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	conf := config.New(map[string]any{
		"logger.level":    "warn",
		"logger.prettier": false,
	})

	log, err := NewWithWriter(conf, &buf)
	require.NoError(t, err)

	log.Info().Msg("hidden")
	log.Warn().Str("file", "in.txt").Msg("shown")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, `"message":"shown"`)
	require.Contains(t, out, `"file":"in.txt"`)
	require.Contains(t, out, `"time":`)
}

func TestNewWithWriter_Pretty(t *testing.T) {
	var buf bytes.Buffer
	conf := config.New(map[string]any{"logger.level": "debug"})

	log, err := NewWithWriter(conf, &buf)
	require.NoError(t, err)

	log.Debug().Msg("pretty")
	require.Contains(t, buf.String(), "pretty")
	require.NotContains(t, buf.String(), `"message"`)
}

func TestNewWithWriter_BadLevel(t *testing.T) {
	conf := config.New(map[string]any{"logger.level": "loud"})
	_, err := NewWithWriter(conf, &bytes.Buffer{})
	require.Error(t, err)
}
