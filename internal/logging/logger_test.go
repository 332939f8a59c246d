package logging

import (
	"bytes"
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Init(Config{Level: level, Format: "json", Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })

	return &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal(line, &m), string(line))
		out = append(out, m)
	}

	return out
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestInit_JSONAndLevel(t *testing.T) {
	buf := capture(t, "info")

	Debug().Msg("hidden")
	Info().Str("k", "v").Msg("shown")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "shown", lines[0]["message"])
	assert.Equal(t, "v", lines[0]["k"])
}

func TestTimed(t *testing.T) {
	buf := capture(t, "debug")

	require.NoError(t, Timed("ok-step", func() error { return nil }))
	boom := errors.New("boom")
	require.ErrorIs(t, Timed("bad-step", func() error { return boom }), boom)

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "ok-step", lines[0]["step"])
	assert.Equal(t, "debug", lines[0]["level"])
	assert.Contains(t, lines[0], "elapsed")
	assert.Equal(t, "bad-step", lines[1]["step"])
	assert.Equal(t, "error", lines[1]["level"])
	assert.Equal(t, "boom", lines[1]["error"])
}

func TestTimedValue(t *testing.T) {
	_ = capture(t, "disabled")

	v, err := TimedValue("answer", func() (int, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestInit_RunID(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "json", RunID: "r-42", Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })

	Info().Msg("tagged")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "r-42", lines[0]["run"])
}
