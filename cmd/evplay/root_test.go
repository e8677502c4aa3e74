package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/elliotmr/gdl3/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	flagTypes, flagDisable, flagLogLevel = "", nil, ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPlaySession(t *testing.T) {
	out, err := run(t, "", "testdata/session.yaml")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "WindowEvent{type=SDL_EVENT_WINDOW_RESIZED timestamp=1000 window_id=1 data1=800 data2=600}", lines[0])
	assert.Contains(t, lines[1], `text="hello"`)
	assert.True(t, strings.HasPrefix(lines[2], "MouseButtonEvent{"))
	assert.Contains(t, lines[3], `["text/plain" "text/html"]`)
	assert.True(t, strings.HasPrefix(lines[4], "UserEvent{type=SDL_EVENT_USER timestamp=5000 window_id=0 code=7"))
	assert.Equal(t, "  data1=ping data2=42", lines[5])
	assert.Equal(t, "QuitEvent{type=SDL_EVENT_QUIT timestamp=6000}", lines[6])
}

func TestPlayStdinWithRange(t *testing.T) {
	doc := "- type: KEY_DOWN\n- type: MOUSE_MOTION\n- type: KEY_UP\n"
	out, err := run(t, doc, "--types", "KEY_DOWN-KEY_UP")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "SDL_EVENT_KEY_DOWN")
	assert.Contains(t, lines[1], "SDL_EVENT_KEY_UP")
}

func TestPlayDisable(t *testing.T) {
	doc := "- type: KEY_DOWN\n- type: MOUSE_MOTION\n"
	out, err := run(t, doc, "--disable", "MOUSE_MOTION")
	require.NoError(t, err)
	assert.NotContains(t, out, "MOUSE_MOTION")
	assert.Contains(t, out, "KEY_DOWN")
}

func TestPlayErrors(t *testing.T) {
	_, err := run(t, "", "testdata/missing.yaml")
	assert.Error(t, err)
	_, err = run(t, "- type: NOPE\n")
	assert.Error(t, err)
	_, err = run(t, "", "--types", "KEY_UP-KEY_DOWN", "testdata/session.yaml")
	assert.Error(t, err)
}

func TestParseRange(t *testing.T) {
	lo, hi, err := parseRange("")
	require.NoError(t, err)
	assert.Equal(t, event.First, lo)
	assert.Equal(t, event.Last, hi)

	lo, hi, err = parseRange("QUIT")
	require.NoError(t, err)
	assert.Equal(t, event.Quit, lo)
	assert.Equal(t, event.Quit, hi)

	lo, hi, err = parseRange("0x8000-0xFFFF")
	require.NoError(t, err)
	assert.Equal(t, event.User, lo)
	assert.Equal(t, event.Last, hi)
}
