package fixture

import (
	"os"
	"strings"
	"testing"

	"github.com/elliotmr/gdl3/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSession(t *testing.T) {
	f, err := os.Open("testdata/session.yaml")
	require.NoError(t, err)
	defer f.Close()

	a := &event.Arena{}
	records, err := Load(f, a)
	require.NoError(t, err)
	require.Len(t, records, 6)

	we, err := event.As[event.WindowEvent](&records[0].Event)
	require.NoError(t, err)
	assert.Equal(t, event.WindowResized, we.Type())
	assert.Equal(t, uint64(1000), we.Timestamp())
	assert.Equal(t, int32(800), we.Data1())
	assert.Equal(t, int32(600), we.Data2())

	ti, err := event.As[event.TextInputEvent](&records[1].Event)
	require.NoError(t, err)
	assert.Equal(t, "hello", ti.Text())

	mb, err := event.As[event.MouseButtonEvent](&records[2].Event)
	require.NoError(t, err)
	assert.Equal(t, uint8(event.ButtonLeft), mb.Button())
	assert.True(t, mb.Down())
	assert.Equal(t, uint8(2), mb.Clicks())
	assert.Equal(t, float32(10.5), mb.X())
	assert.Equal(t, float32(20), mb.Y())

	cb, err := event.As[event.ClipboardEvent](&records[3].Event)
	require.NoError(t, err)
	assert.True(t, cb.Owner())
	assert.Equal(t, []string{"text/plain", "text/html"}, cb.MimeTypes())

	ue, err := event.As[event.UserEvent](&records[4].Event)
	require.NoError(t, err)
	assert.Equal(t, event.User, ue.Type())
	assert.Equal(t, int32(7), ue.Code())
	require.Len(t, records[4].Data, 2)
	assert.Equal(t, "ping", records[4].Data[0])

	assert.Equal(t, event.Quit, records[5].Event.Type())
	assert.Nil(t, records[5].Data)
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]string{
		"missing type":  "- timestamp: 1\n",
		"unknown type":  "- type: NOT_AN_EVENT\n",
		"type range":    "- type: 0x10000\n",
		"unknown field": "- type: QUIT\n  fields:\n    window_id: 1\n",
		"bad value":     "- type: WINDOW_MOVED\n  fields:\n    data1: left\n",
		"data on quit":  "- type: QUIT\n  data: [1]\n",
		"too much data": "- type: USER\n  data: [1, 2, 3]\n",
		"list count":    "- type: CLIPBOARD_UPDATE\n  fields:\n    mime_types: [text/plain]\n    num_mime_types: 4000\n",
	}
	for name, doc := range cases {
		_, err := Load(strings.NewReader(doc), &event.Arena{})
		assert.Error(t, err, name)
	}
}

func TestParseType(t *testing.T) {
	for _, v := range []interface{}{"WINDOW_MOVED", "sdl_event_window_moved", uint64(0x205), int64(0x205), "0x205", "517"} {
		typ, err := ParseType(v)
		require.NoError(t, err, "%v", v)
		assert.Equal(t, event.WindowMoved, typ, "%v", v)
	}
	for _, v := range []interface{}{nil, int64(-1), uint64(0x10000), "0x10000", 1.5, "nope"} {
		_, err := ParseType(v)
		assert.Error(t, err, "%v", v)
	}
}

func TestLoadListCount(t *testing.T) {
	doc := "- type: TEXT_EDITING_CANDIDATES\n  fields:\n    selected_candidate: 1\n    candidates: [a, b, c]\n    horizontal: true\n"
	a := &event.Arena{}
	defer a.Reset()
	records, err := Load(strings.NewReader(doc), a)
	require.NoError(t, err)
	require.Len(t, records, 1)

	tc, err := event.As[event.TextEditingCandidatesEvent](&records[0].Event)
	require.NoError(t, err)
	assert.Equal(t, int32(3), tc.NumCandidates())
	assert.Equal(t, []string{"a", "b", "c"}, tc.Candidates())
	assert.Equal(t, int32(1), tc.SelectedCandidate())
}
