package event

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	we, err := NewWindowEvent(WindowResized, 1, 800, 600)
	require.NoError(t, err)
	we.SetTimestamp(1000)
	e := Widen(we)

	want := "WindowEvent{type=SDL_EVENT_WINDOW_RESIZED timestamp=1000 window_id=1 data1=800 data2=600}"
	assert.Equal(t, want, Describe(&e))
	assert.Equal(t, want, e.String())
	assert.Equal(t, want, we.String())
}

func TestDescribeFallback(t *testing.T) {
	for _, typ := range []Type{First, LowMemory, KeymapChanged, Private2, PollSentinel} {
		e := New(typ, 5)
		assert.Equal(t, "CommonEvent{type="+typ.String()+" timestamp=5}", Describe(&e))
		assert.Equal(t, "CommonEvent", ViewName(typ))
		assert.Nil(t, Fields(&e))
	}
}

func TestDescribeNilText(t *testing.T) {
	e := New(TextInput, 0)
	assert.Equal(t, "TextInputEvent{type=SDL_EVENT_TEXT_INPUT timestamp=0 window_id=0 text=<nil>}", Describe(&e))
}

func TestViewName(t *testing.T) {
	assert.Equal(t, "WindowEvent", ViewName(WindowMoved))
	assert.Equal(t, "KeyboardEvent", ViewName(KeyDown))
	assert.Equal(t, "UserEvent", ViewName(User+10))
	assert.Equal(t, "QuitEvent", ViewName(Quit))
}

func TestFields(t *testing.T) {
	ue, err := Make[UserEvent](User, 0)
	require.NoError(t, err)
	ue.SetCode(3)
	e := Widen(ue)

	fields := Fields(&e)
	require.Len(t, fields, 4)
	assert.Equal(t, Field{Name: "window_id", Value: uint32(0)}, fields[0])
	assert.Equal(t, Field{Name: "code", Value: int32(3)}, fields[1])
	assert.Equal(t, Field{Name: "data1", Value: uintptr(0)}, fields[2])
}

func TestSetField(t *testing.T) {
	a := &Arena{}
	e := New(WindowMoved, 0)
	require.NoError(t, SetField(&e, "window_id", uint64(4), a))
	require.NoError(t, SetField(&e, "Data1", int64(-10), a))
	require.NoError(t, SetField(&e, "DATA2", 20, a))
	we := Unchecked[WindowEvent](&e)
	assert.Equal(t, uint32(4), we.WindowID())
	assert.Equal(t, int32(-10), we.Data1())
	assert.Equal(t, int32(20), we.Data2())

	assert.Error(t, SetField(&e, "window_id", int64(-1), a))
	assert.Error(t, SetField(&e, "data1", 1.5, a))
	assert.Error(t, SetField(&e, "nope", 1, a))

	q := New(KeymapChanged, 0)
	assert.Error(t, SetField(&q, "window_id", 1, a))

	ti := New(TextInput, 0)
	assert.Error(t, SetField(&ti, "text", "x", nil))
	require.NoError(t, SetField(&ti, "text", "hej", a))
	assert.Equal(t, "hej", Unchecked[TextInputEvent](&ti).Text())

	mm := New(MouseMotion, 0)
	require.NoError(t, SetField(&mm, "x", 12, a))
	require.NoError(t, SetField(&mm, "yrel", -0.5, a))
	assert.Equal(t, float32(12), Unchecked[MouseMotionEvent](&mm).X())
	assert.Equal(t, float32(-0.5), Unchecked[MouseMotionEvent](&mm).YRel())

	gs := New(GamepadSensorUpdate, 0)
	require.NoError(t, SetField(&gs, "data", []interface{}{1.0, 2, uint64(3)}, a))
	assert.Equal(t, [3]float32{1, 2, 3}, Unchecked[GamepadSensorEvent](&gs).Data())
	assert.Error(t, SetField(&gs, "data", []interface{}{1, 2, 3, 4}, a))

	ke := New(KeyDown, 0)
	require.NoError(t, SetField(&ke, "down", true, a))
	assert.Error(t, SetField(&ke, "repeat", 1, a))
	assert.True(t, Unchecked[KeyboardEvent](&ke).Down())

	cb := New(ClipboardUpdate, 0)
	require.NoError(t, SetField(&cb, "mime_types", []interface{}{"text/plain", "text/html"}, a))
	c := Unchecked[ClipboardEvent](&cb)
	assert.Equal(t, int32(2), c.NumMimeTypes())
	assert.Equal(t, []string{"text/plain", "text/html"}, c.MimeTypes())
}

func TestSetFieldWrapsView(t *testing.T) {
	e := New(WindowMoved, 0)
	err := SetField(&e, "data1", "left", &Arena{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WindowEvent")
	assert.False(t, errors.Is(err, ErrInvalidVariant))
}

func TestSetFieldListCountDerived(t *testing.T) {
	a := &Arena{}
	defer a.Reset()

	cb := New(ClipboardUpdate, 0)
	err := SetField(&cb, "num_mime_types", 4000, a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MimeTypes")

	tc := New(TextEditingCandidates, 0)
	assert.Error(t, SetField(&tc, "num_candidates", 2, a))
	require.NoError(t, SetField(&tc, "candidates", []interface{}{"a", "b"}, a))
	assert.Equal(t, int32(2), Unchecked[TextEditingCandidatesEvent](&tc).NumCandidates())
}
