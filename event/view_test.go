package event

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeRange(first, last Type) []Type {
	var out []Type
	for t := first; t <= last; t++ {
		out = append(out, t)
	}
	return out
}

// checkView narrows a freshly built record of every accepted type to T and
// back, and makes sure T rejects every other type.
func checkView[T View](t *testing.T, accepted ...Type) {
	var zero T
	name := fmt.Sprintf("%T", zero)
	for _, typ := range accepted {
		v, err := Make[T](typ, 42)
		require.NoError(t, err, "%s %s", name, typ)

		e := Widen(v)
		assert.Equal(t, typ, e.Type(), name)
		assert.Equal(t, uint64(42), e.Timestamp(), name)
		assert.True(t, Is[T](&e), name)

		p, err := As[T](&e)
		require.NoError(t, err, "%s %s", name, typ)
		assert.Equal(t, unsafe.Pointer(&e), unsafe.Pointer(p), "%s narrowing copied", name)
		assert.Equal(t, e, Widen(*p))
	}

	want := make(map[Type]bool, len(accepted))
	for _, typ := range accepted {
		want[typ] = true
	}
	for typ := First; typ <= Last; typ++ {
		if zero.Accepts(typ) != want[typ] {
			t.Errorf("%s.Accepts(%s) = %v", name, typ, !want[typ])
			continue
		}
		if want[typ] {
			continue
		}
		e := New(typ, 0)
		if _, err := As[T](&e); !errors.Is(err, ErrInvalidVariant) {
			t.Errorf("%s narrowed %s: %v", name, typ, err)
		}
	}

	_, err := Make[T](PollSentinel, 0)
	assert.True(t, errors.Is(err, ErrInvalidVariant), name)
}

func TestViewRoundTrip(t *testing.T) {
	checkView[QuitEvent](t, Quit)
	checkView[DisplayEvent](t, typeRange(DisplayFirst, DisplayLast)...)
	checkView[WindowEvent](t, typeRange(WindowFirst, WindowLast)...)
	checkView[KeyboardDeviceEvent](t, KeyboardAdded, KeyboardRemoved)
	checkView[KeyboardEvent](t, KeyDown, KeyUp)
	checkView[TextEditingEvent](t, TextEditing)
	checkView[TextEditingCandidatesEvent](t, TextEditingCandidates)
	checkView[TextInputEvent](t, TextInput)
	checkView[MouseDeviceEvent](t, MouseAdded, MouseRemoved)
	checkView[MouseMotionEvent](t, MouseMotion)
	checkView[MouseButtonEvent](t, MouseButtonDown, MouseButtonUp)
	checkView[MouseWheelEvent](t, MouseWheel)
	checkView[JoyAxisEvent](t, JoystickAxisMotion)
	checkView[JoyBallEvent](t, JoystickBallMotion)
	checkView[JoyHatEvent](t, JoystickHatMotion)
	checkView[JoyButtonEvent](t, JoystickButtonDown, JoystickButtonUp)
	checkView[JoyDeviceEvent](t, JoystickAdded, JoystickRemoved, JoystickUpdateComplete)
	checkView[JoyBatteryEvent](t, JoystickBatteryUpdated)
	checkView[GamepadAxisEvent](t, GamepadAxisMotion)
	checkView[GamepadButtonEvent](t, GamepadButtonDown, GamepadButtonUp)
	checkView[GamepadDeviceEvent](t, GamepadAdded, GamepadRemoved, GamepadRemapped, GamepadUpdateComplete, GamepadSteamHandleUpdated)
	checkView[GamepadTouchpadEvent](t, GamepadTouchpadDown, GamepadTouchpadMotion, GamepadTouchpadUp)
	checkView[GamepadSensorEvent](t, GamepadSensorUpdate)
	checkView[TouchFingerEvent](t, typeRange(FingerDown, FingerCanceled)...)
	checkView[PinchFingerEvent](t, typeRange(PinchBegin, PinchEnd)...)
	checkView[ClipboardEvent](t, ClipboardUpdate)
	checkView[DropEvent](t, typeRange(DropFile, DropPosition)...)
	checkView[AudioDeviceEvent](t, typeRange(AudioDeviceAdded, AudioDeviceFormatChanged)...)
	checkView[SensorEvent](t, SensorUpdate)
	checkView[PenProximityEvent](t, PenProximityIn, PenProximityOut)
	checkView[PenTouchEvent](t, PenDown, PenUp)
	checkView[PenButtonEvent](t, PenButtonDown, PenButtonUp)
	checkView[PenMotionEvent](t, PenMotion)
	checkView[PenAxisEvent](t, PenAxis)
	checkView[CameraDeviceEvent](t, typeRange(CameraDeviceAdded, CameraDeviceDenied)...)
	checkView[RenderEvent](t, typeRange(RenderTargetsReset, RenderDeviceLost)...)
	checkView[UserEvent](t, User, User+1, Last)
}

func TestViewsDisjoint(t *testing.T) {
	for typ := First; typ <= Last; typ++ {
		var claimed []string
		for _, l := range layouts {
			if l.accepts(typ) {
				claimed = append(claimed, l.name)
			}
		}
		if len(claimed) > 1 {
			t.Errorf("%s accepted by %v", typ, claimed)
		}
	}
}

func TestWindowResized(t *testing.T) {
	we, err := NewWindowEvent(WindowResized, 1, 800, 600)
	require.NoError(t, err)
	e := Widen(we)

	w, err := As[WindowEvent](&e)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), w.WindowID())
	assert.Equal(t, int32(800), w.Data1())
	assert.Equal(t, int32(600), w.Data2())

	_, err = As[KeyboardEvent](&e)
	assert.True(t, errors.Is(err, ErrInvalidVariant))
	assert.Contains(t, err.Error(), "SDL_EVENT_WINDOW_RESIZED")

	// writes through a view land in the container
	w.SetData1(1024)
	w2, err := As[WindowEvent](&e)
	require.NoError(t, err)
	assert.Equal(t, int32(1024), w2.Data1())

	_, err = NewWindowEvent(KeyDown, 1, 0, 0)
	assert.True(t, errors.Is(err, ErrInvalidVariant))
}

func TestViewSetType(t *testing.T) {
	we, err := Make[WindowEvent](WindowShown, 0)
	require.NoError(t, err)

	require.NoError(t, we.SetType(WindowMoved))
	assert.Equal(t, WindowMoved, we.Type())

	err = we.SetType(KeyDown)
	assert.True(t, errors.Is(err, ErrInvalidVariant))
	assert.Equal(t, WindowMoved, we.Type())

	// the container does not check
	e := Widen(we)
	e.SetType(KeyDown)
	assert.Equal(t, KeyDown, e.Type())
	assert.True(t, Is[KeyboardEvent](&e))
}

func TestUnchecked(t *testing.T) {
	we, err := NewWindowEvent(WindowMoved, 7, 10, 20)
	require.NoError(t, err)
	e := Widen(we)

	ke := Unchecked[KeyboardEvent](&e)
	assert.Equal(t, uint32(7), ke.WindowID())
	assert.Equal(t, WindowMoved, ke.Type())
}

func TestViewFields(t *testing.T) {
	mb, err := Make[MouseButtonEvent](MouseButtonDown, 5)
	require.NoError(t, err)
	mb.SetWindowID(3)
	mb.SetButton(ButtonRight)
	mb.SetDown(true)
	mb.SetClicks(2)
	mb.SetX(1.5)
	mb.SetY(-2.25)
	assert.Equal(t, uint32(3), mb.WindowID())
	assert.Equal(t, uint8(ButtonRight), mb.Button())
	assert.True(t, mb.Down())
	assert.Equal(t, uint8(2), mb.Clicks())
	assert.Equal(t, float32(1.5), mb.X())
	assert.Equal(t, float32(-2.25), mb.Y())

	gs, err := Make[GamepadSensorEvent](GamepadSensorUpdate, 0)
	require.NoError(t, err)
	gs.SetData([3]float32{1, 2, 3})
	assert.Equal(t, [3]float32{1, 2, 3}, gs.Data())

	se, err := Make[SensorEvent](SensorUpdate, 0)
	require.NoError(t, err)
	se.SetData([6]float32{1, 2, 3, 4, 5, 6})
	assert.Equal(t, [6]float32{1, 2, 3, 4, 5, 6}, se.Data())

	ja, err := Make[JoyAxisEvent](JoystickAxisMotion, 0)
	require.NoError(t, err)
	ja.SetValue(-32768)
	assert.Equal(t, int16(-32768), ja.Value())

	ke, err := Make[KeyboardEvent](KeyUp, 0)
	require.NoError(t, err)
	ke.SetMod(0x0040)
	ke.SetRepeat(true)
	assert.Equal(t, uint16(0x0040), ke.Mod())
	assert.True(t, ke.Repeat())
	assert.False(t, ke.Down())

	ue, err := Make[UserEvent](User+1, 0)
	require.NoError(t, err)
	ue.SetCode(-9)
	ue.SetData2(0xdeadbeef)
	assert.Equal(t, int32(-9), ue.Code())
	assert.Equal(t, uintptr(0xdeadbeef), ue.Data2())
	assert.Equal(t, uintptr(0), ue.Data1())
}

func TestEventHeader(t *testing.T) {
	e := New(Quit, 99)
	assert.Equal(t, CommonEvent{Type: Quit, Timestamp: 99}, e.Common())
	e.SetTimestamp(100)
	assert.Equal(t, uint64(100), e.Timestamp())
}
