package event

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Type is the discriminant stored in the first four bytes of every event
// record. The numeric values are those of SDL3's SDL_EventType.
type Type uint32

const First Type = 0

// Application Events
const (
	Quit Type = 0x100 + iota
	Terminating
	LowMemory
	WillEnterBackground
	DidEnterBackground
	WillEnterForeground
	DidEnterForeground
	LocaleChanged
	SystemThemeChanged
)

// Display Events
const (
	DisplayOrientation Type = 0x151 + iota
	DisplayAdded
	DisplayRemoved
	DisplayMoved
	DisplayDesktopModeChanged
	DisplayCurrentModeChanged
	DisplayContentScaleChanged

	DisplayFirst = DisplayOrientation
	DisplayLast  = DisplayContentScaleChanged
)

// Window Events
const (
	WindowShown Type = 0x202 + iota
	WindowHidden
	WindowExposed
	WindowMoved
	WindowResized
	WindowPixelSizeChanged
	WindowMetalViewResized
	WindowMinimized
	WindowMaximized
	WindowRestored
	WindowMouseEnter
	WindowMouseLeave
	WindowFocusGained
	WindowFocusLost
	WindowCloseRequested
	WindowHitTest
	WindowICCProfChanged
	WindowDisplayChanged
	WindowDisplayScaleChanged
	WindowSafeAreaChanged
	WindowOccluded
	WindowEnterFullscreen
	WindowLeaveFullscreen
	WindowDestroyed
	WindowHDRStateChanged

	WindowFirst = WindowShown
	WindowLast  = WindowHDRStateChanged
)

// Keyboard Events
const (
	KeyDown Type = 0x300 + iota
	KeyUp
	TextEditing
	TextInput
	KeymapChanged
	KeyboardAdded
	KeyboardRemoved
	TextEditingCandidates
)

// Mouse Events
const (
	MouseMotion Type = 0x400 + iota
	MouseButtonDown
	MouseButtonUp
	MouseWheel
	MouseAdded
	MouseRemoved
)

// Joystick Events
const (
	JoystickAxisMotion Type = 0x600 + iota
	JoystickBallMotion
	JoystickHatMotion
	JoystickButtonDown
	JoystickButtonUp
	JoystickAdded
	JoystickRemoved
	JoystickBatteryUpdated
	JoystickUpdateComplete
)

// Gamepad Events
const (
	GamepadAxisMotion Type = 0x650 + iota
	GamepadButtonDown
	GamepadButtonUp
	GamepadAdded
	GamepadRemoved
	GamepadRemapped
	GamepadTouchpadDown
	GamepadTouchpadMotion
	GamepadTouchpadUp
	GamepadSensorUpdate
	GamepadUpdateComplete
	GamepadSteamHandleUpdated
)

// Touch Events
const (
	FingerDown Type = 0x700 + iota
	FingerUp
	FingerMotion
	FingerCanceled
)

// Pinch Events
const (
	PinchBegin Type = 0x710 + iota
	PinchUpdate
	PinchEnd
)

// Clipboard Events
const (
	ClipboardUpdate Type = 0x900
)

// Drag and Drop Events
const (
	DropFile Type = 0x1000 + iota
	DropText
	DropBegin
	DropComplete
	DropPosition
)

// Audio Hotplug Events
const (
	AudioDeviceAdded Type = 0x1100 + iota
	AudioDeviceRemoved
	AudioDeviceFormatChanged
)

// Sensor Events
const (
	SensorUpdate Type = 0x1200
)

// Pressure-sensitive Pen Events
const (
	PenProximityIn Type = 0x1300 + iota
	PenProximityOut
	PenDown
	PenUp
	PenButtonDown
	PenButtonUp
	PenMotion
	PenAxis
)

// Camera Hotplug Events
const (
	CameraDeviceAdded Type = 0x1400 + iota
	CameraDeviceRemoved
	CameraDeviceApproved
	CameraDeviceDenied
)

// Render Events
const (
	RenderTargetsReset Type = 0x2000 + iota
	RenderDeviceReset
	RenderDeviceLost
)

// Reserved Events
const (
	Private0 Type = 0x4000 + iota
	Private1
	Private2
	Private3
)

const PollSentinel Type = 0x7F00

const (
	User Type = 0x8000
	Last Type = 0xFFFF
)

var typeNames = map[Type]string{
	First:                      "FIRST",
	Quit:                       "QUIT",
	Terminating:                "TERMINATING",
	LowMemory:                  "LOW_MEMORY",
	WillEnterBackground:        "WILL_ENTER_BACKGROUND",
	DidEnterBackground:         "DID_ENTER_BACKGROUND",
	WillEnterForeground:        "WILL_ENTER_FOREGROUND",
	DidEnterForeground:         "DID_ENTER_FOREGROUND",
	LocaleChanged:              "LOCALE_CHANGED",
	SystemThemeChanged:         "SYSTEM_THEME_CHANGED",
	DisplayOrientation:         "DISPLAY_ORIENTATION",
	DisplayAdded:               "DISPLAY_ADDED",
	DisplayRemoved:             "DISPLAY_REMOVED",
	DisplayMoved:               "DISPLAY_MOVED",
	DisplayDesktopModeChanged:  "DISPLAY_DESKTOP_MODE_CHANGED",
	DisplayCurrentModeChanged:  "DISPLAY_CURRENT_MODE_CHANGED",
	DisplayContentScaleChanged: "DISPLAY_CONTENT_SCALE_CHANGED",
	WindowShown:                "WINDOW_SHOWN",
	WindowHidden:               "WINDOW_HIDDEN",
	WindowExposed:              "WINDOW_EXPOSED",
	WindowMoved:                "WINDOW_MOVED",
	WindowResized:              "WINDOW_RESIZED",
	WindowPixelSizeChanged:     "WINDOW_PIXEL_SIZE_CHANGED",
	WindowMetalViewResized:     "WINDOW_METAL_VIEW_RESIZED",
	WindowMinimized:            "WINDOW_MINIMIZED",
	WindowMaximized:            "WINDOW_MAXIMIZED",
	WindowRestored:             "WINDOW_RESTORED",
	WindowMouseEnter:           "WINDOW_MOUSE_ENTER",
	WindowMouseLeave:           "WINDOW_MOUSE_LEAVE",
	WindowFocusGained:          "WINDOW_FOCUS_GAINED",
	WindowFocusLost:            "WINDOW_FOCUS_LOST",
	WindowCloseRequested:       "WINDOW_CLOSE_REQUESTED",
	WindowHitTest:              "WINDOW_HIT_TEST",
	WindowICCProfChanged:       "WINDOW_ICCPROF_CHANGED",
	WindowDisplayChanged:       "WINDOW_DISPLAY_CHANGED",
	WindowDisplayScaleChanged:  "WINDOW_DISPLAY_SCALE_CHANGED",
	WindowSafeAreaChanged:      "WINDOW_SAFE_AREA_CHANGED",
	WindowOccluded:             "WINDOW_OCCLUDED",
	WindowEnterFullscreen:      "WINDOW_ENTER_FULLSCREEN",
	WindowLeaveFullscreen:      "WINDOW_LEAVE_FULLSCREEN",
	WindowDestroyed:            "WINDOW_DESTROYED",
	WindowHDRStateChanged:      "WINDOW_HDR_STATE_CHANGED",
	KeyDown:                    "KEY_DOWN",
	KeyUp:                      "KEY_UP",
	TextEditing:                "TEXT_EDITING",
	TextInput:                  "TEXT_INPUT",
	KeymapChanged:              "KEYMAP_CHANGED",
	KeyboardAdded:              "KEYBOARD_ADDED",
	KeyboardRemoved:            "KEYBOARD_REMOVED",
	TextEditingCandidates:      "TEXT_EDITING_CANDIDATES",
	MouseMotion:                "MOUSE_MOTION",
	MouseButtonDown:            "MOUSE_BUTTON_DOWN",
	MouseButtonUp:              "MOUSE_BUTTON_UP",
	MouseWheel:                 "MOUSE_WHEEL",
	MouseAdded:                 "MOUSE_ADDED",
	MouseRemoved:               "MOUSE_REMOVED",
	JoystickAxisMotion:         "JOYSTICK_AXIS_MOTION",
	JoystickBallMotion:         "JOYSTICK_BALL_MOTION",
	JoystickHatMotion:          "JOYSTICK_HAT_MOTION",
	JoystickButtonDown:         "JOYSTICK_BUTTON_DOWN",
	JoystickButtonUp:           "JOYSTICK_BUTTON_UP",
	JoystickAdded:              "JOYSTICK_ADDED",
	JoystickRemoved:            "JOYSTICK_REMOVED",
	JoystickBatteryUpdated:     "JOYSTICK_BATTERY_UPDATED",
	JoystickUpdateComplete:     "JOYSTICK_UPDATE_COMPLETE",
	GamepadAxisMotion:          "GAMEPAD_AXIS_MOTION",
	GamepadButtonDown:          "GAMEPAD_BUTTON_DOWN",
	GamepadButtonUp:            "GAMEPAD_BUTTON_UP",
	GamepadAdded:               "GAMEPAD_ADDED",
	GamepadRemoved:             "GAMEPAD_REMOVED",
	GamepadRemapped:            "GAMEPAD_REMAPPED",
	GamepadTouchpadDown:        "GAMEPAD_TOUCHPAD_DOWN",
	GamepadTouchpadMotion:      "GAMEPAD_TOUCHPAD_MOTION",
	GamepadTouchpadUp:          "GAMEPAD_TOUCHPAD_UP",
	GamepadSensorUpdate:        "GAMEPAD_SENSOR_UPDATE",
	GamepadUpdateComplete:      "GAMEPAD_UPDATE_COMPLETE",
	GamepadSteamHandleUpdated:  "GAMEPAD_STEAM_HANDLE_UPDATED",
	FingerDown:                 "FINGER_DOWN",
	FingerUp:                   "FINGER_UP",
	FingerMotion:               "FINGER_MOTION",
	FingerCanceled:             "FINGER_CANCELED",
	PinchBegin:                 "PINCH_BEGIN",
	PinchUpdate:                "PINCH_UPDATE",
	PinchEnd:                   "PINCH_END",
	ClipboardUpdate:            "CLIPBOARD_UPDATE",
	DropFile:                   "DROP_FILE",
	DropText:                   "DROP_TEXT",
	DropBegin:                  "DROP_BEGIN",
	DropComplete:               "DROP_COMPLETE",
	DropPosition:               "DROP_POSITION",
	AudioDeviceAdded:           "AUDIO_DEVICE_ADDED",
	AudioDeviceRemoved:         "AUDIO_DEVICE_REMOVED",
	AudioDeviceFormatChanged:   "AUDIO_DEVICE_FORMAT_CHANGED",
	SensorUpdate:               "SENSOR_UPDATE",
	PenProximityIn:             "PEN_PROXIMITY_IN",
	PenProximityOut:            "PEN_PROXIMITY_OUT",
	PenDown:                    "PEN_DOWN",
	PenUp:                      "PEN_UP",
	PenButtonDown:              "PEN_BUTTON_DOWN",
	PenButtonUp:                "PEN_BUTTON_UP",
	PenMotion:                  "PEN_MOTION",
	PenAxis:                    "PEN_AXIS",
	CameraDeviceAdded:          "CAMERA_DEVICE_ADDED",
	CameraDeviceRemoved:        "CAMERA_DEVICE_REMOVED",
	CameraDeviceApproved:       "CAMERA_DEVICE_APPROVED",
	CameraDeviceDenied:         "CAMERA_DEVICE_DENIED",
	RenderTargetsReset:         "RENDER_TARGETS_RESET",
	RenderDeviceReset:          "RENDER_DEVICE_RESET",
	RenderDeviceLost:           "RENDER_DEVICE_LOST",
	Private0:                   "PRIVATE0",
	Private1:                   "PRIVATE1",
	Private2:                   "PRIVATE2",
	Private3:                   "PRIVATE3",
	PollSentinel:               "POLL_SENTINEL",
	User:                       "USER",
	Last:                       "LAST",
}

var typesByName map[string]Type

func init() {
	typesByName = make(map[string]Type, len(typeNames))
	for t, name := range typeNames {
		typesByName[name] = t
	}
}

const typePrefix = "SDL_EVENT_"

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return typePrefix + name
	}
	if t > User && t < Last {
		return fmt.Sprintf("%sUSER+%d", typePrefix, t-User)
	}
	return fmt.Sprintf("%s0x%04X", typePrefix, uint32(t))
}

// TypeByName looks up an event type by its SDL name. The SDL_EVENT_ prefix
// is optional and case is ignored.
func TypeByName(name string) (Type, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	name = strings.TrimPrefix(name, typePrefix)
	t, ok := typesByName[name]
	return t, ok
}

// IsUser reports whether t lies in the application defined band.
func (t Type) IsUser() bool {
	return t >= User && t <= Last
}

var nextUserType = uint32(User)

// RegisterEvents reserves n consecutive event types from the user band and
// returns the first one.
func RegisterEvents(n int) (Type, error) {
	if n <= 0 {
		return 0, errors.Errorf("cannot register %d events", n)
	}
	for {
		cur := atomic.LoadUint32(&nextUserType)
		if uint64(cur)+uint64(n) > uint64(Last)+1 {
			return 0, errors.Errorf("user event band exhausted, %d of %d left", uint32(Last)+1-cur, n)
		}
		if atomic.CompareAndSwapUint32(&nextUserType, cur, cur+uint32(n)) {
			return Type(cur), nil
		}
	}
}
