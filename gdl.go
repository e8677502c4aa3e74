// Package gdl starts and stops the gdl3 subsystems. Only the event queue is
// backed by this module; the other flags are accepted so that callers can
// pass SDL style flag sets unchanged.
package gdl

import (
	"sync"

	"github.com/elliotmr/gdl3/event"
	"github.com/elliotmr/gdl3/ticker"
	"github.com/pkg/errors"
)

const (
	InitAudio    = 0x00000010
	InitVideo    = 0x00000020
	InitJoystick = 0x00000200
	InitHaptic   = 0x00001000
	InitGamepad  = 0x00002000
	InitEvents   = 0x00004000
	InitSensor   = 0x00008000
	InitCamera   = 0x00010000
)

const InitEverything = InitAudio | InitVideo | InitJoystick | InitHaptic | InitGamepad | InitEvents | InitSensor | InitCamera

var (
	mu     sync.Mutex
	inited uint32

	EventLoop *event.Queue
)

// Init initializes the subsystems in flags. Flags imply their dependencies
// the way SDL does: gamepad implies joystick, and video, audio, joystick,
// sensor and camera imply events.
func Init(flags uint32) error {
	if flags&^InitEverything != 0 {
		return errors.Errorf("unknown init flags 0x%x", flags&^InitEverything)
	}
	if flags&InitGamepad > 0 {
		// gamepad implies joystick
		flags |= InitJoystick
	}
	if flags&(InitVideo|InitAudio|InitJoystick|InitSensor|InitCamera) > 0 {
		flags |= InitEvents
	}

	mu.Lock()
	defer mu.Unlock()

	if inited == 0 {
		ticker.Initialize()
	}
	if flags&InitEvents > 0 && inited&InitEvents == 0 {
		if EventLoop == nil {
			EventLoop = event.NewQueue()
		}
		if err := EventLoop.Start(); err != nil {
			return errors.Wrap(err, "failed starting event queue")
		}
	}
	inited |= flags
	return nil
}

// WasInit returns the subset of flags that is initialized.
func WasInit(flags uint32) uint32 {
	mu.Lock()
	defer mu.Unlock()
	if flags == 0 {
		return inited
	}
	return inited & flags
}

// Quit shuts down every subsystem.
func Quit() {
	mu.Lock()
	defer mu.Unlock()
	if EventLoop != nil {
		EventLoop.Stop()
	}
	inited = 0
}
