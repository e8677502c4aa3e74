package event

import (
	"encoding/binary"
	"math"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Size is the size in bytes of SDL3's SDL_Event union.
const Size = 128

// Records mirror the 64-bit native layout; pointer fields are 8 bytes wide.
const _ = uint(unsafe.Sizeof(uintptr(0)) - 8)

// Event is the raw event record. Its first sixteen bytes are the common
// header (type, reserved, timestamp); the remainder is interpreted by
// whichever view accepts the type.
type Event [Size]byte

var hostByteOrder binary.ByteOrder = binary.LittleEndian

func init() {
	if cpu.IsBigEndian {
		hostByteOrder = binary.BigEndian
	}
}

// New returns a zeroed event carrying the given header.
func New(t Type, timestamp uint64) Event {
	var e Event
	e.SetType(t)
	e.SetTimestamp(timestamp)
	return e
}

func (e Event) Type() Type {
	return Type(hostByteOrder.Uint32(e[0:4]))
}

// SetType overwrites the discriminant without any check. Views provide a
// checked SetType.
func (e *Event) SetType(t Type) {
	hostByteOrder.PutUint32(e[0:4], uint32(t))
}

// Timestamp in nanoseconds.
func (e Event) Timestamp() uint64 {
	return hostByteOrder.Uint64(e[8:16])
}

func (e *Event) SetTimestamp(ns uint64) {
	hostByteOrder.PutUint64(e[8:16], ns)
}

func (e Event) String() string {
	return Describe(&e)
}

// CommonEvent is the header shared by every record.
type CommonEvent struct {
	Type      Type
	Timestamp uint64
}

func (e Event) Common() CommonEvent {
	return CommonEvent{Type: e.Type(), Timestamp: e.Timestamp()}
}

func getF32(b []byte) float32 {
	return math.Float32frombits(hostByteOrder.Uint32(b))
}

func putF32(b []byte, f float32) {
	hostByteOrder.PutUint32(b, math.Float32bits(f))
}

func getBool(b byte) bool {
	return b != 0
}

func putBool(b *byte, v bool) {
	if v {
		*b = 1
	} else {
		*b = 0
	}
}

func getPtr(b []byte) uintptr {
	return uintptr(hostByteOrder.Uint64(b))
}

func putPtr(b []byte, p uintptr) {
	hostByteOrder.PutUint64(b, uint64(p))
}
