package event

// Touch finger event structure (event.tfinger.*)
type TouchFingerEvent Event

var touchFingerLayout = layout{
	name:    "TouchFingerEvent",
	accepts: TouchFingerEvent{}.Accepts,
	fields: []field{
		{name: "TouchID", off: 16, kind: kindU64},
		{name: "FingerID", off: 24, kind: kindU64},
		{name: "X", off: 32, kind: kindF32},
		{name: "Y", off: 36, kind: kindF32},
		{name: "DX", off: 40, kind: kindF32},
		{name: "DY", off: 44, kind: kindF32},
		{name: "Pressure", off: 48, kind: kindF32},
		{name: "WindowID", off: 52, kind: kindU32},
	},
}

func (TouchFingerEvent) Accepts(t Type) bool {
	return t >= FingerDown && t <= FingerCanceled
}

func (tf TouchFingerEvent) Type() Type              { return Event(tf).Type() }
func (tf *TouchFingerEvent) SetType(t Type) error   { return setType((*Event)(tf), t, &touchFingerLayout) }
func (tf TouchFingerEvent) Timestamp() uint64       { return Event(tf).Timestamp() }
func (tf *TouchFingerEvent) SetTimestamp(ns uint64) { (*Event)(tf).SetTimestamp(ns) }
func (tf TouchFingerEvent) String() string          { return touchFingerLayout.describe((*Event)(&tf)) }
func (tf TouchFingerEvent) TouchID() uint64         { return hostByteOrder.Uint64(tf[16:24]) }
func (tf *TouchFingerEvent) SetTouchID(id uint64)   { hostByteOrder.PutUint64(tf[16:24], id) }
func (tf TouchFingerEvent) FingerID() uint64        { return hostByteOrder.Uint64(tf[24:32]) }
func (tf *TouchFingerEvent) SetFingerID(id uint64)  { hostByteOrder.PutUint64(tf[24:32], id) }

// X, Y, DX and DY are normalized to [0, 1] (or [-1, 1] for deltas).
func (tf TouchFingerEvent) X() float32 {
	return getF32(tf[32:36])
}

func (tf *TouchFingerEvent) SetX(x float32)        { putF32(tf[32:36], x) }
func (tf TouchFingerEvent) Y() float32             { return getF32(tf[36:40]) }
func (tf *TouchFingerEvent) SetY(y float32)        { putF32(tf[36:40], y) }
func (tf TouchFingerEvent) DX() float32            { return getF32(tf[40:44]) }
func (tf *TouchFingerEvent) SetDX(dx float32)      { putF32(tf[40:44], dx) }
func (tf TouchFingerEvent) DY() float32            { return getF32(tf[44:48]) }
func (tf *TouchFingerEvent) SetDY(dy float32)      { putF32(tf[44:48], dy) }
func (tf TouchFingerEvent) Pressure() float32      { return getF32(tf[48:52]) }
func (tf *TouchFingerEvent) SetPressure(p float32) { putF32(tf[48:52], p) }
func (tf TouchFingerEvent) WindowID() uint32       { return hostByteOrder.Uint32(tf[52:56]) }
func (tf *TouchFingerEvent) SetWindowID(id uint32) { hostByteOrder.PutUint32(tf[52:56], id) }

// Pinch event structure (event.pinch.*)
type PinchFingerEvent Event

var pinchFingerLayout = layout{
	name:    "PinchFingerEvent",
	accepts: PinchFingerEvent{}.Accepts,
	fields: []field{
		{name: "Scale", off: 16, kind: kindF32},
		{name: "WindowID", off: 20, kind: kindU32},
	},
}

func (PinchFingerEvent) Accepts(t Type) bool {
	return t >= PinchBegin && t <= PinchEnd
}

func (pf PinchFingerEvent) Type() Type              { return Event(pf).Type() }
func (pf *PinchFingerEvent) SetType(t Type) error   { return setType((*Event)(pf), t, &pinchFingerLayout) }
func (pf PinchFingerEvent) Timestamp() uint64       { return Event(pf).Timestamp() }
func (pf *PinchFingerEvent) SetTimestamp(ns uint64) { (*Event)(pf).SetTimestamp(ns) }
func (pf PinchFingerEvent) String() string          { return pinchFingerLayout.describe((*Event)(&pf)) }

// Scale is the pinch factor relative to the start of the gesture.
func (pf PinchFingerEvent) Scale() float32 {
	return getF32(pf[16:20])
}

func (pf *PinchFingerEvent) SetScale(s float32)    { putF32(pf[16:20], s) }
func (pf PinchFingerEvent) WindowID() uint32       { return hostByteOrder.Uint32(pf[20:24]) }
func (pf *PinchFingerEvent) SetWindowID(id uint32) { hostByteOrder.PutUint32(pf[20:24], id) }
