package event

// Gamepad axis motion event structure (event.gaxis.*)
type GamepadAxisEvent Event

var gamepadAxisLayout = layout{
	name:    "GamepadAxisEvent",
	accepts: GamepadAxisEvent{}.Accepts,
	fields: []field{
		{name: "Which", off: 16, kind: kindU32},
		{name: "Axis", off: 20, kind: kindU8},
		{name: "Value", off: 24, kind: kindI16},
	},
}

func (GamepadAxisEvent) Accepts(t Type) bool {
	return t == GamepadAxisMotion
}

func (ga GamepadAxisEvent) Type() Type              { return Event(ga).Type() }
func (ga *GamepadAxisEvent) SetType(t Type) error   { return setType((*Event)(ga), t, &gamepadAxisLayout) }
func (ga GamepadAxisEvent) Timestamp() uint64       { return Event(ga).Timestamp() }
func (ga *GamepadAxisEvent) SetTimestamp(ns uint64) { (*Event)(ga).SetTimestamp(ns) }
func (ga GamepadAxisEvent) String() string          { return gamepadAxisLayout.describe((*Event)(&ga)) }
func (ga GamepadAxisEvent) Which() uint32           { return hostByteOrder.Uint32(ga[16:20]) }
func (ga *GamepadAxisEvent) SetWhich(id uint32)     { hostByteOrder.PutUint32(ga[16:20], id) }
func (ga GamepadAxisEvent) Axis() uint8             { return ga[20] }
func (ga *GamepadAxisEvent) SetAxis(a uint8)        { ga[20] = a }
func (ga GamepadAxisEvent) Value() int16            { return int16(hostByteOrder.Uint16(ga[24:26])) }
func (ga *GamepadAxisEvent) SetValue(v int16)       { hostByteOrder.PutUint16(ga[24:26], uint16(v)) }

// Gamepad button event structure (event.gbutton.*)
type GamepadButtonEvent Event

var gamepadButtonLayout = layout{
	name:    "GamepadButtonEvent",
	accepts: GamepadButtonEvent{}.Accepts,
	fields: []field{
		{name: "Which", off: 16, kind: kindU32},
		{name: "Button", off: 20, kind: kindU8},
		{name: "Down", off: 21, kind: kindBool},
	},
}

func (GamepadButtonEvent) Accepts(t Type) bool {
	return t == GamepadButtonDown || t == GamepadButtonUp
}

func (gb GamepadButtonEvent) Type() Type              { return Event(gb).Type() }
func (gb *GamepadButtonEvent) SetType(t Type) error   { return setType((*Event)(gb), t, &gamepadButtonLayout) }
func (gb GamepadButtonEvent) Timestamp() uint64       { return Event(gb).Timestamp() }
func (gb *GamepadButtonEvent) SetTimestamp(ns uint64) { (*Event)(gb).SetTimestamp(ns) }
func (gb GamepadButtonEvent) String() string          { return gamepadButtonLayout.describe((*Event)(&gb)) }
func (gb GamepadButtonEvent) Which() uint32           { return hostByteOrder.Uint32(gb[16:20]) }
func (gb *GamepadButtonEvent) SetWhich(id uint32)     { hostByteOrder.PutUint32(gb[16:20], id) }
func (gb GamepadButtonEvent) Button() uint8           { return gb[20] }
func (gb *GamepadButtonEvent) SetButton(b uint8)      { gb[20] = b }
func (gb GamepadButtonEvent) Down() bool              { return getBool(gb[21]) }
func (gb *GamepadButtonEvent) SetDown(down bool)      { putBool(&gb[21], down) }

// Gamepad device event structure (event.gdevice.*)
type GamepadDeviceEvent Event

var gamepadDeviceLayout = layout{
	name:    "GamepadDeviceEvent",
	accepts: GamepadDeviceEvent{}.Accepts,
	fields: []field{
		{name: "Which", off: 16, kind: kindU32},
	},
}

func (GamepadDeviceEvent) Accepts(t Type) bool {
	switch t {
	case GamepadAdded, GamepadRemoved, GamepadRemapped, GamepadUpdateComplete, GamepadSteamHandleUpdated:
		return true
	}
	return false
}

func (gd GamepadDeviceEvent) Type() Type              { return Event(gd).Type() }
func (gd *GamepadDeviceEvent) SetType(t Type) error   { return setType((*Event)(gd), t, &gamepadDeviceLayout) }
func (gd GamepadDeviceEvent) Timestamp() uint64       { return Event(gd).Timestamp() }
func (gd *GamepadDeviceEvent) SetTimestamp(ns uint64) { (*Event)(gd).SetTimestamp(ns) }
func (gd GamepadDeviceEvent) String() string          { return gamepadDeviceLayout.describe((*Event)(&gd)) }
func (gd GamepadDeviceEvent) Which() uint32           { return hostByteOrder.Uint32(gd[16:20]) }
func (gd *GamepadDeviceEvent) SetWhich(id uint32)     { hostByteOrder.PutUint32(gd[16:20], id) }

// Gamepad touchpad event structure (event.gtouchpad.*)
type GamepadTouchpadEvent Event

var gamepadTouchpadLayout = layout{
	name:    "GamepadTouchpadEvent",
	accepts: GamepadTouchpadEvent{}.Accepts,
	fields: []field{
		{name: "Which", off: 16, kind: kindU32},
		{name: "Touchpad", off: 20, kind: kindI32},
		{name: "Finger", off: 24, kind: kindI32},
		{name: "X", off: 28, kind: kindF32},
		{name: "Y", off: 32, kind: kindF32},
		{name: "Pressure", off: 36, kind: kindF32},
	},
}

func (GamepadTouchpadEvent) Accepts(t Type) bool {
	return t >= GamepadTouchpadDown && t <= GamepadTouchpadUp
}

func (gt GamepadTouchpadEvent) Type() Type { return Event(gt).Type() }
func (gt *GamepadTouchpadEvent) SetType(t Type) error {
	return setType((*Event)(gt), t, &gamepadTouchpadLayout)
}
func (gt GamepadTouchpadEvent) Timestamp() uint64       { return Event(gt).Timestamp() }
func (gt *GamepadTouchpadEvent) SetTimestamp(ns uint64) { (*Event)(gt).SetTimestamp(ns) }
func (gt GamepadTouchpadEvent) String() string          { return gamepadTouchpadLayout.describe((*Event)(&gt)) }
func (gt GamepadTouchpadEvent) Which() uint32           { return hostByteOrder.Uint32(gt[16:20]) }
func (gt *GamepadTouchpadEvent) SetWhich(id uint32)     { hostByteOrder.PutUint32(gt[16:20], id) }
func (gt GamepadTouchpadEvent) Touchpad() int32         { return int32(hostByteOrder.Uint32(gt[20:24])) }
func (gt *GamepadTouchpadEvent) SetTouchpad(i int32)    { hostByteOrder.PutUint32(gt[20:24], uint32(i)) }
func (gt GamepadTouchpadEvent) Finger() int32           { return int32(hostByteOrder.Uint32(gt[24:28])) }
func (gt *GamepadTouchpadEvent) SetFinger(i int32)      { hostByteOrder.PutUint32(gt[24:28], uint32(i)) }

// X and Y are normalized to [0, 1] with the origin at the upper left.
func (gt GamepadTouchpadEvent) X() float32 {
	return getF32(gt[28:32])
}

func (gt *GamepadTouchpadEvent) SetX(x float32)        { putF32(gt[28:32], x) }
func (gt GamepadTouchpadEvent) Y() float32             { return getF32(gt[32:36]) }
func (gt *GamepadTouchpadEvent) SetY(y float32)        { putF32(gt[32:36], y) }
func (gt GamepadTouchpadEvent) Pressure() float32      { return getF32(gt[36:40]) }
func (gt *GamepadTouchpadEvent) SetPressure(p float32) { putF32(gt[36:40], p) }

// Gamepad sensor event structure (event.gsensor.*)
type GamepadSensorEvent Event

var gamepadSensorLayout = layout{
	name:    "GamepadSensorEvent",
	accepts: GamepadSensorEvent{}.Accepts,
	fields: []field{
		{name: "Which", off: 16, kind: kindU32},
		{name: "Sensor", off: 20, kind: kindI32},
		{name: "Data", off: 24, kind: kindF32Array, n: 3},
		{name: "SensorTimestamp", off: 40, kind: kindU64},
	},
}

func (GamepadSensorEvent) Accepts(t Type) bool {
	return t == GamepadSensorUpdate
}

func (gs GamepadSensorEvent) Type() Type              { return Event(gs).Type() }
func (gs *GamepadSensorEvent) SetType(t Type) error   { return setType((*Event)(gs), t, &gamepadSensorLayout) }
func (gs GamepadSensorEvent) Timestamp() uint64       { return Event(gs).Timestamp() }
func (gs *GamepadSensorEvent) SetTimestamp(ns uint64) { (*Event)(gs).SetTimestamp(ns) }
func (gs GamepadSensorEvent) String() string          { return gamepadSensorLayout.describe((*Event)(&gs)) }
func (gs GamepadSensorEvent) Which() uint32           { return hostByteOrder.Uint32(gs[16:20]) }
func (gs *GamepadSensorEvent) SetWhich(id uint32)     { hostByteOrder.PutUint32(gs[16:20], id) }
func (gs GamepadSensorEvent) Sensor() int32           { return int32(hostByteOrder.Uint32(gs[20:24])) }
func (gs *GamepadSensorEvent) SetSensor(s int32)      { hostByteOrder.PutUint32(gs[20:24], uint32(s)) }

func (gs GamepadSensorEvent) Data() [3]float32 {
	var d [3]float32
	for i := range d {
		d[i] = getF32(gs[24+4*i:])
	}
	return d
}

func (gs *GamepadSensorEvent) SetData(d [3]float32) {
	for i, v := range d {
		putF32(gs[24+4*i:], v)
	}
}

// SensorTimestamp is the sensor's own timestamp in nanoseconds, 0 if unknown.
func (gs GamepadSensorEvent) SensorTimestamp() uint64 {
	return hostByteOrder.Uint64(gs[40:48])
}

func (gs *GamepadSensorEvent) SetSensorTimestamp(ns uint64) {
	hostByteOrder.PutUint64(gs[40:48], ns)
}
