package event

// Joystick hat positions
const (
	HatCentered = 0x00
	HatUp       = 0x01
	HatRight    = 0x02
	HatDown     = 0x04
	HatLeft     = 0x08
)

// Joystick axis motion event structure (event.jaxis.*)
type JoyAxisEvent Event

var joyAxisLayout = layout{
	name:    "JoyAxisEvent",
	accepts: JoyAxisEvent{}.Accepts,
	fields: []field{
		{name: "Which", off: 16, kind: kindU32},
		{name: "Axis", off: 20, kind: kindU8},
		{name: "Value", off: 24, kind: kindI16},
	},
}

func (JoyAxisEvent) Accepts(t Type) bool {
	return t == JoystickAxisMotion
}

func (ja JoyAxisEvent) Type() Type              { return Event(ja).Type() }
func (ja *JoyAxisEvent) SetType(t Type) error   { return setType((*Event)(ja), t, &joyAxisLayout) }
func (ja JoyAxisEvent) Timestamp() uint64       { return Event(ja).Timestamp() }
func (ja *JoyAxisEvent) SetTimestamp(ns uint64) { (*Event)(ja).SetTimestamp(ns) }
func (ja JoyAxisEvent) String() string          { return joyAxisLayout.describe((*Event)(&ja)) }
func (ja JoyAxisEvent) Which() uint32           { return hostByteOrder.Uint32(ja[16:20]) }
func (ja *JoyAxisEvent) SetWhich(id uint32)     { hostByteOrder.PutUint32(ja[16:20], id) }
func (ja JoyAxisEvent) Axis() uint8             { return ja[20] }
func (ja *JoyAxisEvent) SetAxis(a uint8)        { ja[20] = a }
func (ja JoyAxisEvent) Value() int16            { return int16(hostByteOrder.Uint16(ja[24:26])) }
func (ja *JoyAxisEvent) SetValue(v int16)       { hostByteOrder.PutUint16(ja[24:26], uint16(v)) }

// Joystick trackball motion event structure (event.jball.*)
type JoyBallEvent Event

var joyBallLayout = layout{
	name:    "JoyBallEvent",
	accepts: JoyBallEvent{}.Accepts,
	fields: []field{
		{name: "Which", off: 16, kind: kindU32},
		{name: "Ball", off: 20, kind: kindU8},
		{name: "XRel", off: 24, kind: kindI16},
		{name: "YRel", off: 26, kind: kindI16},
	},
}

func (JoyBallEvent) Accepts(t Type) bool {
	return t == JoystickBallMotion
}

func (jb JoyBallEvent) Type() Type              { return Event(jb).Type() }
func (jb *JoyBallEvent) SetType(t Type) error   { return setType((*Event)(jb), t, &joyBallLayout) }
func (jb JoyBallEvent) Timestamp() uint64       { return Event(jb).Timestamp() }
func (jb *JoyBallEvent) SetTimestamp(ns uint64) { (*Event)(jb).SetTimestamp(ns) }
func (jb JoyBallEvent) String() string          { return joyBallLayout.describe((*Event)(&jb)) }
func (jb JoyBallEvent) Which() uint32           { return hostByteOrder.Uint32(jb[16:20]) }
func (jb *JoyBallEvent) SetWhich(id uint32)     { hostByteOrder.PutUint32(jb[16:20], id) }
func (jb JoyBallEvent) Ball() uint8             { return jb[20] }
func (jb *JoyBallEvent) SetBall(b uint8)        { jb[20] = b }
func (jb JoyBallEvent) XRel() int16             { return int16(hostByteOrder.Uint16(jb[24:26])) }
func (jb *JoyBallEvent) SetXRel(v int16)        { hostByteOrder.PutUint16(jb[24:26], uint16(v)) }
func (jb JoyBallEvent) YRel() int16             { return int16(hostByteOrder.Uint16(jb[26:28])) }
func (jb *JoyBallEvent) SetYRel(v int16)        { hostByteOrder.PutUint16(jb[26:28], uint16(v)) }

// Joystick hat position change event structure (event.jhat.*)
type JoyHatEvent Event

var joyHatLayout = layout{
	name:    "JoyHatEvent",
	accepts: JoyHatEvent{}.Accepts,
	fields: []field{
		{name: "Which", off: 16, kind: kindU32},
		{name: "Hat", off: 20, kind: kindU8},
		{name: "Value", off: 21, kind: kindU8},
	},
}

func (JoyHatEvent) Accepts(t Type) bool {
	return t == JoystickHatMotion
}

func (jh JoyHatEvent) Type() Type              { return Event(jh).Type() }
func (jh *JoyHatEvent) SetType(t Type) error   { return setType((*Event)(jh), t, &joyHatLayout) }
func (jh JoyHatEvent) Timestamp() uint64       { return Event(jh).Timestamp() }
func (jh *JoyHatEvent) SetTimestamp(ns uint64) { (*Event)(jh).SetTimestamp(ns) }
func (jh JoyHatEvent) String() string          { return joyHatLayout.describe((*Event)(&jh)) }
func (jh JoyHatEvent) Which() uint32           { return hostByteOrder.Uint32(jh[16:20]) }
func (jh *JoyHatEvent) SetWhich(id uint32)     { hostByteOrder.PutUint32(jh[16:20], id) }
func (jh JoyHatEvent) Hat() uint8              { return jh[20] }
func (jh *JoyHatEvent) SetHat(h uint8)         { jh[20] = h }

// Value is a combination of the Hat* position flags.
func (jh JoyHatEvent) Value() uint8 {
	return jh[21]
}

func (jh *JoyHatEvent) SetValue(v uint8) {
	jh[21] = v
}

// Joystick button event structure (event.jbutton.*)
type JoyButtonEvent Event

var joyButtonLayout = layout{
	name:    "JoyButtonEvent",
	accepts: JoyButtonEvent{}.Accepts,
	fields: []field{
		{name: "Which", off: 16, kind: kindU32},
		{name: "Button", off: 20, kind: kindU8},
		{name: "Down", off: 21, kind: kindBool},
	},
}

func (JoyButtonEvent) Accepts(t Type) bool {
	return t == JoystickButtonDown || t == JoystickButtonUp
}

func (jb JoyButtonEvent) Type() Type              { return Event(jb).Type() }
func (jb *JoyButtonEvent) SetType(t Type) error   { return setType((*Event)(jb), t, &joyButtonLayout) }
func (jb JoyButtonEvent) Timestamp() uint64       { return Event(jb).Timestamp() }
func (jb *JoyButtonEvent) SetTimestamp(ns uint64) { (*Event)(jb).SetTimestamp(ns) }
func (jb JoyButtonEvent) String() string          { return joyButtonLayout.describe((*Event)(&jb)) }
func (jb JoyButtonEvent) Which() uint32           { return hostByteOrder.Uint32(jb[16:20]) }
func (jb *JoyButtonEvent) SetWhich(id uint32)     { hostByteOrder.PutUint32(jb[16:20], id) }
func (jb JoyButtonEvent) Button() uint8           { return jb[20] }
func (jb *JoyButtonEvent) SetButton(b uint8)      { jb[20] = b }
func (jb JoyButtonEvent) Down() bool              { return getBool(jb[21]) }
func (jb *JoyButtonEvent) SetDown(down bool)      { putBool(&jb[21], down) }

// Joystick device event structure (event.jdevice.*)
type JoyDeviceEvent Event

var joyDeviceLayout = layout{
	name:    "JoyDeviceEvent",
	accepts: JoyDeviceEvent{}.Accepts,
	fields: []field{
		{name: "Which", off: 16, kind: kindU32},
	},
}

func (JoyDeviceEvent) Accepts(t Type) bool {
	return t == JoystickAdded || t == JoystickRemoved || t == JoystickUpdateComplete
}

func (jd JoyDeviceEvent) Type() Type              { return Event(jd).Type() }
func (jd *JoyDeviceEvent) SetType(t Type) error   { return setType((*Event)(jd), t, &joyDeviceLayout) }
func (jd JoyDeviceEvent) Timestamp() uint64       { return Event(jd).Timestamp() }
func (jd *JoyDeviceEvent) SetTimestamp(ns uint64) { (*Event)(jd).SetTimestamp(ns) }
func (jd JoyDeviceEvent) String() string          { return joyDeviceLayout.describe((*Event)(&jd)) }
func (jd JoyDeviceEvent) Which() uint32           { return hostByteOrder.Uint32(jd[16:20]) }
func (jd *JoyDeviceEvent) SetWhich(id uint32)     { hostByteOrder.PutUint32(jd[16:20], id) }

// Joystick battery level change event structure (event.jbattery.*)
type JoyBatteryEvent Event

var joyBatteryLayout = layout{
	name:    "JoyBatteryEvent",
	accepts: JoyBatteryEvent{}.Accepts,
	fields: []field{
		{name: "Which", off: 16, kind: kindU32},
		{name: "State", off: 20, kind: kindI32},
		{name: "Percent", off: 24, kind: kindI32},
	},
}

func (JoyBatteryEvent) Accepts(t Type) bool {
	return t == JoystickBatteryUpdated
}

func (jb JoyBatteryEvent) Type() Type              { return Event(jb).Type() }
func (jb *JoyBatteryEvent) SetType(t Type) error   { return setType((*Event)(jb), t, &joyBatteryLayout) }
func (jb JoyBatteryEvent) Timestamp() uint64       { return Event(jb).Timestamp() }
func (jb *JoyBatteryEvent) SetTimestamp(ns uint64) { (*Event)(jb).SetTimestamp(ns) }
func (jb JoyBatteryEvent) String() string          { return joyBatteryLayout.describe((*Event)(&jb)) }
func (jb JoyBatteryEvent) Which() uint32           { return hostByteOrder.Uint32(jb[16:20]) }
func (jb *JoyBatteryEvent) SetWhich(id uint32)     { hostByteOrder.PutUint32(jb[16:20], id) }

// State is an SDL_PowerState value.
func (jb JoyBatteryEvent) State() int32 {
	return int32(hostByteOrder.Uint32(jb[20:24]))
}

func (jb *JoyBatteryEvent) SetState(s int32) {
	hostByteOrder.PutUint32(jb[20:24], uint32(s))
}

// Percent is the remaining charge, or -1 if unknown.
func (jb JoyBatteryEvent) Percent() int32 {
	return int32(hostByteOrder.Uint32(jb[24:28]))
}

func (jb *JoyBatteryEvent) SetPercent(p int32) {
	hostByteOrder.PutUint32(jb[24:28], uint32(p))
}
