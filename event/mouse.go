package event

// Mouse buttons
const (
	ButtonLeft = 1 + iota
	ButtonMiddle
	ButtonRight
	ButtonX1
	ButtonX2
)

// Mouse wheel directions
const (
	WheelNormal = iota
	WheelFlipped
)

// Mouse hotplug event data (event.mdevice.*)
type MouseDeviceEvent Event

var mouseDeviceLayout = layout{
	name:    "MouseDeviceEvent",
	accepts: MouseDeviceEvent{}.Accepts,
	fields: []field{
		{name: "Which", off: 16, kind: kindU32},
	},
}

func (MouseDeviceEvent) Accepts(t Type) bool {
	return t == MouseAdded || t == MouseRemoved
}

func (md MouseDeviceEvent) Type() Type              { return Event(md).Type() }
func (md *MouseDeviceEvent) SetType(t Type) error   { return setType((*Event)(md), t, &mouseDeviceLayout) }
func (md MouseDeviceEvent) Timestamp() uint64       { return Event(md).Timestamp() }
func (md *MouseDeviceEvent) SetTimestamp(ns uint64) { (*Event)(md).SetTimestamp(ns) }
func (md MouseDeviceEvent) String() string          { return mouseDeviceLayout.describe((*Event)(&md)) }
func (md MouseDeviceEvent) Which() uint32           { return hostByteOrder.Uint32(md[16:20]) }
func (md *MouseDeviceEvent) SetWhich(id uint32)     { hostByteOrder.PutUint32(md[16:20], id) }

// Mouse motion event structure (event.motion.*)
type MouseMotionEvent Event

var mouseMotionLayout = layout{
	name:    "MouseMotionEvent",
	accepts: MouseMotionEvent{}.Accepts,
	fields: []field{
		{name: "WindowID", off: 16, kind: kindU32},
		{name: "Which", off: 20, kind: kindU32},
		{name: "State", off: 24, kind: kindU32},
		{name: "X", off: 28, kind: kindF32},
		{name: "Y", off: 32, kind: kindF32},
		{name: "XRel", off: 36, kind: kindF32},
		{name: "YRel", off: 40, kind: kindF32},
	},
}

func (MouseMotionEvent) Accepts(t Type) bool {
	return t == MouseMotion
}

func (mm MouseMotionEvent) Type() Type              { return Event(mm).Type() }
func (mm *MouseMotionEvent) SetType(t Type) error   { return setType((*Event)(mm), t, &mouseMotionLayout) }
func (mm MouseMotionEvent) Timestamp() uint64       { return Event(mm).Timestamp() }
func (mm *MouseMotionEvent) SetTimestamp(ns uint64) { (*Event)(mm).SetTimestamp(ns) }
func (mm MouseMotionEvent) String() string          { return mouseMotionLayout.describe((*Event)(&mm)) }
func (mm MouseMotionEvent) WindowID() uint32        { return hostByteOrder.Uint32(mm[16:20]) }
func (mm *MouseMotionEvent) SetWindowID(id uint32)  { hostByteOrder.PutUint32(mm[16:20], id) }
func (mm MouseMotionEvent) Which() uint32           { return hostByteOrder.Uint32(mm[20:24]) }
func (mm *MouseMotionEvent) SetWhich(id uint32)     { hostByteOrder.PutUint32(mm[20:24], id) }

// State is the button state mask.
func (mm MouseMotionEvent) State() uint32 {
	return hostByteOrder.Uint32(mm[24:28])
}

func (mm *MouseMotionEvent) SetState(s uint32) {
	hostByteOrder.PutUint32(mm[24:28], s)
}

func (mm MouseMotionEvent) X() float32         { return getF32(mm[28:32]) }
func (mm *MouseMotionEvent) SetX(x float32)    { putF32(mm[28:32], x) }
func (mm MouseMotionEvent) Y() float32         { return getF32(mm[32:36]) }
func (mm *MouseMotionEvent) SetY(y float32)    { putF32(mm[32:36], y) }
func (mm MouseMotionEvent) XRel() float32      { return getF32(mm[36:40]) }
func (mm *MouseMotionEvent) SetXRel(x float32) { putF32(mm[36:40], x) }
func (mm MouseMotionEvent) YRel() float32      { return getF32(mm[40:44]) }
func (mm *MouseMotionEvent) SetYRel(y float32) { putF32(mm[40:44], y) }

// Mouse button event structure (event.button.*)
type MouseButtonEvent Event

var mouseButtonLayout = layout{
	name:    "MouseButtonEvent",
	accepts: MouseButtonEvent{}.Accepts,
	fields: []field{
		{name: "WindowID", off: 16, kind: kindU32},
		{name: "Which", off: 20, kind: kindU32},
		{name: "Button", off: 24, kind: kindU8},
		{name: "Down", off: 25, kind: kindBool},
		{name: "Clicks", off: 26, kind: kindU8},
		{name: "X", off: 28, kind: kindF32},
		{name: "Y", off: 32, kind: kindF32},
	},
}

func (MouseButtonEvent) Accepts(t Type) bool {
	return t == MouseButtonDown || t == MouseButtonUp
}

func (mbe MouseButtonEvent) Type() Type              { return Event(mbe).Type() }
func (mbe *MouseButtonEvent) SetType(t Type) error   { return setType((*Event)(mbe), t, &mouseButtonLayout) }
func (mbe MouseButtonEvent) Timestamp() uint64       { return Event(mbe).Timestamp() }
func (mbe *MouseButtonEvent) SetTimestamp(ns uint64) { (*Event)(mbe).SetTimestamp(ns) }
func (mbe MouseButtonEvent) String() string          { return mouseButtonLayout.describe((*Event)(&mbe)) }

func (mbe MouseButtonEvent) WindowID() uint32 {
	return hostByteOrder.Uint32(mbe[16:20])
}

func (mbe *MouseButtonEvent) SetWindowID(id uint32) {
	hostByteOrder.PutUint32(mbe[16:20], id)
}

func (mbe MouseButtonEvent) Which() uint32 {
	return hostByteOrder.Uint32(mbe[20:24])
}

func (mbe *MouseButtonEvent) SetWhich(id uint32) {
	hostByteOrder.PutUint32(mbe[20:24], id)
}

func (mbe MouseButtonEvent) Button() uint8 {
	return mbe[24]
}

func (mbe *MouseButtonEvent) SetButton(b uint8) {
	mbe[24] = b
}

func (mbe MouseButtonEvent) Down() bool {
	return getBool(mbe[25])
}

func (mbe *MouseButtonEvent) SetDown(down bool) {
	putBool(&mbe[25], down)
}

// Clicks is 1 for a single click, 2 for a double click, and so on.
func (mbe MouseButtonEvent) Clicks() uint8 {
	return mbe[26]
}

func (mbe *MouseButtonEvent) SetClicks(n uint8) {
	mbe[26] = n
}

func (mbe MouseButtonEvent) X() float32 {
	return getF32(mbe[28:32])
}

func (mbe *MouseButtonEvent) SetX(x float32) {
	putF32(mbe[28:32], x)
}

func (mbe MouseButtonEvent) Y() float32 {
	return getF32(mbe[32:36])
}

func (mbe *MouseButtonEvent) SetY(y float32) {
	putF32(mbe[32:36], y)
}

// Mouse wheel event structure (event.wheel.*)
type MouseWheelEvent Event

var mouseWheelLayout = layout{
	name:    "MouseWheelEvent",
	accepts: MouseWheelEvent{}.Accepts,
	fields: []field{
		{name: "WindowID", off: 16, kind: kindU32},
		{name: "Which", off: 20, kind: kindU32},
		{name: "X", off: 24, kind: kindF32},
		{name: "Y", off: 28, kind: kindF32},
		{name: "Direction", off: 32, kind: kindU32},
		{name: "MouseX", off: 36, kind: kindF32},
		{name: "MouseY", off: 40, kind: kindF32},
		{name: "IntegerX", off: 44, kind: kindI32},
		{name: "IntegerY", off: 48, kind: kindI32},
	},
}

func (MouseWheelEvent) Accepts(t Type) bool {
	return t == MouseWheel
}

func (mw MouseWheelEvent) Type() Type              { return Event(mw).Type() }
func (mw *MouseWheelEvent) SetType(t Type) error   { return setType((*Event)(mw), t, &mouseWheelLayout) }
func (mw MouseWheelEvent) Timestamp() uint64       { return Event(mw).Timestamp() }
func (mw *MouseWheelEvent) SetTimestamp(ns uint64) { (*Event)(mw).SetTimestamp(ns) }
func (mw MouseWheelEvent) String() string          { return mouseWheelLayout.describe((*Event)(&mw)) }
func (mw MouseWheelEvent) WindowID() uint32        { return hostByteOrder.Uint32(mw[16:20]) }
func (mw *MouseWheelEvent) SetWindowID(id uint32)  { hostByteOrder.PutUint32(mw[16:20], id) }
func (mw MouseWheelEvent) Which() uint32           { return hostByteOrder.Uint32(mw[20:24]) }
func (mw *MouseWheelEvent) SetWhich(id uint32)     { hostByteOrder.PutUint32(mw[20:24], id) }
func (mw MouseWheelEvent) X() float32              { return getF32(mw[24:28]) }
func (mw *MouseWheelEvent) SetX(x float32)         { putF32(mw[24:28], x) }
func (mw MouseWheelEvent) Y() float32              { return getF32(mw[28:32]) }
func (mw *MouseWheelEvent) SetY(y float32)         { putF32(mw[28:32], y) }
func (mw MouseWheelEvent) Direction() uint32       { return hostByteOrder.Uint32(mw[32:36]) }
func (mw *MouseWheelEvent) SetDirection(d uint32)  { hostByteOrder.PutUint32(mw[32:36], d) }
func (mw MouseWheelEvent) MouseX() float32         { return getF32(mw[36:40]) }
func (mw *MouseWheelEvent) SetMouseX(x float32)    { putF32(mw[36:40], x) }
func (mw MouseWheelEvent) MouseY() float32         { return getF32(mw[40:44]) }
func (mw *MouseWheelEvent) SetMouseY(y float32)    { putF32(mw[40:44], y) }
func (mw MouseWheelEvent) IntegerX() int32         { return int32(hostByteOrder.Uint32(mw[44:48])) }
func (mw *MouseWheelEvent) SetIntegerX(x int32)    { hostByteOrder.PutUint32(mw[44:48], uint32(x)) }
func (mw MouseWheelEvent) IntegerY() int32         { return int32(hostByteOrder.Uint32(mw[48:52])) }
func (mw *MouseWheelEvent) SetIntegerY(y int32)    { hostByteOrder.PutUint32(mw[48:52], uint32(y)) }
