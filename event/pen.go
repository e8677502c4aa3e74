package event

// Pen input flags, as carried in PenState.
const (
	PenInputDown        = 1 << 0
	PenInputButton1     = 1 << 1
	PenInputButton2     = 1 << 2
	PenInputButton3     = 1 << 3
	PenInputButton4     = 1 << 4
	PenInputButton5     = 1 << 5
	PenInputEraserTip   = 1 << 30
	PenInputInProximity = 1 << 31
)

// Pen axes
const (
	PenAxisPressure = iota
	PenAxisXTilt
	PenAxisYTilt
	PenAxisDistance
	PenAxisRotation
	PenAxisSlider
	PenAxisTangentialPressure
)

// penFields are the members every pen event starts with.
var penFields = []field{
	{name: "WindowID", off: 16, kind: kindU32},
	{name: "Which", off: 20, kind: kindU32},
}

var penPosFields = append(append([]field(nil), penFields...),
	field{name: "PenState", off: 24, kind: kindU32},
	field{name: "X", off: 28, kind: kindF32},
	field{name: "Y", off: 32, kind: kindF32},
)

// Pen proximity event structure (event.pproximity.*)
type PenProximityEvent Event

var penProximityLayout = layout{
	name:    "PenProximityEvent",
	accepts: PenProximityEvent{}.Accepts,
	fields:  penFields,
}

func (PenProximityEvent) Accepts(t Type) bool {
	return t == PenProximityIn || t == PenProximityOut
}

func (pp PenProximityEvent) Type() Type              { return Event(pp).Type() }
func (pp *PenProximityEvent) SetType(t Type) error   { return setType((*Event)(pp), t, &penProximityLayout) }
func (pp PenProximityEvent) Timestamp() uint64       { return Event(pp).Timestamp() }
func (pp *PenProximityEvent) SetTimestamp(ns uint64) { (*Event)(pp).SetTimestamp(ns) }
func (pp PenProximityEvent) String() string          { return penProximityLayout.describe((*Event)(&pp)) }
func (pp PenProximityEvent) WindowID() uint32        { return hostByteOrder.Uint32(pp[16:20]) }
func (pp *PenProximityEvent) SetWindowID(id uint32)  { hostByteOrder.PutUint32(pp[16:20], id) }
func (pp PenProximityEvent) Which() uint32           { return hostByteOrder.Uint32(pp[20:24]) }
func (pp *PenProximityEvent) SetWhich(id uint32)     { hostByteOrder.PutUint32(pp[20:24], id) }

// Pen motion event structure (event.pmotion.*)
type PenMotionEvent Event

var penMotionLayout = layout{
	name:    "PenMotionEvent",
	accepts: PenMotionEvent{}.Accepts,
	fields:  penPosFields,
}

func (PenMotionEvent) Accepts(t Type) bool {
	return t == PenMotion
}

func (pm PenMotionEvent) Type() Type              { return Event(pm).Type() }
func (pm *PenMotionEvent) SetType(t Type) error   { return setType((*Event)(pm), t, &penMotionLayout) }
func (pm PenMotionEvent) Timestamp() uint64       { return Event(pm).Timestamp() }
func (pm *PenMotionEvent) SetTimestamp(ns uint64) { (*Event)(pm).SetTimestamp(ns) }
func (pm PenMotionEvent) String() string          { return penMotionLayout.describe((*Event)(&pm)) }
func (pm PenMotionEvent) WindowID() uint32        { return hostByteOrder.Uint32(pm[16:20]) }
func (pm *PenMotionEvent) SetWindowID(id uint32)  { hostByteOrder.PutUint32(pm[16:20], id) }
func (pm PenMotionEvent) Which() uint32           { return hostByteOrder.Uint32(pm[20:24]) }
func (pm *PenMotionEvent) SetWhich(id uint32)     { hostByteOrder.PutUint32(pm[20:24], id) }
func (pm PenMotionEvent) PenState() uint32        { return hostByteOrder.Uint32(pm[24:28]) }
func (pm *PenMotionEvent) SetPenState(s uint32)   { hostByteOrder.PutUint32(pm[24:28], s) }
func (pm PenMotionEvent) X() float32              { return getF32(pm[28:32]) }
func (pm *PenMotionEvent) SetX(x float32)         { putF32(pm[28:32], x) }
func (pm PenMotionEvent) Y() float32              { return getF32(pm[32:36]) }
func (pm *PenMotionEvent) SetY(y float32)         { putF32(pm[32:36], y) }

// Pen tip event structure (event.ptouch.*)
type PenTouchEvent Event

var penTouchLayout = layout{
	name:    "PenTouchEvent",
	accepts: PenTouchEvent{}.Accepts,
	fields: append(append([]field(nil), penPosFields...),
		field{name: "Eraser", off: 36, kind: kindBool},
		field{name: "Down", off: 37, kind: kindBool},
	),
}

func (PenTouchEvent) Accepts(t Type) bool {
	return t == PenDown || t == PenUp
}

func (pt PenTouchEvent) Type() Type              { return Event(pt).Type() }
func (pt *PenTouchEvent) SetType(t Type) error   { return setType((*Event)(pt), t, &penTouchLayout) }
func (pt PenTouchEvent) Timestamp() uint64       { return Event(pt).Timestamp() }
func (pt *PenTouchEvent) SetTimestamp(ns uint64) { (*Event)(pt).SetTimestamp(ns) }
func (pt PenTouchEvent) String() string          { return penTouchLayout.describe((*Event)(&pt)) }
func (pt PenTouchEvent) WindowID() uint32        { return hostByteOrder.Uint32(pt[16:20]) }
func (pt *PenTouchEvent) SetWindowID(id uint32)  { hostByteOrder.PutUint32(pt[16:20], id) }
func (pt PenTouchEvent) Which() uint32           { return hostByteOrder.Uint32(pt[20:24]) }
func (pt *PenTouchEvent) SetWhich(id uint32)     { hostByteOrder.PutUint32(pt[20:24], id) }
func (pt PenTouchEvent) PenState() uint32        { return hostByteOrder.Uint32(pt[24:28]) }
func (pt *PenTouchEvent) SetPenState(s uint32)   { hostByteOrder.PutUint32(pt[24:28], s) }
func (pt PenTouchEvent) X() float32              { return getF32(pt[28:32]) }
func (pt *PenTouchEvent) SetX(x float32)         { putF32(pt[28:32], x) }
func (pt PenTouchEvent) Y() float32              { return getF32(pt[32:36]) }
func (pt *PenTouchEvent) SetY(y float32)         { putF32(pt[32:36], y) }

// Eraser is true when the eraser end of the pen touched.
func (pt PenTouchEvent) Eraser() bool {
	return getBool(pt[36])
}

func (pt *PenTouchEvent) SetEraser(e bool)  { putBool(&pt[36], e) }
func (pt PenTouchEvent) Down() bool         { return getBool(pt[37]) }
func (pt *PenTouchEvent) SetDown(down bool) { putBool(&pt[37], down) }

// Pen button event structure (event.pbutton.*)
type PenButtonEvent Event

var penButtonLayout = layout{
	name:    "PenButtonEvent",
	accepts: PenButtonEvent{}.Accepts,
	fields: append(append([]field(nil), penPosFields...),
		field{name: "Button", off: 36, kind: kindU8},
		field{name: "Down", off: 37, kind: kindBool},
	),
}

func (PenButtonEvent) Accepts(t Type) bool {
	return t == PenButtonDown || t == PenButtonUp
}

func (pb PenButtonEvent) Type() Type              { return Event(pb).Type() }
func (pb *PenButtonEvent) SetType(t Type) error   { return setType((*Event)(pb), t, &penButtonLayout) }
func (pb PenButtonEvent) Timestamp() uint64       { return Event(pb).Timestamp() }
func (pb *PenButtonEvent) SetTimestamp(ns uint64) { (*Event)(pb).SetTimestamp(ns) }
func (pb PenButtonEvent) String() string          { return penButtonLayout.describe((*Event)(&pb)) }
func (pb PenButtonEvent) WindowID() uint32        { return hostByteOrder.Uint32(pb[16:20]) }
func (pb *PenButtonEvent) SetWindowID(id uint32)  { hostByteOrder.PutUint32(pb[16:20], id) }
func (pb PenButtonEvent) Which() uint32           { return hostByteOrder.Uint32(pb[20:24]) }
func (pb *PenButtonEvent) SetWhich(id uint32)     { hostByteOrder.PutUint32(pb[20:24], id) }
func (pb PenButtonEvent) PenState() uint32        { return hostByteOrder.Uint32(pb[24:28]) }
func (pb *PenButtonEvent) SetPenState(s uint32)   { hostByteOrder.PutUint32(pb[24:28], s) }
func (pb PenButtonEvent) X() float32              { return getF32(pb[28:32]) }
func (pb *PenButtonEvent) SetX(x float32)         { putF32(pb[28:32], x) }
func (pb PenButtonEvent) Y() float32              { return getF32(pb[32:36]) }
func (pb *PenButtonEvent) SetY(y float32)         { putF32(pb[32:36], y) }

// Button is 1-based; 1 is the first barrel button.
func (pb PenButtonEvent) Button() uint8 {
	return pb[36]
}

func (pb *PenButtonEvent) SetButton(b uint8) { pb[36] = b }
func (pb PenButtonEvent) Down() bool         { return getBool(pb[37]) }
func (pb *PenButtonEvent) SetDown(down bool) { putBool(&pb[37], down) }

// Pen axis event structure (event.paxis.*)
type PenAxisEvent Event

var penAxisLayout = layout{
	name:    "PenAxisEvent",
	accepts: PenAxisEvent{}.Accepts,
	fields: append(append([]field(nil), penPosFields...),
		field{name: "Axis", off: 36, kind: kindU32},
		field{name: "Value", off: 40, kind: kindF32},
	),
}

func (PenAxisEvent) Accepts(t Type) bool {
	return t == PenAxis
}

func (pa PenAxisEvent) Type() Type              { return Event(pa).Type() }
func (pa *PenAxisEvent) SetType(t Type) error   { return setType((*Event)(pa), t, &penAxisLayout) }
func (pa PenAxisEvent) Timestamp() uint64       { return Event(pa).Timestamp() }
func (pa *PenAxisEvent) SetTimestamp(ns uint64) { (*Event)(pa).SetTimestamp(ns) }
func (pa PenAxisEvent) String() string          { return penAxisLayout.describe((*Event)(&pa)) }
func (pa PenAxisEvent) WindowID() uint32        { return hostByteOrder.Uint32(pa[16:20]) }
func (pa *PenAxisEvent) SetWindowID(id uint32)  { hostByteOrder.PutUint32(pa[16:20], id) }
func (pa PenAxisEvent) Which() uint32           { return hostByteOrder.Uint32(pa[20:24]) }
func (pa *PenAxisEvent) SetWhich(id uint32)     { hostByteOrder.PutUint32(pa[20:24], id) }
func (pa PenAxisEvent) PenState() uint32        { return hostByteOrder.Uint32(pa[24:28]) }
func (pa *PenAxisEvent) SetPenState(s uint32)   { hostByteOrder.PutUint32(pa[24:28], s) }
func (pa PenAxisEvent) X() float32              { return getF32(pa[28:32]) }
func (pa *PenAxisEvent) SetX(x float32)         { putF32(pa[28:32], x) }
func (pa PenAxisEvent) Y() float32              { return getF32(pa[32:36]) }
func (pa *PenAxisEvent) SetY(y float32)         { putF32(pa[32:36], y) }

// Axis is one of the PenAxis* constants.
func (pa PenAxisEvent) Axis() uint32 {
	return hostByteOrder.Uint32(pa[36:40])
}

func (pa *PenAxisEvent) SetAxis(a uint32) { hostByteOrder.PutUint32(pa[36:40], a) }
func (pa PenAxisEvent) Value() float32    { return getF32(pa[40:44]) }
func (pa *PenAxisEvent) SetValue(v float32) {
	putF32(pa[40:44], v)
}
