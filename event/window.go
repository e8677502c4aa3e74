package event

// Display state change event data (event.display.*)
type DisplayEvent Event

var displayLayout = layout{
	name:    "DisplayEvent",
	accepts: DisplayEvent{}.Accepts,
	fields: []field{
		{name: "DisplayID", off: 16, kind: kindU32},
		{name: "Data1", off: 20, kind: kindI32},
		{name: "Data2", off: 24, kind: kindI32},
	},
}

func (DisplayEvent) Accepts(t Type) bool {
	return t >= DisplayFirst && t <= DisplayLast
}

func (de DisplayEvent) Type() Type              { return Event(de).Type() }
func (de *DisplayEvent) SetType(t Type) error   { return setType((*Event)(de), t, &displayLayout) }
func (de DisplayEvent) Timestamp() uint64       { return Event(de).Timestamp() }
func (de *DisplayEvent) SetTimestamp(ns uint64) { (*Event)(de).SetTimestamp(ns) }
func (de DisplayEvent) String() string          { return displayLayout.describe((*Event)(&de)) }
func (de DisplayEvent) DisplayID() uint32       { return hostByteOrder.Uint32(de[16:20]) }
func (de *DisplayEvent) SetDisplayID(id uint32) { hostByteOrder.PutUint32(de[16:20], id) }
func (de DisplayEvent) Data1() int32            { return int32(hostByteOrder.Uint32(de[20:24])) }
func (de *DisplayEvent) SetData1(v int32)       { hostByteOrder.PutUint32(de[20:24], uint32(v)) }
func (de DisplayEvent) Data2() int32            { return int32(hostByteOrder.Uint32(de[24:28])) }
func (de *DisplayEvent) SetData2(v int32)       { hostByteOrder.PutUint32(de[24:28], uint32(v)) }

// Window state change event data (event.window.*)
type WindowEvent Event

var windowLayout = layout{
	name:    "WindowEvent",
	accepts: WindowEvent{}.Accepts,
	fields: []field{
		{name: "WindowID", off: 16, kind: kindU32},
		{name: "Data1", off: 20, kind: kindI32},
		{name: "Data2", off: 24, kind: kindI32},
	},
}

func (WindowEvent) Accepts(t Type) bool {
	return t >= WindowFirst && t <= WindowLast
}

func (we WindowEvent) Type() Type              { return Event(we).Type() }
func (we *WindowEvent) SetType(t Type) error   { return setType((*Event)(we), t, &windowLayout) }
func (we WindowEvent) Timestamp() uint64       { return Event(we).Timestamp() }
func (we *WindowEvent) SetTimestamp(ns uint64) { (*Event)(we).SetTimestamp(ns) }
func (we WindowEvent) String() string          { return windowLayout.describe((*Event)(&we)) }

func (we WindowEvent) WindowID() uint32 {
	return hostByteOrder.Uint32(we[16:20])
}

func (we *WindowEvent) SetWindowID(id uint32) {
	hostByteOrder.PutUint32(we[16:20], id)
}

// Data1 is event dependent: the x position for WindowMoved, the width for
// WindowResized.
func (we WindowEvent) Data1() int32 {
	return int32(hostByteOrder.Uint32(we[20:24]))
}

func (we *WindowEvent) SetData1(v int32) {
	hostByteOrder.PutUint32(we[20:24], uint32(v))
}

func (we WindowEvent) Data2() int32 {
	return int32(hostByteOrder.Uint32(we[24:28]))
}

func (we *WindowEvent) SetData2(v int32) {
	hostByteOrder.PutUint32(we[24:28], uint32(v))
}

// NewWindowEvent builds a window event of type t.
func NewWindowEvent(t Type, windowID uint32, data1, data2 int32) (WindowEvent, error) {
	we, err := Make[WindowEvent](t, 0)
	if err != nil {
		return we, err
	}
	we.SetWindowID(windowID)
	we.SetData1(data1)
	we.SetData2(data2)
	return we, nil
}
