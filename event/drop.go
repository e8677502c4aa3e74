package event

// Drag and drop event structure (event.drop.*)
type DropEvent Event

var dropLayout = layout{
	name:    "DropEvent",
	accepts: DropEvent{}.Accepts,
	fields: []field{
		{name: "WindowID", off: 16, kind: kindU32},
		{name: "X", off: 20, kind: kindF32},
		{name: "Y", off: 24, kind: kindF32},
		{name: "Source", off: 32, kind: kindText},
		{name: "Data", off: 40, kind: kindText},
	},
}

func (DropEvent) Accepts(t Type) bool {
	return t >= DropFile && t <= DropPosition
}

func (de DropEvent) Type() Type              { return Event(de).Type() }
func (de *DropEvent) SetType(t Type) error   { return setType((*Event)(de), t, &dropLayout) }
func (de DropEvent) Timestamp() uint64       { return Event(de).Timestamp() }
func (de *DropEvent) SetTimestamp(ns uint64) { (*Event)(de).SetTimestamp(ns) }
func (de DropEvent) String() string          { return dropLayout.describe((*Event)(&de)) }
func (de DropEvent) WindowID() uint32        { return hostByteOrder.Uint32(de[16:20]) }
func (de *DropEvent) SetWindowID(id uint32)  { hostByteOrder.PutUint32(de[16:20], id) }
func (de DropEvent) X() float32              { return getF32(de[20:24]) }
func (de *DropEvent) SetX(x float32)         { putF32(de[20:24], x) }
func (de DropEvent) Y() float32              { return getF32(de[24:28]) }
func (de *DropEvent) SetY(y float32)         { putF32(de[24:28], y) }
func (de DropEvent) SourcePtr() uintptr      { return getPtr(de[32:40]) }
func (de *DropEvent) SetSourcePtr(p uintptr) { putPtr(de[32:40], p) }
func (de DropEvent) DataPtr() uintptr        { return getPtr(de[40:48]) }
func (de *DropEvent) SetDataPtr(p uintptr)   { putPtr(de[40:48], p) }

// Source is the source application, if known. Only valid until the next poll.
func (de DropEvent) Source() string {
	return GoString(de.SourcePtr())
}

func (de *DropEvent) SetSource(string) error {
	return unsupportedMutation("DropEvent", "Source")
}

// Data is the dropped file name or text; empty for DropBegin and
// DropComplete. Only valid until the next poll.
func (de DropEvent) Data() string {
	return GoString(de.DataPtr())
}

func (de *DropEvent) SetData(string) error {
	return unsupportedMutation("DropEvent", "Data")
}
