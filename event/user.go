package event

// A user-defined event type (event.user.*)
//
// Data1 and Data2 are opaque pointer sized slots. Events built by
// UserData.NewEvent carry handles there that UserData resolves back to Go
// values.
type UserEvent Event

var userLayout = layout{
	name:    "UserEvent",
	accepts: UserEvent{}.Accepts,
	fields: []field{
		{name: "WindowID", off: 16, kind: kindU32},
		{name: "Code", off: 20, kind: kindI32},
		{name: "Data1", off: 24, kind: kindPtr},
		{name: "Data2", off: 32, kind: kindPtr},
	},
}

func (UserEvent) Accepts(t Type) bool {
	return t.IsUser()
}

func (ue UserEvent) Type() Type              { return Event(ue).Type() }
func (ue *UserEvent) SetType(t Type) error   { return setType((*Event)(ue), t, &userLayout) }
func (ue UserEvent) Timestamp() uint64       { return Event(ue).Timestamp() }
func (ue *UserEvent) SetTimestamp(ns uint64) { (*Event)(ue).SetTimestamp(ns) }
func (ue UserEvent) String() string          { return userLayout.describe((*Event)(&ue)) }
func (ue UserEvent) WindowID() uint32        { return hostByteOrder.Uint32(ue[16:20]) }
func (ue *UserEvent) SetWindowID(id uint32)  { hostByteOrder.PutUint32(ue[16:20], id) }
func (ue UserEvent) Code() int32             { return int32(hostByteOrder.Uint32(ue[20:24])) }
func (ue *UserEvent) SetCode(c int32)        { hostByteOrder.PutUint32(ue[20:24], uint32(c)) }
func (ue UserEvent) Data1() uintptr          { return getPtr(ue[24:32]) }
func (ue *UserEvent) SetData1(p uintptr)     { putPtr(ue[24:32], p) }
func (ue UserEvent) Data2() uintptr          { return getPtr(ue[32:40]) }
func (ue *UserEvent) SetData2(p uintptr)     { putPtr(ue[32:40], p) }

func (ue UserEvent) data(n int) uintptr {
	return getPtr(ue[24+8*n:])
}
