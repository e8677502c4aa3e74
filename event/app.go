package event

// The "quit requested" event (event.quit.*)
type QuitEvent Event

var quitLayout = layout{
	name:    "QuitEvent",
	accepts: QuitEvent{}.Accepts,
}

func (QuitEvent) Accepts(t Type) bool {
	return t == Quit
}

func (qe QuitEvent) Type() Type              { return Event(qe).Type() }
func (qe *QuitEvent) SetType(t Type) error   { return setType((*Event)(qe), t, &quitLayout) }
func (qe QuitEvent) Timestamp() uint64       { return Event(qe).Timestamp() }
func (qe *QuitEvent) SetTimestamp(ns uint64) { (*Event)(qe).SetTimestamp(ns) }
func (qe QuitEvent) String() string          { return quitLayout.describe((*Event)(&qe)) }

// Renderer event structure (event.render.*)
type RenderEvent Event

var renderLayout = layout{
	name:    "RenderEvent",
	accepts: RenderEvent{}.Accepts,
	fields: []field{
		{name: "WindowID", off: 16, kind: kindU32},
	},
}

func (RenderEvent) Accepts(t Type) bool {
	return t >= RenderTargetsReset && t <= RenderDeviceLost
}

func (re RenderEvent) Type() Type              { return Event(re).Type() }
func (re *RenderEvent) SetType(t Type) error   { return setType((*Event)(re), t, &renderLayout) }
func (re RenderEvent) Timestamp() uint64       { return Event(re).Timestamp() }
func (re *RenderEvent) SetTimestamp(ns uint64) { (*Event)(re).SetTimestamp(ns) }
func (re RenderEvent) String() string          { return renderLayout.describe((*Event)(&re)) }
func (re RenderEvent) WindowID() uint32        { return hostByteOrder.Uint32(re[16:20]) }
func (re *RenderEvent) SetWindowID(id uint32)  { hostByteOrder.PutUint32(re[16:20], id) }
