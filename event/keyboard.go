package event

const KeyReleased = 0
const KeyPressed = 1

// Keyboard hotplug event data (event.kdevice.*)
type KeyboardDeviceEvent Event

var keyboardDeviceLayout = layout{
	name:    "KeyboardDeviceEvent",
	accepts: KeyboardDeviceEvent{}.Accepts,
	fields: []field{
		{name: "Which", off: 16, kind: kindU32},
	},
}

func (KeyboardDeviceEvent) Accepts(t Type) bool {
	return t == KeyboardAdded || t == KeyboardRemoved
}

func (kd KeyboardDeviceEvent) Type() Type              { return Event(kd).Type() }
func (kd *KeyboardDeviceEvent) SetType(t Type) error   { return setType((*Event)(kd), t, &keyboardDeviceLayout) }
func (kd KeyboardDeviceEvent) Timestamp() uint64       { return Event(kd).Timestamp() }
func (kd *KeyboardDeviceEvent) SetTimestamp(ns uint64) { (*Event)(kd).SetTimestamp(ns) }
func (kd KeyboardDeviceEvent) String() string          { return keyboardDeviceLayout.describe((*Event)(&kd)) }
func (kd KeyboardDeviceEvent) Which() uint32           { return hostByteOrder.Uint32(kd[16:20]) }
func (kd *KeyboardDeviceEvent) SetWhich(id uint32)     { hostByteOrder.PutUint32(kd[16:20], id) }

// Keyboard button event structure (event.key.*)
type KeyboardEvent Event

var keyboardLayout = layout{
	name:    "KeyboardEvent",
	accepts: KeyboardEvent{}.Accepts,
	fields: []field{
		{name: "WindowID", off: 16, kind: kindU32},
		{name: "Which", off: 20, kind: kindU32},
		{name: "Scancode", off: 24, kind: kindU32},
		{name: "Key", off: 28, kind: kindU32},
		{name: "Mod", off: 32, kind: kindU16},
		{name: "Raw", off: 34, kind: kindU16},
		{name: "Down", off: 36, kind: kindBool},
		{name: "Repeat", off: 37, kind: kindBool},
	},
}

func (KeyboardEvent) Accepts(t Type) bool {
	return t == KeyDown || t == KeyUp
}

func (ke KeyboardEvent) Type() Type              { return Event(ke).Type() }
func (ke *KeyboardEvent) SetType(t Type) error   { return setType((*Event)(ke), t, &keyboardLayout) }
func (ke KeyboardEvent) Timestamp() uint64       { return Event(ke).Timestamp() }
func (ke *KeyboardEvent) SetTimestamp(ns uint64) { (*Event)(ke).SetTimestamp(ns) }
func (ke KeyboardEvent) String() string          { return keyboardLayout.describe((*Event)(&ke)) }

func (ke KeyboardEvent) WindowID() uint32 {
	return hostByteOrder.Uint32(ke[16:20])
}

func (ke *KeyboardEvent) SetWindowID(id uint32) {
	hostByteOrder.PutUint32(ke[16:20], id)
}

func (ke KeyboardEvent) Which() uint32 {
	return hostByteOrder.Uint32(ke[20:24])
}

func (ke *KeyboardEvent) SetWhich(id uint32) {
	hostByteOrder.PutUint32(ke[20:24], id)
}

func (ke KeyboardEvent) ScanCode() uint32 {
	return hostByteOrder.Uint32(ke[24:28])
}

func (ke *KeyboardEvent) SetScanCode(sc uint32) {
	hostByteOrder.PutUint32(ke[24:28], sc)
}

func (ke KeyboardEvent) KeyCode() uint32 {
	return hostByteOrder.Uint32(ke[28:32])
}

func (ke *KeyboardEvent) SetKeyCode(k uint32) {
	hostByteOrder.PutUint32(ke[28:32], k)
}

func (ke KeyboardEvent) Mod() uint16 {
	return hostByteOrder.Uint16(ke[32:34])
}

func (ke *KeyboardEvent) SetMod(m uint16) {
	hostByteOrder.PutUint16(ke[32:34], m)
}

// Raw is the platform dependent scancode.
func (ke KeyboardEvent) Raw() uint16 {
	return hostByteOrder.Uint16(ke[34:36])
}

func (ke *KeyboardEvent) SetRaw(r uint16) {
	hostByteOrder.PutUint16(ke[34:36], r)
}

func (ke KeyboardEvent) Down() bool {
	return getBool(ke[36])
}

func (ke *KeyboardEvent) SetDown(down bool) {
	putBool(&ke[36], down)
}

// State returns KeyPressed or KeyReleased.
func (ke KeyboardEvent) State() uint8 {
	return ke[36]
}

func (ke KeyboardEvent) Repeat() bool {
	return getBool(ke[37])
}

func (ke *KeyboardEvent) SetRepeat(repeat bool) {
	putBool(&ke[37], repeat)
}

// Keyboard text editing event structure (event.edit.*)
type TextEditingEvent Event

var textEditingLayout = layout{
	name:    "TextEditingEvent",
	accepts: TextEditingEvent{}.Accepts,
	fields: []field{
		{name: "WindowID", off: 16, kind: kindU32},
		{name: "Text", off: 24, kind: kindText},
		{name: "Start", off: 32, kind: kindI32},
		{name: "Length", off: 36, kind: kindI32},
	},
}

func (TextEditingEvent) Accepts(t Type) bool {
	return t == TextEditing
}

func (te TextEditingEvent) Type() Type              { return Event(te).Type() }
func (te *TextEditingEvent) SetType(t Type) error   { return setType((*Event)(te), t, &textEditingLayout) }
func (te TextEditingEvent) Timestamp() uint64       { return Event(te).Timestamp() }
func (te *TextEditingEvent) SetTimestamp(ns uint64) { (*Event)(te).SetTimestamp(ns) }
func (te TextEditingEvent) String() string          { return textEditingLayout.describe((*Event)(&te)) }
func (te TextEditingEvent) WindowID() uint32        { return hostByteOrder.Uint32(te[16:20]) }
func (te *TextEditingEvent) SetWindowID(id uint32)  { hostByteOrder.PutUint32(te[16:20], id) }
func (te TextEditingEvent) TextPtr() uintptr        { return getPtr(te[24:32]) }
func (te *TextEditingEvent) SetTextPtr(p uintptr)   { putPtr(te[24:32], p) }
func (te TextEditingEvent) Start() int32            { return int32(hostByteOrder.Uint32(te[32:36])) }
func (te *TextEditingEvent) SetStart(v int32)       { hostByteOrder.PutUint32(te[32:36], uint32(v)) }
func (te TextEditingEvent) Length() int32           { return int32(hostByteOrder.Uint32(te[36:40])) }
func (te *TextEditingEvent) SetLength(v int32)      { hostByteOrder.PutUint32(te[36:40], uint32(v)) }

// Text decodes the composition text. It is only valid until the next poll.
func (te TextEditingEvent) Text() string {
	return GoString(te.TextPtr())
}

func (te *TextEditingEvent) SetText(string) error {
	return unsupportedMutation("TextEditingEvent", "Text")
}

// Keyboard IME candidates event structure (event.edit_candidates.*)
type TextEditingCandidatesEvent Event

var textEditingCandidatesLayout = layout{
	name:    "TextEditingCandidatesEvent",
	accepts: TextEditingCandidatesEvent{}.Accepts,
	fields: []field{
		{name: "WindowID", off: 16, kind: kindU32},
		{name: "Candidates", off: 24, kind: kindTextList, n: 32},
		{name: "NumCandidates", off: 32, kind: kindI32},
		{name: "SelectedCandidate", off: 36, kind: kindI32},
		{name: "Horizontal", off: 40, kind: kindBool},
	},
}

func (TextEditingCandidatesEvent) Accepts(t Type) bool {
	return t == TextEditingCandidates
}

func (tc TextEditingCandidatesEvent) Type() Type { return Event(tc).Type() }
func (tc *TextEditingCandidatesEvent) SetType(t Type) error {
	return setType((*Event)(tc), t, &textEditingCandidatesLayout)
}
func (tc TextEditingCandidatesEvent) Timestamp() uint64       { return Event(tc).Timestamp() }
func (tc *TextEditingCandidatesEvent) SetTimestamp(ns uint64) { (*Event)(tc).SetTimestamp(ns) }
func (tc TextEditingCandidatesEvent) String() string {
	return textEditingCandidatesLayout.describe((*Event)(&tc))
}

func (tc TextEditingCandidatesEvent) WindowID() uint32       { return hostByteOrder.Uint32(tc[16:20]) }
func (tc *TextEditingCandidatesEvent) SetWindowID(id uint32) { hostByteOrder.PutUint32(tc[16:20], id) }
func (tc TextEditingCandidatesEvent) CandidatesPtr() uintptr { return getPtr(tc[24:32]) }
func (tc *TextEditingCandidatesEvent) SetCandidatesPtr(p uintptr) {
	putPtr(tc[24:32], p)
}

func (tc TextEditingCandidatesEvent) NumCandidates() int32 {
	return int32(hostByteOrder.Uint32(tc[32:36]))
}

func (tc *TextEditingCandidatesEvent) SetNumCandidates(n int32) {
	hostByteOrder.PutUint32(tc[32:36], uint32(n))
}

// SelectedCandidate is -1 when nothing is selected.
func (tc TextEditingCandidatesEvent) SelectedCandidate() int32 {
	return int32(hostByteOrder.Uint32(tc[36:40]))
}

func (tc *TextEditingCandidatesEvent) SetSelectedCandidate(i int32) {
	hostByteOrder.PutUint32(tc[36:40], uint32(i))
}

func (tc TextEditingCandidatesEvent) Horizontal() bool {
	return getBool(tc[40])
}

func (tc *TextEditingCandidatesEvent) SetHorizontal(h bool) {
	putBool(&tc[40], h)
}

// Candidates decodes the candidate list. It is only valid until the next poll.
func (tc TextEditingCandidatesEvent) Candidates() []string {
	return GoStrings(tc.CandidatesPtr(), int(tc.NumCandidates()))
}

func (tc *TextEditingCandidatesEvent) SetCandidates([]string) error {
	return unsupportedMutation("TextEditingCandidatesEvent", "Candidates")
}

// Keyboard text input event structure (event.text.*)
type TextInputEvent Event

var textInputLayout = layout{
	name:    "TextInputEvent",
	accepts: TextInputEvent{}.Accepts,
	fields: []field{
		{name: "WindowID", off: 16, kind: kindU32},
		{name: "Text", off: 24, kind: kindText},
	},
}

func (TextInputEvent) Accepts(t Type) bool {
	return t == TextInput
}

func (ti TextInputEvent) Type() Type              { return Event(ti).Type() }
func (ti *TextInputEvent) SetType(t Type) error   { return setType((*Event)(ti), t, &textInputLayout) }
func (ti TextInputEvent) Timestamp() uint64       { return Event(ti).Timestamp() }
func (ti *TextInputEvent) SetTimestamp(ns uint64) { (*Event)(ti).SetTimestamp(ns) }
func (ti TextInputEvent) String() string          { return textInputLayout.describe((*Event)(&ti)) }
func (ti TextInputEvent) WindowID() uint32        { return hostByteOrder.Uint32(ti[16:20]) }
func (ti *TextInputEvent) SetWindowID(id uint32)  { hostByteOrder.PutUint32(ti[16:20], id) }
func (ti TextInputEvent) TextPtr() uintptr        { return getPtr(ti[24:32]) }
func (ti *TextInputEvent) SetTextPtr(p uintptr)   { putPtr(ti[24:32], p) }

// Text decodes the input text. It is only valid until the next poll.
func (ti TextInputEvent) Text() string {
	return GoString(ti.TextPtr())
}

func (ti *TextInputEvent) SetText(string) error {
	return unsupportedMutation("TextInputEvent", "Text")
}
