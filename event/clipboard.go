package event

// Clipboard event structure (event.clipboard.*)
type ClipboardEvent Event

var clipboardLayout = layout{
	name:    "ClipboardEvent",
	accepts: ClipboardEvent{}.Accepts,
	fields: []field{
		{name: "Owner", off: 16, kind: kindBool},
		{name: "NumMimeTypes", off: 20, kind: kindI32},
		{name: "MimeTypes", off: 24, kind: kindTextList, n: 20},
	},
}

func (ClipboardEvent) Accepts(t Type) bool {
	return t == ClipboardUpdate
}

func (ce ClipboardEvent) Type() Type              { return Event(ce).Type() }
func (ce *ClipboardEvent) SetType(t Type) error   { return setType((*Event)(ce), t, &clipboardLayout) }
func (ce ClipboardEvent) Timestamp() uint64       { return Event(ce).Timestamp() }
func (ce *ClipboardEvent) SetTimestamp(ns uint64) { (*Event)(ce).SetTimestamp(ns) }
func (ce ClipboardEvent) String() string          { return clipboardLayout.describe((*Event)(&ce)) }

// Owner is true if the application owns the clipboard contents.
func (ce ClipboardEvent) Owner() bool {
	return getBool(ce[16])
}

func (ce *ClipboardEvent) SetOwner(o bool) {
	putBool(&ce[16], o)
}

func (ce ClipboardEvent) NumMimeTypes() int32 {
	return int32(hostByteOrder.Uint32(ce[20:24]))
}

func (ce *ClipboardEvent) SetNumMimeTypes(n int32) {
	hostByteOrder.PutUint32(ce[20:24], uint32(n))
}

func (ce ClipboardEvent) MimeTypesPtr() uintptr {
	return getPtr(ce[24:32])
}

func (ce *ClipboardEvent) SetMimeTypesPtr(p uintptr) {
	putPtr(ce[24:32], p)
}

// MimeTypes decodes the offered mime types. Only valid until the next poll.
func (ce ClipboardEvent) MimeTypes() []string {
	return GoStrings(ce.MimeTypesPtr(), int(ce.NumMimeTypes()))
}

func (ce *ClipboardEvent) SetMimeTypes([]string) error {
	return unsupportedMutation("ClipboardEvent", "MimeTypes")
}
