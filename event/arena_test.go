package event

import (
	"testing"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaStrings(t *testing.T) {
	a := &Arena{}
	p := a.CString("héllo")
	assert.Equal(t, "héllo", GoString(p))
	assert.Equal(t, "", GoString(a.CString("")))
	assert.Equal(t, "", GoString(0))

	list := a.CStrings([]string{"one", "two", "three"})
	assert.Equal(t, []string{"one", "two", "three"}, GoStrings(list, 3))
	assert.Equal(t, []string{"one"}, GoStrings(list, 1))
	assert.Nil(t, GoStrings(list, 0))
	assert.Equal(t, uintptr(0), a.CStrings(nil))
	assert.Equal(t, 6, a.Len())

	a.Reset()
	assert.Equal(t, 0, a.Len())
}

func TestTextViews(t *testing.T) {
	a := &Arena{}

	ti, err := Make[TextInputEvent](TextInput, 0)
	require.NoError(t, err)
	assert.Equal(t, "", ti.Text())
	ti.SetTextPtr(a.CString("typed"))
	assert.Equal(t, "typed", ti.Text())

	te, err := Make[TextEditingEvent](TextEditing, 0)
	require.NoError(t, err)
	te.SetTextPtr(a.CString("compose"))
	te.SetStart(1)
	te.SetLength(3)
	assert.Equal(t, "compose", te.Text())
	assert.Equal(t, int32(3), te.Length())

	tc, err := Make[TextEditingCandidatesEvent](TextEditingCandidates, 0)
	require.NoError(t, err)
	tc.SetCandidatesPtr(a.CStrings([]string{"a", "b"}))
	tc.SetNumCandidates(2)
	tc.SetSelectedCandidate(1)
	assert.Equal(t, []string{"a", "b"}, tc.Candidates())

	de, err := Make[DropEvent](DropFile, 0)
	require.NoError(t, err)
	assert.Equal(t, "", de.Source())
	de.SetDataPtr(a.CString("/tmp/file.txt"))
	assert.Equal(t, "/tmp/file.txt", de.Data())

	e := Widen(de)
	assert.Contains(t, Describe(&e), `source=<nil> data="/tmp/file.txt"`)
}

func TestTextSettersUnsupported(t *testing.T) {
	var ti TextInputEvent
	var te TextEditingEvent
	var tc TextEditingCandidatesEvent
	var de DropEvent
	var ce ClipboardEvent

	for _, err := range []error{
		ti.SetText("x"),
		te.SetText("x"),
		tc.SetCandidates([]string{"x"}),
		de.SetSource("x"),
		de.SetData("x"),
		ce.SetMimeTypes([]string{"text/plain"}),
	} {
		assert.True(t, errors.Is(err, ErrUnsupportedMutation), "%v", err)
	}
	assert.Equal(t, uintptr(0), ti.TextPtr())
}

func TestArenaReleasedAddress(t *testing.T) {
	a := &Arena{}
	p := a.CString("gone")
	list := a.CStrings([]string{"x"})
	a.Reset()
	assert.Equal(t, "", GoString(p))
	assert.Nil(t, GoStrings(list, 1))

	// addresses no arena handed out never dereference
	var local [8]byte
	assert.Equal(t, "", GoString(uintptr(unsafe.Pointer(&local[0]))))
	assert.Equal(t, "", GoString(0x1234))
	assert.Nil(t, GoStrings(0x1234, 3))
}

func TestArenaCountClamped(t *testing.T) {
	a := &Arena{}
	defer a.Reset()

	cb, err := Make[ClipboardEvent](ClipboardUpdate, 0)
	require.NoError(t, err)
	cb.SetMimeTypesPtr(a.CStrings([]string{"text/plain"}))
	cb.SetNumMimeTypes(4000)
	assert.Equal(t, []string{"text/plain"}, cb.MimeTypes())

	e := Widen(cb)
	assert.Contains(t, Describe(&e), `mime_types=["text/plain"]`)
}

func TestArenaEmbedded(t *testing.T) {
	var holder struct {
		n   int
		mem Arena
	}
	p := holder.mem.CString("inner")
	assert.Equal(t, "inner", GoString(p))
	holder.mem.Reset()
	assert.Equal(t, 0, holder.mem.Len())
}
