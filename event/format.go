package event

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/serenize/snaker"
)

// layouts is scanned in order by Describe. Accepted type sets are pairwise
// disjoint, so the order only matters for speed.
var layouts = []*layout{
	&quitLayout,
	&displayLayout,
	&windowLayout,
	&keyboardDeviceLayout,
	&keyboardLayout,
	&textEditingLayout,
	&textEditingCandidatesLayout,
	&textInputLayout,
	&mouseDeviceLayout,
	&mouseMotionLayout,
	&mouseButtonLayout,
	&mouseWheelLayout,
	&joyAxisLayout,
	&joyBallLayout,
	&joyHatLayout,
	&joyButtonLayout,
	&joyDeviceLayout,
	&joyBatteryLayout,
	&gamepadAxisLayout,
	&gamepadButtonLayout,
	&gamepadDeviceLayout,
	&gamepadTouchpadLayout,
	&gamepadSensorLayout,
	&touchFingerLayout,
	&pinchFingerLayout,
	&clipboardLayout,
	&dropLayout,
	&audioDeviceLayout,
	&sensorLayout,
	&penProximityLayout,
	&penTouchLayout,
	&penButtonLayout,
	&penMotionLayout,
	&penAxisLayout,
	&cameraDeviceLayout,
	&renderLayout,
	&userLayout,
}

var commonLayout = layout{
	name:    "CommonEvent",
	accepts: func(Type) bool { return true },
}

func layoutFor(t Type) *layout {
	for _, l := range layouts {
		if l.accepts(t) {
			return l
		}
	}
	return nil
}

// Field is a decoded member of an event record.
type Field struct {
	Name  string
	Value interface{}
}

// Describe formats e using the view that accepts its type, or only the
// common header when no view does. Text fields are decoded, so e must still
// be valid.
func Describe(e *Event) string {
	l := layoutFor(e.Type())
	if l == nil {
		l = &commonLayout
	}
	return l.describe(e)
}

// ViewName returns the name of the view accepting t, or "CommonEvent".
func ViewName(t Type) string {
	if l := layoutFor(t); l != nil {
		return l.name
	}
	return commonLayout.name
}

// Fields decodes the variant specific members of e.
func Fields(e *Event) []Field {
	l := layoutFor(e.Type())
	if l == nil {
		return nil
	}
	out := make([]Field, len(l.fields))
	for i, f := range l.fields {
		out[i] = Field{Name: snaker.CamelToSnake(f.name), Value: f.get(e)}
	}
	return out
}

// SetField writes a named member of e as decoded from a fixture. Names are
// matched ignoring case and underscores; text is copied into a.
func SetField(e *Event, name string, v interface{}, a *Arena) error {
	l := layoutFor(e.Type())
	if l == nil {
		return errors.Errorf("%s has no fields", e.Type())
	}
	f, ok := l.field(name)
	if !ok {
		return errors.Errorf("%s has no field %q", l.name, name)
	}
	if list, ok := l.listCounting(f); ok {
		return errors.Errorf("%s.%s is derived from %s", l.name, f.name, list.name)
	}
	if a == nil && (f.kind == kindText || f.kind == kindTextList) {
		return errors.Errorf("%s.%s needs an arena", l.name, f.name)
	}
	return errors.Wrapf(f.set(e, v, a), "%s", l.name)
}

// listCounting returns the text list whose element count f holds.
func (l *layout) listCounting(f field) (field, bool) {
	for _, list := range l.fields {
		if list.kind == kindTextList && list.n == f.off {
			return list, true
		}
	}
	return field{}, false
}

func (l *layout) describe(e *Event) string {
	var sb strings.Builder
	sb.WriteString(l.name)
	fmt.Fprintf(&sb, "{type=%s timestamp=%d", e.Type(), e.Timestamp())
	for _, f := range l.fields {
		sb.WriteByte(' ')
		sb.WriteString(snaker.CamelToSnake(f.name))
		sb.WriteByte('=')
		sb.WriteString(formatValue(f.get(e)))
	}
	sb.WriteByte('}')
	return sb.String()
}

func formatValue(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return fmt.Sprintf("%q", x)
	case []string:
		return fmt.Sprintf("%q", x)
	case uintptr:
		return fmt.Sprintf("0x%x", x)
	case float32:
		return fmt.Sprintf("%g", x)
	default:
		return fmt.Sprint(x)
	}
}
