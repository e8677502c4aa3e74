package event

import (
	"fmt"
	"math"
	"strings"
	"unsafe"

	"github.com/pkg/errors"
)

// View is implemented by every typed interpretation of an event record. A
// view has exactly the size of Event, so a record can be reinterpreted in
// place.
type View interface {
	~[Size]byte
	Accepts(Type) bool
}

// As views e as T without copying. It fails with ErrInvalidVariant when T
// does not accept the record's type.
func As[T View](e *Event) (*T, error) {
	var v T
	if !v.Accepts(e.Type()) {
		return nil, invalidVariant(e.Type(), fmt.Sprintf("%T", v))
	}
	return (*T)(unsafe.Pointer(e)), nil
}

// Unchecked views e as T without consulting Accepts. Reading a field of the
// wrong variant yields whatever bytes occupy that offset.
func Unchecked[T View](e *Event) *T {
	return (*T)(unsafe.Pointer(e))
}

// Is reports whether e can be viewed as T.
func Is[T View](e *Event) bool {
	var v T
	return v.Accepts(e.Type())
}

// Widen copies a view back into a generic record.
func Widen[T View](v T) Event {
	return Event(v)
}

// Make returns a zeroed view of type t.
func Make[T View](t Type, timestamp uint64) (T, error) {
	var v T
	if !v.Accepts(t) {
		return v, invalidVariant(t, fmt.Sprintf("%T", v))
	}
	e := (*Event)(unsafe.Pointer(&v))
	e.SetType(t)
	e.SetTimestamp(timestamp)
	return v, nil
}

func setType(e *Event, t Type, l *layout) error {
	if !l.accepts(t) {
		return invalidVariant(t, l.name)
	}
	e.SetType(t)
	return nil
}

type kind uint8

const (
	kindU8 kind = iota
	kindBool
	kindI16
	kindU16
	kindI32
	kindU32
	kindU64
	kindF32
	kindF32Array
	kindPtr
	kindText
	kindTextList
)

// field describes one native member of a view. For kindF32Array n is the
// element count, for kindTextList it is the offset of the int32 count.
type field struct {
	name string
	off  int
	kind kind
	n    int
}

type layout struct {
	name    string
	accepts func(Type) bool
	fields  []field
}

func (f field) get(e *Event) interface{} {
	b := e[f.off:]
	switch f.kind {
	case kindU8:
		return b[0]
	case kindBool:
		return getBool(b[0])
	case kindI16:
		return int16(hostByteOrder.Uint16(b))
	case kindU16:
		return hostByteOrder.Uint16(b)
	case kindI32:
		return int32(hostByteOrder.Uint32(b))
	case kindU32:
		return hostByteOrder.Uint32(b)
	case kindU64:
		return hostByteOrder.Uint64(b)
	case kindF32:
		return getF32(b)
	case kindF32Array:
		out := make([]float32, f.n)
		for i := range out {
			out[i] = getF32(b[4*i:])
		}
		return out
	case kindPtr:
		return getPtr(b)
	case kindText:
		p := getPtr(b)
		if p == 0 {
			return nil
		}
		return GoString(p)
	case kindTextList:
		p := getPtr(b)
		if p == 0 {
			return nil
		}
		return GoStrings(p, int(int32(hostByteOrder.Uint32(e[f.n:]))))
	}
	return nil
}

// set stores v, as decoded from a fixture, into the field. Text is copied
// into a.
func (f field) set(e *Event, v interface{}, a *Arena) error {
	b := e[f.off:]
	switch f.kind {
	case kindBool:
		bv, ok := v.(bool)
		if !ok {
			return errors.Errorf("%s: expected bool, got %T", f.name, v)
		}
		putBool(&b[0], bv)
	case kindU8:
		i, err := toInt(f.name, v, 0, math.MaxUint8)
		if err != nil {
			return err
		}
		b[0] = uint8(i)
	case kindI16:
		i, err := toInt(f.name, v, math.MinInt16, math.MaxInt16)
		if err != nil {
			return err
		}
		hostByteOrder.PutUint16(b, uint16(int16(i)))
	case kindU16:
		i, err := toInt(f.name, v, 0, math.MaxUint16)
		if err != nil {
			return err
		}
		hostByteOrder.PutUint16(b, uint16(i))
	case kindI32:
		i, err := toInt(f.name, v, math.MinInt32, math.MaxInt32)
		if err != nil {
			return err
		}
		hostByteOrder.PutUint32(b, uint32(int32(i)))
	case kindU32:
		i, err := toInt(f.name, v, 0, math.MaxUint32)
		if err != nil {
			return err
		}
		hostByteOrder.PutUint32(b, uint32(i))
	case kindU64, kindPtr:
		u, err := toUint64(f.name, v)
		if err != nil {
			return err
		}
		hostByteOrder.PutUint64(b, u)
	case kindF32:
		fv, err := toFloat(f.name, v)
		if err != nil {
			return err
		}
		putF32(b, float32(fv))
	case kindF32Array:
		list, ok := v.([]interface{})
		if !ok || len(list) > f.n {
			return errors.Errorf("%s: expected a list of at most %d numbers", f.name, f.n)
		}
		for i, item := range list {
			fv, err := toFloat(f.name, item)
			if err != nil {
				return err
			}
			putF32(b[4*i:], float32(fv))
		}
	case kindText:
		s, ok := v.(string)
		if !ok {
			return errors.Errorf("%s: expected string, got %T", f.name, v)
		}
		putPtr(b, a.CString(s))
	case kindTextList:
		list, ok := v.([]interface{})
		if !ok {
			return errors.Errorf("%s: expected a list of strings, got %T", f.name, v)
		}
		ss := make([]string, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return errors.Errorf("%s[%d]: expected string, got %T", f.name, i, item)
			}
			ss[i] = s
		}
		putPtr(b, a.CStrings(ss))
		hostByteOrder.PutUint32(e[f.n:], uint32(int32(len(ss))))
	default:
		return errors.Errorf("%s: unsupported field kind %d", f.name, f.kind)
	}
	return nil
}

func toInt(name string, v interface{}, min, max int64) (int64, error) {
	var i int64
	switch n := v.(type) {
	case int:
		i = int64(n)
	case int64:
		i = n
	case uint64:
		if n > math.MaxInt64 {
			return 0, errors.Errorf("%s: %d out of range", name, n)
		}
		i = int64(n)
	case float64:
		if n != math.Trunc(n) {
			return 0, errors.Errorf("%s: %v is not an integer", name, n)
		}
		i = int64(n)
	default:
		return 0, errors.Errorf("%s: expected integer, got %T", name, v)
	}
	if i < min || i > max {
		return 0, errors.Errorf("%s: %d out of range [%d, %d]", name, i, min, max)
	}
	return i, nil
}

func toUint64(name string, v interface{}) (uint64, error) {
	switch n := v.(type) {
	case uint64:
		return n, nil
	case int, int64, float64:
		i, err := toInt(name, v, 0, math.MaxInt64)
		return uint64(i), err
	}
	return 0, errors.Errorf("%s: expected unsigned integer, got %T", name, v)
}

func toFloat(name string, v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	}
	return 0, errors.Errorf("%s: expected number, got %T", name, v)
}

func normalizeFieldName(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", ""))
}

func (l *layout) field(name string) (field, bool) {
	name = normalizeFieldName(name)
	for _, f := range l.fields {
		if normalizeFieldName(f.name) == name {
			return f, true
		}
	}
	return field{}, false
}
