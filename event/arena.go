package event

import (
	"runtime"
	"sync"
	"unsafe"
)

// blocks maps the address of every live arena allocation to its memory.
// Decoding goes through this table, so an address is never turned back into
// a pointer and an unknown or released address decodes as empty.
var blocks = struct {
	sync.RWMutex
	strs  map[uintptr][]byte
	lists map[uintptr][]uintptr
}{
	strs:  make(map[uintptr][]byte),
	lists: make(map[uintptr][]uintptr),
}

// Arena owns NUL-terminated copies of strings whose addresses are stored in
// event records. The addresses stay valid until Reset, or until the arena is
// collected. The zero value is ready to use.
type Arena struct {
	mu   sync.Mutex
	live *allocs
}

// allocs lists the addresses one arena registered in blocks.
type allocs struct {
	strs  []uintptr
	lists []uintptr
}

func (l *allocs) release() {
	blocks.Lock()
	for _, p := range l.strs {
		delete(blocks.strs, p)
	}
	for _, p := range l.lists {
		delete(blocks.lists, p)
	}
	blocks.Unlock()
}

// owned returns the current allocation list; a.mu must be held.
func (a *Arena) owned() *allocs {
	if a.live == nil {
		a.live = &allocs{}
		runtime.SetFinalizer(a.live, (*allocs).release)
	}
	return a.live
}

// CString copies s into the arena and returns the address of the copy.
func (a *Arena) CString(s string) uintptr {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	p := uintptr(unsafe.Pointer(&buf[0]))

	blocks.Lock()
	blocks.strs[p] = buf
	blocks.Unlock()

	a.mu.Lock()
	l := a.owned()
	l.strs = append(l.strs, p)
	a.mu.Unlock()
	return p
}

// CStrings copies ss into the arena and returns the address of an array of
// string pointers, or 0 for an empty list.
func (a *Arena) CStrings(ss []string) uintptr {
	if len(ss) == 0 {
		return 0
	}
	list := make([]uintptr, len(ss))
	for i, s := range ss {
		list[i] = a.CString(s)
	}
	p := uintptr(unsafe.Pointer(&list[0]))

	blocks.Lock()
	blocks.lists[p] = list
	blocks.Unlock()

	a.mu.Lock()
	l := a.owned()
	l.lists = append(l.lists, p)
	a.mu.Unlock()
	return p
}

// Len returns the number of live allocations.
func (a *Arena) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.live == nil {
		return 0
	}
	return len(a.live.strs) + len(a.live.lists)
}

// Reset drops every allocation. Records still pointing into the arena decode
// as empty afterwards.
func (a *Arena) Reset() {
	a.mu.Lock()
	l := a.live
	a.live = nil
	a.mu.Unlock()
	if l != nil {
		runtime.SetFinalizer(l, nil)
		l.release()
	}
}

// GoString decodes the NUL-terminated UTF-8 string at p. The memory is
// borrowed; the result is a copy. Addresses not owned by a live arena decode
// as "".
func GoString(p uintptr) string {
	if p == 0 {
		return ""
	}
	blocks.RLock()
	buf, ok := blocks.strs[p]
	blocks.RUnlock()
	if !ok {
		return ""
	}
	return string(buf[:len(buf)-1])
}

// GoStrings decodes an array of n string pointers at p. A count larger than
// the array is clamped to it.
func GoStrings(p uintptr, n int) []string {
	if p == 0 || n <= 0 {
		return nil
	}
	blocks.RLock()
	list, ok := blocks.lists[p]
	blocks.RUnlock()
	if !ok {
		return nil
	}
	if n > len(list) {
		n = len(list)
	}
	out := make([]string, n)
	for i, sp := range list[:n] {
		out[i] = GoString(sp)
	}
	return out
}
