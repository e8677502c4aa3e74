package event

import (
	"runtime"
	"sync"

	"github.com/elliotmr/gdl3/logging"
	"github.com/pkg/errors"
)

// shared boxes one Go value. Every event carrying the handle of a shared
// cell observes the same value.
type shared struct {
	mu    sync.Mutex
	value interface{}
}

func (s *shared) get() interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

func (s *shared) set(v interface{}) {
	s.mu.Lock()
	s.value = v
	s.mu.Unlock()
}

// handleTable maps the opaque tokens stored in user event slots to shared
// cells. Tokens are never reused, so a stale token cannot resolve to a cell
// allocated later.
type handleTable struct {
	mu    sync.Mutex
	next  uintptr
	cells map[uintptr]*shared
}

var handles = &handleTable{cells: make(map[uintptr]*shared)}

func (h *handleTable) alloc() uintptr {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.next++
	h.cells[h.next] = &shared{}
	return h.next
}

func (h *handleTable) free(handle uintptr) {
	h.mu.Lock()
	delete(h.cells, handle)
	h.mu.Unlock()
}

func (h *handleTable) lookup(handle uintptr) (*shared, bool) {
	if handle == 0 {
		return nil, false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.cells[handle]
	return s, ok
}

func (h *handleTable) len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.cells)
}

// UserSlots is the number of data slots in a user event.
const UserSlots = 2

// UserData attaches Go values to user events. It owns two handles; events
// made with NewEvent carry them in their Data1 and Data2 slots. Once the
// owner is disposed, or collected, those events can no longer reach the
// values.
type UserData struct {
	mu      sync.Mutex
	handles [UserSlots]uintptr
}

func NewUserData() *UserData {
	u := &UserData{}
	for i := range u.handles {
		u.handles[i] = handles.alloc()
	}
	runtime.SetFinalizer(u, (*UserData).finalize)
	return u
}

func (u *UserData) disposed() error {
	return errors.Wrapf(ErrDisposed, "%T", u)
}

func checkSlot(n int) error {
	if n < 0 || n >= UserSlots {
		return errors.Errorf("user event slot %d out of range [0, %d)", n, UserSlots)
	}
	return nil
}

func (u *UserData) handle(n int) uintptr {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.handles[n]
}

func (u *UserData) cell(n int) (*shared, error) {
	if err := checkSlot(n); err != nil {
		return nil, err
	}
	s, ok := handles.lookup(u.handle(n))
	if !ok {
		return nil, u.disposed()
	}
	return s, nil
}

// Slot returns the value held in slot n.
func (u *UserData) Slot(n int) (interface{}, error) {
	s, err := u.cell(n)
	if err != nil {
		return nil, err
	}
	return s.get(), nil
}

// SetSlot replaces the value held in slot n. Every event made by u sees the
// new value.
func (u *UserData) SetSlot(n int, v interface{}) error {
	s, err := u.cell(n)
	if err != nil {
		return err
	}
	s.set(v)
	return nil
}

// NewEvent builds a user event whose data slots carry u's handles.
func (u *UserData) NewEvent(t Type, timestamp uint64, windowID uint32, code int32) (UserEvent, error) {
	ue, err := Make[UserEvent](t, timestamp)
	if err != nil {
		return ue, err
	}
	u.mu.Lock()
	h1, h2 := u.handles[0], u.handles[1]
	u.mu.Unlock()
	if h1 == 0 {
		return ue, u.disposed()
	}
	ue.SetWindowID(windowID)
	ue.SetCode(code)
	ue.SetData1(h1)
	ue.SetData2(h2)
	return ue, nil
}

// TryGet resolves slot n of ev. It reports false if the slot is empty,
// does not hold u's handle, or u has been disposed.
func (u *UserData) TryGet(ev *UserEvent, n int) (interface{}, bool) {
	s, err := u.resolve(ev, n)
	if err != nil {
		return nil, false
	}
	return s.get(), true
}

func (u *UserData) resolve(ev *UserEvent, n int) (*shared, error) {
	if err := checkSlot(n); err != nil {
		return nil, err
	}
	h := u.handle(n)
	if h == 0 {
		return nil, u.disposed()
	}
	if ev.data(n) != h {
		return nil, errors.Wrapf(ErrUnboundSlot,
			"data%d of %s: build the event with UserData.NewEvent and leave its data slots untouched", n+1, ev.Type())
	}
	s, ok := handles.lookup(h)
	if !ok {
		return nil, u.disposed()
	}
	return s, nil
}

func (u *UserData) get(ev *UserEvent, n int) (interface{}, error) {
	s, err := u.resolve(ev, n)
	if err != nil {
		return nil, err
	}
	return s.get(), nil
}

func (u *UserData) set(ev *UserEvent, n int, v interface{}) error {
	s, err := u.resolve(ev, n)
	if err != nil {
		return err
	}
	s.set(v)
	return nil
}

// Data1 returns the value behind ev's first data slot.
func (u *UserData) Data1(ev *UserEvent) (interface{}, error) { return u.get(ev, 0) }

// Data2 returns the value behind ev's second data slot.
func (u *UserData) Data2(ev *UserEvent) (interface{}, error) { return u.get(ev, 1) }

func (u *UserData) SetData1(ev *UserEvent, v interface{}) error { return u.set(ev, 0, v) }
func (u *UserData) SetData2(ev *UserEvent, v interface{}) error { return u.set(ev, 1, v) }

// Disposed reports whether u has released its handles.
func (u *UserData) Disposed() bool {
	return u.handle(0) == 0
}

// Dispose releases u's handles. It is safe to call more than once.
func (u *UserData) Dispose() {
	u.release()
	runtime.SetFinalizer(u, nil)
}

func (u *UserData) release() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	released := false
	for i, h := range u.handles {
		if h != 0 {
			handles.free(h)
			u.handles[i] = 0
			released = true
		}
	}
	return released
}

func (u *UserData) finalize() {
	if u.release() {
		logging.Default().Debug().Msg("user data collected without Dispose")
	}
}
