package event

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/elliotmr/gdl3/logging"
	"github.com/elliotmr/gdl3/ticker"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const MaxQueued = 65535

type Action int

const (
	Add Action = iota
	Peek
	Get
)

// pollInterval is how long Wait sleeps between pumps of an empty queue.
const pollInterval = time.Millisecond

type Filter func(userdata interface{}, ev *Event) bool

// Pumper feeds events into a queue; Pump is called before every poll.
type Pumper interface {
	Pump(q *Queue)
}

type Watcher struct {
	Callback Filter
	Userdata interface{}
}

type entry struct {
	ev   Event
	mem  *Arena
	prev *entry
	next *entry
}

// Queue is a FIFO of event records. Text referenced by a record stays valid
// while the record is queued and until the next Get after it was returned.
type Queue struct {
	lock sync.Mutex

	active int32
	count  int32

	head *entry
	tail *entry
	free *entry

	maxEventsSeen int32

	// memory of the records handed out by the last Get
	polled []*Arena

	sources []Pumper

	wmu      sync.Mutex
	watchers []*Watcher

	ok     Filter
	okdata interface{}

	disabled [256][8]uint32

	log *zerolog.Logger
}

func NewQueue() *Queue {
	return &Queue{log: logging.Default()}
}

func (q *Queue) logger() *zerolog.Logger {
	if q.log == nil {
		return logging.Default()
	}
	return q.log
}

// SetLogger replaces the logger the queue reports drops to.
func (q *Queue) SetLogger(l *zerolog.Logger) {
	q.log = l
}

func (q *Queue) Start() error {
	atomic.StoreInt32(&q.active, 1)
	q.logger().Debug().Msg("event queue started")
	return nil
}

func (q *Queue) Active() bool {
	return atomic.LoadInt32(&q.active) == 1
}

func (q *Queue) Stop() {
	q.lock.Lock()
	defer q.lock.Unlock()

	atomic.StoreInt32(&q.active, 0)
	atomic.StoreInt32(&q.count, 0)
	q.maxEventsSeen = 0
	q.head = nil
	q.tail = nil
	q.free = nil
	q.polled = nil

	q.wmu.Lock()
	q.watchers = q.watchers[:0]
	q.wmu.Unlock()
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return int(atomic.LoadInt32(&q.count))
}

// MaxEventsSeen returns the high water mark of the queue length.
func (q *Queue) MaxEventsSeen() int {
	q.lock.Lock()
	defer q.lock.Unlock()
	return int(q.maxEventsSeen)
}

func (q *Queue) AddSource(p Pumper) {
	q.lock.Lock()
	q.sources = append(q.sources, p)
	q.lock.Unlock()
}

// add appends ev; q.lock must be held.
func (q *Queue) add(ev *Event, mem *Arena) error {
	if atomic.LoadInt32(&q.count) >= MaxQueued {
		return errors.Errorf("event queue is full (%d events)", MaxQueued)
	}

	var e *entry
	if q.free == nil {
		e = &entry{}
	} else {
		e = q.free
		q.free = q.free.next
	}
	e.ev = *ev
	e.mem = mem

	if q.tail != nil {
		q.tail.next = e
		e.prev = q.tail
		q.tail = e
		e.next = nil
	} else {
		if q.head != nil {
			panic("invalid queue state, tail exists without head")
		}
		q.head = e
		q.tail = e
		e.prev = nil
		e.next = nil
	}

	n := atomic.AddInt32(&q.count, 1)
	if n > q.maxEventsSeen {
		q.maxEventsSeen = n
	}
	return nil
}

// cut unlinks e and puts it on the free list; q.lock must be held.
func (q *Queue) cut(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	}
	if e == q.head {
		if e.prev != nil {
			panic("invalid event queue state, queue head is not beginning")
		}
		q.head = e.next
	}
	if e == q.tail {
		if e.next != nil {
			panic("invalid event queue state, queue tail is not the end")
		}
		q.tail = e.prev
	}
	e.mem = nil
	e.prev = nil
	e.next = q.free
	q.free = e
	atomic.AddInt32(&q.count, -1)
}

// Peep adds events to the queue, or peeks at or removes queued events with
// a type in [minType, maxType]. With a nil slice Peek and Get only count.
func (q *Queue) Peep(events []Event, action Action, minType, maxType Type) (int, error) {
	if !q.Active() {
		return 0, errors.New("the event queue is not active")
	}
	q.lock.Lock()
	defer q.lock.Unlock()
	return q.peep(events, action, minType, maxType, nil)
}

func (q *Queue) peep(events []Event, action Action, minType, maxType Type, mem *Arena) (int, error) {
	used := 0
	switch action {
	case Add:
		for i := range events {
			if err := q.add(&events[i], mem); err != nil {
				return used, errors.Wrap(err, "unable to add event")
			}
			used++
		}
	case Get:
		if events != nil {
			q.polled = q.polled[:0]
		}
		fallthrough
	case Peek:
		for e := q.head; e != nil && (events == nil || used < len(events)); {
			next := e.next
			t := e.ev.Type()
			if minType <= t && t <= maxType {
				if events != nil {
					events[used] = e.ev
					if action == Get {
						if e.mem != nil {
							q.polled = append(q.polled, e.mem)
						}
						q.cut(e)
					}
				}
				used++
			}
			e = next
		}
	default:
		return 0, errors.Errorf("invalid action type %d", action)
	}
	return used, nil
}

func (q *Queue) HasType(t Type) (bool, error) {
	return q.HasTypes(t, t)
}

func (q *Queue) HasTypes(minType, maxType Type) (bool, error) {
	cnt, err := q.Peep(nil, Peek, minType, maxType)
	return cnt > 0, errors.Wrap(err, "unable to peep")
}

func (q *Queue) FlushType(t Type) {
	q.FlushTypes(t, t)
}

func (q *Queue) FlushTypes(minType, maxType Type) {
	if !q.Active() {
		return
	}
	q.lock.Lock()
	defer q.lock.Unlock()

	for e := q.head; e != nil; {
		next := e.next
		if t := e.ev.Type(); minType <= t && t <= maxType {
			q.cut(e)
		}
		e = next
	}
}

func (q *Queue) Pump() {
	q.lock.Lock()
	sources := append([]Pumper(nil), q.sources...)
	q.lock.Unlock()
	for _, p := range sources {
		p.Pump(q)
	}
}

// Poll pumps the sources and removes the oldest event. It reports false if
// the queue is empty or stopped.
func (q *Queue) Poll() (Event, bool) {
	ev, err := q.WaitTimeout(0)
	return ev, err == nil
}

// Wait blocks until an event is available.
func (q *Queue) Wait() (Event, error) {
	return q.WaitContext(context.Background())
}

// WaitTimeout waits up to timeout for an event. It returns
// WaitTimeoutExceeded when none arrived.
func (q *Queue) WaitTimeout(timeout time.Duration) (Event, error) {
	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	ev, err := q.wait(ctx, timeout == 0)
	if errors.Is(err, context.DeadlineExceeded) {
		return ev, WaitTimeoutExceeded
	}
	return ev, err
}

// WaitContext blocks until an event is available or ctx is done.
func (q *Queue) WaitContext(ctx context.Context) (Event, error) {
	return q.wait(ctx, false)
}

func (q *Queue) wait(ctx context.Context, once bool) (Event, error) {
	buf := make([]Event, 1)
	for {
		q.Pump()
		n, err := q.Peep(buf, Get, First, Last)
		switch {
		case err != nil:
			return Event{}, errors.Wrap(err, "queue peep error")
		case n == 1:
			return buf[0], nil
		case once:
			return Event{}, WaitTimeoutExceeded
		}
		select {
		case <-ctx.Done():
			return Event{}, ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}

// Push runs the filter and the watchers on ev and queues it. The timestamp
// is set if it is zero. It reports false if the event was filtered out or
// its type is disabled.
func (q *Queue) Push(ev Event) (bool, error) {
	return q.push(&ev, nil)
}

// PushText is Push for events whose pointer fields reference mem. The queue
// keeps mem alive until the event has been polled and the next poll happens.
func (q *Queue) PushText(ev Event, mem *Arena) (bool, error) {
	return q.push(&ev, mem)
}

func (q *Queue) push(ev *Event, mem *Arena) (bool, error) {
	if ev.Timestamp() == 0 {
		ev.SetTimestamp(ticker.GetAsNS())
	}
	if !q.Enabled(ev.Type()) {
		return false, nil
	}

	q.lock.Lock()
	ok, okdata := q.ok, q.okdata
	q.lock.Unlock()
	if ok != nil && !ok(okdata, ev) {
		q.logger().Debug().Stringer("type", ev.Type()).Msg("event filtered")
		return false, nil
	}

	q.wmu.Lock()
	for _, w := range q.watchers {
		w.Callback(w.Userdata, ev)
	}
	q.wmu.Unlock()

	if !q.Active() {
		return false, errors.New("the event queue is not active")
	}
	q.lock.Lock()
	_, err := q.peep([]Event{*ev}, Add, 0, 0, mem)
	q.lock.Unlock()
	if err != nil {
		q.logger().Warn().Err(err).Stringer("type", ev.Type()).Msg("dropping event")
		return false, errors.Wrap(err, "unable to add event to queue")
	}
	return true, nil
}

// SetFilter installs f and drops queued events it rejects.
func (q *Queue) SetFilter(f Filter, userdata interface{}) {
	q.lock.Lock()
	q.ok = f
	q.okdata = userdata
	q.lock.Unlock()
	if f != nil {
		q.Filter(f, userdata)
	}
}

func (q *Queue) GetFilter() (Filter, interface{}) {
	q.lock.Lock()
	defer q.lock.Unlock()
	return q.ok, q.okdata
}

func (q *Queue) AddWatch(watcher *Watcher) {
	q.wmu.Lock()
	defer q.wmu.Unlock()
	q.watchers = append(q.watchers, watcher)
}

func (q *Queue) DelWatch(watcher *Watcher) {
	q.wmu.Lock()
	defer q.wmu.Unlock()
	updated := q.watchers[:0]
	for _, w := range q.watchers {
		if w != watcher {
			updated = append(updated, w)
		}
	}
	q.watchers = updated
}

// Filter runs f over the queued events and drops those it rejects.
func (q *Queue) Filter(f Filter, userdata interface{}) {
	if !q.Active() {
		return
	}
	q.lock.Lock()
	defer q.lock.Unlock()

	for e := q.head; e != nil; {
		next := e.next
		if !f(userdata, &e.ev) {
			q.cut(e)
		}
		e = next
	}
}

func typeBit(t Type) (hi, word uint8, bit uint32) {
	hi = uint8((t >> 8) & 0xFF)
	lo := uint8(t & 0xFF)
	return hi, lo / 32, 1 << (lo & 31)
}

// Disable drops queued events of type t and rejects future ones. Types
// above Last are ignored.
func (q *Queue) Disable(t Type) {
	if t > Last {
		return
	}
	hi, w, bit := typeBit(t)
	q.lock.Lock()
	q.disabled[hi][w] |= bit
	q.lock.Unlock()
	q.FlushType(t)
}

func (q *Queue) Enable(t Type) {
	if t > Last {
		return
	}
	hi, w, bit := typeBit(t)
	q.lock.Lock()
	q.disabled[hi][w] &^= bit
	q.lock.Unlock()
}

func (q *Queue) Enabled(t Type) bool {
	if t > Last {
		return false
	}
	hi, w, bit := typeBit(t)
	q.lock.Lock()
	defer q.lock.Unlock()
	return q.disabled[hi][w]&bit == 0
}
