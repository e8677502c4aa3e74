package event

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startedQueue(t *testing.T) *Queue {
	q := NewQueue()
	require.NoError(t, q.Start())
	t.Cleanup(q.Stop)
	return q
}

func mustPush(t *testing.T, q *Queue, ev Event) {
	ok, err := q.Push(ev)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestQueueFIFO(t *testing.T) {
	q := startedQueue(t)
	for i := int32(0); i < 5; i++ {
		we, err := NewWindowEvent(WindowMoved, 1, i, 0)
		require.NoError(t, err)
		mustPush(t, q, Widen(we))
	}
	assert.Equal(t, 5, q.Len())
	assert.Equal(t, 5, q.MaxEventsSeen())

	for i := int32(0); i < 5; i++ {
		ev, ok := q.Poll()
		require.True(t, ok)
		we, err := As[WindowEvent](&ev)
		require.NoError(t, err)
		assert.Equal(t, i, we.Data1())
		assert.NotZero(t, ev.Timestamp())
	}
	_, ok := q.Poll()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Len())
}

func TestQueueKeepsTimestamp(t *testing.T) {
	q := startedQueue(t)
	mustPush(t, q, New(Quit, 1234))
	ev, ok := q.Poll()
	require.True(t, ok)
	assert.Equal(t, uint64(1234), ev.Timestamp())
}

func TestQueuePeep(t *testing.T) {
	q := startedQueue(t)
	mustPush(t, q, New(KeyDown, 1))
	mustPush(t, q, New(MouseMotion, 2))
	mustPush(t, q, New(KeyUp, 3))

	n, err := q.Peep(nil, Peek, KeyDown, KeyUp)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	buf := make([]Event, 4)
	n, err = q.Peep(buf, Peek, First, Last)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, q.Len())

	n, err = q.Peep(buf, Get, KeyDown, KeyUp)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	assert.Equal(t, KeyDown, buf[0].Type())
	assert.Equal(t, KeyUp, buf[1].Type())
	assert.Equal(t, 1, q.Len())

	has, err := q.HasType(MouseMotion)
	require.NoError(t, err)
	assert.True(t, has)
	has, err = q.HasTypes(KeyDown, KeyUp)
	require.NoError(t, err)
	assert.False(t, has)

	n, err = q.Peep([]Event{New(Quit, 0), New(Quit, 0)}, Add, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	q.FlushType(Quit)
	assert.Equal(t, 1, q.Len())
	q.FlushTypes(First, Last)
	assert.Equal(t, 0, q.Len())

	_, err = q.Peep(buf, Action(9), First, Last)
	assert.Error(t, err)
}

func TestQueueInactive(t *testing.T) {
	q := NewQueue()
	_, err := q.Push(New(Quit, 0))
	assert.Error(t, err)
	_, err = q.Peep(nil, Peek, First, Last)
	assert.Error(t, err)
	_, ok := q.Poll()
	assert.False(t, ok)
}

func TestQueueFilter(t *testing.T) {
	q := startedQueue(t)
	mustPush(t, q, New(KeyDown, 1))
	mustPush(t, q, New(MouseMotion, 1))

	noMouse := func(_ interface{}, ev *Event) bool { return ev.Type() != MouseMotion }
	q.SetFilter(noMouse, nil)
	assert.Equal(t, 1, q.Len())

	ok, err := q.Push(New(MouseMotion, 1))
	require.NoError(t, err)
	assert.False(t, ok)
	mustPush(t, q, New(KeyUp, 1))
	assert.Equal(t, 2, q.Len())

	f, _ := q.GetFilter()
	assert.NotNil(t, f)
	q.SetFilter(nil, nil)
	mustPush(t, q, New(MouseMotion, 1))
	assert.Equal(t, 3, q.Len())

	q.Filter(func(data interface{}, ev *Event) bool { return ev.Type() == data.(Type) }, KeyUp)
	assert.Equal(t, 1, q.Len())
}

func TestQueueWatch(t *testing.T) {
	q := startedQueue(t)
	var seen []Type
	w := &Watcher{Callback: func(_ interface{}, ev *Event) bool {
		seen = append(seen, ev.Type())
		return true
	}}
	q.AddWatch(w)
	mustPush(t, q, New(KeyDown, 1))
	q.DelWatch(w)
	mustPush(t, q, New(KeyUp, 1))
	assert.Equal(t, []Type{KeyDown}, seen)
}

func TestQueueDisable(t *testing.T) {
	q := startedQueue(t)
	mustPush(t, q, New(MouseMotion, 1))
	mustPush(t, q, New(KeyDown, 1))

	q.Disable(MouseMotion)
	assert.False(t, q.Enabled(MouseMotion))
	assert.True(t, q.Enabled(MouseWheel))
	assert.Equal(t, 1, q.Len())

	ok, err := q.Push(New(MouseMotion, 1))
	require.NoError(t, err)
	assert.False(t, ok)

	q.Enable(MouseMotion)
	mustPush(t, q, New(MouseMotion, 1))
	assert.Equal(t, 2, q.Len())
	assert.False(t, q.Enabled(Last+1))
}

func TestQueueWaitTimeout(t *testing.T) {
	q := startedQueue(t)
	start := time.Now()
	_, err := q.WaitTimeout(20 * time.Millisecond)
	assert.Equal(t, WaitTimeoutExceeded, err)
	assert.True(t, time.Since(start) >= 20*time.Millisecond)

	te, ok := err.(interface{ Timeout() bool })
	require.True(t, ok)
	assert.True(t, te.Timeout())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = q.WaitContext(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

type pumpOnce struct {
	done bool
}

func (p *pumpOnce) Pump(q *Queue) {
	if !p.done {
		p.done = true
		q.Push(New(RenderDeviceReset, 1))
	}
}

func TestQueuePump(t *testing.T) {
	q := startedQueue(t)
	q.AddSource(&pumpOnce{})
	ev, err := q.Wait()
	require.NoError(t, err)
	assert.Equal(t, RenderDeviceReset, ev.Type())
}

func TestQueueTextLifetime(t *testing.T) {
	q := startedQueue(t)
	a := &Arena{}
	ti, err := Make[TextInputEvent](TextInput, 1)
	require.NoError(t, err)
	ti.SetTextPtr(a.CString("abc"))
	ok, err := q.PushText(Widen(ti), a)
	require.NoError(t, err)
	require.True(t, ok)

	ev, ok := q.Poll()
	require.True(t, ok)
	assert.Len(t, q.polled, 1)
	got, err := As[TextInputEvent](&ev)
	require.NoError(t, err)
	assert.Equal(t, "abc", got.Text())

	_, ok = q.Poll()
	assert.False(t, ok)
	assert.Len(t, q.polled, 0)
}

func TestQueueFull(t *testing.T) {
	q := startedQueue(t)
	evs := make([]Event, MaxQueued)
	for i := range evs {
		evs[i] = New(Quit, 1)
	}
	n, err := q.Peep(evs, Add, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, MaxQueued, n)

	ok, err := q.Push(New(Quit, 1))
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestQueueDisableOutOfRange(t *testing.T) {
	q := startedQueue(t)
	q.Disable(Quit + 0x10000)
	assert.True(t, q.Enabled(Quit))
	mustPush(t, q, New(Quit, 1))

	q.Disable(Quit)
	q.Enable(Quit + 0x10000)
	assert.False(t, q.Enabled(Quit))
}
