package gdl

import (
	"testing"

	"github.com/elliotmr/gdl3/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitImpliesEvents(t *testing.T) {
	defer Quit()
	require.NoError(t, Init(InitGamepad))
	assert.Equal(t, uint32(InitGamepad|InitJoystick|InitEvents), WasInit(0))
	assert.Equal(t, uint32(InitEvents), WasInit(InitEvents|InitAudio))
	require.NotNil(t, EventLoop)
	assert.True(t, EventLoop.Active())

	ok, err := EventLoop.Push(event.New(event.Quit, 0))
	require.NoError(t, err)
	assert.True(t, ok)
	ev, ok := EventLoop.Poll()
	require.True(t, ok)
	assert.Equal(t, event.Quit, ev.Type())
}

func TestInitRejectsUnknownFlags(t *testing.T) {
	defer Quit()
	assert.Error(t, Init(0x1))
	assert.Zero(t, WasInit(0))
}

func TestQuitStopsQueue(t *testing.T) {
	require.NoError(t, Init(InitEvents))
	Quit()
	assert.Zero(t, WasInit(0))
	assert.False(t, EventLoop.Active())
}
