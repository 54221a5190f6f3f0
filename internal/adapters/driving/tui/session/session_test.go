package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewController_DefaultDelay(t *testing.T) {
	c := NewController(0)
	assert.Equal(t, DefaultSettleDelay, c.Delay())

	c = NewController(200 * time.Millisecond)
	assert.Equal(t, 200*time.Millisecond, c.Delay())
}

func TestController_InputSchedulesTimer(t *testing.T) {
	c := NewController(0)

	timer, ok := c.Input("power bank")
	require.True(t, ok)
	assert.Equal(t, DefaultSettleDelay, timer.Delay)
	assert.Equal(t, StatePending, c.State())
	assert.Equal(t, "power bank", c.Query())
}

func TestController_OnlyLatestTimerFires(t *testing.T) {
	c := NewController(0)

	// Three quick edits, as from a typist. Each schedules a new timer.
	t1, ok := c.Input("p")
	require.True(t, ok)
	t2, ok := c.Input("po")
	require.True(t, ok)
	t3, ok := c.Input("power")
	require.True(t, ok)
	assert.NotEqual(t, t1.Token, t2.Token)
	assert.NotEqual(t, t2.Token, t3.Token)

	// Stale timers are ignored even though they expire first.
	_, fired := c.Fire(t1.Token)
	assert.False(t, fired)
	_, fired = c.Fire(t2.Token)
	assert.False(t, fired)
	assert.Equal(t, StatePending, c.State())

	// Only the latest timer dispatches, with the full query.
	query, fired := c.Fire(t3.Token)
	assert.True(t, fired)
	assert.Equal(t, "power", query)
	assert.Equal(t, StateSettled, c.State())
}

func TestController_FireTwiceIsStale(t *testing.T) {
	c := NewController(0)

	timer, _ := c.Input("pets")
	_, fired := c.Fire(timer.Token)
	require.True(t, fired)

	// The timer already dispatched; a duplicate expiry does nothing.
	_, fired = c.Fire(timer.Token)
	assert.False(t, fired)
}

func TestController_BlankInputGoesIdle(t *testing.T) {
	c := NewController(0)

	timer, _ := c.Input("pets")

	_, ok := c.Input("   ")
	assert.False(t, ok)
	assert.Equal(t, StateIdle, c.State())
	assert.Empty(t, c.Query())

	// The earlier timer was invalidated by the clear.
	_, fired := c.Fire(timer.Token)
	assert.False(t, fired)
}

func TestController_ClearInvalidatesPendingTimer(t *testing.T) {
	c := NewController(0)

	timer, _ := c.Input("liquids")
	c.Clear()

	_, fired := c.Fire(timer.Token)
	assert.False(t, fired)
	assert.Equal(t, StateIdle, c.State())
}

func TestController_EditAfterSettleReschedules(t *testing.T) {
	c := NewController(0)

	t1, _ := c.Input("liquids")
	_, fired := c.Fire(t1.Token)
	require.True(t, fired)

	t2, ok := c.Input("liquids over")
	require.True(t, ok)
	assert.Equal(t, StatePending, c.State())

	query, fired := c.Fire(t2.Token)
	assert.True(t, fired)
	assert.Equal(t, "liquids over", query)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "pending", StatePending.String())
	assert.Equal(t, "settled", StateSettled.String())
}
