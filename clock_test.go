package try_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/try"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// secs maps the second offsets used throughout the retry scenarios onto
// concrete instants.
func secs(n int) time.Time {
	return epoch.Add(time.Duration(n) * time.Second)
}

func TestScriptedClock(t *testing.T) {
	t.Run("serves ticks in order", func(t *testing.T) {
		clock := try.NewScriptedClock(try.At(secs(0)), try.At(secs(100)), try.At(secs(200)))

		assert.Equal(t, secs(0), clock.Now())
		assert.Equal(t, secs(100), clock.Now())
		assert.Equal(t, secs(200), clock.Now())
		assert.Zero(t, clock.Remaining())
	})

	t.Run("side effect fires once before the time is returned", func(t *testing.T) {
		fired := 0
		clock := try.NewScriptedClock(
			try.AtFunc(secs(0), func() { fired++ }),
			try.At(secs(100)),
		)

		assert.Equal(t, secs(0), clock.Now())
		assert.Equal(t, 1, fired)

		clock.Now()
		assert.Equal(t, 1, fired)
	})

	t.Run("error entry panics instead of returning a time", func(t *testing.T) {
		clock := try.NewScriptedClock(try.At(secs(0)), try.AtErr(secs(100), errBoom))

		clock.Now()
		require.PanicsWithValue(t, errBoom, func() { clock.Now() })
	})

	t.Run("exhausted schedule panics", func(t *testing.T) {
		clock := try.NewScriptedClock(try.At(secs(0)))

		clock.Now()
		require.PanicsWithValue(t, try.ErrScheduleExhausted, func() { clock.Now() })
	})

	t.Run("sleep consumes nothing and blocks nothing", func(t *testing.T) {
		clock := try.NewScriptedClock(try.At(secs(0)))

		begin := time.Now()
		clock.Sleep(time.Hour)
		assert.Less(t, time.Since(begin), time.Second)
		assert.Equal(t, 1, clock.Remaining())
	})
}

func TestSystemClock(t *testing.T) {
	clock := try.SystemClock{}

	before := time.Now()
	now := clock.Now()
	assert.False(t, now.Before(before))

	begin := time.Now()
	clock.Sleep(time.Millisecond)
	assert.GreaterOrEqual(t, time.Since(begin), time.Millisecond)
}
