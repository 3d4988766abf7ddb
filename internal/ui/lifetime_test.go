package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SafalBhandari12/event/internal/clock"
)

func TestLifetime_RunsTimersUntilReleased(t *testing.T) {
	t.Parallel()

	clk := clock.NewManual(epoch)
	life := NewLifetime(clk)
	var fired []string

	assert.True(t, life.After(time.Second, func() { fired = append(fired, "a") }))
	assert.True(t, life.After(3*time.Second, func() { fired = append(fired, "b") }))
	assert.Equal(t, 2, life.Pending())

	clk.Advance(2 * time.Second)
	assert.Equal(t, []string{"a"}, fired)
	assert.Equal(t, 1, life.Pending())

	life.Release()
	life.Release()
	clk.Advance(5 * time.Second)
	assert.Equal(t, []string{"a"}, fired)
	assert.True(t, life.Released())
	assert.False(t, life.After(time.Millisecond, func() { fired = append(fired, "c") }))
	assert.Equal(t, 0, clk.Pending())
}

func TestLifetime_SystemClock(t *testing.T) {
	t.Parallel()

	life := NewLifetime(clock.NewSystem())
	done := make(chan struct{})
	life.After(time.Millisecond, func() { close(done) })
	life.After(time.Hour, func() { t.Error("released timer fired") })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}
	life.Release()
	assert.Equal(t, 0, life.Pending())
}

func TestSpring_Step(t *testing.T) {
	t.Parallel()

	s := NewSpring(CubeStiffness, CubeDamping)
	s.Target = 1
	s.Step(FrameInterval)
	assert.Greater(t, s.Value, 0.0)
	assert.False(t, s.Settled(0.01))

	for i := 0; i < 300; i++ {
		s.Step(FrameInterval)
	}
	assert.True(t, s.Settled(0.001))
	assert.InDelta(t, 1, s.Value, 0.001)
}
