package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SafalBhandari12/event/internal/clock"
	"github.com/SafalBhandari12/event/internal/domain"
)

func TestCountUpValue(t *testing.T) {
	t.Parallel()

	stat := domain.Stat{Label: "Attendees", Value: 5000, Suffix: "+", Delay: 200}

	tests := []struct {
		elapsed time.Duration
		want    int
	}{
		{elapsed: 0, want: 0},
		{elapsed: 200 * time.Millisecond, want: 0},
		{elapsed: 1200 * time.Millisecond, want: 4375},
		{elapsed: 2200 * time.Millisecond, want: 5000},
		{elapsed: time.Minute, want: 5000},
	}
	for _, tt := range tests {
		if got := CountUpValue(stat, tt.elapsed, CountUpDuration); got != tt.want {
			t.Fatalf("elapsed %v: expected %d, got %d", tt.elapsed, tt.want, got)
		}
	}
}

func TestCountUpValue_Monotonic(t *testing.T) {
	t.Parallel()

	stat := domain.Stat{Value: 12}
	prev := 0
	for ms := 0; ms <= 2500; ms += 50 {
		v := CountUpValue(stat, time.Duration(ms)*time.Millisecond, CountUpDuration)
		assert.GreaterOrEqual(t, v, prev)
		assert.LessOrEqual(t, v, 12)
		prev = v
	}
}

func TestCountUp_StartsOnHalfVisible(t *testing.T) {
	t.Parallel()

	clk := clock.NewManual(epoch)
	c := NewCountUp(domain.Stat{Value: 50, Suffix: "K+"}, clk)

	c.Observe(0.4)
	clk.Advance(time.Second)
	assert.False(t, c.Started())
	assert.Equal(t, "0K+", c.Display())

	c.Observe(0.5)
	clk.Advance(CountUpDuration)
	c.Observe(0)
	assert.True(t, c.Done())
	assert.Equal(t, "50K+", c.Display())
}
