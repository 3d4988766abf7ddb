package ui

import (
	"math"
	"strconv"
	"time"

	"github.com/SafalBhandari12/event/internal/clock"
	"github.com/SafalBhandari12/event/internal/domain"
)

const (
	CountUpDuration  = 2 * time.Second
	CountUpThreshold = 0.5
)

// CountUpValue is the displayed value of stat at elapsed time since reveal.
// Counting starts after the stat's delay and eases out over duration.
func CountUpValue(stat domain.Stat, elapsed, duration time.Duration) int {
	t := elapsed - time.Duration(stat.Delay)*time.Millisecond
	if t <= 0 {
		return 0
	}
	if duration <= 0 || t >= duration {
		return stat.Value
	}
	p := float64(t) / float64(duration)
	eased := 1 - math.Pow(1-p, 3)
	return int(math.Floor(float64(stat.Value) * eased))
}

func FormatStat(value int, suffix string) string {
	return strconv.Itoa(value) + suffix
}

// CountUp animates one stat once half of it has scrolled into view.
type CountUp struct {
	stat       domain.Stat
	clk        clock.Clock
	reveal     *Reveal
	revealedAt time.Time
}

func NewCountUp(stat domain.Stat, clk clock.Clock) *CountUp {
	return &CountUp{stat: stat, clk: clk, reveal: NewReveal(CountUpThreshold)}
}

func (c *CountUp) Observe(visible float64) {
	was := c.reveal.Revealed()
	if c.reveal.Observe(visible) && !was {
		c.revealedAt = c.clk.Now()
	}
}

func (c *CountUp) Started() bool {
	return c.reveal.Revealed()
}

func (c *CountUp) Value() int {
	if !c.Started() {
		return 0
	}
	return CountUpValue(c.stat, c.clk.Now().Sub(c.revealedAt), CountUpDuration)
}

func (c *CountUp) Done() bool {
	return c.Started() && c.Value() == c.stat.Value
}

func (c *CountUp) Display() string {
	return FormatStat(c.Value(), c.stat.Suffix)
}
