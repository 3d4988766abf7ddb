package ui

import (
	"sync"
	"time"

	"github.com/SafalBhandari12/event/internal/clock"
)

// Lifetime owns the timers started on behalf of one mounted widget. After
// Release no pending timer runs its effect.
type Lifetime struct {
	clk clock.Clock

	mu       sync.Mutex
	released bool
	seq      int
	timers   map[int]clock.Timer
}

// NewLifetime schedules on clk, or on the system clock when clk is nil.
func NewLifetime(clk clock.Clock) *Lifetime {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &Lifetime{clk: clk, timers: make(map[int]clock.Timer)}
}

// After runs fn once d has elapsed, unless the lifetime is released first.
// It reports false when the lifetime is already released.
func (l *Lifetime) After(d time.Duration, fn func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.released {
		return false
	}
	l.seq++
	id := l.seq
	l.timers[id] = l.clk.AfterFunc(d, func() {
		l.mu.Lock()
		if l.released {
			l.mu.Unlock()
			return
		}
		delete(l.timers, id)
		l.mu.Unlock()
		fn()
	})
	return true
}

// Release stops every pending timer. It is safe to call more than once.
func (l *Lifetime) Release() {
	l.mu.Lock()
	if l.released {
		l.mu.Unlock()
		return
	}
	l.released = true
	timers := l.timers
	l.timers = nil
	l.mu.Unlock()

	for _, t := range timers {
		t.Stop()
	}
}

func (l *Lifetime) Released() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.released
}

// Pending reports how many timers have not fired yet.
func (l *Lifetime) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.timers)
}
