package ui

// Latch is a boolean that can only go from false to true.
type Latch struct {
	set bool
}

// Trigger sets the latch. It reports whether this call flipped it.
func (l *Latch) Trigger() bool {
	if l.set {
		return false
	}
	l.set = true
	return true
}

func (l *Latch) Revealed() bool {
	return l.set
}

// IntersectionSource reports how much of a region is inside the viewport.
// Observe fails when the host has no way to observe visibility.
type IntersectionSource interface {
	Observe(fn func(visible float64)) (stop func(), err error)
}

// SignalSource adapts a visibility signal to an IntersectionSource. The
// current value is delivered first.
func SignalSource(s Readable[float64]) IntersectionSource {
	return signalSource{s}
}

type signalSource struct {
	s Readable[float64]
}

func (src signalSource) Observe(fn func(float64)) (func(), error) {
	stop := src.s.Subscribe(fn)
	fn(src.s.Get())
	return stop, nil
}

const DefaultRevealThreshold = 0.2

// Reveal flips to revealed the first time enough of its region is visible
// and never flips back.
type Reveal struct {
	threshold float64
	latch     Latch
	stop      func()
}

// NewReveal returns a reveal that needs threshold (0,1] of its area in view.
// Out-of-range thresholds fall back to DefaultRevealThreshold.
func NewReveal(threshold float64) *Reveal {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultRevealThreshold
	}
	return &Reveal{threshold: threshold}
}

func (r *Reveal) Threshold() float64 {
	return r.threshold
}

func (r *Reveal) Revealed() bool {
	return r.latch.Revealed()
}

// Observe feeds the visible fraction of the region and returns the state.
func (r *Reveal) Observe(visible float64) bool {
	if visible >= r.threshold && r.latch.Trigger() {
		r.stopObserving()
	}
	return r.latch.Revealed()
}

// Mount starts observing src. A nil source, or one that cannot observe,
// reveals the region immediately so content is never left hidden.
// Observation stops by itself once revealed.
func (r *Reveal) Mount(src IntersectionSource) (release func()) {
	if src == nil || r.latch.Revealed() {
		r.latch.Trigger()
		return func() {}
	}
	stop, err := src.Observe(func(v float64) { r.Observe(v) })
	if err != nil {
		r.latch.Trigger()
		return func() {}
	}
	if r.latch.Revealed() {
		stop()
		return func() {}
	}
	r.stop = stop
	return r.stopObserving
}

func (r *Reveal) stopObserving() {
	if r.stop != nil {
		stop := r.stop
		r.stop = nil
		stop()
	}
}
