package ui

import "sync"

// Readable is the consumer side of an ambient value such as pointer position
// or scroll offset. Consumers never write to it.
type Readable[T any] interface {
	Get() T
	Subscribe(fn func(T)) (unsubscribe func())
}

// Signal is an externally owned value that many components observe.
type Signal[T any] struct {
	mu    sync.Mutex
	value T
	next  int
	subs  map[int]func(T)
}

func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial, subs: make(map[int]func(T))}
}

func (s *Signal[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set stores v and notifies subscribers with the snapshot. Callbacks run
// outside the lock so they may unsubscribe themselves.
func (s *Signal[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	fns := make([]func(T), 0, len(s.subs))
	for i := 0; i < s.next; i++ {
		if fn, ok := s.subs[i]; ok {
			fns = append(fns, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

// Subscribe registers fn. The returned func removes it and may be called
// any number of times.
func (s *Signal[T]) Subscribe(fn func(T)) func() {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Subscribers reports the number of live subscriptions.
func (s *Signal[T]) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Point is a pointer position in viewport coordinates.
type Point struct {
	X, Y float64
}

// Size is a viewport size in pixels.
type Size struct {
	W, H float64
}

// Rect is a screen-space bounding box.
type Rect struct {
	Left, Top, Width, Height float64
}

func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// Empty reports whether the box has no area, which is how a missing layout
// measurement shows up.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
