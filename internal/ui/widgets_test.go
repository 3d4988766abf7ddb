package ui

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SafalBhandari12/event/internal/clock"
)

var epoch = time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

func fixedBox(r Rect) Measure {
	return func() (Rect, bool) { return r, true }
}

func noLayout() (Rect, bool) {
	return Rect{}, false
}

func TestTransform_CSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Transform
		want string
	}{
		{name: "identity", in: Transform{}, want: "none"},
		{name: "translate", in: Transform{TranslateX: 1.234, TranslateY: -2}, want: "translate(1.23px, -2px)"},
		{name: "tilt", in: Transform{Perspective: 1000, RotateX: -5, RotateY: 2.5}, want: "perspective(1000px) rotateX(-5deg) rotateY(2.5deg)"},
		{name: "spin and scale", in: Transform{Rotate: 360, Scale: 1.1}, want: "rotate(360deg) scale(1.1)"},
		{name: "tiny negative rounds to nothing", in: Transform{TranslateX: -0.001, TranslateY: 0.001}, want: "translate(0px, 0px)"},
	}
	for _, tt := range tests {
		if got := tt.in.CSS(); got != tt.want {
			t.Fatalf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestEyeTransforms(t *testing.T) {
	t.Parallel()

	face := Rect{Left: 100, Top: 100, Width: 200, Height: 200} // centre 200,200
	vp := Size{W: 1000, H: 800}

	pupil, tilt := EyeTransforms(Point{X: 300, Y: 200}, face, vp)
	assert.InDelta(t, 8, pupil.TranslateX, 1e-9)
	assert.InDelta(t, 0, pupil.TranslateY, 1e-9)
	assert.InDelta(t, 2, tilt.RotateY, 1e-9)
	assert.InDelta(t, 0, tilt.RotateX, 1e-9)
	assert.Equal(t, EyePerspective, tilt.Perspective)

	pupil, tilt = EyeTransforms(Point{X: 200, Y: 600}, face, vp)
	assert.InDelta(t, 0, pupil.TranslateX, 1e-9)
	assert.InDelta(t, 8, pupil.TranslateY, 1e-9)
	assert.InDelta(t, -10, tilt.RotateX, 1e-9)

	pupil, _ = EyeTransforms(Point{X: 0, Y: 0}, face, vp)
	assert.InDelta(t, EyeMaxMovement, math.Hypot(pupil.TranslateX, pupil.TranslateY), 1e-9, "pupil offset is bounded")

	_, tilt = EyeTransforms(Point{X: 500, Y: 500}, face, Size{})
	assert.Zero(t, tilt.RotateX)
	assert.Zero(t, tilt.RotateY)
}

func TestDiscoTransform(t *testing.T) {
	t.Parallel()

	box := Rect{Left: 0, Top: 0, Width: 100, Height: 100}
	got := DiscoTransform(Point{X: 150, Y: 20}, box)
	assert.Equal(t, Transform{TranslateX: 10, TranslateY: -3, RotateX: -3, RotateY: 10}, got)
	assert.Equal(t, Transform{}, DiscoTransform(Point{X: 1, Y: 1}, Rect{}))
}

func TestCubeTarget(t *testing.T) {
	t.Parallel()

	rx, ry := CubeTarget(Point{X: 150, Y: 100}, Rect{Width: 100, Height: 100})
	assert.InDelta(t, -5, rx, 1e-9)
	assert.InDelta(t, 10, ry, 1e-9)
}

func TestWidgets_NeutralWithoutMeasurement(t *testing.T) {
	t.Parallel()

	clk := clock.NewManual(epoch)
	pointer := NewSignal(Point{X: 999, Y: 999})

	eye := NewEyeFollower(noLayout, func() Size { return Size{W: 800, H: 600} }, clk)
	ball := NewDiscoBall(nil, clk, nil)
	cube := NewCube(fixedBox(Rect{}), clk)

	releases := []func(){eye.Mount(pointer), ball.Mount(pointer), cube.Mount(pointer)}
	pointer.Set(Point{X: 5, Y: 5})
	clk.Advance(time.Second)

	assert.Equal(t, Transform{}, eye.Pupil())
	assert.Equal(t, Transform{}, eye.Face())
	assert.Equal(t, Transform{}, ball.Transform())
	assert.Equal(t, "none", cube.Transform().CSS())

	for _, release := range releases {
		release()
	}
}

func TestWidgets_ReleaseUnsubscribes(t *testing.T) {
	t.Parallel()

	clk := clock.NewManual(epoch)
	pointer := NewSignal(Point{})
	box := fixedBox(Rect{Width: 100, Height: 100})

	eye := NewEyeFollower(box, nil, clk)
	ball := NewDiscoBall(box, clk, nil)
	cube := NewCube(box, clk)

	releases := []func(){eye.Mount(pointer), ball.Mount(pointer), cube.Mount(pointer)}
	require.Equal(t, 3, pointer.Subscribers())

	pointer.Set(Point{X: 150, Y: 50})
	assert.InDelta(t, 10, ball.Transform().TranslateX, 1e-9)

	for _, release := range releases {
		release()
		release()
	}
	assert.Equal(t, 0, pointer.Subscribers())
	assert.Equal(t, 0, clk.Pending(), "cube frames stop on release")

	pointer.Set(Point{X: 50, Y: 50})
	assert.InDelta(t, 10, ball.Transform().TranslateX, 1e-9, "released widgets ignore the pointer")
}

func TestCube_SpringSettlesOnTarget(t *testing.T) {
	t.Parallel()

	clk := clock.NewManual(epoch)
	pointer := NewSignal(Point{X: 50, Y: 50})
	cube := NewCube(fixedBox(Rect{Width: 100, Height: 100}), clk)
	release := cube.Mount(pointer)
	defer release()

	pointer.Set(Point{X: 150, Y: 0})
	clk.Advance(100 * time.Millisecond)
	mid := cube.Transform()
	assert.Greater(t, mid.RotateY, 0.0)
	assert.Less(t, mid.RotateY, 10.0, "spring eases instead of jumping")

	clk.Advance(3 * time.Second)
	assert.True(t, cube.Settled(0.01))
	got := cube.Transform()
	assert.InDelta(t, 10, got.RotateY, 0.01)
	assert.InDelta(t, 5, got.RotateX, 0.01)
}

func TestCube_ClickSpinsForTwoSeconds(t *testing.T) {
	t.Parallel()

	clk := clock.NewManual(epoch)
	cube := NewCube(fixedBox(Rect{Width: 100, Height: 100}), clk)

	require.True(t, cube.Click())
	assert.False(t, cube.Click(), "no restart while spinning")
	assert.True(t, cube.Spinning())
	assert.Equal(t, 360.0, cube.Transform().Rotate)

	clk.Advance(1999 * time.Millisecond)
	assert.True(t, cube.Spinning())
	clk.Advance(time.Millisecond)
	assert.False(t, cube.Spinning())

	cube.Hover(true)
	assert.Equal(t, CubeHoverScale, cube.Transform().Scale)
}

func TestCube_SpinSuppressedAfterRelease(t *testing.T) {
	t.Parallel()

	clk := clock.NewManual(epoch)
	pointer := NewSignal(Point{})
	cube := NewCube(fixedBox(Rect{Width: 100, Height: 100}), clk)
	release := cube.Mount(pointer)

	require.True(t, cube.Click())
	release()
	clk.Advance(5 * time.Second)

	assert.True(t, cube.Spinning(), "reset effect never ran after release")
	assert.False(t, cube.Click())
	assert.Equal(t, 0, clk.Pending())
}

func TestDiscoBall_BeatPattern(t *testing.T) {
	t.Parallel()

	clk := clock.NewManual(epoch)
	var beats []float64
	ball := NewDiscoBall(fixedBox(Rect{Width: 10, Height: 10}), clk, func(hz float64) { beats = append(beats, hz) })

	require.True(t, ball.Click())
	assert.False(t, ball.Click())

	clk.Advance(BeatInterval)
	assert.Equal(t, []float64{220}, beats)

	clk.Advance(BeatDuration)
	assert.Len(t, beats, 10)
	assert.Equal(t, []float64{220, 330, 440, 550, 220}, beats[:5])
	assert.False(t, ball.Playing())
	assert.True(t, ball.Click(), "can play again once finished")
}

func TestDiscoBall_ReleaseSilencesPendingBeats(t *testing.T) {
	t.Parallel()

	clk := clock.NewManual(epoch)
	pointer := NewSignal(Point{})
	beats := 0
	ball := NewDiscoBall(nil, clk, func(float64) { beats++ })
	release := ball.Mount(pointer)

	require.True(t, ball.Click())
	clk.Advance(3 * BeatInterval)
	require.Equal(t, 3, beats)

	release()
	clk.Advance(BeatDuration)
	assert.Equal(t, 3, beats)
}

func TestCube_SystemClockTeardown(t *testing.T) {
	t.Parallel()

	pointer := NewSignal(Point{})
	cube := NewCube(fixedBox(Rect{Width: 100, Height: 100}), clock.NewSystem())
	release := cube.Mount(pointer)
	pointer.Set(Point{X: 200, Y: 200})
	cube.Click()

	time.Sleep(5 * FrameInterval)
	release()
	assert.Equal(t, 0, cube.life.Pending())
}

func TestWidgets_NilClockFallsBackToSystem(t *testing.T) {
	t.Parallel()

	pointer := NewSignal(Point{})
	eye := NewEyeFollower(noLayout, nil, nil)
	ball := NewDiscoBall(noLayout, nil, nil)
	cube := NewCube(noLayout, nil)

	releases := []func(){eye.Mount(pointer), ball.Mount(pointer), cube.Mount(pointer)}
	assert.True(t, ball.Click())
	assert.True(t, cube.Click())
	pointer.Set(Point{X: 10, Y: 10})
	assert.Equal(t, Transform{}, eye.Pupil())

	for _, release := range releases {
		release()
	}
	assert.Equal(t, 0, ball.life.Pending())
	assert.Equal(t, 0, cube.life.Pending())
	assert.False(t, cube.Click(), "released cube ignores clicks")
}
