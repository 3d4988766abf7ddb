package ui

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/SafalBhandari12/event/internal/clock"
)

// Measure returns a widget's current bounding box. ok is false when layout
// is not available yet.
type Measure func() (Rect, bool)

// Transform is a CSS transform expressed as numbers. Zero fields are left
// out of CSS; a zero Scale means 1.
type Transform struct {
	Perspective float64
	TranslateX  float64
	TranslateY  float64
	RotateX     float64
	RotateY     float64
	Rotate      float64
	Scale       float64
}

// CSS renders the value of a CSS transform property.
func (t Transform) CSS() string {
	var parts []string
	if t.Perspective > 0 {
		parts = append(parts, "perspective("+cssNumber(t.Perspective)+"px)")
	}
	if t.TranslateX != 0 || t.TranslateY != 0 {
		parts = append(parts, "translate("+cssNumber(t.TranslateX)+"px, "+cssNumber(t.TranslateY)+"px)")
	}
	if t.RotateX != 0 {
		parts = append(parts, "rotateX("+cssNumber(t.RotateX)+"deg)")
	}
	if t.RotateY != 0 {
		parts = append(parts, "rotateY("+cssNumber(t.RotateY)+"deg)")
	}
	if t.Rotate != 0 {
		parts = append(parts, "rotate("+cssNumber(t.Rotate)+"deg)")
	}
	if t.Scale != 0 && t.Scale != 1 {
		parts = append(parts, "scale("+cssNumber(t.Scale)+")")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}

func cssNumber(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func measureBox(m Measure) (Rect, bool) {
	if m == nil {
		return Rect{}, false
	}
	box, ok := m()
	if !ok || box.Empty() {
		return Rect{}, false
	}
	return box, true
}

// mount subscribes update to pointer and returns an idempotent release that
// also ends life.
func mount(pointer Readable[Point], life *Lifetime, update func(Point)) func() {
	update(pointer.Get())
	unsubscribe := pointer.Subscribe(update)
	var once sync.Once
	return func() {
		once.Do(func() {
			unsubscribe()
			life.Release()
		})
	}
}

const (
	EyeMaxMovement = 8.0
	EyeMaxTilt     = 20.0
	EyePerspective = 1000.0
)

// EyeTransforms points the pupils at pointer and tilts the face toward it,
// scaled by the viewport size.
func EyeTransforms(pointer Point, face Rect, viewport Size) (pupil, tilt Transform) {
	if face.Empty() {
		return Transform{}, Transform{}
	}
	c := face.Center()
	dx, dy := pointer.X-c.X, pointer.Y-c.Y
	angle := math.Atan2(dy, dx)
	pupil = Transform{
		TranslateX: math.Cos(angle) * EyeMaxMovement,
		TranslateY: math.Sin(angle) * EyeMaxMovement,
	}
	tilt = Transform{Perspective: EyePerspective}
	if viewport.W > 0 {
		tilt.RotateY = dx / viewport.W * EyeMaxTilt
	}
	if viewport.H > 0 {
		tilt.RotateX = -dy / viewport.H * EyeMaxTilt
	}
	return pupil, tilt
}

// EyeFollower is the face whose eyes track the pointer.
type EyeFollower struct {
	measure  Measure
	viewport func() Size
	life     *Lifetime

	mu    sync.Mutex
	pupil Transform
	face  Transform
}

func NewEyeFollower(measure Measure, viewport func() Size, clk clock.Clock) *EyeFollower {
	return &EyeFollower{measure: measure, viewport: viewport, life: NewLifetime(clk)}
}

func (e *EyeFollower) Update(p Point) {
	var pupil, face Transform
	if box, ok := measureBox(e.measure); ok {
		var vp Size
		if e.viewport != nil {
			vp = e.viewport()
		}
		pupil, face = EyeTransforms(p, box, vp)
	}
	e.mu.Lock()
	e.pupil, e.face = pupil, face
	e.mu.Unlock()
}

func (e *EyeFollower) Pupil() Transform {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pupil
}

func (e *EyeFollower) Face() Transform {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.face
}

func (e *EyeFollower) Mount(pointer Readable[Point]) (release func()) {
	return mount(pointer, e.life, e.Update)
}

const (
	DiscoDivisor = 10.0
	BeatInterval = 200 * time.Millisecond
	BeatDuration = 2 * time.Second
)

// BeatFrequencies are the tones the disco ball cycles through, in Hz.
var BeatFrequencies = []float64{220, 330, 440, 550}

// DiscoTransform moves and rolls the ball by a tenth of the pointer offset.
func DiscoTransform(pointer Point, box Rect) Transform {
	if box.Empty() {
		return Transform{}
	}
	c := box.Center()
	dx := (pointer.X - c.X) / DiscoDivisor
	dy := (pointer.Y - c.Y) / DiscoDivisor
	return Transform{TranslateX: dx, TranslateY: dy, RotateX: dy, RotateY: dx}
}

// DiscoBall follows the pointer and plays a short beat when clicked.
type DiscoBall struct {
	measure Measure
	tone    func(hz float64)
	life    *Lifetime

	mu        sync.Mutex
	transform Transform
	playing   bool
}

// NewDiscoBall returns a ball that reports each beat to tone.
func NewDiscoBall(measure Measure, clk clock.Clock, tone func(hz float64)) *DiscoBall {
	if tone == nil {
		tone = func(float64) {}
	}
	return &DiscoBall{measure: measure, tone: tone, life: NewLifetime(clk)}
}

func (d *DiscoBall) Update(p Point) {
	var t Transform
	if box, ok := measureBox(d.measure); ok {
		t = DiscoTransform(p, box)
	}
	d.mu.Lock()
	d.transform = t
	d.mu.Unlock()
}

func (d *DiscoBall) Transform() Transform {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.transform
}

// Click starts the beat pattern. It reports false while a pattern is
// already playing or after the ball was released.
func (d *DiscoBall) Click() bool {
	d.mu.Lock()
	if d.playing || d.life.Released() {
		d.mu.Unlock()
		return false
	}
	d.playing = true
	d.mu.Unlock()

	beats := int(BeatDuration / BeatInterval)
	for i := 1; i <= beats; i++ {
		hz := BeatFrequencies[(i-1)%len(BeatFrequencies)]
		d.life.After(time.Duration(i)*BeatInterval, func() { d.tone(hz) })
	}
	d.life.After(BeatDuration, func() {
		d.mu.Lock()
		d.playing = false
		d.mu.Unlock()
	})
	return true
}

func (d *DiscoBall) Playing() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.playing
}

func (d *DiscoBall) Mount(pointer Readable[Point]) (release func()) {
	return mount(pointer, d.life, d.Update)
}

const (
	CubeTilt         = 0.1
	CubeStiffness    = 150.0
	CubeDamping      = 15.0
	CubeSpinDuration = 2 * time.Second
	CubeHoverScale   = 1.1
	FrameInterval    = 16 * time.Millisecond
)

// CubeTarget is the rotation the cube eases toward for a pointer position.
func CubeTarget(pointer Point, box Rect) (rotateX, rotateY float64) {
	if box.Empty() {
		return 0, 0
	}
	c := box.Center()
	return -(pointer.Y - c.Y) * CubeTilt, (pointer.X - c.X) * CubeTilt
}

// Cube is the spring-eased 3D cube. Clicking spins it once.
type Cube struct {
	measure Measure
	life    *Lifetime

	mu       sync.Mutex
	x, y     Spring
	spinning bool
	hovered  bool
}

func NewCube(measure Measure, clk clock.Clock) *Cube {
	return &Cube{
		measure: measure,
		life:    NewLifetime(clk),
		x:       NewSpring(CubeStiffness, CubeDamping),
		y:       NewSpring(CubeStiffness, CubeDamping),
	}
}

// Update retargets the springs. Without a measurement the cube eases back
// to rest.
func (c *Cube) Update(p Point) {
	var rx, ry float64
	if box, ok := measureBox(c.measure); ok {
		rx, ry = CubeTarget(p, box)
	}
	c.mu.Lock()
	c.x.Target, c.y.Target = rx, ry
	c.mu.Unlock()
}

// Step advances the springs by one frame.
func (c *Cube) Step(dt time.Duration) {
	c.mu.Lock()
	c.x.Step(dt)
	c.y.Step(dt)
	c.mu.Unlock()
}

func (c *Cube) Settled(eps float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.x.Settled(eps) && c.y.Settled(eps)
}

func (c *Cube) Transform() Transform {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := Transform{RotateX: c.x.Value, RotateY: c.y.Value}
	if c.spinning {
		t.Rotate = 360
	}
	if c.hovered {
		t.Scale = CubeHoverScale
	}
	return t
}

func (c *Cube) Hover(on bool) {
	c.mu.Lock()
	c.hovered = on
	c.mu.Unlock()
}

// Click starts a spin. It reports false while already spinning.
func (c *Cube) Click() bool {
	c.mu.Lock()
	if c.spinning || c.life.Released() {
		c.mu.Unlock()
		return false
	}
	c.spinning = true
	c.mu.Unlock()

	c.life.After(CubeSpinDuration, func() {
		c.mu.Lock()
		c.spinning = false
		c.mu.Unlock()
	})
	return true
}

func (c *Cube) Spinning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.spinning
}

// Mount follows pointer and steps the springs every frame until released.
func (c *Cube) Mount(pointer Readable[Point]) (release func()) {
	var tick func()
	tick = func() {
		c.Step(FrameInterval)
		c.life.After(FrameInterval, tick)
	}
	c.life.After(FrameInterval, tick)
	return mount(pointer, c.life, c.Update)
}
