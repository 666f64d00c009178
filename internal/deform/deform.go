// Package deform renders a sphere whose surface is pushed in and out by
// animated fractal noise, slowly turning in front of a perspective camera.
package deform

import (
	"math"
	"slices"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/olivierh59500/generative-gallery/internal/canvas"
	"github.com/olivierh59500/generative-gallery/internal/palette"
)

const (
	Amplitude      = 0.25 // displacement along the normal per unit of noise
	Frequency      = 1.5
	ColorFrequency = 2.0

	CameraDistance = 2.5
	FieldOfView    = 75.0 // vertical, degrees

	Rings    = 40
	Segments = 80

	SpinY = 0.1 // rad/s
	SpinX = 0.05
)

var lightDir = r3.Unit(r3.Vec{X: 0.5, Y: 0.5, Z: 1})

// Displace returns the deformed position of v at time t seconds.
func Displace(n *Noise, v Vertex, t float64) r3.Vec {
	p := v.Pos
	d := n.FBM(p.X*Frequency+t*0.1, p.Y*Frequency+t*0.1)
	d += n.FBM(p.Y*Frequency+t*0.08, p.Z*Frequency+t*0.08)
	d += n.FBM(p.X*Frequency+t*0.05, p.Z*Frequency+t*0.05)
	return r3.Add(p, r3.Scale(d*Amplitude, p))
}

// Shade returns the lit colour of v at time t, given its deformed position
// and its normal after rotation.
func Shade(n *Noise, v Vertex, pos, normal r3.Vec, t float64) (hue, lightness, light float64) {
	c := n.FBM(pos.X*ColorFrequency+t*0.05, pos.Y*ColorFrequency+t*0.05)
	c += n.FBM(v.U*ColorFrequency*2+t*0.1, v.V*ColorFrequency*2+t*0.1)
	c = smoothstep(0.3, 0.7, c)

	hue = math.Mod(0.6+c*0.5+t*0.02, 1)
	lightness = mix(0.3, 0.7, smoothstep(0, 1, c))
	light = clamp(r3.Dot(r3.Unit(normal), lightDir)*0.5+0.5, 0, 1)
	return hue, lightness, light
}

// Camera projects view-space points onto a surface.
type Camera struct {
	Width, Height float64
	focal         float64
}

// NewCamera builds a camera for a surface of the given size.
func NewCamera(width, height float64) Camera {
	return Camera{
		Width:  width,
		Height: height,
		focal:  1 / math.Tan(FieldOfView*math.Pi/360),
	}
}

// Project maps a model-space point to surface pixels. depth is the distance
// from the camera along its axis; ok is false for points behind it.
func (c Camera) Project(p r3.Vec) (x, y, depth float64, ok bool) {
	depth = CameraDistance - p.Z
	if depth <= 0 {
		return 0, 0, 0, false
	}
	aspect := c.Width / c.Height
	nx := c.focal / aspect * p.X / depth
	ny := c.focal * p.Y / depth
	return (nx + 1) / 2 * c.Width, (1 - ny) / 2 * c.Height, depth, true
}

// Scale is the number of pixels one model unit spans at depth.
func (c Camera) Scale(depth float64) float64 {
	return c.focal * c.Height / 2 / depth
}

type dot struct {
	x, y, r, depth float64
	hue, l, light  float64
}

// Blob is the mountable artwork.
type Blob struct {
	noise *Noise
	mesh  []Vertex
	dots  []dot
	log   *zap.Logger

	host    canvas.Host
	surface canvas.Surface
	frame   canvas.FrameID
	start   time.Duration
	started bool
}

// New returns an unmounted blob using noise seeded with seed.
func New(seed int64, log *zap.Logger) *Blob {
	if log == nil {
		log = zap.NewNop()
	}
	mesh := Sphere(Rings, Segments)
	return &Blob{
		noise: NewNoise(seed),
		mesh:  mesh,
		dots:  make([]dot, 0, len(mesh)),
		log:   log,
	}
}

func (b *Blob) Mount(h canvas.Host) {
	s := h.Surface()
	if s == nil {
		b.log.Debug("deform: no surface, skipping mount")
		return
	}
	b.host, b.surface = h, s
	b.started = false
	b.frame = h.RequestFrame(b.tick)
}

func (b *Blob) Unmount() {
	if b.host == nil {
		return
	}
	b.host.CancelFrame(b.frame)
	b.host, b.surface = nil, nil
}

func (b *Blob) tick(ts time.Duration) {
	if b.host == nil {
		return
	}
	if !b.started {
		b.start, b.started = ts, true
	}
	b.Render(b.surface, (ts - b.start).Seconds())
	b.frame = b.host.RequestFrame(b.tick)
}

// Render draws the blob at time t seconds, back to front.
func (b *Blob) Render(s canvas.Surface, t float64) {
	w, h := s.Size()
	s.Clear()
	if w <= 0 || h <= 0 {
		return
	}
	cam := NewCamera(float64(w), float64(h))
	spin := Spin(t)
	spacing := math.Pi / Rings

	b.dots = b.dots[:0]
	for _, v := range b.mesh {
		pos := Displace(b.noise, v, t)
		world := spin.Apply(pos)
		normal := spin.Apply(v.Pos)

		// cull faces turned away from the camera
		toCam := r3.Sub(r3.Vec{Z: CameraDistance}, world)
		if r3.Dot(normal, toCam) <= 0 {
			continue
		}

		x, y, depth, ok := cam.Project(world)
		if !ok {
			continue
		}
		hue, l, light := Shade(b.noise, v, pos, normal, t)
		b.dots = append(b.dots, dot{
			x:     x,
			y:     y,
			r:     math.Max(1, cam.Scale(depth)*spacing*r3.Norm(pos)*0.6),
			depth: depth,
			hue:   hue,
			l:     l,
			light: light,
		})
	}

	slices.SortFunc(b.dots, func(a, c dot) int {
		switch {
		case a.depth > c.depth:
			return -1
		case a.depth < c.depth:
			return 1
		}
		return 0
	})
	for _, d := range b.dots {
		clr := palette.Scale(palette.HSL(d.hue*360, 0.8, d.l), d.light)
		s.FillCircle(d.x, d.y, d.r, clr)
	}
}
