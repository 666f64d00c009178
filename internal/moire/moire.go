// Package moire draws two families of parallel lines rotating in opposite
// directions about the centre of the surface.
package moire

import (
	"image/color"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/generative-gallery/internal/canvas"
	"github.com/olivierh59500/generative-gallery/internal/palette"
)

const (
	LinesPerSide = 30 // lines each side of the centre line
	Spacing      = 15.0
	LineWidth    = 1.0

	// Period is the time for the first family to turn one radian.
	Period = 3 * time.Second
	// CounterRate scales the opposite rotation of the second family.
	CounterRate = 1.1
)

var (
	Yellow = palette.HSLA(60, 1, 0.7, 0.5)
	Blue   = palette.HSLA(240, 1, 0.7, 0.5)
)

// Segment is a line from (X0,Y0) to (X1,Y1).
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Angle returns the rotation of the first family after elapsed time.
func Angle(elapsed time.Duration) float64 {
	return float64(elapsed) / float64(Period)
}

// Families returns both line families for a surface of the given size at
// rotation angle. The first family is vertical before rotation and turns by
// angle, the second is horizontal and turns by -CounterRate·angle.
func Families(width, height, angle float64) (first, second []Segment) {
	center := r2.Vec{X: width / 2, Y: height / 2}
	turn := r2.NewRotation(angle, center)
	counter := r2.NewRotation(-angle*CounterRate, center)

	first = make([]Segment, 0, 2*LinesPerSide+1)
	second = make([]Segment, 0, 2*LinesPerSide+1)
	for i := -LinesPerSide; i <= LinesPerSide; i++ {
		off := float64(i) * Spacing
		first = append(first, segment(turn, center, r2.Vec{X: off, Y: -height}, r2.Vec{X: off, Y: height}))
		second = append(second, segment(counter, center, r2.Vec{X: -width, Y: off}, r2.Vec{X: width, Y: off}))
	}
	return first, second
}

// segment places a line given relative to center and rotates it about center.
func segment(rot r2.Rotation, center, from, to r2.Vec) Segment {
	a := rot.Rotate(r2.Add(center, from))
	b := rot.Rotate(r2.Add(center, to))
	return Segment{X0: a.X, Y0: a.Y, X1: b.X, Y1: b.Y}
}

// Pattern is the mountable moiré artwork.
type Pattern struct {
	log     *zap.Logger
	host    canvas.Host
	surface canvas.Surface
	frame   canvas.FrameID

	start   time.Duration
	started bool
}

// New returns an unmounted pattern. A nil logger discards output.
func New(log *zap.Logger) *Pattern {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pattern{log: log}
}

func (p *Pattern) Mount(h canvas.Host) {
	s := h.Surface()
	if s == nil {
		p.log.Debug("moire: no surface, skipping mount")
		return
	}
	p.host, p.surface = h, s
	p.started = false
	p.frame = h.RequestFrame(p.tick)
}

func (p *Pattern) Unmount() {
	if p.host == nil {
		return
	}
	p.host.CancelFrame(p.frame)
	p.host, p.surface = nil, nil
}

func (p *Pattern) tick(ts time.Duration) {
	if p.host == nil {
		return
	}
	if !p.started {
		p.start, p.started = ts, true
	}
	p.Render(p.surface, ts-p.start)
	p.frame = p.host.RequestFrame(p.tick)
}

// Render draws the pattern as it looks after elapsed time.
func (p *Pattern) Render(s canvas.Surface, elapsed time.Duration) {
	w, h := s.Size()
	first, second := Families(float64(w), float64(h), Angle(elapsed))
	s.Clear()
	stroke(s, first, Yellow)
	stroke(s, second, Blue)
}

func stroke(s canvas.Surface, segs []Segment, clr color.Color) {
	for _, l := range segs {
		s.StrokeLine(l.X0, l.Y0, l.X1, l.Y1, LineWidth, clr)
	}
}
