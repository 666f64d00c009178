// Package canvastest provides an in-memory canvas.Host that records draw calls.
package canvastest

import (
	"image/color"
	"sort"
	"time"

	"github.com/olivierh59500/generative-gallery/internal/canvas"
)

// Circle is a recorded FillCircle call.
type Circle struct {
	X, Y, R float64
	Color   color.Color
}

// Line is a recorded StrokeLine call.
type Line struct {
	X0, Y0, X1, Y1 float64
	Width          float64
	Color          color.Color
}

// Text is a recorded DrawText call.
type Text struct {
	Text string
	X, Y int
}

type subscription struct {
	move  func(x, y float64)
	leave func()
}

// Host is a headless host. Clear drops everything drawn so far, so after a
// frame Circles and Lines hold exactly what that frame painted.
type Host struct {
	Width, Height int
	NoSurface     bool

	Circles []Circle
	Lines   []Line
	Texts   []Text
	Clears  int

	nextFrame FrameID
	pending   map[canvas.FrameID]canvas.FrameFunc
	nextSub   int
	subs      map[int]subscription
}

// FrameID is re-exported for brevity in tests.
type FrameID = canvas.FrameID

// New returns a host with a surface of the given size.
func New(width, height int) *Host {
	return &Host{
		Width:   width,
		Height:  height,
		pending: make(map[canvas.FrameID]canvas.FrameFunc),
		subs:    make(map[int]subscription),
	}
}

func (h *Host) Surface() canvas.Surface {
	if h.NoSurface {
		return nil
	}
	return h
}

func (h *Host) Size() (int, int) { return h.Width, h.Height }

func (h *Host) Clear() {
	h.Clears++
	h.Circles = h.Circles[:0]
	h.Lines = h.Lines[:0]
	h.Texts = h.Texts[:0]
}

func (h *Host) FillCircle(cx, cy, r float64, clr color.Color) {
	h.Circles = append(h.Circles, Circle{X: cx, Y: cy, R: r, Color: clr})
}

func (h *Host) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	h.Lines = append(h.Lines, Line{X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Color: clr})
}

func (h *Host) DrawText(text string, x, y int) {
	h.Texts = append(h.Texts, Text{Text: text, X: x, Y: y})
}

func (h *Host) RequestFrame(fn canvas.FrameFunc) canvas.FrameID {
	h.nextFrame++
	h.pending[h.nextFrame] = fn
	return h.nextFrame
}

func (h *Host) CancelFrame(id canvas.FrameID) {
	delete(h.pending, id)
}

// Pending reports how many frame callbacks are waiting.
func (h *Host) Pending() int { return len(h.pending) }

// Frame runs every pending callback, in request order, with timestamp ts.
// Callbacks requested while running wait for the next Frame.
func (h *Host) Frame(ts time.Duration) {
	ids := make([]canvas.FrameID, 0, len(h.pending))
	for id := range h.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		fn, ok := h.pending[id]
		if !ok {
			continue
		}
		delete(h.pending, id)
		fn(ts)
	}
}

func (h *Host) Subscribe(move func(x, y float64), leave func()) func() {
	h.nextSub++
	id := h.nextSub
	h.subs[id] = subscription{move: move, leave: leave}
	return func() { delete(h.subs, id) }
}

// Subscribers reports the number of live pointer subscriptions.
func (h *Host) Subscribers() int { return len(h.subs) }

// Move delivers a pointer move to every subscriber.
func (h *Host) Move(x, y float64) {
	for _, s := range h.subs {
		s.move(x, y)
	}
}

// Leave tells every subscriber the pointer left the surface.
func (h *Host) Leave() {
	for _, s := range h.subs {
		s.leave()
	}
}
