// Package ebitencanvas hosts artworks inside an ebiten game loop. The owning
// ebiten.Game forwards Layout, Update and Draw to the Host, which turns them
// into surface size, pointer events and frame callbacks.
package ebitencanvas

import (
	"image/color"
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/olivierh59500/generative-gallery/internal/canvas"
)

type subscription struct {
	move  func(x, y float64)
	leave func()
}

// cursorFunc reports the cursor position in screen coordinates and whether
// the window has focus.
type cursorFunc func() (x, y int, focused bool)

func ebitenCursor() (int, int, bool) {
	x, y := ebiten.CursorPosition()
	return x, y, ebiten.IsFocused()
}

// Host implements canvas.Host and canvas.Surface on top of ebiten.
type Host struct {
	log    *zap.Logger
	start  time.Time
	cursor cursorFunc

	width, height int
	screen        *ebiten.Image

	nextFrame canvas.FrameID
	pending   map[canvas.FrameID]canvas.FrameFunc

	nextSub int
	subs    map[int]subscription

	inside       bool
	lastX, lastY int
}

// New returns a host with no surface until the first Layout.
func New(log *zap.Logger) *Host {
	if log == nil {
		log = zap.NewNop()
	}
	return &Host{
		log:     log,
		start:   time.Now(),
		cursor:  ebitenCursor,
		pending: make(map[canvas.FrameID]canvas.FrameFunc),
		subs:    make(map[int]subscription),
	}
}

// Layout records the logical screen size; call it from ebiten.Game.Layout.
func (h *Host) Layout(width, height int) {
	if width != h.width || height != h.height {
		h.log.Debug("surface resized", zap.Int("width", width), zap.Int("height", height))
	}
	h.width, h.height = width, height
}

// Update polls the cursor and emits move and leave events; call it from
// ebiten.Game.Update.
func (h *Host) Update() {
	x, y, focused := h.cursor()
	inside := focused && x >= 0 && y >= 0 && x < h.width && y < h.height
	switch {
	case inside && (!h.inside || x != h.lastX || y != h.lastY):
		for _, s := range h.subs {
			s.move(float64(x), float64(y))
		}
	case !inside && h.inside:
		for _, s := range h.subs {
			s.leave()
		}
	}
	h.inside = inside
	h.lastX, h.lastY = x, y
}

// Draw runs every pending frame callback against screen; call it from
// ebiten.Game.Draw.
func (h *Host) Draw(screen *ebiten.Image) {
	h.screen = screen
	defer func() { h.screen = nil }()

	ids := make([]canvas.FrameID, 0, len(h.pending))
	for id := range h.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	ts := time.Since(h.start)
	for _, id := range ids {
		fn, ok := h.pending[id]
		if !ok {
			continue
		}
		delete(h.pending, id)
		fn(ts)
	}
}

func (h *Host) Surface() canvas.Surface {
	if h.width <= 0 || h.height <= 0 {
		return nil
	}
	return h
}

func (h *Host) RequestFrame(fn canvas.FrameFunc) canvas.FrameID {
	h.nextFrame++
	h.pending[h.nextFrame] = fn
	return h.nextFrame
}

func (h *Host) CancelFrame(id canvas.FrameID) {
	delete(h.pending, id)
}

func (h *Host) Subscribe(move func(x, y float64), leave func()) func() {
	h.nextSub++
	id := h.nextSub
	h.subs[id] = subscription{move: move, leave: leave}
	if h.inside {
		move(float64(h.lastX), float64(h.lastY))
	}
	return func() { delete(h.subs, id) }
}

func (h *Host) Size() (int, int) {
	return h.width, h.height
}

// Drawing outside Draw is dropped.

func (h *Host) Clear() {
	if h.screen != nil {
		h.screen.Clear()
	}
}

func (h *Host) FillCircle(cx, cy, r float64, clr color.Color) {
	if h.screen != nil {
		vector.DrawFilledCircle(h.screen, float32(cx), float32(cy), float32(r), clr, true)
	}
}

func (h *Host) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	if h.screen != nil {
		vector.StrokeLine(h.screen, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
	}
}

func (h *Host) DrawText(text string, x, y int) {
	if h.screen != nil {
		ebitenutil.DebugPrintAt(h.screen, text, x, y)
	}
}
