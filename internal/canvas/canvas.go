// Package canvas defines the capabilities an artwork needs from whatever is
// hosting it: a drawing surface, a frame scheduler and pointer input.
package canvas

import (
	"image/color"
	"time"
)

// Surface is a 2D raster drawing area sized to its container.
type Surface interface {
	// Size reports the current display dimensions in pixels.
	Size() (width, height int)
	Clear()
	FillCircle(cx, cy, r float64, clr color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
}

// FrameFunc is invoked once per scheduled frame with a monotonic timestamp.
type FrameFunc func(ts time.Duration)

// FrameID identifies a scheduled frame so it can be cancelled.
type FrameID uint64

// Scheduler runs a callback before the next repaint.
type Scheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

// PointerEvents delivers pointer movement in surface-local coordinates and
// notifies when the pointer leaves the surface.
type PointerEvents interface {
	Subscribe(move func(x, y float64), leave func()) (unsubscribe func())
}

// Host bundles everything an artwork mounts onto.
type Host interface {
	Scheduler
	PointerEvents

	// Surface returns nil when no drawing surface is available yet.
	Surface() Surface
}

// TextSurface is implemented by surfaces that can print debug text.
type TextSurface interface {
	DrawText(text string, x, y int)
}
