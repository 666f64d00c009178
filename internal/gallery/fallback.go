package gallery

import (
	"fmt"
	"time"

	"github.com/olivierh59500/generative-gallery/internal/canvas"
)

// Fallback stands in for an artwork that could not be loaded.
type Fallback struct {
	Slug string

	host    canvas.Host
	surface canvas.Surface
	frame   canvas.FrameID
}

func NewFallback(slug string) *Fallback {
	return &Fallback{Slug: slug}
}

// Message is the text shown in place of the artwork.
func (f *Fallback) Message() string {
	return fmt.Sprintf("Error loading artwork: %s", f.Slug)
}

func (f *Fallback) Mount(h canvas.Host) {
	s := h.Surface()
	if s == nil {
		return
	}
	f.host, f.surface = h, s
	f.frame = h.RequestFrame(f.tick)
}

func (f *Fallback) Unmount() {
	if f.host == nil {
		return
	}
	f.host.CancelFrame(f.frame)
	f.host, f.surface = nil, nil
}

func (f *Fallback) tick(time.Duration) {
	if f.host == nil {
		return
	}
	s := f.surface
	s.Clear()
	if ts, ok := s.(canvas.TextSurface); ok {
		w, h := s.Size()
		msg := f.Message()
		// debug font glyphs are 6x16
		ts.DrawText(msg, (w-6*len(msg))/2, h/2-8)
	}
	f.frame = f.host.RequestFrame(f.tick)
}
