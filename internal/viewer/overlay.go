package viewer

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	lineHeight = 16
	margin     = 16
)

// IndexLines is the text of the index page, one entry per line, with the
// cursor marked.
func (v *Viewer) IndexLines() []string {
	lines := []string{v.cfg.Window.Title, ""}
	for i, e := range v.catalog {
		mark := "  "
		if i == v.cursor {
			mark = "> "
		}
		lines = append(lines, mark+e.Title, "    "+e.Description)
	}
	return append(lines, "", "Up/Down select  Enter open  F fullscreen  Esc quit")
}

// PlacardLines is the overlay text of the artwork page.
func (v *Viewer) PlacardLines() []string {
	prev, next := v.catalog.Neighbors(v.entry.Slug)
	var nav []string
	nav = append(nav, "Esc gallery")
	if prev != "" {
		nav = append(nav, "< prev")
	}
	if next != "" {
		nav = append(nav, "next >")
	}
	nav = append(nav, "F fullscreen")
	if _, ok := v.artwork.(pauser); ok {
		nav = append(nav, "Space pause")
	}
	if _, ok := v.artwork.(snapshotter); ok {
		nav = append(nav, "S/L snapshot")
	}

	lines := []string{v.entry.Title}
	if v.entry.Description != "" {
		lines = append(lines, v.entry.Description)
	}
	if v.status != "" {
		lines = append(lines, v.status)
	}
	return append(lines, strings.Join(nav, "  "))
}

func (v *Viewer) drawIndex(screen *ebiten.Image) {
	for i, l := range v.IndexLines() {
		ebitenutil.DebugPrintAt(screen, l, margin, margin+i*lineHeight)
	}
}

func (v *Viewer) drawPlacard(screen *ebiten.Image) {
	lines := v.PlacardLines()
	h := screen.Bounds().Dy()
	top := h - margin - len(lines)*lineHeight
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, margin, top+i*lineHeight)
	}
	if p, ok := v.artwork.(pauser); ok && p.Paused() {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("[paused] %s", v.entry.Slug), margin, margin)
	}
}
