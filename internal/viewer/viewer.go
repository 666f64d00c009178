// Package viewer is the ebiten game that shows the gallery: an index of the
// catalog and a full-window view of one artwork at a time.
package viewer

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/olivierh59500/generative-gallery/internal/canvas/ebitencanvas"
	"github.com/olivierh59500/generative-gallery/internal/config"
	"github.com/olivierh59500/generative-gallery/internal/gallery"
	"github.com/olivierh59500/generative-gallery/internal/particles"
)

// Page is what the viewer currently shows.
type Page int

const (
	PageIndex Page = iota
	PageArtwork
)

type pauser interface {
	SetPaused(bool)
	Paused() bool
}

type snapshotter interface {
	Snapshot() particles.Snapshot
	Restore(particles.Snapshot) error
}

// Viewer implements ebiten.Game.
type Viewer struct {
	cfg      *config.Config
	catalog  gallery.Catalog
	registry *gallery.Registry
	host     *ebitencanvas.Host
	log      *zap.Logger

	page     Page
	cursor   int
	entry    gallery.Entry
	artwork  gallery.Artwork
	pending  string
	status   string
	hovering bool
}

// New creates a viewer on the index page, or queued to open cfg.Start.
func New(cfg *config.Config, catalog gallery.Catalog, registry *gallery.Registry, log *zap.Logger) *Viewer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Viewer{
		cfg:      cfg,
		catalog:  catalog,
		registry: registry,
		host:     ebitencanvas.New(log.Named("host")),
		log:      log,
		pending:  cfg.Start,
	}
}

// Page returns the page on display.
func (v *Viewer) Page() Page { return v.page }

// Current returns the open catalog entry; Slug is empty on the index.
func (v *Viewer) Current() gallery.Entry { return v.entry }

// Status returns the last transient message shown on the artwork page.
func (v *Viewer) Status() string { return v.status }

// Open unmounts whatever is showing and mounts the artwork for slug. Before
// the first layout the request is queued.
func (v *Viewer) Open(slug string) {
	if v.host.Surface() == nil {
		v.pending = slug
		return
	}
	v.unmount()

	entry, ok := v.catalog.Lookup(slug)
	if !ok {
		entry = gallery.Entry{Slug: slug, Title: slug}
	}
	v.entry = entry
	v.artwork = v.registry.Load(slug)
	v.artwork.Mount(v.host)
	v.page = PageArtwork
	v.status = ""
	if i := indexOf(v.catalog, slug); i >= 0 {
		v.cursor = i
	}
	v.log.Info("Opened artwork", zap.String("slug", slug))
}

// Back returns to the index.
func (v *Viewer) Back() {
	v.unmount()
	v.entry = gallery.Entry{}
	v.page = PageIndex
}

// Next opens the following artwork, if any.
func (v *Viewer) Next() {
	if _, next := v.catalog.Neighbors(v.entry.Slug); next != "" {
		v.Open(next)
	}
}

// Prev opens the preceding artwork, if any.
func (v *Viewer) Prev() {
	if prev, _ := v.catalog.Neighbors(v.entry.Slug); prev != "" {
		v.Open(prev)
	}
}

// MoveCursor moves the index selection by delta, wrapping around.
func (v *Viewer) MoveCursor(delta int) {
	n := len(v.catalog)
	if n == 0 {
		return
	}
	v.cursor = ((v.cursor+delta)%n + n) % n
}

// Select opens the artwork under the index cursor.
func (v *Viewer) Select() {
	if v.cursor < len(v.catalog) {
		v.Open(v.catalog[v.cursor].Slug)
	}
}

// TogglePause pauses or resumes artworks that support it.
func (v *Viewer) TogglePause() {
	if p, ok := v.artwork.(pauser); ok {
		p.SetPaused(!p.Paused())
	}
}

// SaveSnapshot writes the particle field to the configured snapshot file.
func (v *Viewer) SaveSnapshot() error {
	s, ok := v.artwork.(snapshotter)
	if !ok {
		return nil
	}
	if err := particles.SaveSnapshot(v.cfg.Snapshot, s.Snapshot()); err != nil {
		v.fail("save", err)
		return err
	}
	v.status = "Saved " + v.cfg.Snapshot
	v.log.Info("Saved snapshot", zap.String("path", v.cfg.Snapshot))
	return nil
}

// LoadSnapshot restores the particle field from the configured snapshot file.
func (v *Viewer) LoadSnapshot() error {
	s, ok := v.artwork.(snapshotter)
	if !ok {
		return nil
	}
	snap, err := particles.LoadSnapshot(v.cfg.Snapshot)
	if err == nil {
		err = s.Restore(snap)
	}
	if err != nil {
		v.fail("load", err)
		return err
	}
	v.status = "Loaded " + v.cfg.Snapshot
	v.log.Info("Loaded snapshot", zap.String("path", v.cfg.Snapshot))
	return nil
}

func (v *Viewer) fail(op string, err error) {
	v.status = fmt.Sprintf("Snapshot %s failed", op)
	v.log.Error("Snapshot "+op+" failed", zap.String("path", v.cfg.Snapshot), zap.Error(err))
}

func (v *Viewer) unmount() {
	if v.artwork != nil {
		v.artwork.Unmount()
		v.artwork = nil
		v.log.Debug("Closed artwork", zap.String("slug", v.entry.Slug))
	}
}

func indexOf(c gallery.Catalog, slug string) int {
	for i, e := range c {
		if e.Slug == slug {
			return i
		}
	}
	return -1
}

// Update is called each tick by ebiten.
func (v *Viewer) Update() error {
	if v.pending != "" && v.host.Surface() != nil {
		slug := v.pending
		v.pending = ""
		v.Open(slug)
	}

	v.host.Update()
	mx, my := ebiten.CursorPosition()
	w, h := v.host.Size()
	v.hovering = mx >= 0 && my >= 0 && mx < w && my < h

	return v.handleInput()
}

// handleInput processes keyboard input
func (v *Viewer) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	switch v.page {
	case PageIndex:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			return ebiten.Termination
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
			v.MoveCursor(-1)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
			v.MoveCursor(1)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			v.Select()
		}
	case PageArtwork:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			v.Back()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
			v.Prev()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
			v.Next()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			v.TogglePause()
		}
		// errors are already logged and shown as status
		if inpututil.IsKeyJustPressed(ebiten.KeyS) {
			_ = v.SaveSnapshot()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyL) {
			_ = v.LoadSnapshot()
		}
	}
	return nil
}

// Draw is called each frame by ebiten.
func (v *Viewer) Draw(screen *ebiten.Image) {
	switch v.page {
	case PageIndex:
		v.drawIndex(screen)
	case PageArtwork:
		v.host.Draw(screen)
		if v.hovering {
			v.drawPlacard(screen)
		}
	}
}

// Layout returns the screen size
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.host.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
