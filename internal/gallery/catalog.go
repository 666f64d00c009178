// Package gallery knows which artworks exist, in which order they are shown
// and how to build each of them.
package gallery

import "github.com/olivierh59500/generative-gallery/internal/canvas"

// Artwork is a self-contained animation that can be mounted on a host.
type Artwork interface {
	Mount(h canvas.Host)
	Unmount()
}

// Entry describes one artwork in the catalog.
type Entry struct {
	Slug        string
	Title       string
	Description string
}

// Catalog is the ordered list of artworks. The order drives prev/next.
type Catalog []Entry

// DefaultCatalog lists the built-in artworks.
func DefaultCatalog() Catalog {
	return Catalog{
		{
			Slug:        "spinning-cubes",
			Title:       "Spinning Cubes",
			Description: "A sphere kneaded by drifting fractal noise, slowly turning.",
		},
		{
			Slug:        "particle-flow",
			Title:       "Particle Flow",
			Description: "Generative particles flowing across the screen.",
		},
		{
			Slug:        "moire-pattern",
			Title:       "Moire Pattern",
			Description: "Two grids of lines rotating against each other.",
		},
	}
}

func (c Catalog) index(slug string) int {
	for i, e := range c {
		if e.Slug == slug {
			return i
		}
	}
	return -1
}

// Lookup finds the entry for slug.
func (c Catalog) Lookup(slug string) (Entry, bool) {
	if i := c.index(slug); i >= 0 {
		return c[i], true
	}
	return Entry{}, false
}

// Neighbors returns the slugs before and after slug; either is empty at the
// ends of the catalog or when slug is unknown.
func (c Catalog) Neighbors(slug string) (prev, next string) {
	i := c.index(slug)
	if i < 0 {
		return "", ""
	}
	if i > 0 {
		prev = c[i-1].Slug
	}
	if i < len(c)-1 {
		next = c[i+1].Slug
	}
	return prev, next
}
