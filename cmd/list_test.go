package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/olivierh59500/generative-gallery/internal/gallery"
)

func TestPrintCatalog(t *testing.T) {
	var buf bytes.Buffer
	printCatalog(&buf, gallery.DefaultCatalog())

	out := buf.String()
	for _, e := range gallery.DefaultCatalog() {
		assert.Contains(t, out, e.Title)
		assert.Contains(t, out, e.Slug)
		assert.Contains(t, out, e.Description)
	}
}

func TestPrintEmptyCatalog(t *testing.T) {
	var buf bytes.Buffer
	printCatalog(&buf, nil)
	assert.Equal(t, "No artworks\n", buf.String())
}
