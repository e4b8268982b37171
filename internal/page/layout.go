package page

import (
	"math"

	"github.com/iburimskiy/obsidian-guide/internal/content"
)

// Section identifiers, used as keys by the reveal observer.
const (
	SectionConcepts = "concepts"
	SectionFeatures = "features"
	SectionHotkeys  = "hotkeys"
	SectionPlugins  = "plugins"
	SectionThemes   = "themes"
	SectionClosing  = "closing"
)

const (
	charW = 8
	lineH = 16

	contentMargin = 80
	headerHeight  = 56
	cardHeight    = 96
	cardGap       = 16
	tableRowH     = 26
	sectionGap    = 64
	closingHeight = 200
)

// box is one laid-out section in document coordinates.
type box struct {
	id     string
	top    float64
	height float64
}

// document is the vertical layout of the whole page for one viewport size.
type document struct {
	width  float64
	height float64
	boxes  []box
}

// layoutDocument stacks the hero and every content section for the given
// viewport. The hero always fills exactly one viewport height so the first
// content section starts a scroll away.
func layoutDocument(g *content.Guide, viewportW, viewportH float64) document {
	doc := document{width: viewportW}
	y := viewportH // hero

	add := func(id string, h float64) {
		doc.boxes = append(doc.boxes, box{id: id, top: y, height: h})
		y += h + sectionGap
	}

	cols := cardColumns(viewportW)
	add(SectionConcepts, cardsHeight(len(g.Concepts), cols))
	add(SectionFeatures, cardsHeight(len(g.Features), cols))
	add(SectionHotkeys, headerHeight+float64(len(g.Hotkeys)+1)*tableRowH)
	add(SectionPlugins, cardsHeight(len(g.Plugins), cols))
	add(SectionThemes, cardsHeight(len(g.Themes), cols))
	add(SectionClosing, closingHeight)

	doc.height = y
	return doc
}

// cardColumns picks the card grid width: two columns normally, one when the
// window is squeezed.
func cardColumns(viewportW float64) int {
	if viewportW < 720 {
		return 1
	}
	return 2
}

func cardsHeight(n, cols int) float64 {
	rows := (n + cols - 1) / cols
	return headerHeight + float64(rows)*(cardHeight+cardGap)
}

// maxScroll is the furthest the viewport can scroll down.
func (d document) maxScroll(viewportH float64) float64 {
	m := d.height - viewportH
	if m < 0 {
		return 0
	}
	return m
}

// find returns the box for a section ID.
func (d document) find(id string) (box, bool) {
	for _, b := range d.boxes {
		if b.id == id {
			return b, true
		}
	}
	return box{}, false
}

// visibleFraction is how much of a section is inside the viewport at the
// given scroll offset, as a fraction of the section's own height.
func visibleFraction(b box, scroll, viewportH float64) float64 {
	top := math.Max(b.top, scroll)
	bottom := math.Min(b.top+b.height, scroll+viewportH)
	if bottom <= top || b.height <= 0 {
		return 0
	}
	return (bottom - top) / b.height
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
