package page

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/obsidian-guide/internal/content"
)

// Draw composites the frame: particle backdrop, hero, then each content
// section shifted and faded by its reveal transition.
func (p *Page) Draw(screen *ebiten.Image) {
	screen.Fill(colorBg)
	if p.backdrop != nil {
		screen.DrawImage(p.backdrop, nil)
	}
	p.drawHero(screen)
	for _, b := range p.doc.boxes {
		p.drawSection(screen, b)
	}
}

func (p *Page) drawSection(screen *ebiten.Image, b box) {
	tr := p.transitions[b.id]
	if tr == nil || tr.Opacity() <= 0 {
		return
	}
	top := b.top - p.scroll
	if top > float64(p.height) || top+b.height < 0 {
		return
	}

	img := p.sectionImage(b)
	img.Clear()
	p.renderSection(img, b.id)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, top+tr.Offset())
	op.ColorScale.ScaleAlpha(float32(tr.Opacity()))
	screen.DrawImage(img, op)
}

func (p *Page) sectionImage(b box) *ebiten.Image {
	if img, ok := p.sectionImages[b.id]; ok {
		return img
	}
	img := ebiten.NewImage(p.width, int(b.height))
	p.sectionImages[b.id] = img
	return img
}

func (p *Page) renderSection(img *ebiten.Image, id string) {
	switch id {
	case SectionConcepts:
		p.renderCards(img, "Core concepts", p.guide.Concepts)
	case SectionFeatures:
		p.renderCards(img, "Features", p.guide.Features)
	case SectionHotkeys:
		p.renderHotkeys(img)
	case SectionPlugins:
		p.renderCards(img, "Community plugins", p.guide.Plugins)
	case SectionThemes:
		p.renderThemes(img)
	case SectionClosing:
		p.renderClosing(img)
	}
}

// contentSpan returns the left edge and width of the centered content
// column for the current window size.
func (p *Page) contentSpan() (left, width float64) {
	width = float64(p.width) - 2*contentMargin
	if width > 880 {
		width = 880
	}
	if width < 320 {
		width = float64(p.width) - 32
	}
	return (float64(p.width) - width) / 2, width
}

func (p *Page) drawHero(screen *ebiten.Image) {
	hero := p.guide.Hero
	vh := float64(p.height)
	cy := -p.scroll

	scale := 6.0
	tw := textWidth(hero.Title, scale)
	p.drawText(screen, hero.Title, (float64(p.width)-tw)/2, cy+vh*0.26, scale, colorText, 1)

	for i, line := range wrap(hero.Tagline, 64) {
		lw := textWidth(line, 1.5)
		p.drawText(screen, line, (float64(p.width)-lw)/2, cy+vh*0.26+float64(6*lineH)+float64(i)*lineH*1.5+16, 1.5, colorMuted, 1)
	}

	p.drawButton(screen, p.heroButton(), hero.CTA, p.heroHover)

	// Scroll hint bobs gently at the bottom of the hero.
	hint := hero.Hint
	if hint != "" {
		bob := math.Sin(p.elapsed*2) * 4
		hw := textWidth(hint, 1)
		p.drawText(screen, hint, (float64(p.width)-hw)/2, cy+vh-40+bob, 1, colorMuted, 0.8)
	}
}

func (p *Page) drawButton(dst *ebiten.Image, r rect, label string, hovered bool) {
	bg := colorAccent
	if p.buttonPressed && hovered {
		bg = color.RGBA{0x6d, 0x53, 0xc9, 0xff}
	} else if hovered {
		bg = color.RGBA{0x9d, 0x82, 0xf5, 0xff}
	}
	vector.DrawFilledRect(dst, float32(r.x), float32(r.y), float32(r.w), float32(r.h), bg, true)
	vector.StrokeRect(dst, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 1, colorBorder, true)

	lw := textWidth(label, 1.5)
	p.drawText(dst, label, r.x+(r.w-lw)/2, r.y+(r.h-lineH*1.5)/2, 1.5, colorText, 1)
}

func (p *Page) renderHeader(img *ebiten.Image, title string) {
	left, _ := p.contentSpan()
	p.drawText(img, title, left, 8, 2, colorText, 1)
	vector.StrokeLine(img, float32(left), float32(headerHeight-10), float32(left+48), float32(headerHeight-10), 2, colorAccent, true)
}

func (p *Page) renderCards(img *ebiten.Image, title string, entries []content.Entry) {
	p.renderHeader(img, title)
	left, width := p.contentSpan()
	cols := cardColumns(float64(p.width))
	cw := (width - float64(cols-1)*cardGap) / float64(cols)

	for i, e := range entries {
		col := i % cols
		row := i / cols
		x := left + float64(col)*(cw+cardGap)
		y := float64(headerHeight) + float64(row)*(cardHeight+cardGap)
		p.renderCard(img, x, y, cw, e.Label, e.Description, nil)
	}
}

func (p *Page) renderThemes(img *ebiten.Image) {
	p.renderHeader(img, "Themes")
	left, width := p.contentSpan()
	cols := cardColumns(float64(p.width))
	cw := (width - float64(cols-1)*cardGap) / float64(cols)

	for i, th := range p.guide.Themes {
		col := i % cols
		row := i / cols
		x := left + float64(col)*(cw+cardGap)
		y := float64(headerHeight) + float64(row)*(cardHeight+cardGap)
		p.renderCard(img, x, y, cw, th.Label, th.Description, th.Swatches())
	}
}

func (p *Page) renderCard(img *ebiten.Image, x, y, w float64, label, desc string, swatches []colorful.Color) {
	vector.DrawFilledRect(img, float32(x), float32(y), float32(w), cardHeight, colorPanel, true)
	vector.StrokeRect(img, float32(x), float32(y), float32(w), cardHeight, 1, colorBorder, true)

	p.drawText(img, label, x+14, y+10, 1.5, colorAccent, 1)
	maxChars := int((w - 28) / charW)
	for i, line := range wrap(desc, maxChars) {
		if i >= 3 {
			break
		}
		p.drawText(img, line, x+14, y+38+float64(i*lineH), 1, colorMuted, 1)
	}

	// Theme cards get their swatch dots in the top-right corner.
	for i, c := range swatches {
		r, g, b := c.RGB255()
		cx := x + w - 18 - float64(i)*22
		vector.DrawFilledCircle(img, float32(cx), float32(y+18), 8, color.RGBA{r, g, b, 0xff}, true)
		vector.StrokeCircle(img, float32(cx), float32(y+18), 8, 1, colorBorder, true)
	}
}

func (p *Page) renderHotkeys(img *ebiten.Image) {
	p.renderHeader(img, "Hotkeys")
	left, width := p.contentSpan()
	keyCol := left + 14
	descCol := left + width*0.4

	y := float64(headerHeight)
	p.drawText(img, "Shortcut", keyCol, y+4, 1, colorMuted, 1)
	p.drawText(img, "Action", descCol, y+4, 1, colorMuted, 1)
	y += tableRowH

	for i, hk := range p.guide.Hotkeys {
		if i%2 == 0 {
			vector.DrawFilledRect(img, float32(left), float32(y), float32(width), tableRowH, colorPanel, false)
		}
		p.drawText(img, hk.Keys, keyCol, y+5, 1, colorAccent, 1)
		p.drawText(img, hk.Description, descCol, y+5, 1, colorText, 1)
		y += tableRowH
	}
}

func (p *Page) renderClosing(img *ebiten.Image) {
	closing := p.guide.Closing
	w := float64(p.width)

	tw := textWidth(closing.Title, 3)
	p.drawText(img, closing.Title, (w-tw)/2, 16, 3, colorText, 1)

	for i, line := range wrap(closing.Tagline, 72) {
		lw := textWidth(line, 1)
		p.drawText(img, line, (w-lw)/2, 76+float64(i*lineH), 1, colorMuted, 1)
	}

	// The button is drawn into the section image in local coordinates; the
	// hit test in page.go uses the matching document position.
	const bw, bh = 220, 48
	r := rect{x: (w - bw) / 2, y: closingHeight - bh - 24, w: bw, h: bh}
	p.drawButton(img, r, closing.CTA, p.closingHover)
}
