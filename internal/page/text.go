package page

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// textImage renders a string once with the debug font and caches it, so it
// can be tinted and scaled on every draw without re-rasterizing.
func (p *Page) textImage(s string) *ebiten.Image {
	if img, ok := p.textCache[s]; ok {
		return img
	}
	w := len(s) * charW
	if w < 1 {
		w = 1
	}
	img := ebiten.NewImage(w, lineH)
	ebitenutil.DebugPrintAt(img, s, 0, 0)
	p.textCache[s] = img
	return img
}

// drawText draws a tinted, scaled line of text. Alpha multiplies on top of
// the tint so revealed sections can fade their text in.
func (p *Page) drawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.RGBA, alpha float64) {
	if s == "" || alpha <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(p.textImage(s), op)
}

// textWidth approximates rendered width the same way the rest of the page
// does: a fixed advance per character.
func textWidth(s string, scale float64) float64 {
	return float64(len(s)*charW) * scale
}

// wrap breaks a string into lines of at most maxChars characters on word
// boundaries. Words longer than the limit get a line of their own.
func wrap(s string, maxChars int) []string {
	if maxChars <= 0 {
		return []string{s}
	}
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(s) {
		switch {
		case cur.Len() == 0:
			cur.WriteString(word)
		case cur.Len()+1+len(word) <= maxChars:
			cur.WriteByte(' ')
			cur.WriteString(word)
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(word)
		}
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	if lines == nil {
		lines = []string{""}
	}
	return lines
}
