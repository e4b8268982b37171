package page

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenCanvas adapts an offscreen ebiten image to host.Canvas. The field
// accumulates trails on it frame over frame, so the target has to persist
// across draws; the page blits it under the content every Draw.
type screenCanvas struct {
	target *ebiten.Image
	bg     color.RGBA
	accent color.RGBA
}

func (c *screenCanvas) Ready() bool { return c.target != nil }

func (c *screenCanvas) Size() (float64, float64) {
	if c.target == nil {
		return 0, 0
	}
	b := c.target.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *screenCanvas) Fade(alpha float64) {
	if c.target == nil {
		return
	}
	w, h := c.Size()
	vector.DrawFilledRect(c.target, 0, 0, float32(w), float32(h), scaleAlpha(c.bg, alpha), false)
}

func (c *screenCanvas) Dot(x, y, r float64) {
	if c.target == nil {
		return
	}
	vector.DrawFilledCircle(c.target, float32(x), float32(y), float32(r), c.accent, true)
}

func (c *screenCanvas) Line(x1, y1, x2, y2, opacity float64) {
	if c.target == nil {
		return
	}
	vector.StrokeLine(c.target, float32(x1), float32(y1), float32(x2), float32(y2), 1, scaleAlpha(c.accent, opacity), true)
}

// scaleAlpha premultiplies a color down to the given opacity, which is what
// ebiten expects from color values.
func scaleAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(255 * alpha),
	}
}
