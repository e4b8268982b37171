package page

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleAlphaPremultiplies(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}

	half := scaleAlpha(c, 0.5)
	assert.Equal(t, color.RGBA{100, 50, 25, 127}, half)

	assert.Equal(t, color.RGBA{0, 0, 0, 0}, scaleAlpha(c, 0))
	assert.Equal(t, c, scaleAlpha(c, 1))

	// Out-of-range opacities clamp instead of wrapping.
	assert.Equal(t, c, scaleAlpha(c, 2))
	assert.Equal(t, color.RGBA{0, 0, 0, 0}, scaleAlpha(c, -1))
}

func TestCanvasUnreadyWithoutTarget(t *testing.T) {
	c := &screenCanvas{}
	assert.False(t, c.Ready())

	w, h := c.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)

	// Draw calls on an unready canvas are no-ops, not panics.
	c.Fade(0.1)
	c.Dot(1, 2, 3)
	c.Line(0, 0, 1, 1, 0.5)
}
