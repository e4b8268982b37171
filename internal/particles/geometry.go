package particles

import "math"

// LinkOpacity returns the opacity of the connecting line between two points
// and whether a line should be drawn at all. Opacity falls off linearly:
// 1 at distance 0, 0 at LinkDistance, nothing beyond.
func LinkOpacity(x1, y1, x2, y2 float64) (float64, bool) {
	d := math.Hypot(x2-x1, y2-y1)
	if d >= LinkDistance {
		return 0, false
	}
	return 1 - d/LinkDistance, true
}
