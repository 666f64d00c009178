// Package palette converts CSS style HSL(A) colours to image/color values.
package palette

import (
	"image/color"
	"math"
)

// HSLA returns the colour for hue h in degrees, saturation and lightness in
// [0,1] and alpha in [0,1]. The result is not alpha-premultiplied.
func HSLA(h, s, l, a float64) color.NRGBA {
	r, g, b := hslToRGB(h, s, l)
	return color.NRGBA{R: channel(r), G: channel(g), B: channel(b), A: channel(a)}
}

// HSL is HSLA with full opacity.
func HSL(h, s, l float64) color.NRGBA {
	return HSLA(h, s, l, 1)
}

// Scale multiplies the RGB channels by k, leaving alpha untouched.
func Scale(c color.NRGBA, k float64) color.NRGBA {
	return color.NRGBA{
		R: channel(float64(c.R) / 255 * k),
		G: channel(float64(c.G) / 255 * k),
		B: channel(float64(c.B) / 255 * k),
		A: c.A,
	}
}

func hslToRGB(h, s, l float64) (float64, float64, float64) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
