// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package color

import "github.com/chromalab/chromatic/internal/numutil"

// Hsl is a color in hue/saturation/lightness space. H is in [0, 360); S
// and L are in [0, 1].
type Hsl struct {
	H, S, L, Alpha float64
}

// FromHSL builds an Rgb from hue in degrees and saturation/lightness
// given as percentages (0-100), matching the picker API's fromHsl(h,
// sPct, lPct, alpha) (spec section 6).
func FromHSL(h, sPct, lPct, a float64) (Rgb, error) {
	return Hsl{H: h, S: sPct / 100, L: lPct / 100, Alpha: a}.ToRgb("")
}

// ToHsl converts c to HSL.
func (c Rgb) ToHsl() Hsl {
	max := maxOf3(c.R, c.G, c.B)
	min := minOf3(c.R, c.G, c.B)
	delta := max - min

	l := (max + min) / 2
	s := 0.0
	if delta != 0 {
		s = delta / (1 - absFloat(2*l-1))
	}
	h := roundHueDeg(hueFromRGB(c.R, c.G, c.B, max, delta))
	return Hsl{H: h, S: s, L: l, Alpha: c.Alpha}
}

// ToRgb converts HSL back to Rgb in the given working space (empty
// means sRGB).
func (h Hsl) ToRgb(spaceName string) (Rgb, error) {
	c := (1 - absFloat(2*h.L-1)) * h.S
	hh := numutil.WrapDeg(h.H) / 60
	x := c * (1 - absFloat(modFloat(hh, 2)-1))
	m := h.L - c/2

	r, g, b := hsvSector(hh, c, x)
	return NewInSpace(r+m, g+m, b+m, h.Alpha, spaceName)
}

// ToCss formats h as a CSS hsla(...) string.
func (h Hsl) ToCss() string {
	return hslaString(h)
}
