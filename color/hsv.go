// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package color

import "github.com/chromalab/chromatic/internal/numutil"

// Hsv is a color in hue/saturation/value space. H is in [0, 360); S and
// V are in [0, 1].
type Hsv struct {
	H, S, V, Alpha float64
}

// FromHSV builds an Rgb from hue in degrees and saturation/value given
// as percentages (0-100), matching the picker API's fromHsv(h, sPct,
// vPct, alpha) (spec section 6).
func FromHSV(h, sPct, vPct, a float64) (Rgb, error) {
	return Hsv{H: h, S: sPct / 100, V: vPct / 100, Alpha: a}.ToRgb("")
}

// ToHsv converts c to HSV.
func (c Rgb) ToHsv() Hsv {
	max := maxOf3(c.R, c.G, c.B)
	min := minOf3(c.R, c.G, c.B)
	delta := max - min

	v := max
	s := 0.0
	if max > 0 {
		s = delta / max
	}
	h := roundHueDeg(hueFromRGB(c.R, c.G, c.B, max, delta))
	return Hsv{H: h, S: s, V: v, Alpha: c.Alpha}
}

// ToRgb converts HSV back to Rgb in the given working space (empty
// means sRGB).
func (h Hsv) ToRgb(spaceName string) (Rgb, error) {
	hh := numutil.WrapDeg(h.H) / 60
	c := h.V * h.S
	x := c * (1 - absFloat(modFloat(hh, 2)-1))
	m := h.V - c

	r, g, b := hsvSector(hh, c, x)
	return NewInSpace(r+m, g+m, b+m, h.Alpha, spaceName)
}

func hsvSector(hh, c, x float64) (r, g, b float64) {
	switch {
	case hh < 1:
		return c, x, 0
	case hh < 2:
		return x, c, 0
	case hh < 3:
		return 0, c, x
	case hh < 4:
		return 0, x, c
	case hh < 5:
		return x, 0, c
	default:
		return c, 0, x
	}
}

// hueFromRGB is shared by HSV, HSL, and HWB: all three use the same
// piecewise hue formula over max/min/delta, differing only in how
// saturation and the "value" axis are defined. The raw, unrounded
// degree is returned; HSV/HSL/HWB round it on their own output (spec
// section 8's integer-hue invariant names only those three). HSI does
// not use it: ToHsi computes the geometric HSI hue that its
// trigonometric reconstruction inverts.
func hueFromRGB(r, g, b, max, delta float64) float64 {
	if delta == 0 {
		return 0
	}
	var h float64
	switch max {
	case r:
		h = modFloat((g-b)/delta, 6)
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	h *= 60
	return numutil.WrapDeg(h)
}

// roundHueDeg rounds a hue in degrees to the nearest integer degree,
// per spec section 8's invariant for HSV/HSL/HWB.
func roundHueDeg(h float64) float64 {
	return numutil.WrapDeg(numutil.RoundFloat(h, 0))
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func modFloat(v, m float64) float64 {
	r := v
	for r < 0 {
		r += m
	}
	for r >= m {
		r -= m
	}
	return r
}
