// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package color

import (
	"math"

	"github.com/chromalab/chromatic/internal/numutil"
)

// Hsi is a color in hue/saturation/intensity space. H is in [0, 360); S
// and I are in [0, 1].
type Hsi struct {
	H, S, I, Alpha float64
}

// ToHsi converts c to HSI.
func (c Rgb) ToHsi() Hsi {
	max := maxOf3(c.R, c.G, c.B)
	min := minOf3(c.R, c.G, c.B)
	delta := max - min

	i := (c.R + c.G + c.B) / 3
	s := 0.0
	if i > 0 {
		s = 1 - min/i
	}
	// Geometric HSI hue, the angle ToRgb's trigonometric reconstruction
	// inverts.
	h := 0.0
	if delta != 0 {
		num := ((c.R - c.G) + (c.R - c.B)) / 2
		den := math.Sqrt((c.R-c.G)*(c.R-c.G) + (c.R-c.B)*(c.G-c.B))
		h = numutil.RadToDeg(math.Acos(numutil.Clamp(num/den, -1, 1)))
		if c.B > c.G {
			h = 360 - h
		}
	}
	return Hsi{H: h, S: s, I: i, Alpha: c.Alpha}
}

// ToRgb converts HSI back to Rgb in the given working space (empty
// means sRGB), using the standard piecewise HSI->RGB reconstruction.
func (h Hsi) ToRgb(spaceName string) (Rgb, error) {
	hh := numutil.WrapDeg(h.H)
	hRad := numutil.DegToRad(hh)

	const deg60 = math.Pi / 3

	var r, g, b float64
	switch {
	case hh < 120:
		r = h.I * (1 + h.S*math.Cos(hRad)/math.Cos(deg60-hRad))
		b = h.I * (1 - h.S)
		g = 3*h.I - (r + b)
	case hh < 240:
		hRad2 := hRad - 2*deg60
		g = h.I * (1 + h.S*math.Cos(hRad2)/math.Cos(deg60-hRad2))
		r = h.I * (1 - h.S)
		b = 3*h.I - (r + g)
	default:
		hRad3 := hRad - 4*deg60
		b = h.I * (1 + h.S*math.Cos(hRad3)/math.Cos(deg60-hRad3))
		g = h.I * (1 - h.S)
		r = 3*h.I - (g + b)
	}
	return NewInSpace(r, g, b, h.Alpha, spaceName)
}
