// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package color

// Hwb is a color in hue/whiteness/blackness space. H is in [0, 360); W
// and B are in [0, 1]. W + B >= 1 collapses to a gray of value
// w/(w+b), per spec section 4.5.
type Hwb struct {
	H, W, B, Alpha float64
}

// ToHwb converts c to HWB.
func (c Rgb) ToHwb() Hwb {
	max := maxOf3(c.R, c.G, c.B)
	min := minOf3(c.R, c.G, c.B)
	delta := max - min
	h := roundHueDeg(hueFromRGB(c.R, c.G, c.B, max, delta))
	return Hwb{H: h, W: min, B: 1 - max, Alpha: c.Alpha}
}

// ToRgb converts HWB back to Rgb in the given working space (empty
// means sRGB). This follows the corrected formulation C' = (1-w-b)*C+w
// noted in spec section 9 (the uncorrected source applies whiteness
// twice in the non-gray branch).
func (h Hwb) ToRgb(spaceName string) (Rgb, error) {
	w, b := h.W, h.B
	if w+b >= 1 {
		gray := w / (w + b)
		return NewInSpace(gray, gray, gray, h.Alpha, spaceName)
	}

	hsvColor := Hsv{H: h.H, S: 1, V: 1}
	base, err := hsvColor.ToRgb(spaceName)
	if err != nil {
		return Rgb{}, err
	}
	scale := 1 - w - b
	return NewInSpace(base.R*scale+w, base.G*scale+w, base.B*scale+w, h.Alpha, spaceName)
}
