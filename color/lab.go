// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package color

import (
	"math"

	"github.com/chromalab/chromatic/illuminant"
	"github.com/chromalab/chromatic/internal/numutil"
)

// CIE 2004 constants shared by the Lab and Luv conversions, grounded on
// _teacher_ref/cie_top/lab.go's LABCompress/LABUncompress (there fixed
// to D65; generalized here to an explicit per-instance whitepoint).
const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

func labCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func labUncompress(ft float64) float64 {
	ft3 := ft * ft * ft
	if ft3 > labEpsilon {
		return ft3
	}
	return (116*ft - 16) / labKappa
}

// Lab is a CIE L*a*b* value. L is in [0, >=100] (may exceed 100 for
// HDR); a, b are roughly [-128, 127].
type Lab struct {
	L, A, B, Alpha float64
	Whitepoint     illuminant.Meta
}

// ToLab converts XYZ to L*a*b* using x's own whitepoint as the
// reference white.
func (x Xyz) ToLab() (Lab, error) {
	wp, err := illuminant.GetWhitepoint(x.Whitepoint)
	if err != nil {
		return Lab{}, err
	}
	fx := labCompress(x.X / wp[0])
	fy := labCompress(x.Y / wp[1])
	fz := labCompress(x.Z / wp[2])

	l := 116*fy - 16
	a := 500 * (fx - fy)
	b := 200 * (fy - fz)
	return Lab{L: l, A: a, B: b, Alpha: x.Alpha, Whitepoint: x.Whitepoint}, nil
}

// ToXyz converts L*a*b* back to XYZ using c's own whitepoint.
func (c Lab) ToXyz() (Xyz, error) {
	wp, err := illuminant.GetWhitepoint(c.Whitepoint)
	if err != nil {
		return Xyz{}, err
	}
	fy := (c.L + 16) / 116
	fx := c.A/500 + fy
	fz := fy - c.B/200

	x := labUncompress(fx) * wp[0]
	y := labUncompress(fy) * wp[1]
	z := labUncompress(fz) * wp[2]
	return Xyz{X: x, Y: y, Z: z, Alpha: c.Alpha, Whitepoint: c.Whitepoint}, nil
}

// ToLab is a convenience that converts c to XYZ (in its own space) and
// then to Lab.
func (c Rgb) ToLab() (Lab, error) {
	xyz, err := c.ToXyz()
	if err != nil {
		return Lab{}, err
	}
	return xyz.ToLab()
}

// ToRgb converts Lab back to Rgb in the given working space (empty
// means sRGB).
func (c Lab) ToRgb(spaceName string) (Rgb, error) {
	xyz, err := c.ToXyz()
	if err != nil {
		return Rgb{}, err
	}
	return xyz.ToRgb(spaceName)
}

// LCHab is the cylindrical (polar) form of Lab: C is chroma (>= 0), H is
// hue in degrees, wrapped into [0, 360).
type LCHab struct {
	L, C, H, Alpha float64
	Whitepoint     illuminant.Meta
}

// ToLCHab converts Lab to its polar form.
func (c Lab) ToLCHab() LCHab {
	chroma := math.Hypot(c.A, c.B)
	hue := numutil.WrapDeg(numutil.RadToDeg(math.Atan2(c.B, c.A)))
	return LCHab{L: c.L, C: chroma, H: hue, Alpha: c.Alpha, Whitepoint: c.Whitepoint}
}

// ToLab converts LCHab back to Cartesian Lab.
func (c LCHab) ToLab() Lab {
	a, b := numutil.PolarToCart(c.C, c.H)
	return Lab{L: c.L, A: a, B: b, Alpha: c.Alpha, Whitepoint: c.Whitepoint}
}

// ToLCHab is a convenience that converts c through Lab.
func (c Rgb) ToLCHab() (LCHab, error) {
	lab, err := c.ToLab()
	if err != nil {
		return LCHab{}, err
	}
	return lab.ToLCHab(), nil
}

// ToRgb converts LCHab back to Rgb in the given working space (empty
// means sRGB).
func (c LCHab) ToRgb(spaceName string) (Rgb, error) {
	return c.ToLab().ToRgb(spaceName)
}
