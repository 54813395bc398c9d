// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package color

import (
	"math"

	"github.com/chromalab/chromatic/illuminant"
	"github.com/chromalab/chromatic/internal/numutil"
)

// Luv is a CIE L*u*v* value. The teacher has no Luv type; this follows
// the CIE 15:2004 formulas directly (spec section 4.5).
type Luv struct {
	L, U, V, Alpha float64
	Whitepoint     illuminant.Meta
}

func uvPrime(x, y, z float64) (up, vp float64) {
	denom := x + 15*y + 3*z
	if denom == 0 {
		return 0, 0
	}
	return 4 * x / denom, 9 * y / denom
}

// ToLuv converts XYZ to L*u*v* using x's own whitepoint as reference
// white.
func (x Xyz) ToLuv() (Luv, error) {
	wp, err := illuminant.GetWhitepoint(x.Whitepoint)
	if err != nil {
		return Luv{}, err
	}
	upRef, vpRef := uvPrime(wp[0], wp[1], wp[2])
	up, vp := uvPrime(x.X, x.Y, x.Z)

	yr := x.Y / wp[1]
	var l float64
	if yr > labEpsilon {
		l = 116*math.Cbrt(yr) - 16
	} else {
		l = labKappa * yr
	}

	u := 13 * l * (up - upRef)
	v := 13 * l * (vp - vpRef)
	return Luv{L: l, U: u, V: v, Alpha: x.Alpha, Whitepoint: x.Whitepoint}, nil
}

// ToXyz converts L*u*v* back to XYZ using c's own whitepoint.
func (c Luv) ToXyz() (Xyz, error) {
	wp, err := illuminant.GetWhitepoint(c.Whitepoint)
	if err != nil {
		return Xyz{}, err
	}
	if c.L == 0 {
		return Xyz{X: 0, Y: 0, Z: 0, Alpha: c.Alpha, Whitepoint: c.Whitepoint}, nil
	}
	upRef, vpRef := uvPrime(wp[0], wp[1], wp[2])

	up := c.U/(13*c.L) + upRef
	vp := c.V/(13*c.L) + vpRef

	var y float64
	if c.L > labKappa*labEpsilon {
		y = math.Pow((c.L+16)/116, 3)
	} else {
		y = c.L / labKappa
	}
	y *= wp[1]

	if vp == 0 {
		return Xyz{X: 0, Y: y, Z: 0, Alpha: c.Alpha, Whitepoint: c.Whitepoint}, nil
	}
	x := y * 9 * up / (4 * vp)
	z := y * (12 - 3*up - 20*vp) / (4 * vp)
	return Xyz{X: x, Y: y, Z: z, Alpha: c.Alpha, Whitepoint: c.Whitepoint}, nil
}

// ToLuv is a convenience that converts c to XYZ (in its own space) and
// then to Luv.
func (c Rgb) ToLuv() (Luv, error) {
	xyz, err := c.ToXyz()
	if err != nil {
		return Luv{}, err
	}
	return xyz.ToLuv()
}

// ToRgb converts Luv back to Rgb in the given working space (empty
// means sRGB).
func (c Luv) ToRgb(spaceName string) (Rgb, error) {
	xyz, err := c.ToXyz()
	if err != nil {
		return Rgb{}, err
	}
	return xyz.ToRgb(spaceName)
}

// LCHuv is the cylindrical (polar) form of Luv.
type LCHuv struct {
	L, C, H, Alpha float64
	Whitepoint     illuminant.Meta
}

// ToLCHuv converts Luv to its polar form.
func (c Luv) ToLCHuv() LCHuv {
	chroma := math.Hypot(c.U, c.V)
	hue := numutil.WrapDeg(numutil.RadToDeg(math.Atan2(c.V, c.U)))
	return LCHuv{L: c.L, C: chroma, H: hue, Alpha: c.Alpha, Whitepoint: c.Whitepoint}
}

// ToLuv converts LCHuv back to Cartesian Luv.
func (c LCHuv) ToLuv() Luv {
	u, v := numutil.PolarToCart(c.C, c.H)
	return Luv{L: c.L, U: u, V: v, Alpha: c.Alpha, Whitepoint: c.Whitepoint}
}

// ToLCHuv is a convenience that converts c through Luv.
func (c Rgb) ToLCHuv() (LCHuv, error) {
	luv, err := c.ToLuv()
	if err != nil {
		return LCHuv{}, err
	}
	return luv.ToLCHuv(), nil
}

// ToRgb converts LCHuv back to Rgb in the given working space (empty
// means sRGB).
func (c LCHuv) ToRgb(spaceName string) (Rgb, error) {
	return c.ToLuv().ToRgb(spaceName)
}
