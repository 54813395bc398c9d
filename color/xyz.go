// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package color

import (
	"github.com/chromalab/chromatic/illuminant"
	"github.com/chromalab/chromatic/matrix"
	"github.com/chromalab/chromatic/space"
)

// Xyz is a CIE XYZ tristimulus value, normalized so its reference white
// has Y = 1.
type Xyz struct {
	X, Y, Z, Alpha float64
	Whitepoint     illuminant.Meta
}

// ToXyz converts c to XYZ under its working space's own whitepoint (no
// adaptation).
func (c Rgb) ToXyz() (Xyz, error) {
	sp, err := space.Lookup(c.spaceName())
	if err != nil {
		return Xyz{}, err
	}
	v, err := sp.ToXyz(matrix.Vec3{c.R, c.G, c.B}, nil)
	if err != nil {
		return Xyz{}, err
	}
	return Xyz{X: v[0], Y: v[1], Z: v[2], Alpha: c.Alpha, Whitepoint: sp.Whitepoint}, nil
}

// ToRgb converts XYZ to Rgb in the given working space (empty means
// sRGB), adapting from x's own whitepoint to the target space's
// whitepoint if they differ.
func (x Xyz) ToRgb(spaceName string) (Rgb, error) {
	sp, err := space.Lookup(nonEmpty(spaceName, space.SRGB))
	if err != nil {
		return Rgb{}, err
	}
	v, err := sp.ToRgb(matrix.Vec3{x.X, x.Y, x.Z}, &x.Whitepoint)
	if err != nil {
		return Rgb{}, err
	}
	return NewInSpace(v[0], v[1], v[2], x.Alpha, spaceName)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
