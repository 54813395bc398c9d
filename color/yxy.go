// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package color

import "github.com/chromalab/chromatic/illuminant"

// Yxy is a CIE Yxy value: Y is luminance, ChromaX/ChromaY are the xy
// chromaticity coordinates.
type Yxy struct {
	Y                float64
	ChromaX, ChromaY float64
	Alpha            float64
	Whitepoint       illuminant.Meta
}

// ToYxy converts XYZ to Yxy.
func (x Xyz) ToYxy() Yxy {
	sum := x.X + x.Y + x.Z
	if sum == 0 {
		return Yxy{Y: x.Y, ChromaX: 0, ChromaY: 0, Alpha: x.Alpha, Whitepoint: x.Whitepoint}
	}
	return Yxy{Y: x.Y, ChromaX: x.X / sum, ChromaY: x.Y / sum, Alpha: x.Alpha, Whitepoint: x.Whitepoint}
}

// ToXyz converts Yxy back to XYZ.
func (c Yxy) ToXyz() Xyz {
	if c.ChromaY == 0 {
		return Xyz{X: 0, Y: 0, Z: 0, Alpha: c.Alpha, Whitepoint: c.Whitepoint}
	}
	x := c.ChromaX * c.Y / c.ChromaY
	z := (1 - c.ChromaX - c.ChromaY) * c.Y / c.ChromaY
	return Xyz{X: x, Y: c.Y, Z: z, Alpha: c.Alpha, Whitepoint: c.Whitepoint}
}
