// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package color

import (
	"github.com/chromalab/chromatic/chromaerr"
	"github.com/chromalab/chromatic/internal/numutil"
)

// Blend composites an ordered sequence of colors with Porter-Duff
// source-over, per spec section 4.5. With a single color it is folded
// onto an opaque white backdrop; with more, the first color is the
// initial backdrop and the rest are folded on top left to right:
//
//	Cout = Csrc*aSrc + Cdst*aDst*(1-aSrc), aOut = 1
//
// after every step. Each intermediate channel is quantized to the
// nearest 1/255 step before the next fold, matching an 8-bit
// compositing pipeline rather than keeping full float precision
// between steps. Fails with chromaerr.Precondition if colors is empty.
func Blend(colors ...Rgb) (Rgb, error) {
	if len(colors) == 0 {
		return Rgb{}, chromaerr.New(chromaerr.Precondition, "color.Blend", "no colors given")
	}

	var dst Rgb
	var rest []Rgb
	if len(colors) == 1 {
		dst = White
		rest = colors
	} else {
		dst = colors[0]
		rest = colors[1:]
	}
	dst.Space = dst.spaceName()
	dst = quantize8(dst)

	for _, src := range rest {
		dst = quantize8(Rgb{
			R:     src.R*src.Alpha + dst.R*dst.Alpha*(1-src.Alpha),
			G:     src.G*src.Alpha + dst.G*dst.Alpha*(1-src.Alpha),
			B:     src.B*src.Alpha + dst.B*dst.Alpha*(1-src.Alpha),
			Alpha: 1,
			Space: dst.Space,
		})
	}
	return dst, nil
}

// quantize8 rounds c's channels to the nearest 1/255 step, modeling an
// 8-bit compositing buffer between blend steps.
func quantize8(c Rgb) Rgb {
	c.R = numutil.RoundFloat(c.R*255, 0) / 255
	c.G = numutil.RoundFloat(c.G*255, 0) / 255
	c.B = numutil.RoundFloat(c.B*255, 0) / 255
	return c
}
