// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package deltae implements the CIE color-difference formulas (ΔE 1976,
// ΔE 1994, ΔE 2000, and ΔE CMC) over the color package's Lab/LCHab
// types, per spec section 4.6.
package deltae

import (
	"math"

	"github.com/chromalab/chromatic/color"
)

// E76 returns the CIE76 color difference: plain Euclidean distance in
// Lab space.
func E76(a, b color.Lab) float64 {
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// Variant1994 selects the application-specific constants for E94.
type Variant1994 int

const (
	// GraphicArts uses k1=0.045, k2=0.015, kL=1.
	GraphicArts Variant1994 = iota
	// Textiles uses k1=0.048, k2=0.014, kL=2.
	Textiles
)

// E94 returns the CIE94 color difference between a (reference) and b
// (sample) under the given application variant.
func E94(a, b color.Lab, variant Variant1994) float64 {
	k1, k2, kL := 0.045, 0.015, 1.0
	if variant == Textiles {
		k1, k2, kL = 0.048, 0.014, 2.0
	}
	const kC, kH = 1.0, 1.0

	c1 := math.Hypot(a.A, a.B)
	c2 := math.Hypot(b.A, b.B)
	dc := c1 - c2
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	dhSq := da*da + db*db - dc*dc
	if dhSq < 0 {
		dhSq = 0
	}
	dh := math.Sqrt(dhSq)

	sl := 1.0
	sc := 1 + k1*c1
	sh := 1 + k2*c1

	tl := dl / (kL * sl)
	tc := dc / (kC * sc)
	th := dh / (kH * sh)
	return math.Sqrt(tl*tl + tc*tc + th*th)
}

// k25Pow7 is 25^7, the constant the Sharma 2005 reference implementation
// names explicitly; kept as a literal per spec section 4.6 rather than
// computed, so the formula reads the same way the standard does.
const k25Pow7 = 6103515625

// E2000 returns the CIEDE2000 color difference per ISO/CIE 11664-6,
// using the Sharma et al. mean-hue / ΔH' correction (not the erroneous
// Lindbloom variant).
func E2000(a, b color.Lab) float64 {
	c1 := math.Hypot(a.A, a.B)
	c2 := math.Hypot(b.A, b.B)
	cBar := (c1 + c2) / 2

	cBar7 := math.Pow(cBar, 7)
	g := 0.5 * (1 - math.Sqrt(cBar7/(cBar7+k25Pow7)))

	a1p := a.A * (1 + g)
	a2p := b.A * (1 + g)

	c1p := math.Hypot(a1p, a.B)
	c2p := math.Hypot(a2p, b.B)

	h1p := hueAngle(a1p, a.B)
	h2p := hueAngle(a2p, b.B)

	dLp := b.L - a.L
	dCp := c2p - c1p

	var dhp float64
	lowChroma := c1p < 1e-4 && c2p < 1e-4
	switch {
	case lowChroma:
		dhp = 0
	case math.Abs(h2p-h1p) <= 180:
		dhp = h2p - h1p
	case h2p <= h1p:
		dhp = h2p - h1p + 360
	default:
		dhp = h2p - h1p - 360
	}
	dHp := 2 * math.Sqrt(c1p*c2p) * math.Sin(numDegToRad(dhp)/2)

	lBarp := (a.L + b.L) / 2
	cBarp := (c1p + c2p) / 2

	var hBarp float64
	switch {
	case lowChroma:
		hBarp = h1p + h2p
	case math.Abs(h1p-h2p) <= 180:
		hBarp = (h1p + h2p) / 2
	case h1p+h2p < 360:
		hBarp = (h1p + h2p + 360) / 2
	default:
		hBarp = (h1p + h2p - 360) / 2
	}

	t := 1 - 0.17*math.Cos(numDegToRad(hBarp-30)) +
		0.24*math.Cos(numDegToRad(2*hBarp)) +
		0.32*math.Cos(numDegToRad(3*hBarp+6)) -
		0.20*math.Cos(numDegToRad(4*hBarp-63))

	dTheta := 30 * math.Exp(-math.Pow((hBarp-275)/25, 2))
	cBarp7 := math.Pow(cBarp, 7)
	rc := 2 * math.Sqrt(cBarp7/(cBarp7+k25Pow7))

	sl := 1 + (0.015*math.Pow(lBarp-50, 2))/math.Sqrt(20+math.Pow(lBarp-50, 2))
	sc := 1 + 0.045*cBarp
	sh := 1 + 0.015*cBarp*t

	rt := -rc * math.Sin(2*numDegToRad(dTheta))

	const kL, kC, kH = 1.0, 1.0, 1.0
	tl := dLp / (kL * sl)
	tc := dCp / (kC * sc)
	th := dHp / (kH * sh)

	return math.Sqrt(tl*tl + tc*tc + th*th + rt*tc*th)
}

// hueAngle returns atan2(b, a) in degrees, wrapped into [0, 360), with
// the zero-chroma convention h = 0.
func hueAngle(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

func numDegToRad(deg float64) float64 { return deg * math.Pi / 180 }

// CMCParams holds the (l, c) weighting for ECMC; the zero value is not
// valid, use DefaultCMCParams.
type CMCParams struct {
	L, C float64
}

// DefaultCMCParams is the conventional CMC(2:1) acceptability weighting.
var DefaultCMCParams = CMCParams{L: 2, C: 1}

// ECMC returns the CMC l:c color difference between a (reference) and b
// (sample).
func ECMC(a, b color.Lab, params CMCParams) float64 {
	c1 := math.Hypot(a.A, a.B)
	c2 := math.Hypot(b.A, b.B)
	dc := c1 - c2
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	dhSq := da*da + db*db - dc*dc
	if dhSq < 0 {
		dhSq = 0
	}
	dh := math.Sqrt(dhSq)

	var sl float64
	if a.L < 16 {
		sl = 0.511
	} else {
		sl = (0.040975 * a.L) / (1 + 0.01765*a.L)
	}
	sc := (0.0638*c1)/(1+0.0131*c1) + 0.638

	h1 := hueAngle(a.A, a.B)
	var f float64
	c1Sq := c1 * c1
	c1Sq2 := c1Sq * c1Sq
	f = math.Sqrt(c1Sq2 / (c1Sq2 + 1900))

	var t float64
	if h1 >= 164 && h1 <= 345 {
		t = 0.56 + math.Abs(0.2*math.Cos(numDegToRad(h1+168)))
	} else {
		t = 0.36 + math.Abs(0.4*math.Cos(numDegToRad(h1+35)))
	}
	sh := sc * (f*t + 1 - f)

	tl := dl / (params.L * sl)
	tc := dc / (params.C * sc)
	th := dh / sh
	return math.Sqrt(tl*tl + tc*tc + th*th)
}
