// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import (
	"math"

	"github.com/chromalab/chromatic/illuminant"
)

// Canonical space names, registered at init time.
const (
	SRGB      = "srgb"
	Rec709    = "rec709"
	AdobeRGB  = "adobe-rgb-1998"
	CIERGB    = "cie-rgb"
	DisplayP3 = "display-p3"
	Rec2020   = "rec2020"
	ProPhoto  = "prophoto-rgb"
	WideGamut = "wide-gamut-rgb"
)

var d65 = illuminant.Meta{Illuminant: illuminant.D65, Observer: illuminant.Observer2}
var d50 = illuminant.Meta{Illuminant: illuminant.D50, Observer: illuminant.Observer2}
var e = illuminant.Meta{Illuminant: illuminant.E, Observer: illuminant.Observer2}

// srgbToLinear/srgbToGamma split at the constants named in spec 4.4,
// generalized from colors/cam/cie/srgb.go's SRGBToLinearComp /
// SRGBFromLinearComp (which only handled the D65/sRGB case) to the
// odd-extension + multi-space contract this spec requires.
func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func srgbToGamma(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// rec709/rec2020 share the same piecewise transfer-function shape with
// different alpha/beta constants.
func bt1886ToLinear(alpha, beta float64) TransferFunc {
	return func(v float64) float64 {
		if v < beta*4.5 {
			return v / 4.5
		}
		return math.Pow((v+alpha-1)/alpha, 1/0.45)
	}
}

func bt1886ToGamma(alpha, beta float64) TransferFunc {
	return func(v float64) float64 {
		if v < beta {
			return 4.5 * v
		}
		return alpha*math.Pow(v, 0.45) - (alpha - 1)
	}
}

func proPhotoToLinear(v float64) float64 {
	const et = 1.0 / 512
	if v < 16*et {
		return v / 16
	}
	return math.Pow(v, 1.8)
}

func proPhotoToGamma(v float64) float64 {
	const et = 1.0 / 512
	if v < et {
		return 16 * v
	}
	return math.Pow(v, 1/1.8)
}

func powerLawToLinear(gamma float64) TransferFunc {
	return func(v float64) float64 { return math.Pow(v, gamma) }
}

func powerLawToGamma(gamma float64) TransferFunc {
	return func(v float64) float64 { return math.Pow(v, 1/gamma) }
}

func init() {
	srgbSpace := NewFromXY(SRGB,
		illuminant.Chromaticity{X: 0.6400, Y: 0.3300},
		illuminant.Chromaticity{X: 0.3000, Y: 0.6000},
		illuminant.Chromaticity{X: 0.1500, Y: 0.0600},
		d65, srgbToLinear, srgbToGamma)
	mustRegister(srgbSpace)

	rec709ToLinear := bt1886ToLinear(1.099, 0.018)
	rec709ToGamma := bt1886ToGamma(1.099, 0.018)
	mustRegister(NewFromXY(Rec709,
		illuminant.Chromaticity{X: 0.6400, Y: 0.3300},
		illuminant.Chromaticity{X: 0.3000, Y: 0.6000},
		illuminant.Chromaticity{X: 0.1500, Y: 0.0600},
		d65, rec709ToLinear, rec709ToGamma))

	mustRegister(NewFromXY(AdobeRGB,
		illuminant.Chromaticity{X: 0.6400, Y: 0.3300},
		illuminant.Chromaticity{X: 0.2100, Y: 0.7100},
		illuminant.Chromaticity{X: 0.1500, Y: 0.0600},
		d65, powerLawToLinear(563.0/256.0), powerLawToGamma(563.0/256.0)))

	mustRegister(NewFromXY(CIERGB,
		illuminant.Chromaticity{X: 0.7347, Y: 0.2653},
		illuminant.Chromaticity{X: 0.2738, Y: 0.7174},
		illuminant.Chromaticity{X: 0.1666, Y: 0.0089},
		e, powerLawToLinear(2.2), powerLawToGamma(2.2)))

	mustRegister(NewFromXY(DisplayP3,
		illuminant.Chromaticity{X: 0.6800, Y: 0.3200},
		illuminant.Chromaticity{X: 0.2650, Y: 0.6900},
		illuminant.Chromaticity{X: 0.1500, Y: 0.0600},
		d65, srgbToLinear, srgbToGamma))

	rec2020ToLinear := bt1886ToLinear(1.09929682680944, 0.018053968510807)
	rec2020ToGamma := bt1886ToGamma(1.09929682680944, 0.018053968510807)
	mustRegister(NewFromXY(Rec2020,
		illuminant.Chromaticity{X: 0.7080, Y: 0.2920},
		illuminant.Chromaticity{X: 0.1700, Y: 0.7970},
		illuminant.Chromaticity{X: 0.1310, Y: 0.0460},
		d65, rec2020ToLinear, rec2020ToGamma))

	mustRegister(NewFromXY(ProPhoto,
		illuminant.Chromaticity{X: 0.734699, Y: 0.265301},
		illuminant.Chromaticity{X: 0.159597, Y: 0.840403},
		illuminant.Chromaticity{X: 0.036598, Y: 0.000105},
		d50, proPhotoToLinear, proPhotoToGamma))

	mustRegister(NewFromXY(WideGamut,
		illuminant.Chromaticity{X: 0.7347, Y: 0.2653},
		illuminant.Chromaticity{X: 0.1152, Y: 0.8264},
		illuminant.Chromaticity{X: 0.1566, Y: 0.0177},
		d50, powerLawToLinear(2.19921875), powerLawToGamma(2.19921875)))
}

func mustRegister(s *Space) {
	if err := Register(s); err != nil {
		panic(err)
	}
}
