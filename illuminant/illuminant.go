// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package illuminant exposes the standard CIE illuminant tables: XYZ
// tristimulus and xy chromaticity, keyed by illuminant name and standard
// observer angle. Constants are reproduced from CIE 15:2004 / ASTM E308;
// see cat.go in the retrieval pack's dominikh-go-color example for the
// chromaticity values this package's 2-degree and 10-degree tables were
// checked against.
package illuminant

import (
	"fmt"

	"github.com/chromalab/chromatic/chromaerr"
	"github.com/chromalab/chromatic/matrix"
)

// Observer identifies a CIE standard observer angle.
type Observer int

const (
	// Observer2 is the CIE 1931 2-degree standard observer. It is the
	// zero value, so Meta{} defaults to it.
	Observer2 Observer = iota
	// Observer10 is the CIE 1964 10-degree supplementary observer.
	Observer10
)

func (o Observer) String() string {
	if o == Observer10 {
		return "10deg"
	}
	return "2deg"
}

// Name identifies a standard illuminant.
type Name string

const (
	A   Name = "A"
	B   Name = "B"
	C   Name = "C"
	D50 Name = "D50"
	D55 Name = "D55"
	D65 Name = "D65"
	D75 Name = "D75"
	E   Name = "E"
	F1  Name = "F1"
	F2  Name = "F2"
	F3  Name = "F3"
	F4  Name = "F4"
	F5  Name = "F5"
	F6  Name = "F6"
	F7  Name = "F7"
	F8  Name = "F8"
	F9  Name = "F9"
	F10 Name = "F10"
	F11 Name = "F11"
	F12 Name = "F12"
)

// Method selects how GetWhitepoint resolves a whitepoint from a Meta.
type Method int

const (
	// IEC61966 converts from the xy chromaticity (explicit or looked up)
	// into XYZ, normalizing Y to 1. This is the default.
	IEC61966 Method = iota
	// ASTME308 looks the tristimulus values up directly from the ASTM
	// E308 table, ignoring any explicit XY.
	ASTME308
)

// Chromaticity is a CIE xy chromaticity coordinate.
type Chromaticity struct {
	X, Y float64
}

// XYZ converts the chromaticity to XYZ, normalized so Y = 1.
func (c Chromaticity) XYZ() matrix.Vec3 {
	if c.Y == 0 {
		return matrix.Vec3{0, 0, 0}
	}
	return matrix.Vec3{c.X / c.Y, 1, (1 - c.X - c.Y) / c.Y}
}

// key identifies a (observer, illuminant) pair for table lookups.
type key struct {
	obs  Observer
	name Name
}

// Meta configures GetWhitepoint. Observer and Method default to
// Observer2 and IEC61966. The zero value sets neither Illuminant nor XY,
// so GetWhitepoint fails for it with chromaerr.InputDomain; callers set
// Illuminant (or XY) explicitly.
type Meta struct {
	Illuminant Name
	Observer   Observer
	XY         *Chromaticity
	Method     Method
}

// GetWhitepoint resolves the whitepoint tristimulus described by meta.
//
//   - Method = ASTME308 returns the ASTM E308 tristimulus lookup for
//     (Observer, Illuminant) directly.
//   - Otherwise, if XY is set it is used as-is; else the xy chromaticity
//     for (Observer, Illuminant) is looked up. The chromaticity is then
//     converted to XYZ via (x/y, 1, (1-x-y)/y).
//
// All returned whitepoints are normalized to Y = 1.
func GetWhitepoint(meta Meta) (matrix.Vec3, error) {
	if meta.Method == ASTME308 {
		v, ok := astmTable[key{meta.Observer, meta.Illuminant}]
		if !ok {
			return matrix.Vec3{}, unknown("GetWhitepoint", meta.Observer, meta.Illuminant)
		}
		return v, nil
	}

	if meta.XY != nil {
		return meta.XY.XYZ(), nil
	}

	xy, ok := chromaticityTable[key{meta.Observer, meta.Illuminant}]
	if !ok {
		return matrix.Vec3{}, unknown("GetWhitepoint", meta.Observer, meta.Illuminant)
	}
	return xy.XYZ(), nil
}

// GetChromaticity looks up the xy chromaticity for (observer, name)
// without converting to XYZ.
func GetChromaticity(observer Observer, name Name) (Chromaticity, error) {
	xy, ok := chromaticityTable[key{observer, name}]
	if !ok {
		return Chromaticity{}, unknown("GetChromaticity", observer, name)
	}
	return xy, nil
}

func unknown(op string, obs Observer, name Name) error {
	return chromaerr.New(chromaerr.InputDomain, "illuminant."+op,
		fmt.Sprintf("unknown illuminant %q for %s observer", name, obs))
}

// CorrelatedDaylight computes the chromaticity of a CIE daylight
// illuminant at an arbitrary correlated color temperature, per CIE
// 15:2004 equations 3.2-3.4. tempKelvin must be in [4000, 25000].
// Because of rounding in the CIE standard, the result will not exactly
// match the predefined D50/D55/D65/D75 chromaticities even at their
// nominal temperatures.
func CorrelatedDaylight(tempKelvin float64) (Chromaticity, error) {
	if tempKelvin < 4000 || tempKelvin > 25000 {
		return Chromaticity{}, chromaerr.New(chromaerr.InputDomain, "illuminant.CorrelatedDaylight",
			fmt.Sprintf("color temperature %v K is not in [4000, 25000]", tempKelvin))
	}
	t := tempKelvin
	var x float64
	if t <= 7000 {
		x = (-4.6070e9)/(t*t*t) + 2.9678e6/(t*t) + 0.09911e3/t + 0.244063
	} else {
		x = (-2.0064e9)/(t*t*t) + 1.9018e6/(t*t) + 0.24748e3/t + 0.237040
	}
	y := -3*x*x + 2.870*x - 0.275
	return Chromaticity{x, y}, nil
}
