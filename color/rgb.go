// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package color implements the polymorphic color-model layer: RGB, HSV,
// HSL, HSI, HWB, Lab, LCHab, Luv, LCHuv, XYZ, and Yxy value types, each
// carrying alpha, plus the conversions between them, hex/CSS string I/O,
// hue rotation, alpha blending, relative luminance, WCAG contrast, and
// tone classification. Conversions between adjacent models form a DAG
// whose canonical hub is XYZ, following spec section 4.5.
//
// Values are immutable once constructed; every transformation returns a
// new value rather than mutating the receiver, in the style of the
// teacher's HCT/CAM value types (colors/cam/hct.HCT, colors/cam/cam16.CAM
// in the retrieval pack).
package color

import (
	"fmt"
	"strings"

	"github.com/chromalab/chromatic/chromaerr"
	"github.com/chromalab/chromatic/internal/numutil"
	"github.com/chromalab/chromatic/space"
)

// Rgb is a color in a named RGB working space, with gamma-encoded
// channels in [0, 1]. The zero value is fully transparent (Alpha 0)
// black in sRGB.
type Rgb struct {
	R, G, B, Alpha float64
	// Space names a registered space.Space. The empty string means sRGB.
	Space string
}

// spaceName returns the effective working-space name, defaulting to sRGB.
func (c Rgb) spaceName() string {
	if c.Space == "" {
		return space.SRGB
	}
	return c.Space
}

// New constructs an Rgb in the sRGB space. It fails with
// chromaerr.InputDomain if any channel exceeds 1; no component is
// clamped implicitly.
func New(r, g, b, a float64) (Rgb, error) {
	return NewInSpace(r, g, b, a, "")
}

// NewInSpace constructs an Rgb in the named working space (empty string
// means sRGB). It fails with chromaerr.InputDomain if any channel
// exceeds 1.
func NewInSpace(r, g, b, a float64, spaceName string) (Rgb, error) {
	for _, v := range [...]float64{r, g, b} {
		if v > 1 {
			return Rgb{}, chromaerr.New(chromaerr.InputDomain, "color.New",
				fmt.Sprintf("RGB component %v exceeds 1", v))
		}
	}
	return Rgb{R: r, G: g, B: b, Alpha: a, Space: spaceName}, nil
}

// FromRGB255 builds an Rgb from 0-255 integer channels and a 0-1 alpha,
// matching the fromRgb(r255, g255, b255, alpha) entry in the external
// picker API (spec section 6).
func FromRGB255(r, g, b int, a float64) (Rgb, error) {
	return New(float64(r)/255, float64(g)/255, float64(b)/255, a)
}

// ToValues returns the 0-255 integer channels (rounded) and the 0-1
// alpha verbatim.
func (c Rgb) ToValues() (r255, g255, b255 int, a float64) {
	return int(numutil.RoundFloat(c.R*255, 0)), int(numutil.RoundFloat(c.G*255, 0)), int(numutil.RoundFloat(c.B*255, 0)), c.Alpha
}

// ToCss formats the color as a CSS rgba(...) string, with 0-255 integer
// RGB and the alpha printed verbatim.
func (c Rgb) ToCss() string {
	r, g, b, a := c.ToValues()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, trimFloat(a))
}

// trimFloat formats a 0-1 float without a trailing ".0" for whole
// numbers, matching typical CSS color serializers.
func trimFloat(v float64) string {
	s := fmt.Sprintf("%g", v)
	return s
}

// grayscale reports whether R, G, and B are equal, the edge case spec
// section 4.5 calls out for hue/saturation computation (max == min).
func (c Rgb) grayscale() bool {
	return c.R == c.G && c.G == c.B
}

func maxOf3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func minOf3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// relativeLuminanceFromLinear computes WCAG relative luminance directly
// from already-linear RGB.
func relativeLuminanceFromLinear(rl, gl, bl float64) float64 {
	return 0.2126*rl + 0.7152*gl + 0.0722*bl
}

// RelativeLuminance returns the WCAG relative luminance of c, computed
// from its working space's inverse transfer function.
func (c Rgb) RelativeLuminance() (float64, error) {
	sp, err := space.Lookup(c.spaceName())
	if err != nil {
		return 0, err
	}
	rl := sp.ToLinear(c.R)
	gl := sp.ToLinear(c.G)
	bl := sp.ToLinear(c.B)
	return relativeLuminanceFromLinear(rl, gl, bl), nil
}

// ContrastRatio returns the WCAG contrast ratio between a and b, a value
// in [1, 21].
func ContrastRatio(a, b Rgb) (float64, error) {
	la, err := a.RelativeLuminance()
	if err != nil {
		return 0, err
	}
	lb, err := b.RelativeLuminance()
	if err != nil {
		return 0, err
	}
	lighter, darker := la, lb
	if lb > la {
		lighter, darker = lb, la
	}
	return (lighter + 0.05) / (darker + 0.05), nil
}

// DefaultMinContrast is the WCAG AA large-text contrast threshold spec
// section 4.5 uses as the default for tone classification.
const DefaultMinContrast = 3.1

// White and Black are the reference colors Tone compares against.
var (
	White = Rgb{R: 1, G: 1, B: 1, Alpha: 1}
	Black = Rgb{R: 0, G: 0, B: 0, Alpha: 1}
)

// Tone classifies c as "light" or "dark" following spec section 4.5: c
// is dark if contrast(c, white) >= minContrast or contrast(c, black) <=
// contrast(c, white); otherwise it is light.
func Tone(c Rgb, minContrast float64) (string, error) {
	cw, err := ContrastRatio(c, White)
	if err != nil {
		return "", err
	}
	cb, err := ContrastRatio(c, Black)
	if err != nil {
		return "", err
	}
	if cw >= minContrast || cb <= cw {
		return "dark", nil
	}
	return "light", nil
}

// IsHexColor reports whether str is a syntactically valid hex color
// string (3, 4, 6, or 8 hex digits, optional leading '#').
func IsHexColor(str string) bool {
	return numutil.IsHex(str)
}

// RotateHue returns c with its HSL hue rotated by deg degrees (wrapping
// into [0, 360)), used by the palette synthesizer's harmony rules.
func (c Rgb) RotateHue(deg float64) (Rgb, error) {
	hsl := c.ToHsl()
	hsl.H = numutil.WrapDeg(hsl.H + deg)
	return hsl.ToRgb(c.spaceName())
}

func stripHash(s string) string { return strings.TrimPrefix(s, "#") }
