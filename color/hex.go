// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package color

import (
	"fmt"
	"strings"

	"github.com/chromalab/chromatic/chromaerr"
	"github.com/chromalab/chromatic/internal/numutil"
)

// FromHex parses a hex color string matching
// ^#?([0-9A-Fa-f]{3,4}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$. Three and four
// digit forms expand each digit by duplication (#1A2 -> #11AA22FF).
// Unknown forms fail with chromaerr.InputDomain.
func FromHex(hex string) (Rgb, error) {
	s := stripHash(hex)
	if !numutil.IsHex(s) {
		return Rgb{}, chromaerr.New(chromaerr.InputDomain, "color.FromHex",
			fmt.Sprintf("%q is not a valid hex color", hex))
	}

	switch len(s) {
	case 3, 4:
		expanded := make([]byte, 0, 8)
		for _, r := range s {
			expanded = append(expanded, byte(r), byte(r))
		}
		s = string(expanded)
		if len(s) == 6 {
			s += "FF"
		}
	case 6:
		s += "FF"
	}

	r, _ := numutil.HexToDec(s[0:2])
	g, _ := numutil.HexToDec(s[2:4])
	b, _ := numutil.HexToDec(s[4:6])
	a, _ := numutil.HexToDec(s[6:8])
	return FromRGB255(r, g, b, float64(a)/255)
}

// ToHex formats c as an uppercase hex color string. The alpha pair is
// dropped when alpha == 1.
func (c Rgb) ToHex() string {
	r, g, b, a := c.ToValues()
	out := "#" + numutil.DecToHex(r) + numutil.DecToHex(g) + numutil.DecToHex(b)
	if a != 1 {
		out += numutil.DecToHex(int(numutil.RoundFloat(a*255, 0)))
	}
	return strings.ToUpper(out)
}
