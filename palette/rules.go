// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import "github.com/chromalab/chromatic/color"

// hueOffsets maps a harmony rule name to the hue offsets (degrees)
// added to the base seed's HSL hue to build each companion palette,
// per spec section 4.7's rule table. An unknown rule yields no
// offsets, so CreateColorPalettesByRule returns the base palette alone.
var hueOffsets = map[string][]float64{
	"mono":               {},
	"complementary":      {180},
	"splitComplementary": {150, -150},
	"analogous":          {30, -30},
	"triadic":            {120, -120},
	"tetradic":           {90, 180, 270},
}

// CreateColorPalettesByRule returns the base palette for seedHex
// followed by one palette per hue offset of the named harmony rule,
// each built from the seed rotated in HSL by that offset.
func CreateColorPalettesByRule(seedHex, rule string) ([]ComputedPalette, error) {
	base, err := CreateColorPalette(seedHex)
	if err != nil {
		return nil, err
	}
	palettes := []ComputedPalette{base}

	seed, err := color.FromHex(seedHex)
	if err != nil {
		return nil, err
	}

	for _, offset := range hueOffsets[rule] {
		rotated, err := seed.RotateHue(offset)
		if err != nil {
			return nil, err
		}
		p, err := createPalette(rotated, goldenRefs(), LightnessCompensation[:], ChromaCompensation[:])
		if err != nil {
			return nil, err
		}
		palettes = append(palettes, p)
	}
	return palettes, nil
}
