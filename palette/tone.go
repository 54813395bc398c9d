// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"

	"github.com/chromalab/chromatic/chromaerr"
	"github.com/chromalab/chromatic/color"
)

// GetColorTone classifies rgb as "light" or "dark", delegating to
// color.Tone with the spec's default WCAG contrast threshold. It is
// the picker API's ColorPalette.getColorTone(rgb) entry (spec section 6).
func GetColorTone(rgb color.Rgb) (string, error) {
	return color.Tone(rgb, color.DefaultMinContrast)
}

// GetColorToneName is the string-accepting overload of
// getColorTone(rgb | 'light' | 'dark') (spec section 6): "light" and
// "dark" pass straight through unchanged, anything else is parsed as a
// hex color and classified via GetColorTone.
func GetColorToneName(value string) (string, error) {
	if value == "light" || value == "dark" {
		return value, nil
	}
	rgb, err := color.FromHex(value)
	if err != nil {
		return "", err
	}
	return GetColorTone(rgb)
}

// GetPaletteTone returns the tone name at index, following the
// matcolor package's tone-indexing convention generalized from a fixed
// 0-100 scale to this package's 14-entry ordered tone-name table
// (spec section 6's ColorPalette.getPaletteTone(index)).
func GetPaletteTone(index int) (string, error) {
	if index < 0 || index >= len(ToneNames) {
		return "", chromaerr.New(chromaerr.InputDomain, "palette.GetPaletteTone",
			fmt.Sprintf("tone index %d out of range [0, %d)", index, len(ToneNames)))
	}
	return ToneNames[index], nil
}
