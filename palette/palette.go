// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"math"

	"github.com/chromalab/chromatic/color"
	"github.com/chromalab/chromatic/deltae"
)

// ComputedPalette is the result of createPalette: the 14 (or 10, for
// the light/dark variants) emitted tones plus the index of the
// unmodified seed color among them.
type ComputedPalette struct {
	BaseColorIndex int
	Colors         []color.Rgb
}

// lab converts a reference tone's LCHab coordinates to Cartesian Lab,
// for ΔE2000 comparison against the seed.
func (t tone) lab() color.Lab {
	a, b := t.C*math.Cos(t.H*math.Pi/180), t.C*math.Sin(t.H*math.Pi/180)
	return color.Lab{L: t.L, A: a, B: b}
}

const lightnessStep = 1.7

// createPalette implements spec section 4.7's createPalette algorithm
// over an arbitrary set of equal-length reference palettes.
func createPalette(seed color.Rgb, refs [][]tone, lc, cc []float64) (ComputedPalette, error) {
	seedLab, err := seed.ToLab()
	if err != nil {
		return ComputedPalette{}, err
	}
	seedLCH := seedLab.ToLCHab()

	bestPalette, bestIndex, bestDist := 0, 0, math.Inf(1)
	for pi, p := range refs {
		for ci, t := range p {
			d := deltae.E2000(t.lab(), seedLab)
			if d < bestDist {
				bestDist = d
				bestPalette = pi
				bestIndex = ci
			}
		}
	}

	p := refs[bestPalette]
	i0 := bestIndex
	n := len(p)

	dL := p[i0].L - seedLCH.L
	dC := p[i0].C - seedLCH.C
	dH := p[i0].H - seedLCH.H
	midChromaFlag := p[5].C < 30

	colors := make([]color.Rgb, n)
	maxLightness := 100.0

	for i := 0; i < n; i++ {
		if i == 10 && n > 10 {
			maxLightness = 100
		}

		if i == i0 {
			colors[i] = seed
			maxLightness = math.Max(seedLCH.L-lightnessStep, 0)
			continue
		}

		huePrime := math.Mod(p[i].H-dH+360, 360)

		lightnessPrime := p[i].L - (lc[i]/lc[i0])*dL
		lightnessPrime = math.Min(lightnessPrime, maxLightness)
		lightnessPrime = clamp(lightnessPrime, 0, 100)

		var chromaPrime float64
		if midChromaFlag {
			chromaPrime = p[i].C - dC
		} else {
			chromaPrime = p[i].C - dC*math.Min(cc[i]/cc[i0], 1.25)
		}
		chromaPrime = math.Max(0, chromaPrime)

		lch := color.LCHab{L: lightnessPrime, C: chromaPrime, H: huePrime, Alpha: seed.Alpha, Whitepoint: seedLab.Whitepoint}
		rgb, err := lch.ToRgb(seed.Space)
		if err != nil {
			return ComputedPalette{}, err
		}
		colors[i] = rgb

		maxLightness = math.Max(lightnessPrime-lightnessStep, 0)
	}

	return ComputedPalette{BaseColorIndex: i0, Colors: colors}, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func toSlice14(p goldenPalette) []tone {
	out := make([]tone, len(p))
	copy(out, p[:])
	return out
}

func toSlice10(p goldenPalette10) []tone {
	out := make([]tone, len(p))
	copy(out, p[:])
	return out
}

func goldenRefs() [][]tone {
	refs := make([][]tone, len(goldenPalettes))
	for i, p := range goldenPalettes {
		refs[i] = toSlice14(p)
	}
	return refs
}

func lightRefs() [][]tone {
	refs := make([][]tone, len(lightPalettes))
	for i, p := range lightPalettes {
		refs[i] = toSlice10(p)
	}
	return refs
}

func darkRefs() [][]tone {
	refs := make([][]tone, len(darkPalettes))
	for i, p := range darkPalettes {
		refs[i] = toSlice10(p)
	}
	return refs
}

// CreateColorPalette builds the full 14-tone palette for seedHex
// against the 20 golden reference palettes.
func CreateColorPalette(seedHex string) (ComputedPalette, error) {
	seed, err := color.FromHex(seedHex)
	if err != nil {
		return ComputedPalette{}, err
	}
	return createPalette(seed, goldenRefs(), LightnessCompensation[:], ChromaCompensation[:])
}

// CreateLightPalette builds the 10-tone light-only palette for seedHex,
// reusing the first 10 entries of LightnessCompensation for the
// lightness term (spec section 4.7 only names a 10-tone chroma
// compensation vector for this variant; see DESIGN.md).
func CreateLightPalette(seedHex string) (ComputedPalette, error) {
	seed, err := color.FromHex(seedHex)
	if err != nil {
		return ComputedPalette{}, err
	}
	return createPalette(seed, lightRefs(), LightnessCompensation[:10], ChromaCompensationLight[:])
}

// CreateDarkPalette builds the 10-tone dark-only palette for seedHex.
func CreateDarkPalette(seedHex string) (ComputedPalette, error) {
	seed, err := color.FromHex(seedHex)
	if err != nil {
		return ComputedPalette{}, err
	}
	return createPalette(seed, darkRefs(), LightnessCompensation[:10], ChromaCompensationLight[:])
}
