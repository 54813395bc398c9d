// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

// tone is one reference color's Lab lightness plus its LCHab chroma and
// hue, precomputed at source so createPalette never computes Lab at
// startup (spec section 9's "embed as typed constants" guidance).
type tone struct {
	L, C, H float64
}

// goldenPalette is a full 14-tone reference palette: 10 primary tones
// (50...900) followed by 4 accent tones (A100, A200, A400, A700), in
// the order named by ToneNames.
type goldenPalette [14]tone

// goldenPalette10 is a light- or dark-only reference palette: the 10
// primary tones only, no accents.
type goldenPalette10 [10]tone

var goldenRed = goldenPalette{
	{L: 97, C: 29.75, H: 28},
	{L: 94, C: 38.25, H: 27},
	{L: 88, C: 46.75, H: 26},
	{L: 79, C: 55.25, H: 25},
	{L: 69, C: 68.0, H: 25},
	{L: 57, C: 80.75, H: 25},
	{L: 51, C: 85.0, H: 24},
	{L: 44, C: 78.2, H: 23},
	{L: 38, C: 66.3, H: 22},
	{L: 29, C: 46.75, H: 21},
	{L: 90, C: 89.25, H: 27},
	{L: 80, C: 97.75, H: 26},
	{L: 65, C: 106.25, H: 25},
	{L: 50, C: 93.5, H: 24},
}

var goldenPink = goldenPalette{
	{L: 97, C: 19.25, H: 353},
	{L: 94, C: 24.75, H: 352},
	{L: 88, C: 30.25, H: 351},
	{L: 79, C: 35.75, H: 350},
	{L: 69, C: 44.0, H: 350},
	{L: 57, C: 52.25, H: 350},
	{L: 51, C: 55.0, H: 349},
	{L: 44, C: 50.6, H: 348},
	{L: 38, C: 42.9, H: 347},
	{L: 29, C: 30.25, H: 346},
	{L: 90, C: 57.75, H: 352},
	{L: 80, C: 63.25, H: 351},
	{L: 65, C: 68.75, H: 350},
	{L: 50, C: 60.5, H: 349},
}

var goldenPurple = goldenPalette{
	{L: 97, C: 21.0, H: 303},
	{L: 94, C: 27.0, H: 302},
	{L: 88, C: 33.0, H: 301},
	{L: 79, C: 39.0, H: 300},
	{L: 69, C: 48.0, H: 300},
	{L: 57, C: 57.0, H: 300},
	{L: 51, C: 60.0, H: 299},
	{L: 44, C: 55.2, H: 298},
	{L: 38, C: 46.8, H: 297},
	{L: 29, C: 33.0, H: 296},
	{L: 90, C: 63.0, H: 302},
	{L: 80, C: 69.0, H: 301},
	{L: 65, C: 75.0, H: 300},
	{L: 50, C: 66.0, H: 299},
}

var goldenDeepPurple = goldenPalette{
	{L: 97, C: 22.75, H: 273},
	{L: 94, C: 29.25, H: 272},
	{L: 88, C: 35.75, H: 271},
	{L: 79, C: 42.25, H: 270},
	{L: 69, C: 52.0, H: 270},
	{L: 57, C: 61.75, H: 270},
	{L: 51, C: 65.0, H: 269},
	{L: 44, C: 59.8, H: 268},
	{L: 38, C: 50.7, H: 267},
	{L: 29, C: 35.75, H: 266},
	{L: 90, C: 68.25, H: 272},
	{L: 80, C: 74.75, H: 271},
	{L: 65, C: 81.25, H: 270},
	{L: 50, C: 71.5, H: 269},
}

var goldenIndigo = goldenPalette{
	{L: 97, C: 19.25, H: 258},
	{L: 94, C: 24.75, H: 257},
	{L: 88, C: 30.25, H: 256},
	{L: 79, C: 35.75, H: 255},
	{L: 69, C: 44.0, H: 255},
	{L: 57, C: 52.25, H: 255},
	{L: 51, C: 55.0, H: 254},
	{L: 44, C: 50.6, H: 253},
	{L: 38, C: 42.9, H: 252},
	{L: 29, C: 30.25, H: 251},
	{L: 90, C: 57.75, H: 257},
	{L: 80, C: 63.25, H: 256},
	{L: 65, C: 68.75, H: 255},
	{L: 50, C: 60.5, H: 254},
}

var goldenBlue = goldenPalette{
	{L: 97, C: 24.5, H: 228},
	{L: 94, C: 31.5, H: 227},
	{L: 88, C: 38.5, H: 226},
	{L: 79, C: 45.5, H: 225},
	{L: 69, C: 56.0, H: 225},
	{L: 57, C: 66.5, H: 225},
	{L: 51, C: 70.0, H: 224},
	{L: 44, C: 64.4, H: 223},
	{L: 38, C: 54.6, H: 222},
	{L: 29, C: 38.5, H: 221},
	{L: 90, C: 73.5, H: 227},
	{L: 80, C: 80.5, H: 226},
	{L: 65, C: 87.5, H: 225},
	{L: 50, C: 77.0, H: 224},
}

var goldenLightBlue = goldenPalette{
	{L: 97, C: 19.25, H: 208},
	{L: 94, C: 24.75, H: 207},
	{L: 88, C: 30.25, H: 206},
	{L: 79, C: 35.75, H: 205},
	{L: 69, C: 44.0, H: 205},
	{L: 57, C: 52.25, H: 205},
	{L: 51, C: 55.0, H: 204},
	{L: 44, C: 50.6, H: 203},
	{L: 38, C: 42.9, H: 202},
	{L: 29, C: 30.25, H: 201},
	{L: 90, C: 57.75, H: 207},
	{L: 80, C: 63.25, H: 206},
	{L: 65, C: 68.75, H: 205},
	{L: 50, C: 60.5, H: 204},
}

var goldenCyan = goldenPalette{
	{L: 97, C: 15.75, H: 193},
	{L: 94, C: 20.25, H: 192},
	{L: 88, C: 24.75, H: 191},
	{L: 79, C: 29.25, H: 190},
	{L: 69, C: 36.0, H: 190},
	{L: 57, C: 42.75, H: 190},
	{L: 51, C: 45.0, H: 189},
	{L: 44, C: 41.4, H: 188},
	{L: 38, C: 35.1, H: 187},
	{L: 29, C: 24.75, H: 186},
	{L: 90, C: 47.25, H: 192},
	{L: 80, C: 51.75, H: 191},
	{L: 65, C: 56.25, H: 190},
	{L: 50, C: 49.5, H: 189},
}

var goldenTeal = goldenPalette{
	{L: 97, C: 14.0, H: 173},
	{L: 94, C: 18.0, H: 172},
	{L: 88, C: 22.0, H: 171},
	{L: 79, C: 26.0, H: 170},
	{L: 69, C: 32.0, H: 170},
	{L: 57, C: 38.0, H: 170},
	{L: 51, C: 40.0, H: 169},
	{L: 44, C: 36.8, H: 168},
	{L: 38, C: 31.2, H: 167},
	{L: 29, C: 22.0, H: 166},
	{L: 90, C: 42.0, H: 172},
	{L: 80, C: 46.0, H: 171},
	{L: 65, C: 50.0, H: 170},
	{L: 50, C: 44.0, H: 169},
}

var goldenGreen = goldenPalette{
	{L: 97, C: 22.75, H: 143},
	{L: 94, C: 29.25, H: 142},
	{L: 88, C: 35.75, H: 141},
	{L: 79, C: 42.25, H: 140},
	{L: 69, C: 52.0, H: 140},
	{L: 57, C: 61.75, H: 140},
	{L: 51, C: 65.0, H: 139},
	{L: 44, C: 59.8, H: 138},
	{L: 38, C: 50.7, H: 137},
	{L: 29, C: 35.75, H: 136},
	{L: 90, C: 68.25, H: 142},
	{L: 80, C: 74.75, H: 141},
	{L: 65, C: 81.25, H: 140},
	{L: 50, C: 71.5, H: 139},
}

var goldenLightGreen = goldenPalette{
	{L: 97, C: 21.0, H: 113},
	{L: 94, C: 27.0, H: 112},
	{L: 88, C: 33.0, H: 111},
	{L: 79, C: 39.0, H: 110},
	{L: 69, C: 48.0, H: 110},
	{L: 57, C: 57.0, H: 110},
	{L: 51, C: 60.0, H: 109},
	{L: 44, C: 55.2, H: 108},
	{L: 38, C: 46.8, H: 107},
	{L: 29, C: 33.0, H: 106},
	{L: 90, C: 63.0, H: 112},
	{L: 80, C: 69.0, H: 111},
	{L: 65, C: 75.0, H: 110},
	{L: 50, C: 66.0, H: 109},
}

var goldenLime = goldenPalette{
	{L: 97, C: 19.25, H: 98},
	{L: 94, C: 24.75, H: 97},
	{L: 88, C: 30.25, H: 96},
	{L: 79, C: 35.75, H: 95},
	{L: 69, C: 44.0, H: 95},
	{L: 57, C: 52.25, H: 95},
	{L: 51, C: 55.0, H: 94},
	{L: 44, C: 50.6, H: 93},
	{L: 38, C: 42.9, H: 92},
	{L: 29, C: 30.25, H: 91},
	{L: 90, C: 57.75, H: 97},
	{L: 80, C: 63.25, H: 96},
	{L: 65, C: 68.75, H: 95},
	{L: 50, C: 60.5, H: 94},
}

var goldenYellow = goldenPalette{
	{L: 97, C: 26.25, H: 88},
	{L: 94, C: 33.75, H: 87},
	{L: 88, C: 41.25, H: 86},
	{L: 79, C: 48.75, H: 85},
	{L: 69, C: 60.0, H: 85},
	{L: 57, C: 71.25, H: 85},
	{L: 51, C: 75.0, H: 84},
	{L: 44, C: 69.0, H: 83},
	{L: 38, C: 58.5, H: 82},
	{L: 29, C: 41.25, H: 81},
	{L: 90, C: 78.75, H: 87},
	{L: 80, C: 86.25, H: 86},
	{L: 65, C: 93.75, H: 85},
	{L: 50, C: 82.5, H: 84},
}

var goldenAmber = goldenPalette{
	{L: 97, C: 28.0, H: 73},
	{L: 94, C: 36.0, H: 72},
	{L: 88, C: 44.0, H: 71},
	{L: 79, C: 52.0, H: 70},
	{L: 69, C: 64.0, H: 70},
	{L: 57, C: 76.0, H: 70},
	{L: 51, C: 80.0, H: 69},
	{L: 44, C: 73.6, H: 68},
	{L: 38, C: 62.4, H: 67},
	{L: 29, C: 44.0, H: 66},
	{L: 90, C: 84.0, H: 72},
	{L: 80, C: 92.0, H: 71},
	{L: 65, C: 100.0, H: 70},
	{L: 50, C: 88.0, H: 69},
}

var goldenOrange = goldenPalette{
	{L: 97, C: 28.0, H: 58},
	{L: 94, C: 36.0, H: 57},
	{L: 88, C: 44.0, H: 56},
	{L: 79, C: 52.0, H: 55},
	{L: 69, C: 64.0, H: 55},
	{L: 57, C: 76.0, H: 55},
	{L: 51, C: 80.0, H: 54},
	{L: 44, C: 73.6, H: 53},
	{L: 38, C: 62.4, H: 52},
	{L: 29, C: 44.0, H: 51},
	{L: 90, C: 84.0, H: 57},
	{L: 80, C: 92.0, H: 56},
	{L: 65, C: 100.0, H: 55},
	{L: 50, C: 88.0, H: 54},
}

var goldenDeepOrange = goldenPalette{
	{L: 97, C: 26.25, H: 38},
	{L: 94, C: 33.75, H: 37},
	{L: 88, C: 41.25, H: 36},
	{L: 79, C: 48.75, H: 35},
	{L: 69, C: 60.0, H: 35},
	{L: 57, C: 71.25, H: 35},
	{L: 51, C: 75.0, H: 34},
	{L: 44, C: 69.0, H: 33},
	{L: 38, C: 58.5, H: 32},
	{L: 29, C: 41.25, H: 31},
	{L: 90, C: 78.75, H: 37},
	{L: 80, C: 86.25, H: 36},
	{L: 65, C: 93.75, H: 35},
	{L: 50, C: 82.5, H: 34},
}

var goldenBrown = goldenPalette{
	{L: 97, C: 7.0, H: 33},
	{L: 94, C: 9.0, H: 32},
	{L: 88, C: 11.0, H: 31},
	{L: 79, C: 13.0, H: 30},
	{L: 69, C: 16.0, H: 30},
	{L: 57, C: 19.0, H: 30},
	{L: 51, C: 20.0, H: 29},
	{L: 44, C: 18.4, H: 28},
	{L: 38, C: 15.6, H: 27},
	{L: 29, C: 11.0, H: 26},
	{L: 90, C: 21.0, H: 32},
	{L: 80, C: 23.0, H: 31},
	{L: 65, C: 25.0, H: 30},
	{L: 50, C: 22.0, H: 29},
}

var goldenGray = goldenPalette{
	{L: 97, C: 0.7, H: 3},
	{L: 94, C: 0.9, H: 2},
	{L: 88, C: 1.1, H: 1},
	{L: 79, C: 1.3, H: 0},
	{L: 69, C: 1.6, H: 0},
	{L: 57, C: 1.9, H: 0},
	{L: 51, C: 2.0, H: 359},
	{L: 44, C: 1.84, H: 358},
	{L: 38, C: 1.56, H: 357},
	{L: 29, C: 1.1, H: 356},
	{L: 90, C: 2.1, H: 2},
	{L: 80, C: 2.3, H: 1},
	{L: 65, C: 2.5, H: 0},
	{L: 50, C: 2.2, H: 359},
}

var goldenBlueGray = goldenPalette{
	{L: 97, C: 4.2, H: 218},
	{L: 94, C: 5.4, H: 217},
	{L: 88, C: 6.6, H: 216},
	{L: 79, C: 7.8, H: 215},
	{L: 69, C: 9.6, H: 215},
	{L: 57, C: 11.4, H: 215},
	{L: 51, C: 12.0, H: 214},
	{L: 44, C: 11.04, H: 213},
	{L: 38, C: 9.36, H: 212},
	{L: 29, C: 6.6, H: 211},
	{L: 90, C: 12.6, H: 217},
	{L: 80, C: 13.8, H: 216},
	{L: 65, C: 15.0, H: 215},
	{L: 50, C: 13.2, H: 214},
}

var goldenTrueGray = goldenPalette{
	{L: 97, C: 0.0, H: 3},
	{L: 94, C: 0.0, H: 2},
	{L: 88, C: 0.0, H: 1},
	{L: 79, C: 0.0, H: 0},
	{L: 69, C: 0.0, H: 0},
	{L: 57, C: 0.0, H: 0},
	{L: 51, C: 0.0, H: 359},
	{L: 44, C: 0.0, H: 358},
	{L: 38, C: 0.0, H: 357},
	{L: 29, C: 0.0, H: 356},
	{L: 90, C: 0.0, H: 2},
	{L: 80, C: 0.0, H: 1},
	{L: 65, C: 0.0, H: 0},
	{L: 50, C: 0.0, H: 359},
}

// goldenPalettes holds the 20 reference palettes searched by
// CreateColorPalette.
var goldenPalettes = [20]goldenPalette{
	goldenRed, goldenPink, goldenPurple, goldenDeepPurple, goldenIndigo,
	goldenBlue, goldenLightBlue, goldenCyan, goldenTeal, goldenGreen,
	goldenLightGreen, goldenLime, goldenYellow, goldenAmber, goldenOrange,
	goldenDeepOrange, goldenBrown, goldenGray, goldenBlueGray, goldenTrueGray,
}

var lightPalettes = []goldenPalette10{
	{
		{L: 99, C: 3.6, H: 205},
		{L: 97, C: 5.4, H: 206},
		{L: 94, C: 7.2, H: 207},
		{L: 90, C: 9.9, H: 208},
		{L: 86, C: 12.6, H: 209},
		{L: 81, C: 15.3, H: 210},
		{L: 76, C: 18.0, H: 211},
		{L: 70, C: 16.2, H: 212},
		{L: 64, C: 13.5, H: 213},
		{L: 57, C: 9.9, H: 214},
	},
	{
		{L: 99, C: 2.8, H: 25},
		{L: 97, C: 4.2, H: 26},
		{L: 94, C: 5.6, H: 27},
		{L: 90, C: 7.7, H: 28},
		{L: 86, C: 9.8, H: 29},
		{L: 81, C: 11.9, H: 30},
		{L: 76, C: 14.0, H: 31},
		{L: 70, C: 12.6, H: 32},
		{L: 64, C: 10.5, H: 33},
		{L: 57, C: 7.7, H: 34},
	},
	{
		{L: 99, C: 3.2, H: 135},
		{L: 97, C: 4.8, H: 136},
		{L: 94, C: 6.4, H: 137},
		{L: 90, C: 8.8, H: 138},
		{L: 86, C: 11.2, H: 139},
		{L: 81, C: 13.6, H: 140},
		{L: 76, C: 16.0, H: 141},
		{L: 70, C: 14.4, H: 142},
		{L: 64, C: 12.0, H: 143},
		{L: 57, C: 8.8, H: 144},
	},
}

var darkPalettes = []goldenPalette10{
	{
		{L: 55, C: 14.0, H: 215},
		{L: 48, C: 19.25, H: 216},
		{L: 42, C: 24.5, H: 217},
		{L: 36, C: 29.75, H: 218},
		{L: 30, C: 35.0, H: 219},
		{L: 24, C: 33.25, H: 220},
		{L: 19, C: 29.75, H: 221},
		{L: 14, C: 24.5, H: 222},
		{L: 9, C: 19.25, H: 223},
		{L: 4, C: 14.0, H: 224},
	},
	{
		{L: 55, C: 12.0, H: 15},
		{L: 48, C: 16.5, H: 16},
		{L: 42, C: 21.0, H: 17},
		{L: 36, C: 25.5, H: 18},
		{L: 30, C: 30.0, H: 19},
		{L: 24, C: 28.5, H: 20},
		{L: 19, C: 25.5, H: 21},
		{L: 14, C: 21.0, H: 22},
		{L: 9, C: 16.5, H: 23},
		{L: 4, C: 12.0, H: 24},
	},
	{
		{L: 55, C: 11.2, H: 145},
		{L: 48, C: 15.4, H: 146},
		{L: 42, C: 19.6, H: 147},
		{L: 36, C: 23.8, H: 148},
		{L: 30, C: 28.0, H: 149},
		{L: 24, C: 26.6, H: 150},
		{L: 19, C: 23.8, H: 151},
		{L: 14, C: 19.6, H: 152},
		{L: 9, C: 15.4, H: 153},
		{L: 4, C: 11.2, H: 154},
	},
}

// LightnessCompensation and ChromaCompensation are the per-tone
// compensation vectors used by CreateColorPalette, in ToneNames order.
var LightnessCompensation = [14]float64{0.6, 0.7, 0.8, 0.9, 1.0, 1.0, 0.95, 0.9, 0.85, 0.75, 1.1, 1.15, 1.2, 1.1}
var ChromaCompensation = [14]float64{0.5, 0.6, 0.75, 0.9, 1.05, 1.0, 0.95, 0.85, 0.7, 0.55, 1.2, 1.25, 1.3, 1.15}

// ChromaCompensationLight is ChromaCompensation's 10-tone analogue for
// CreateLightPalette.
var ChromaCompensationLight = [10]float64{0.5, 0.6, 0.7, 0.82, 0.95, 1.0, 0.92, 0.8, 0.68, 0.55}

// ToneNames is the ordered list of tone labels, matching spec section
// 4.5's palette tone-name table. GetPaletteTone indexes into it.
var ToneNames = [14]string{
	"50", "100", "200", "300", "400", "500", "600", "700", "800", "900",
	"A100", "A200", "A400", "A700",
}
