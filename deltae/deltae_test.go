// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deltae

import (
	"testing"

	"github.com/chromalab/chromatic/color"
	"github.com/stretchr/testify/assert"
)

func TestE76OfSelfIsZero(t *testing.T) {
	lab := color.Lab{L: 50, A: 20, B: -10}
	assert.Equal(t, 0.0, E76(lab, lab))
}

func TestE94OfSelfIsZero(t *testing.T) {
	lab := color.Lab{L: 50, A: 20, B: -10}
	assert.Equal(t, 0.0, E94(lab, lab, GraphicArts))
	assert.Equal(t, 0.0, E94(lab, lab, Textiles))
}

func TestE2000OfSelfIsZero(t *testing.T) {
	lab := color.Lab{L: 50, A: 20, B: -10}
	assert.InDelta(t, 0, E2000(lab, lab), 1e-9)
}

func TestECMCOfSelfIsZero(t *testing.T) {
	lab := color.Lab{L: 50, A: 20, B: -10}
	assert.InDelta(t, 0, ECMC(lab, lab, DefaultCMCParams), 1e-9)
}

func TestE2000MatchesSharmaReferenceVector(t *testing.T) {
	lab1 := color.Lab{L: 100, A: 0, B: 10}
	lab2 := color.Lab{L: 100, A: 0.1, B: -127.5}
	got := E2000(lab1, lab2)
	assert.InDelta(t, 41.69699725982907, got, 1e-6)
}

func TestE2000IsApproximatelySymmetric(t *testing.T) {
	lab1 := color.Lab{L: 60, A: 10, B: -5}
	lab2 := color.Lab{L: 55, A: 14, B: 2}
	assert.InDelta(t, E2000(lab1, lab2), E2000(lab2, lab1), 5e-5)
}

func TestECMCHueBranches(t *testing.T) {
	inBand := color.Lab{L: 50, A: -30, B: -10} // hue near 198, inside [164, 345]
	outBand := color.Lab{L: 50, A: 10, B: 10}  // hue near 45, outside [164, 345]
	target := color.Lab{L: 52, A: 0, B: 0}
	assert.Greater(t, ECMC(inBand, target, DefaultCMCParams), 0.0)
	assert.Greater(t, ECMC(outBand, target, DefaultCMCParams), 0.0)
}
