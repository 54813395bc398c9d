// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package color

import (
	"testing"

	"github.com/chromalab/chromatic/internal/numutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhiteIsLabOrigin(t *testing.T) {
	lab, err := White.ToLab()
	require.NoError(t, err)
	assert.InDelta(t, 100, numutil.RoundFloat(lab.L, 4), 1e-6)
	assert.InDelta(t, 0, numutil.RoundFloat(lab.A, 4), 1e-6)
	assert.InDelta(t, 0, numutil.RoundFloat(lab.B, 4), 1e-6)
}

func TestBlackIsLabZero(t *testing.T) {
	lab, err := Black.ToLab()
	require.NoError(t, err)
	assert.InDelta(t, 0, lab.L, 1e-9)
}

func TestLabRoundTrip(t *testing.T) {
	c, err := New(0.2, 0.3, 0.5, 1)
	require.NoError(t, err)
	lab, err := c.ToLab()
	require.NoError(t, err)
	back, err := lab.ToRgb("")
	require.NoError(t, err)
	assert.InDelta(t, c.R, back.R, 1e-6)
	assert.InDelta(t, c.G, back.G, 1e-6)
	assert.InDelta(t, c.B, back.B, 1e-6)
}

func TestLCHabRoundTrip(t *testing.T) {
	lab := Lab{L: 50, A: 20, B: -30, Alpha: 1}
	lch := lab.ToLCHab()
	back := lch.ToLab()
	assert.InDelta(t, lab.L, back.L, 1e-9)
	assert.InDelta(t, lab.A, back.A, 1e-9)
	assert.InDelta(t, lab.B, back.B, 1e-9)
}

func TestLCHabHueIsWrapped(t *testing.T) {
	lab := Lab{L: 50, A: -20, B: -10, Alpha: 1}
	lch := lab.ToLCHab()
	assert.GreaterOrEqual(t, lch.H, 0.0)
	assert.Less(t, lch.H, 360.0)
}
