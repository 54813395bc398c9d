// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhiteIsLuvOrigin(t *testing.T) {
	luv, err := White.ToLuv()
	require.NoError(t, err)
	assert.InDelta(t, 100, luv.L, 1e-6)
	// The 8-decimal RGB->XYZ matrix leaves white about 1e-8 off the
	// whitepoint, which puts u and v near 1.3e-6.
	assert.InDelta(t, 0, luv.U, 1e-5)
	assert.InDelta(t, 0, luv.V, 1e-5)
}

func TestBlackIsLuvZero(t *testing.T) {
	luv, err := Black.ToLuv()
	require.NoError(t, err)
	assert.InDelta(t, 0, luv.L, 1e-9)
}

func TestLuvRoundTrip(t *testing.T) {
	c, err := New(0.2, 0.3, 0.5, 1)
	require.NoError(t, err)
	luv, err := c.ToLuv()
	require.NoError(t, err)
	back, err := luv.ToRgb("")
	require.NoError(t, err)
	assert.InDelta(t, c.R, back.R, 1e-6)
	assert.InDelta(t, c.G, back.G, 1e-6)
	assert.InDelta(t, c.B, back.B, 1e-6)
}

func TestLCHuvRoundTrip(t *testing.T) {
	luv := Luv{L: 60, U: -15, V: 40, Alpha: 1}
	lch := luv.ToLCHuv()
	back := lch.ToLuv()
	assert.InDelta(t, luv.L, back.L, 1e-9)
	assert.InDelta(t, luv.U, back.U, 1e-9)
	assert.InDelta(t, luv.V, back.V, 1e-9)
}
