// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package color

import (
	"testing"

	"github.com/chromalab/chromatic/illuminant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXyzRoundTrip(t *testing.T) {
	c, err := New(0.2, 0.3, 0.5, 1)
	require.NoError(t, err)
	xyz, err := c.ToXyz()
	require.NoError(t, err)
	back, err := xyz.ToRgb("")
	require.NoError(t, err)
	assert.InDelta(t, c.R, back.R, 1e-8)
	assert.InDelta(t, c.G, back.G, 1e-8)
	assert.InDelta(t, c.B, back.B, 1e-8)
}

func TestWhiteIsWhitepoint(t *testing.T) {
	xyz, err := White.ToXyz()
	require.NoError(t, err)
	wp, err := illuminant.GetWhitepoint(xyz.Whitepoint)
	require.NoError(t, err)
	// The RGB->XYZ matrix is rounded to space.DefaultDigits (8) decimals,
	// so white lands within about 1e-8 of the whitepoint.
	assert.InDelta(t, 1.0, xyz.Y, 1e-7)
	assert.InDelta(t, wp[0], xyz.X, 1e-7)
	assert.InDelta(t, wp[2], xyz.Z, 1e-7)
}

func TestBlackIsOrigin(t *testing.T) {
	xyz, err := Black.ToXyz()
	require.NoError(t, err)
	assert.InDelta(t, 0, xyz.X, 1e-9)
	assert.InDelta(t, 0, xyz.Y, 1e-9)
	assert.InDelta(t, 0, xyz.Z, 1e-9)
}
