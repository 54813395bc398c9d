// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRgbToHsvPureRed(t *testing.T) {
	c, err := New(1, 0, 0, 1)
	require.NoError(t, err)
	hsv := c.ToHsv()
	assert.InDelta(t, 0, hsv.H, 1e-9)
	assert.InDelta(t, 1, hsv.S, 1e-9)
	assert.InDelta(t, 1, hsv.V, 1e-9)
}

func TestHsvRoundTrip(t *testing.T) {
	c, err := New(0.2, 0.3, 0.5, 1)
	require.NoError(t, err)
	back, err := c.ToHsv().ToRgb("")
	require.NoError(t, err)
	assertHexRoundTrip(t, c, back)
}

func TestFromHSV(t *testing.T) {
	c, err := FromHSV(0, 100, 100, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1, c.R, 1e-9)
	assert.InDelta(t, 0, c.G, 1e-9)
	assert.InDelta(t, 0, c.B, 1e-9)
}

func TestHsvGrayHasZeroSaturation(t *testing.T) {
	c, err := New(0.5, 0.5, 0.5, 1)
	require.NoError(t, err)
	hsv := c.ToHsv()
	assert.InDelta(t, 0, hsv.S, 1e-9)
}

