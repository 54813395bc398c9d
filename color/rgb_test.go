// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsOutOfRange(t *testing.T) {
	_, err := New(1.5, 0, 0, 1)
	require.Error(t, err)
}

func TestFromRGB255AndToValues(t *testing.T) {
	c, err := FromRGB255(170, 136, 238, 1)
	require.NoError(t, err)
	r, g, b, a := c.ToValues()
	assert.Equal(t, 170, r)
	assert.Equal(t, 136, g)
	assert.Equal(t, 238, b)
	assert.Equal(t, 1.0, a)
}

func TestToCss(t *testing.T) {
	c, err := New(1, 0, 0, 0.5)
	require.NoError(t, err)
	assert.Equal(t, "rgba(255, 0, 0, 0.5)", c.ToCss())
}

func TestRelativeLuminanceOfWhiteAndBlack(t *testing.T) {
	lw, err := White.RelativeLuminance()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, lw, 1e-9)

	lb, err := Black.RelativeLuminance()
	require.NoError(t, err)
	assert.InDelta(t, 0.0, lb, 1e-9)
}

func TestContrastRatioWhiteBlack(t *testing.T) {
	ratio, err := ContrastRatio(White, Black)
	require.NoError(t, err)
	assert.InDelta(t, 21.0, ratio, 1e-9)
}

func TestToneClassification(t *testing.T) {
	tone, err := Tone(White, DefaultMinContrast)
	require.NoError(t, err)
	assert.Equal(t, "light", tone)

	tone, err = Tone(Black, DefaultMinContrast)
	require.NoError(t, err)
	assert.Equal(t, "dark", tone)
}

func TestIsHexColor(t *testing.T) {
	assert.True(t, IsHexColor("#aa88ee"))
	assert.False(t, IsHexColor("not-hex"))
}

func TestRotateHue(t *testing.T) {
	c, err := FromHex("#FF0000")
	require.NoError(t, err)
	rotated, err := c.RotateHue(120)
	require.NoError(t, err)
	h := rotated.ToHsl()
	assert.InDelta(t, 120, h.H, 1e-6)
}
