// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHexThreeDigit(t *testing.T) {
	c, err := FromHex("#1A2")
	require.NoError(t, err)
	r, g, b, a := c.ToValues()
	assert.Equal(t, 0x11, r)
	assert.Equal(t, 0xAA, g)
	assert.Equal(t, 0x22, b)
	assert.Equal(t, 1.0, a)
}

func TestFromHexEightDigit(t *testing.T) {
	c, err := FromHex("#FF0000E6")
	require.NoError(t, err)
	assert.InDelta(t, 230.0/255, c.Alpha, 1e-9)
}

func TestFromHexInvalid(t *testing.T) {
	_, err := FromHex("not-a-color")
	require.Error(t, err)
}

func TestToHexDropsAlphaWhenOpaque(t *testing.T) {
	c, err := FromRGB255(170, 136, 238, 1)
	require.NoError(t, err)
	assert.Equal(t, "#AA88EE", c.ToHex())
}

func TestToHexKeepsAlphaWhenTranslucent(t *testing.T) {
	c, err := FromRGB255(255, 0, 0, 0.5)
	require.NoError(t, err)
	assert.Equal(t, "#FF000080", c.ToHex())
}

func TestHexRoundTrip(t *testing.T) {
	c, err := FromHex("#AA88EE")
	require.NoError(t, err)
	assert.Equal(t, "#AA88EE", c.ToHex())
}
