// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYxyRoundTrip(t *testing.T) {
	c, err := New(0.2, 0.3, 0.5, 1)
	require.NoError(t, err)
	xyz, err := c.ToXyz()
	require.NoError(t, err)
	yxy := xyz.ToYxy()
	back := yxy.ToXyz()
	assert.InDelta(t, xyz.X, back.X, 1e-9)
	assert.InDelta(t, xyz.Y, back.Y, 1e-9)
	assert.InDelta(t, xyz.Z, back.Z, 1e-9)
}

func TestYxyOfBlackIsZeroChromaticity(t *testing.T) {
	xyz, err := Black.ToXyz()
	require.NoError(t, err)
	yxy := xyz.ToYxy()
	assert.Equal(t, 0.0, yxy.ChromaX)
	assert.Equal(t, 0.0, yxy.ChromaY)
}
