// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import (
	"testing"

	"github.com/chromalab/chromatic/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSRGBRoundTrip(t *testing.T) {
	s, err := Lookup(SRGB)
	require.NoError(t, err)

	rgb := matrix.Vec3{0.2, 0.3, 0.5}
	xyz, err := s.ToXyz(rgb, nil)
	require.NoError(t, err)
	back, err := s.ToRgb(xyz, nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.InDelta(t, rgb[i], back[i], 1e-8)
	}
}

func TestAllBuiltinSpacesRoundTrip(t *testing.T) {
	names := []string{SRGB, Rec709, AdobeRGB, CIERGB, DisplayP3, Rec2020, ProPhoto, WideGamut}
	rgb := matrix.Vec3{0.4, 0.6, 0.2}
	for _, name := range names {
		s, err := Lookup(name)
		require.NoError(t, err, name)
		xyz, err := s.ToXyz(rgb, nil)
		require.NoError(t, err, name)
		back, err := s.ToRgb(xyz, nil)
		require.NoError(t, err, name)
		for i := 0; i < 3; i++ {
			assert.InDelta(t, rgb[i], back[i], 1e-7, "%s channel %d", name, i)
		}
	}
}

func TestRegisterDuplicate(t *testing.T) {
	s, _ := Lookup(SRGB)
	err := Register(s)
	require.Error(t, err)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("not-a-space")
	require.Error(t, err)
}

func TestToRgbClamps(t *testing.T) {
	s, err := Lookup(SRGB)
	require.NoError(t, err)
	rgb, err := s.ToRgb(matrix.Vec3{10, 10, 10}, nil)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.Equal(t, 1.0, rgb[i])
	}
}

func TestOddExtension(t *testing.T) {
	s, err := Lookup(SRGB)
	require.NoError(t, err)
	assert.InDelta(t, -s.ToLinear(0.5), s.ToLinear(-0.5), 1e-12)
	assert.InDelta(t, -s.ToGamma(0.5), s.ToGamma(-0.5), 1e-12)
}

func TestToRgbSpaceAdapts(t *testing.T) {
	src, err := Lookup(SRGB)
	require.NoError(t, err)
	rgb := matrix.Vec3{0.3, 0.4, 0.5}
	out, err := src.ToRgbSpace(rgb, ProPhoto, "bradford")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.False(t, out[i] != out[i]) // not NaN
	}
}
