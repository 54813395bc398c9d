// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adapt

import (
	"testing"

	"github.com/chromalab/chromatic/illuminant"
	"github.com/chromalab/chromatic/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdaptRoundTrip(t *testing.T) {
	d50 := illuminant.Meta{Illuminant: illuminant.D50, Method: illuminant.ASTME308}
	d65 := illuminant.Meta{Illuminant: illuminant.D65, Method: illuminant.ASTME308}

	v := matrix.Vec3{0.5, 0.4, 0.3}
	cache := NewCache()

	adapted, err := cache.GetMatrix(d50, d65, Bradford)
	require.NoError(t, err)
	back, err := cache.GetMatrix(d65, d50, Bradford)
	require.NoError(t, err)

	forward := matrix.LinearTransform(adapted, v)
	roundTrip := matrix.LinearTransform(back, forward)

	for i := 0; i < 3; i++ {
		assert.InDelta(t, v[i], roundTrip[i], 1e-10)
	}
}

func TestBradfordD50ToD65Sanity(t *testing.T) {
	d50 := illuminant.Meta{Illuminant: illuminant.D50, Method: illuminant.ASTME308}
	d65 := illuminant.Meta{Illuminant: illuminant.D65, Method: illuminant.ASTME308}
	m, err := GetMatrix(d50, d65, Bradford)
	require.NoError(t, err)

	// Published Lindbloom Bradford D50->D65 matrix, loose tolerance since
	// our whitepoints are reproduced independently.
	want := matrix.Matrix3{
		{0.9555766, -0.0230393, 0.0631636},
		{-0.0282895, 1.0099416, 0.0210077},
		{0.0122982, -0.0204830, 1.3299098},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, want[i][j], m[i][j], 1e-3)
		}
	}
}

func TestRegisterMethodDuplicate(t *testing.T) {
	err := RegisterMethod(&Method{Name: Bradford})
	require.Error(t, err)
}

func TestLookupMethodUnknown(t *testing.T) {
	_, err := LookupMethod("does-not-exist")
	require.Error(t, err)
}

func TestIdentityAdaptation(t *testing.T) {
	d65 := illuminant.Meta{Illuminant: illuminant.D65}
	v := matrix.Vec3{0.1, 0.2, 0.3}
	out, err := Adapt(v, d65, d65, Bradford)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, v[i], out[i], 1e-9)
	}
}
