// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiplyIdentity(t *testing.T) {
	id := Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	a := Matrix3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	assert.Equal(t, a, Multiply(id, a))
}

func TestLinearTransform(t *testing.T) {
	m := Matrix3{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}}
	v := Vec3{1, 2, 3}
	assert.Equal(t, Vec3{2, 6, 12}, LinearTransform(m, v))
}

func TestInvertRoundTrip(t *testing.T) {
	a := Matrix3{
		{0.4124, 0.3576, 0.1805},
		{0.2126, 0.7152, 0.0722},
		{0.0193, 0.1192, 0.9505},
	}
	inv, err := Invert(a)
	require.NoError(t, err)
	roundTrip := Multiply(a, inv)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, roundTrip[i][j], 1e-9)
		}
	}
}

func TestInvertSingular(t *testing.T) {
	a := Matrix3{{1, 2, 3}, {2, 4, 6}, {1, 1, 1}}
	_, err := Invert(a)
	require.Error(t, err)
}

func TestRound(t *testing.T) {
	a := Matrix3{{0.123456, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	r := Round(a, 4)
	assert.Equal(t, 0.1235, r[0][0])

	unrounded := Round(a, -1)
	assert.Equal(t, a, unrounded)
}
