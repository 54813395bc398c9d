// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matrix provides the 3x3 / 1x3 linear algebra the colorimetry
// core builds on: primary-to-XYZ derivation, chromatic adaptation, and
// Lab/Luv conversion all reduce to multiplying, inverting, and rounding
// small matrices.
package matrix

import (
	"math"

	"github.com/chromalab/chromatic/chromaerr"
	"github.com/chromalab/chromatic/internal/numutil"
)

// Vec3 is a length-3 vector, typically XYZ or linear RGB.
type Vec3 [3]float64

// Add returns the elementwise sum of v and w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Scale returns v with every component multiplied by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Matrix3 is a row-major 3x3 matrix.
type Matrix3 [3][3]float64

// Multiply returns a*b.
func Multiply(a, b Matrix3) Matrix3 {
	var out Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// LinearTransform returns m*v.
func LinearTransform(m Matrix3, v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// singularEpsilon is the determinant magnitude below which Invert refuses
// to proceed, matching spec's suggested 1e-12.
const singularEpsilon = 1e-12

// Invert computes the inverse of a via the cofactor/adjugate method,
// dividing by the determinant. It fails with chromaerr.Singular if
// |det(a)| < 1e-12.
func Invert(a Matrix3) (Matrix3, error) {
	det := a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])

	if math.Abs(det) < singularEpsilon {
		return Matrix3{}, chromaerr.New(chromaerr.Singular, "matrix.Invert", "determinant too small to invert")
	}

	invDet := 1 / det
	var out Matrix3
	out[0][0] = (a[1][1]*a[2][2] - a[1][2]*a[2][1]) * invDet
	out[0][1] = (a[0][2]*a[2][1] - a[0][1]*a[2][2]) * invDet
	out[0][2] = (a[0][1]*a[1][2] - a[0][2]*a[1][1]) * invDet
	out[1][0] = (a[1][2]*a[2][0] - a[1][0]*a[2][2]) * invDet
	out[1][1] = (a[0][0]*a[2][2] - a[0][2]*a[2][0]) * invDet
	out[1][2] = (a[0][2]*a[1][0] - a[0][0]*a[1][2]) * invDet
	out[2][0] = (a[1][0]*a[2][1] - a[1][1]*a[2][0]) * invDet
	out[2][1] = (a[0][1]*a[2][0] - a[0][0]*a[2][1]) * invDet
	out[2][2] = (a[0][0]*a[1][1] - a[0][1]*a[1][0]) * invDet
	return out, nil
}

// Round applies numutil.RoundFloat to every element of a. digits < 0
// (or, per space.GetTransformMatrix's convention, -1) leaves a unrounded.
func Round(a Matrix3, digits int) Matrix3 {
	if digits < 0 {
		return a
	}
	var out Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = numutil.RoundFloat(a[i][j], digits)
		}
	}
	return out
}

// Diag builds a diagonal matrix from a vector, used by the chromatic
// adaptation pipeline (D = diag(Rd/Rs)) and by RGB-space derivation
// (S = diag(whitepoint-solved scale factors)).
func Diag(v Vec3) Matrix3 {
	return Matrix3{
		{v[0], 0, 0},
		{0, v[1], 0},
		{0, 0, v[2]},
	}
}
