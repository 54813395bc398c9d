// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package space implements the RGB working-space layer: primaries and
// whitepoint derive the RGB<->XYZ matrices lazily, and a registry of
// named spaces parallels the teacher's pattern of a process-wide,
// write-once registry (grounded on dominikh-go-color/spaces.go's
// RegisterColorSpace/LookupColorSpace, adapted from a color-space tree
// to the flat RGB-space registry this spec calls for).
package space

import (
	"fmt"
	"sync"

	"github.com/chromalab/chromatic/adapt"
	"github.com/chromalab/chromatic/chromaerr"
	"github.com/chromalab/chromatic/illuminant"
	"github.com/chromalab/chromatic/matrix"
)

// TransferFunc maps a single channel value through a transfer function.
// It must be defined for v >= 0; Space wraps it into an odd extension
// (sign(v)*f(|v|)) automatically so out-of-gamut negative linear values
// still round-trip.
type TransferFunc func(v float64) float64

// Primaries holds the XYZ tristimulus (Y=1) of the three RGB primaries,
// derived from their xy chromaticity coordinates.
type Primaries struct {
	R, G, B matrix.Vec3
}

// DefaultDigits is the matrix-rounding precision GetTransformMatrix uses
// when the caller does not specify one.
const DefaultDigits = 8

// Space describes one RGB working space: its primaries, reference
// whitepoint, and encode/decode transfer functions. Use NewFromXY to construct
// one from xy primaries; the RGB<->XYZ matrices are derived lazily on
// first use and cached thereafter.
type Space struct {
	Name       string
	Primaries  Primaries
	Whitepoint illuminant.Meta

	// toLinear is the EOTF (gamma -> linear); toGamma is the OETF
	// (linear -> gamma). Both are defined for non-negative input; Space
	// applies the odd extension itself.
	toLinear TransferFunc
	toGamma  TransferFunc

	mu    sync.Mutex
	cache map[int]transformPair
}

type transformPair struct {
	toXyz matrix.Matrix3
	toRgb matrix.Matrix3
}

// NewFromXY builds a Space from xy chromaticity coordinates for the three
// primaries and the whitepoint, plus the space's transfer functions.
func NewFromXY(name string, rXY, gXY, bXY illuminant.Chromaticity, whitepoint illuminant.Meta, toLinear, toGamma TransferFunc) *Space {
	return &Space{
		Name: name,
		Primaries: Primaries{
			R: rXY.XYZ(),
			G: gXY.XYZ(),
			B: bXY.XYZ(),
		},
		Whitepoint: whitepoint,
		toLinear:   toLinear,
		toGamma:    toGamma,
		cache:      map[int]transformPair{},
	}
}

// oddExtend wraps f so that f(-v) == -f(v).
func oddExtend(f TransferFunc) TransferFunc {
	return func(v float64) float64 {
		if v < 0 {
			return -f(-v)
		}
		return f(v)
	}
}

// ToLinear applies the space's EOTF to a single (possibly negative,
// out-of-gamut) channel value.
func (s *Space) ToLinear(v float64) float64 { return oddExtend(s.toLinear)(v) }

// ToGamma applies the space's OETF to a single (possibly negative,
// out-of-gamut) channel value.
func (s *Space) ToGamma(v float64) float64 { return oddExtend(s.toGamma)(v) }

// GetTransformMatrix lazily derives and caches the {toXyz, toRgb} matrix
// pair for this space. digits >= 4 rounds the resulting matrices to that
// many decimal places; digits == -1 disables rounding. The zero value of
// digits (i.e. an unset int) is treated as DefaultDigits by callers that
// want the documented default; GetTransformMatrix itself takes the digits
// value literally so call sites can request -1 explicitly.
func (s *Space) GetTransformMatrix(digits int) (toXyz, toRgb matrix.Matrix3, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pair, ok := s.cache[digits]; ok {
		return pair.toXyz, pair.toRgb, nil
	}

	white, err := illuminant.GetWhitepoint(s.Whitepoint)
	if err != nil {
		return matrix.Matrix3{}, matrix.Matrix3{}, err
	}

	primaryMatrix := matrix.Matrix3{
		{s.Primaries.R[0], s.Primaries.G[0], s.Primaries.B[0]},
		{s.Primaries.R[1], s.Primaries.G[1], s.Primaries.B[1]},
		{s.Primaries.R[2], s.Primaries.G[2], s.Primaries.B[2]},
	}
	inv, err := matrix.Invert(primaryMatrix)
	if err != nil {
		return matrix.Matrix3{}, matrix.Matrix3{}, err
	}
	scale := matrix.LinearTransform(inv, white)

	toXyzM := matrix.Matrix3{
		{scale[0] * s.Primaries.R[0], scale[1] * s.Primaries.G[0], scale[2] * s.Primaries.B[0]},
		{scale[0] * s.Primaries.R[1], scale[1] * s.Primaries.G[1], scale[2] * s.Primaries.B[1]},
		{scale[0] * s.Primaries.R[2], scale[1] * s.Primaries.G[2], scale[2] * s.Primaries.B[2]},
	}
	toRgbM, err := matrix.Invert(toXyzM)
	if err != nil {
		return matrix.Matrix3{}, matrix.Matrix3{}, err
	}

	if digits >= 4 {
		toXyzM = matrix.Round(toXyzM, digits)
		toRgbM = matrix.Round(toRgbM, digits)
	}

	s.cache[digits] = transformPair{toXyzM, toRgbM}
	return toXyzM, toRgbM, nil
}

// ToRgb converts XYZ to this space's gamma-encoded, clamped [0,1] RGB.
// If srcIlluminant is non-nil and differs from the space's own
// whitepoint, xyz is first chromatically adapted (Bradford) from
// srcIlluminant to the space's whitepoint.
func (s *Space) ToRgb(xyz matrix.Vec3, srcIlluminant *illuminant.Meta) (matrix.Vec3, error) {
	if srcIlluminant != nil && (srcIlluminant.Illuminant != s.Whitepoint.Illuminant || srcIlluminant.Observer != s.Whitepoint.Observer) {
		var err error
		xyz, err = adapt.Adapt(xyz, *srcIlluminant, s.Whitepoint, adapt.Bradford)
		if err != nil {
			return matrix.Vec3{}, err
		}
	}

	_, toRgbM, err := s.GetTransformMatrix(DefaultDigits)
	if err != nil {
		return matrix.Vec3{}, err
	}
	linear := matrix.LinearTransform(toRgbM, xyz)

	var out matrix.Vec3
	for i := 0; i < 3; i++ {
		v := s.ToGamma(linear[i])
		out[i] = clamp01(v)
	}
	return out, nil
}

// ToXyz converts this space's gamma-encoded RGB to XYZ (gamma is
// inverted first; the result is not clamped). If dstIlluminant is
// non-nil and differs from the space's own whitepoint, the result is
// chromatically adapted (Bradford) to dstIlluminant.
func (s *Space) ToXyz(rgb matrix.Vec3, dstIlluminant *illuminant.Meta) (matrix.Vec3, error) {
	var linear matrix.Vec3
	for i := 0; i < 3; i++ {
		linear[i] = s.ToLinear(rgb[i])
	}

	toXyzM, _, err := s.GetTransformMatrix(DefaultDigits)
	if err != nil {
		return matrix.Vec3{}, err
	}
	xyz := matrix.LinearTransform(toXyzM, linear)

	if dstIlluminant != nil && (dstIlluminant.Illuminant != s.Whitepoint.Illuminant || dstIlluminant.Observer != s.Whitepoint.Observer) {
		xyz, err = adapt.Adapt(xyz, s.Whitepoint, *dstIlluminant, adapt.Bradford)
		if err != nil {
			return matrix.Vec3{}, err
		}
	}
	return xyz, nil
}

// ToRgbSpace converts an RGB vector already in this space's linear or
// gamma domain (the caller is responsible for that choice, matching the
// reference behavior) into another registered space, composing
// outputToRgb * adapt(src.whitepoint, dst.whitepoint) * inputToXyz.
func (s *Space) ToRgbSpace(rgb matrix.Vec3, targetName string, method string) (matrix.Vec3, error) {
	target, err := Lookup(targetName)
	if err != nil {
		return matrix.Vec3{}, err
	}
	if method == "" {
		method = "cat02"
	}

	toXyzM, _, err := s.GetTransformMatrix(DefaultDigits)
	if err != nil {
		return matrix.Vec3{}, err
	}
	_, targetToRgb, err := target.GetTransformMatrix(DefaultDigits)
	if err != nil {
		return matrix.Vec3{}, err
	}
	adaptM, err := adapt.GetMatrix(s.Whitepoint, target.Whitepoint, method)
	if err != nil {
		return matrix.Vec3{}, err
	}

	composed := matrix.Multiply(matrix.Multiply(targetToRgb, adaptM), toXyzM)
	return matrix.LinearTransform(composed, rgb), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

var (
	registryMu sync.RWMutex
	registry   = map[string]*Space{}
)

// Register adds a space to the process-wide registry under s.Name.
// Registering a duplicate name fails with chromaerr.Precondition.
func Register(s *Space) error {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[s.Name]; ok {
		return chromaerr.New(chromaerr.Precondition, "space.Register",
			fmt.Sprintf("color space %q already registered", s.Name))
	}
	registry[s.Name] = s
	return nil
}

// Lookup returns the registered space with the given name.
func Lookup(name string) (*Space, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	s, ok := registry[name]
	if !ok {
		return nil, chromaerr.New(chromaerr.InputDomain, "space.Lookup",
			fmt.Sprintf("unknown color space %q", name))
	}
	return s, nil
}
