// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package adapt computes and memoizes chromatic adaptation matrices
// between illuminant whitepoints. The cone-response matrices (Bradford,
// CAT16, ...) are the published matrices reproduced in the
// dominikh-go-color example's cat.go; the memoization strategy mirrors
// the teacher's lazily-initialized, process-wide caches (e.g.
// colors/matcolor.Tones).
package adapt

import (
	"fmt"
	"sync"

	"github.com/chromalab/chromatic/chromaerr"
	"github.com/chromalab/chromatic/illuminant"
	"github.com/chromalab/chromatic/matrix"
)

// Method is a named cone-response transform used to build an adaptation
// matrix: ToCone projects XYZ into cone-response space, FromCone projects
// back.
type Method struct {
	Name     string
	ToCone   matrix.Matrix3
	FromCone matrix.Matrix3
}

var (
	methodsMu sync.RWMutex
	methods   = map[string]*Method{}
)

func init() {
	registerBuiltin(&Method{
		Name:     "xyzscaling",
		ToCone:   matrix.Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		FromCone: matrix.Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	})
	registerBuiltin(&Method{
		Name: "vonkries",
		ToCone: matrix.Matrix3{
			{0.40024, 0.70760, -0.08081},
			{-0.22630, 1.16532, 0.04570},
			{0, 0, 0.91822},
		},
		FromCone: matrix.Matrix3{
			{1.8599363874558398, -1.1293816185800916, 0.21989740959619331},
			{0.3611914362417676, 0.6388124632850422, -0.000006370596838},
			{0, 0, 1.0890636230968613},
		},
	})
	registerBuiltin(&Method{
		Name: "bradford",
		ToCone: matrix.Matrix3{
			{0.8951, 0.2664, -0.1614},
			{-0.7502, 1.7135, 0.0367},
			{0.0389, -0.0685, 1.0296},
		},
		FromCone: matrix.Matrix3{
			{0.9869929054667121, -0.14705425642099013, 0.15996265166373122},
			{0.4323052697233945, 0.5183602715367774, 0.049291228212855594},
			{-0.00852866457517732, 0.04004282165408486, 0.96848669578755},
		},
	})
	registerBuiltin(&Method{
		Name: "cat02",
		ToCone: matrix.Matrix3{
			{0.7328, 0.4296, -0.1624},
			{-0.7036, 1.6975, 0.0061},
			{0.0030, 0.0136, 0.9834},
		},
		FromCone: matrix.Matrix3{
			{1.0961238208355142, -0.27886900021828726, 0.18274517938277307},
			{0.45436904197535916, 0.4735331543074117, 0.0720978037172291},
			{-0.009627608738429355, -0.00569803121611342, 1.0153256399445427},
		},
	})
	registerBuiltin(&Method{
		Name: "cat16",
		ToCone: matrix.Matrix3{
			{0.401288, 0.650173, -0.051461},
			{-0.250268, 1.204414, 0.045854},
			{-0.002079, 0.048952, 0.953127},
		},
		FromCone: matrix.Matrix3{
			{1.862067855087233, -1.0112546305316845, 0.14918677544445172},
			{0.3875265432361372, 0.6214474419314753, -0.008973985167612521},
			{-0.01584149884933386, -0.03412293802851557, 1.0499644368778496},
		},
	})
}

func registerBuiltin(m *Method) {
	methods[m.Name] = m
}

// RegisterMethod adds a new named cone-response method to the registry.
// Registering a duplicate name fails with chromaerr.Precondition.
func RegisterMethod(m *Method) error {
	methodsMu.Lock()
	defer methodsMu.Unlock()
	if _, ok := methods[m.Name]; ok {
		return chromaerr.New(chromaerr.Precondition, "adapt.RegisterMethod",
			fmt.Sprintf("adaptation method %q already registered", m.Name))
	}
	methods[m.Name] = m
	return nil
}

// LookupMethod returns the named method, or an InputDomain error if it is
// not registered.
func LookupMethod(name string) (*Method, error) {
	methodsMu.RLock()
	defer methodsMu.RUnlock()
	m, ok := methods[name]
	if !ok {
		return nil, chromaerr.New(chromaerr.InputDomain, "adapt.LookupMethod",
			fmt.Sprintf("unknown adaptation method %q", name))
	}
	return m, nil
}

// Bradford is the default adaptation method name, used whenever a caller
// does not specify one explicitly.
const Bradford = "bradford"

// cacheKey identifies a memoized adaptation matrix.
type cacheKey struct {
	srcObserver illuminant.Observer
	srcIll      illuminant.Name
	dstObserver illuminant.Observer
	dstIll      illuminant.Name
	method      string
}

// Cache is an append-only, process-lifetime map from (source whitepoint,
// destination whitepoint, method) to the resulting 3x3 adaptation matrix.
// It is safe for concurrent use; at-most-once initialization per key is
// not required for correctness because every writer computes the same
// bit-identical matrix for a given key (last-writer-wins is fine).
type Cache struct {
	mu    sync.RWMutex
	cache map[cacheKey]matrix.Matrix3
}

// DefaultCache is the process-wide adaptation matrix cache used by
// Adapt and GetMatrix.
var DefaultCache = NewCache()

// NewCache creates an empty adaptation matrix cache.
func NewCache() *Cache {
	return &Cache{cache: map[cacheKey]matrix.Matrix3{}}
}

// GetMatrix returns the memoized adaptation matrix for srcMeta -> dstMeta
// under the given method, computing and caching it on first use.
func (c *Cache) GetMatrix(srcMeta, dstMeta illuminant.Meta, methodName string) (matrix.Matrix3, error) {
	if methodName == "" {
		methodName = Bradford
	}
	key := cacheKey{srcMeta.Observer, srcMeta.Illuminant, dstMeta.Observer, dstMeta.Illuminant, methodName}

	c.mu.RLock()
	if m, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return m, nil
	}
	c.mu.RUnlock()

	m, err := c.computeMatrix(srcMeta, dstMeta, methodName)
	if err != nil {
		return matrix.Matrix3{}, err
	}

	c.mu.Lock()
	c.cache[key] = m
	c.mu.Unlock()
	return m, nil
}

func (c *Cache) computeMatrix(srcMeta, dstMeta illuminant.Meta, methodName string) (matrix.Matrix3, error) {
	method, err := LookupMethod(methodName)
	if err != nil {
		return matrix.Matrix3{}, err
	}

	ws, err := illuminant.GetWhitepoint(srcMeta)
	if err != nil {
		return matrix.Matrix3{}, err
	}
	wd, err := illuminant.GetWhitepoint(dstMeta)
	if err != nil {
		return matrix.Matrix3{}, err
	}

	rs := matrix.LinearTransform(method.ToCone, ws)
	rd := matrix.LinearTransform(method.ToCone, wd)

	d := matrix.Diag(matrix.Vec3{rd[0] / rs[0], rd[1] / rs[1], rd[2] / rs[2]})

	// Adapted = FromCone * D * ToCone. Some reference implementations
	// (CSS Color 4) round the inverted cone matrix to 7 decimals before
	// this step; we do not by default, which matches the unrounded
	// Lindbloom result the spec calls the default behavior.
	return matrix.Multiply(matrix.Multiply(method.FromCone, d), method.ToCone), nil
}

// GetMatrix looks the adaptation matrix up (or computes and caches it) in
// the process-wide DefaultCache.
func GetMatrix(srcMeta, dstMeta illuminant.Meta, methodName string) (matrix.Matrix3, error) {
	return DefaultCache.GetMatrix(srcMeta, dstMeta, methodName)
}

// Adapt transforms values from srcMeta's whitepoint to dstMeta's
// whitepoint under the named method (default Bradford).
func Adapt(values matrix.Vec3, srcMeta, dstMeta illuminant.Meta, methodName string) (matrix.Vec3, error) {
	m, err := GetMatrix(srcMeta, dstMeta, methodName)
	if err != nil {
		return matrix.Vec3{}, err
	}
	return matrix.LinearTransform(m, values), nil
}
