// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertHexRoundTrip checks that back reproduces want to within 1 unit
// of 8-bit precision per channel. Models that round hue to the nearest
// integer degree (HSV, HSL, HWB) cannot reproduce an arbitrary input's
// exact hex string, since the hue quantization itself perturbs the
// reconstructed channels slightly; spec section 8's round-trip
// invariant is stated at hex precision, not bit-exact float equality.
func assertHexRoundTrip(t *testing.T, want, got Rgb) {
	t.Helper()
	wr, wg, wb, _ := want.ToValues()
	gr, gg, gb, _ := got.ToValues()
	assert.InDelta(t, wr, gr, 1, "R channel")
	assert.InDelta(t, wg, gg, 1, "G channel")
	assert.InDelta(t, wb, gb, 1, "B channel")
}
