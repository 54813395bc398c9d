// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package color

import (
	"fmt"

	"github.com/chromalab/chromatic/internal/numutil"
)

// hslaString formats h as CSS hsla(H, S%, L%, A), with H/S/L rounded to
// integers and A printed verbatim.
func hslaString(h Hsl) string {
	hDeg := int(numutil.RoundFloat(numutil.WrapDeg(h.H), 0))
	sPct := int(numutil.RoundFloat(h.S*100, 0))
	lPct := int(numutil.RoundFloat(h.L*100, 0))
	return fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)", hDeg, sPct, lPct, trimFloat(h.Alpha))
}
