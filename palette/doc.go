// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette synthesizes a harmonious tonal palette from a single
// seed color by finding the nearest of a fixed set of "golden" reference
// palettes in Lab space and reshaping it around the seed's own
// lightness, chroma, and hue, per spec section 4.7.
package palette
