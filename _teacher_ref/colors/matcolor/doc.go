// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matcolor provides support for creating
// Material Design 3 color schemes and palettes.
package matcolor
