// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package illuminant

import "github.com/chromalab/chromatic/matrix"

// chromaticityTable holds the CIE 1931 (2-degree) and CIE 1964 (10-degree)
// xy chromaticity coordinates for the standard illuminants, reproduced
// from CIE 15:2004 tables T.3, T.8, T.8.2, and T.9.
var chromaticityTable = map[key]Chromaticity{
	{Observer2, A}:   {0.44757, 0.40745},
	{Observer2, B}:   {0.34842, 0.35161},
	{Observer2, C}:   {0.31006, 0.31616},
	{Observer2, D50}: {0.34567, 0.35850},
	{Observer2, D55}: {0.33242, 0.34743},
	{Observer2, D65}: {0.31270, 0.32900},
	{Observer2, D75}: {0.29902, 0.31485},
	{Observer2, E}:   {1.0 / 3, 1.0 / 3},
	{Observer2, F1}:  {0.31310, 0.33727},
	{Observer2, F2}:  {0.37208, 0.37529},
	{Observer2, F3}:  {0.40910, 0.39430},
	{Observer2, F4}:  {0.44018, 0.40329},
	{Observer2, F5}:  {0.31379, 0.34531},
	{Observer2, F6}:  {0.37790, 0.38835},
	{Observer2, F7}:  {0.31292, 0.32933},
	{Observer2, F8}:  {0.34588, 0.35875},
	{Observer2, F9}:  {0.37417, 0.37281},
	{Observer2, F10}: {0.34609, 0.35986},
	{Observer2, F11}: {0.38052, 0.37713},
	{Observer2, F12}: {0.43695, 0.40441},

	{Observer10, A}:   {0.45117, 0.40594},
	{Observer10, B}:   {0.34980, 0.35270},
	{Observer10, C}:   {0.31039, 0.31905},
	{Observer10, D50}: {0.34773, 0.35952},
	{Observer10, D55}: {0.33411, 0.34877},
	{Observer10, D65}: {0.31382, 0.33100},
	{Observer10, D75}: {0.29968, 0.31740},
	{Observer10, E}:   {1.0 / 3, 1.0 / 3},
	{Observer10, F1}:  {0.31811, 0.33559},
	{Observer10, F2}:  {0.37925, 0.36733},
	{Observer10, F3}:  {0.41761, 0.38324},
	{Observer10, F4}:  {0.44920, 0.39074},
	{Observer10, F5}:  {0.31975, 0.34246},
	{Observer10, F6}:  {0.38660, 0.37847},
	{Observer10, F7}:  {0.31569, 0.32960},
	{Observer10, F8}:  {0.34902, 0.35939},
	{Observer10, F9}:  {0.37829, 0.37045},
	{Observer10, F10}: {0.35090, 0.35444},
	{Observer10, F11}: {0.38541, 0.37123},
	{Observer10, F12}: {0.44256, 0.39717},
}

// astmTable holds the subset of illuminants for which ASTM E308 publishes
// tristimulus values directly (rather than only chromaticity), rescaled
// here from the standard's Y=100 basis to Y=1.
var astmTable = map[key]matrix.Vec3{
	{Observer2, A}:   {1.09850, 1.00000, 0.35585},
	{Observer2, C}:   {0.98074, 1.00000, 1.18232},
	{Observer2, D50}: {0.96422, 1.00000, 0.82521},
	{Observer2, D55}: {0.95682, 1.00000, 0.92149},
	{Observer2, D65}: {0.95047, 1.00000, 1.08883},
	{Observer2, D75}: {0.94972, 1.00000, 1.22638},
	{Observer2, E}:   {1.00000, 1.00000, 1.00000},
	{Observer2, F2}:  {0.99186, 1.00000, 0.67393},
	{Observer2, F7}:  {0.95041, 1.00000, 1.08747},
	{Observer2, F11}: {1.00962, 1.00000, 0.64350},

	{Observer10, A}:   {1.11144, 1.00000, 0.35200},
	{Observer10, C}:   {0.97285, 1.00000, 1.16145},
	{Observer10, D50}: {0.96720, 1.00000, 0.81427},
	{Observer10, D55}: {0.95799, 1.00000, 0.90926},
	{Observer10, D65}: {0.94811, 1.00000, 1.07304},
	{Observer10, D75}: {0.94416, 1.00000, 1.20641},
	{Observer10, E}:   {1.00000, 1.00000, 1.00000},
	{Observer10, F2}:  {1.03279, 1.00000, 0.69027},
	{Observer10, F7}:  {0.95792, 1.00000, 1.07686},
	{Observer10, F11}: {1.03863, 1.00000, 0.65607},
}
