// SPDX-License-Identifier: MIT
// Package: pathtrace/builder
//
// layout.go - canvas coordinates for constructed nodes.
//
// Positions only matter to renderers; engines never read them. All layouts
// keep a margin of one spacing unit from the origin.

package builder

import "math"

// ringPosition places index i of n evenly on a circle, starting at the top
// and going clockwise. The radius grows with n so that neighbours stay about
// spacing apart.
func ringPosition(i, n int, spacing float64) (x, y float64) {
	r := ringRadius(n, spacing)
	theta := 2*math.Pi*float64(i)/float64(n) - math.Pi/2

	return math.Round(spacing + r + r*math.Cos(theta)), math.Round(spacing + r + r*math.Sin(theta))
}

// ringCenter is the centre of the circle used by ringPosition.
func ringCenter(n int, spacing float64) (x, y float64) {
	r := ringRadius(n, spacing)

	return spacing + r, spacing + r
}

func ringRadius(n int, spacing float64) float64 {
	if n < 6 {
		return spacing
	}

	return spacing * float64(n) / (2 * math.Pi)
}

// rowPosition places index i on a horizontal line.
func rowPosition(i int, spacing float64) (x, y float64) {
	return spacing * float64(i+1), spacing
}

// cellPosition places (r, c) on a rows×cols lattice.
func cellPosition(r, c int, spacing float64) (x, y float64) {
	return spacing * float64(c+1), spacing * float64(r+1)
}
