// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decompose

import (
	"math"
	"sort"

	"github.com/cpmech/gosketch/sketch"
)

// pointInPolygon tells whether p lies inside the closed vertex loop poly
// (even-odd rule, ray cast towards +x)
func pointInPolygon(p sketch.Vec, poly []sketch.Vec) (inside bool) {
	n := len(poly)
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return
}

// polygonInPolygon tells whether inner lies inside outer: every vertex
// of inner must be inside outer. Shared boundaries are not handled; the
// caller declares overlapping rings an invalid sketch
func polygonInPolygon(inner, outer []sketch.Vec) bool {
	for _, p := range inner {
		if !pointInPolygon(p, outer) {
			return false
		}
	}
	return len(inner) > 0
}

// interiorPoint returns a point strictly inside the closed vertex loop:
// the midpoint of the leftmost intersection span of a horizontal
// scanline through the middle of the bounding box
func interiorPoint(poly []sketch.Vec) sketch.Vec {
	ymin, ymax := poly[0].Y, poly[0].Y
	for _, p := range poly {
		ymin = math.Min(ymin, p.Y)
		ymax = math.Max(ymax, p.Y)
	}
	y := (ymin + ymax) / 2

	// crossings of the scanline with the edges
	var xs []float64
	n := len(poly)
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		if (a.Y > y) != (b.Y > y) {
			xs = append(xs, a.X+(y-a.Y)/(b.Y-a.Y)*(b.X-a.X))
		}
	}
	if len(xs) < 2 {
		// degenerate loop; fall back to the vertex average
		c := sketch.Vec{}
		for _, p := range poly {
			c = c.Add(p)
		}
		return c.Scale(1 / float64(len(poly)))
	}
	sort.Float64s(xs)
	return sketch.Vec{X: (xs[0] + xs[1]) / 2, Y: y}
}
