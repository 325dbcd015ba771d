// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package scenes builds prepared sketches used by the demo command,
// the tests and the benchmarks
package scenes

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gosketch/sketch"
)

// Rectangle holds the sketch and corner points of a rectangle scene
type Rectangle struct {
	Sk *sketch.Sketch
	A  *sketch.Point2 // bottom-left corner (fixed at the origin)
	B  *sketch.Point2
	C  *sketch.Point2
	D  *sketch.Point2

	// Ref is the direction reference point of the rotated variant
	Ref *sketch.Point2
}

// AxisAlignedRectangle builds a 2×3 axis-aligned rectangle from four
// points at the origin: corner A fixed, edges a and c horizontal, edges
// b and d vertical, horizontal distance A-B = 2, vertical distance
// A-D = 3
func AxisAlignedRectangle() (o *Rectangle) {
	o = &Rectangle{Sk: sketch.NewSketch()}
	sk := o.Sk

	o.A, _ = sk.AddPoint(0, 0)
	o.B, _ = sk.AddPoint(0, 0)
	o.C, _ = sk.AddPoint(0, 0)
	o.D, _ = sk.AddPoint(0, 0)

	lineA := sketch.NewLine(o.A, o.B)
	lineB := sketch.NewLine(o.B, o.C)
	lineC := sketch.NewLine(o.C, o.D)
	lineD := sketch.NewLine(o.D, o.A)
	for _, l := range []*sketch.Line{lineA, lineB, lineC, lineD} {
		if _, err := sk.AddPrimitive(l); err != nil {
			chk.Panic("cannot build axis-aligned rectangle: %v", err)
		}
	}

	cons := []sketch.Constraint{
		sketch.NewFixPoint(o.A, sketch.Vec{X: 0, Y: 0}),
		sketch.NewHorizontalLine(lineA),
		sketch.NewHorizontalLine(lineC),
		sketch.NewVerticalLine(lineB),
		sketch.NewVerticalLine(lineD),
		sketch.NewHorizontalDistance(o.A, o.B, 2),
		sketch.NewVerticalDistance(o.A, o.D, 3),
	}
	for _, c := range cons {
		if _, err := sk.AddConstraint(c); err != nil {
			chk.Panic("cannot build axis-aligned rectangle: %v", err)
		}
	}
	return
}

// RotatedRectangle builds a 2×3 rectangle tilted 45° below the x-axis:
// corner A fixed at the origin, consecutive edges perpendicular, side
// lengths 2 and 3 as point distances, and the angle at A between B and
// the fixed reference point (1,0) constrained to 45°. The corner start
// positions break the symmetry
func RotatedRectangle() (o *Rectangle) {
	o = &Rectangle{Sk: sketch.NewSketch()}
	sk := o.Sk

	o.A, _ = sk.AddPoint(0, 0.1)
	o.B, _ = sk.AddPoint(0.3, 0)
	o.C, _ = sk.AddPoint(0.3, 0.3)
	o.D, _ = sk.AddPoint(0.1, 0.3)
	o.Ref, _ = sk.AddPoint(1, 0)

	lineA := sketch.NewLine(o.A, o.B)
	lineB := sketch.NewLine(o.B, o.C)
	lineC := sketch.NewLine(o.C, o.D)
	lineD := sketch.NewLine(o.D, o.A)
	for _, l := range []*sketch.Line{lineA, lineB, lineC, lineD} {
		if _, err := sk.AddPrimitive(l); err != nil {
			chk.Panic("cannot build rotated rectangle: %v", err)
		}
	}

	cons := []sketch.Constraint{
		sketch.NewFixPoint(o.A, sketch.Vec{X: 0, Y: 0}),
		sketch.NewPerpendicularLines(lineA, lineB),
		sketch.NewPerpendicularLines(lineB, lineC),
		sketch.NewPerpendicularLines(lineC, lineD),
		sketch.NewEuclideanDistance(o.A, o.B, 2),
		sketch.NewEuclideanDistance(o.A, o.D, 3),
		sketch.NewFixPoint(o.Ref, sketch.Vec{X: 1, Y: 0}),
		sketch.NewAngleBetweenPoints(o.Ref, o.B, o.A, math.Pi/4),
	}
	for _, c := range cons {
		if _, err := sk.AddConstraint(c); err != nil {
			chk.Panic("cannot build rotated rectangle: %v", err)
		}
	}
	return
}

// StairsWithLines builds a staircase of n points chained by lines:
// even edges horizontal with horizontal distance 0.8, odd edges vertical
// with vertical distance 0.8. All points start at the origin
func StairsWithLines(n int) (sk *sketch.Sketch, points []*sketch.Point2) {
	sk = sketch.NewSketch()
	points = make([]*sketch.Point2, n)
	for i := 0; i < n; i++ {
		points[i], _ = sk.AddPoint(0, 0)
	}
	if _, err := sk.AddConstraint(sketch.NewFixPoint(points[0], sketch.Vec{})); err != nil {
		chk.Panic("cannot build stairs: %v", err)
	}
	for i := 0; i < n-1; i++ {
		line := sketch.NewLine(points[i], points[i+1])
		if _, err := sk.AddPrimitive(line); err != nil {
			chk.Panic("cannot build stairs: %v", err)
		}
		if i%2 == 0 {
			sk.AddConstraint(sketch.NewHorizontalDistance(points[i], points[i+1], 0.8))
			sk.AddConstraint(sketch.NewHorizontalLine(line))
		} else {
			sk.AddConstraint(sketch.NewVerticalDistance(points[i], points[i+1], 0.8))
			sk.AddConstraint(sketch.NewVerticalLine(line))
		}
	}
	return
}

// CircleWithLines builds n points on a staircase-shaped reference path,
// fixes each to its reference position and chains them with lines of
// the reference lengths. All points start on the y-axis
func CircleWithLines(n int) (sk *sketch.Sketch, points []*sketch.Point2) {
	refs := make([]sketch.Vec, n)
	for i := 0; i < n; i++ {
		refs[i] = sketch.Vec{
			X: float64((i+1)/2) * 0.8,
			Y: float64(i/2) * 0.8,
		}
	}
	sk = sketch.NewSketch()
	points = make([]*sketch.Point2, n)
	for i := 0; i < n; i++ {
		points[i], _ = sk.AddPoint(0, float64(i)/float64(n))
	}
	for i := 0; i < n; i++ {
		if _, err := sk.AddConstraint(sketch.NewFixPoint(points[i], refs[i])); err != nil {
			chk.Panic("cannot build circle-with-lines: %v", err)
		}
	}
	for i := 0; i < n-1; i++ {
		line := sketch.NewLine(points[i], points[i+1])
		if _, err := sk.AddPrimitive(line); err != nil {
			chk.Panic("cannot build circle-with-lines: %v", err)
		}
		dist := refs[i+1].Sub(refs[i]).Norm()
		sk.AddConstraint(sketch.NewEuclideanDistance(points[i], points[i+1], dist))
	}
	return
}

// Diamond builds the ring-decomposition scene: a unit diamond with two
// triangles extending it to the right through points (2,0) and (3,0).
// The eight lines bound exactly three counterclockwise faces
func Diamond() (sk *sketch.Sketch) {
	sk = sketch.NewSketch()
	east, _ := sk.AddPoint(1, 0)
	north, _ := sk.AddPoint(0, 1)
	west, _ := sk.AddPoint(-1, 0)
	south, _ := sk.AddPoint(0, -1)
	far1, _ := sk.AddPoint(2, 0)
	far2, _ := sk.AddPoint(3, 0)

	pairs := [][2]*sketch.Point2{
		{east, north},
		{north, west},
		{west, south},
		{south, east},
		{east, far1},
		{far1, north},
		{far1, far2},
		{far2, north},
	}
	for _, pq := range pairs {
		if _, err := sk.AddPrimitive(sketch.NewLine(pq[0], pq[1])); err != nil {
			chk.Panic("cannot build diamond: %v", err)
		}
	}
	return
}
