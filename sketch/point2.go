// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sketch

import "github.com/cpmech/gosl/chk"

// Point2 is a free 2D point with parameter block (x, y)
type Point2 struct {
	data [2]float64 // x, y
	grad [2]float64 // ∂loss/∂x, ∂loss/∂y accumulator
}

// NewPoint2 returns a new point at (x, y)
func NewPoint2(x, y float64) *Point2 {
	if !isFinite(x) || !isFinite(y) {
		chk.Panic("point coordinates must be finite. x=%v y=%v", x, y)
	}
	return &Point2{data: [2]float64{x, y}}
}

// X returns the x-coordinate
func (o *Point2) X() float64 { return o.data[0] }

// Y returns the y-coordinate
func (o *Point2) Y() float64 { return o.data[1] }

// Pos returns the position vector
func (o *Point2) Pos() Vec { return Vec{o.data[0], o.data[1]} }

// SetX sets the x-coordinate
func (o *Point2) SetX(x float64) {
	if !isFinite(x) {
		chk.Panic("x must be finite. x=%v", x)
	}
	o.data[0] = x
}

// SetY sets the y-coordinate
func (o *Point2) SetY(y float64) {
	if !isFinite(y) {
		chk.Panic("y must be finite. y=%v", y)
	}
	o.data[1] = y
}

// PointGradient returns the 2×2 Jacobian of the position
// with respect to the parameter block (the identity)
func (o *Point2) PointGradient() [][]float64 {
	return [][]float64{
		{1, 0},
		{0, 1},
	}
}

// References returns no references; points are leaves
func (o *Point2) References() []Parametric { return nil }

// Ndof returns 2
func (o *Point2) Ndof() int { return 2 }

// GetData returns a copy of (x, y)
func (o *Point2) GetData() []float64 {
	return []float64{o.data[0], o.data[1]}
}

// SetData replaces (x, y)
func (o *Point2) SetData(v []float64) {
	if len(v) != 2 {
		chk.Panic("point parameter block must have length 2. len=%d", len(v))
	}
	if !allFinite(v) {
		chk.Panic("point parameters must be finite. v=%v", v)
	}
	o.data[0], o.data[1] = v[0], v[1]
}

// GetGradient returns a copy of the gradient accumulator
func (o *Point2) GetGradient() []float64 {
	return []float64{o.grad[0], o.grad[1]}
}

// ZeroGradient resets the gradient accumulator
func (o *Point2) ZeroGradient() {
	o.grad[0], o.grad[1] = 0, 0
}

// AddToGradient accumulates a 1×2 loss-gradient row
func (o *Point2) AddToGradient(row []float64) {
	if len(row) != 2 || !allFinite(row) {
		chk.Panic("gradient row must be 1x2 and finite. row=%v", row)
	}
	o.grad[0] += row[0]
	o.grad[1] += row[1]
}

// ToPrimitive returns a tagged value snapshot
func (o *Point2) ToPrimitive() Primitive {
	return Primitive{Point: &PointSnap{Pos: o.Pos()}}
}
