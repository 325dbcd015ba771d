// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sketch

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Circle is a circle around a borrowed center point with parameter block
// (radius). Its Jacobian fan-out is (center_x, center_y, radius)
type Circle struct {
	center *Point2
	data   [1]float64 // radius
	grad   [1]float64
}

// NewCircle returns a new circle
func NewCircle(center *Point2, radius float64) *Circle {
	if center == nil {
		chk.Panic("circle center must not be nil")
	}
	if !isFinite(radius) {
		chk.Panic("circle radius must be finite. radius=%v", radius)
	}
	return &Circle{center: center, data: [1]float64{radius}}
}

// Center returns the center point
func (o *Circle) Center() *Point2 { return o.center }

// Radius returns the radius
func (o *Circle) Radius() float64 { return o.data[0] }

// SetRadius sets the radius
func (o *Circle) SetRadius(radius float64) {
	if !isFinite(radius) {
		chk.Panic("radius must be finite. radius=%v", radius)
	}
	o.data[0] = radius
}

// Area returns πr²
func (o *Circle) Area() float64 {
	return math.Pi * o.data[0] * o.data[0]
}

// CenterGradient returns the 2×3 Jacobian of the center position over
// (center_x, center_y, radius)
func (o *Circle) CenterGradient() [][]float64 {
	return [][]float64{
		{1, 0, 0},
		{0, 1, 0},
	}
}

// RadiusGradient returns the 1×3 Jacobian of the radius over
// (center_x, center_y, radius)
func (o *Circle) RadiusGradient() [][]float64 {
	return [][]float64{
		{0, 0, 1},
	}
}

// References returns the borrowed center point
func (o *Circle) References() []Parametric {
	return []Parametric{o.center}
}

// Ndof returns 1
func (o *Circle) Ndof() int { return 1 }

// GetData returns a copy of (radius)
func (o *Circle) GetData() []float64 {
	return []float64{o.data[0]}
}

// SetData replaces (radius)
func (o *Circle) SetData(v []float64) {
	if len(v) != 1 {
		chk.Panic("circle parameter block must have length 1. len=%d", len(v))
	}
	if !allFinite(v) {
		chk.Panic("circle parameters must be finite. v=%v", v)
	}
	o.data[0] = v[0]
}

// GetGradient returns a copy of the gradient accumulator
func (o *Circle) GetGradient() []float64 {
	return []float64{o.grad[0]}
}

// ZeroGradient resets the gradient accumulator
func (o *Circle) ZeroGradient() {
	o.grad[0] = 0
}

// AddToGradient accumulates a 1×3 loss-gradient row: the first two
// entries go to the center point, the last to the radius
func (o *Circle) AddToGradient(row []float64) {
	if len(row) != 3 || !allFinite(row) {
		chk.Panic("gradient row must be 1x3 and finite. row=%v", row)
	}
	o.center.AddToGradient(row[:2])
	o.grad[0] += row[2]
}

// ToPrimitive returns a tagged value snapshot with resolved center
func (o *Circle) ToPrimitive() Primitive {
	return Primitive{Circle: &CircleSnap{Center: o.center.Pos(), Radius: o.data[0]}}
}
