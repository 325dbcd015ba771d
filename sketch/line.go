// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sketch

import "github.com/cpmech/gosl/chk"

// Line is a straight segment between two borrowed points. It has no free
// parameters of its own; its Jacobian fan-out covers the two points'
// blocks in the order (start_x, start_y, end_x, end_y)
type Line struct {
	start *Point2
	end   *Point2
}

// NewLine returns a new line from start to end
func NewLine(start, end *Point2) *Line {
	if start == nil || end == nil {
		chk.Panic("line endpoints must not be nil")
	}
	return &Line{start: start, end: end}
}

// Start returns the start point
func (o *Line) Start() *Point2 { return o.start }

// End returns the end point
func (o *Line) End() *Point2 { return o.end }

// Dir returns end - start
func (o *Line) Dir() Vec {
	return o.end.Pos().Sub(o.start.Pos())
}

// Length returns ‖end - start‖
func (o *Line) Length() float64 {
	return o.Dir().Norm()
}

// StartGradient returns the 2×4 Jacobian of the start position over
// (start_x, start_y, end_x, end_y)
func (o *Line) StartGradient() [][]float64 {
	return [][]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
	}
}

// EndGradient returns the 2×4 Jacobian of the end position over
// (start_x, start_y, end_x, end_y)
func (o *Line) EndGradient() [][]float64 {
	return [][]float64{
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// References returns the two borrowed points
func (o *Line) References() []Parametric {
	return []Parametric{o.start, o.end}
}

// Ndof returns 0; the endpoints' coordinates live on the points
func (o *Line) Ndof() int { return 0 }

// GetData returns the empty parameter block
func (o *Line) GetData() []float64 { return nil }

// SetData accepts only the empty parameter block
func (o *Line) SetData(v []float64) {
	if len(v) != 0 {
		chk.Panic("line has no parameters. len=%d", len(v))
	}
}

// GetGradient returns the empty gradient block
func (o *Line) GetGradient() []float64 { return nil }

// ZeroGradient does nothing; the referenced points zero their own
// accumulators as part of the sketch
func (o *Line) ZeroGradient() {}

// AddToGradient accumulates a 1×4 loss-gradient row onto the two points
func (o *Line) AddToGradient(row []float64) {
	if len(row) != 4 || !allFinite(row) {
		chk.Panic("gradient row must be 1x4 and finite. row=%v", row)
	}
	o.start.AddToGradient(row[:2])
	o.end.AddToGradient(row[2:])
}

// ToPrimitive returns a tagged value snapshot with resolved endpoints
func (o *Line) ToPrimitive() Primitive {
	return Primitive{Line: &LineSnap{Start: o.start.Pos(), End: o.end.Pos()}}
}
