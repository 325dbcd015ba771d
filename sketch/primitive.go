// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sketch

import "math"

// Parametric is implemented by all primitives. A primitive owns a block of
// free scalar parameters and a gradient accumulator of the same length,
// and may borrow points registered elsewhere in the sketch.
type Parametric interface {

	// References returns the primitives this one depends on
	// (the borrowed points for composites; empty for points)
	References() []Parametric

	// Ndof returns the number of free scalars this primitive
	// contributes to the global parameter vector
	Ndof() int

	// GetData returns a copy of the parameter block
	GetData() []float64

	// SetData replaces the parameter block. The length must match Ndof
	// and all values must be finite
	SetData(v []float64)

	// GetGradient returns a copy of the gradient accumulator
	GetGradient() []float64

	// ZeroGradient resets the gradient accumulator
	ZeroGradient()

	// AddToGradient accumulates a 1×K loss-gradient row, where K is the
	// primitive's Jacobian fan-out (own block plus referenced points'
	// blocks). The row is split across the receivers
	AddToGradient(row []float64)

	// ToPrimitive returns a tagged value snapshot of the current state
	ToPrimitive() Primitive
}

// Primitive is a tagged, value-only snapshot of a primitive. Exactly one
// of the variant fields is non-nil
type Primitive struct {
	Point  *PointSnap  `json:"point,omitempty"`
	Line   *LineSnap   `json:"line,omitempty"`
	Circle *CircleSnap `json:"circle,omitempty"`
	Arc    *ArcSnap    `json:"arc,omitempty"`
}

// PointSnap is the value snapshot of a Point2
type PointSnap struct {
	Pos Vec `json:"pos"`
}

// LineSnap is the value snapshot of a Line with resolved endpoints
type LineSnap struct {
	Start Vec `json:"start"`
	End   Vec `json:"end"`
}

// CircleSnap is the value snapshot of a Circle with resolved center
type CircleSnap struct {
	Center Vec     `json:"center"`
	Radius float64 `json:"radius"`
}

// ArcSnap is the value snapshot of an Arc with resolved center
type ArcSnap struct {
	Center     Vec     `json:"center"`
	Radius     float64 `json:"radius"`
	StartAngle float64 `json:"startAngle"` // [rad]
	EndAngle   float64 `json:"endAngle"`   // [rad]
	Clockwise  bool    `json:"clockwise"`
}

// Reverse returns the same line traversed end to start
func (o LineSnap) Reverse() LineSnap {
	return LineSnap{Start: o.End, End: o.Start}
}

// Dir returns end - start
func (o LineSnap) Dir() Vec {
	return o.End.Sub(o.Start)
}

// StartPoint returns center + r(cosθs, sinθs)
func (o ArcSnap) StartPoint() Vec {
	return arcPoint(o.Center, o.Radius, o.StartAngle)
}

// EndPoint returns center + r(cosθe, sinθe)
func (o ArcSnap) EndPoint() Vec {
	return arcPoint(o.Center, o.Radius, o.EndAngle)
}

// Reverse returns the same arc traversed end to start:
// angles swapped and orientation flipped
func (o ArcSnap) Reverse() ArcSnap {
	return ArcSnap{
		Center:     o.Center,
		Radius:     o.Radius,
		StartAngle: o.EndAngle,
		EndAngle:   o.StartAngle,
		Clockwise:  !o.Clockwise,
	}
}

// Area returns πr²
func (o CircleSnap) Area() float64 {
	return math.Pi * o.Radius * o.Radius
}
