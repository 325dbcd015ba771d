// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sketch

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Arc is a circular arc around a borrowed center point with parameter
// block (radius, start_angle, end_angle), angles in radians. The
// clockwise flag selects the traversal direction and is NOT a free
// parameter. The Jacobian fan-out is
// (center_x, center_y, radius, start_angle, end_angle)
type Arc struct {
	center    *Point2
	data      [3]float64 // radius, θstart, θend
	grad      [3]float64
	clockwise bool
}

// NewArc returns a new arc. Angles are radians
func NewArc(center *Point2, radius float64, clockwise bool, startAngle, endAngle float64) *Arc {
	if center == nil {
		chk.Panic("arc center must not be nil")
	}
	if !isFinite(radius) || !isFinite(startAngle) || !isFinite(endAngle) {
		chk.Panic("arc parameters must be finite. radius=%v θs=%v θe=%v", radius, startAngle, endAngle)
	}
	return &Arc{
		center:    center,
		data:      [3]float64{radius, startAngle, endAngle},
		clockwise: clockwise,
	}
}

// arcPoint returns center + r(cosθ, sinθ)
func arcPoint(center Vec, r, θ float64) Vec {
	return Vec{center.X + r*math.Cos(θ), center.Y + r*math.Sin(θ)}
}

// Center returns the center point
func (o *Arc) Center() *Point2 { return o.center }

// Radius returns the radius
func (o *Arc) Radius() float64 { return o.data[0] }

// SetRadius sets the radius
func (o *Arc) SetRadius(radius float64) {
	if !isFinite(radius) {
		chk.Panic("radius must be finite. radius=%v", radius)
	}
	o.data[0] = radius
}

// StartAngle returns the start angle [rad]
func (o *Arc) StartAngle() float64 { return o.data[1] }

// SetStartAngle sets the start angle [rad]
func (o *Arc) SetStartAngle(θ float64) {
	if !isFinite(θ) {
		chk.Panic("start angle must be finite. θ=%v", θ)
	}
	o.data[1] = θ
}

// EndAngle returns the end angle [rad]
func (o *Arc) EndAngle() float64 { return o.data[2] }

// SetEndAngle sets the end angle [rad]
func (o *Arc) SetEndAngle(θ float64) {
	if !isFinite(θ) {
		chk.Panic("end angle must be finite. θ=%v", θ)
	}
	o.data[2] = θ
}

// Clockwise returns the traversal direction flag
func (o *Arc) Clockwise() bool { return o.clockwise }

// SetClockwise sets the traversal direction flag
func (o *Arc) SetClockwise(clockwise bool) { o.clockwise = clockwise }

// StartPoint returns center + r(cosθs, sinθs)
func (o *Arc) StartPoint() Vec {
	return arcPoint(o.center.Pos(), o.data[0], o.data[1])
}

// EndPoint returns center + r(cosθe, sinθe)
func (o *Arc) EndPoint() Vec {
	return arcPoint(o.center.Pos(), o.data[0], o.data[2])
}

// CenterGradient returns the 2×5 Jacobian of the center position
func (o *Arc) CenterGradient() [][]float64 {
	return [][]float64{
		{1, 0, 0, 0, 0},
		{0, 1, 0, 0, 0},
	}
}

// RadiusGradient returns the 1×5 Jacobian of the radius
func (o *Arc) RadiusGradient() [][]float64 {
	return [][]float64{
		{0, 0, 1, 0, 0},
	}
}

// StartAngleGradient returns the 1×5 Jacobian of the start angle
func (o *Arc) StartAngleGradient() [][]float64 {
	return [][]float64{
		{0, 0, 0, 1, 0},
	}
}

// EndAngleGradient returns the 1×5 Jacobian of the end angle
func (o *Arc) EndAngleGradient() [][]float64 {
	return [][]float64{
		{0, 0, 0, 0, 1},
	}
}

// StartPointGradient returns the 2×5 Jacobian of the start position:
// ∂sx/∂r = cosθs, ∂sx/∂θs = -r sinθs, etc
func (o *Arc) StartPointGradient() [][]float64 {
	r, θ := o.data[0], o.data[1]
	return [][]float64{
		{1, 0, math.Cos(θ), -r * math.Sin(θ), 0},
		{0, 1, math.Sin(θ), r * math.Cos(θ), 0},
	}
}

// EndPointGradient returns the 2×5 Jacobian of the end position:
// ∂ex/∂r = cosθe, ∂ex/∂θe = -r sinθe, etc
func (o *Arc) EndPointGradient() [][]float64 {
	r, θ := o.data[0], o.data[2]
	return [][]float64{
		{1, 0, math.Cos(θ), 0, -r * math.Sin(θ)},
		{0, 1, math.Sin(θ), 0, r * math.Cos(θ)},
	}
}

// References returns the borrowed center point
func (o *Arc) References() []Parametric {
	return []Parametric{o.center}
}

// Ndof returns 3
func (o *Arc) Ndof() int { return 3 }

// GetData returns a copy of (radius, θstart, θend)
func (o *Arc) GetData() []float64 {
	return []float64{o.data[0], o.data[1], o.data[2]}
}

// SetData replaces (radius, θstart, θend)
func (o *Arc) SetData(v []float64) {
	if len(v) != 3 {
		chk.Panic("arc parameter block must have length 3. len=%d", len(v))
	}
	if !allFinite(v) {
		chk.Panic("arc parameters must be finite. v=%v", v)
	}
	o.data[0], o.data[1], o.data[2] = v[0], v[1], v[2]
}

// GetGradient returns a copy of the gradient accumulator
func (o *Arc) GetGradient() []float64 {
	return []float64{o.grad[0], o.grad[1], o.grad[2]}
}

// ZeroGradient resets the gradient accumulator
func (o *Arc) ZeroGradient() {
	o.grad[0], o.grad[1], o.grad[2] = 0, 0, 0
}

// AddToGradient accumulates a 1×5 loss-gradient row: the first two
// entries go to the center point, the rest to the own block
func (o *Arc) AddToGradient(row []float64) {
	if len(row) != 5 || !allFinite(row) {
		chk.Panic("gradient row must be 1x5 and finite. row=%v", row)
	}
	o.center.AddToGradient(row[:2])
	o.grad[0] += row[2]
	o.grad[1] += row[3]
	o.grad[2] += row[4]
}

// ToPrimitive returns a tagged value snapshot with resolved center
func (o *Arc) ToPrimitive() Primitive {
	return Primitive{Arc: &ArcSnap{
		Center:     o.center.Pos(),
		Radius:     o.data[0],
		StartAngle: o.data[1],
		EndAngle:   o.data[2],
		Clockwise:  o.clockwise,
	}}
}
