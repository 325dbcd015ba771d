// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sketch

import "github.com/cpmech/gosl/chk"

// FixPoint drives a point to a fixed position.
// loss = ½‖p - p*‖²
type FixPoint struct {
	point  *Point2
	target Vec
}

// NewFixPoint returns a new constraint fixing point at target
func NewFixPoint(point *Point2, target Vec) *FixPoint {
	if !target.IsFinite() {
		chk.Panic("fix-point target must be finite. target=%v", target)
	}
	return &FixPoint{point: point, target: target}
}

// Point returns the constrained point
func (o *FixPoint) Point() *Point2 { return o.point }

// Target returns the desired position
func (o *FixPoint) Target() Vec { return o.target }

// SetTarget sets the desired position
func (o *FixPoint) SetTarget(target Vec) {
	if !target.IsFinite() {
		chk.Panic("fix-point target must be finite. target=%v", target)
	}
	o.target = target
}

// References returns the constrained point
func (o *FixPoint) References() []Parametric {
	return []Parametric{o.point}
}

// LossValue returns ½‖p - p*‖²
func (o *FixPoint) LossValue() float64 {
	d := o.point.Pos().Sub(o.target)
	return 0.5 * d.NormSq()
}

// UpdateGradient accumulates ∂loss/∂p = (p - p*)ᵀ onto the point
func (o *FixPoint) UpdateGradient() {
	d := o.point.Pos().Sub(o.target)
	o.point.AddToGradient(mulRowMat([]float64{d.X, d.Y}, o.point.PointGradient()))
}

// Kind returns the constraint tag
func (o *FixPoint) Kind() string { return KindFixPoint }
