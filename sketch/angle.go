// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sketch

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// AngleBetweenPoints drives the angle p₁-m-p₂ at the middle point to a
// target [rad]. With dᵢ = pᵢ - m,
// θ = acos clamp(d₁⋅d₂ / ‖d₁‖‖d₂‖) and loss = ½(θ - θ*)²
type AngleBetweenPoints struct {
	point1 *Point2
	point2 *Point2
	middle *Point2
	angle  float64 // desired [rad]
}

// NewAngleBetweenPoints returns a new angle constraint. angle is radians
func NewAngleBetweenPoints(point1, point2, middle *Point2, angle float64) *AngleBetweenPoints {
	if !isFinite(angle) {
		chk.Panic("desired angle must be finite. angle=%v", angle)
	}
	return &AngleBetweenPoints{point1: point1, point2: point2, middle: middle, angle: angle}
}

// Point1 returns the first arm point
func (o *AngleBetweenPoints) Point1() *Point2 { return o.point1 }

// Point2of returns the second arm point
func (o *AngleBetweenPoints) Point2of() *Point2 { return o.point2 }

// Middle returns the vertex point
func (o *AngleBetweenPoints) Middle() *Point2 { return o.middle }

// Angle returns the desired angle [rad]
func (o *AngleBetweenPoints) Angle() float64 { return o.angle }

// SetAngle sets the desired angle [rad]
func (o *AngleBetweenPoints) SetAngle(angle float64) {
	if !isFinite(angle) {
		chk.Panic("desired angle must be finite. angle=%v", angle)
	}
	o.angle = angle
}

// CurrentAngle returns the angle p₁-m-p₂ [rad], or 0 for degenerate arms
func (o *AngleBetweenPoints) CurrentAngle() float64 {
	d1 := o.point1.Pos().Sub(o.middle.Pos())
	d2 := o.point2.Pos().Sub(o.middle.Pos())
	n1, n2 := d1.Norm(), d2.Norm()
	if n1 < geomEps || n2 < geomEps {
		return 0
	}
	cosθ := d1.Dot(d2) / (n1 * n2)
	if !isFinite(cosθ) {
		return 0
	}
	return math.Acos(math.Max(-1, math.Min(1, cosθ)))
}

// References returns the three points
func (o *AngleBetweenPoints) References() []Parametric {
	return []Parametric{o.point1, o.point2, o.middle}
}

// LossValue returns ½(θ - θ*)²
func (o *AngleBetweenPoints) LossValue() float64 {
	θ := o.CurrentAngle()
	return 0.5 * (θ - o.angle) * (θ - o.angle)
}

// UpdateGradient accumulates the chain-rule gradient onto the three
// points. Skips the step when either arm is near zero length or when
// |cosθ| → 1 makes ∂θ/∂cosθ unbounded
func (o *AngleBetweenPoints) UpdateGradient() {
	d1 := o.point1.Pos().Sub(o.middle.Pos())
	d2 := o.point2.Pos().Sub(o.middle.Pos())
	n1, n2 := d1.Norm(), d2.Norm()
	if n1 < geomEps || n2 < geomEps {
		return
	}
	dot := d1.Dot(d2)
	cosθ := dot / (n1 * n2)
	θ := math.Acos(math.Max(-1, math.Min(1, cosθ)))
	if !isFinite(θ) {
		return
	}

	// ∂θ/∂cosθ = -1/√(1-cos²θ), unbounded at cosθ = ±1
	dθdcos := -1.0 / math.Sqrt(math.Max(0, 1-cosθ*cosθ))
	if !isFinite(dθdcos) {
		return
	}

	// ∂cosθ via dot product and via the two norms
	dcosDdot := 1.0 / (n1 * n2)
	dcosDn1 := -dot / (n1 * n1 * n2)
	dcosDn2 := -dot / (n1 * n2 * n2)

	dloss := θ - o.angle
	c1 := dloss * dθdcos
	rowD1 := []float64{ // ∂loss/∂d₁
		c1 * (dcosDdot*d2.X + dcosDn1*d1.X/n1),
		c1 * (dcosDdot*d2.Y + dcosDn1*d1.Y/n1),
	}
	rowD2 := []float64{ // ∂loss/∂d₂
		c1 * (dcosDdot*d1.X + dcosDn2*d2.X/n2),
		c1 * (dcosDdot*d1.Y + dcosDn2*d2.Y/n2),
	}

	o.point1.AddToGradient(mulRowMat(rowD1, o.point1.PointGradient()))
	o.point2.AddToGradient(mulRowMat(rowD2, o.point2.PointGradient()))
	o.middle.AddToGradient(mulRowMat([]float64{
		-rowD1[0] - rowD2[0],
		-rowD1[1] - rowD2[1],
	}, o.middle.PointGradient()))
}

// Kind returns the constraint tag
func (o *AngleBetweenPoints) Kind() string { return KindAngleBetweenPoints }
