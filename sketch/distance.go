// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sketch

import "github.com/cpmech/gosl/chk"

// EuclideanDistance drives the distance between two points to a target.
// loss = ½(‖p₁ - p₂‖ - d)²
type EuclideanDistance struct {
	point1 *Point2
	point2 *Point2
	dist   float64
}

// NewEuclideanDistance returns a new distance constraint
func NewEuclideanDistance(point1, point2 *Point2, dist float64) *EuclideanDistance {
	if !isFinite(dist) {
		chk.Panic("desired distance must be finite. dist=%v", dist)
	}
	return &EuclideanDistance{point1: point1, point2: point2, dist: dist}
}

// Point1 returns the first point
func (o *EuclideanDistance) Point1() *Point2 { return o.point1 }

// Point2of returns the second point
func (o *EuclideanDistance) Point2of() *Point2 { return o.point2 }

// Distance returns the desired distance
func (o *EuclideanDistance) Distance() float64 { return o.dist }

// SetDistance sets the desired distance
func (o *EuclideanDistance) SetDistance(dist float64) {
	if !isFinite(dist) {
		chk.Panic("desired distance must be finite. dist=%v", dist)
	}
	o.dist = dist
}

// CurrentDistance returns ‖p₁ - p₂‖
func (o *EuclideanDistance) CurrentDistance() float64 {
	return o.point1.Pos().Sub(o.point2.Pos()).Norm()
}

// References returns both points
func (o *EuclideanDistance) References() []Parametric {
	return []Parametric{o.point1, o.point2}
}

// LossValue returns ½(‖p₁ - p₂‖ - d)²
func (o *EuclideanDistance) LossValue() float64 {
	err := o.CurrentDistance() - o.dist
	return 0.5 * err * err
}

// UpdateGradient accumulates the chain-rule gradient onto both points.
// Skips the step when ‖p₁ - p₂‖ < ε (degenerate geometry)
func (o *EuclideanDistance) UpdateGradient() {
	δ := o.point1.Pos().Sub(o.point2.Pos())
	L := δ.Norm()
	if L < geomEps {
		return
	}
	err := L - o.dist
	row := []float64{err * δ.X / L, err * δ.Y / L} // ∂loss/∂δ
	o.point1.AddToGradient(mulRowMat(row, o.point1.PointGradient()))
	o.point2.AddToGradient(mulRowMat(negRow(row), o.point2.PointGradient()))
}

// Kind returns the constraint tag
func (o *EuclideanDistance) Kind() string { return KindEuclideanDistance }

// HorizontalDistance drives x₂ - x₁ to a target (signed).
// loss = ½((x₂ - x₁) - d)²
type HorizontalDistance struct {
	point1 *Point2
	point2 *Point2
	dist   float64
}

// NewHorizontalDistance returns a new horizontal distance constraint
func NewHorizontalDistance(point1, point2 *Point2, dist float64) *HorizontalDistance {
	if !isFinite(dist) {
		chk.Panic("desired distance must be finite. dist=%v", dist)
	}
	return &HorizontalDistance{point1: point1, point2: point2, dist: dist}
}

// Point1 returns the first point
func (o *HorizontalDistance) Point1() *Point2 { return o.point1 }

// Point2of returns the second point
func (o *HorizontalDistance) Point2of() *Point2 { return o.point2 }

// Distance returns the desired signed distance
func (o *HorizontalDistance) Distance() float64 { return o.dist }

// CurrentDistance returns x₂ - x₁
func (o *HorizontalDistance) CurrentDistance() float64 {
	return o.point2.X() - o.point1.X()
}

// References returns both points
func (o *HorizontalDistance) References() []Parametric {
	return []Parametric{o.point1, o.point2}
}

// LossValue returns ½((x₂ - x₁) - d)²
func (o *HorizontalDistance) LossValue() float64 {
	err := o.CurrentDistance() - o.dist
	return 0.5 * err * err
}

// UpdateGradient accumulates ±err·[1 0] onto the points
func (o *HorizontalDistance) UpdateGradient() {
	err := o.CurrentDistance() - o.dist
	row := []float64{err, 0}
	o.point1.AddToGradient(mulRowMat(negRow(row), o.point1.PointGradient()))
	o.point2.AddToGradient(mulRowMat(row, o.point2.PointGradient()))
}

// Kind returns the constraint tag
func (o *HorizontalDistance) Kind() string { return KindHorizontalDistance }

// VerticalDistance drives y₂ - y₁ to a target (signed).
// loss = ½((y₂ - y₁) - d)²
type VerticalDistance struct {
	point1 *Point2
	point2 *Point2
	dist   float64
}

// NewVerticalDistance returns a new vertical distance constraint
func NewVerticalDistance(point1, point2 *Point2, dist float64) *VerticalDistance {
	if !isFinite(dist) {
		chk.Panic("desired distance must be finite. dist=%v", dist)
	}
	return &VerticalDistance{point1: point1, point2: point2, dist: dist}
}

// Point1 returns the first point
func (o *VerticalDistance) Point1() *Point2 { return o.point1 }

// Point2of returns the second point
func (o *VerticalDistance) Point2of() *Point2 { return o.point2 }

// Distance returns the desired signed distance
func (o *VerticalDistance) Distance() float64 { return o.dist }

// CurrentDistance returns y₂ - y₁
func (o *VerticalDistance) CurrentDistance() float64 {
	return o.point2.Y() - o.point1.Y()
}

// References returns both points
func (o *VerticalDistance) References() []Parametric {
	return []Parametric{o.point1, o.point2}
}

// LossValue returns ½((y₂ - y₁) - d)²
func (o *VerticalDistance) LossValue() float64 {
	err := o.CurrentDistance() - o.dist
	return 0.5 * err * err
}

// UpdateGradient accumulates ±err·[0 1] onto the points
func (o *VerticalDistance) UpdateGradient() {
	err := o.CurrentDistance() - o.dist
	row := []float64{0, err}
	o.point1.AddToGradient(mulRowMat(negRow(row), o.point1.PointGradient()))
	o.point2.AddToGradient(mulRowMat(row, o.point2.PointGradient()))
}

// Kind returns the constraint tag
func (o *VerticalDistance) Kind() string { return KindVerticalDistance }
