// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sketch implements the parametric data model of 2D sketches:
// primitives (points, lines, circles, arcs) exposing their degrees of
// freedom as flat parameter blocks, constraints computing scalar losses
// and analytic gradients, and the sketch aggregator assembling the global
// parameter vector, gradient and Jacobian.
package sketch

import "math"

// Vec is a 2D position or direction
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns u + v
func (u Vec) Add(v Vec) Vec {
	return Vec{u.X + v.X, u.Y + v.Y}
}

// Sub returns u - v
func (u Vec) Sub(v Vec) Vec {
	return Vec{u.X - v.X, u.Y - v.Y}
}

// Scale returns s * u
func (u Vec) Scale(s float64) Vec {
	return Vec{s * u.X, s * u.Y}
}

// Dot returns u ⋅ v
func (u Vec) Dot(v Vec) float64 {
	return u.X*v.X + u.Y*v.Y
}

// Cross returns the z-component of u × v
func (u Vec) Cross(v Vec) float64 {
	return u.X*v.Y - u.Y*v.X
}

// Norm returns ‖u‖
func (u Vec) Norm() float64 {
	return math.Hypot(u.X, u.Y)
}

// NormSq returns ‖u‖²
func (u Vec) NormSq() float64 {
	return u.X*u.X + u.Y*u.Y
}

// Angle returns atan2(u.Y, u.X)
func (u Vec) Angle() float64 {
	return math.Atan2(u.Y, u.X)
}

// IsFinite tells whether both components are finite
func (u Vec) IsFinite() bool {
	return isFinite(u.X) && isFinite(u.Y)
}

// isFinite tells whether x is neither NaN nor ±Inf
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// allFinite tells whether every entry of v is finite
func allFinite(v []float64) bool {
	for _, x := range v {
		if !isFinite(x) {
			return false
		}
	}
	return true
}
