// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package decompose derives the planar topology of a solved sketch:
// directed minimal loops (rings) walked over line and arc segments, and
// containment-nested faces with holes
package decompose

import (
	"math"

	"github.com/cpmech/gosketch/sketch"
)

// Segment is an oriented line or arc snapshot; exactly one field is non-nil
type Segment struct {
	Line *sketch.LineSnap `json:"line,omitempty"`
	Arc  *sketch.ArcSnap  `json:"arc,omitempty"`
}

// Start returns the start position
func (o Segment) Start() sketch.Vec {
	if o.Line != nil {
		return o.Line.Start
	}
	return o.Arc.StartPoint()
}

// End returns the end position
func (o Segment) End() sketch.Vec {
	if o.Line != nil {
		return o.Line.End
	}
	return o.Arc.EndPoint()
}

// Reverse returns the segment traversed the other way
func (o Segment) Reverse() Segment {
	if o.Line != nil {
		l := o.Line.Reverse()
		return Segment{Line: &l}
	}
	a := o.Arc.Reverse()
	return Segment{Arc: &a}
}

// StartAngle returns the tangent direction [rad] at the start, along the
// traversal. For an arc the tangent is perpendicular to the radial
// direction, on the side given by the orientation flag
func (o Segment) StartAngle() float64 {
	if o.Line != nil {
		return o.Line.Dir().Angle()
	}
	return arcTangent(o.Arc, o.Arc.StartAngle)
}

// EndAngle returns the tangent direction [rad] at the end, along the
// traversal
func (o Segment) EndAngle() float64 {
	if o.Line != nil {
		return o.Line.Dir().Angle()
	}
	return arcTangent(o.Arc, o.Arc.EndAngle)
}

// arcTangent returns the traversal tangent at radial angle θ
func arcTangent(a *sketch.ArcSnap, θ float64) float64 {
	if a.Clockwise {
		return θ - math.Pi/2
	}
	return θ + math.Pi/2
}

// Continues tells whether this segment continues the prior one: the
// prior's end position equals this segment's start position within tol
func (o Segment) Continues(prior Segment, tol float64) bool {
	return samePos(prior.End(), o.Start(), tol)
}

// Equal tells whether two segments have the same kind and geometry within tol
func (o Segment) Equal(other Segment, tol float64) bool {
	if o.Line != nil && other.Line != nil {
		return samePos(o.Line.Start, other.Line.Start, tol) && samePos(o.Line.End, other.Line.End, tol)
	}
	if o.Arc != nil && other.Arc != nil {
		return samePos(o.Arc.Center, other.Arc.Center, tol) &&
			math.Abs(o.Arc.Radius-other.Arc.Radius) <= tol &&
			math.Abs(o.Arc.StartAngle-other.Arc.StartAngle) <= tol &&
			math.Abs(o.Arc.EndAngle-other.Arc.EndAngle) <= tol &&
			o.Arc.Clockwise == other.Arc.Clockwise
	}
	return false
}

// EqualOrReverseEqual tells whether other matches this segment in either
// orientation
func (o Segment) EqualOrReverseEqual(other Segment, tol float64) bool {
	return o.Equal(other, tol) || o.Equal(other.Reverse(), tol)
}

// samePos compares two positions within tol (Chebyshev)
func samePos(a, b sketch.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}
