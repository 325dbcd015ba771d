// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decompose

import (
	"math"

	"github.com/cpmech/gosketch/sketch"
)

// Ring is a closed sequence of oriented segments, or a lone circle.
// Exactly one of the fields is set
type Ring struct {
	Circle   *sketch.CircleSnap `json:"circle,omitempty"`
	Segments []Segment          `json:"segments,omitempty"`
}

// SignedArea returns the shoelace area of the discretized ring:
// positive for counterclockwise loops. Circles always count πr²
func (o Ring) SignedArea() float64 {
	if o.Circle != nil {
		return o.Circle.Area()
	}
	return shoelace(o.Polygon(circleSteps))
}

// Reverse returns the ring traversed the other way
func (o Ring) Reverse() Ring {
	if o.Circle != nil {
		return o
	}
	rev := make([]Segment, len(o.Segments))
	for i, s := range o.Segments {
		rev[len(o.Segments)-1-i] = s.Reverse()
	}
	return Ring{Segments: rev}
}

// Polygon discretizes the ring into a closed vertex loop (last vertex
// not repeated). Lines contribute their start point; arcs are sampled
// proportionally to their sweep; circles are sampled with steps vertices
func (o Ring) Polygon(steps int) (poly []sketch.Vec) {
	if o.Circle != nil {
		c := o.Circle
		for i := 0; i < steps; i++ {
			θ := 2 * math.Pi * float64(i) / float64(steps)
			poly = append(poly, sketch.Vec{
				X: c.Center.X + c.Radius*math.Cos(θ),
				Y: c.Center.Y + c.Radius*math.Sin(θ),
			})
		}
		return
	}
	for _, s := range o.Segments {
		if s.Line != nil {
			poly = append(poly, s.Line.Start)
			continue
		}
		poly = append(poly, arcSamples(s.Arc, steps)...)
	}
	return
}

// arcSamples samples an arc from its start point (inclusive) to its end
// point (exclusive), with a density matching steps per full turn
func arcSamples(a *sketch.ArcSnap, steps int) (pts []sketch.Vec) {
	θ0, θ1 := a.StartAngle, a.EndAngle
	if a.Clockwise {
		for θ1 > θ0 {
			θ1 -= 2 * math.Pi
		}
	} else {
		for θ1 < θ0 {
			θ1 += 2 * math.Pi
		}
	}
	n := int(math.Ceil(math.Abs(θ1-θ0) / (2 * math.Pi) * float64(steps)))
	if n < 2 {
		n = 2
	}
	for i := 0; i < n; i++ {
		θ := θ0 + (θ1-θ0)*float64(i)/float64(n)
		pts = append(pts, sketch.Vec{
			X: a.Center.X + a.Radius*math.Cos(θ),
			Y: a.Center.Y + a.Radius*math.Sin(θ),
		})
	}
	return
}

// shoelace returns the signed area of a closed vertex loop
func shoelace(poly []sketch.Vec) (area float64) {
	n := len(poly)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return area / 2
}
