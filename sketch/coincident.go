// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sketch

// ArcStartPointCoincident makes the start point of an arc coincident
// with a point. loss = ½‖startpoint(a) - p‖²
type ArcStartPointCoincident struct {
	arc   *Arc
	point *Point2
}

// NewArcStartPointCoincident returns a new coincidence constraint
func NewArcStartPointCoincident(arc *Arc, point *Point2) *ArcStartPointCoincident {
	return &ArcStartPointCoincident{arc: arc, point: point}
}

// Arc returns the constrained arc
func (o *ArcStartPointCoincident) Arc() *Arc { return o.arc }

// Point returns the constrained point
func (o *ArcStartPointCoincident) Point() *Point2 { return o.point }

// References returns the arc and the point
func (o *ArcStartPointCoincident) References() []Parametric {
	return []Parametric{o.arc, o.point}
}

// LossValue returns ½‖startpoint(a) - p‖²
func (o *ArcStartPointCoincident) LossValue() float64 {
	d := o.arc.StartPoint().Sub(o.point.Pos())
	return 0.5 * d.NormSq()
}

// UpdateGradient accumulates the residual row through the arc's
// start-point Jacobian and, negated, onto the point
func (o *ArcStartPointCoincident) UpdateGradient() {
	d := o.arc.StartPoint().Sub(o.point.Pos())
	row := []float64{d.X, d.Y}
	o.arc.AddToGradient(mulRowMat(row, o.arc.StartPointGradient()))
	o.point.AddToGradient(mulRowMat(negRow(row), o.point.PointGradient()))
}

// Kind returns the constraint tag
func (o *ArcStartPointCoincident) Kind() string { return KindArcStartPointCoincident }

// ArcEndPointCoincident makes the end point of an arc coincident with a
// point. loss = ½‖endpoint(a) - p‖²
type ArcEndPointCoincident struct {
	arc   *Arc
	point *Point2
}

// NewArcEndPointCoincident returns a new coincidence constraint
func NewArcEndPointCoincident(arc *Arc, point *Point2) *ArcEndPointCoincident {
	return &ArcEndPointCoincident{arc: arc, point: point}
}

// Arc returns the constrained arc
func (o *ArcEndPointCoincident) Arc() *Arc { return o.arc }

// Point returns the constrained point
func (o *ArcEndPointCoincident) Point() *Point2 { return o.point }

// References returns the arc and the point
func (o *ArcEndPointCoincident) References() []Parametric {
	return []Parametric{o.arc, o.point}
}

// LossValue returns ½‖endpoint(a) - p‖²
func (o *ArcEndPointCoincident) LossValue() float64 {
	d := o.arc.EndPoint().Sub(o.point.Pos())
	return 0.5 * d.NormSq()
}

// UpdateGradient accumulates the residual row through the arc's
// end-point Jacobian and, negated, onto the point
func (o *ArcEndPointCoincident) UpdateGradient() {
	d := o.arc.EndPoint().Sub(o.point.Pos())
	row := []float64{d.X, d.Y}
	o.arc.AddToGradient(mulRowMat(row, o.arc.EndPointGradient()))
	o.point.AddToGradient(mulRowMat(negRow(row), o.point.PointGradient()))
}

// Kind returns the constraint tag
func (o *ArcEndPointCoincident) Kind() string { return KindArcEndPointCoincident }
