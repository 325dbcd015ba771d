// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sketch

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// gradient checks: for any valid configuration the analytic gradient of
// every constraint kind must match central differences with h=1e-6
// within 1e-4

func Test_fixpoint01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fixpoint01. loss and gradient")

	sk := NewSketch()
	p, _ := sk.AddPoint(3, 4)
	c := NewFixPoint(p, Vec{X: 1, Y: 2})
	sk.AddConstraint(c)

	chk.Scalar(tst, "loss", 1e-15, c.LossValue(), 0.5*(2*2+2*2))
	CheckConstraintGradient(tst, sk, c, 1e-6, 1e-4, chk.Verbose)
}

func Test_distance01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("distance01. euclidean distance loss and gradient")

	sk := NewSketch()
	pa, _ := sk.AddPoint(1, 0)
	pb, _ := sk.AddPoint(0, 1)
	c := NewEuclideanDistance(pa, pb, 3)
	sk.AddConstraint(c)

	chk.Scalar(tst, "current distance", 1e-15, c.CurrentDistance(), math.Sqrt2)
	err := math.Sqrt2 - 3
	chk.Scalar(tst, "loss", 1e-15, c.LossValue(), 0.5*err*err)
	CheckConstraintGradient(tst, sk, c, 1e-6, 1e-4, chk.Verbose)
}

func Test_distance02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("distance02. horizontal/vertical distance gradients")

	sk := NewSketch()
	pa, _ := sk.AddPoint(1.2, -0.4)
	pb, _ := sk.AddPoint(-0.3, 2.2)
	h := NewHorizontalDistance(pa, pb, 2)
	v := NewVerticalDistance(pa, pb, 3)
	sk.AddConstraint(h)
	sk.AddConstraint(v)

	chk.Scalar(tst, "hdist", 1e-15, h.CurrentDistance(), -1.5)
	chk.Scalar(tst, "vdist", 1e-15, v.CurrentDistance(), 2.6)
	CheckAllGradients(tst, sk, 1e-6, 1e-4, chk.Verbose)
}

func Test_angle01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("angle01. angle-between-points loss and gradient")

	sk := NewSketch()
	pa, _ := sk.AddPoint(1, 0)
	pb, _ := sk.AddPoint(0, 1)
	pm, _ := sk.AddPoint(0, 0)
	c := NewAngleBetweenPoints(pa, pb, pm, math.Pi/4)
	sk.AddConstraint(c)

	chk.Scalar(tst, "current angle", 1e-14, c.CurrentAngle(), math.Pi/2)
	d := math.Pi / 4
	chk.Scalar(tst, "loss", 1e-14, c.LossValue(), 0.5*d*d)
	CheckConstraintGradient(tst, sk, c, 1e-6, 1e-4, chk.Verbose)
}

func Test_angle02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("angle02. gradient at a skew configuration")

	sk := NewSketch()
	pa, _ := sk.AddPoint(0.7805516932908316, -0.00782612334736288)
	pb, _ := sk.AddPoint(1.22103191002294, 0.004601914768224987)
	pm, _ := sk.AddPoint(0.013589691730458502, -0.10039941813640837)
	c := NewAngleBetweenPoints(pa, pb, pm, math.Pi/2)
	sk.AddConstraint(c)

	CheckConstraintGradient(tst, sk, c, 1e-6, 1e-4, chk.Verbose)
}

func Test_angle03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("angle03. degenerate arm reads angle 0 and skips gradient")

	sk := NewSketch()
	pa, _ := sk.AddPoint(0, 0) // coincides with the vertex
	pb, _ := sk.AddPoint(0, 1)
	pm, _ := sk.AddPoint(0, 0)
	c := NewAngleBetweenPoints(pa, pb, pm, math.Pi/4)
	sk.AddConstraint(c)

	chk.Scalar(tst, "degenerate angle", 1e-17, c.CurrentAngle(), 0)
	g := sk.GetGradient()
	chk.Vector(tst, "gradient is zero", 1e-17, g, make([]float64, len(g)))
}

func Test_coincident01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coincident01. arc start/end point coincidence gradients")

	sk := NewSketch()
	center, _ := sk.AddPoint(0.3, -0.2)
	target, _ := sk.AddPoint(3, 4)
	arc := NewArc(center, 1.5, false, math.Pi/5, 4*math.Pi/5)
	sk.AddPrimitive(arc)
	cs := NewArcStartPointCoincident(arc, target)
	ce := NewArcEndPointCoincident(arc, target)
	sk.AddConstraint(cs)
	sk.AddConstraint(ce)

	d := arc.EndPoint().Sub(target.Pos())
	chk.Scalar(tst, "end loss", 1e-14, ce.LossValue(), 0.5*d.NormSq())
	CheckAllGradients(tst, sk, 1e-6, 1e-4, chk.Verbose)
}

func Test_lines01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lines01. horizontal/vertical line gradients")

	sk := NewSketch()
	pa, _ := sk.AddPoint(3, 4)
	pb, _ := sk.AddPoint(5, 6)
	l := NewLine(pa, pb)
	sk.AddPrimitive(l)
	h := NewHorizontalLine(l)
	v := NewVerticalLine(l)
	sk.AddConstraint(h)
	sk.AddConstraint(v)

	chk.Scalar(tst, "h loss", 1e-15, h.LossValue(), 0.5*4)
	chk.Scalar(tst, "v loss", 1e-15, v.LossValue(), 0.5*4)
	CheckAllGradients(tst, sk, 1e-6, 1e-4, chk.Verbose)
}

func Test_lines02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lines02. equal length gradient")

	sk := NewSketch()
	pa, _ := sk.AddPoint(3, 4)
	pb, _ := sk.AddPoint(5, 6)
	pc, _ := sk.AddPoint(0, 4)
	pd, _ := sk.AddPoint(10, 6)
	l1 := NewLine(pa, pb)
	l2 := NewLine(pc, pd)
	sk.AddPrimitive(l1)
	sk.AddPrimitive(l2)
	c := NewEqualLength(l1, l2)
	sk.AddConstraint(c)

	diff := l1.Length() - l2.Length()
	chk.Scalar(tst, "loss", 1e-14, c.LossValue(), 0.5*diff*diff)
	CheckConstraintGradient(tst, sk, c, 1e-6, 1e-4, chk.Verbose)
}

func Test_lines03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lines03. parallel/perpendicular gradients")

	sk := NewSketch()
	pa, _ := sk.AddPoint(3, 4)
	pb, _ := sk.AddPoint(5, 6)
	pc, _ := sk.AddPoint(0, 4)
	pd, _ := sk.AddPoint(5, 7)
	l1 := NewLine(pa, pb)
	l2 := NewLine(pc, pd)
	sk.AddPrimitive(l1)
	sk.AddPrimitive(l2)
	par := NewParallelLines(l1, l2)
	per := NewPerpendicularLines(l1, l2)
	sk.AddConstraint(par)
	sk.AddConstraint(per)

	u1 := l1.Dir().Scale(1 / l1.Length())
	u2 := l2.Dir().Scale(1 / l2.Length())
	cross, dot := u1.Cross(u2), u1.Dot(u2)
	chk.Scalar(tst, "parallel loss", 1e-14, par.LossValue(), 0.5*cross*cross)
	chk.Scalar(tst, "perpendicular loss", 1e-14, per.LossValue(), 0.5*dot*dot)
	CheckAllGradients(tst, sk, 1e-6, 1e-4, chk.Verbose)
}

func Test_lines04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lines04. zero-length line yields zero loss and gradient")

	sk := NewSketch()
	pa, _ := sk.AddPoint(1, 1)
	pb, _ := sk.AddPoint(1, 1) // degenerate line
	pc, _ := sk.AddPoint(0, 0)
	pd, _ := sk.AddPoint(1, 0)
	l1 := NewLine(pa, pb)
	l2 := NewLine(pc, pd)
	sk.AddPrimitive(l1)
	sk.AddPrimitive(l2)
	sk.AddConstraint(NewParallelLines(l1, l2))
	sk.AddConstraint(NewPerpendicularLines(l1, l2))

	chk.Scalar(tst, "loss", 1e-17, sk.GetLoss(), 0)
	g := sk.GetGradient()
	chk.Vector(tst, "gradient is zero", 1e-17, g, make([]float64, len(g)))
}
