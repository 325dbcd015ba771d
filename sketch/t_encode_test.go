// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sketch

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_encode01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("encode01. JSON round trip is lossless")

	sk := NewSketch()
	pa, ida := sk.AddPoint(0.25, -1.5)
	pb, idb := sk.AddPoint(2, 3)
	center, idm := sk.AddPoint(0.5, 0.5)
	line, idl, _ := sk.AddLine(ida, idb)
	arc, _, _ := sk.AddArc(idm, 2, true, 0.3, 2.1)
	sk.AddCircle(idm, 0.7)

	sk.AddConstraint(NewFixPoint(pa, Vec{X: 1, Y: 2}))
	sk.AddConstraint(NewEuclideanDistance(pa, pb, 3))
	sk.AddConstraint(NewHorizontalDistance(pa, pb, 2))
	sk.AddConstraint(NewVerticalDistance(pa, pb, -1))
	sk.AddConstraint(NewAngleBetweenPoints(pa, pb, center, math.Pi/5))
	sk.AddConstraint(NewArcStartPointCoincident(arc, pa))
	sk.AddConstraint(NewArcEndPointCoincident(arc, pb))
	sk.AddConstraint(NewHorizontalLine(line))
	sk.AddConstraint(NewVerticalLine(line))

	b, err := sk.Encode()
	if err != nil {
		tst.Errorf("cannot encode: %v", err)
		return
	}

	sk2, err := Decode(b)
	if err != nil {
		tst.Errorf("cannot decode: %v", err)
		return
	}

	chk.IntAssert(sk2.Nprimitives(), sk.Nprimitives())
	chk.IntAssert(sk2.Nconstraints(), sk.Nconstraints())
	chk.IntAssert(sk2.Ndof(), sk.Ndof())
	chk.Vector(tst, "x preserved", 1e-17, sk2.GetData(), sk.GetData())
	chk.Scalar(tst, "loss preserved", 1e-17, sk2.GetLoss(), sk.GetLoss())
	chk.Vector(tst, "gradient preserved", 1e-17, sk2.GetGradient(), sk.GetGradient())

	// ids preserved
	p2, err := sk2.Point(ida)
	if err != nil {
		tst.Errorf("cannot find point %d after round trip: %v", ida, err)
		return
	}
	chk.Scalar(tst, "point x", 1e-17, p2.X(), 0.25)
	l2, err := sk2.Line(idl)
	if err != nil {
		tst.Errorf("cannot find line %d after round trip: %v", idl, err)
		return
	}
	chk.Scalar(tst, "line length", 1e-17, l2.Length(), line.Length())

	// constraint kinds preserved in order
	for i, c := range sk.Constraints() {
		if sk2.Constraints()[i].Kind() != c.Kind() {
			tst.Errorf("constraint %d kind mismatch: %q != %q", i, sk2.Constraints()[i].Kind(), c.Kind())
		}
	}

	// a second encode is identical
	b2, _ := sk2.Encode()
	if string(b) != string(b2) {
		tst.Errorf("re-encoded tree differs")
	}
}

func Test_encode02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("encode02. line constraints with two lines")

	sk := NewSketch()
	_, ida := sk.AddPoint(0, 0)
	_, idb := sk.AddPoint(1, 0)
	_, idc := sk.AddPoint(0, 1)
	_, idd := sk.AddPoint(1, 1)
	l1, _, _ := sk.AddLine(ida, idb)
	l2, _, _ := sk.AddLine(idc, idd)
	sk.AddConstraint(NewEqualLength(l1, l2))
	sk.AddConstraint(NewParallelLines(l1, l2))
	sk.AddConstraint(NewPerpendicularLines(l1, l2))

	b, err := sk.Encode()
	if err != nil {
		tst.Errorf("cannot encode: %v", err)
		return
	}
	sk2, err := Decode(b)
	if err != nil {
		tst.Errorf("cannot decode: %v", err)
		return
	}
	chk.IntAssert(sk2.Nconstraints(), 3)
	chk.Scalar(tst, "loss preserved", 1e-17, sk2.GetLoss(), sk.GetLoss())
}
