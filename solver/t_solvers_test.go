// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/gosketch/scenes"
	"github.com/cpmech/gosketch/sketch"
)

func Test_registry01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("registry01. all four solvers are registered")

	for _, name := range []string{"graddesc", "bfgs", "gaussnewton", "levmarq"} {
		if _, err := New(name, nil); err != nil {
			tst.Errorf("cannot allocate %q: %v", name, err)
		}
	}
	if _, err := New("newton", nil); err == nil {
		tst.Errorf("unknown solver name must fail")
	}
	if _, err := New("bfgs", fun.Prms{&fun.Prm{N: "wrong", V: 1}}); err == nil {
		tst.Errorf("unknown parameter name must fail")
	}
}

func Test_graddesc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("graddesc01. euclidean distance to 3")

	sk := sketch.NewSketch()
	pa, _ := sk.AddPoint(1, 0)
	pb, _ := sk.AddPoint(0, 1)
	c := sketch.NewEuclideanDistance(pa, pb, 3)
	sk.AddConstraint(c)

	o := new(GradDescent)
	o.Init(nil)
	if err := o.Solve(sk); err != nil {
		tst.Errorf("solve failed: %v", err)
		return
	}
	if sk.GetLoss() >= 1e-3 {
		tst.Errorf("loss must drop below 1e-3. loss=%v", sk.GetLoss())
	}
	chk.Scalar(tst, "‖pa-pb‖", 1e-3, c.CurrentDistance(), 3)
}

func Test_graddesc02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("graddesc02. arc end point meets a point")

	sk := sketch.NewSketch()
	center, _ := sk.AddPoint(0, 0)
	point, _ := sk.AddPoint(3, 4)
	arc := sketch.NewArc(center, 1, false, 0, math.Pi)
	sk.AddPrimitive(arc)
	sk.AddConstraint(sketch.NewArcEndPointCoincident(arc, point))

	o := new(GradDescent)
	o.Init(nil)
	if err := o.Solve(sk); err != nil {
		tst.Errorf("solve failed: %v", err)
		return
	}
	gap := arc.EndPoint().Sub(point.Pos()).Norm()
	if gap >= 1e-6 {
		tst.Errorf("arc end point must coincide within 1e-6. gap=%v", gap)
	}
}

func Test_bfgs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bfgs01. axis-aligned 2×3 rectangle")

	rect := scenes.AxisAlignedRectangle()
	o := new(BFGS)
	o.Init(nil)
	if err := o.Solve(rect.Sk); err != nil {
		tst.Errorf("solve failed: %v", err)
		return
	}

	tol := 1e-6
	chk.Scalar(tst, "ax", tol, rect.A.X(), 0)
	chk.Scalar(tst, "ay", tol, rect.A.Y(), 0)
	chk.Scalar(tst, "bx", tol, rect.B.X(), 2)
	chk.Scalar(tst, "by", tol, rect.B.Y(), 0)
	chk.Scalar(tst, "cx", tol, rect.C.X(), 2)
	chk.Scalar(tst, "cy", tol, rect.C.Y(), 3)
	chk.Scalar(tst, "dx", tol, rect.D.X(), 0)
	chk.Scalar(tst, "dy", tol, rect.D.Y(), 3)
}

func Test_bfgs02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bfgs02. rotated 2×3 rectangle at 45°")

	rect := scenes.RotatedRectangle()
	o := new(BFGS)
	o.Init(nil)
	if err := o.Solve(rect.Sk); err != nil {
		tst.Errorf("solve failed: %v", err)
		return
	}
	if loss := rect.Sk.GetLoss(); loss >= 1e-9 {
		tst.Errorf("loss must drop below 1e-9. loss=%v", loss)
	}

	// the sketch is under-constrained: either reflection of B about the
	// x-axis is admissible, with |B| = 2 at 45° from the reference arm
	tol := 1e-4
	chk.Scalar(tst, "ax", tol, rect.A.X(), 0)
	chk.Scalar(tst, "ay", tol, rect.A.Y(), 0)
	chk.Scalar(tst, "refx", tol, rect.Ref.X(), 1)
	chk.Scalar(tst, "refy", tol, rect.Ref.Y(), 0)
	chk.Scalar(tst, "bx", tol, rect.B.X(), math.Sqrt2)
	chk.Scalar(tst, "|by|", tol, math.Abs(rect.B.Y()), math.Sqrt2)
	chk.Scalar(tst, "‖b‖", tol, rect.B.Pos().Norm(), 2)
	chk.Scalar(tst, "‖d-a‖", tol, rect.D.Pos().Sub(rect.A.Pos()).Norm(), 3)
}

func Test_bfgs03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bfgs03. staircase scene")

	sk, points := scenes.StairsWithLines(10)
	o := new(BFGS)
	o.Init(nil)
	if err := o.Solve(sk); err != nil {
		tst.Errorf("solve failed: %v", err)
		return
	}
	tol := 1e-5
	for j, p := range points {
		chk.Scalar(tst, "px", tol, p.X(), 0.8*float64((j+1)/2))
		chk.Scalar(tst, "py", tol, p.Y(), 0.8*float64(j/2))
	}
}

func Test_gaussnewton01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gaussnewton01. rotated rectangle with unit steps")

	rect := scenes.RotatedRectangle()
	o, err := New("gaussnewton", fun.Prms{
		&fun.Prm{N: "maxit", V: 500},
		&fun.Prm{N: "losstol", V: 1e-8},
		&fun.Prm{N: "eta", V: 1},
	})
	if err != nil {
		tst.Errorf("cannot allocate solver: %v", err)
		return
	}
	if err = o.Solve(rect.Sk); err != nil {
		tst.Errorf("solve failed: %v", err)
		return
	}

	chk.Scalar(tst, "ax", 0.01, rect.A.X(), 0)
	chk.Scalar(tst, "ay", 0.01, rect.A.Y(), 0)
	chk.Scalar(tst, "bx", 0.1, rect.B.X(), math.Sqrt2)
	chk.Scalar(tst, "|by|", 0.1, math.Abs(rect.B.Y()), math.Sqrt2)
	chk.Scalar(tst, "refx", 0.1, rect.Ref.X(), 1)
}

func Test_levmarq01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("levmarq01. rotated rectangle with regularized steps")

	rect := scenes.RotatedRectangle()
	o := new(LevMarq)
	o.Init(nil)
	if err := o.Solve(rect.Sk); err != nil {
		tst.Errorf("solve failed: %v", err)
		return
	}

	chk.Scalar(tst, "ax", 0.01, rect.A.X(), 0)
	chk.Scalar(tst, "ay", 0.01, rect.A.Y(), 0)
	chk.Scalar(tst, "bx", 0.1, rect.B.X(), math.Sqrt2)
	chk.Scalar(tst, "|by|", 0.1, math.Abs(rect.B.Y()), math.Sqrt2)
	chk.Scalar(tst, "refx", 0.1, rect.Ref.X(), 1)
}

func Benchmark_bfgs_stairs(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sk, _ := scenes.StairsWithLines(10)
		o := new(BFGS)
		o.Init(nil)
		o.Solve(sk)
	}
}

func Benchmark_graddesc_circle(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sk, _ := scenes.CircleWithLines(8)
		o := new(GradDescent)
		o.Init(fun.Prms{&fun.Prm{N: "maxit", V: 2000}})
		o.Solve(sk)
	}
}
