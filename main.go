// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gosketch/decompose"
	"github.com/cpmech/gosketch/scenes"
	"github.com/cpmech/gosketch/sketch"
	"github.com/cpmech/gosketch/solver"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// message
	io.PfWhite("\nGosketch -- 2D geometric constraint solver\n\n")

	// options
	scene := "rotrect"
	solverName := "bfgs"
	verbose := true
	flag.Parse()
	if len(flag.Args()) > 0 {
		scene = flag.Arg(0)
	}
	if len(flag.Args()) > 1 {
		solverName = flag.Arg(1)
	}
	if len(flag.Args()) > 2 {
		verbose = io.Atob(flag.Arg(2))
	}

	// build scene
	var sk *sketch.Sketch
	switch scene {
	case "rotrect":
		sk = scenes.RotatedRectangle().Sk
	case "rect":
		sk = scenes.AxisAlignedRectangle().Sk
	case "stairs":
		sk, _ = scenes.StairsWithLines(10)
	case "diamond":
		sk = scenes.Diamond()
	default:
		chk.Panic("cannot find scene named %q. options: rotrect, rect, stairs, diamond", scene)
	}
	io.Pf("> Scene %q: %d primitives, %d constraints, %d dofs\n", scene, sk.Nprimitives(), sk.Nconstraints(), sk.Ndof())

	// solve
	var prms fun.Prms
	if verbose {
		prms = fun.Prms{&fun.Prm{N: "verbose", V: 1}}
	}
	sol, err := solver.New(solverName, prms)
	if err != nil {
		chk.Panic("cannot allocate solver: %v", err)
	}
	io.Pf("> Running solver %q\n", solverName)
	if err := sol.Solve(sk); err != nil {
		chk.Panic("solve failed: %v", err)
	}
	io.PfGreen("> Success: loss = %g\n", sk.GetLoss())

	// report primitives
	for _, p := range sk.Primitives() {
		if pt, ok := p.(*sketch.Point2); ok {
			io.Pf("  point %2d: (%23.15e, %23.15e)\n", sk.PrimitiveID(pt), pt.X(), pt.Y())
		}
	}

	// report faces
	faces := decompose.Decompose(sk)
	io.Pf("> Found %d face(s)\n", len(faces))
	for i, f := range faces {
		io.Pf("  face %d: area = %g, %d hole(s)\n", i, f.Exterior.SignedArea(), len(f.Holes))
	}
}
