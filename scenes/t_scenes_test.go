// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenes

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gosketch/sketch"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_scenes01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scenes01. scene sizes")

	rect := AxisAlignedRectangle()
	chk.IntAssert(rect.Sk.Nprimitives(), 8)
	chk.IntAssert(rect.Sk.Nconstraints(), 7)
	chk.IntAssert(rect.Sk.Ndof(), 8)

	rot := RotatedRectangle()
	chk.IntAssert(rot.Sk.Nprimitives(), 9)
	chk.IntAssert(rot.Sk.Nconstraints(), 8)
	chk.IntAssert(rot.Sk.Ndof(), 10)

	sk, points := StairsWithLines(6)
	chk.IntAssert(len(points), 6)
	chk.IntAssert(sk.Nprimitives(), 6+5)
	chk.IntAssert(sk.Nconstraints(), 1+5*2)

	sk, points = CircleWithLines(5)
	chk.IntAssert(len(points), 5)
	chk.IntAssert(sk.Nprimitives(), 5+4)
	chk.IntAssert(sk.Nconstraints(), 5+4)

	chk.IntAssert(Diamond().Nprimitives(), 6+8)
}

func Test_scenes02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scenes02. scene gradients match finite differences")

	rot := RotatedRectangle()
	sketch.CheckAllGradients(tst, rot.Sk, 1e-6, 1e-4, chk.Verbose)

	sk, _ := StairsWithLines(4)
	sketch.CheckAllGradients(tst, sk, 1e-6, 1e-4, chk.Verbose)
}
