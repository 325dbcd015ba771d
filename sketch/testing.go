// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sketch

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
)

// CheckConstraintGradient compares the analytic gradient of a single
// constraint against central finite differences, entry by entry. h is
// the perturbation and tol the admissible discrepancy. The parameter
// vector is restored afterwards
func CheckConstraintGradient(tst *testing.T, sk *Sketch, c Constraint, h, tol float64, verbose bool) {
	x0 := sk.GetData()

	// analytic gradient of this constraint alone
	for _, p := range sk.prims {
		p.ZeroGradient()
	}
	c.UpdateGradient()
	ana := sk.readGradient()

	// numerical gradient
	xtmp := la.VecClone(x0)
	for i := 0; i < len(x0); i++ {
		dnum, _ := num.DerivCentral(func(t float64, args ...interface{}) float64 {
			la.VecCopy(xtmp, 1, x0)
			xtmp[i] = t
			sk.SetData(xtmp)
			return c.LossValue()
		}, x0[i], h)
		chk.AnaNum(tst, io.Sf("dL/dx%d", i), tol, ana[i], dnum, verbose)
	}
	sk.SetData(x0)
}

// CheckAllGradients runs CheckConstraintGradient over every constraint
// in the sketch
func CheckAllGradients(tst *testing.T, sk *Sketch, h, tol float64, verbose bool) {
	for _, c := range sk.cons {
		if verbose {
			io.Pf("constraint %q\n", c.Kind())
		}
		CheckConstraintGradient(tst, sk, c, h, tol, verbose)
	}
}
