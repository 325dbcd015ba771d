// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"fmt"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gosketch/sketch"
)

// GradDescent implements steepest descent with a Wolfe line search
type GradDescent struct {
	MaxIt   int     // iteration cap
	LossTol float64 // stop when total loss drops below
	GradTol float64 // stop when ‖g‖ drops below
	Verbose bool    // report iterations
}

// add solver to factory
func init() {
	allocators["graddesc"] = func() Solver { return new(GradDescent) }
}

// Init initialises the solver with defaults and optional parameters:
// "maxit", "losstol", "gradtol", "verbose"
func (o *GradDescent) Init(prms fun.Prms) (err error) {
	o.MaxIt = 10000
	o.LossTol = 1e-14
	o.GradTol = 1e-10
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "maxit":
			o.MaxIt = int(p.V)
		case "losstol":
			o.LossTol = p.V
		case "gradtol":
			o.GradTol = p.V
		case "verbose":
			o.Verbose = p.V > 0
		default:
			return chk.Err("graddesc: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// Solve drives the sketch until the loss or the gradient norm is small
// enough, or the iteration cap is reached
func (o *GradDescent) Solve(sk *sketch.Sketch) (err error) {
	n := sk.Ndof()
	dir := make([]float64, n)
	for it := 0; it < o.MaxIt; it++ {
		g := sk.GetGradient()
		if !finiteVec(g) {
			return fmt.Errorf("graddesc: iteration %d: %w", it, ErrNonFiniteGradient)
		}
		loss := sk.GetLoss()
		gnorm := la.VecNorm(g)
		if o.Verbose {
			io.Pf("graddesc: it=%4d loss=%13.6e ‖g‖=%13.6e\n", it, loss, gnorm)
		}
		if gnorm < o.GradTol || loss < o.LossTol {
			return nil
		}
		la.VecScale(dir, 0, -1, g) // dir := -g
		if _, err = WolfeSearch(sk, dir, g); err != nil {
			return fmt.Errorf("graddesc: iteration %d: %w", it, err)
		}
	}
	return nil
}

// finiteVec tells whether every entry of v is finite
func finiteVec(v []float64) bool {
	for _, x := range v {
		if !isFinite(x) {
			return false
		}
	}
	return true
}

