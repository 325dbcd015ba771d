// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gosketch/sketch"
)

// BFGS implements the quasi-Newton method with the inverse-Hessian
// approximation H updated by the symmetric rank-two formula and steps
// chosen by a Wolfe line search. On a line-search failure H is reset to
// the identity once; a second consecutive failure is fatal
type BFGS struct {
	MaxIt   int     // iteration cap
	LossTol float64 // stop when total loss drops below
	GradTol float64 // stop when max|gᵢ| drops below
	Verbose bool    // report iterations
}

// add solver to factory
func init() {
	allocators["bfgs"] = func() Solver { return new(BFGS) }
}

// Init initialises the solver with defaults and optional parameters:
// "maxit", "losstol", "gradtol", "verbose"
func (o *BFGS) Init(prms fun.Prms) (err error) {
	o.MaxIt = 1000
	o.LossTol = 1e-16
	o.GradTol = 1e-8
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
			return chk.Err("bfgs: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// Solve drives the sketch until the loss or the uniform gradient norm is
// small enough, or the iteration cap is reached
func (o *BFGS) Solve(sk *sketch.Sketch) (err error) {
	n := sk.Ndof()
	H := la.MatAlloc(n, n)
	la.MatSetDiag(H, 1)
	x := sk.GetData()
	p := make([]float64, n)
	s := make([]float64, n)
	y := make([]float64, n)
	Hy := make([]float64, n)
	g := sk.GetGradient()
	failed := false
	for it := 0; it < o.MaxIt; it++ {
		if !finiteVec(g) {
			return fmt.Errorf("bfgs: iteration %d: %w", it, ErrNonFiniteGradient)
		}
		loss := sk.GetLoss()
		if o.Verbose {
			io.Pf("bfgs: it=%4d loss=%13.6e max|g|=%13.6e\n", it, loss, la.VecLargest(g, 1))
		}
		if loss < o.LossTol || la.VecLargest(g, 1) < o.GradTol {
			return nil
		}

		// search direction p := -H⋅g
		la.MatVecMul(p, -1, H, g)
		if !finiteVec(p) {
			return fmt.Errorf("bfgs: iteration %d: %w", it, ErrNonFiniteSearchDirection)
		}

		α, serr := WolfeSearch(sk, p, g)
		if serr != nil {
			if errors.Is(serr, ErrSearchFailed) || errors.Is(serr, ErrNotDescentDirection) {
				if failed {
					return fmt.Errorf("bfgs: iteration %d: %w", it, ErrRepeatedLineSearchFailure)
				}
				// reset Hessian approximation and retry from x
				failed = true
				sk.SetData(x)
				la.MatFill(H, 0)
				la.MatSetDiag(H, 1)
				g = sk.GetGradient()
				continue
			}
			return fmt.Errorf("bfgs: iteration %d: %v", it, serr)
		}
		failed = false

		// s := α⋅p and x ← x + s (the line search left the sketch there)
		la.VecScale(s, 0, α, p)
		la.VecAdd(x, 1, s)

		// y := g(x+s) - g(x)
		gnew := sk.GetGradient()
		la.VecAdd2(y, 1, gnew, -1, g)

		// damped curvature
		sy := la.VecDot(s, y)
		if math.Abs(sy) < 1e-16 {
			sy += 1e-6
		}

		// H ← H + ((sᵀy + yᵀHy)/(sᵀy)²)⋅s⋅sᵀ - (H⋅y⋅sᵀ + s⋅yᵀHᵀ)/(sᵀy)
		la.MatVecMul(Hy, 1, H, y)
		yHy := la.VecDot(y, Hy)
		la.VecOuterAdd(H, (sy+yHy)/(sy*sy), s, s)
		la.VecOuterAdd(H, -1/sy, Hy, s)
		la.VecOuterAdd(H, -1/sy, s, Hy)

		g = gnew
	}
	return nil
}
