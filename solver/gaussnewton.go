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

// GaussNewton implements the damped Gauss-Newton iteration
// x ← x - η (JᵀJ)⁺ Jᵀ r, with the Moore-Penrose pseudo inverse
type GaussNewton struct {
	MaxIt   int     // iteration cap
	LossTol float64 // stop when the loss sum drops below
	Eta     float64 // step size η
	PinvTol float64 // singular value cutoff for the pseudo inverse
	Verbose bool    // report iterations
}

// add solver to factory
func init() {
	allocators["gaussnewton"] = func() Solver { return new(GaussNewton) }
}

// Init initialises the solver with defaults and optional parameters:
// "maxit", "losstol", "eta", "pinvtol", "verbose"
func (o *GaussNewton) Init(prms fun.Prms) (err error) {
	o.MaxIt = 10000
	o.LossTol = 1e-6
	o.Eta = 1e-3
	o.PinvTol = 1e-6
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "maxit":
			o.MaxIt = int(p.V)
		case "losstol":
			o.LossTol = p.V
		case "eta":
			o.Eta = p.V
		case "pinvtol":
			o.PinvTol = p.V
		case "verbose":
			o.Verbose = p.V > 0
		default:
			return chk.Err("gaussnewton: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// Solve drives the sketch until the loss sum drops below the threshold
// or the iteration cap is reached
func (o *GaussNewton) Solve(sk *sketch.Sketch) (err error) {
	return solveNormalEqs(sk, o.MaxIt, o.LossTol, o.Eta, o.PinvTol, 0, o.Verbose, "gaussnewton")
}

// solveNormalEqs runs the shared Gauss-Newton / Levenberg-Marquardt
// iteration; β is the Tikhonov regularization added to the diagonal of
// JᵀJ (zero for plain Gauss-Newton)
func solveNormalEqs(sk *sketch.Sketch, maxIt int, lossTol, η, pinvTol, β float64, verbose bool, name string) (err error) {
	n := sk.Ndof()
	JtJ := la.MatAlloc(n, n)
	Ai := la.MatAlloc(n, n)
	Jtr := make([]float64, n)
	Δ := make([]float64, n)
	for it := 0; it < maxIt; it++ {
		r := sk.GetLossPerConstraint()
		sum := 0.0
		for _, ri := range r {
			sum += ri
		}
		if verbose {
			io.Pf("%s: it=%4d Σloss=%13.6e\n", name, it, sum)
		}
		if sum < lossTol {
			return nil
		}
		J := sk.GetJacobian()

		// JᵀJ + β I
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				JtJ[i][j] = 0
				for k := 0; k < len(r); k++ {
					JtJ[i][j] += J[k][i] * J[k][j]
				}
			}
			JtJ[i][i] += β
		}

		// Jᵀ r
		la.VecFill(Jtr, 0)
		la.MatTrVecMulAdd(Jtr, 1, J, r)

		// Δ := (JᵀJ + β I)⁺ Jᵀ r
		if err = la.MatInvG(Ai, JtJ, pinvTol); err != nil {
			return fmt.Errorf("%s: iteration %d: %w: %v", name, it, ErrPseudoInverseFailed, err)
		}
		la.MatVecMul(Δ, 1, Ai, Jtr)
		if !finiteVec(Δ) {
			return fmt.Errorf("%s: iteration %d: %w", name, it, ErrNonFiniteSearchDirection)
		}

		x := sk.GetData()
		la.VecAdd(x, -η, Δ)
		sk.SetData(x)
	}
	return nil
}
