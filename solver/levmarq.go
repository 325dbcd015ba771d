// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/gosketch/sketch"
)

// LevMarq implements the Levenberg-Marquardt iteration
// x ← x - η (JᵀJ + β I)⁺ Jᵀ r: Gauss-Newton with Tikhonov
// regularization of the normal matrix
type LevMarq struct {
	MaxIt   int     // iteration cap
	LossTol float64 // stop when the loss sum drops below
	Eta     float64 // step size η
	Beta    float64 // regularization β
	PinvTol float64 // singular value cutoff for the pseudo inverse
	Verbose bool    // report iterations
}

// add solver to factory
func init() {
	allocators["levmarq"] = func() Solver { return new(LevMarq) }
}

// Init initialises the solver with defaults and optional parameters:
// "maxit", "losstol", "eta", "beta", "pinvtol", "verbose"
func (o *LevMarq) Init(prms fun.Prms) (err error) {
	o.MaxIt = 1000
	o.LossTol = 1e-10
	o.Eta = 0.1
	o.Beta = 1e-5
	o.PinvTol = 1e-6
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "maxit":
			o.MaxIt = int(p.V)
		case "losstol":
			o.LossTol = p.V
		case "eta":
			o.Eta = p.V
		case "beta":
			o.Beta = p.V
		case "pinvtol":
			o.PinvTol = p.V
		case "verbose":
			o.Verbose = p.V > 0
		default:
			return chk.Err("levmarq: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// Solve drives the sketch until the loss sum drops below the threshold
// or the iteration cap is reached
func (o *LevMarq) Solve(sk *sketch.Sketch) (err error) {
	return solveNormalEqs(sk, o.MaxIt, o.LossTol, o.Eta, o.PinvTol, o.Beta, o.Verbose, "levmarq")
}
