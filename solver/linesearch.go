// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gosketch/sketch"
)

// Wolfe line-search parameters
const (
	wolfeC1     = 1e-4 // sufficient decrease (Armijo)
	wolfeC2     = 0.9  // curvature
	searchMaxIt = 15   // trial budget
)

// WolfeSearch finds a step length α along the descent direction dir
// satisfying the Wolfe conditions, starting from α = 1: halve on Armijo
// failure, grow by 1.5 on curvature failure. gradient must be the
// gradient at the current parameter vector.
//
// The sketch is mutated during the trial evaluations and is left at the
// last trial point: at x + α·dir on success, and at an arbitrary trial
// on failure — the caller restores the vector if needed
func WolfeSearch(sk *sketch.Sketch, dir, gradient []float64) (α float64, err error) {
	m := la.VecDot(gradient, dir)
	if m >= 0 {
		return 0, ErrNotDescentDirection
	}
	curvature := wolfeC2 * m
	loss := sk.GetLoss()
	x0 := sk.GetData()
	xnew := make([]float64, len(x0))
	α = 1.0
	for it := 0; it < searchMaxIt; it++ {
		la.VecAdd2(xnew, 1, x0, α, dir) // xnew := x0 + α⋅dir
		sk.SetData(xnew)
		newLoss := sk.GetLoss()
		if newLoss <= loss+wolfeC1*α*m { // sufficient decrease
			newGradient := sk.GetGradient()
			if la.VecDot(newGradient, dir) >= curvature { // curvature
				return α, nil
			}
			α *= 1.5
		} else {
			α *= 0.5
		}
	}
	return 0, ErrSearchFailed
}
