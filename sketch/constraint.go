// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sketch

// geomEps is the degenerate-geometry guard: gradients that would divide
// by a norm (or by sin(acosθ)) smaller than this are skipped for the
// current step to keep the parameter vector finite
const geomEps = 1e-6

// Constraint is a nonnegative scalar function of primitive states,
// minimized at zero when the relation holds. Losses are stored and
// reported as ½ of the squared residual
type Constraint interface {

	// References returns the primitives this constraint reads
	References() []Parametric

	// LossValue returns ½·residual as a pure function of current state
	LossValue() float64

	// UpdateGradient accumulates ∂loss/∂parameters onto the referenced
	// primitives via the chain rule through their output Jacobians
	UpdateGradient()

	// Kind returns the tag of this constraint variant
	Kind() string
}

// constraint kind tags; the set is closed
const (
	KindFixPoint               = "fixpoint"
	KindEuclideanDistance      = "distance"
	KindHorizontalDistance     = "hdistance"
	KindVerticalDistance       = "vdistance"
	KindAngleBetweenPoints     = "angle"
	KindArcStartPointCoincident = "arcstartcoincident"
	KindArcEndPointCoincident  = "arcendcoincident"
	KindEqualLength            = "equallength"
	KindHorizontalLine         = "hline"
	KindVerticalLine           = "vline"
	KindParallelLines          = "parallel"
	KindPerpendicularLines     = "perpendicular"
)

// mulRowMat returns the 1×n product of a 1×m row with an m×n matrix
func mulRowMat(row []float64, a [][]float64) (res []float64) {
	n := len(a[0])
	res = make([]float64, n)
	for j := 0; j < n; j++ {
		for i := 0; i < len(row); i++ {
			res[j] += row[i] * a[i][j]
		}
	}
	return
}

// negRow returns -row
func negRow(row []float64) (res []float64) {
	res = make([]float64, len(row))
	for i := 0; i < len(row); i++ {
		res[i] = -row[i]
	}
	return
}

// lineRow expands a 1×2 row acting on (end - start) into the 1×4
// fan-out of a line: res = row · (EndGradient - StartGradient)
func lineRow(row []float64) []float64 {
	return []float64{-row[0], -row[1], row[0], row[1]}
}
