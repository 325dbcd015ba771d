// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sketch

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Sketch owns primitives and constraints and assembles the global
// parameter vector x ∈ ℝⁿ, gradient g ∈ ℝⁿ, per-constraint loss vector
// r ∈ ℝᵐ and Jacobian J ∈ ℝᵐˣⁿ. Primitives are keyed by a monotonically
// increasing integer id; constraints keep insertion order with ids from
// a separate counter
type Sketch struct {
	prims    []Parametric       // primitives in insertion order
	primID   map[Parametric]int // identity -> id
	primByID map[int]Parametric // id -> primitive
	nextPrim int

	cons    []Constraint       // constraints in insertion order
	conID   map[Constraint]int // identity -> id
	conByID map[int]Constraint // id -> constraint
	nextCon int
}

// NewSketch returns a new empty sketch
func NewSketch() *Sketch {
	return &Sketch{
		primID:   make(map[Parametric]int),
		primByID: make(map[int]Parametric),
		conID:    make(map[Constraint]int),
		conByID:  make(map[int]Constraint),
	}
}

// AddPrimitive registers a primitive and returns its id. All referenced
// primitives must be registered beforehand, and the primitive itself
// must not be present yet
func (o *Sketch) AddPrimitive(p Parametric) (id int, err error) {
	for _, ref := range p.References() {
		if _, ok := o.primID[ref]; !ok {
			return 0, fmt.Errorf("add primitive: %w", ErrMissingReferences)
		}
	}
	if _, ok := o.primID[p]; ok {
		return 0, fmt.Errorf("add primitive: %w", ErrPrimitiveAlreadyPresent)
	}
	id = o.nextPrim
	o.nextPrim++
	o.prims = append(o.prims, p)
	o.primID[p] = id
	o.primByID[id] = p
	return
}

// AddConstraint registers a constraint and returns its id. All referenced
// primitives must be registered beforehand, and the constraint itself
// must not be present yet
func (o *Sketch) AddConstraint(c Constraint) (id int, err error) {
	for _, ref := range c.References() {
		if _, ok := o.primID[ref]; !ok {
			return 0, fmt.Errorf("add constraint: %w", ErrMissingReferences)
		}
	}
	if _, ok := o.conID[c]; ok {
		return 0, fmt.Errorf("add constraint: %w", ErrConstraintAlreadyPresent)
	}
	id = o.nextCon
	o.nextCon++
	o.cons = append(o.cons, c)
	o.conID[c] = id
	o.conByID[id] = c
	return
}

// DeletePrimitive removes a primitive by id. Referential integrity is
// enforced: deleting a primitive still referenced by a composite or a
// constraint returns ErrPrimitiveInUse
func (o *Sketch) DeletePrimitive(id int) (err error) {
	p, ok := o.primByID[id]
	if !ok {
		return fmt.Errorf("delete primitive: %w: id=%d", ErrPrimitiveNotFound, id)
	}
	for _, q := range o.prims {
		for _, ref := range q.References() {
			if ref == p {
				return fmt.Errorf("delete primitive: %w: id=%d", ErrPrimitiveInUse, id)
			}
		}
	}
	for _, c := range o.cons {
		for _, ref := range c.References() {
			if ref == p {
				return fmt.Errorf("delete primitive: %w: id=%d", ErrPrimitiveInUse, id)
			}
		}
	}
	for i, q := range o.prims {
		if q == p {
			o.prims = append(o.prims[:i], o.prims[i+1:]...)
			break
		}
	}
	delete(o.primID, p)
	delete(o.primByID, id)
	return
}

// DeleteConstraint removes a constraint by id
func (o *Sketch) DeleteConstraint(id int) (err error) {
	c, ok := o.conByID[id]
	if !ok {
		return fmt.Errorf("delete constraint: %w: id=%d", ErrConstraintNotFound, id)
	}
	for i, d := range o.cons {
		if d == c {
			o.cons = append(o.cons[:i], o.cons[i+1:]...)
			break
		}
	}
	delete(o.conID, c)
	delete(o.conByID, id)
	return
}

// convenience builders ///////////////////////////////////////////////////////////////////////////

// AddPoint registers a new point at (x, y) and returns it with its id
func (o *Sketch) AddPoint(x, y float64) (p *Point2, id int) {
	p = NewPoint2(x, y)
	id, _ = o.AddPrimitive(p)
	return
}

// AddLine registers a new line between two registered points
func (o *Sketch) AddLine(startID, endID int) (l *Line, id int, err error) {
	start, err := o.Point(startID)
	if err != nil {
		return
	}
	end, err := o.Point(endID)
	if err != nil {
		return
	}
	l = NewLine(start, end)
	id, err = o.AddPrimitive(l)
	return
}

// AddArc registers a new arc around a registered center point
func (o *Sketch) AddArc(centerID int, radius float64, clockwise bool, startAngle, endAngle float64) (a *Arc, id int, err error) {
	center, err := o.Point(centerID)
	if err != nil {
		return
	}
	a = NewArc(center, radius, clockwise, startAngle, endAngle)
	id, err = o.AddPrimitive(a)
	return
}

// AddCircle registers a new circle around a registered center point
func (o *Sketch) AddCircle(centerID int, radius float64) (c *Circle, id int, err error) {
	center, err := o.Point(centerID)
	if err != nil {
		return
	}
	c = NewCircle(center, radius)
	id, err = o.AddPrimitive(c)
	return
}

// lookups ////////////////////////////////////////////////////////////////////////////////////////

// Primitive returns a primitive by id
func (o *Sketch) Primitive(id int) (Parametric, error) {
	p, ok := o.primByID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%d", ErrPrimitiveNotFound, id)
	}
	return p, nil
}

// Point returns a point by id
func (o *Sketch) Point(id int) (*Point2, error) {
	p, err := o.Primitive(id)
	if err != nil {
		return nil, err
	}
	pt, ok := p.(*Point2)
	if !ok {
		return nil, fmt.Errorf("%w: id=%d is not a point", ErrWrongKind, id)
	}
	return pt, nil
}

// Line returns a line by id
func (o *Sketch) Line(id int) (*Line, error) {
	p, err := o.Primitive(id)
	if err != nil {
		return nil, err
	}
	l, ok := p.(*Line)
	if !ok {
		return nil, fmt.Errorf("%w: id=%d is not a line", ErrWrongKind, id)
	}
	return l, nil
}

// Arc returns an arc by id
func (o *Sketch) Arc(id int) (*Arc, error) {
	p, err := o.Primitive(id)
	if err != nil {
		return nil, err
	}
	a, ok := p.(*Arc)
	if !ok {
		return nil, fmt.Errorf("%w: id=%d is not an arc", ErrWrongKind, id)
	}
	return a, nil
}

// Circle returns a circle by id
func (o *Sketch) Circle(id int) (*Circle, error) {
	p, err := o.Primitive(id)
	if err != nil {
		return nil, err
	}
	c, ok := p.(*Circle)
	if !ok {
		return nil, fmt.Errorf("%w: id=%d is not a circle", ErrWrongKind, id)
	}
	return c, nil
}

// Constraint returns a constraint by id
func (o *Sketch) Constraint(id int) (Constraint, error) {
	c, ok := o.conByID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%d", ErrConstraintNotFound, id)
	}
	return c, nil
}

// Primitives returns the primitives in insertion order
func (o *Sketch) Primitives() []Parametric { return o.prims }

// PrimitiveID returns the id of a registered primitive, or -1
func (o *Sketch) PrimitiveID(p Parametric) int {
	if id, ok := o.primID[p]; ok {
		return id
	}
	return -1
}

// Constraints returns the constraints in insertion order
func (o *Sketch) Constraints() []Constraint { return o.cons }

// Nprimitives returns the number of registered primitives
func (o *Sketch) Nprimitives() int { return len(o.prims) }

// Nconstraints returns the number of registered constraints
func (o *Sketch) Nconstraints() int { return len(o.cons) }

// assembly ///////////////////////////////////////////////////////////////////////////////////////

// Ndof returns the total number of free scalars n
func (o *Sketch) Ndof() (n int) {
	for _, p := range o.prims {
		n += p.Ndof()
	}
	return
}

// GetData returns the global parameter vector x ∈ ℝⁿ: the concatenation
// of the parameter blocks in primitive insertion order
func (o *Sketch) GetData() (x []float64) {
	x = make([]float64, 0, o.Ndof())
	for _, p := range o.prims {
		x = append(x, p.GetData()...)
	}
	return
}

// SetData distributes the global parameter vector back to the
// primitives. The length must match Ndof and all values must be finite
func (o *Sketch) SetData(x []float64) {
	if len(x) != o.Ndof() {
		chk.Panic("parameter vector has wrong length. %d != %d", len(x), o.Ndof())
	}
	k := 0
	for _, p := range o.prims {
		nd := p.Ndof()
		if nd > 0 {
			p.SetData(x[k : k+nd])
		}
		k += nd
	}
}

// GetLoss returns the sum of constraint losses
func (o *Sketch) GetLoss() (loss float64) {
	for _, c := range o.cons {
		loss += c.LossValue()
	}
	return
}

// GetLossPerConstraint returns r ∈ ℝᵐ: the loss of each constraint in
// insertion order
func (o *Sketch) GetLossPerConstraint() (r []float64) {
	r = make([]float64, len(o.cons))
	for i, c := range o.cons {
		r[i] = c.LossValue()
	}
	return
}

// GetGradient returns g ∈ ℝⁿ: all primitive accumulators are zeroed,
// every constraint accumulates in insertion order, and the blocks are
// concatenated as in GetData
func (o *Sketch) GetGradient() (g []float64) {
	for _, p := range o.prims {
		p.ZeroGradient()
	}
	for _, c := range o.cons {
		c.UpdateGradient()
	}
	return o.readGradient()
}

// readGradient concatenates the current accumulator blocks
func (o *Sketch) readGradient() (g []float64) {
	g = make([]float64, 0, o.Ndof())
	for _, p := range o.prims {
		g = append(g, p.GetGradient()...)
	}
	return
}

// GetJacobian returns J ∈ ℝᵐˣⁿ where row i is the gradient of constraint
// i's loss alone with respect to x
func (o *Sketch) GetJacobian() (J [][]float64) {
	m, n := len(o.cons), o.Ndof()
	J = la.MatAlloc(m, n)
	for i, c := range o.cons {
		for _, p := range o.prims {
			p.ZeroGradient()
		}
		c.UpdateGradient()
		copy(J[i], o.readGradient())
	}
	return
}
