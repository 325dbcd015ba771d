// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sketch

import (
	"encoding/json"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// primJSON is the self-describing record of one primitive. Points are
// stored once under their id; composites reference point ids
type primJSON struct {
	ID         int      `json:"id"`
	Kind       string   `json:"kind"` // "point" | "line" | "circle" | "arc"
	Pos        *Vec     `json:"pos,omitempty"`
	Start      *int     `json:"start,omitempty"`
	End        *int     `json:"end,omitempty"`
	Center     *int     `json:"center,omitempty"`
	Radius     *float64 `json:"radius,omitempty"`
	StartAngle *float64 `json:"startAngle,omitempty"`
	EndAngle   *float64 `json:"endAngle,omitempty"`
	Clockwise  *bool    `json:"clockwise,omitempty"`
}

// conJSON is the self-describing record of one constraint. Prims lists
// the referenced primitive ids in role order
type conJSON struct {
	ID     int      `json:"id"`
	Kind   string   `json:"kind"`
	Prims  []int    `json:"prims"`
	Target *Vec     `json:"target,omitempty"` // fix-point position
	Value  *float64 `json:"value,omitempty"`  // distance or angle [rad]
}

// sketchJSON is the serialized tree of a whole sketch
type sketchJSON struct {
	Primitives  []primJSON `json:"primitives"`
	Constraints []conJSON  `json:"constraints"`
}

// Encode serializes the sketch to an indented self-describing JSON tree.
// Round-trip through Decode is lossless: ids, insertion order, parameter
// values and constraint targets are all preserved
func (o *Sketch) Encode() ([]byte, error) {
	t := sketchJSON{
		Primitives:  make([]primJSON, 0, len(o.prims)),
		Constraints: make([]conJSON, 0, len(o.cons)),
	}
	for _, p := range o.prims {
		r := primJSON{ID: o.primID[p]}
		switch q := p.(type) {
		case *Point2:
			pos := q.Pos()
			r.Kind = "point"
			r.Pos = &pos
		case *Line:
			s, e := o.primID[q.Start()], o.primID[q.End()]
			r.Kind = "line"
			r.Start, r.End = &s, &e
		case *Circle:
			c, rad := o.primID[q.Center()], q.Radius()
			r.Kind = "circle"
			r.Center, r.Radius = &c, &rad
		case *Arc:
			c, rad := o.primID[q.Center()], q.Radius()
			θs, θe, cw := q.StartAngle(), q.EndAngle(), q.Clockwise()
			r.Kind = "arc"
			r.Center, r.Radius = &c, &rad
			r.StartAngle, r.EndAngle, r.Clockwise = &θs, &θe, &cw
		default:
			return nil, chk.Err("cannot encode primitive of unknown variant %T", p)
		}
		t.Primitives = append(t.Primitives, r)
	}
	for _, c := range o.cons {
		r := conJSON{ID: o.conID[c], Kind: c.Kind()}
		for _, ref := range c.References() {
			r.Prims = append(r.Prims, o.primID[ref])
		}
		switch q := c.(type) {
		case *FixPoint:
			target := q.Target()
			r.Target = &target
		case *EuclideanDistance:
			v := q.Distance()
			r.Value = &v
		case *HorizontalDistance:
			v := q.Distance()
			r.Value = &v
		case *VerticalDistance:
			v := q.Distance()
			r.Value = &v
		case *AngleBetweenPoints:
			v := q.Angle()
			r.Value = &v
		}
		t.Constraints = append(t.Constraints, r)
	}
	return json.MarshalIndent(t, "", "  ")
}

// Decode rebuilds a sketch from its serialized tree. Primitive and
// constraint ids are preserved
func Decode(b []byte) (o *Sketch, err error) {
	var t sketchJSON
	if err = json.Unmarshal(b, &t); err != nil {
		return nil, chk.Err("cannot decode sketch: %v", err)
	}
	sort.SliceStable(t.Primitives, func(i, j int) bool {
		return t.Primitives[i].ID < t.Primitives[j].ID
	})
	sort.SliceStable(t.Constraints, func(i, j int) bool {
		return t.Constraints[i].ID < t.Constraints[j].ID
	})
	o = NewSketch()
	for _, r := range t.Primitives {
		var p Parametric
		switch r.Kind {
		case "point":
			if r.Pos == nil {
				return nil, chk.Err("point %d has no position", r.ID)
			}
			p = NewPoint2(r.Pos.X, r.Pos.Y)
		case "line":
			start, end, e := o.decodeLineRefs(r)
			if e != nil {
				return nil, e
			}
			p = NewLine(start, end)
		case "circle":
			center, e := o.decodeCenterRef(r)
			if e != nil {
				return nil, e
			}
			p = NewCircle(center, *r.Radius)
		case "arc":
			center, e := o.decodeCenterRef(r)
			if e != nil {
				return nil, e
			}
			if r.StartAngle == nil || r.EndAngle == nil || r.Clockwise == nil {
				return nil, chk.Err("arc %d is missing angles", r.ID)
			}
			p = NewArc(center, *r.Radius, *r.Clockwise, *r.StartAngle, *r.EndAngle)
		default:
			return nil, chk.Err("cannot decode primitive of unknown kind %q", r.Kind)
		}
		o.prims = append(o.prims, p)
		o.primID[p] = r.ID
		o.primByID[r.ID] = p
		if r.ID >= o.nextPrim {
			o.nextPrim = r.ID + 1
		}
	}
	for _, r := range t.Constraints {
		c, e := o.decodeConstraint(r)
		if e != nil {
			return nil, e
		}
		o.cons = append(o.cons, c)
		o.conID[c] = r.ID
		o.conByID[r.ID] = c
		if r.ID >= o.nextCon {
			o.nextCon = r.ID + 1
		}
	}
	return
}

// decodeLineRefs resolves a line record's endpoint ids
func (o *Sketch) decodeLineRefs(r primJSON) (start, end *Point2, err error) {
	if r.Start == nil || r.End == nil {
		return nil, nil, chk.Err("line %d is missing endpoint ids", r.ID)
	}
	if start, err = o.Point(*r.Start); err != nil {
		return
	}
	end, err = o.Point(*r.End)
	return
}

// decodeCenterRef resolves a circle/arc record's center id
func (o *Sketch) decodeCenterRef(r primJSON) (center *Point2, err error) {
	if r.Center == nil || r.Radius == nil {
		return nil, chk.Err("primitive %d is missing center or radius", r.ID)
	}
	return o.Point(*r.Center)
}

// decodeConstraint rebuilds one constraint record
func (o *Sketch) decodeConstraint(r conJSON) (Constraint, error) {
	point := func(i int) (*Point2, error) {
		if i >= len(r.Prims) {
			return nil, chk.Err("constraint %d has too few references", r.ID)
		}
		return o.Point(r.Prims[i])
	}
	line := func(i int) (*Line, error) {
		if i >= len(r.Prims) {
			return nil, chk.Err("constraint %d has too few references", r.ID)
		}
		return o.Line(r.Prims[i])
	}
	switch r.Kind {
	case KindFixPoint:
		p, err := point(0)
		if err != nil {
			return nil, err
		}
		if r.Target == nil {
			return nil, chk.Err("fix-point %d has no target", r.ID)
		}
		return NewFixPoint(p, *r.Target), nil
	case KindEuclideanDistance, KindHorizontalDistance, KindVerticalDistance:
		p1, err := point(0)
		if err != nil {
			return nil, err
		}
		p2, err := point(1)
		if err != nil {
			return nil, err
		}
		if r.Value == nil {
			return nil, chk.Err("distance %d has no value", r.ID)
		}
		switch r.Kind {
		case KindEuclideanDistance:
			return NewEuclideanDistance(p1, p2, *r.Value), nil
		case KindHorizontalDistance:
			return NewHorizontalDistance(p1, p2, *r.Value), nil
		}
		return NewVerticalDistance(p1, p2, *r.Value), nil
	case KindAngleBetweenPoints:
		p1, err := point(0)
		if err != nil {
			return nil, err
		}
		p2, err := point(1)
		if err != nil {
			return nil, err
		}
		m, err := point(2)
		if err != nil {
			return nil, err
		}
		if r.Value == nil {
			return nil, chk.Err("angle %d has no value", r.ID)
		}
		return NewAngleBetweenPoints(p1, p2, m, *r.Value), nil
	case KindArcStartPointCoincident, KindArcEndPointCoincident:
		if len(r.Prims) < 2 {
			return nil, chk.Err("constraint %d has too few references", r.ID)
		}
		a, err := o.Arc(r.Prims[0])
		if err != nil {
			return nil, err
		}
		p, err := o.Point(r.Prims[1])
		if err != nil {
			return nil, err
		}
		if r.Kind == KindArcStartPointCoincident {
			return NewArcStartPointCoincident(a, p), nil
		}
		return NewArcEndPointCoincident(a, p), nil
	case KindHorizontalLine, KindVerticalLine:
		l, err := line(0)
		if err != nil {
			return nil, err
		}
		if r.Kind == KindHorizontalLine {
			return NewHorizontalLine(l), nil
		}
		return NewVerticalLine(l), nil
	case KindEqualLength, KindParallelLines, KindPerpendicularLines:
		l1, err := line(0)
		if err != nil {
			return nil, err
		}
		l2, err := line(1)
		if err != nil {
			return nil, err
		}
		switch r.Kind {
		case KindEqualLength:
			return NewEqualLength(l1, l2), nil
		case KindParallelLines:
			return NewParallelLines(l1, l2), nil
		}
		return NewPerpendicularLines(l1, l2), nil
	}
	return nil, chk.Err("cannot decode constraint of unknown kind %q", r.Kind)
}

// SaveJSON writes the serialized sketch to dirout/fnkey.json
func (o *Sketch) SaveJSON(dirout, fnkey string) (err error) {
	b, err := o.Encode()
	if err != nil {
		return
	}
	io.WriteFileSD(dirout, fnkey+".json", string(b))
	return
}

// ReadJSON reads a sketch back from a JSON file
func ReadJSON(path string) (*Sketch, error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read sketch file: %v", err)
	}
	return Decode(b)
}
