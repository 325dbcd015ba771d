// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decompose

import (
	"math"
	"sort"

	"github.com/cpmech/gosketch/sketch"
)

// DefaultTol is the positional tolerance for junction matching. Segments
// sharing a point primitive compare exactly equal; the tolerance absorbs
// the round-off of arc endpoints computed through trigonometry
const DefaultTol = 1e-9

// circleSteps is the number of vertices of a discretized circle
const circleSteps = 36

// Decompose returns the faces of a sketch using the default tolerance
func Decompose(sk *sketch.Sketch) []Face {
	faces, _ := FindFaces(sk, DefaultTol)
	return faces
}

// FindFaces finds the rings of a sketch and nests them into faces:
// in ascending area order, each ring becomes a face and is attached as a
// hole to the first larger face containing it (discretized polygon
// containment). Returns the faces and the segments not used in any ring
func FindFaces(sk *sketch.Sketch, tol float64) (faces []Face, unused []Segment) {
	rings, unused := FindRings(sk, tol)
	faces = make([]Face, 0, len(rings))
	for _, r := range rings {
		faces = append(faces, FaceFromRing(r))
	}
	if len(rings) == 0 {
		return
	}

	// rings are sorted from smallest to largest area already
	polygons := make([][]sketch.Vec, len(rings))
	for i, r := range rings {
		polygons[i] = r.Polygon(circleSteps)
	}
	for smaller := 0; smaller < len(polygons)-1; smaller++ {
		for bigger := smaller + 1; bigger < len(polygons); bigger++ {
			if polygonInPolygon(polygons[smaller], polygons[bigger]) {
				faces[bigger].AddHole(rings[smaller])
				break
			}
		}
	}
	return
}

// FindRings walks the segment graph of a sketch and returns the closed
// counterclockwise loops in ascending signed-area order, plus the
// segments (in native orientation) not used by any loop. Each line/arc
// is considered in both orientations; at a junction the walker picks the
// connected segment making the hardest left turn, which traces minimal
// loops. Circles are appended as their own rings
func FindRings(sk *sketch.Sketch, tol float64) (rings []Ring, unused []Segment) {

	// native segments, then their reversed counterparts
	var initSegments []Segment
	for _, p := range sk.Primitives() {
		prim := p.ToPrimitive()
		switch {
		case prim.Line != nil:
			initSegments = append(initSegments, Segment{Line: prim.Line})
		case prim.Arc != nil:
			initSegments = append(initSegments, Segment{Arc: prim.Arc})
		}
	}
	ninit := len(initSegments)
	all := make([]Segment, 0, 2*ninit)
	all = append(all, initSegments...)
	for _, s := range initSegments {
		all = append(all, s.Reverse())
	}

	used := make([]bool, len(all))
	var loops [][]int

	for start, seg := range all {
		if used[start] {
			continue
		}
		var loop []int
		startPoint := seg.Start()
		current := start
		for i := 1; i < len(all); i++ {
			cur := all[current]
			loop = append(loop, current)
			next, ok := findNextSegment(all, cur, used, tol)
			if !ok {
				break
			}
			if samePos(cur.End(), startPoint, tol) {
				loops = append(loops, loop)
				for _, idx := range loop {
					used[idx] = true
				}
				break
			}
			current = next
		}
	}

	// unused native-orientation segments
	for i := 0; i < ninit; i++ {
		if !used[i] {
			unused = append(unused, all[i])
		}
	}

	for _, loop := range loops {
		segs := make([]Segment, len(loop))
		for i, idx := range loop {
			segs[i] = all[idx]
		}
		rings = append(rings, Ring{Segments: segs})
	}

	// circles are rings too
	for _, p := range sk.Primitives() {
		prim := p.ToPrimitive()
		if prim.Circle != nil {
			rings = append(rings, Ring{Circle: prim.Circle})
		}
	}

	sort.SliceStable(rings, func(i, j int) bool {
		return rings[i].SignedArea() < rings[j].SignedArea()
	})

	// clockwise and degenerate loops are dropped
	positive := rings[:0]
	for _, r := range rings {
		if r.SignedArea() > 0 {
			positive = append(positive, r)
		}
	}
	return positive, unused
}

// findNextSegment returns the unused segment continuing current with the
// hardest left turn: the candidate whose start direction has the largest
// counterclockwise offset from the reverse of current's end direction
func findNextSegment(all []Segment, current Segment, used []bool, tol float64) (best int, ok bool) {
	endAngle := math.Mod(current.EndAngle()+math.Pi, 2*math.Pi)
	hardestLeft := 0.0
	for idx, s := range all {
		if used[idx] {
			continue
		}
		if !s.Continues(current, tol) || s.EqualOrReverseEqual(current, tol) {
			continue
		}
		turn := angleDifference(endAngle, s.StartAngle())
		if !ok || turn > hardestLeft {
			hardestLeft = turn
			best = idx
			ok = true
		}
	}
	return
}

// angleDifference returns the counterclockwise offset from a0 to a1,
// normalized into [0, 2π)
func angleDifference(a0, a1 float64) float64 {
	a0 = normAngle(a0)
	a1 = normAngle(a1)
	diff := a1 - a0
	if diff >= 2*math.Pi {
		diff -= 2 * math.Pi
	}
	if diff < 0 {
		diff += 2 * math.Pi
	}
	return diff
}

// normAngle wraps an angle into [0, 2π)
func normAngle(a float64) float64 {
	for a >= 2*math.Pi {
		a -= 2 * math.Pi
	}
	for a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// MergeFaces retains the faces of newFaces whose interior point lies
// inside at least one face of origFaces
func MergeFaces(newFaces, origFaces []Face) (merged []Face) {
	origPolys := make([][]sketch.Vec, len(origFaces))
	for i, f := range origFaces {
		origPolys[i] = f.Exterior.Polygon(circleSteps)
	}
	for _, f := range newFaces {
		pt := interiorPoint(f.Exterior.Polygon(circleSteps))
		for _, poly := range origPolys {
			if pointInPolygon(pt, poly) {
				merged = append(merged, f)
				break
			}
		}
	}
	return
}
