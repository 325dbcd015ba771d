// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decompose_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpmech/gosketch/decompose"
	"github.com/cpmech/gosketch/scenes"
	"github.com/cpmech/gosketch/sketch"
)

// buildLoop chains the given positions with lines into a closed loop
func buildLoop(positions []sketch.Vec) *sketch.Sketch {
	sk := sketch.NewSketch()
	points := make([]*sketch.Point2, len(positions))
	for i, pos := range positions {
		points[i], _ = sk.AddPoint(pos.X, pos.Y)
	}
	for i := range points {
		sk.AddPrimitive(sketch.NewLine(points[i], points[(i+1)%len(points)]))
	}
	return sk
}

func TestFindRings_Square(t *testing.T) {
	sk := buildLoop([]sketch.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	rings, unused := decompose.FindRings(sk, decompose.DefaultTol)
	require.Len(t, rings, 1)
	assert.Empty(t, unused)
	assert.InDelta(t, 1.0, rings[0].SignedArea(), 1e-12)
	assert.Greater(t, rings[0].SignedArea(), 0.0)
}

func TestFindRings_Triangle(t *testing.T) {
	sk := buildLoop([]sketch.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}})
	rings, unused := decompose.FindRings(sk, decompose.DefaultTol)
	require.Len(t, rings, 1)
	assert.Empty(t, unused)
	assert.InDelta(t, 0.5, rings[0].SignedArea(), 1e-12)
}

func TestFindRings_DiamondWithTriangles(t *testing.T) {
	sk := scenes.Diamond()
	rings, unused := decompose.FindRings(sk, decompose.DefaultTol)
	require.Len(t, rings, 3)
	assert.Empty(t, unused)
	for i, r := range rings {
		assert.Greater(t, r.SignedArea(), 0.0, "ring %d", i)
		if i > 0 {
			assert.GreaterOrEqual(t, r.SignedArea(), rings[i-1].SignedArea(), "ascending area order")
		}
	}
	// the diamond itself is the largest loop
	assert.InDelta(t, 2.0, rings[2].SignedArea(), 1e-12)
}

func TestFindRings_HalfDisc(t *testing.T) {
	sk := sketch.NewSketch()
	center, _ := sk.AddPoint(0, 0)
	west, _ := sk.AddPoint(-1, 0)
	east, _ := sk.AddPoint(1, 0)
	sk.AddPrimitive(sketch.NewLine(west, east))
	sk.AddPrimitive(sketch.NewArc(center, 1, false, 0, math.Pi))

	rings, unused := decompose.FindRings(sk, decompose.DefaultTol)
	require.Len(t, rings, 1)
	assert.Empty(t, unused)
	require.Len(t, rings[0].Segments, 2)
	assert.InDelta(t, math.Pi/2, rings[0].SignedArea(), 0.03)
}

func TestFindRings_OpenChainIsUnused(t *testing.T) {
	sk := sketch.NewSketch()
	pa, _ := sk.AddPoint(0, 0)
	pb, _ := sk.AddPoint(1, 0)
	pc, _ := sk.AddPoint(2, 1)
	sk.AddPrimitive(sketch.NewLine(pa, pb))
	sk.AddPrimitive(sketch.NewLine(pb, pc))

	rings, unused := decompose.FindRings(sk, decompose.DefaultTol)
	assert.Empty(t, rings)
	assert.Len(t, unused, 2)
}

func TestFindRings_LoneCircle(t *testing.T) {
	sk := sketch.NewSketch()
	_, idc := sk.AddPoint(0.5, 0.5)
	sk.AddCircle(idc, 2)

	rings, unused := decompose.FindRings(sk, decompose.DefaultTol)
	require.Len(t, rings, 1)
	assert.Empty(t, unused)
	require.NotNil(t, rings[0].Circle)
	assert.InDelta(t, 4*math.Pi, rings[0].SignedArea(), 1e-12)
}

func TestFindFaces_CircleInsideSquare(t *testing.T) {
	sk := sketch.NewSketch()
	corners := []sketch.Vec{{X: -2, Y: -2}, {X: 2, Y: -2}, {X: 2, Y: 2}, {X: -2, Y: 2}}
	points := make([]*sketch.Point2, len(corners))
	for i, pos := range corners {
		points[i], _ = sk.AddPoint(pos.X, pos.Y)
	}
	for i := range points {
		sk.AddPrimitive(sketch.NewLine(points[i], points[(i+1)%len(points)]))
	}
	_, idc := sk.AddPoint(0, 0)
	sk.AddCircle(idc, 1)

	faces, unused := decompose.FindFaces(sk, decompose.DefaultTol)
	assert.Empty(t, unused)
	require.Len(t, faces, 2)

	// ascending area: the circle face first, then the square holding it
	require.NotNil(t, faces[0].Exterior.Circle)
	assert.Empty(t, faces[0].Holes)
	require.Len(t, faces[1].Holes, 1)
	assert.NotNil(t, faces[1].Holes[0].Circle)
}

func TestFindFaces_DiamondHasNoHoles(t *testing.T) {
	faces := decompose.Decompose(scenes.Diamond())
	require.Len(t, faces, 3)
	for i, f := range faces {
		assert.Empty(t, f.Holes, "face %d", i)
	}
}

func TestMergeFaces(t *testing.T) {
	orig := decompose.Decompose(buildLoop([]sketch.Vec{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}))
	require.Len(t, orig, 1)

	inside := decompose.Decompose(buildLoop([]sketch.Vec{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}}))
	outside := decompose.Decompose(buildLoop([]sketch.Vec{{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 11, Y: 11}, {X: 10, Y: 11}}))
	require.Len(t, inside, 1)
	require.Len(t, outside, 1)

	merged := decompose.MergeFaces(append(inside, outside...), orig)
	require.Len(t, merged, 1)
	assert.InDelta(t, 1.0, merged[0].Exterior.SignedArea(), 1e-12)
}

func TestSegment_Reverse(t *testing.T) {
	l := sketch.LineSnap{Start: sketch.Vec{X: 0, Y: 0}, End: sketch.Vec{X: 1, Y: 2}}
	seg := decompose.Segment{Line: &l}
	rev := seg.Reverse()
	assert.Equal(t, seg.Start(), rev.End())
	assert.Equal(t, seg.End(), rev.Start())
	assert.True(t, seg.EqualOrReverseEqual(rev, decompose.DefaultTol))
	assert.False(t, seg.Equal(rev, decompose.DefaultTol))
}
