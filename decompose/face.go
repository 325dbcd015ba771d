// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decompose

// Face is a ring plus the rings of the directly contained holes
type Face struct {
	Exterior Ring   `json:"exterior"`
	Holes    []Ring `json:"holes,omitempty"`
}

// FaceFromRing initialises a face without holes
func FaceFromRing(ring Ring) Face {
	return Face{Exterior: ring}
}

// AddHole appends a hole to the face
func (o *Face) AddHole(hole Ring) {
	o.Holes = append(o.Holes, hole)
}
