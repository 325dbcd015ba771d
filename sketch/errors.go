// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sketch

import "errors"

// structural errors returned by the construction API. They are sentinel
// values so callers can match them with errors.Is
var (

	// ErrMissingReferences indicates a primitive or constraint referencing
	// primitives not yet registered in the sketch
	ErrMissingReferences = errors.New("all references must be added to the sketch first")

	// ErrPrimitiveAlreadyPresent indicates a second insertion of the same primitive
	ErrPrimitiveAlreadyPresent = errors.New("the primitive is already in the sketch")

	// ErrPrimitiveNotFound indicates an unknown primitive id
	ErrPrimitiveNotFound = errors.New("no such primitive in the sketch")

	// ErrPrimitiveInUse indicates a deletion of a primitive that is still
	// referenced by a composite primitive or a constraint
	ErrPrimitiveInUse = errors.New("the primitive is still referenced in the sketch")

	// ErrConstraintAlreadyPresent indicates a second insertion of the same constraint
	ErrConstraintAlreadyPresent = errors.New("the constraint is already in the sketch")

	// ErrConstraintNotFound indicates an unknown constraint id
	ErrConstraintNotFound = errors.New("no such constraint in the sketch")

	// ErrWrongKind indicates a typed lookup of a primitive of another variant
	ErrWrongKind = errors.New("the primitive has a different kind")
)
