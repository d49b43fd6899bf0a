// Copyright 2026 The distrib Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"
)

// ErrKind classifies a precondition violation. Every error returned by
// this package is an *ArgError carrying one of these kinds; numeric
// edge cases (overflow, underflow, cancellation) are never reported as
// errors.
type ErrKind int

const (
	// ErrInvalidParameter reports a factory argument outside the
	// distribution's domain. The instance is never created.
	ErrInvalidParameter ErrKind = iota + 1

	// ErrInvalidProbability reports an inverse-function argument
	// outside [0, 1].
	ErrInvalidProbability

	// ErrInvalidRange reports a ranged probability query with
	// x0 > x1.
	ErrInvalidRange
)

func (k ErrKind) String() string {
	switch k {
	case ErrInvalidParameter:
		return "invalid parameter"
	case ErrInvalidProbability:
		return "invalid probability"
	case ErrInvalidRange:
		return "invalid range"
	}
	return fmt.Sprintf("ErrKind(%d)", int(k))
}

// An ArgError reports the argument that violated a call's
// precondition. It carries the offending value and the violated bounds
// as structured fields rather than a pre-formatted message, so callers
// can match on them with errors.As and render their own text.
type ArgError struct {
	Kind  ErrKind
	Name  string  // the offending argument
	Value float64 // its value
	// The half-open violation: Value was required to lie in
	// [Lo, Hi]. Either bound may be infinite.
	Lo, Hi float64
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("%s: %s=%v outside [%v, %v]", e.Kind, e.Name, e.Value, e.Lo, e.Hi)
}

func errParameter(name string, value, lo, hi float64) error {
	return &ArgError{Kind: ErrInvalidParameter, Name: name, Value: value, Lo: lo, Hi: hi}
}

func errProbability(p float64) error {
	return &ArgError{Kind: ErrInvalidProbability, Name: "p", Value: p, Lo: 0, Hi: 1}
}

// errRange reports x0 > x1; the bound violated by x0 is x1 itself.
func errRange(x0, x1 float64) error {
	return &ArgError{Kind: ErrInvalidRange, Name: "x0", Value: x0, Lo: math.Inf(-1), Hi: x1}
}
