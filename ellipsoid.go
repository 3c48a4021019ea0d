// Package geodesy converts between Earth-centered Cartesian and geodetic
// coordinates on a reference ellipsoid.
package geodesy

import (
	"errors"
	"sync"

	"github.com/tzneal/geodesy/number"
)

// Ellipsoid is a reference ellipsoid defined by its semi-major and
// semi-minor axes. An Ellipsoid is immutable and safe for concurrent use.
// The zero value has both axes zero, and its transforms yield NaN.
type Ellipsoid[T number.Real] struct {
	semiMajorAxis T
	semiMinorAxis T
	e2            T // eccentricity squared

	// squared axes, computed on first use
	sq     func(T) T
	a2Once sync.Once
	a2     T
	b2Once sync.Once
	b2     T
}

// Build constructs an Ellipsoid from its semi-major axis a and semi-minor
// axis b. The axes are not validated; non-positive axes or b > a produce an
// inconsistent model (e.g. a negative eccentricity). Use NewEllipsoid to
// reject those.
func Build[T number.Real](a, b T) *Ellipsoid[T] {
	return newEllipsoid(a, b, square[T])
}

func newEllipsoid[T number.Real](a, b T, sq func(T) T) *Ellipsoid[T] {
	aa := a * a
	return &Ellipsoid[T]{
		semiMajorAxis: a,
		semiMinorAxis: b,
		e2:            (aa - b*b) / aa,
		sq:            sq,
	}
}

func square[T number.Real](v T) T {
	return v * v
}

func (e *Ellipsoid[T]) squared(v T) T {
	if e.sq == nil {
		return square(v)
	}
	return e.sq(v)
}

// NewEllipsoid constructs an Ellipsoid from its axes, returning an error if
// they do not describe an oblate or spherical ellipsoid.
func NewEllipsoid[T number.Real](semiMajorAxis, semiMinorAxis T) (*Ellipsoid[T], error) {
	if semiMajorAxis <= 0 {
		return nil, errors.New("Semi-major axis must be greater than zero")
	}
	if semiMinorAxis <= 0 {
		return nil, errors.New("Semi-minor axis must be greater than zero")
	}
	if semiMinorAxis > semiMajorAxis {
		return nil, errors.New("Semi-minor axis must not exceed semi-major axis")
	}
	return Build(semiMajorAxis, semiMinorAxis), nil
}

// NewEllipsoidFlattening constructs an Ellipsoid from its semi-major axis and
// flattening, the form most datum definitions use.
func NewEllipsoidFlattening[T number.Real](semiMajorAxis, flattening T) (*Ellipsoid[T], error) {
	invF := 1 / flattening
	if semiMajorAxis <= 0 {
		return nil, errors.New("Semi-major axis must be greater than zero")
	}
	if (invF < 250) || (invF > 350) {
		return nil, errors.New("Inverse flattening must be between 250 and 350")
	}
	return Build(semiMajorAxis, semiMajorAxis*(1-flattening)), nil
}

// SemiMajorAxis returns the equatorial radius a.
func (e *Ellipsoid[T]) SemiMajorAxis() T { return e.semiMajorAxis }

// SemiMinorAxis returns the polar radius b.
func (e *Ellipsoid[T]) SemiMinorAxis() T { return e.semiMinorAxis }

// EccentricitySquared returns (a²-b²)/a².
func (e *Ellipsoid[T]) EccentricitySquared() T { return e.e2 }

// Flattening returns (a-b)/a.
func (e *Ellipsoid[T]) Flattening() T {
	return (e.semiMajorAxis - e.semiMinorAxis) / e.semiMajorAxis
}

// SemiMajorAxisSquared returns a². The value is computed once and cached.
func (e *Ellipsoid[T]) SemiMajorAxisSquared() T {
	e.a2Once.Do(func() { e.a2 = e.squared(e.semiMajorAxis) })
	return e.a2
}

// SemiMinorAxisSquared returns b². The value is computed once and cached.
func (e *Ellipsoid[T]) SemiMinorAxisSquared() T {
	e.b2Once.Do(func() { e.b2 = e.squared(e.semiMinorAxis) })
	return e.b2
}
