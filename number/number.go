// Package number defines the numeric capabilities that the geodetic
// transforms are written against.
//
// Capabilities are type constraints, so a scalar type that lacks one is
// rejected at compile time. Integer types satisfy Number (and get Zero and
// One) but only floating point types satisfy Real.
package number

import "golang.org/x/exp/constraints"

// AddSub is satisfied by types closed under + and -.
type AddSub interface {
	constraints.Integer | constraints.Float
}

// MulDiv is satisfied by types closed under * and /.
type MulDiv interface {
	constraints.Integer | constraints.Float
}

// Arithmetic combines AddSub and MulDiv.
type Arithmetic interface {
	AddSub
	MulDiv
}

// Number is any ordered value type supporting the four basic operators.
type Number interface {
	Arithmetic
	constraints.Ordered
}

// Real is a Number that also supports the square root, trigonometric and
// hyperbolic functions in this package.
type Real interface {
	constraints.Float
}

// Zero returns the additive identity of T.
func Zero[T Number]() T { return 0 }

// One returns the multiplicative identity of T.
func One[T Number]() T { return 1 }

// Pi returns π rounded to the precision of T.
func Pi[T Real]() T { return T(pi) }
