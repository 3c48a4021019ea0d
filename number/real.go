package number

import "math"

const pi = math.Pi

// Sqrt returns the square root of x. Negative input yields NaN.
func Sqrt[T Real](x T) T { return T(math.Sqrt(float64(x))) }

// Sin returns the sine of the radian argument x.
func Sin[T Real](x T) T { return T(math.Sin(float64(x))) }

// Cos returns the cosine of the radian argument x.
func Cos[T Real](x T) T { return T(math.Cos(float64(x))) }

// SinCos returns Sin(x), Cos(x).
func SinCos[T Real](x T) (sin, cos T) {
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}

// Tan returns the tangent of the radian argument x.
func Tan[T Real](x T) T { return T(math.Tan(float64(x))) }

// Asin returns the arcsine, in radians, of x.
func Asin[T Real](x T) T { return T(math.Asin(float64(x))) }

// Acos returns the arccosine, in radians, of x.
func Acos[T Real](x T) T { return T(math.Acos(float64(x))) }

// Atan returns the arctangent, in radians, of x.
func Atan[T Real](x T) T { return T(math.Atan(float64(x))) }

// Atan2 returns the arctangent of y/x, using the signs of both to pick the
// quadrant.
func Atan2[T Real](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }

// Sinh returns the hyperbolic sine of x.
func Sinh[T Real](x T) T { return T(math.Sinh(float64(x))) }

// Cosh returns the hyperbolic cosine of x.
func Cosh[T Real](x T) T { return T(math.Cosh(float64(x))) }

// Tanh returns the hyperbolic tangent of x.
func Tanh[T Real](x T) T { return T(math.Tanh(float64(x))) }

// Asinh returns the inverse hyperbolic sine of x.
func Asinh[T Real](x T) T { return T(math.Asinh(float64(x))) }

// Acosh returns the inverse hyperbolic cosine of x.
func Acosh[T Real](x T) T { return T(math.Acosh(float64(x))) }

// Atanh returns the inverse hyperbolic tangent of x.
func Atanh[T Real](x T) T { return T(math.Atanh(float64(x))) }
