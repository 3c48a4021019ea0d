package number_test

import (
	"math"
	"testing"

	"github.com/tzneal/geodesy/number"
)

type meters float64

func TestConstants(t *testing.T) {
	if number.Zero[int]() != 0 || number.One[uint8]() != 1 {
		t.Fatalf("unexpected integer identities")
	}
	if number.Zero[float32]() != 0 || number.One[float64]() != 1 {
		t.Fatalf("unexpected float identities")
	}
	if got := number.Pi[float64](); got != math.Pi {
		t.Fatalf("expected %v, got %v", math.Pi, got)
	}
	if got := number.Pi[float32](); got != float32(math.Pi) {
		t.Fatalf("expected %v, got %v", float32(math.Pi), got)
	}
	if got := number.Pi[meters](); got != meters(math.Pi) {
		t.Fatalf("expected %v, got %v", math.Pi, got)
	}
}

func TestTrigonometry(t *testing.T) {
	const epsilon = 1e-12
	for x := -2 * math.Pi; x <= 2*math.Pi; x += 0.1 {
		s, c := number.SinCos(x)
		if s != number.Sin(x) || c != number.Cos(x) {
			t.Fatalf("SinCos(%f) disagrees with Sin/Cos", x)
		}
		if math.Abs(s*s+c*c-1) > epsilon {
			t.Fatalf("sin²+cos² at %f = %f", x, s*s+c*c)
		}
		if number.Atan2(s, c) != math.Atan2(s, c) {
			t.Fatalf("Atan2 mismatch at %f", x)
		}
	}
	if got := number.Atan(number.Tan(0.5)); math.Abs(got-0.5) > epsilon {
		t.Fatalf("expected 0.5, got %f", got)
	}
	if got := number.Asin(number.Sin(0.25)); math.Abs(got-0.25) > epsilon {
		t.Fatalf("expected 0.25, got %f", got)
	}
	if got := number.Acos(number.Cos(0.25)); math.Abs(got-0.25) > epsilon {
		t.Fatalf("expected 0.25, got %f", got)
	}
}

func TestHyperbolic(t *testing.T) {
	const epsilon = 1e-12
	for _, x := range []float64{-3, -0.5, 0, 0.5, 3} {
		if got := number.Asinh(number.Sinh(x)); math.Abs(got-x) > epsilon {
			t.Fatalf("asinh(sinh(%f)) = %f", x, got)
		}
		if got := number.Atanh(number.Tanh(x)); math.Abs(got-x) > 1e-9 {
			t.Fatalf("atanh(tanh(%f)) = %f", x, got)
		}
		if got := number.Acosh(number.Cosh(x)); math.Abs(got-math.Abs(x)) > 1e-7 {
			t.Fatalf("acosh(cosh(%f)) = %f", x, got)
		}
	}
}

func TestSqrt(t *testing.T) {
	if got := number.Sqrt(float32(16)); got != 4 {
		t.Fatalf("expected 4, got %f", got)
	}
	if got := number.Sqrt(meters(2.25)); got != 1.5 {
		t.Fatalf("expected 1.5, got %f", got)
	}
	if got := number.Sqrt(-1.0); !math.IsNaN(got) {
		t.Fatalf("expected NaN, got %f", got)
	}
}
