// Package math provides the float32 geometric algebra used for dual-quaternion
// skinning: vectors, quaternions, dual quaternions, row-major 4x4 matrices and
// the elementary transform builders.
package math

import (
	"fmt"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Pi is float32 pi.
const Pi = math32.Pi

// Epsilon is the default tolerance for approximate comparisons.
const Epsilon float32 = 1e-5

// ensure panics when a precondition does not hold.
func ensure(ok bool, format string, args ...any) {
	if !ok {
		panic(fmt.Sprintf("math: "+format, args...))
	}
}

// Clamp returns x limited to the inclusive range [lo, hi].
// It panics if lo > hi.
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	ensure(lo <= hi, "clamp bounds inverted (%v > %v)", lo, hi)
	if x <= lo {
		return lo
	}
	if x >= hi {
		return hi
	}
	return x
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Sign returns -1, 0 or +1 according to the sign of x.
func Sign[T constraints.Signed | constraints.Float](x T) T {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Remainder returns x modulo modulus using the round-down convention, so the
// result is always in [0, modulus), including for negative x.
// It panics if modulus <= 0.
func Remainder(modulus, x int) int {
	ensure(modulus > 0, "remainder modulus must be positive, got %d", modulus)

	var r int
	if x >= 0 {
		r = x % modulus
	} else {
		r = modulus - (-x)%modulus
		// negative multiples of modulus land exactly on modulus
		if r == modulus {
			r = 0
		}
	}
	return r
}

// RemainderFloat is the floating point Remainder: x - floor(x/modulus)*modulus.
// It panics if modulus <= 0.
func RemainderFloat(modulus, x float32) float32 {
	ensure(modulus > 0, "remainder modulus must be positive, got %v", modulus)
	q := math32.Floor(x / modulus)
	return x - q*modulus
}

// Smoothstep is the cubic Hermite ease between edge0 and edge1.
// The edges may be given in descending order to get a falling curve.
func Smoothstep(edge0, edge1, x float32) float32 {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// Lerp interpolates linearly from 'from' to 'to'. t is not clamped.
func Lerp(from, to, t float32) float32 {
	return from + (to-from)*t
}

// LogBase returns the logarithm of x in the given base.
func LogBase(base, x float32) float32 {
	return math32.Log(x) * (1 / math32.Log(base))
}

// Square returns x*x.
func Square(x float32) float32 {
	return x * x
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Sin returns the sine of x (radians).
func Sin(x float32) float32 {
	return math32.Sin(x)
}

// Cos returns the cosine of x (radians).
func Cos(x float32) float32 {
	return math32.Cos(x)
}

// Tan returns the tangent of x (radians).
func Tan(x float32) float32 {
	return math32.Tan(x)
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * Pi / 180
}

// ApproxEqual reports whether a and b differ by at most tol.
func ApproxEqual(a, b, tol float32) bool {
	return math32.Abs(a-b) <= tol
}
