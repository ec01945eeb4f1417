// Package mathops provides the arithmetic operations behind the calculator
// utilities. All operations are pure; domain failures are reported as
// sentinel errors rather than sentinel values.
package mathops

import (
	"errors"
	"math"
)

var (
	// ErrDivisionByZero is returned by Divide when the divisor is zero.
	ErrDivisionByZero = errors.New("Error: Division by zero is not allowed.")

	// ErrModuloByZero is returned by Modulo when the divisor is zero.
	ErrModuloByZero = errors.New("Error: Modulo by zero is not allowed.")

	// ErrNegativeSquareRoot is returned by SquareRoot for negative operands.
	ErrNegativeSquareRoot = errors.New("Error: Cannot take square root of a negative number.")
)

// Add returns the sum of a and b.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns a minus b.
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns a times b.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a divided by b, or ErrDivisionByZero when b is zero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Power returns a raised to b. No domain restriction: fractional and
// negative exponents behave as math.Pow does.
func Power(a, b float64) float64 {
	return math.Pow(a, b)
}

// Modulo returns a mod b with the result taking the sign of the divisor,
// or ErrModuloByZero when b is zero.
func Modulo(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrModuloByZero
	}
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m, nil
}

// SquareRoot returns the square root of a, or ErrNegativeSquareRoot when a
// is negative.
func SquareRoot(a float64) (float64, error) {
	if a < 0 {
		return 0, ErrNegativeSquareRoot
	}
	return math.Sqrt(a), nil
}
