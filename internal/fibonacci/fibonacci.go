// Package fibonacci computes Fibonacci numbers iteratively.
package fibonacci

import (
	"errors"
	"math/big"
)

// ErrNegativeIndex is returned by Fib for negative positions.
var ErrNegativeIndex = errors.New("Input must be a non-negative integer.")

// Fib returns the nth Fibonacci number (0-indexed). Results are exact for
// any n: two big.Int accumulators are advanced n-1 times, so the computation
// is linear in n with constant memory.
func Fib(n int) (*big.Int, error) {
	if n < 0 {
		return nil, ErrNegativeIndex
	}
	if n == 0 {
		return big.NewInt(0), nil
	}

	a := big.NewInt(0)
	b := big.NewInt(1)
	for i := 2; i <= n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return b, nil
}
