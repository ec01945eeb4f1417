package fibonacci

import (
	"errors"
	"math/big"
	"testing"
)

func TestFib(t *testing.T) {
	cases := []struct {
		name     string
		n        int
		expected string
	}{
		{"position 0", 0, "0"},
		{"position 1", 1, "1"},
		{"position 2", 2, "1"},
		{"position 10", 10, "55"},
		{"position 20", 20, "6765"},
		{"position 90 exceeds float precision", 90, "2880067194370816120"},
		{"position 100 exceeds uint64", 100, "354224848179261915075"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Fib(tc.n)
			if err != nil {
				t.Fatalf("Fib(%d) returned error: %v", tc.n, err)
			}
			if result.String() != tc.expected {
				t.Errorf("Fib(%d) = %s, want %s", tc.n, result, tc.expected)
			}
		})
	}
}

func TestFibRecurrence(t *testing.T) {
	// Fib(n) = Fib(n-1) + Fib(n-2) for all n >= 2.
	for n := 2; n <= 40; n++ {
		fn, err := Fib(n)
		if err != nil {
			t.Fatalf("Fib(%d) returned error: %v", n, err)
		}
		fn1, _ := Fib(n - 1)
		fn2, _ := Fib(n - 2)
		sum := new(big.Int).Add(fn1, fn2)
		if fn.Cmp(sum) != 0 {
			t.Errorf("Fib(%d) = %s, want Fib(%d)+Fib(%d) = %s", n, fn, n-1, n-2, sum)
		}
	}
}

func TestFibNegativeIndex(t *testing.T) {
	cases := []int{-1, -10}
	for _, n := range cases {
		if _, err := Fib(n); !errors.Is(err, ErrNegativeIndex) {
			t.Errorf("Fib(%d) error = %v, want ErrNegativeIndex", n, err)
		}
	}
}
