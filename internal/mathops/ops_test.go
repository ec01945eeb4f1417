package mathops

import (
	"errors"
	"math"
	"testing"
)

func TestAdd(t *testing.T) {
	cases := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{"positive numbers", 2, 3, 5},
		{"zeros", 0, 0, 0},
		{"negative and positive", -1, 1, 0},
		{"fractions", 0.5, 0.25, 0.75},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Add(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Add(%v, %v) = %v, want %v", tc.a, tc.b, result, tc.expected)
			}
		})
	}
}

func TestSubtract(t *testing.T) {
	cases := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{"positive result", 5, 3, 2},
		{"zeros", 0, 0, 0},
		{"negative result", 1, 5, -4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Subtract(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Subtract(%v, %v) = %v, want %v", tc.a, tc.b, result, tc.expected)
			}
		})
	}
}

func TestMultiply(t *testing.T) {
	cases := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{"positive numbers", 2, 3, 6},
		{"multiply by zero", 0, 5, 0},
		{"negative and positive", -2, 3, -6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Multiply(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Multiply(%v, %v) = %v, want %v", tc.a, tc.b, result, tc.expected)
			}
		})
	}
}

func TestDivide(t *testing.T) {
	cases := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{"even division", 10, 2, 5},
		{"fractional result", 5, 2, 2.5},
		{"negative divisor", 6, -3, -2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Divide(tc.a, tc.b)
			if err != nil {
				t.Fatalf("Divide(%v, %v) returned error: %v", tc.a, tc.b, err)
			}
			if result != tc.expected {
				t.Errorf("Divide(%v, %v) = %v, want %v", tc.a, tc.b, result, tc.expected)
			}
		})
	}

	t.Run("division by zero", func(t *testing.T) {
		_, err := Divide(5, 0)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("Divide(5, 0) error = %v, want ErrDivisionByZero", err)
		}
	})
}

func TestPower(t *testing.T) {
	cases := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{"integer exponent", 2, 10, 1024},
		{"zero exponent", 7, 0, 1},
		{"negative exponent", 2, -1, 0.5},
		{"fractional exponent", 9, 0.5, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Power(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Power(%v, %v) = %v, want %v", tc.a, tc.b, result, tc.expected)
			}
		})
	}
}

func TestModulo(t *testing.T) {
	cases := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{"positive operands", 10, 3, 1},
		{"exact multiple", 9, 3, 0},
		{"negative dividend", -7, 3, 2},
		{"negative divisor", 7, -3, -2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Modulo(tc.a, tc.b)
			if err != nil {
				t.Fatalf("Modulo(%v, %v) returned error: %v", tc.a, tc.b, err)
			}
			if result != tc.expected {
				t.Errorf("Modulo(%v, %v) = %v, want %v", tc.a, tc.b, result, tc.expected)
			}
		})
	}

	t.Run("modulo by zero", func(t *testing.T) {
		_, err := Modulo(10, 0)
		if !errors.Is(err, ErrModuloByZero) {
			t.Errorf("Modulo(10, 0) error = %v, want ErrModuloByZero", err)
		}
	})
}

func TestSquareRoot(t *testing.T) {
	cases := []struct {
		name     string
		a        float64
		expected float64
	}{
		{"perfect square", 16, 4},
		{"zero", 0, 0},
		{"non-square", 2, math.Sqrt2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := SquareRoot(tc.a)
			if err != nil {
				t.Fatalf("SquareRoot(%v) returned error: %v", tc.a, err)
			}
			if result != tc.expected {
				t.Errorf("SquareRoot(%v) = %v, want %v", tc.a, result, tc.expected)
			}
		})
	}

	t.Run("negative operand", func(t *testing.T) {
		_, err := SquareRoot(-1)
		if !errors.Is(err, ErrNegativeSquareRoot) {
			t.Errorf("SquareRoot(-1) error = %v, want ErrNegativeSquareRoot", err)
		}
	})
}
