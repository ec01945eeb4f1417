package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/jmagnuss/calcsuite/internal/mathops"
	"github.com/jmagnuss/calcsuite/internal/prompt"
	"github.com/jmagnuss/calcsuite/internal/styles"
)

// Advanced runs one pass of the advanced calculator: add, multiply, divide,
// power, modulo, or square root. Square root takes a single operand; all
// other operations take two.
func Advanced(in io.Reader, out io.Writer, precision int) error {
	p := prompt.New(in, out)

	fmt.Fprintln(out, styles.RenderTitle("Advanced Calculator"))
	fmt.Fprintln(out, "Select operation:")
	fmt.Fprintln(out, styles.RenderMenu("1. Add"))
	fmt.Fprintln(out, styles.RenderMenu("2. Multiply"))
	fmt.Fprintln(out, styles.RenderMenu("3. Divide"))
	fmt.Fprintln(out, styles.RenderMenu("4. Power (x^y)"))
	fmt.Fprintln(out, styles.RenderMenu("5. Modulo (x % y)"))
	fmt.Fprintln(out, styles.RenderMenu("6. Square Root"))

	choice, err := p.Choose("Enter choice (1-6): ", []string{"1", "2", "3", "4", "5", "6"},
		"Invalid input, please enter a number between 1 and 6.")
	if err != nil {
		return err
	}

	if choice == "6" {
		a, err := p.ReadFloat("Enter a number: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return err
			}
			fmt.Fprintln(out, styles.RenderError(invalidOperands))
			return nil
		}

		fa := FormatNumber(a, precision)
		result, cerr := mathops.SquareRoot(a)
		if cerr != nil {
			fmt.Fprintln(out, styles.RenderError(fmt.Sprintf("Square root of %s = %v", fa, cerr)))
			return nil
		}
		fmt.Fprintln(out, styles.RenderResult(fmt.Sprintf("Square root of %s = %s", fa, FormatNumber(result, precision))))
		return nil
	}

	a, err := p.ReadFloat("Enter first number: ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return err
		}
		fmt.Fprintln(out, styles.RenderError(invalidOperands))
		return nil
	}
	b, err := p.ReadFloat("Enter second number: ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return err
		}
		fmt.Fprintln(out, styles.RenderError(invalidOperands))
		return nil
	}

	var (
		op     string
		result float64
		cerr   error
	)
	switch choice {
	case "1":
		op, result = "+", mathops.Add(a, b)
	case "2":
		op, result = "*", mathops.Multiply(a, b)
	case "3":
		op = "/"
		result, cerr = mathops.Divide(a, b)
	case "4":
		op, result = "^", mathops.Power(a, b)
	case "5":
		op = "%"
		result, cerr = mathops.Modulo(a, b)
	}

	printBinary(out, a, op, b, result, cerr, precision)
	return nil
}
