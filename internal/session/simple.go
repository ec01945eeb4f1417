package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/jmagnuss/calcsuite/internal/mathops"
	"github.com/jmagnuss/calcsuite/internal/prompt"
	"github.com/jmagnuss/calcsuite/internal/styles"
)

const invalidOperands = "Invalid input. Please enter numeric values."

// Simple runs one pass of the simple calculator: add, subtract, or divide
// on two operands. Invalid menu entries re-prompt; a non-numeric operand
// ends the run with a message and a nil error.
func Simple(in io.Reader, out io.Writer, precision int) error {
	p := prompt.New(in, out)

	fmt.Fprintln(out, styles.RenderTitle("Simple Calculator"))
	fmt.Fprintln(out, "Select operation:")
	fmt.Fprintln(out, styles.RenderMenu("1. Add"))
	fmt.Fprintln(out, styles.RenderMenu("2. Subtract"))
	fmt.Fprintln(out, styles.RenderMenu("3. Divide"))

	choice, err := p.Choose("Enter choice (1/2/3): ", []string{"1", "2", "3"},
		"Invalid input, please enter 1, 2, or 3.")
	if err != nil {
		return err
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
		op, result = "-", mathops.Subtract(a, b)
	case "3":
		op = "/"
		result, cerr = mathops.Divide(a, b)
	}

	printBinary(out, a, op, b, result, cerr, precision)
	return nil
}

// printBinary prints the "{a} {op} {b} = {result}" line, substituting the
// domain-error text for the result when the computation failed.
func printBinary(out io.Writer, a float64, op string, b, result float64, cerr error, precision int) {
	fa := FormatNumber(a, precision)
	fb := FormatNumber(b, precision)
	if cerr != nil {
		fmt.Fprintln(out, styles.RenderError(fmt.Sprintf("%s %s %s = %v", fa, op, fb, cerr)))
		return
	}
	fmt.Fprintln(out, styles.RenderResult(fmt.Sprintf("%s %s %s = %s", fa, op, fb, FormatNumber(result, precision))))
}
