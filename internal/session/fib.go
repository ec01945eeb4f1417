// Package session drives one interactive run of each calculator utility:
// menu, operand prompts, computation, and the formatted result line.
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/jmagnuss/calcsuite/internal/fibonacci"
	"github.com/jmagnuss/calcsuite/internal/prompt"
	"github.com/jmagnuss/calcsuite/internal/styles"
)

// Fibonacci runs one Fibonacci calculation. Invalid input ends the run with
// a message on out and a nil error; only a read failure is returned.
func Fibonacci(in io.Reader, out io.Writer) error {
	p := prompt.New(in, out)

	n, err := p.ReadInt("Enter a non-negative integer to get Fibonacci number: ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return err
		}
		fmt.Fprintln(out, styles.RenderError(fmt.Sprintf("Invalid input: %v", err)))
		return nil
	}

	value, err := fibonacci.Fib(n)
	if err != nil {
		fmt.Fprintln(out, styles.RenderError(fmt.Sprintf("Invalid input: %v", err)))
		return nil
	}

	fmt.Fprintln(out, styles.RenderResult(fmt.Sprintf("Fibonacci number at position %d is: %s", n, value)))
	return nil
}
